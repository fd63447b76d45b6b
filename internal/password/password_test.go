// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestGenerate_UpperAndLowerOnly(t *testing.T) {
	opts := Options{Length: 8, Uppercase: true, Lowercase: true}
	allowed := uppercaseChars + lowercaseChars

	for i := 0; i < 200; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(pw) != 8 {
			t.Fatalf("expected length 8, got %d (%q)", len(pw), pw)
		}
		if !strings.ContainsAny(pw, uppercaseChars) {
			t.Errorf("no uppercase in %q", pw)
		}
		if !strings.ContainsAny(pw, lowercaseChars) {
			t.Errorf("no lowercase in %q", pw)
		}
		for _, r := range pw {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("unexpected %q in %q", r, pw)
			}
		}
	}
}

func TestGenerate_EveryClassRepresented(t *testing.T) {
	opts := Options{Length: 4, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
	for i := 0; i < 200; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(pw) != 4 {
			t.Fatalf("expected length 4, got %q", pw)
		}
		for _, pool := range []string{uppercaseChars, lowercaseChars, digitChars, symbolChars} {
			if !strings.ContainsAny(pw, pool) {
				t.Errorf("%q misses a char from %q", pw, pool)
			}
		}
	}
}

func TestGenerate_ExcludeSimilar(t *testing.T) {
	opts := Options{Length: 64, Lowercase: true, Uppercase: true, Digits: true, ExcludeSimilar: true}
	for i := 0; i < 50; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if strings.ContainsAny(pw, similarChars) {
			t.Errorf("similar char in %q", pw)
		}
	}
}

func TestGenerate_EmptyCases(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero length", Options{Length: 0, Uppercase: true}},
		{"negative length", Options{Length: -3, Digits: true}},
		{"no class", Options{Length: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if pw != "" {
				t.Errorf("expected empty password, got %q", pw)
			}
		})
	}
}

// scriptedDraws replays fixed draws and records every bound asked for.
type scriptedDraws struct {
	values []int
	bounds []int
}

func (s *scriptedDraws) intn(n int) (int, error) {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0, errors.New("script exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		return 0, fmt.Errorf("scripted draw %d out of [0,%d)", v, n)
	}
	return v, nil
}

func TestGenerate_SeedFillThenShuffle(t *testing.T) {
	// Seeds 'A', 'a', '2', fill 'B' from the combined pool, then swap
	// positions (3,0), (2,0), (1,0).
	script := &scriptedDraws{values: []int{0, 0, 0, 1, 0, 0, 0}}
	g := &Generator{intn: script.intn}

	pw, err := g.Generate(Options{Length: 4, Uppercase: true, Lowercase: true, Digits: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pw != "a2BA" {
		t.Errorf("expected %q, got %q", "a2BA", pw)
	}
	// Pool sizes 24, 25 and 8, the combined pool, then j in [0,i] for
	// i = 3, 2, 1.
	wantBounds := []int{24, 25, 8, 57, 4, 3, 2}
	if !slices.Equal(script.bounds, wantBounds) {
		t.Errorf("expected draw bounds %v, got %v", wantBounds, script.bounds)
	}
}

func TestGenerate_ShuffleKeepsIdentityWhenDrawsPickLast(t *testing.T) {
	// j == i leaves every position in place, so the seed order shows.
	script := &scriptedDraws{values: []int{5, 7, 3, 4, 3, 2, 1}}
	g := &Generator{intn: script.intn}

	pw, err := g.Generate(Options{Length: 4, Uppercase: true, Lowercase: true, Digits: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pw != "Fh5E" {
		t.Errorf("expected %q, got %q", "Fh5E", pw)
	}
}

func TestGenerate_FirstCharacterIsNotAlwaysUppercase(t *testing.T) {
	opts := Options{Length: 3, Uppercase: true, Lowercase: true, Digits: true}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		switch first := pw[:1]; {
		case strings.Contains(uppercaseChars, first):
			seen["upper"] = true
		case strings.Contains(lowercaseChars, first):
			seen["lower"] = true
		case strings.Contains(digitChars, first):
			seen["digit"] = true
		}
	}
	for _, class := range []string{"upper", "lower", "digit"} {
		if !seen[class] {
			t.Errorf("position 0 never held a %s character in 300 passwords", class)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_PropagatesEntropyFailure(t *testing.T) {
	_, err := NewWithReader(failingReader{}).Generate(DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "entropy exhausted") {
		t.Fatalf("expected entropy error, got %v", err)
	}
}

func TestFilterSimilar(t *testing.T) {
	if got := filterSimilar(lowercaseChars, true); got != "abcdefghijkmnpqrstuvwxyz" {
		t.Errorf("filterSimilar(exclude) = %q", got)
	}
	if got := filterSimilar(lowercaseChars, false); got != lowercaseChars {
		t.Errorf("filterSimilar(keep) = %q", got)
	}
}

func TestSelectedClasses(t *testing.T) {
	if n := DefaultOptions().SelectedClasses(); n != 3 {
		t.Errorf("expected 3 classes by default, got %d", n)
	}
	if n := (Options{}).SelectedClasses(); n != 0 {
		t.Errorf("expected 0 classes, got %d", n)
	}
}

func TestStrengthOf(t *testing.T) {
	tests := []struct {
		opts Options
		want Strength
	}{
		{Options{Length: 8, Lowercase: true}, Weak},
		{Options{Length: 12, Lowercase: true}, Weak},
		{Options{Length: 8, Lowercase: true, Uppercase: true, Digits: true}, Medium},
		{DefaultOptions(), Medium},
		{Options{Length: 20, Lowercase: true, Uppercase: true, Digits: true}, Strong},
		{Options{Length: 32, Lowercase: true, Uppercase: true}, Strong},
	}
	for _, tt := range tests {
		if got := StrengthOf(tt.opts); got != tt.want {
			t.Errorf("StrengthOf(%+v) = %v, want %v", tt.opts, got, tt.want)
		}
	}
	if k := Medium.Key(); k != "medium" {
		t.Errorf("Medium.Key() = %q", k)
	}
}
