// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/unitools/internal/password"
	"github.com/toeirei/unitools/internal/randnum"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestPasswordFlow_GenerateAndCopy(t *testing.T) {
	clip := &fakeClipboard{}
	f := NewPasswordFlow(password.DefaultOptions(), nil, clip)
	assert.False(t, f.CanCopy())
	assert.ErrorIs(t, f.Copy(), ErrNothingToCopy)

	pw, err := f.Generate()
	require.NoError(t, err)
	assert.Len(t, pw, 16)
	assert.Equal(t, pw, f.Password)
	assert.Equal(t, "Medium", f.StrengthLabel())

	require.NoError(t, f.Copy())
	assert.Equal(t, pw, clip.text)
	assert.Equal(t, "Password copied to clipboard.", f.StatusMessage)
}

func TestPasswordFlow_Validation(t *testing.T) {
	f := NewPasswordFlow(password.Options{Length: 10}, nil, &fakeClipboard{})
	_, err := f.Generate()
	assert.ErrorIs(t, err, ErrNoCharacterClass)
	assert.Equal(t, "Select at least one character category.", f.ErrorMessage)

	f.Options = password.Options{Length: 3, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
	_, err = f.Generate()
	assert.ErrorIs(t, err, ErrLengthTooShort)
	assert.Empty(t, f.Password)
}

func TestPasswordFlow_ClipboardFailure(t *testing.T) {
	f := NewPasswordFlow(password.DefaultOptions(), nil, &fakeClipboard{err: errors.New("no display")})
	_, err := f.Generate()
	require.NoError(t, err)

	err = f.Copy()
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, "Could not access the clipboard.", f.ErrorMessage)
}

func TestPasswordFlow_Reset(t *testing.T) {
	f := NewPasswordFlow(password.DefaultOptions(), nil, &fakeClipboard{})
	f.Options.Symbols = true
	f.Options.Length = 40
	_, _ = f.Generate()

	f.Reset()
	assert.Equal(t, password.DefaultOptions(), f.Options)
	assert.Empty(t, f.Password)
}

type stepSource struct{ next uint64 }

func (s *stepSource) Uint64N(n uint64) uint64 {
	v := s.next % n
	s.next++
	return v
}

func TestRandomFlow_DefaultsAndSortedOutput(t *testing.T) {
	f := NewRandomFlow(RandomDefaults{Min: 1, Max: 100, Count: 5}, nil)
	assert.Equal(t, "1", f.Min)
	assert.Equal(t, "100", f.Max)
	assert.Equal(t, "5", f.Count)

	nums, err := f.Generate()
	require.NoError(t, err)
	assert.Len(t, nums, 5)
	assert.IsNonDecreasing(t, nums)
	assert.Len(t, strings.Split(f.Output, ", "), 5)
}

func TestRandomFlow_DeterministicSource(t *testing.T) {
	f := NewRandomFlow(RandomDefaults{Min: 10, Max: 1, Count: 3}, randnum.NewWithSource(&stepSource{next: 7}))
	nums, err := f.Generate()
	require.NoError(t, err)
	// Bounds swap to [1,10]; draws 7, 8, 9 map to 8, 9, 10.
	assert.Equal(t, []int{8, 9, 10}, nums)
	assert.Equal(t, "8, 9, 10", f.Output)
}

func TestRandomFlow_Validation(t *testing.T) {
	tests := []struct {
		name            string
		min, max, count string
		unique          bool
		want            error
	}{
		{"non numeric", "a", "10", "1", false, ErrRandomInputs},
		{"fractional", "1", "10.5", "1", false, ErrRandomInputs},
		{"zero count", "1", "10", "0", false, ErrRandomCount},
		{"unique too many", "1", "3", "4", true, ErrRandomRange},
		{"unique reversed too many", "3", "1", "4", true, ErrRandomRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewRandomFlow(RandomDefaults{}, nil)
			f.Min, f.Max, f.Count, f.Unique = tt.min, tt.max, tt.count, tt.unique
			_, err := f.Generate()
			assert.ErrorIs(t, err, tt.want)
			assert.NotEmpty(t, f.ErrorMessage)
		})
	}
}

func TestRandomFlow_UniqueFullRange(t *testing.T) {
	f := NewRandomFlow(RandomDefaults{Min: 1, Max: 3, Count: 3, Unique: true}, nil)
	nums, err := f.Generate()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nums)
	assert.Equal(t, "1, 2, 3", f.Output)
}
