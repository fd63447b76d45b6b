// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package password generates random passwords from configurable character
// classes. All randomness comes from crypto/rand.
package password // import "github.com/toeirei/unitools/internal/password"

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijkmnopqrstuvwxyz"
	digitChars     = "23456789"
	symbolChars    = "!@#$%^&*_-+"
	similarChars   = "O0oIl1"
)

// Options configures one generation request.
type Options struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultOptions mirrors the form's initial state: 16 characters, letters
// and digits, similar-looking characters excluded.
func DefaultOptions() Options {
	return Options{
		Length:         16,
		Uppercase:      true,
		Lowercase:      true,
		Digits:         true,
		ExcludeSimilar: true,
	}
}

// SelectedClasses counts the enabled character classes.
func (o Options) SelectedClasses() int {
	n := 0
	for _, on := range []bool{o.Uppercase, o.Lowercase, o.Digits, o.Symbols} {
		if on {
			n++
		}
	}
	return n
}

func (o Options) pools() []string {
	var pools []string
	if o.Uppercase {
		pools = append(pools, filterSimilar(uppercaseChars, o.ExcludeSimilar))
	}
	if o.Lowercase {
		pools = append(pools, filterSimilar(lowercaseChars, o.ExcludeSimilar))
	}
	if o.Digits {
		pools = append(pools, filterSimilar(digitChars, o.ExcludeSimilar))
	}
	if o.Symbols {
		pools = append(pools, filterSimilar(symbolChars, o.ExcludeSimilar))
	}
	return pools
}

func filterSimilar(pool string, exclude bool) string {
	if !exclude {
		return pool
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(similarChars, r) {
			return -1
		}
		return r
	}, pool)
}

// Generator produces passwords. The zero value is not usable; use New.
type Generator struct {
	// intn returns a uniform integer in [0, n).
	intn func(n int) (int, error)
}

// New returns a generator reading from crypto/rand.
func New() *Generator {
	return NewWithReader(rand.Reader)
}

// NewWithReader returns a generator drawing entropy from r. r must be a
// cryptographically secure source outside of tests.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{intn: func(n int) (int, error) {
		v, err := rand.Int(r, big.NewInt(int64(n)))
		if err != nil {
			return 0, err
		}
		return int(v.Int64()), nil
	}}
}

// Generate builds a password of opts.Length characters. It returns "" when
// the length is not positive or no class is selected. Callers must reject a
// length shorter than opts.SelectedClasses() beforehand; such a request still
// returns one character per class.
//
// One character is drawn from each selected pool, the rest from all pools
// combined, then the result is shuffled. This is not uniform over all valid
// passwords.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length <= 0 {
		return "", nil
	}
	pools := opts.pools()
	if len(pools) == 0 {
		return "", nil
	}

	chars := make([]byte, 0, max(opts.Length, len(pools)))
	for _, pool := range pools {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	combined := strings.Join(pools, "")
	for len(chars) < opts.Length {
		c, err := g.pick(combined)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := g.shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

// Generate is a convenience wrapper around New().Generate.
func Generate(opts Options) (string, error) {
	return New().Generate(opts)
}

func (g *Generator) pick(pool string) (byte, error) {
	i, err := g.intn(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// shuffle is Fisher-Yates from the last index down to 1.
func (g *Generator) shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
