// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package randnum draws uniformly distributed integers from an inclusive
// range, optionally without repeats.
package randnum // import "github.com/toeirei/unitools/internal/randnum"

import (
	"math"
	"math/rand/v2"
)

// Source yields uniform integers in [0, n). n is always > 0.
type Source interface {
	Uint64N(n uint64) uint64
}

type defaultSource struct{}

func (defaultSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// Generator draws numbers from a Source.
type Generator struct {
	src Source
}

// New returns a generator backed by the process-wide math/rand/v2 source.
func New() *Generator {
	return &Generator{src: defaultSource{}}
}

// NewWithSource returns a generator backed by src.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// RangeSize returns the number of integers in [min, max] after ordering the
// bounds. The span of the whole int64 domain does not fit and reports 0.
func RangeSize(min, max int) uint64 {
	if min > max {
		min, max = max, min
	}
	return uint64(max) - uint64(min) + 1
}

// Generate returns count numbers from [min, max]. Reversed bounds are
// swapped. With unique set, count larger than the range yields an empty,
// non-nil slice; otherwise the unique result has no particular order.
// Without unique, values keep their draw order.
func (g *Generator) Generate(min, max, count int, unique bool) []int {
	if min > max {
		min, max = max, min
	}
	results := []int{}
	if count <= 0 {
		return results
	}

	size := RangeSize(min, max)
	if unique && size != 0 && uint64(count) > size {
		return results
	}

	if unique {
		set := make(map[int]struct{}, count)
		for len(set) < count {
			set[g.draw(min, size)] = struct{}{}
		}
		for v := range set {
			results = append(results, v)
		}
		return results
	}

	for range count {
		results = append(results, g.draw(min, size))
	}
	return results
}

// Generate is a convenience wrapper around New().Generate.
func Generate(min, max, count int, unique bool) []int {
	return New().Generate(min, max, count, unique)
}

func (g *Generator) draw(min int, size uint64) int {
	if size == 0 {
		// Full int64 span; the top value is never drawn.
		size = math.MaxUint64
	}
	return int(uint64(min) + g.src.Uint64N(size))
}
