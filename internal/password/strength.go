// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package password

// Strength is a rough label for a password policy. It is a heuristic over
// length and class count, not an entropy estimate.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

// Key returns the message id suffix used for display.
func (s Strength) Key() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	}
	return "strong"
}

// StrengthOf scores one point per selected class and one more at each of
// 12, 20 and 32 characters.
func StrengthOf(opts Options) Strength {
	score := opts.SelectedClasses()
	for _, threshold := range []int{12, 20, 32} {
		if opts.Length >= threshold {
			score++
		}
	}

	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Medium
	}
	return Strong
}
