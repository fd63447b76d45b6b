// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/password"
	"github.com/toeirei/unitools/internal/randnum"
)

// PasswordFlow is the state behind the password generator form.
type PasswordFlow struct {
	Options       password.Options
	Password      string
	ErrorMessage  string
	StatusMessage string

	defaults password.Options
	gen      *password.Generator
	clip     Clipboard
}

// NewPasswordFlow starts from defaults. gen and clip may be nil, in which
// case crypto/rand and the system clipboard are used.
func NewPasswordFlow(defaults password.Options, gen *password.Generator, clip Clipboard) *PasswordFlow {
	if gen == nil {
		gen = password.New()
	}
	if clip == nil {
		clip = SystemClipboard{}
	}
	return &PasswordFlow{Options: defaults, defaults: defaults, gen: gen, clip: clip}
}

// StrengthLabel returns the localized strength of the current options.
func (f *PasswordFlow) StrengthLabel() string {
	return i18n.T("strength." + password.StrengthOf(f.Options).Key())
}

// Generate checks the options and produces a new password.
func (f *PasswordFlow) Generate() (string, error) {
	f.ErrorMessage = ""
	f.StatusMessage = ""

	classes := f.Options.SelectedClasses()
	if classes == 0 {
		return "", f.fail(ErrNoCharacterClass)
	}
	if f.Options.Length < classes {
		return "", f.fail(ErrLengthTooShort)
	}

	pw, err := f.gen.Generate(f.Options)
	if err != nil {
		f.ErrorMessage = err.Error()
		return "", err
	}
	f.Password = pw
	return pw, nil
}

// CanCopy reports whether there is a password to copy.
func (f *PasswordFlow) CanCopy() bool {
	return strings.TrimSpace(f.Password) != ""
}

// Copy puts the current password on the clipboard.
func (f *PasswordFlow) Copy() error {
	f.ErrorMessage = ""
	f.StatusMessage = ""
	if !f.CanCopy() {
		return f.fail(ErrNothingToCopy)
	}
	if err := f.clip.WriteAll(f.Password); err != nil {
		f.ErrorMessage = i18n.T("error.clipboard")
		return fmt.Errorf("copy password: %w", err)
	}
	f.StatusMessage = i18n.T("status.password_copied")
	return nil
}

// Reset restores the default options and forgets the password.
func (f *PasswordFlow) Reset() {
	f.Options = f.defaults
	f.Password = ""
	f.ErrorMessage = ""
	f.StatusMessage = ""
}

func (f *PasswordFlow) fail(err error) error {
	f.ErrorMessage = ErrorMessage(err)
	return err
}

// RandomDefaults is the initial state of the random-number form.
type RandomDefaults struct {
	Min, Max, Count int
	Unique          bool
}

// RandomFlow is the state behind the random-number form.
type RandomFlow struct {
	Min          string
	Max          string
	Count        string
	Unique       bool
	Output       string
	ErrorMessage string

	defaults RandomDefaults
	gen      *randnum.Generator
}

// NewRandomFlow starts from defaults. gen may be nil.
func NewRandomFlow(defaults RandomDefaults, gen *randnum.Generator) *RandomFlow {
	if gen == nil {
		gen = randnum.New()
	}
	f := &RandomFlow{defaults: defaults, gen: gen}
	f.Reset()
	return f
}

// Generate validates the form and draws the numbers. The result is sorted
// ascending for display; Output joins it with ", ".
func (f *RandomFlow) Generate() ([]int, error) {
	f.ErrorMessage = ""

	min, okMin := ParseInt(f.Min)
	max, okMax := ParseInt(f.Max)
	count, okCount := ParseInt(f.Count)
	if !okMin || !okMax || !okCount {
		return nil, f.fail(ErrRandomInputs)
	}
	if count <= 0 {
		return nil, f.fail(ErrRandomCount)
	}
	if f.Unique && uint64(count) > randnum.RangeSize(min, max) {
		return nil, f.fail(ErrRandomRange)
	}

	nums := f.gen.Generate(min, max, count, f.Unique)
	slices.Sort(nums)
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	f.Output = strings.Join(parts, ", ")
	return nums, nil
}

// Reset restores the defaults and clears the output.
func (f *RandomFlow) Reset() {
	f.Min = strconv.Itoa(f.defaults.Min)
	f.Max = strconv.Itoa(f.defaults.Max)
	f.Count = strconv.Itoa(f.defaults.Count)
	f.Unique = f.defaults.Unique
	f.Output = ""
	f.ErrorMessage = ""
}

func (f *RandomFlow) fail(err error) error {
	f.ErrorMessage = ErrorMessage(err)
	return err
}
