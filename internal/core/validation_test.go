// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toeirei/unitools/internal/i18n"
)

func TestParseFloat_English(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"  -3 ", -3, true},
		{"1,234.5", 1234.5, true},
		{"-12,345,678", -12345678, true},
		{"1e3", 1000, true},
		{"1,5", 0, false},
		{"12,34,5", 0, false},
		{"1,2345", 0, false},
		{"1.5,000", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFloat(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFloat_German(t *testing.T) {
	i18n.SetLang("de")
	defer i18n.SetLang("en")

	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.234,5", 1234.5, true},
		{"70,5", 70.5, true},
		{"1.000", 1000, true},
		{"1.000.000", 1000000, true},
		// A lone dot that cannot group digits is read as decimal mark.
		{"70.5", 70.5, true},
		{"1.2345", 1.2345, true},
		{"1.23.4", 0, false},
		{"1,5,3", 0, false},
		{"12.34,5.6", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFloat(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseInt(t *testing.T) {
	v, ok := ParseInt(" +42 ")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = ParseInt("-7")
	assert.True(t, ok)
	assert.Equal(t, -7, v)

	for _, in := range []string{"", "1.5", "x", "99999999999"} {
		_, ok := ParseInt(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "Please enter a valid number.", ErrorMessage(ErrInvalidNumber))
	assert.Equal(t, "Please select both currencies.", ErrorMessage(fmt.Errorf("wrapped: %w", ErrSelectCurrencies)))
	assert.Equal(t, "disk full", ErrorMessage(errors.New("disk full")))
	for sentinel, id := range messageIDs {
		assert.NotEqual(t, id, ErrorMessage(sentinel), "message %s is not translated", id)
	}
}
