// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/toeirei/unitools/internal/i18n"
)

// Input validation failures. Each maps onto a localized message; see
// ErrorMessage.
var (
	ErrInvalidNumber         = errors.New("enter a valid number")
	ErrSelectUnits           = errors.New("select both units")
	ErrInvalidAmount         = errors.New("enter a valid amount")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrSelectCurrencies      = errors.New("select both currencies")
	ErrRateMissing           = errors.New("no usable rate for the selected currency")
	ErrInvalidRate           = errors.New("every rate needs a code and a positive value")
	ErrNoCharacterClass      = errors.New("select at least one character class")
	ErrLengthTooShort        = errors.New("length is shorter than the number of selected classes")
	ErrRandomInputs          = errors.New("enter whole numbers for min, max and count")
	ErrRandomCount           = errors.New("count must be greater than zero")
	ErrRandomRange           = errors.New("range is too small for unique numbers")
	ErrInvalidWeightHeight   = errors.New("enter a valid weight and height")
	ErrNonPositiveBodyValues = errors.New("weight and height must be positive")
	ErrNothingToCopy         = errors.New("nothing to copy")
)

var messageIDs = map[error]string{
	ErrInvalidNumber:         "error.enter_valid_number",
	ErrSelectUnits:           "error.select_units",
	ErrInvalidAmount:         "error.valid_amount",
	ErrNegativeAmount:        "error.amount_positive",
	ErrSelectCurrencies:      "error.select_currencies",
	ErrRateMissing:           "error.rate_missing",
	ErrInvalidRate:           "error.invalid_rate",
	ErrNoCharacterClass:      "error.select_category",
	ErrLengthTooShort:        "error.length_too_short",
	ErrRandomInputs:          "error.random_inputs",
	ErrRandomCount:           "error.random_count",
	ErrRandomRange:           "error.random_range",
	ErrInvalidWeightHeight:   "error.valid_weight_height",
	ErrNonPositiveBodyValues: "error.positive_weight_height",
	ErrNothingToCopy:         "error.nothing_to_copy",
}

// ErrorMessage returns the localized text for err. Errors that are not
// validation failures are shown as-is.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, id := range messageIDs {
		if errors.Is(err, sentinel) {
			return i18n.T(id)
		}
	}
	return err.Error()
}

// groupedNumbers match a number whose integer part is split into groups
// of three digits, keyed by the grouping separator.
var groupedNumbers = map[string]*regexp.Regexp{
	",": regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`),
	".": regexp.MustCompile(`^[+-]?\d{1,3}(\.\d{3})+(,\d+)?$`),
}

// ParseFloat parses user input using the active language's decimal mark.
// A grouping separator is only accepted between groups of three digits
// left of the decimal mark; anything else is rejected. With ',' as decimal
// mark a single '.' is still read as decimal mark when it cannot be a
// grouping separator. Only finite values are accepted.
func ParseFloat(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	dec, group := ".", ","
	if i18n.DecimalSeparator() == "," {
		dec, group = ",", "."
	}

	if strings.Contains(s, group) {
		switch {
		case groupedNumbers[group].MatchString(s):
			s = strings.ReplaceAll(s, group, "")
		case dec == "," && !strings.Contains(s, ",") && strings.Count(s, ".") == 1:
			return parseFinite(s)
		default:
			return 0, false
		}
	}
	return parseFinite(strings.Replace(s, dec, ".", 1))
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseInt parses a 32-bit signed integer, allowing surrounding spaces and
// a leading sign.
func ParseInt(input string) (int, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
