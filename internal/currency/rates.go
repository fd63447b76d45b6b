// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package currency holds the exchange-rate table and the conversion
// arithmetic. All rates are relative to one fixed base currency (EUR in the
// built-in table), so converting is a divide followed by a multiply.
package currency // import "github.com/toeirei/unitools/internal/currency"

import (
	"errors"
	"sort"
	"strings"
)

// Rate is one row of the rate table.
type Rate struct {
	Code string  `json:"Code"`
	Rate float64 `json:"Rate"`
}

// ErrInvalidRate is returned by Table.Validate when a row has a blank code or
// a rate that is not strictly positive.
var ErrInvalidRate = errors.New("currency rate needs a code and a positive rate")

// DefaultRates returns a fresh copy of the built-in table.
func DefaultRates() []Rate {
	return []Rate{
		{Code: "EUR", Rate: 1.0},
		{Code: "USD", Rate: 1.08},
		{Code: "GBP", Rate: 0.86},
		{Code: "SEK", Rate: 11.2},
		{Code: "NOK", Rate: 11.4},
	}
}

// BuildRateDictionary collapses rates into a lookup keyed by upper-cased
// code. Codes compare case-insensitively and the first occurrence wins.
func BuildRateDictionary(rates []Rate) map[string]float64 {
	dict := make(map[string]float64, len(rates))
	for _, r := range rates {
		key := strings.ToUpper(r.Code)
		if _, seen := dict[key]; seen {
			continue
		}
		dict[key] = r.Rate
	}
	return dict
}

// Convert converts amount from one currency into another given both rates
// relative to the base currency. rateFrom must be non-zero.
func Convert(amount, rateFrom, rateTo float64) float64 {
	return amount / rateFrom * rateTo
}

// Table is the in-memory, user-editable rate table. It is owned by a single
// caller and is not safe for concurrent mutation.
type Table struct {
	rates []Rate
}

// NewTable copies rates into a new table.
func NewTable(rates []Rate) *Table {
	return &Table{rates: append([]Rate(nil), rates...)}
}

// Rates returns a copy of the rows in table order.
func (t *Table) Rates() []Rate {
	return append([]Rate(nil), t.rates...)
}

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.rates) }

// Codes returns the distinct upper-cased codes, sorted.
func (t *Table) Codes() []string {
	dict := BuildRateDictionary(t.rates)
	codes := make([]string, 0, len(dict))
	for code := range dict {
		if strings.TrimSpace(code) == "" {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Dictionary is BuildRateDictionary over the current rows.
func (t *Table) Dictionary() map[string]float64 {
	return BuildRateDictionary(t.rates)
}

// Set updates the first row whose code matches case-insensitively, or
// appends a new row. The rate is not validated here; see Validate.
func (t *Table) Set(code string, rate float64) {
	code = strings.TrimSpace(code)
	for i := range t.rates {
		if strings.EqualFold(t.rates[i].Code, code) {
			t.rates[i].Rate = rate
			return
		}
	}
	t.rates = append(t.rates, Rate{Code: strings.ToUpper(code), Rate: rate})
}

// Remove deletes every row matching code case-insensitively and reports
// whether anything was removed.
func (t *Table) Remove(code string) bool {
	code = strings.TrimSpace(code)
	kept := t.rates[:0]
	removed := false
	for _, r := range t.rates {
		if strings.EqualFold(r.Code, code) {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	t.rates = kept
	return removed
}

// Validate checks that every row has a non-blank code and a rate > 0.
func (t *Table) Validate() error {
	for _, r := range t.rates {
		if strings.TrimSpace(r.Code) == "" || !(r.Rate > 0) {
			return ErrInvalidRate
		}
	}
	return nil
}
