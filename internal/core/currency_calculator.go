// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/i18n"
)

// RateStore loads and persists the rate table. *currency.Store implements it.
type RateStore interface {
	Load() currency.LoadResult
	Save(rates []currency.Rate) error
}

// CurrencyFlow is the state behind the currency converter form. It owns
// the in-memory rate table; edits only become durable through SaveRates.
type CurrencyFlow struct {
	Amount        string
	From          string
	To            string
	ResultText    string
	ErrorMessage  string
	StatusMessage string
	// LoadSource records whether the table came from disk or defaults.
	LoadSource currency.Source

	store RateStore
	table *currency.Table
	now   func() time.Time
}

// NewCurrencyFlow loads the table from store. now may be nil.
func NewCurrencyFlow(store RateStore, now func() time.Time) *CurrencyFlow {
	if now == nil {
		now = time.Now
	}
	res := store.Load()
	f := &CurrencyFlow{
		store:      store,
		table:      currency.NewTable(res.Rates),
		now:        now,
		LoadSource: res.Source,
	}
	f.selectDefaults()
	return f
}

// Table exposes the in-memory table.
func (f *CurrencyFlow) Table() *currency.Table { return f.table }

// Codes lists the selectable currency codes, sorted.
func (f *CurrencyFlow) Codes() []string { return f.table.Codes() }

func (f *CurrencyFlow) selectDefaults() {
	codes := f.table.Codes()
	f.From, f.To = "", ""
	if len(codes) > 0 {
		f.From = codes[0]
		f.To = codes[0]
	}
	if len(codes) > 1 {
		f.To = codes[1]
	}
}

// Convert validates the form and renders the conversion, the effective
// rate and a timestamp into ResultText.
func (f *CurrencyFlow) Convert() (float64, error) {
	f.ErrorMessage = ""
	f.StatusMessage = ""
	f.ResultText = ""

	amount, ok := ParseFloat(f.Amount)
	if !ok {
		return 0, f.fail(ErrInvalidAmount)
	}
	if amount < 0 {
		return 0, f.fail(ErrNegativeAmount)
	}
	if strings.TrimSpace(f.From) == "" || strings.TrimSpace(f.To) == "" {
		return 0, f.fail(ErrSelectCurrencies)
	}

	from, to := strings.ToUpper(f.From), strings.ToUpper(f.To)
	dict := f.table.Dictionary()
	rateFrom, okFrom := dict[from]
	rateTo, okTo := dict[to]
	if !okFrom || !okTo || !(rateFrom > 0) || !(rateTo > 0) {
		return 0, f.fail(ErrRateMissing)
	}

	result := currency.Convert(amount, rateFrom, rateTo)
	used := rateTo / rateFrom
	f.ResultText = fmt.Sprintf("%s %s = %s %s\n%s: %s\n%s: %s",
		i18n.FormatNumber(amount, 2), from, i18n.FormatNumber(result, 2), to,
		i18n.T("label.rate_used"), i18n.FormatNumber(used, 4),
		i18n.T("label.updated"), f.now().Format(i18n.T("format.datetime")))
	return result, nil
}

// SetRate adds or updates a row. The rate text is parsed like any other
// number input and must be positive.
func (f *CurrencyFlow) SetRate(code, rateText string) error {
	f.ErrorMessage = ""
	f.StatusMessage = ""

	code = strings.ToUpper(strings.TrimSpace(code))
	rate, ok := ParseFloat(rateText)
	if code == "" || !ok || !(rate > 0) {
		return f.fail(ErrInvalidRate)
	}
	f.table.Set(code, rate)
	f.keepSelection()
	return nil
}

// RemoveRate drops a currency from the table.
func (f *CurrencyFlow) RemoveRate(code string) bool {
	removed := f.table.Remove(code)
	if removed {
		f.keepSelection()
	}
	return removed
}

// keepSelection resets a selection that no longer names a known code.
func (f *CurrencyFlow) keepSelection() {
	codes := f.table.Codes()
	if !slices.Contains(codes, strings.ToUpper(f.From)) || !slices.Contains(codes, strings.ToUpper(f.To)) {
		f.selectDefaults()
	}
}

// SaveRates validates the table and persists it.
func (f *CurrencyFlow) SaveRates() error {
	f.ErrorMessage = ""
	f.StatusMessage = ""

	if err := f.table.Validate(); err != nil {
		return f.fail(fmt.Errorf("%w: %w", ErrInvalidRate, err))
	}
	if err := f.store.Save(f.table.Rates()); err != nil {
		f.ErrorMessage = err.Error()
		return err
	}
	f.LoadSource = currency.SourceFile
	f.StatusMessage = i18n.T("status.rates_saved")
	return nil
}

// Reset clears the form and restores the default selection. The rate table
// is left untouched.
func (f *CurrencyFlow) Reset() {
	f.Amount = ""
	f.ResultText = ""
	f.ErrorMessage = ""
	f.StatusMessage = ""
	f.selectDefaults()
}

func (f *CurrencyFlow) fail(err error) error {
	f.ErrorMessage = ErrorMessage(err)
	return err
}
