// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/units"
)

// CategoryName returns the localized name of a unit category.
func CategoryName(c units.Category) string {
	return i18n.T("unit.category." + c.Key())
}

// UnitName returns the localized name of a unit.
func UnitName(u units.Unit) string {
	if u == nil {
		return ""
	}
	return i18n.T("unit." + u.Key())
}

// UnitConverterFlow is the state behind the unit converter form.
type UnitConverterFlow struct {
	Input        string
	Category     units.Category
	From         units.Unit
	To           units.Unit
	ResultText   string
	ErrorMessage string
}

// NewUnitConverterFlow starts on the first category.
func NewUnitConverterFlow() *UnitConverterFlow {
	f := &UnitConverterFlow{}
	f.SelectCategory(units.Categories()[0])
	return f
}

// Units lists the units selectable in the current category.
func (f *UnitConverterFlow) Units() []units.Unit {
	return units.UnitsOf(f.Category)
}

// SelectCategory switches category, selecting the first unit as source and
// the second (or first) as target, and clears any previous output.
func (f *UnitConverterFlow) SelectCategory(c units.Category) {
	f.Category = c
	us := units.UnitsOf(c)
	f.From, f.To = nil, nil
	if len(us) > 0 {
		f.From = us[0]
		f.To = us[0]
	}
	if len(us) > 1 {
		f.To = us[1]
	}
	f.ResultText = ""
	f.ErrorMessage = ""
}

// Swap exchanges source and target unit.
func (f *UnitConverterFlow) Swap() {
	f.From, f.To = f.To, f.From
}

// Convert validates Input and the unit selection, converts and renders
// ResultText. On failure ErrorMessage is set and the error returned.
func (f *UnitConverterFlow) Convert() (float64, error) {
	f.ErrorMessage = ""
	f.ResultText = ""

	value, ok := ParseFloat(f.Input)
	if !ok {
		return 0, f.fail(ErrInvalidNumber)
	}
	if f.From == nil || f.To == nil {
		return 0, f.fail(ErrSelectUnits)
	}

	result := units.Convert(f.Category, value, f.From, f.To)
	f.ResultText = fmt.Sprintf("%s %s = %s %s",
		i18n.FormatNumber(value, 3), UnitName(f.From),
		i18n.FormatNumber(result, 3), UnitName(f.To))
	return result, nil
}

// Reset clears the input and returns to the first category.
func (f *UnitConverterFlow) Reset() {
	f.Input = ""
	f.SelectCategory(units.Categories()[0])
}

func (f *UnitConverterFlow) fail(err error) error {
	f.ErrorMessage = ErrorMessage(err)
	return err
}
