// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/toeirei/unitools/internal/bmi"
	"github.com/toeirei/unitools/internal/i18n"
)

// BmiFlow is the state behind the BMI form.
type BmiFlow struct {
	WeightKg     string
	HeightCm     string
	ResultText   string
	ErrorMessage string

	calc *bmi.Calculator
}

// NewBmiFlow returns an empty form labelled through i18n.
func NewBmiFlow() *BmiFlow {
	return &BmiFlow{calc: bmi.NewCalculator(i18n.Translator{})}
}

// Calculate validates both inputs and renders the value, category and
// recommendation.
func (f *BmiFlow) Calculate() (bmi.Result, error) {
	f.ErrorMessage = ""
	f.ResultText = ""

	weight, okW := ParseFloat(f.WeightKg)
	height, okH := ParseFloat(f.HeightCm)
	if !okW || !okH {
		return bmi.Result{}, f.fail(ErrInvalidWeightHeight)
	}
	if weight <= 0 || height <= 0 {
		return bmi.Result{}, f.fail(ErrNonPositiveBodyValues)
	}

	r := f.calc.Calculate(weight, height)
	f.ResultText = fmt.Sprintf("BMI: %s\n%s: %s\n%s: %s",
		i18n.FormatFixed(r.Value, 1),
		i18n.T("label.category_result"), r.CategoryLabel,
		i18n.T("label.recommendation"), r.Recommendation)
	return r, nil
}

// Reset clears the form.
func (f *BmiFlow) Reset() {
	*f = BmiFlow{calc: f.calc}
}

func (f *BmiFlow) fail(err error) error {
	f.ErrorMessage = ErrorMessage(err)
	return err
}
