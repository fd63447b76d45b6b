// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package bmi computes the body-mass index and its WHO adult category.
package bmi // import "github.com/toeirei/unitools/internal/bmi"

// Category is one of the four adult BMI bands.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obese
)

var categoryKeys = [...]string{"underweight", "normal", "overweight", "obese"}

// Key returns the stable identifier of the category.
func (c Category) Key() string {
	if c < Underweight || c > Obese {
		return "unknown"
	}
	return categoryKeys[c]
}

// CategoryMessageID is the message id of the category label.
func (c Category) CategoryMessageID() string { return "bmi.category." + c.Key() }

// RecommendationMessageID is the message id of the recommendation text.
func (c Category) RecommendationMessageID() string { return "bmi.recommendation." + c.Key() }

// Labeler resolves message ids into display text.
type Labeler interface {
	T(messageID string) string
}

// LabelerFunc adapts a function to Labeler.
type LabelerFunc func(messageID string) string

func (f LabelerFunc) T(messageID string) string { return f(messageID) }

// Result is a computed BMI with its labels resolved.
type Result struct {
	Value          float64
	Category       Category
	CategoryLabel  string
	Recommendation string
}

// Value returns weightKg / heightM².
func Value(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// Classify maps a BMI value onto its category. Every value, including NaN,
// lands in exactly one category.
func Classify(value float64) Category {
	switch {
	case value < 18.5:
		return Underweight
	case value < 25:
		return Normal
	case value < 30:
		return Overweight
	}
	return Obese
}

// Calculator computes results and labels them through a Labeler.
type Calculator struct {
	labels Labeler
}

// NewCalculator returns a calculator using labels. A nil Labeler returns
// the raw message ids.
func NewCalculator(labels Labeler) *Calculator {
	if labels == nil {
		labels = LabelerFunc(func(id string) string { return id })
	}
	return &Calculator{labels: labels}
}

// Calculate expects positive inputs; validation is up to the caller.
func (c *Calculator) Calculate(weightKg, heightCm float64) Result {
	v := Value(weightKg, heightCm)
	cat := Classify(v)
	return Result{
		Value:          v,
		Category:       cat,
		CategoryLabel:  c.labels.T(cat.CategoryMessageID()),
		Recommendation: c.labels.T(cat.RecommendationMessageID()),
	}
}
