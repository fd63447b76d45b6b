// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package units converts values between units of the same physical category.
// Every category chains through a canonical unit (Kelvin, metre, gram), so a
// conversion is always "into canonical, then out of canonical".
package units // import "github.com/toeirei/unitools/internal/units"

import (
	"fmt"
	"strings"
)

// Category identifies a family of interconvertible units.
type Category int

const (
	Temperature Category = iota
	Length
	Mass
)

// Unit is implemented by the per-category unit types. A Unit always knows
// which category it belongs to, so a temperature can never be handed to the
// length formulas by accident.
type Unit interface {
	Category() Category
	Key() string
}

// TemperatureUnit is a unit of the Temperature category.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

// LengthUnit is a unit of the Length category.
type LengthUnit int

const (
	Meter LengthUnit = iota
	Kilometer
	Centimeter
	Millimeter
)

// MassUnit is a unit of the Mass category.
type MassUnit int

const (
	Gram MassUnit = iota
	Kilogram
	Pound
)

const (
	celsiusOffset = 273.15
	gramsPerPound = 453.59237
)

var categoryKeys = map[Category]string{
	Temperature: "temperature",
	Length:      "length",
	Mass:        "mass",
}

var temperatureKeys = map[TemperatureUnit]string{Celsius: "celsius", Fahrenheit: "fahrenheit", Kelvin: "kelvin"}
var lengthKeys = map[LengthUnit]string{Meter: "meter", Kilometer: "kilometer", Centimeter: "centimeter", Millimeter: "millimeter"}
var massKeys = map[MassUnit]string{Gram: "gram", Kilogram: "kilogram", Pound: "pound"}

func (c Category) Key() string {
	if k, ok := categoryKeys[c]; ok {
		return k
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) String() string { return c.Key() }

func (u TemperatureUnit) Category() Category { return Temperature }
func (u LengthUnit) Category() Category      { return Length }
func (u MassUnit) Category() Category        { return Mass }

func (u TemperatureUnit) Key() string { return keyOr(temperatureKeys, u) }
func (u LengthUnit) Key() string      { return keyOr(lengthKeys, u) }
func (u MassUnit) Key() string        { return keyOr(massKeys, u) }

func keyOr[U ~int](m map[U]string, u U) string {
	if k, ok := m[u]; ok {
		return k
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Temperature, Length, Mass}
}

// UnitsOf returns the members of a category in display order. An unknown
// category has no units.
func UnitsOf(c Category) []Unit {
	switch c {
	case Temperature:
		return []Unit{Celsius, Fahrenheit, Kelvin}
	case Length:
		return []Unit{Meter, Kilometer, Centimeter, Millimeter}
	case Mass:
		return []Unit{Gram, Kilogram, Pound}
	}
	return nil
}

// ParseCategory resolves a category by its key, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.Key() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown unit category %q", s)
}

// ParseUnit resolves a unit of category c by key or by a common symbol
// ("c", "km", "lb", ...).
func ParseUnit(c Category, s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := unitAliases[s]; ok {
		s = alias
	}
	for _, u := range UnitsOf(c) {
		if u.Key() == s {
			return u, nil
		}
	}
	return nil, fmt.Errorf("unknown %s unit %q", c.Key(), s)
}

var unitAliases = map[string]string{
	"c": "celsius", "°c": "celsius",
	"f": "fahrenheit", "°f": "fahrenheit",
	"k": "kelvin",
	"m": "meter", "metre": "meter",
	"km": "kilometer", "kilometre": "kilometer",
	"cm": "centimeter", "centimetre": "centimeter",
	"mm": "millimeter", "millimetre": "millimeter",
	"g": "gram", "kg": "kilogram",
	"lb": "pound", "lbs": "pound",
}

// Convert converts value from one unit to another within category. Units
// that are unknown, or that belong to a different category, pass the value
// through unchanged; so does an unknown category.
func Convert(category Category, value float64, from, to Unit) float64 {
	switch category {
	case Temperature:
		f, _ := from.(TemperatureUnit)
		t, _ := to.(TemperatureUnit)
		return ConvertTemperature(value, temperatureOrUnknown(from, f), temperatureOrUnknown(to, t))
	case Length:
		f, _ := from.(LengthUnit)
		t, _ := to.(LengthUnit)
		return ConvertLength(value, lengthOrUnknown(from, f), lengthOrUnknown(to, t))
	case Mass:
		f, _ := from.(MassUnit)
		t, _ := to.(MassUnit)
		return ConvertMass(value, massOrUnknown(from, f), massOrUnknown(to, t))
	}
	return value
}

// unknown marks a unit the formulas below do not recognise.
const unknown = -1

func temperatureOrUnknown(u Unit, t TemperatureUnit) TemperatureUnit {
	if _, ok := u.(TemperatureUnit); !ok {
		return unknown
	}
	return t
}

func lengthOrUnknown(u Unit, l LengthUnit) LengthUnit {
	if _, ok := u.(LengthUnit); !ok {
		return unknown
	}
	return l
}

func massOrUnknown(u Unit, m MassUnit) MassUnit {
	if _, ok := u.(MassUnit); !ok {
		return unknown
	}
	return m
}

// ConvertTemperature converts through Kelvin.
func ConvertTemperature(value float64, from, to TemperatureUnit) float64 {
	kelvin := value
	switch from {
	case Celsius:
		kelvin = value + celsiusOffset
	case Fahrenheit:
		kelvin = (value-32)*5/9 + celsiusOffset
	}

	switch to {
	case Celsius:
		return kelvin - celsiusOffset
	case Fahrenheit:
		return (kelvin-celsiusOffset)*9/5 + 32
	}
	return kelvin
}

// ConvertLength converts through metres.
func ConvertLength(value float64, from, to LengthUnit) float64 {
	meters := value
	switch from {
	case Kilometer:
		meters = value * 1000
	case Centimeter:
		meters = value / 100
	case Millimeter:
		meters = value / 1000
	}

	switch to {
	case Kilometer:
		return meters / 1000
	case Centimeter:
		return meters * 100
	case Millimeter:
		return meters * 1000
	}
	return meters
}

// ConvertMass converts through grams.
func ConvertMass(value float64, from, to MassUnit) float64 {
	grams := value
	switch from {
	case Kilogram:
		grams = value * 1000
	case Pound:
		grams = value * gramsPerPound
	}

	switch to {
	case Kilogram:
		return grams / 1000
	case Pound:
		return grams / gramsPerPound
	}
	return grams
}
