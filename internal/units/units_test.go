// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package units

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func near(got, want, delta float64) bool {
	return math.Abs(got-want) <= delta
}

func TestConvertTemperature_KnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to TemperatureUnit
		want     float64
	}{
		{"freezing C to F", 0, Celsius, Fahrenheit, 32},
		{"boiling C to F", 100, Celsius, Fahrenheit, 212},
		{"freezing C to K", 0, Celsius, Kelvin, 273.15},
		{"absolute zero K to C", 0, Kelvin, Celsius, -273.15},
		{"minus forty F to C", -40, Fahrenheit, Celsius, -40},
		{"body temp F to K", 98.6, Fahrenheit, Kelvin, 310.15},
		{"same unit", 21.5, Celsius, Celsius, 21.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertTemperature(tt.value, tt.from, tt.to); !near(got, tt.want, 1e-6) {
				t.Errorf("ConvertTemperature(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestConvert_RoundTripsWithinCategory(t *testing.T) {
	values := []float64{0, 1, 12.5, 100, 1234.5678, 1e6}
	for _, c := range Categories() {
		us := UnitsOf(c)
		if len(us) == 0 {
			t.Fatalf("category %s has no units", c)
		}
		for _, a := range us {
			for _, b := range us {
				for _, v := range values {
					got := Convert(c, Convert(c, v, a, b), b, a)
					if !near(got, v, tolerance*max(1, v)) {
						t.Errorf("%s: %v %s->%s->%s = %v", c, v, a.Key(), b.Key(), a.Key(), got)
					}
				}
			}
		}
	}
}

func TestConvert_NegativeTemperaturesRoundTrip(t *testing.T) {
	for _, a := range UnitsOf(Temperature) {
		for _, b := range UnitsOf(Temperature) {
			got := Convert(Temperature, Convert(Temperature, -459.67, a, b), b, a)
			if !near(got, -459.67, tolerance*500) {
				t.Errorf("%s->%s->%s = %v", a.Key(), b.Key(), a.Key(), got)
			}
		}
	}
}

func TestConvertLengthAndMass_ScaleFactors(t *testing.T) {
	tests := []struct {
		name  string
		got   float64
		want  float64
		delta float64
	}{
		{"km to m", ConvertLength(1.5, Kilometer, Meter), 1500, tolerance},
		{"cm to m", ConvertLength(250, Centimeter, Meter), 2.5, tolerance},
		{"cm to mm", ConvertLength(1, Centimeter, Millimeter), 10, tolerance},
		{"mm to m", ConvertLength(1, Millimeter, Meter), 0.001, tolerance},
		{"lb to g", ConvertMass(1, Pound, Gram), 453.59237, tolerance},
		{"kg to lb", ConvertMass(1, Kilogram, Pound), 2.20462262, 1e-8},
		{"g to kg", ConvertMass(3000, Gram, Kilogram), 3, tolerance},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want, tt.delta) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConvert_UnknownUnitsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		// Unknown source unit: value is taken as already canonical.
		{"unknown source", ConvertLength(42, LengthUnit(99), Meter), 42},
		// Unknown target unit: canonical value is returned.
		{"unknown target", ConvertLength(5, Kilometer, LengthUnit(99)), 5000},
		{"unit of another category", Convert(Mass, 7, Celsius, Gram), 7},
		{"unknown category", Convert(Category(42), 3.3, Meter, Kilometer), 3.3},
		{"nil units", Convert(Length, 3.3, nil, nil), 3.3},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want, tolerance) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseCategoryAndUnit(t *testing.T) {
	c, err := ParseCategory(" Length ")
	if err != nil || c != Length {
		t.Fatalf("ParseCategory(Length) = %v, %v", c, err)
	}
	if _, err := ParseCategory("volume"); err == nil {
		t.Error("expected error for unknown category")
	}

	u, err := ParseUnit(Length, "km")
	if err != nil || u != Kilometer {
		t.Fatalf("ParseUnit(km) = %v, %v", u, err)
	}
	u, err = ParseUnit(Temperature, "Fahrenheit")
	if err != nil || u != Fahrenheit {
		t.Fatalf("ParseUnit(Fahrenheit) = %v, %v", u, err)
	}
	if _, err := ParseUnit(Mass, "km"); err == nil {
		t.Error("km is not a mass unit")
	}
}

func TestUnitKeys(t *testing.T) {
	keys := map[string]string{
		Celsius.Key():       "celsius",
		Millimeter.Key():    "millimeter",
		Pound.Key():         "pound",
		LengthUnit(9).Key(): "unit(9)",
	}
	for got, want := range keys {
		if got != want {
			t.Errorf("key %q, want %q", got, want)
		}
	}
	if Pound.Category() != Mass {
		t.Errorf("Pound.Category() = %v", Pound.Category())
	}
	if us := UnitsOf(Category(9)); us != nil {
		t.Errorf("UnitsOf(unknown) = %v, want nil", us)
	}
}
