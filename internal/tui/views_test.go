// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/password"
	"github.com/toeirei/unitools/internal/units"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func tabs(m tea.Model, n int) tea.Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(key(tea.KeyTab))
	}
	return m
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func TestForm_FocusWrapsAndToggles(t *testing.T) {
	f := newForm(
		newTextField("a", "A", "", ""),
		newToggleField("b", "B", false),
		newChoiceField("c", "C", []string{"x", "y", "z"}, 0),
		newButton("go", "Go"),
	)
	assert.Equal(t, 0, f.focus)
	assert.True(t, f.fields[0].input.Focused())

	f.update(key(tea.KeyShiftTab))
	assert.Equal(t, 3, f.focus)
	f.update(key(tea.KeyTab))
	f.update(key(tea.KeyTab))
	assert.Equal(t, 1, f.focus)
	assert.False(t, f.fields[0].input.Focused())

	ev, _ := f.update(key(tea.KeySpace))
	assert.Equal(t, formEvent{kind: eventChanged, id: "b"}, ev)
	assert.True(t, f.get("b").on)

	f.update(key(tea.KeyTab))
	ev, _ = f.update(key(tea.KeyLeft))
	assert.Equal(t, eventChanged, ev.kind)
	assert.Equal(t, 2, f.get("c").choice, "left wraps to the last choice")

	f.update(key(tea.KeyTab))
	ev, _ = f.update(key(tea.KeyEnter))
	assert.Equal(t, formEvent{kind: eventPressed, id: "go"}, ev)
}

func TestForm_EnterInTextFieldPressesNextButton(t *testing.T) {
	f := newForm(
		newTextField("a", "A", "", ""),
		newButton("first", "First"),
		newTextField("b", "B", "", ""),
		newButton("second", "Second"),
	)
	f.setFocus(2)
	ev, _ := f.update(key(tea.KeyEnter))
	assert.Equal(t, formEvent{kind: eventPressed, id: "second"}, ev)
}

func TestForm_ViewMarksToggleAndChoice(t *testing.T) {
	f := newForm(newToggleField("t", "T", true), newChoiceField("c", "C", []string{"one"}, 0))
	out := f.viewAll()
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "one")
}

func TestUnitConverterView_ConvertSwapAndCategory(t *testing.T) {
	flow := core.NewUnitConverterFlow()
	var m tea.Model = newUnitConverterModel(flow)

	m = typeText(m, "100")
	assert.Equal(t, "100", flow.Input)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, flow.ErrorMessage)
	assert.Contains(t, flow.ResultText, "212")

	// Focus the swap button: value -> from -> to -> convert -> swap.
	m = tabs(m, 4)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, units.Fahrenheit, flow.From)
	assert.Equal(t, units.Celsius, flow.To)
	uv := m.(*unitConverterModel)
	assert.Equal(t, 1, uv.form.get("from").choice)

	// Back to the category field and step to length.
	m = tabs(m, 2)
	m, _ = m.Update(key(tea.KeyRight))
	assert.Equal(t, units.Length, flow.Category)
	assert.Equal(t, units.Meter, flow.From)
	assert.Len(t, uv.form.get("to").choices, 4)
}

func TestUnitConverterView_InvalidInput(t *testing.T) {
	flow := core.NewUnitConverterFlow()
	var m tea.Model = newUnitConverterModel(flow)
	m = typeText(m, "abc")
	m, _ = m.Update(key(tea.KeyEnter))
	assert.NotEmpty(t, flow.ErrorMessage)
	assert.Contains(t, m.View(), flow.ErrorMessage)
}

func TestCurrencyView_ConvertEditAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), currency.RatesFileName)
	flow := core.NewCurrencyFlow(currency.NewStore(path), nil)
	var m tea.Model = newCurrencyModel(flow, path)

	m = typeText(m, "100")
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, flow.ErrorMessage)
	assert.Contains(t, flow.ResultText, "EUR")

	// amount -> from -> to -> convert -> reset -> code
	m = tabs(m, 5)
	m = typeText(m, "chf")
	m = tabs(m, 1)
	m = typeText(m, "0.95")
	m = tabs(m, 1)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, flow.ErrorMessage)
	assert.Contains(t, flow.Codes(), "CHF")
	assert.Contains(t, m.(*currencyModel).form.get("from").choices, "CHF")

	// set -> remove -> save
	m = tabs(m, 2)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, flow.ErrorMessage)
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, currency.SourceFile, flow.LoadSource)
	assert.Contains(t, m.View(), path)
}

func TestCurrencyView_RejectsBadRate(t *testing.T) {
	flow := core.NewCurrencyFlow(currency.NewStore(filepath.Join(t.TempDir(), "r.json")), nil)
	var m tea.Model = newCurrencyModel(flow, "")
	m = tabs(m, 5)
	m = typeText(m, "XYZ")
	m = tabs(m, 1)
	m = typeText(m, "-1")
	m, _ = m.Update(key(tea.KeyEnter))
	assert.NotEmpty(t, flow.ErrorMessage)
	assert.NotContains(t, flow.Codes(), "XYZ")
}

func TestPasswordView_GenerateAndCopy(t *testing.T) {
	clip := &fakeClipboard{}
	pw := core.NewPasswordFlow(password.DefaultOptions(), nil, clip)
	rnd := core.NewRandomFlow(core.RandomDefaults{Min: 1, Max: 6, Count: 3}, nil)
	var m tea.Model = newPasswordModel(pw, rnd)

	// Turn on symbols (length -> upper -> lower -> digits -> symbols).
	m = tabs(m, 4)
	m, _ = m.Update(key(tea.KeySpace))
	assert.True(t, pw.Options.Symbols)

	m = tabs(m, 2)
	m, _ = m.Update(key(tea.KeyEnter))
	require.Empty(t, pw.ErrorMessage)
	assert.Len(t, pw.Password, 16)

	m = tabs(m, 1)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, pw.Password, clip.text)
	assert.NotEmpty(t, pw.StatusMessage)
	assert.Contains(t, m.View(), pw.StatusMessage)
}

func TestPasswordView_InvalidLengthAndClipboardError(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	pw := core.NewPasswordFlow(password.DefaultOptions(), nil, clip)
	var m tea.Model = newPasswordModel(pw, core.NewRandomFlow(core.RandomDefaults{Min: 1, Max: 10, Count: 1}, nil))

	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(key(tea.KeyBackspace))
	m = typeText(m, "x")
	m, _ = m.Update(key(tea.KeyEnter))
	assert.NotEmpty(t, pw.ErrorMessage)
	assert.Empty(t, pw.Password)

	m = tabs(m, 7)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.NotEmpty(t, pw.ErrorMessage, "nothing to copy yet")
}

func TestPasswordView_RandomNumbersAndReset(t *testing.T) {
	pw := core.NewPasswordFlow(password.DefaultOptions(), nil, &fakeClipboard{})
	rnd := core.NewRandomFlow(core.RandomDefaults{Min: 1, Max: 6, Count: 3}, nil)
	var m tea.Model = newPasswordModel(pw, rnd)

	// min -> max -> count -> unique -> numbers
	m = tabs(m, 11)
	m, _ = m.Update(key(tea.KeySpace))
	assert.True(t, rnd.Unique)
	m = tabs(m, 1)
	m, _ = m.Update(key(tea.KeyEnter))
	require.Empty(t, rnd.ErrorMessage)
	assert.NotEmpty(t, rnd.Output)

	m = tabs(m, 1)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, rnd.Output)
	assert.False(t, rnd.Unique)
	assert.False(t, m.(*passwordModel).form.get("unique").on)
}

func TestBmiView_Calculate(t *testing.T) {
	flow := core.NewBmiFlow()
	var m tea.Model = newBmiModel(flow)
	m = typeText(m, "70")
	m = tabs(m, 1)
	m = typeText(m, "175")
	m, _ = m.Update(key(tea.KeyEnter))
	require.Empty(t, flow.ErrorMessage)
	assert.Contains(t, flow.ResultText, "22.9")
	assert.Contains(t, m.View(), "Normal weight")

	m = tabs(m, 2)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Empty(t, flow.ResultText)
	assert.Empty(t, m.(*bmiModel).form.value("weight"))
}
