// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/units"
)

type unitConverterModel struct {
	flow *core.UnitConverterFlow
	form form
}

func unitChoices(c units.Category) []string {
	var names []string
	for _, u := range units.UnitsOf(c) {
		names = append(names, core.UnitName(u))
	}
	return names
}

func unitIndex(c units.Category, u units.Unit) int {
	for i, x := range units.UnitsOf(c) {
		if x == u {
			return i
		}
	}
	return 0
}

func newUnitConverterModel(flow *core.UnitConverterFlow) *unitConverterModel {
	var cats []string
	for _, c := range units.Categories() {
		cats = append(cats, core.CategoryName(c))
	}
	m := &unitConverterModel{flow: flow}
	m.form = newForm(
		newChoiceField("category", i18n.T("field.category"), cats, int(flow.Category)),
		newTextField("value", i18n.T("field.value"), flow.Input, "0"),
		newChoiceField("from", i18n.T("field.from"), unitChoices(flow.Category), unitIndex(flow.Category, flow.From)),
		newChoiceField("to", i18n.T("field.to"), unitChoices(flow.Category), unitIndex(flow.Category, flow.To)),
		newButton("convert", i18n.T("button.convert")),
		newButton("swap", i18n.T("button.swap")),
		newButton("reset", i18n.T("button.reset")),
	)
	m.form.setFocus(1)
	return m
}

// syncUnits copies the flow's unit selection into the choice fields.
func (m *unitConverterModel) syncUnits() {
	names := unitChoices(m.flow.Category)
	from, to := m.form.get("from"), m.form.get("to")
	from.choices, to.choices = names, names
	from.choice = unitIndex(m.flow.Category, m.flow.From)
	to.choice = unitIndex(m.flow.Category, m.flow.To)
	m.form.get("category").choice = int(m.flow.Category)
}

func (m *unitConverterModel) Init() tea.Cmd { return nil }

func (m *unitConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return m, func() tea.Msg { return backToMenuMsg{} }
	}

	ev, cmd := m.form.update(msg)
	us := units.UnitsOf(m.flow.Category)
	switch ev.kind {
	case eventChanged:
		switch ev.id {
		case "category":
			m.flow.SelectCategory(units.Categories()[m.form.get("category").choice])
			m.syncUnits()
		case "from":
			m.flow.From = us[m.form.get("from").choice]
		case "to":
			m.flow.To = us[m.form.get("to").choice]
		case "value":
			m.flow.Input = m.form.value("value")
		}
	case eventPressed:
		switch ev.id {
		case "convert":
			m.flow.Input = m.form.value("value")
			_, _ = m.flow.Convert()
		case "swap":
			m.flow.Swap()
			m.syncUnits()
		case "reset":
			m.flow.Reset()
			m.form.setValue("value", "")
			m.syncUnits()
		}
	}
	return m, cmd
}

func (m *unitConverterModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("menu.unit_converter")) + "\n")
	b.WriteString(m.form.viewAll())
	if m.flow.ResultText != "" {
		b.WriteString(resultBoxStyle.Render(specialStyle.Render(m.flow.ResultText)) + "\n")
	}
	if m.flow.ErrorMessage != "" {
		b.WriteString("\n" + errorStyle.Render(m.flow.ErrorMessage) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(i18n.T("help.form")))
	return b.String()
}
