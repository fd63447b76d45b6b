// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/i18n"
)

type bmiModel struct {
	flow *core.BmiFlow
	form form
}

func newBmiModel(flow *core.BmiFlow) *bmiModel {
	return &bmiModel{
		flow: flow,
		form: newForm(
			newTextField("weight", i18n.T("field.weight"), flow.WeightKg, "70"),
			newTextField("height", i18n.T("field.height"), flow.HeightCm, "175"),
			newButton("calculate", i18n.T("button.calculate")),
			newButton("reset", i18n.T("button.reset")),
		),
	}
}

func (m *bmiModel) Init() tea.Cmd { return nil }

func (m *bmiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return m, func() tea.Msg { return backToMenuMsg{} }
	}

	ev, cmd := m.form.update(msg)
	switch ev.kind {
	case eventChanged:
		m.flow.WeightKg = m.form.value("weight")
		m.flow.HeightCm = m.form.value("height")
	case eventPressed:
		switch ev.id {
		case "calculate":
			m.flow.WeightKg = m.form.value("weight")
			m.flow.HeightCm = m.form.value("height")
			_, _ = m.flow.Calculate()
		case "reset":
			m.flow.Reset()
			m.form.setValue("weight", "")
			m.form.setValue("height", "")
		}
	}
	return m, cmd
}

func (m *bmiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("menu.bmi")) + "\n")
	b.WriteString(m.form.viewAll())
	if m.flow.ResultText != "" {
		b.WriteString(resultBoxStyle.Render(m.flow.ResultText) + "\n")
	}
	if m.flow.ErrorMessage != "" {
		b.WriteString("\n" + errorStyle.Render(m.flow.ErrorMessage) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(i18n.T("help.form")))
	return b.String()
}
