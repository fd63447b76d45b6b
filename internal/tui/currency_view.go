// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/i18n"
)

type currencyModel struct {
	flow      *core.CurrencyFlow
	ratesPath string
	form      form
	// split is the index of the first field of the rate editor section.
	split int
}

func codeIndex(codes []string, code string) int {
	if i := slices.Index(codes, strings.ToUpper(code)); i >= 0 {
		return i
	}
	return 0
}

func newCurrencyModel(flow *core.CurrencyFlow, ratesPath string) *currencyModel {
	codes := flow.Codes()
	m := &currencyModel{flow: flow, ratesPath: ratesPath}
	m.form = newForm(
		newTextField("amount", i18n.T("field.amount"), flow.Amount, "0"),
		newChoiceField("from", i18n.T("field.from"), codes, codeIndex(codes, flow.From)),
		newChoiceField("to", i18n.T("field.to"), codes, codeIndex(codes, flow.To)),
		newButton("convert", i18n.T("button.convert")),
		newButton("reset", i18n.T("button.reset")),
		newTextField("code", i18n.T("field.code"), "", "CHF"),
		newTextField("rate", i18n.T("field.rate"), "", "0.95"),
		newButton("set", i18n.T("button.set_rate")),
		newButton("remove", i18n.T("button.remove_rate")),
		newButton("save", i18n.T("button.save")),
	)
	m.split = m.form.index("code")
	return m
}

func (m *currencyModel) syncCodes() {
	codes := m.flow.Codes()
	from, to := m.form.get("from"), m.form.get("to")
	from.choices, to.choices = codes, codes
	from.choice = codeIndex(codes, m.flow.From)
	to.choice = codeIndex(codes, m.flow.To)
}

func (m *currencyModel) Init() tea.Cmd { return nil }

func (m *currencyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return m, func() tea.Msg { return backToMenuMsg{} }
	}

	ev, cmd := m.form.update(msg)
	codes := m.flow.Codes()
	switch ev.kind {
	case eventChanged:
		switch ev.id {
		case "from":
			m.flow.From = codes[m.form.get("from").choice]
		case "to":
			m.flow.To = codes[m.form.get("to").choice]
		case "amount":
			m.flow.Amount = m.form.value("amount")
		}
	case eventPressed:
		switch ev.id {
		case "convert":
			m.flow.Amount = m.form.value("amount")
			_, _ = m.flow.Convert()
		case "reset":
			m.flow.Reset()
			m.form.setValue("amount", "")
			m.syncCodes()
		case "set":
			if err := m.flow.SetRate(m.form.value("code"), m.form.value("rate")); err == nil {
				m.flow.StatusMessage = i18n.T("status.rate_updated")
				m.form.setValue("code", "")
				m.form.setValue("rate", "")
			}
			m.syncCodes()
		case "remove":
			if m.flow.RemoveRate(m.form.value("code")) {
				m.flow.StatusMessage = i18n.T("status.rate_removed")
				m.form.setValue("code", "")
			}
			m.syncCodes()
		case "save":
			_ = m.flow.SaveRates()
		}
	}
	return m, cmd
}

func (m *currencyModel) ratesTable() string {
	var b strings.Builder
	for _, r := range m.flow.Table().Rates() {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", r.Code, i18n.FormatNumber(r.Rate, 4)))
	}
	if m.flow.LoadSource == currency.SourceFile && m.ratesPath != "" {
		b.WriteString(helpStyle.Render(i18n.T("label.rates_source_file", m.ratesPath)) + "\n")
	} else {
		b.WriteString(helpStyle.Render(i18n.T("label.rates_source_defaults")) + "\n")
	}
	return b.String()
}

func (m *currencyModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("menu.currency")) + "\n")
	b.WriteString(m.form.view(0, m.split))
	if m.flow.ResultText != "" {
		b.WriteString(resultBoxStyle.Render(specialStyle.Render(m.flow.ResultText)) + "\n")
	}

	b.WriteString(sectionStyle.Render(i18n.T("section.rates")) + "\n")
	b.WriteString(m.ratesTable())
	b.WriteString(m.form.view(m.split, len(m.form.fields)))

	if m.flow.ErrorMessage != "" {
		b.WriteString("\n" + errorStyle.Render(m.flow.ErrorMessage) + "\n")
	}
	if m.flow.StatusMessage != "" {
		b.WriteString("\n" + successStyle.Render(m.flow.StatusMessage) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(i18n.T("help.form")))
	return b.String()
}
