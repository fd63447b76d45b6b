// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/i18n"
)

// passwordModel hosts both the password generator and the random-number
// generator on one screen.
type passwordModel struct {
	pw    *core.PasswordFlow
	rnd   *core.RandomFlow
	form  form
	split int
}

func newPasswordModel(pw *core.PasswordFlow, rnd *core.RandomFlow) *passwordModel {
	m := &passwordModel{pw: pw, rnd: rnd}
	o := pw.Options
	m.form = newForm(
		newTextField("length", i18n.T("field.length"), strconv.Itoa(o.Length), "16"),
		newToggleField("upper", i18n.T("option.uppercase"), o.Uppercase),
		newToggleField("lower", i18n.T("option.lowercase"), o.Lowercase),
		newToggleField("digits", i18n.T("option.digits"), o.Digits),
		newToggleField("symbols", i18n.T("option.symbols"), o.Symbols),
		newToggleField("similar", i18n.T("option.exclude_similar"), o.ExcludeSimilar),
		newButton("generate", i18n.T("button.generate")),
		newButton("copy", i18n.T("button.copy")),
		newTextField("min", i18n.T("field.min"), rnd.Min, "1"),
		newTextField("max", i18n.T("field.max"), rnd.Max, "100"),
		newTextField("count", i18n.T("field.count"), rnd.Count, "1"),
		newToggleField("unique", i18n.T("option.unique"), rnd.Unique),
		newButton("numbers", i18n.T("button.generate_numbers")),
		newButton("reset", i18n.T("button.reset")),
	)
	m.split = m.form.index("min")
	return m
}

// syncOptions copies toggles and the length field into the password flow.
// An unparsable length leaves the previous length in place and reports false.
func (m *passwordModel) syncOptions() bool {
	o := &m.pw.Options
	o.Uppercase = m.form.get("upper").on
	o.Lowercase = m.form.get("lower").on
	o.Digits = m.form.get("digits").on
	o.Symbols = m.form.get("symbols").on
	o.ExcludeSimilar = m.form.get("similar").on
	n, ok := core.ParseInt(m.form.value("length"))
	if ok {
		o.Length = n
	}
	return ok
}

func (m *passwordModel) syncRandom() {
	m.rnd.Min = m.form.value("min")
	m.rnd.Max = m.form.value("max")
	m.rnd.Count = m.form.value("count")
	m.rnd.Unique = m.form.get("unique").on
}

// reload writes the flows' state back into the form after a reset.
func (m *passwordModel) reload() {
	o := m.pw.Options
	m.form.setValue("length", strconv.Itoa(o.Length))
	m.form.get("upper").on = o.Uppercase
	m.form.get("lower").on = o.Lowercase
	m.form.get("digits").on = o.Digits
	m.form.get("symbols").on = o.Symbols
	m.form.get("similar").on = o.ExcludeSimilar
	m.form.setValue("min", m.rnd.Min)
	m.form.setValue("max", m.rnd.Max)
	m.form.setValue("count", m.rnd.Count)
	m.form.get("unique").on = m.rnd.Unique
}

func (m *passwordModel) Init() tea.Cmd { return nil }

func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return m, func() tea.Msg { return backToMenuMsg{} }
	}

	ev, cmd := m.form.update(msg)
	switch ev.kind {
	case eventChanged:
		m.syncOptions()
		m.syncRandom()
	case eventPressed:
		switch ev.id {
		case "generate":
			if !m.syncOptions() {
				m.pw.ErrorMessage = core.ErrorMessage(core.ErrInvalidNumber)
				m.pw.StatusMessage = ""
				break
			}
			_, _ = m.pw.Generate()
		case "copy":
			_ = m.pw.Copy()
		case "numbers":
			m.syncRandom()
			_, _ = m.rnd.Generate()
		case "reset":
			m.pw.Reset()
			m.rnd.Reset()
			m.reload()
		}
	}
	return m, cmd
}

func (m *passwordModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("menu.password_random")) + "\n")

	b.WriteString(sectionStyle.Render(i18n.T("section.password")) + "\n")
	b.WriteString(m.form.view(0, m.split))
	b.WriteString(formLabelStyle.Render(i18n.T("label.strength")) + specialStyle.Render(m.pw.StrengthLabel()) + "\n")
	if m.pw.Password != "" {
		b.WriteString(resultBoxStyle.Render(m.pw.Password) + "\n")
	}
	if m.pw.ErrorMessage != "" {
		b.WriteString(errorStyle.Render(m.pw.ErrorMessage) + "\n")
	}
	if m.pw.StatusMessage != "" {
		b.WriteString(statusMessageStyle.Render(m.pw.StatusMessage) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render(i18n.T("section.random")) + "\n")
	b.WriteString(m.form.view(m.split, len(m.form.fields)))
	if m.rnd.Output != "" {
		b.WriteString(resultBoxStyle.Render(m.rnd.Output) + "\n")
	}
	if m.rnd.ErrorMessage != "" {
		b.WriteString(errorStyle.Render(m.rnd.ErrorMessage) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(i18n.T("help.form")))
	return b.String()
}
