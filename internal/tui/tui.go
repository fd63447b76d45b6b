// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Unitools.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to the tool views.
package tui // import "github.com/toeirei/unitools/internal/tui"

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/logging"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	unitView
	currencyView
	passwordView
	bmiView
	languageView
)

// backToMenuMsg is sent by a tool view when the user leaves it.
type backToMenuMsg struct{}

// languageChangedMsg asks the main model to rebuild its views with the new
// translations.
type languageChangedMsg struct{}

// Deps carries the flows the views operate on. The flows outlive language
// switches, so entered values survive a rebuild of the views.
type Deps struct {
	Units    *core.UnitConverterFlow
	Currency *core.CurrencyFlow
	Password *core.PasswordFlow
	Random   *core.RandomFlow
	Bmi      *core.BmiFlow
	// RatesPath is shown as the origin of file-backed rates.
	RatesPath string
	// LogFile receives log output while the TUI owns the terminal. When
	// empty, logging stays on stderr.
	LogFile string
	// SaveLanguage persists a language picked in the TUI. May be nil.
	SaveLanguage func(lang string) error
}

func (d *Deps) fill() {
	if d.Units == nil {
		d.Units = core.NewUnitConverterFlow()
	}
	if d.Bmi == nil {
		d.Bmi = core.NewBmiFlow()
	}
	if d.Random == nil {
		d.Random = core.NewRandomFlow(core.RandomDefaults{Min: 1, Max: 100, Count: 5}, nil)
	}
}

// mainModel is the top-level model. It routes messages to the active view.
type mainModel struct {
	deps     Deps
	state    viewState
	menu     menuModel
	language languageModel

	units    *unitConverterModel
	currency *currencyModel
	password *passwordModel
	bmi      *bmiModel

	width, height int
}

type menuModel struct {
	choices []string
	cursor  int
}

type languageModel struct {
	choices     map[string]string
	orderedKeys []string
	cursor      int
}

func menuChoices() []string {
	return []string{
		i18n.T("menu.unit_converter"),
		i18n.T("menu.currency"),
		i18n.T("menu.password_random"),
		i18n.T("menu.bmi"),
		i18n.T("menu.language"),
		i18n.T("menu.quit"),
	}
}

func initialModel(deps Deps) mainModel {
	deps.fill()
	m := mainModel{deps: deps, state: menuView, menu: menuModel{choices: menuChoices()}}
	m.buildViews()
	return m
}

// buildViews creates the tool views from the flows, picking up the active
// language for every label.
func (m *mainModel) buildViews() {
	m.units = newUnitConverterModel(m.deps.Units)
	if m.deps.Currency != nil {
		m.currency = newCurrencyModel(m.deps.Currency, m.deps.RatesPath)
	}
	if m.deps.Password != nil {
		m.password = newPasswordModel(m.deps.Password, m.deps.Random)
	}
	m.bmi = newBmiModel(m.deps.Bmi)
}

func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cursor := 0
	for i, k := range keys {
		if k == i18n.GetLang() {
			cursor = i
		}
	}
	return languageModel{choices: choices, orderedKeys: keys, cursor: cursor}
}

func (m mainModel) Init() tea.Cmd { return nil }

// active returns the tool view for the current state, or nil on the menu
// and language screens.
func (m mainModel) active() tea.Model {
	switch m.state {
	case unitView:
		return m.units
	case currencyView:
		if m.currency != nil {
			return m.currency
		}
	case passwordView:
		if m.password != nil {
			return m.password
		}
	case bmiView:
		return m.bmi
	}
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case backToMenuMsg:
		m.state = menuView
		return m, nil
	case languageChangedMsg:
		m.menu = menuModel{choices: menuChoices(), cursor: m.menu.cursor}
		m.buildViews()
		m.state = menuView
		return m, nil
	}

	switch m.state {
	case menuView:
		return m.updateMenu(msg)
	case languageView:
		return m.updateLanguage(msg)
	}

	if v := m.active(); v != nil {
		_, cmd := v.Update(msg)
		return m, cmd
	}
	m.state = menuView
	return m, nil
}

func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case "L":
		m.state = languageView
		m.language = newLanguageModel()
	case "enter":
		switch m.menu.cursor {
		case 0:
			m.state = unitView
		case 1:
			m.state = currencyView
		case 2:
			m.state = passwordView
		case 3:
			m.state = bmiView
		case 4:
			m.state = languageView
			m.language = newLanguageModel()
		case 5:
			return m, tea.Quit
		}
		if m.active() == nil && m.state != languageView {
			m.state = menuView
		}
	}
	return m, nil
}

func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "q", "esc":
		m.state = menuView
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.orderedKeys)-1 {
			m.language.cursor++
		}
	case "enter":
		if len(m.language.orderedKeys) == 0 {
			return m, nil
		}
		code := m.language.orderedKeys[m.language.cursor]
		i18n.SetLang(code)
		if m.deps.SaveLanguage != nil {
			if err := m.deps.SaveLanguage(code); err != nil {
				logging.Warnf("could not save language: %v", err)
			}
		}
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

func (m mainModel) View() string {
	switch m.state {
	case languageView:
		return docStyle.Render(m.language.View())
	case menuView:
		return docStyle.Render(m.menu.View())
	}
	if v := m.active(); v != nil {
		return docStyle.Render(v.View())
	}
	return docStyle.Render(m.menu.View())
}

// View renders the main menu.
func (m menuModel) View() string {
	title := mainTitleStyle.Render(i18n.T("app.title"))
	subTitle := helpStyle.Render(i18n.T("app.subtitle"))

	var items []string
	for i, choice := range m.choices {
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+choice))
		} else {
			items = append(items, itemStyle.Render("  "+choice))
		}
	}
	paneStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(1, 2)
	pane := paneStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	return lipgloss.JoinVertical(lipgloss.Left, title, subTitle, "", pane, "", helpStyle.Render(i18n.T("help.menu")))
}

// View renders the language picker.
func (m languageModel) View() string {
	var items []string
	items = append(items, titleStyle.Render(i18n.T("language.title")), "")
	for i, code := range m.orderedKeys {
		name := m.choices[code]
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+name))
		} else {
			items = append(items, itemStyle.Render("  "+name))
		}
	}
	paneStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(1, 2)
	pane := paneStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	return lipgloss.JoinVertical(lipgloss.Left, mainTitleStyle.Render(i18n.T("menu.language")), "", pane, "", helpStyle.Render(i18n.T("help.language")))
}

// Run is the main entrypoint for the TUI. Log output goes to deps.LogFile
// while the program owns the terminal.
func Run(deps Deps) error {
	if deps.LogFile != "" {
		logging.SetFile(deps.LogFile)
		defer func() { _ = logging.Close() }()
	}

	if _, err := tea.NewProgram(initialModel(deps), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
