// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldKind tells the form how a row reacts to keys and how it renders.
type fieldKind int

const (
	textField fieldKind = iota
	toggleField
	choiceField
	buttonField
)

// field is one focusable row of a form. Buttons that directly follow each
// other are rendered on one line.
type field struct {
	id      string
	kind    fieldKind
	label   string
	input   textinput.Model
	on      bool
	choices []string
	choice  int
}

// formEventKind classifies what a key press did to the form.
type formEventKind int

const (
	eventNone formEventKind = iota
	eventChanged
	eventPressed
)

// formEvent is returned from form.update so views can react to toggles,
// choice changes and button presses.
type formEvent struct {
	kind formEventKind
	id   string
}

type form struct {
	fields []field
	focus  int
}

func newTextField(id, label, value, placeholder string) field {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 32
	t.Width = 20
	t.Prompt = ""
	t.Placeholder = placeholder
	t.SetValue(value)
	return field{id: id, kind: textField, label: label, input: t}
}

func newToggleField(id, label string, on bool) field {
	return field{id: id, kind: toggleField, label: label, on: on}
}

func newChoiceField(id, label string, choices []string, selected int) field {
	return field{id: id, kind: choiceField, label: label, choices: choices, choice: selected}
}

func newButton(id, label string) field {
	return field{id: id, kind: buttonField, label: label}
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) index(id string) int {
	for i := range f.fields {
		if f.fields[i].id == id {
			return i
		}
	}
	return -1
}

// get returns the field with id. It panics on an unknown id, which is a
// programming error in the view that built the form.
func (f *form) get(id string) *field {
	i := f.index(id)
	if i < 0 {
		panic("tui: unknown form field " + id)
	}
	return &f.fields[i]
}

func (f *form) value(id string) string { return f.get(id).input.Value() }

func (f *form) setValue(id, v string) { f.get(id).input.SetValue(v) }

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	n := len(f.fields)
	f.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range f.fields {
		if f.fields[j].kind != textField {
			continue
		}
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
			f.fields[j].input.TextStyle = focusedStyle
			continue
		}
		f.fields[j].input.Blur()
		f.fields[j].input.TextStyle = itemStyle
	}
	return cmd
}

func (f *form) focused() *field {
	if len(f.fields) == 0 {
		return nil
	}
	return &f.fields[f.focus]
}

// update routes a message to the form and reports what happened.
func (f *form) update(msg tea.Msg) (formEvent, tea.Cmd) {
	cur := f.focused()
	if cur == nil {
		return formEvent{}, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab", "down":
			return formEvent{}, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return formEvent{}, f.setFocus(f.focus - 1)
		}

		switch cur.kind {
		case toggleField:
			if km.String() == " " || km.String() == "enter" {
				cur.on = !cur.on
				return formEvent{kind: eventChanged, id: cur.id}, nil
			}
			return formEvent{}, nil
		case choiceField:
			if len(cur.choices) == 0 {
				return formEvent{}, nil
			}
			switch km.String() {
			case "left", "h":
				cur.choice = (cur.choice - 1 + len(cur.choices)) % len(cur.choices)
				return formEvent{kind: eventChanged, id: cur.id}, nil
			case "right", "l", " ":
				cur.choice = (cur.choice + 1) % len(cur.choices)
				return formEvent{kind: eventChanged, id: cur.id}, nil
			}
			return formEvent{}, nil
		case buttonField:
			if km.String() == "enter" {
				return formEvent{kind: eventPressed, id: cur.id}, nil
			}
			if km.String() == "left" || km.String() == "right" {
				d := 1
				if km.String() == "left" {
					d = -1
				}
				if next := f.focus + d; next >= 0 && next < len(f.fields) && f.fields[next].kind == buttonField {
					return formEvent{}, f.setFocus(next)
				}
			}
			return formEvent{}, nil
		case textField:
			if km.String() == "enter" {
				// Enter in a text field submits through the next button.
				for _, fd := range f.fields[f.focus:] {
					if fd.kind == buttonField {
						return formEvent{kind: eventPressed, id: fd.id}, nil
					}
				}
				return formEvent{}, nil
			}
		}
	}

	if cur.kind != textField {
		return formEvent{}, nil
	}
	var cmd tea.Cmd
	before := cur.input.Value()
	cur.input, cmd = cur.input.Update(msg)
	if cur.input.Value() != before {
		return formEvent{kind: eventChanged, id: cur.id}, cmd
	}
	return formEvent{}, cmd
}

// view renders fields from index start up to (not including) end.
func (f *form) view(start, end int) string {
	var b strings.Builder
	for i := start; i < end && i < len(f.fields); i++ {
		fd := &f.fields[i]
		active := i == f.focus
		label := formLabelStyle.Render(fd.label)
		if active {
			label = formSelectedLabelStyle.Render(fd.label)
		}

		switch fd.kind {
		case textField:
			b.WriteString(label + fd.input.View() + "\n")
		case toggleField:
			box := "[ ]"
			if fd.on {
				box = "[x]"
			}
			if active {
				box = selectedItemStyle.Render(box)
			}
			b.WriteString(label + box + "\n")
		case choiceField:
			v := ""
			if fd.choice >= 0 && fd.choice < len(fd.choices) {
				v = fd.choices[fd.choice]
			}
			v = "‹ " + v + " ›"
			if active {
				v = selectedItemStyle.Render(v)
			}
			b.WriteString(label + v + "\n")
		case buttonField:
			style := buttonStyle
			if active {
				style = activeButtonStyle
			}
			b.WriteString(style.Render(fd.label))
			if i+1 >= end || i+1 >= len(f.fields) || f.fields[i+1].kind != buttonField {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// viewAll renders every field.
func (f *form) viewAll() string { return f.view(0, len(f.fields)) }
