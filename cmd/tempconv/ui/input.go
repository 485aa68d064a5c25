package ui

import (
	"tempconv/internal/binding"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TemperatureInput is a labelled text field that holds no converter
// state. The text it shows always comes from the binding.Field handed to
// Update, and every edit is reported back through that field.
type TemperatureInput struct {
	input textinput.Model
}

// NewTemperatureInput creates an empty, blurred field.
func NewTemperatureInput() TemperatureInput {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "0"
	ti.Width = 24
	return TemperatureInput{input: ti}
}

// Focused reports whether keystrokes go to this field.
func (t TemperatureInput) Focused() bool {
	return t.input.Focused()
}

// SetFocus focuses or blurs the field.
func (t TemperatureInput) SetFocus(focused bool) (TemperatureInput, tea.Cmd) {
	if focused {
		cmd := t.input.Focus()
		return t, cmd
	}
	t.input.Blur()
	return t, nil
}

// Show makes the field display value without reporting a change. A
// replaced value puts the cursor at its end.
func (t TemperatureInput) Show(value string) TemperatureInput {
	if t.input.Value() != value {
		t.input.SetValue(value)
		t.input.CursorEnd()
	}
	return t
}

// Value is the text currently displayed.
func (t TemperatureInput) Value() string {
	return t.input.Value()
}

// Update forwards msg to the editor and reports the resulting text
// through field when it differs from field.Value.
func (t TemperatureInput) Update(msg tea.Msg, field binding.Field) (TemperatureInput, tea.Cmd) {
	t = t.Show(field.Value)

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if v := t.input.Value(); v != field.Value {
		field.Change(v)
	}
	return t, cmd
}

// View renders the label above the boxed editor.
func (t TemperatureInput) View(label string, s Styles) string {
	box := s.InputBlurred
	if t.Focused() {
		box = s.InputFocused
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Label.Render(label),
		box.Render(t.input.View()),
	)
}
