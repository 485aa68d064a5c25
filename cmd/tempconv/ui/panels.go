package ui

import (
	"tempconv/internal/binding"
	"tempconv/internal/labels"
	"tempconv/internal/temperature"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// converterView renders a Celsius field followed by the Fahrenheit result.
func converterView(title string, input TemperatureInput, state binding.OneWay, c *labels.Catalog, s Styles) string {
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.PanelTitle.Render(title),
		input.View(c.Text(labels.EnterCelsius), s),
		c.Text(labels.TemperatureFahrenheit, s.RenderResult(state.Output)),
	))
}

// StatefulPanel is a converter that owns its own text.
type StatefulPanel struct {
	state binding.OneWay
	input TemperatureInput
}

// NewStatefulPanel returns an empty Celsius to Fahrenheit converter.
func NewStatefulPanel() StatefulPanel {
	return StatefulPanel{
		state: binding.NewOneWay(temperature.FromCelsius),
		input: NewTemperatureInput(),
	}
}

// State is the panel's current text.
func (p StatefulPanel) State() binding.OneWay { return p.state }

func (p StatefulPanel) SetFocus(focused bool) (StatefulPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.SetFocus(focused)
	return p, cmd
}

func (p StatefulPanel) Update(msg tea.Msg) (StatefulPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg, binding.Field{
		Value:    p.state.Input,
		OnChange: func(raw string) { p.state = p.state.Edit(raw) },
	})
	return p, cmd
}

func (p StatefulPanel) View(c *labels.Catalog, s Styles) string {
	return converterView(c.Text(labels.StatefulConverter), p.input, p.state, c, s)
}

// HoistedPanel renders the same converter but keeps no text of its own;
// the parent passes the state in and receives edits through the field.
type HoistedPanel struct {
	input TemperatureInput
}

func NewHoistedPanel() HoistedPanel {
	return HoistedPanel{input: NewTemperatureInput()}
}

func (p HoistedPanel) SetFocus(focused bool) (HoistedPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.SetFocus(focused)
	return p, cmd
}

func (p HoistedPanel) Update(msg tea.Msg, field binding.Field) (HoistedPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg, field)
	return p, cmd
}

func (p HoistedPanel) View(state binding.OneWay, c *labels.Catalog, s Styles) string {
	return converterView(c.Text(labels.HoistedConverter), p.input.Show(state.Input), state, c, s)
}

var scales = [...]temperature.Scale{temperature.Celsius, temperature.Fahrenheit}

// TwoWayPanel keeps a Celsius and a Fahrenheit field in sync. Editing one
// stores the raw text in it and recomputes only the other.
type TwoWayPanel struct {
	state  binding.TwoWay
	inputs [len(scales)]TemperatureInput
}

func NewTwoWayPanel() TwoWayPanel {
	p := TwoWayPanel{}
	for i := range p.inputs {
		p.inputs[i] = NewTemperatureInput()
	}
	return p
}

// State is the panel's current text.
func (p TwoWayPanel) State() binding.TwoWay { return p.state }

// Input returns the field for scale.
func (p TwoWayPanel) Input(scale temperature.Scale) TemperatureInput {
	return p.inputs[scale]
}

func (p TwoWayPanel) SetFocus(scale temperature.Scale, focused bool) (TwoWayPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.inputs[scale], cmd = p.inputs[scale].SetFocus(focused)
	return p, cmd
}

func (p TwoWayPanel) Update(msg tea.Msg) (TwoWayPanel, tea.Cmd) {
	var cmds []tea.Cmd
	for _, scale := range scales {
		if !p.inputs[scale].Focused() {
			continue
		}
		var cmd tea.Cmd
		p.inputs[scale], cmd = p.inputs[scale].Update(msg, binding.Field{
			Value:    p.state.Value(scale),
			OnChange: func(raw string) { p.state = p.state.Edit(scale, raw) },
		})
		cmds = append(cmds, cmd)
	}
	for _, scale := range scales {
		p.inputs[scale] = p.inputs[scale].Show(p.state.Value(scale))
	}
	return p, tea.Batch(cmds...)
}

func (p TwoWayPanel) View(c *labels.Catalog, s Styles) string {
	rows := []string{s.PanelTitle.Render(c.Text(labels.TwoWayConverter))}
	for _, scale := range scales {
		label := c.Text(labels.EnterTemperature, c.ScaleName(scale))
		rows = append(rows, p.inputs[scale].View(label, s))
	}
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
