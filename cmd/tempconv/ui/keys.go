package ui

import (
	"tempconv/internal/labels"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

func newKeyMap(c *labels.Catalog) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", c.Text(labels.HelpNext)),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", c.Text(labels.HelpPrev)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", c.Text(labels.HelpToggle)),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", c.Text(labels.HelpQuit)),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Help, k.Quit}}
}
