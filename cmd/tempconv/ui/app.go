package ui

import (
	"tempconv/internal/binding"
	"tempconv/internal/labels"
	"tempconv/internal/temperature"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Slot identifies one focusable field, in tab order.
type Slot int

const (
	SlotStateful Slot = iota
	SlotHoisted
	SlotTwoWayCelsius
	SlotTwoWayFahrenheit
	slotCount
)

// ConfigReloadedMsg swaps the labels and theme without touching any text
// the user has typed.
type ConfigReloadedMsg struct {
	Catalog *labels.Catalog
	Theme   Theme
}

// Options configures NewApp.
type Options struct {
	Catalog *labels.Catalog
	Theme   Theme
	Logger  *zap.Logger
}

// App is the root model. It owns the hoisted converter's state; the
// other two panels own theirs.
type App struct {
	catalog *labels.Catalog
	styles  Styles
	keys    keyMap
	help    help.Model
	log     *zap.Logger

	stateful     StatefulPanel
	hoisted      HoistedPanel
	hoistedState binding.OneWay
	twoWay       TwoWayPanel

	focus    Slot
	showHelp bool
	helpView string
	width    int
	quitting bool
}

// NewApp builds the root model with the first field focused.
func NewApp(opts Options) App {
	if opts.Catalog == nil {
		opts.Catalog = labels.Resolve(labels.DefaultLocale)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := App{
		catalog:      opts.Catalog,
		styles:       NewStyles(opts.Theme),
		keys:         newKeyMap(opts.Catalog),
		help:         help.New(),
		log:          opts.Logger,
		stateful:     NewStatefulPanel(),
		hoisted:      NewHoistedPanel(),
		hoistedState: binding.NewOneWay(temperature.FromCelsius),
		twoWay:       NewTwoWayPanel(),
	}
	m, _ = m.setFocus(SlotStateful, true)
	return m
}

// Focus is the slot receiving keystrokes.
func (m App) Focus() Slot { return m.focus }

// ShowingHelp reports whether the help overlay is open.
func (m App) ShowingHelp() bool { return m.showHelp }

func (m App) Init() tea.Cmd {
	return textinput.Blink
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpView = m.renderHelp()
		}
		return m, nil

	case ConfigReloadedMsg:
		if msg.Catalog != nil {
			m.catalog = msg.Catalog
			m.keys = newKeyMap(msg.Catalog)
		}
		m.styles = NewStyles(msg.Theme)
		if m.showHelp {
			m.helpView = m.renderHelp()
		}
		m.log.Info("config applied", zap.String("locale", m.catalog.Locale()), zap.Bool("dark", msg.Theme.IsDark))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.helpView = m.renderHelp()
			}
			return m, nil
		}
		if m.showHelp {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		}
	}

	return m.updateFocused(msg)
}

func (m App) updateFocused(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case SlotStateful:
		before := m.stateful.State()
		m.stateful, cmd = m.stateful.Update(msg)
		if after := m.stateful.State(); after != before {
			m.logEdit("stateful", after.Input, after.Output)
		}
	case SlotHoisted:
		m.hoisted, cmd = m.hoisted.Update(msg, binding.Field{
			Value: m.hoistedState.Input,
			OnChange: func(raw string) {
				m.hoistedState = m.hoistedState.Edit(raw)
				m.logEdit("hoisted", raw, m.hoistedState.Output)
			},
		})
	case SlotTwoWayCelsius, SlotTwoWayFahrenheit:
		before := m.twoWay.State()
		m.twoWay, cmd = m.twoWay.Update(msg)
		if after := m.twoWay.State(); after != before {
			m.logEdit("two_way", after.Celsius, after.Fahrenheit)
		}
	}
	return m, cmd
}

func (m App) logEdit(panel, input, output string) {
	m.log.Debug("field edited",
		zap.String("panel", panel),
		zap.String("input", input),
		zap.String("output", output),
	)
}

func (m App) moveFocus(delta int) (App, tea.Cmd) {
	next := Slot((int(m.focus) + delta + int(slotCount)) % int(slotCount))
	m, _ = m.setFocus(m.focus, false)
	return m.setFocus(next, true)
}

func (m App) setFocus(slot Slot, focused bool) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch slot {
	case SlotStateful:
		m.stateful, cmd = m.stateful.SetFocus(focused)
	case SlotHoisted:
		m.hoisted, cmd = m.hoisted.SetFocus(focused)
	case SlotTwoWayCelsius:
		m.twoWay, cmd = m.twoWay.SetFocus(temperature.Celsius, focused)
	case SlotTwoWayFahrenheit:
		m.twoWay, cmd = m.twoWay.SetFocus(temperature.Fahrenheit, focused)
	}
	if focused {
		m.focus = slot
	}
	return m, cmd
}

// renderHelp renders the help markdown, falling back to the raw text if
// glamour fails.
func (m App) renderHelp() string {
	wrap := 76
	if m.width > 8 {
		wrap = m.width - 4
	}
	md := m.catalog.Text(labels.HelpBody)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.styles.Theme.GlamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.log.Warn("help renderer unavailable", zap.Error(err))
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.log.Warn("help render failed", zap.Error(err))
		return md
	}
	return out
}

func (m App) View() string {
	if m.quitting {
		return ""
	}

	header := m.styles.Header.Render(m.catalog.Text(labels.AppTitle))
	footer := m.styles.Footer.Render(m.help.View(m.keys))

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.helpView, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.stateful.View(m.catalog, m.styles),
		m.hoisted.View(m.hoistedState, m.catalog, m.styles),
		m.twoWay.View(m.catalog, m.styles),
		footer,
	)
}
