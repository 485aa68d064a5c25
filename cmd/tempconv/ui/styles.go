// Package ui provides the terminal screens of tempconv: a stateful
// converter, the same converter with its state hoisted into the app, and
// a two-way converter, all rendered with Bubble Tea.
package ui

import (
	"os"
	"strconv"
	"strings"

	"tempconv/internal/config"
	"tempconv/internal/temperature"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#E65100") // warm orange
	LightMuted      = lipgloss.Color("#8a94a6")
	LightBorder     = lipgloss.Color("#dce0e5")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#FFB74D")
	DarkAccent     = lipgloss.Color("#4FC3F7") // cool blue
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")

	Destructive = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// GlamourStyle names the glamour standard style matching the theme.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// ResolveTheme maps a ui.theme preference to a theme.
func ResolveTheme(pref string) Theme {
	switch pref {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeLight:
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses the terminal background from COLORFGBG and falls
// back to light mode.
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) >= 2 {
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header     lipgloss.Style
	Footer     lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	Output     lipgloss.Style
	Invalid    lipgloss.Style

	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Padding(1, 2),

		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Output: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Invalid: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// RenderResult styles converted text, flagging the invalid sentinel.
func (s Styles) RenderResult(text string) string {
	if text == temperature.InvalidInput {
		return s.Invalid.Render(text)
	}
	return s.Output.Render(text)
}
