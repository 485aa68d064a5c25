package ui

import (
	"strings"
	"testing"

	"tempconv/internal/binding"
	"tempconv/internal/labels"
	"tempconv/internal/temperature"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() App {
	return NewApp(Options{Catalog: labels.Resolve("en"), Theme: LightTheme()})
}

func send(t *testing.T, m App, msg tea.Msg) App {
	t.Helper()
	updated, _ := m.Update(msg)
	app, ok := updated.(App)
	require.True(t, ok, "Update must return App")
	return app
}

func typeText(t *testing.T, m App, s string) App {
	t.Helper()
	for _, r := range s {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func focusSlot(t *testing.T, m App, slot Slot) App {
	t.Helper()
	for m.Focus() != slot {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func TestApp_InitialState(t *testing.T) {
	m := newTestApp()
	assert.Equal(t, SlotStateful, m.Focus())
	assert.NotNil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Temperature Converter")
	assert.Contains(t, view, "Stateful Converter")
	assert.Contains(t, view, "Two-Way Converter")
	assert.Contains(t, view, "Enter temperature in Celsius")
	assert.Contains(t, view, "Enter temperature in Fahrenheit")
}

func TestApp_StatefulPanelConverts(t *testing.T) {
	m := typeText(t, newTestApp(), "100")

	want := binding.OneWay{Direction: temperature.FromCelsius, Input: "100", Output: "212.0"}
	if diff := cmp.Diff(want, m.stateful.State()); diff != "" {
		t.Fatalf("stateful state mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, m.View(), "Temperature in Fahrenheit: 212.0")

	// The other panels are untouched.
	assert.Empty(t, m.hoistedState.Input)
	assert.Equal(t, binding.TwoWay{}, m.twoWay.State())
}

func TestApp_StatefulPanelRecomputesOnEveryKeystroke(t *testing.T) {
	m := newTestApp()
	var outputs []string
	for _, r := range "-4x" {
		m = typeText(t, m, string(r))
		outputs = append(outputs, m.stateful.State().Output)
	}
	assert.Equal(t, []string{"Invalid Input", "24.8", "Invalid Input"}, outputs)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "-4", m.stateful.State().Input)
	assert.Equal(t, "24.8", m.stateful.State().Output)
}

func TestApp_LongPasteIsConvertedWhole(t *testing.T) {
	long := strings.Repeat("1", 100)
	m := send(t, newTestApp(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true})

	assert.Equal(t, long, m.stateful.State().Input)
	assert.Equal(t, temperature.CelsiusToFahrenheit(long), m.stateful.State().Output)
	assert.NotEqual(t, temperature.InvalidInput, m.stateful.State().Output)
}

func TestApp_HoistedStateLivesInApp(t *testing.T) {
	m := focusSlot(t, newTestApp(), SlotHoisted)
	m = typeText(t, m, "37")

	assert.Equal(t, "37", m.hoistedState.Input)
	assert.Equal(t, "98.6", m.hoistedState.Output)
	assert.Contains(t, m.View(), "Converter (hoisted state)")
	assert.Contains(t, m.View(), "Temperature in Fahrenheit: 98.6")
	assert.Empty(t, m.stateful.State().Input)
}

func TestApp_TwoWayInvalidCelsius(t *testing.T) {
	m := focusSlot(t, newTestApp(), SlotTwoWayCelsius)
	m = typeText(t, m, "abc")

	assert.Equal(t, binding.TwoWay{Celsius: "abc", Fahrenheit: "Invalid Input"}, m.twoWay.State())
	assert.Equal(t, "abc", m.twoWay.Input(temperature.Celsius).Value())
	assert.Equal(t, "Invalid Input", m.twoWay.Input(temperature.Fahrenheit).Value())
	assert.Contains(t, m.View(), "abc")
	assert.Contains(t, m.View(), "Invalid Input")
}

func TestApp_TwoWayBothDirections(t *testing.T) {
	m := focusSlot(t, newTestApp(), SlotTwoWayCelsius)
	m = typeText(t, m, "100")
	assert.Equal(t, "212.0", m.twoWay.Input(temperature.Fahrenheit).Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, SlotTwoWayFahrenheit, m.Focus())

	// Editing the derived text continues from what is displayed.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, binding.TwoWay{Celsius: "100.0", Fahrenheit: "212"}, m.twoWay.State())

	m = typeText(t, m, "a")
	assert.Equal(t, binding.TwoWay{Celsius: "Invalid Input", Fahrenheit: "212a"}, m.twoWay.State())
	assert.Equal(t, "Invalid Input", m.twoWay.Input(temperature.Celsius).Value())
}

func TestApp_FocusCycles(t *testing.T) {
	m := newTestApp()
	var seen []Slot
	for i := 0; i < int(slotCount)+1; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, m.Focus())
	}
	assert.Equal(t, []Slot{SlotHoisted, SlotTwoWayCelsius, SlotTwoWayFahrenheit, SlotStateful, SlotHoisted}, seen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, SlotStateful, m.Focus())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, SlotTwoWayFahrenheit, m.Focus())

	// Only one field is focused at a time.
	assert.False(t, m.stateful.input.Focused())
	assert.False(t, m.hoisted.input.Focused())
	assert.False(t, m.twoWay.Input(temperature.Celsius).Focused())
	assert.True(t, m.twoWay.Input(temperature.Fahrenheit).Focused())
}

func TestApp_HelpToggle(t *testing.T) {
	m := newTestApp()
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.True(t, m.ShowingHelp())
	assert.NotEmpty(t, m.helpView)
	assert.NotContains(t, m.View(), "Two-Way Converter")

	// Keys other than help and quit are ignored while help is open.
	m = typeText(t, m, "5")
	assert.Empty(t, m.stateful.State().Input)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.ShowingHelp())
	assert.Contains(t, m.View(), "Two-Way Converter")
}

func TestApp_Quit(t *testing.T) {
	m := newTestApp()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestApp_ConfigReloadKeepsText(t *testing.T) {
	m := focusSlot(t, newTestApp(), SlotTwoWayCelsius)
	m = typeText(t, m, "0")

	m = send(t, m, ConfigReloadedMsg{Catalog: labels.Resolve("id"), Theme: DarkTheme()})

	view := m.View()
	assert.Contains(t, view, "Konverter Dua Arah")
	assert.Contains(t, view, "Masukkan suhu dalam Celsius")
	assert.True(t, m.styles.Theme.IsDark)
	assert.Equal(t, binding.TwoWay{Celsius: "0", Fahrenheit: "32.0"}, m.twoWay.State())
	assert.Equal(t, SlotTwoWayCelsius, m.Focus())
}

func TestTemperatureInput_ReportsOnlyChanges(t *testing.T) {
	in, _ := NewTemperatureInput().SetFocus(true)

	var reported []string
	field := binding.Field{Value: "", OnChange: func(raw string) { reported = append(reported, raw) }}

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, field)
	field.Value = "7"
	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyLeft}, field)

	assert.Equal(t, []string{"7"}, reported)
	assert.Equal(t, "7", in.Value())
}

func TestTemperatureInput_BlurredIgnoresKeys(t *testing.T) {
	in := NewTemperatureInput()
	called := false
	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, binding.Field{
		Value:    "5",
		OnChange: func(string) { called = true },
	})
	assert.False(t, called)
	assert.Equal(t, "5", in.Value(), "shows the owner's value")
}

func TestStyles(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)
	assert.True(t, ResolveTheme("auto").IsDark)
	assert.False(t, ResolveTheme("light").IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
	assert.True(t, ResolveTheme("dark").IsDark)

	s := NewStyles(LightTheme())
	assert.True(t, strings.Contains(s.RenderResult(temperature.InvalidInput), "Invalid Input"))
	assert.Equal(t, "light", s.Theme.GlamourStyle())
	assert.Equal(t, "dark", DarkTheme().GlamourStyle())
}
