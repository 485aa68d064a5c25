// Package binding holds the text state behind the converter screens as
// immutable snapshots. Every edit returns a new snapshot in which the
// edited field keeps the raw text verbatim and exactly one other field is
// recomputed from it.
package binding

import "tempconv/internal/temperature"

// Field is what a stateless input renderer receives: the value to show
// and the handle to call when the user changes it.
type Field struct {
	Value    string
	OnChange func(string)
}

// Change reports raw to the owner of the field, if there is one.
func (f Field) Change(raw string) {
	if f.OnChange != nil {
		f.OnChange(raw)
	}
}

// OneWay is an input field with a derived, read-only output.
type OneWay struct {
	Direction temperature.Direction
	Input     string
	Output    string
}

// NewOneWay returns an empty converter for dir.
func NewOneWay(dir temperature.Direction) OneWay {
	return OneWay{Direction: dir}
}

// Edit stores raw as the input and recomputes the output.
func (s OneWay) Edit(raw string) OneWay {
	return OneWay{
		Direction: s.Direction,
		Input:     raw,
		Output:    temperature.Convert(raw, s.Direction),
	}
}

// TwoWay is a pair of editable fields, one per scale.
type TwoWay struct {
	Celsius    string
	Fahrenheit string
}

// EditCelsius stores raw as the Celsius text and derives Fahrenheit from it.
func (s TwoWay) EditCelsius(raw string) TwoWay {
	return TwoWay{
		Celsius:    raw,
		Fahrenheit: temperature.CelsiusToFahrenheit(raw),
	}
}

// EditFahrenheit stores raw as the Fahrenheit text and derives Celsius from it.
func (s TwoWay) EditFahrenheit(raw string) TwoWay {
	return TwoWay{
		Celsius:    temperature.FahrenheitToCelsius(raw),
		Fahrenheit: raw,
	}
}

// Edit dispatches to EditCelsius or EditFahrenheit.
func (s TwoWay) Edit(scale temperature.Scale, raw string) TwoWay {
	if scale == temperature.Fahrenheit {
		return s.EditFahrenheit(raw)
	}
	return s.EditCelsius(raw)
}

// Value returns the displayed text for scale.
func (s TwoWay) Value(scale temperature.Scale) string {
	if scale == temperature.Fahrenheit {
		return s.Fahrenheit
	}
	return s.Celsius
}
