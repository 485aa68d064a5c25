// Package temperature converts raw text readings between the Celsius and
// Fahrenheit scales.
package temperature

import (
	"fmt"
	"strings"
)

// Scale labels which unit a reading is expressed in.
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
)

// String returns the scale name used in display labels.
func (s Scale) String() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Other returns the opposite scale.
func (s Scale) Other() Scale {
	if s == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// ParseScale accepts "c", "celsius", "f" or "fahrenheit" in any case.
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return 0, fmt.Errorf("unknown temperature scale %q", name)
}

// Direction selects which affine transform Convert applies.
type Direction int

const (
	FromCelsius    Direction = iota // Celsius -> Fahrenheit
	FromFahrenheit                  // Fahrenheit -> Celsius
)

// DirectionFrom returns the direction that converts readings in s.
func DirectionFrom(s Scale) Direction {
	if s == Fahrenheit {
		return FromFahrenheit
	}
	return FromCelsius
}

// Source is the scale of the input reading.
func (d Direction) Source() Scale {
	if d == FromFahrenheit {
		return Fahrenheit
	}
	return Celsius
}

// Target is the scale of the converted reading.
func (d Direction) Target() Scale {
	return d.Source().Other()
}

func (d Direction) String() string {
	return d.Source().String() + "->" + d.Target().String()
}

// Apply runs the transform for d on r.
func (d Direction) Apply(r Reading) Reading {
	switch d {
	case FromCelsius:
		return r*9/5 + 32
	case FromFahrenheit:
		return (r - 32) * 5 / 9
	}
	panic(fmt.Sprintf("temperature: unknown direction %d", int(d)))
}
