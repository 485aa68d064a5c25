package temperature

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "32.0"},
		{"100", "212.0"},
		{"-40", "-40.0"},
		{"37", "98.6"},
		{"+10", "50.0"},
		{"12.", "53.6"},
		{".5", "32.9"},
		{"-273.15", "-459.66999999999996"},
		{"-1000", "-1768.0"}, // below absolute zero still converts
		{"1e7", "1.8000032E7"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CelsiusToFahrenheit(tt.in))
		})
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"32", "0.0"},
		{"212", "100.0"},
		{"-40", "-40.0"},
		{"100", "37.77777777777778"},
		{"0", "-17.77777777777778"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FahrenheitToCelsius(tt.in))
		})
	}
}

func TestConvert_InvalidInput(t *testing.T) {
	inputs := []string{"", "abc", "12a", "  ", " 12", "12 ", "-", "+", ".", "1,5", "0x10", "NaN", "Inf", "1_000", "1e", "e5", "--1", "1.2.3"}
	for _, in := range inputs {
		t.Run(strconv.Quote(in), func(t *testing.T) {
			assert.Equal(t, InvalidInput, CelsiusToFahrenheit(in))
			assert.Equal(t, InvalidInput, FahrenheitToCelsius(in))
		})
	}
}

func TestConvert_MatchesTransform(t *testing.T) {
	for _, v := range []float64{-459.67, -40, -0.5, 0, 0.001, 1, 36.6, 451, 1e6, 12345.678} {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		assert.Equal(t, FormatReading(v*9/5+32), Convert(s, FromCelsius), s)
		assert.Equal(t, FormatReading((v-32)*5/9), Convert(s, FromFahrenheit), s)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "100", "-40", "36.6", "-273.15", "0.0001", "123456789", "1e-9", "-0.25"} {
		t.Run(s, func(t *testing.T) {
			want, err := ParseReading(s)
			require.NoError(t, err)

			back, err := ParseReading(FahrenheitToCelsius(CelsiusToFahrenheit(s)))
			require.NoError(t, err)
			assert.InDelta(t, float64(want), float64(back), 1e-9*math.Max(1, math.Abs(float64(want))))
		})
	}
}

func TestConvert_OverflowingTransform(t *testing.T) {
	assert.Equal(t, "Infinity", CelsiusToFahrenheit("1.7E308"))
	assert.Equal(t, "-Infinity", CelsiusToFahrenheit("-1.7E308"))
}

func TestParseReading(t *testing.T) {
	r, err := ParseReading("-12.5")
	require.NoError(t, err)
	assert.Equal(t, Reading(-12.5), r)

	_, err = ParseReading("warm")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseFailure))
	assert.Contains(t, err.Error(), `"warm"`)

	_, err = ParseReading("1e400")
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestFormatReading(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{32, "32.0"},
		{-40, "-40.0"},
		{0.1, "0.1"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{-0.00018, "-1.8E-4"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{1.5e21, "1.5E21"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReading(tt.in))
		})
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, "Celsius", Celsius.String())
	assert.Equal(t, "Fahrenheit", Fahrenheit.String())
	assert.Equal(t, Fahrenheit, Celsius.Other())

	s, err := ParseScale("F")
	require.NoError(t, err)
	assert.Equal(t, Fahrenheit, s)

	_, err = ParseScale("kelvin")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, FromCelsius, DirectionFrom(Celsius))
	assert.Equal(t, FromFahrenheit, DirectionFrom(Fahrenheit))
	assert.Equal(t, Fahrenheit, FromCelsius.Target())
	assert.Equal(t, Celsius, FromFahrenheit.Target())
	assert.Equal(t, "Celsius->Fahrenheit", FromCelsius.String())
	assert.Panics(t, func() { Direction(7).Apply(1) })
}
