package temperature

// InvalidInput is returned in place of a converted value whenever the raw
// text does not parse.
const InvalidInput = "Invalid Input"

// Convert parses raw as a reading on dir's source scale and returns the
// formatted reading on the target scale, or InvalidInput.
func Convert(raw string, dir Direction) string {
	r, err := ParseReading(raw)
	if err != nil {
		return InvalidInput
	}
	return dir.Apply(r).String()
}

// CelsiusToFahrenheit computes F = C * 9/5 + 32 from raw text.
func CelsiusToFahrenheit(raw string) string {
	return Convert(raw, FromCelsius)
}

// FahrenheitToCelsius computes C = (F - 32) * 5/9 from raw text.
func FahrenheitToCelsius(raw string) string {
	return Convert(raw, FromFahrenheit)
}
