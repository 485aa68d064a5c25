package temperature

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrParseFailure reports raw text that is not a decimal number.
var ErrParseFailure = errors.New("not a decimal number")

// Reading is a parsed temperature value. It is always finite.
type Reading float64

// ParseReading parses raw as a locale-invariant decimal literal: an
// optional sign, digits with an optional decimal point, and an optional
// E exponent so that every string FormatReading produces parses back.
// Whitespace, hex, digit separators, NaN and Inf are rejected, as are
// literals too large for a float64.
func ParseReading(raw string) (Reading, error) {
	if !isDecimalLiteral(raw) {
		return 0, fmt.Errorf("%w: %q", ErrParseFailure, raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParseFailure, raw)
	}
	return Reading(v), nil
}

func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
