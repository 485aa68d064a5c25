package temperature

import (
	"math"
	"strconv"
	"strings"
)

// FormatReading renders v the way a JVM double prints: shortest
// round-trip digits, always with a fractional part, plain notation for
// magnitudes in [1e-3, 1e7) and d.dddE<n> notation outside it.
func FormatReading(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'e' gives "1.8e-04" or "1e+07".
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp) // FormatFloat always emits a signed decimal exponent
	return mant + "E" + strconv.Itoa(n)
}

// String formats the reading with FormatReading.
func (r Reading) String() string {
	return FormatReading(float64(r))
}
