// Package numfmt parses numbers typed into calculator fields and renders
// results with the fixed decimal places lab users expect.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Display precisions.
const (
	ConcentrationPlaces int32 = 4
	VolumePlaces        int32 = 2
	PercentPlaces       int32 = 1
	TemperaturePlaces   int32 = 1
	StatisticPlaces     int32 = 4
)

// Round rounds half away from zero to the given number of decimal places.
// NaN and ±Inf are returned unchanged.
func Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Fixed formats x with exactly places digits after the point.
func Fixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

// Exponential formats x in scientific notation with digits after the point
// and an unpadded exponent ("9.77e-4", "1.00e+0").
func Exponential(x float64, digits int) string {
	s := strconv.FormatFloat(x, 'e', digits, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}

// Parse reads a finite decimal number from a text field. Surrounding
// whitespace is ignored; NaN, Inf and partial numbers ("12abc") are rejected.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
