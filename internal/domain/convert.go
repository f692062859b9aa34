package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	kgPerLb = 0.45359237
	mPerIn  = 0.0254
)

// ToKilograms converts a weight to kilograms. Only pounds are converted;
// any other unit is taken as kilograms. Non-finite input yields NaN.
func ToKilograms(weight float64, unit WeightUnit) float64 {
	if !isFinite(weight) {
		return math.NaN()
	}
	if unit == Pounds {
		return weight * kgPerLb
	}
	return weight
}

// ToMeters converts a height to meters. Inches and centimeters are
// converted; meters and unknown units pass through. Non-finite input yields NaN.
func ToMeters(height float64, unit HeightUnit) float64 {
	if !isFinite(height) {
		return math.NaN()
	}
	switch unit {
	case Inches:
		return height * mPerIn
	case Centimeters:
		return height / 100
	default:
		return height
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of s, accepting a comma as the
// decimal separator. Trailing text is ignored ("12kg" is 12). It returns NaN
// when no finite number can be read.
func ParseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil || !isFinite(n) {
		return math.NaN()
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// storedCount rounds a persisted amount half away from zero, clamped to the
// int32 range.
func storedCount(v float64) int {
	v = math.Round(v)
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
