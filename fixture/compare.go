// SPDX-License-Identifier: MIT

package fixture

import "math"

// ToleranceMode selects how a tolerance is applied to a float comparison.
type ToleranceMode string

const (
	// ToleranceRelative compares |expected−actual|/|expected|; an expected
	// value of exactly 0 falls back to |actual| ≤ tol.
	ToleranceRelative ToleranceMode = "relative"
	// ToleranceAbsolute compares |expected−actual|.
	ToleranceAbsolute ToleranceMode = "absolute"
)

// floatsEqual reports whether actual matches expected within tol.
// NaN matches only NaN; infinities match only the same infinity.
func floatsEqual(expected, actual, tol float64, mode ToleranceMode) bool {
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return math.IsNaN(expected) && math.IsNaN(actual)
	}
	if math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return expected == actual
	}

	switch mode {
	case ToleranceAbsolute:
		return math.Abs(expected-actual) <= tol
	default:
		if expected == 0 {
			return math.Abs(actual) <= tol
		}
		return math.Abs((expected-actual)/expected) <= tol
	}
}

// relativeError returns |expected−actual|/|expected|, or |actual| when expected is 0.
func relativeError(expected, actual float64) float64 {
	if expected == 0 {
		return math.Abs(actual)
	}

	return math.Abs((expected - actual) / expected)
}
