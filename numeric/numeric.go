// Package numeric provides small helpers for floating-point comparisons and
// signed-number arithmetic shared across the noding core.
//
// The robust noding algorithms compare coordinates that have already been
// rounded to a fixed-precision grid, but intermediate computations (cross
// products, determinants) still accumulate floating-point error. The
// comparison helpers here give every package in this module one consistent
// epsilon-aware vocabulary instead of each re-deriving its own tolerance
// logic.
package numeric

import "math"

// Abs returns the absolute value of a signed number.
func Abs[T ~int | ~int32 | ~int64 | ~float32 | ~float64](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// FloatEquals reports whether a and b are equal within epsilon.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatLessThan reports whether a is significantly less than b.
func FloatLessThan(a, b, epsilon float64) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThan reports whether a is significantly greater than b.
func FloatGreaterThan(a, b, epsilon float64) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// SnapToEpsilon rounds value to the nearest whole number if it lies within
// epsilon of it, otherwise returns value unchanged.
func SnapToEpsilon(value, epsilon float64) float64 {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < epsilon {
		return rounded
	}
	return value
}
