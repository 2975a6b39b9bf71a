// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// Clamp limits val to the closed interval [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree to a relative tolerance,
// falling back to an absolute comparison near zero.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	scale := math.Max(math.Abs(val1), math.Abs(val2))
	if scale < 1.0 {
		scale = 1.0
	}
	return math.Abs(val1-val2) <= tolerance*scale
}

// Floor returns val if it is at least floor, otherwise floor.
func Floor(val, floor float64) float64 {
	if val < floor {
		return floor
	}
	return val
}
