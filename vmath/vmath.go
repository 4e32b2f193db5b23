// Package vmath provides float32 vector and quaternion math for the
// simulation core. All geometry runs in single precision with a fixed
// epsilon for degeneracy checks.
package vmath

import (
	"math"
)

// Epsilon is the degeneracy threshold for parallel/zero-length tests
const Epsilon = 1e-6

// Abs returns |v|
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Min returns the smaller of a, b
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a, b
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Sqrt is a float32 square root
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Pow is a float32 power
func Pow(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// Sin is a float32 sine
func Sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
