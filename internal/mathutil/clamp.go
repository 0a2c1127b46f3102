// Package mathutil provides scalar helpers shared by curve evaluation.
package mathutil

import "math"

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Clamp01 limits x to [0, 1]. NaN maps to 0 so the result is always a
// usable curve parameter.
func Clamp01[F Float](x F) F {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
