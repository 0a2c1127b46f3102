// Package engine implements the cubic Bézier polynomial for float32 and float64.
package engine

import (
	"github.com/tphakala/go-bezier-motion/internal/mathutil"
	"github.com/tphakala/go-bezier-motion/internal/simdops"
)

// Evaluate computes the cubic Bézier polynomial
//
//	B(t) = (1-t)³·p0 + 3(1-t)²·t·p1 + 3(1-t)·t²·p2 + t³·p3
//
// after clamping t to [0, 1]. At t = 0 and t = 1 the result is exactly p0 and p3.
func Evaluate[F simdops.Float](p0, p1, p2, p3, t F) F {
	t = mathutil.Clamp01(t)
	u := 1 - t
	return u*u*u*p0 + bernsteinScale*u*u*t*p1 + bernsteinScale*u*t*t*p2 + t*t*t*p3
}

// Derivative computes dB/dt at t (clamped to [0, 1]).
func Derivative[F simdops.Float](p0, p1, p2, p3, t F) F {
	t = mathutil.Clamp01(t)
	u := 1 - t
	return bernsteinScale*u*u*(p1-p0) + derivativeScale*u*t*(p2-p1) + bernsteinScale*t*t*(p3-p2)
}

// Weights returns the four cubic Bernstein basis values at t (clamped).
// They sum to one up to rounding.
func Weights[F simdops.Float](t F) [ControlPoints]F {
	t = mathutil.Clamp01(t)
	u := 1 - t
	return [ControlPoints]F{
		u * u * u,
		bernsteinScale * u * u * t,
		bernsteinScale * u * t * t,
		t * t * t,
	}
}
