package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier-motion/internal/engine"
	"github.com/tphakala/go-bezier-motion/internal/mathutil"
)

// Evaluate returns the cubic Bézier blend of four scalar control values at t.
//
// t is clamped to [0, 1], so parameters slightly past either end evaluate to
// the nearest endpoint instead of extrapolating. Evaluate(p0, p1, p2, p3, 0)
// is exactly p0 and Evaluate(p0, p1, p2, p3, 1) is exactly p3. Coincident
// control values are valid.
//
// The function is axis-agnostic: evaluate a 3D point by calling it once per
// axis, or use [Curve.At].
func Evaluate(p0, p1, p2, p3, t float64) float64 {
	return engine.Evaluate(p0, p1, p2, p3, t)
}

// EvaluateFloat32 is like Evaluate but for float32 values.
func EvaluateFloat32(p0, p1, p2, p3, t float32) float32 {
	return engine.Evaluate(p0, p1, p2, p3, t)
}

// Curve is a cubic Bézier curve in three dimensions.
// P0 is the start, P3 the end, and P1/P2 the tangent handles.
type Curve struct {
	P0, P1, P2, P3 r3.Vec
}

// NewCurve creates a curve from four control points.
// Points with NaN or infinite components are rejected.
func NewCurve(p0, p1, p2, p3 r3.Vec) (Curve, error) {
	c := Curve{P0: p0, P1: p1, P2: p2, P3: p3}
	for i, p := range c.points() {
		if !vecFinite(p) {
			return Curve{}, fmt.Errorf("%w: control point P%d is not finite: %v", ErrInvalidConfig, i, p)
		}
	}
	return c, nil
}

// At returns the point on the curve at parameter t (clamped to [0, 1]).
func (c Curve) At(t float64) r3.Vec {
	return r3.Vec{
		X: Evaluate(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: Evaluate(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
		Z: Evaluate(c.P0.Z, c.P1.Z, c.P2.Z, c.P3.Z, t),
	}
}

// Start returns P0.
func (c Curve) Start() r3.Vec { return c.P0 }

// End returns P3.
func (c Curve) End() r3.Vec { return c.P3 }

// Derivative returns the tangent dB/dt at t (clamped to [0, 1]).
// At t = 0 it is 3(P1-P0) and at t = 1 it is 3(P3-P2).
func (c Curve) Derivative(t float64) r3.Vec {
	return r3.Vec{
		X: engine.Derivative(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: engine.Derivative(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
		Z: engine.Derivative(c.P0.Z, c.P1.Z, c.P2.Z, c.P3.Z, t),
	}
}

// Length returns the arc length of the curve.
//
// The value is informational: motion along the curve stays uniform in t,
// not in distance.
func (c Curve) Length() float64 {
	return mathutil.ArcLength(func(t float64) float64 {
		return r3.Norm(c.Derivative(t))
	}, mathutil.DefaultQuadratureNodes)
}

// axis returns the four control values for one axis (0=x, 1=y, 2=z).
func (c Curve) axis(i int) [numControlPoints]float64 {
	var out [numControlPoints]float64
	for j, p := range c.points() {
		switch i {
		case 0:
			out[j] = p.X
		case 1:
			out[j] = p.Y
		default:
			out[j] = p.Z
		}
	}
	return out
}

func (c Curve) points() [numControlPoints]r3.Vec {
	return [numControlPoints]r3.Vec{c.P0, c.P1, c.P2, c.P3}
}

func vecFinite(v r3.Vec) bool {
	return mathutil.IsFinite(v.X) && mathutil.IsFinite(v.Y) && mathutil.IsFinite(v.Z)
}
