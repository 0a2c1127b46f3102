package bezier

import (
	"context"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier-motion/internal/clock"
)

// NewSimple creates a controller from four control points and a duration.
func NewSimple(p0, p1, p2, p3 r3.Vec, duration float64) (*Controller, error) {
	return New(&Config{
		Duration: duration,
		P0:       &p0,
		P1:       &p1,
		P2:       &p2,
		P3:       &p3,
	})
}

// NewFromCurve creates a controller following curve.
func NewFromCurve(curve Curve, duration float64) (*Controller, error) {
	return NewSimple(curve.P0, curve.P1, curve.P2, curve.P3, duration)
}

// Traverse runs a full movement along curve in fixed steps of dt seconds and
// returns the position after every tick. The last position is the curve's end.
//
// A duration of zero uses DefaultDuration and a dt of zero uses a 60 Hz step.
func Traverse(curve Curve, duration, dt float64) ([]r3.Vec, error) {
	if duration == 0 {
		duration = DefaultDuration
	}
	ctrl, err := NewFromCurve(curve, duration)
	if err != nil {
		return nil, err
	}
	if dt == 0 {
		dt = defaultTraverseFrame
	}

	ctrl.BeginMovement()
	return clock.FixedStep{Step: dt}.Collect(context.Background(), ctrl)
}

// TraverseFloat32 is like Traverse but returns float32 coordinates.
func TraverseFloat32(curve Curve, duration, dt float64) ([][numAxes]float32, error) {
	positions, err := Traverse(curve, duration, dt)
	if err != nil {
		return nil, err
	}

	out := make([][numAxes]float32, len(positions))
	for i, p := range positions {
		out[i] = [numAxes]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}
	return out, nil
}
