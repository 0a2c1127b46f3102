package bezier

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier-motion/internal/engine"
)

// ErrInvalidSampleCount indicates a request for fewer than two samples.
var ErrInvalidSampleCount = errors.New("invalid sample count")

// Sample returns n points at evenly spaced parameters t = i/(n-1).
// The first point is exactly P0 and the last exactly P3.
func (c Curve) Sample(n int) ([]r3.Vec, error) {
	axes, err := c.SampleAxes(n, false)
	if err != nil {
		return nil, err
	}
	return zipAxes(axes), nil
}

// SampleParallel is like Sample but evaluates the three axes concurrently.
func (c Curve) SampleParallel(n int) ([]r3.Vec, error) {
	axes, err := c.SampleAxes(n, true)
	if err != nil {
		return nil, err
	}
	return zipAxes(axes), nil
}

// SampleAxes returns n evenly spaced samples per axis, in x, y, z order.
// When parallel is true each axis is evaluated on its own goroutine.
func (c Curve) SampleAxes(n int, parallel bool) ([numAxes][]float64, error) {
	return sampleAxes[float64](c, n, parallel)
}

// SampleFloat32 is like Sample but returns float32 coordinates.
// The evaluation itself runs in float32.
func (c Curve) SampleFloat32(n int) ([][numAxes]float32, error) {
	axes, err := sampleAxes[float32](c, n, false)
	if err != nil {
		return nil, err
	}
	out := make([][numAxes]float32, n)
	for i := range out {
		out[i] = [numAxes]float32{axes[0][i], axes[1][i], axes[2][i]}
	}
	return out, nil
}

// PolylineLength approximates the arc length by the chord length of n
// evenly spaced samples. It converges to Length from below as n grows.
func (c Curve) PolylineLength(n int) (float64, error) {
	axes, err := c.SampleAxes(n, false)
	if err != nil {
		return 0, err
	}
	return engine.PolylineLength(axes[0], axes[1], axes[2]), nil
}

func sampleAxes[F float32 | float64](c Curve, n int, parallel bool) ([numAxes][]F, error) {
	var out [numAxes][]F
	if n < minSampleCount {
		return out, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidSampleCount, minSampleCount, n)
	}

	ts := make([]F, n)
	if err := engine.UniformGrid(ts); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidSampleCount, err)
	}

	evalAxis := func(axis int) {
		var p [numControlPoints]F
		for j, v := range c.axis(axis) {
			p[j] = F(v)
		}
		out[axis] = make([]F, n)
		engine.EvaluateBatch(out[axis], ts, p)
	}

	if !parallel {
		for axis := range numAxes {
			evalAxis(axis)
		}
		return out, nil
	}

	var wg sync.WaitGroup
	for axis := range numAxes {
		wg.Add(1)
		go func(axis int) {
			defer wg.Done()
			evalAxis(axis)
		}(axis)
	}
	wg.Wait()

	return out, nil
}

func zipAxes(axes [numAxes][]float64) []r3.Vec {
	out := make([]r3.Vec, len(axes[0]))
	for i := range out {
		out[i] = r3.Vec{X: axes[0][i], Y: axes[1][i], Z: axes[2][i]}
	}
	return out
}
