package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-bezier-motion/internal/simdops"
)

// ErrSampleCount is returned when a grid cannot hold both endpoints.
var ErrSampleCount = errors.New("sample count must be at least 2")

// UniformGrid fills dst with len(dst) parameters evenly spaced over [0, 1].
// The first value is exactly 0 and the last exactly 1.
func UniformGrid[F simdops.Float](dst []F) error {
	n := len(dst)
	if n < minSampleCount {
		return fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}
	for i := range dst {
		dst[i] = F(i)
	}
	simdops.For[F]().Scale(dst, dst, 1/F(n-1))
	dst[n-1] = 1
	return nil
}

// EvaluateBatch writes B(ts[i]) for one axis into dst[i]. Each value is the
// dot product of the Bernstein weights with the axis' control values.
// dst must be at least as long as ts.
func EvaluateBatch[F simdops.Float](dst, ts []F, p [ControlPoints]F) {
	ops := simdops.For[F]()
	for i, t := range ts {
		switch t {
		case 0:
			dst[i] = p[0]
		case 1:
			dst[i] = p[ControlPoints-1]
		default:
			w := Weights(t)
			dst[i] = ops.DotProductUnsafe(w[:], p[:])
		}
	}
}

// PolylineLength returns the summed chord length of the 3D polyline whose
// coordinates are given per axis. All three slices must have the same length.
func PolylineLength[F simdops.Float](xs, ys, zs []F) F {
	if len(xs) < minSampleCount {
		return 0
	}
	segs := make([]F, len(xs)-1)
	for i := range segs {
		dx := float64(xs[i+1] - xs[i])
		dy := float64(ys[i+1] - ys[i])
		dz := float64(zs[i+1] - zs[i])
		segs[i] = F(math.Sqrt(dx*dx + dy*dy + dz*dz))
	}
	return simdops.For[F]().Sum(segs)
}
