// Package bezier moves a point along a cubic Bézier curve over a fixed
// duration, one tick at a time.
//
// # Curves
//
// [Evaluate] blends four scalar control values at a parameter t in [0, 1]:
//
//	B(t) = (1-t)³·p0 + 3(1-t)²·t·p1 + 3(1-t)·t²·p2 + t³·p3
//
// Parameters outside [0, 1] are clamped, never rejected. [Curve] applies the
// same polynomial to each axis of four 3D control points (P0 start, P1 and P2
// handles, P3 end).
//
//	c, err := bezier.NewCurve(
//	    r3.Vec{X: 0, Y: 0}, r3.Vec{X: 1, Y: 0},
//	    r3.Vec{X: 1, Y: 1}, r3.Vec{X: 0, Y: 1},
//	)
//	mid := c.At(0.5) // (0.75, 0.5, 0)
//
// # Motion
//
// A [Controller] owns the parameter and a moving flag. The host calls Tick
// with the elapsed time once per frame:
//
//	ctrl, err := bezier.New(&bezier.Config{
//	    Duration: 2,
//	    P0: &p0, P1: &p1, P2: &p2, P3: &p3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctrl.BeginMovement()
//	for ctrl.IsMoving() {
//	    pos, err := ctrl.Tick(frameDelta)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    place(pos)
//	}
//
// Each Tick adds dt/Duration to the parameter. When it reaches 1 the
// controller goes idle and reports exactly P3. Further ticks are no-ops until
// [Controller.ResetToStart] or [Controller.BeginMovement].
//
// # Sampling
//
// [Curve.Sample] evaluates the curve on a uniform parameter grid using SIMD
// dot products with the Bernstein basis. [Curve.SampleParallel] evaluates the
// three axes concurrently, and [Curve.Length] integrates the arc length with
// Gauss-Legendre quadrature.
//
// # Thread Safety
//
// [Curve] is an immutable value and safe for concurrent use. A [Controller]
// must be driven by one tick source at a time.
package bezier
