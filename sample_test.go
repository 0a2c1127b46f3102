package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bezier-motion/internal/testutil"
)

// TestCurve_Sample verifies the grid includes both endpoints and matches At.
func TestCurve_Sample(t *testing.T) {
	const n = 33
	points, err := arch.Sample(n)
	require.NoError(t, err)
	require.Len(t, points, n)

	assert.Equal(t, arch.P0, points[0])
	assert.Equal(t, arch.P3, points[n-1])
	for i, p := range points {
		testutil.AssertVecInDelta(t, arch.At(float64(i)/(n-1)), p, testutil.DefaultTolerance, "i=%d", i)
	}
}

// TestCurve_SampleParallel verifies parallel and sequential sampling agree exactly.
func TestCurve_SampleParallel(t *testing.T) {
	for _, n := range []int{2, 3, 100, 4097} {
		seq, err := arch.Sample(n)
		require.NoError(t, err)

		par, err := arch.SampleParallel(n)
		require.NoError(t, err)

		assert.Equal(t, seq, par, "n=%d", n)
	}
}

// TestCurve_SampleAxes verifies per-axis output shape and bounds.
func TestCurve_SampleAxes(t *testing.T) {
	axes, err := arch.SampleAxes(257, true)
	require.NoError(t, err)

	for axis := range numAxes {
		require.Len(t, axes[axis], 257)
		testutil.AssertNoNaNOrInf(t, axes[axis], "axis %d", axis)
		// Convex hull property: every sample lies inside the control points' box.
		testutil.AssertAllInRange(t, axes[axis], 0, 1, "axis %d", axis)
	}
	// Y rises monotonically on the arch.
	testutil.AssertMonotonic(t, axes[1], "y axis")
	// Z stays flat.
	for _, z := range axes[2] {
		assert.Zero(t, z)
	}
}

// TestCurve_SampleFloat32 verifies float32 sampling tracks float64 sampling.
func TestCurve_SampleFloat32(t *testing.T) {
	const n = 65
	ref, err := arch.Sample(n)
	require.NoError(t, err)

	got, err := arch.SampleFloat32(n)
	require.NoError(t, err)
	require.Len(t, got, n)

	for i := range got {
		assert.InDelta(t, ref[i].X, float64(got[i][0]), 1e-6)
		assert.InDelta(t, ref[i].Y, float64(got[i][1]), 1e-6)
		assert.InDelta(t, ref[i].Z, float64(got[i][2]), 1e-6)
	}
}

// TestCurve_SampleInvalidCount verifies counts below two are rejected.
func TestCurve_SampleInvalidCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := arch.Sample(n)
		assert.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)

		_, err = arch.SampleParallel(n)
		assert.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)

		_, err = arch.SampleFloat32(n)
		assert.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)

		_, err = arch.PolylineLength(n)
		assert.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)
	}
}

// TestCurve_PolylineLength_Converges verifies finer grids approach the arc length.
func TestCurve_PolylineLength_Converges(t *testing.T) {
	length := arch.Length()

	coarse, err := arch.PolylineLength(8)
	require.NoError(t, err)
	fine, err := arch.PolylineLength(lengthCheckSamples)
	require.NoError(t, err)

	assert.Less(t, length-fine, length-coarse)
	assert.InDelta(t, length, fine, 1e-3)
}
