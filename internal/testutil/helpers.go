// Package testutil provides reusable test helper functions for curve and motion tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	TickTolerance    = 1e-9
	LengthTolerance  = 1e-6
)

// AssertVecInDelta verifies that each component of actual is within delta of expected.
func AssertVecInDelta(t *testing.T, expected, actual r3.Vec, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	ok = assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...) && ok
	return assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...) && ok
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal),
				msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that actual is within relative tolerance of expected.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relErr := math.Abs((actual - expected) / expected)
	return assert.LessOrEqual(t, relErr, tolerance, msgAndArgs...)
}
