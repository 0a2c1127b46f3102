package mathutil

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// ArcLength integrates speed over [0, 1] with fixed-order Gauss-Legendre
// quadrature. speed is expected to be smooth (a polynomial norm for cubic
// curves), so a fixed rule converges without adaptive subdivision.
//
// nodes below MinQuadratureNodes are raised to it.
func ArcLength(speed func(t float64) float64, nodes int) float64 {
	if nodes < MinQuadratureNodes {
		nodes = MinQuadratureNodes
	}
	return quad.Fixed(speed, 0, 1, nodes, quad.Legendre{}, 0)
}
