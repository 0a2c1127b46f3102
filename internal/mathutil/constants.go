package mathutil

// Quadrature settings for ArcLength.
const (
	// MinQuadratureNodes is the smallest Gauss-Legendre rule ArcLength uses.
	// A cubic's speed is the square root of a quartic, so a handful of nodes
	// already gives ~1e-6 relative accuracy on typical handles.
	MinQuadratureNodes = 8

	// DefaultQuadratureNodes is used by callers that have no accuracy preference.
	DefaultQuadratureNodes = 32
)
