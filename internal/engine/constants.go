package engine

// ControlPoints is the number of control values in a cubic segment.
const ControlPoints = 4

// Polynomial coefficients
const (
	bernsteinScale  = 3 // binomial coefficient C(3,1) = C(3,2)
	derivativeScale = 6 // 2·C(3,1) from differentiating the middle terms
)

// minSampleCount is the smallest grid that contains both endpoints.
const minSampleCount = 2
