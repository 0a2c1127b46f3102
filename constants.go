package bezier

// Duration limits in seconds.
const (
	// MinDuration is the shortest traversal New accepts. Positive durations
	// below it are raised to it.
	MinDuration = 0.01

	// DefaultDuration is used by Traverse when given a zero duration and as
	// the -duration default of the commands.
	DefaultDuration = 1.0
)

// Geometry constants
const (
	numAxes          = 3 // x, y, z
	numControlPoints = 4 // P0..P3
)

// Sampling constants
const (
	minSampleCount       = 2   // both endpoints
	lengthCheckSamples   = 256 // polyline resolution for length cross-checks
	defaultTraverseFrame = 1.0 / 60.0
)
