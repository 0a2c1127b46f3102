package bezier

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier-motion/internal/mathutil"
)

// Config holds motion configuration.
type Config struct {
	// Duration is the time in seconds for a full traversal from P0 to P3.
	// It must be positive. Values below MinDuration are raised to MinDuration.
	Duration float64

	// P0 is the start point of the curve.
	P0 *r3.Vec

	// P1 is the handle giving the direction the curve leaves P0 in.
	P1 *r3.Vec

	// P2 is the handle giving the direction the curve arrives at P3 from.
	P2 *r3.Vec

	// P3 is the end point of the curve.
	P3 *r3.Vec

	// EnableParallel evaluates the three axes concurrently in Controller.Sample.
	EnableParallel bool
}

// Common errors returned by the controller.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid motion configuration")

	// ErrNegativeDelta indicates a Tick with a negative or NaN time delta.
	ErrNegativeDelta = errors.New("negative time delta")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: duration must be finite, got %v", ErrInvalidConfig, c.Duration)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, c.Duration)
	}

	for i, p := range []*r3.Vec{c.P0, c.P1, c.P2, c.P3} {
		if p == nil {
			return fmt.Errorf("%w: control point P%d is not set", ErrInvalidConfig, i)
		}
		if !vecFinite(*p) {
			return fmt.Errorf("%w: control point P%d is not finite: %v", ErrInvalidConfig, i, *p)
		}
	}

	return nil
}

// State is the motion state of a Controller.
type State int

const (
	// StateIdle means Tick has no effect.
	StateIdle State = iota

	// StateMoving means Tick advances the parameter.
	StateMoving
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is a read-only view of a controller's progress.
type Snapshot struct {
	T        float64
	Moving   bool
	Position r3.Vec
}

// Controller moves a point along a cubic Bézier curve as time advances.
//
// A Controller starts idle at P0. BeginMovement starts it; each Tick then
// advances the parameter by dt/duration and recomputes the position. Once the
// parameter reaches 1 the controller goes idle at P3.
//
// A Controller is driven by a single tick source and is not safe for
// concurrent use.
type Controller struct {
	curve    Curve
	duration float64
	parallel bool

	t        float64
	moving   bool
	position r3.Vec
}

// New creates a controller from config. The controller starts idle at P0.
func New(config *Config) (*Controller, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	duration := math.Max(config.Duration, MinDuration)

	curve := Curve{P0: *config.P0, P1: *config.P1, P2: *config.P2, P3: *config.P3}
	return &Controller{
		curve:    curve,
		duration: duration,
		parallel: config.EnableParallel,
		position: curve.P0,
	}, nil
}

// BeginMovement switches the controller to moving. The parameter is left
// where it is, so calling it while already moving changes nothing, and
// calling it at the end of the curve finishes on the next Tick without
// moving. Use ResetToStart to go again from P0.
func (c *Controller) BeginMovement() {
	c.moving = true
}

// ResetToStart stops the controller and rewinds it to P0.
// The returned position is P0 and is also what Position reports from now on.
func (c *Controller) ResetToStart() r3.Vec {
	c.t = 0
	c.moving = false
	c.position = c.curve.P0
	return c.position
}

// Tick advances the controller by dt seconds and returns the new position.
//
// dt is checked first: a negative or NaN dt returns ErrNegativeDelta in
// either state and leaves the state untouched. With a valid dt, an idle
// controller returns the current position and changes nothing.
//
// When the parameter reaches 1 the controller stops in the same tick. The
// position is computed after that check from the unclamped parameter, which
// the evaluator clamps, so the final position is exactly P3.
func (c *Controller) Tick(dt float64) (r3.Vec, error) {
	if math.IsNaN(dt) || dt < 0 {
		return c.position, fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}

	if !c.moving {
		return c.position, nil
	}

	c.t += dt / c.duration
	if c.t >= 1 {
		c.moving = false
	}

	c.position = c.curve.At(c.t)
	return c.position, nil
}

// Seek moves the parameter to t (clamped to [0, 1]) and recomputes the
// position without changing the moving flag.
func (c *Controller) Seek(t float64) r3.Vec {
	c.t = mathutil.Clamp01(t)
	c.position = c.curve.At(c.t)
	return c.position
}

// T returns the curve parameter, clamped to [0, 1]. After the final tick the
// stored parameter may sit past 1; T still reports 1.
func (c *Controller) T() float64 {
	return mathutil.Clamp01(c.t)
}

// IsMoving reports whether Tick will advance the controller.
func (c *Controller) IsMoving() bool {
	return c.moving
}

// State returns StateMoving or StateIdle.
func (c *Controller) State() State {
	if c.moving {
		return StateMoving
	}
	return StateIdle
}

// Position returns the position computed by the last Tick, Seek or
// ResetToStart, or P0 for a new controller.
func (c *Controller) Position() r3.Vec {
	return c.position
}

// Duration returns the effective traversal duration in seconds.
func (c *Controller) Duration() float64 {
	return c.duration
}

// Curve returns the curve the controller follows.
func (c *Controller) Curve() Curve {
	return c.curve
}

// Sample returns n evenly spaced points of the controller's curve without
// touching its motion state. Axes are evaluated concurrently when the
// controller was created with EnableParallel.
func (c *Controller) Sample(n int) ([]r3.Vec, error) {
	if c.parallel {
		return c.curve.SampleParallel(n)
	}
	return c.curve.Sample(n)
}

// Progress returns a snapshot of the controller.
func (c *Controller) Progress() Snapshot {
	return Snapshot{T: c.T(), Moving: c.moving, Position: c.position}
}
