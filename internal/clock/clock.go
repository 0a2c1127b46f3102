// Package clock drives tick-based controllers from a fixed-timestep loop.
//
// The loop stands in for a host's per-frame callback: each iteration advances
// the ticker by one step and hands the resulting position to a sink. Hosts with
// their own render loop call Tick directly and never need this package.
package clock

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ticker is anything advanced by elapsed time that reports whether it still
// wants ticks.
type Ticker interface {
	Tick(dt float64) (r3.Vec, error)
	IsMoving() bool
}

// Frame is the result of a single tick.
type Frame struct {
	// Index is the zero-based tick number.
	Index int

	// Elapsed is the simulated time after this tick, in seconds.
	Elapsed float64

	// Position is what the ticker reported for this tick.
	Position r3.Vec
}

// ErrInvalidStep indicates a non-positive or non-finite timestep.
var ErrInvalidStep = errors.New("invalid timestep")

// FixedStep calls Tick with a constant delta.
type FixedStep struct {
	// Step is the delta passed to every Tick, in seconds.
	Step float64

	// MaxFrames bounds the run. Zero means no bound beyond the ticker
	// going idle.
	MaxFrames int
}

// Validate checks the timestep.
func (f FixedStep) Validate() error {
	if !(f.Step > 0) || math.IsInf(f.Step, 0) {
		return fmt.Errorf("%w: step must be positive and finite, got %v", ErrInvalidStep, f.Step)
	}
	if f.MaxFrames < 0 {
		return fmt.Errorf("%w: max frames must not be negative", ErrInvalidStep)
	}
	return nil
}

// Run ticks tk until it stops moving, MaxFrames is reached, ctx is done or
// emit returns an error. It returns the number of ticks performed.
//
// A ticker that is idle on entry is not ticked at all.
func (f FixedStep) Run(ctx context.Context, tk Ticker, emit func(Frame) error) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	frames := 0
	for tk.IsMoving() {
		if f.MaxFrames > 0 && frames >= f.MaxFrames {
			break
		}
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		pos, err := tk.Tick(f.Step)
		if err != nil {
			return frames, fmt.Errorf("tick %d: %w", frames, err)
		}
		frames++

		if emit != nil {
			frame := Frame{Index: frames - 1, Elapsed: float64(frames) * f.Step, Position: pos}
			if err := emit(frame); err != nil {
				return frames, err
			}
		}
	}
	return frames, nil
}

// Collect runs f and returns every emitted position in order.
func (f FixedStep) Collect(ctx context.Context, tk Ticker) ([]r3.Vec, error) {
	var out []r3.Vec
	_, err := f.Run(ctx, tk, func(fr Frame) error {
		out = append(out, fr.Position)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
