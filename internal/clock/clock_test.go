package clock

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// countdown moves along X one unit per second until it has run for limit seconds.
type countdown struct {
	elapsed float64
	limit   float64
	moving  bool
	deltas  []float64
}

func (c *countdown) Tick(dt float64) (r3.Vec, error) {
	c.deltas = append(c.deltas, dt)
	c.elapsed += dt
	if c.elapsed >= c.limit {
		c.moving = false
	}
	return r3.Vec{X: c.elapsed}, nil
}

func (c *countdown) IsMoving() bool { return c.moving }

func TestFixedStep_RunsUntilIdle(t *testing.T) {
	tk := &countdown{limit: 1, moving: true}

	var frames []Frame
	n, err := FixedStep{Step: 0.25}.Run(context.Background(), tk, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, frames, 4)
	assert.False(t, tk.IsMoving())

	for i, f := range frames {
		assert.Equal(t, i, f.Index)
		assert.InDelta(t, float64(i+1)*0.25, f.Elapsed, 1e-15)
		assert.InDelta(t, float64(i+1)*0.25, f.Position.X, 1e-15)
	}
	for _, dt := range tk.deltas {
		assert.Equal(t, 0.25, dt)
	}
}

func TestFixedStep_IdleTickerNotTicked(t *testing.T) {
	tk := &countdown{limit: 1}
	n, err := FixedStep{Step: 0.1}.Run(context.Background(), tk, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, tk.deltas)
}

func TestFixedStep_MaxFrames(t *testing.T) {
	tk := &countdown{limit: 100, moving: true}
	n, err := FixedStep{Step: 1, MaxFrames: 3}.Run(context.Background(), tk, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, tk.IsMoving())
}

func TestFixedStep_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := &countdown{limit: 100, moving: true}

	n, err := FixedStep{Step: 1}.Run(ctx, tk, func(f Frame) error {
		if f.Index == 1 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, n)
}

func TestFixedStep_EmitError(t *testing.T) {
	sentinel := errors.New("sink full")
	tk := &countdown{limit: 100, moving: true}

	n, err := FixedStep{Step: 1}.Run(context.Background(), tk, func(Frame) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, n)
}

func TestFixedStep_Validate(t *testing.T) {
	tests := []struct {
		name string
		step FixedStep
	}{
		{"Zero", FixedStep{Step: 0}},
		{"Negative", FixedStep{Step: -0.5}},
		{"NaN", FixedStep{Step: math.NaN()}},
		{"Inf", FixedStep{Step: math.Inf(1)}},
		{"NegativeMaxFrames", FixedStep{Step: 1, MaxFrames: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.step.Run(context.Background(), &countdown{moving: true, limit: 1}, nil)
			assert.ErrorIs(t, err, ErrInvalidStep)
		})
	}
}

func TestFixedStep_Collect(t *testing.T) {
	tk := &countdown{limit: 0.5, moving: true}
	got, err := FixedStep{Step: 0.125}.Collect(context.Background(), tk)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.InDelta(t, 0.5, got[3].X, 1e-15)
}
