package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	bezier "github.com/tphakala/go-bezier-motion"
)

var testArch = bezier.Curve{
	P0: r3.Vec{},
	P1: r3.Vec{X: 1},
	P2: r3.Vec{X: 1, Y: 1},
	P3: r3.Vec{Y: 1},
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, -1.0, normalize(0, 0, 2))
	assert.Equal(t, 0.0, normalize(1, 0, 2))
	assert.Equal(t, 1.0, normalize(2, 0, 2))
	assert.Equal(t, 0.0, normalize(5, 5, 5), "flat axis")
	assert.Equal(t, 1.0, normalize(3, 0, 2), "clipped")
}

func TestCurveBounds(t *testing.T) {
	b, err := curveBounds(testArch)
	require.NoError(t, err)

	assert.InDelta(t, 0, b.min.X, 1e-12)
	assert.InDelta(t, 0.75, b.max.X, 1e-5)
	assert.InDelta(t, 0, b.min.Y, 1e-12)
	assert.InDelta(t, 1, b.max.Y, 1e-12)
	assert.Zero(t, b.min.Z)
	assert.Zero(t, b.max.Z)
}

func TestRenderFrames(t *testing.T) {
	ctrl, err := bezier.NewFromCurve(testArch, 1)
	require.NoError(t, err)

	b := box{min: r3.Vec{}, max: r3.Vec{X: 1, Y: 1}}
	frames, err := renderFrames(context.Background(), ctrl, 4, b)
	require.NoError(t, err)

	// P0 plus four ticks of 0.25 s.
	require.Len(t, frames, 5*numChannels)
	assert.Equal(t, []float64{-1, -1, 0}, frames[:3])
	assert.Equal(t, []float64{-1, 1, 0}, frames[len(frames)-3:])
	assert.False(t, ctrl.IsMoving())
}

func TestMaxValue(t *testing.T) {
	v, err := maxValue(16)
	require.NoError(t, err)
	assert.Equal(t, maxInt16, v)

	v, err = maxValue(24)
	require.NoError(t, err)
	assert.Equal(t, maxInt24, v)

	_, err = maxValue(8)
	assert.Error(t, err)
}

// TestRun_WritesWAV renders a short trajectory and reads it back.
func TestRun_WritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arch.wav")
	require.NoError(t, run(context.Background(), []string{"-duration", "0.5", "-rate", "64", path}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, numChannels, buf.Format.NumChannels)
	assert.Equal(t, 64, buf.Format.SampleRate)
	assert.Equal(t, uint16(16), dec.BitDepth)

	// P0 plus 32 ticks of 1/64 s.
	require.Len(t, buf.Data, 33*numChannels)
	assert.Equal(t, []int{-32767, -32767, 0}, buf.Data[:3])
	assert.Equal(t, []int{-32767, 32767, 0}, buf.Data[len(buf.Data)-3:])
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"NoOutput", []string{"-duration", "1"}},
		{"BadBits", []string{"-bits", "12", filepath.Join(dir, "a.wav")}},
		{"BadRate", []string{"-rate", "0", filepath.Join(dir, "b.wav")}},
		{"BadDuration", []string{"-duration", "-2", filepath.Join(dir, "c.wav")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), tt.args))
		})
	}
}
