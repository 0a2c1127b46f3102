package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/spatial/r3"

	bezier "github.com/tphakala/go-bezier-motion"
	"github.com/tphakala/go-bezier-motion/internal/clock"
)

const (
	numChannels = 3 // x, y, z

	// boundsSamples is the grid used to find the curve's bounding box.
	boundsSamples = 1024

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0

	wavFormatPCM = 1
)

// box is an axis-aligned bounding box.
type box struct {
	min, max r3.Vec
}

// curveBounds returns the bounding box of a dense sampling of curve.
func curveBounds(curve bezier.Curve) (box, error) {
	axes, err := curve.SampleAxes(boundsSamples, true)
	if err != nil {
		return box{}, err
	}

	var lo, hi [numChannels]float64
	for axis, values := range axes {
		lo[axis], hi[axis] = math.Inf(1), math.Inf(-1)
		for _, v := range values {
			lo[axis] = math.Min(lo[axis], v)
			hi[axis] = math.Max(hi[axis], v)
		}
	}
	return box{
		min: r3.Vec{X: lo[0], Y: lo[1], Z: lo[2]},
		max: r3.Vec{X: hi[0], Y: hi[1], Z: hi[2]},
	}, nil
}

// normalize maps v from [lo, hi] to [-1, 1]. A flat axis maps to 0.
func normalize(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return 0
	}
	n := 2*(v-lo)/span - 1
	return math.Max(-1, math.Min(1, n))
}

// renderFrames ticks ctrl once per audio frame from P0 until it stops and
// returns interleaved x, y, z values scaled into [-1, 1].
func renderFrames(ctx context.Context, ctrl *bezier.Controller, rate int, b box) ([]float64, error) {
	expected := int(math.Ceil(ctrl.Duration()*float64(rate))) + 1
	frames := make([]float64, 0, expected*numChannels)

	appendPos := func(p r3.Vec) {
		frames = append(frames,
			normalize(p.X, b.min.X, b.max.X),
			normalize(p.Y, b.min.Y, b.max.Y),
			normalize(p.Z, b.min.Z, b.max.Z),
		)
	}

	appendPos(ctrl.ResetToStart())
	ctrl.BeginMovement()

	_, err := clock.FixedStep{Step: 1 / float64(rate)}.Run(ctx, ctrl, func(f clock.Frame) error {
		appendPos(f.Position)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rendering trajectory: %w", err)
	}
	return frames, nil
}

// maxValue returns the full-scale integer value for a PCM bit depth.
func maxValue(bits int) (float64, error) {
	switch bits {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d (use 16 or 24)", bits)
	}
}

// writeWAV encodes interleaved frames in [-1, 1] as PCM.
func writeWAV(path string, frames []float64, rate, bits int) error {
	maxVal, err := maxValue(bits)
	if err != nil {
		return err
	}

	data := make([]int, len(frames))
	for i, v := range frames {
		data[i] = int(math.Round(v * maxVal))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, rate, bits, numChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bits,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return f.Close()
}
