// Command bezier-wav renders motion along a cubic Bézier curve as a
// three-channel WAV file, one channel per axis.
//
// Usage:
//
//	bezier-wav -duration 2 -rate 48000 out.wav
//	bezier-wav -p1 4,0,0 -p2 -4,2,1 -bits 24 out.wav
//
// Every audio frame is one controller tick of 1/rate seconds, so the file is
// as long as the traversal. Each axis is scaled into [-1, 1] over the curve's
// bounding box, which makes the output usable as control-voltage data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	bezier "github.com/tphakala/go-bezier-motion"
	"github.com/tphakala/go-bezier-motion/internal/cliflag"
)

const (
	defaultRate     = 48000
	defaultBits     = 16
	minRequiredArgs = 1
)

// options are the parsed command-line settings.
type options struct {
	points     *cliflag.CurvePoints
	duration   float64
	rate       int
	bits       int
	verbose    bool
	outputPath string
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	curve, err := bezier.NewCurve(opts.points.P0.Vec, opts.points.P1.Vec, opts.points.P2.Vec, opts.points.P3.Vec)
	if err != nil {
		return err
	}

	ctrl, err := bezier.NewFromCurve(curve, opts.duration)
	if err != nil {
		return err
	}

	bounds, err := curveBounds(curve)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Output: %s", opts.outputPath)
		log.Printf("Format: %d Hz, %d channels, %d-bit", opts.rate, numChannels, opts.bits)
		log.Printf("Duration: %gs", ctrl.Duration())
		log.Printf("Bounds: min=%v max=%v", bounds.min, bounds.max)
	}

	frames, err := renderFrames(ctx, ctrl, opts.rate, bounds)
	if err != nil {
		return err
	}

	if err := writeWAV(opts.outputPath, frames, opts.rate, opts.bits); err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Wrote %d frames", len(frames)/numChannels)
	}
	return nil
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("bezier-wav", flag.ContinueOnError)
	opts := &options{points: cliflag.RegisterCurve(fs)}
	fs.Float64Var(&opts.duration, "duration", bezier.DefaultDuration, "Traversal time in seconds")
	fs.IntVar(&opts.rate, "rate", defaultRate, "Sample rate in Hz (ticks per second)")
	fs.IntVar(&opts.bits, "bits", defaultBits, "Bit depth: 16 or 24")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) < minRequiredArgs {
		return nil, fmt.Errorf("usage: bezier-wav [options] output.wav")
	}
	opts.outputPath = rest[0]

	if opts.rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %d", opts.rate)
	}
	if _, err := maxValue(opts.bits); err != nil {
		return nil, err
	}
	return opts, nil
}
