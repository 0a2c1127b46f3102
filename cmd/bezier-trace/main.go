// Command bezier-trace moves a point along a cubic Bézier curve and prints
// its position after every tick as CSV.
//
// Usage:
//
//	bezier-trace -duration 2 -fps 60
//	bezier-trace -p0 0,0,0 -p1 1,0,0 -p2 1,1,0 -p3 0,1,0 -fps 30
//	bezier-trace -samples 11                  # uniform parameter samples instead of ticks
//
// The tick run starts idle at P0, begins movement and ticks at 1/fps seconds
// until the controller stops at P3.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	bezier "github.com/tphakala/go-bezier-motion"
	"github.com/tphakala/go-bezier-motion/internal/cliflag"
	"github.com/tphakala/go-bezier-motion/internal/clock"
)

const (
	defaultFPS = 60.0

	// maxFramesFactor bounds a tick run at this many times the expected frame count.
	maxFramesFactor = 4
)

// options are the parsed command-line settings.
type options struct {
	points   *cliflag.CurvePoints
	duration float64
	fps      float64
	samples  int
	verbose  bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	curve, err := bezier.NewCurve(opts.points.P0.Vec, opts.points.P1.Vec, opts.points.P2.Vec, opts.points.P3.Vec)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Curve: P0=%v P1=%v P2=%v P3=%v", curve.P0, curve.P1, curve.P2, curve.P3)
		log.Printf("Arc length: %.6f", curve.Length())
	}

	if opts.samples > 0 {
		return writeSamples(out, curve, opts.samples)
	}

	ctrl, err := bezier.NewFromCurve(curve, opts.duration)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Duration: %gs at %g fps", ctrl.Duration(), opts.fps)
	}

	n, err := writeTicks(ctx, out, ctrl, opts.fps)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Ticks: %d, final state: %s", n, ctrl.State())
	}
	return nil
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("bezier-trace", flag.ContinueOnError)
	opts := &options{points: cliflag.RegisterCurve(fs)}
	fs.Float64Var(&opts.duration, "duration", bezier.DefaultDuration, "Traversal time in seconds")
	fs.Float64Var(&opts.fps, "fps", defaultFPS, "Ticks per second")
	fs.IntVar(&opts.samples, "samples", 0, "Print N uniform parameter samples instead of ticking")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !(opts.fps > 0) {
		return nil, fmt.Errorf("fps must be positive, got %v", opts.fps)
	}
	if opts.samples < 0 {
		return nil, fmt.Errorf("samples must not be negative, got %d", opts.samples)
	}
	return opts, nil
}

// writeTicks drives ctrl from a fixed-step clock and writes one CSV row per tick.
func writeTicks(ctx context.Context, out io.Writer, ctrl *bezier.Controller, fps float64) (int, error) {
	step := 1 / fps
	expected := int(ctrl.Duration()*fps) + 1

	if _, err := fmt.Fprintln(out, "frame,elapsed,x,y,z"); err != nil {
		return 0, err
	}

	start := ctrl.ResetToStart()
	if _, err := fmt.Fprintf(out, "0,0,%g,%g,%g\n", start.X, start.Y, start.Z); err != nil {
		return 0, err
	}

	ctrl.BeginMovement()
	return clock.FixedStep{Step: step, MaxFrames: expected * maxFramesFactor}.Run(ctx, ctrl, func(f clock.Frame) error {
		_, err := fmt.Fprintf(out, "%d,%g,%g,%g,%g\n", f.Index+1, f.Elapsed, f.Position.X, f.Position.Y, f.Position.Z)
		return err
	})
}

// writeSamples writes n uniform samples of curve as CSV.
func writeSamples(out io.Writer, curve bezier.Curve, n int) error {
	points, err := curve.SampleParallel(n)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, "i,t,x,y,z"); err != nil {
		return err
	}
	for i, p := range points {
		t := float64(i) / float64(n-1)
		if _, err := fmt.Fprintf(out, "%d,%g,%g,%g,%g\n", i, t, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return nil
}
