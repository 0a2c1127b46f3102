// Package cliflag provides flag.Value types shared by the command-line tools.
package cliflag

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrBadVector indicates a point flag that is not three comma-separated numbers.
var ErrBadVector = errors.New("point must be x,y,z")

const vecComponents = 3

// Vec is a flag.Value holding a 3D point written as "x,y,z".
type Vec struct {
	r3.Vec
}

// String formats the point the way Set parses it.
func (v *Vec) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// Set parses "x,y,z". Whitespace around components is ignored.
func (v *Vec) Set(s string) error {
	parsed, err := ParseVec(s)
	if err != nil {
		return err
	}
	v.Vec = parsed
	return nil
}

// ParseVec parses a point written as "x,y,z".
func ParseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != vecComponents {
		return r3.Vec{}, fmt.Errorf("%w: %q", ErrBadVector, s)
	}

	var c [vecComponents]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%w: %q: %w", ErrBadVector, s, err)
		}
		c[i] = f
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// CurvePoints holds the -p0..-p3 flags.
type CurvePoints struct {
	P0, P1, P2, P3 Vec
}

// RegisterCurve adds -p0..-p3 to fs. The defaults trace an arch from the
// origin to (0,1,0).
func RegisterCurve(fs *flag.FlagSet) *CurvePoints {
	cp := &CurvePoints{
		P0: Vec{r3.Vec{X: 0, Y: 0, Z: 0}},
		P1: Vec{r3.Vec{X: 1, Y: 0, Z: 0}},
		P2: Vec{r3.Vec{X: 1, Y: 1, Z: 0}},
		P3: Vec{r3.Vec{X: 0, Y: 1, Z: 0}},
	}
	fs.Var(&cp.P0, "p0", "Start point P0 as x,y,z")
	fs.Var(&cp.P1, "p1", "Handle P1 (direction leaving P0) as x,y,z")
	fs.Var(&cp.P2, "p2", "Handle P2 (direction arriving at P3) as x,y,z")
	fs.Var(&cp.P3, "p3", "End point P3 as x,y,z")
	return cp
}
