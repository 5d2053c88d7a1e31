// Package replay drives a wheel controller from a YAML input script.
package replay

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/wheel"
)

// Script operations.
const (
	OpTap    = "tap"
	OpDrag   = "drag"
	OpToggle = "toggle"
	OpCenter = "center"
	OpSelect = "select"
)

// DefaultSegments is the number of DragMove events a drag expands into.
const DefaultSegments = 8

// ErrInvalidStep is returned for a malformed script step.
var ErrInvalidStep = errors.New("invalid step")

// Step is one scripted input. Points are in the wheel's host frame.
type Step struct {
	Op       string   `yaml:"op"`
	X        float64  `yaml:"x,omitempty"`
	Y        float64  `yaml:"y,omitempty"`
	ToX      float64  `yaml:"to_x,omitempty"`
	ToY      float64  `yaml:"to_y,omitempty"`
	SweepDeg *float64 `yaml:"sweep_deg,omitempty"` // Drag sweep; defaults to the short way from (x,y) to (to_x,to_y)
	Segments int      `yaml:"segments,omitempty"`
	Index    int      `yaml:"index,omitempty"`
	Animated bool     `yaml:"animated,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpTap, OpToggle, OpCenter, OpSelect:
	case OpDrag:
		if st.Segments < 0 {
			return fmt.Errorf("%w: negative segments", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, st.Op)
	}
	return nil
}

// Run applies every step to c in order. Selections reach rec through the
// controller's listener; open/close and center taps are recorded here.
// A failing select step stops the run.
func Run(ctx context.Context, s *Script, c *wheel.Controller, rec *telemetry.Recorder) error {
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		wasOpen := c.IsOpen()

		switch st.Op {
		case OpTap:
			c.Tap(r2.Vec{X: st.X, Y: st.Y})
		case OpDrag:
			for _, in := range DragInputs(c.Layout().Center(), st) {
				c.Handle(in)
			}
		case OpToggle:
			c.Toggle()
		case OpCenter:
			if rec != nil {
				rec.Record(telemetry.EventCenter, c)
			}
			c.TapCenter()
		case OpSelect:
			if err := c.SetSelectedIndex(st.Index, st.Animated); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}

		if rec != nil && c.IsOpen() != wasOpen {
			rec.Toggled(c)
		}
	}
	return nil
}

// DragInputs expands a drag step into DragBegin, DragMove along an arc
// around center, and DragEnd.
func DragInputs(center r2.Vec, st Step) []wheel.Input {
	from := r2.Vec{X: st.X, Y: st.Y}
	to := r2.Vec{X: st.ToX, Y: st.ToY}
	d0 := r2.Sub(from, center)
	d1 := r2.Sub(to, center)
	a0 := math.Atan2(d0.Y, d0.X)
	r0, r1 := r2.Norm(d0), r2.Norm(d1)

	sweep := shortest(math.Atan2(d1.Y, d1.X) - a0)
	if st.SweepDeg != nil {
		sweep = *st.SweepDeg * math.Pi / 180
	}

	// Keep every move well under half a turn so no step is ambiguous.
	n := st.Segments
	if n == 0 {
		n = DefaultSegments
	}
	if need := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2))); n < need {
		n = need
	}

	inputs := make([]wheel.Input, 0, n+2)
	inputs = append(inputs, wheel.Input{Kind: wheel.DragBegin, Point: from})
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n)
		a := a0 + sweep*t
		r := r0 + (r1-r0)*t
		sin, cos := math.Sincos(a)
		inputs = append(inputs, wheel.Input{Kind: wheel.DragMove, Point: r2.Vec{X: center.X + r*cos, Y: center.Y + r*sin}})
	}
	return append(inputs, wheel.Input{Kind: wheel.DragEnd})
}

func shortest(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
