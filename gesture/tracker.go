// Package gesture classifies raw pointer events as taps or drags.
package gesture

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wheeltab/wheel"
)

// Tracker turns raw press/move/release events into wheel inputs.
// A press that moves less than DeadZone before release is a tap; anything
// further becomes a drag that starts at the press point.
type Tracker struct {
	DeadZone float64

	pressed  bool
	dragging bool
	origin   r2.Vec
	last     r2.Vec
}

// Press starts tracking at p.
func (t *Tracker) Press(p r2.Vec) {
	t.pressed = true
	t.dragging = false
	t.origin = p
	t.last = p
}

// Move reports the pointer at p while pressed.
func (t *Tracker) Move(p r2.Vec) []wheel.Input {
	if !t.pressed || p == t.last {
		return nil
	}
	t.last = p
	if t.dragging {
		return []wheel.Input{{Kind: wheel.DragMove, Point: p}}
	}
	if r2.Norm(r2.Sub(p, t.origin)) <= t.DeadZone {
		return nil
	}
	t.dragging = true
	return []wheel.Input{
		{Kind: wheel.DragBegin, Point: t.origin},
		{Kind: wheel.DragMove, Point: p},
	}
}

// Release ends the gesture.
func (t *Tracker) Release() []wheel.Input {
	if !t.pressed {
		return nil
	}
	t.pressed = false
	if t.dragging {
		t.dragging = false
		return []wheel.Input{{Kind: wheel.DragEnd}}
	}
	return []wheel.Input{{Kind: wheel.Tap, Point: t.origin}}
}

// Cancel drops the current gesture, ending a drag so the wheel snaps.
func (t *Tracker) Cancel() []wheel.Input {
	if !t.pressed {
		return nil
	}
	t.pressed = false
	if t.dragging {
		t.dragging = false
		return []wheel.Input{{Kind: wheel.DragEnd}}
	}
	return nil
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.dragging }
