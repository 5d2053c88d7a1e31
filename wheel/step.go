package wheel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// InputKind identifies a pointer or button event.
type InputKind int

const (
	DragBegin InputKind = iota
	DragMove
	DragEnd
	Tap
	Toggle
)

func (k InputKind) String() string {
	switch k {
	case DragBegin:
		return "drag-begin"
	case DragMove:
		return "drag-move"
	case DragEnd:
		return "drag-end"
	case Tap:
		return "tap"
	case Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Input is one event in the wheel's host frame. Point is ignored for DragEnd
// and Toggle.
type Input struct {
	Kind  InputKind
	Point r2.Vec
}

// State is the logical wheel state. Rotation is the logical target; the
// visual pose may still be animating toward it.
type State struct {
	Selected int
	Rotation float64
	Open     bool

	Dragging bool
	Anchor   r2.Vec
}

// Geometry is the read-only context Step needs.
type Geometry struct {
	Layout             Layout
	CenterButtonRadius float64
	CollapsedScale     float64
}

// Scale returns the wheel scale for the open or closed state.
func (g Geometry) Scale(open bool) float64 {
	if open {
		return 1
	}
	return g.CollapsedScale
}

// Pose returns the pose that represents s.
func (g Geometry) Pose(s State) Pose {
	return Pose{Rotation: s.Rotation, Scale: g.Scale(s.Open)}
}

// TransitionKind says how the visual pose should reach its new target.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionJump                // follow immediately (dragging)
	TransitionSnap                // animate to a slot, then highlight it
	TransitionSpring              // open/close
)

// Transition is the visual side of a state change.
type Transition struct {
	Kind  TransitionKind
	To    Pose
	Index int // slot to highlight when a snap completes
}

// Selection is the outgoing selection-changed event.
type Selection struct {
	Index int
	Item  Item
	By    InputKind
}

// Outcome collects everything a Step asks the caller to do.
type Outcome struct {
	Transition Transition
	Selection  *Selection
	Center     bool // the center button was tapped
}

// Step applies one input to s and returns the new state and its effects.
// It has no side effects. An empty layout makes every input a no-op.
func Step(s State, in Input, g Geometry) (State, Outcome) {
	n := g.Layout.Len()
	if n == 0 {
		return s, Outcome{}
	}
	center := g.Layout.Center()

	switch in.Kind {
	case Toggle:
		s.Open = !s.Open
		s.Dragging = false
		s.Rotation = CanonicalAngle(n, s.Selected)
		return s, Outcome{Transition: Transition{Kind: TransitionSpring, To: g.Pose(s), Index: s.Selected}}

	case Tap:
		// The center button sits above the wheel and is never rotated or scaled.
		if r2.Norm(r2.Sub(in.Point, center)) <= g.CenterButtonRadius {
			return s, Outcome{Center: true}
		}
	}

	if !s.Open {
		return s, Outcome{}
	}

	switch in.Kind {
	case DragBegin:
		s.Dragging = true
		s.Anchor = in.Point
		return s, Outcome{}

	case DragMove:
		if !s.Dragging {
			return s, Outcome{}
		}
		s.Rotation += sweep(center, s.Anchor, in.Point)
		s.Anchor = in.Point
		return s, Outcome{Transition: Transition{Kind: TransitionJump, To: g.Pose(s)}}

	case DragEnd:
		if !s.Dragging {
			return s, Outcome{}
		}
		s.Dragging = false
		wheelAngle := Angle(g.Pose(s).Transform(center))
		return snapTo(s, NearestIndex(n, wheelAngle), in.Kind, g)

	case Tap:
		inv, ok := Invert(g.Pose(s).Transform(center))
		if !ok {
			return s, Outcome{}
		}
		i, ok := g.Layout.WedgeAt(Apply(inv, in.Point))
		if !ok {
			return s, Outcome{}
		}
		return snapTo(s, i, in.Kind, g)
	}
	return s, Outcome{}
}

// snapTo selects slot i and rotates to its canonical angle. A single-slot
// wheel snaps back without reporting a selection.
func snapTo(s State, i int, by InputKind, g Geometry) (State, Outcome) {
	n := g.Layout.Len()
	s.Selected = i
	s.Rotation = CanonicalAngle(n, i)
	out := Outcome{Transition: Transition{Kind: TransitionSnap, To: g.Pose(s), Index: i}}
	if n > 1 {
		out.Selection = &Selection{Index: i, Item: g.Layout.Wedge(i).Item, By: by}
	}
	return s, out
}

// sweep returns the signed angle from a to b as seen from c, in (-pi, pi].
func sweep(c, a, b r2.Vec) float64 {
	da := r2.Sub(a, c)
	db := r2.Sub(b, c)
	return wrapAngle(math.Atan2(db.Y, db.X) - math.Atan2(da.Y, da.X))
}
