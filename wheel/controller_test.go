package wheel

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// recordingAnimator keeps the last transition and defers completion until
// finish is called.
type recordingAnimator struct {
	pose    Pose
	curve   Curve
	animate int
	jumps   int
	done    func()
}

func (a *recordingAnimator) Jump(to Pose) {
	a.pose = to
	a.jumps++
	a.done = nil
}

func (a *recordingAnimator) Animate(to Pose, _ time.Duration, curve Curve, done func()) {
	a.pose = to
	a.curve = curve
	a.animate++
	a.done = done
}

func (a *recordingAnimator) finish() {
	if done := a.done; done != nil {
		a.done = nil
		done()
	}
}

type selections []Item

func (s *selections) DidSelectItem(_ *Controller, item Item) { *s = append(*s, item) }

func newTestController(t *testing.T, n int, opts ...Option) (*Controller, *selections) {
	t.Helper()
	var got selections
	opts = append([]Option{WithListener(&got)}, opts...)
	c, err := New(testItems(n), 100, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, &got
}

// onScreen returns where wedge i's centroid is drawn under the current pose.
func onScreen(c *Controller, i int) r2.Vec {
	return Apply(c.Pose().Transform(c.Layout().Center()), c.Layout().Wedge(i).Centroid())
}

func TestNewRejectsInvalidItems(t *testing.T) {
	_, err := New([]Item{{ID: "a"}}, 100)
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
	if _, err := New(testItems(2), 0); err == nil {
		t.Error("expected error for zero radius")
	}
}

func TestTapCentroidScenario(t *testing.T) {
	c, got := newTestController(t, 4)

	c.Tap(c.Layout().Wedge(2).Centroid())

	if len(*got) != 1 {
		t.Fatalf("expected exactly one selection, got %d", len(*got))
	}
	if (*got)[0].ID != "item-2" {
		t.Errorf("selected %q, want item-2", (*got)[0].ID)
	}
	if c.Selected() != 2 || c.Highlighted() != 2 {
		t.Errorf("selected=%d highlighted=%d, want 2", c.Selected(), c.Highlighted())
	}
}

func TestOpenCloseKeepsSelection(t *testing.T) {
	c, got := newTestController(t, 4)
	if err := c.SetSelectedIndex(1, false); err != nil {
		t.Fatal(err)
	}

	want := []bool{false, true, false, true}
	for i, open := range want {
		c.TapCenter()
		if c.IsOpen() != open {
			t.Errorf("step %d: open = %v, want %v", i, c.IsOpen(), open)
		}
		if c.Selected() != 1 {
			t.Errorf("step %d: selected = %d, want 1", i, c.Selected())
		}
	}
	if len(*got) != 0 {
		t.Errorf("open/close fired %d selections", len(*got))
	}
}

func TestSetOpenIsIdempotent(t *testing.T) {
	anim := &recordingAnimator{}
	c, _ := newTestController(t, 3, WithAnimator(anim))
	c.SetOpen(true)
	if anim.animate != 0 {
		t.Errorf("SetOpen(true) on open wheel animated %d times", anim.animate)
	}
	c.SetOpen(false)
	if c.IsOpen() || anim.curve != CurveSpring {
		t.Errorf("SetOpen(false): open=%v curve=%v", c.IsOpen(), anim.curve)
	}
	if anim.pose.Scale != 0.1 {
		t.Errorf("closed scale = %v, want 0.1", anim.pose.Scale)
	}
}

func TestSetSelectedIndexRejectsOutOfRange(t *testing.T) {
	c, _ := newTestController(t, 4)
	if err := c.SetSelectedIndex(2, false); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	for _, i := range []int{-1, 4, 100} {
		err := c.SetSelectedIndex(i, true)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetSelectedIndex(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if c.State() != before {
			t.Errorf("SetSelectedIndex(%d) changed state", i)
		}
	}
}

func TestSetSelectedIndexIdempotent(t *testing.T) {
	anim := &recordingAnimator{}
	c, got := newTestController(t, 5, WithAnimator(anim))

	if err := c.SetSelectedIndex(3, true); err != nil {
		t.Fatal(err)
	}
	first := anim.pose
	if err := c.SetSelectedIndex(3, true); err != nil {
		t.Fatal(err)
	}
	if anim.pose != first {
		t.Errorf("second call targeted %+v, first %+v", anim.pose, first)
	}
	if first.Rotation != CanonicalAngle(5, 3) {
		t.Errorf("rotation = %v, want %v", first.Rotation, CanonicalAngle(5, 3))
	}
	if len(*got) != 0 {
		t.Error("SetSelectedIndex must not notify the listener")
	}
}

func TestHighlightWaitsForAnimation(t *testing.T) {
	anim := &recordingAnimator{}
	c, _ := newTestController(t, 4, WithAnimator(anim))

	c.Tap(c.Layout().Wedge(1).Centroid())
	if c.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", c.Selected())
	}
	if c.Highlighted() != 0 {
		t.Errorf("highlight moved before the animation finished")
	}
	if anim.curve != CurveEaseInOut {
		t.Errorf("snap curve = %v", anim.curve)
	}

	// A second tap re-targets; the first completion never runs.
	c.Tap(onScreen(c, 3))
	anim.finish()
	if c.Highlighted() != 3 {
		t.Errorf("highlighted = %d, want 3", c.Highlighted())
	}
}

func TestToggleMidSnapSettlesHighlight(t *testing.T) {
	anim := &recordingAnimator{}
	c, _ := newTestController(t, 4, WithAnimator(anim))

	c.Tap(c.Layout().Wedge(2).Centroid())
	if c.Highlighted() != 0 {
		t.Fatalf("highlight moved before the snap finished")
	}

	// Closing replaces the snap; its completion hook is gone.
	c.Toggle()
	anim.finish()
	if c.Highlighted() != 2 {
		t.Errorf("after close: highlighted = %d, want 2", c.Highlighted())
	}

	c.Toggle()
	anim.finish()
	if c.Selected() != 2 || c.Highlighted() != 2 {
		t.Errorf("after reopen: selected=%d highlighted=%d, want 2", c.Selected(), c.Highlighted())
	}
}

func TestDragMidSnapSettlesHighlight(t *testing.T) {
	anim := &recordingAnimator{}
	c, _ := newTestController(t, 4, WithAnimator(anim))

	c.Tap(c.Layout().Wedge(1).Centroid())
	p := onScreen(c, 1)
	c.DragBegin(p)
	c.DragMove(r2.Add(p, r2.Vec{X: 0, Y: 1}))
	if c.Highlighted() != 1 {
		t.Errorf("highlighted = %d, want 1 once the drag took over", c.Highlighted())
	}
}

func TestSetSelectedIndexNotAnimated(t *testing.T) {
	anim := &recordingAnimator{}
	c, _ := newTestController(t, 4, WithAnimator(anim))
	if err := c.SetSelectedIndex(2, false); err != nil {
		t.Fatal(err)
	}
	if anim.animate != 0 {
		t.Error("non-animated selection should jump")
	}
	if c.Highlighted() != 2 {
		t.Errorf("highlighted = %d, want 2", c.Highlighted())
	}
}

func TestEmptyWheel(t *testing.T) {
	c, got := newTestController(t, 0)

	if err := c.SetSelectedIndex(0, false); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
	c.Tap(c.Layout().Center())
	c.Toggle()
	c.TapCenter()
	c.DragBegin(c.Layout().Center())
	c.DragEnd()
	if len(*got) != 0 {
		t.Error("empty wheel fired a selection")
	}
	if !c.IsOpen() {
		t.Error("empty wheel toggled")
	}
	if _, ok := c.SelectedItem(); ok {
		t.Error("empty wheel has a selected item")
	}
}

func TestCustomCenterAction(t *testing.T) {
	calls := 0
	c, _ := newTestController(t, 4, WithCenterAction(func() { calls++ }))

	c.Tap(c.Layout().Center())
	if calls != 1 {
		t.Errorf("center action ran %d times, want 1", calls)
	}
	if !c.IsOpen() {
		t.Error("custom center action should replace the toggle")
	}

	c.SetCenterAction(nil)
	c.Tap(c.Layout().Center())
	if c.IsOpen() {
		t.Error("nil center action should restore the toggle")
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	c, got := newTestController(t, 4)
	c.Tap(c.Layout().Wedge(2).Centroid())
	rev := c.Revision()

	if err := c.SetItems(testItems(6)); err != nil {
		t.Fatal(err)
	}
	if c.Selected() != 0 || c.Highlighted() != 0 || c.State().Rotation != 0 {
		t.Errorf("state not reset: %+v", c.State())
	}
	if c.Len() != 6 {
		t.Errorf("len = %d, want 6", c.Len())
	}
	if c.Revision() == rev {
		t.Error("revision not bumped")
	}
	if len(*got) != 1 {
		t.Errorf("SetItems notified the listener")
	}

	if err := c.SetItems([]Item{{ID: "x"}}); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
	if c.Len() != 6 {
		t.Error("failed SetItems replaced the layout")
	}
}

func TestDragSelectsNearest(t *testing.T) {
	c, got := newTestController(t, 4)

	c.DragBegin(polar(0, 60))
	c.DragMove(polar(0.9, 60))
	c.DragMove(polar(1.4, 60))
	if r := c.State().Rotation; !scalar.EqualWithinAbs(r, 1.4, tol) {
		t.Errorf("rotation = %v, want 1.4", r)
	}
	c.DragEnd()

	if len(*got) != 1 || (*got)[0].ID != "item-3" {
		t.Fatalf("drag selected %+v, want item-3", *got)
	}
	if c.Pose().Rotation != CanonicalAngle(4, 3) {
		t.Errorf("pose rotation = %v", c.Pose().Rotation)
	}
}

func TestAppearanceSettersBumpRevision(t *testing.T) {
	c, _ := newTestController(t, 3)
	setters := []func(){
		func() { c.SetCenterButtonRadius(40) },
		func() { c.SetBackground(color.RGBA{R: 1, A: 255}) },
		func() { c.SetBorder(color.RGBA{G: 1, A: 255}) },
		func() { c.SetArcWidth(3) },
		func() { c.SetAnimationDuration(time.Second) },
		func() { c.SetCenterIcon("center.png") },
		func() { c.SetCollapsedScale(0.2) },
	}
	for i, set := range setters {
		rev := c.Revision()
		set()
		if c.Revision() <= rev {
			t.Errorf("setter %d did not bump revision", i)
		}
	}
	a := c.Appearance()
	if a.CenterButtonRadius != 40 || a.ArcWidth != 3 || a.CenterIcon != "center.png" || a.AnimationDuration != time.Second {
		t.Errorf("appearance not applied: %+v", a)
	}
}

func TestSetContentOffsetMovesIcons(t *testing.T) {
	c, _ := newTestController(t, 4)
	before := c.Layout().Wedge(0).IconPoint()
	rev := c.Revision()

	c.SetContentOffset(0.5)

	if c.Revision() == rev {
		t.Error("revision not bumped")
	}
	if got := c.Layout().ContentOffset(); got != 0.5 {
		t.Errorf("content offset = %v, want 0.5", got)
	}
	after := c.Layout().Wedge(0).IconPoint()
	center := c.Layout().Center()
	if !scalar.EqualWithinAbs(center.Y-after.Y, 0.5*c.Layout().Radius(), tol) {
		t.Errorf("icon at %v, want half a radius above center", after)
	}
	if after == before {
		t.Error("icon did not move")
	}
}
