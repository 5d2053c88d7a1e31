package wheel

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Listener receives selection-changed events caused by drag and tap input.
type Listener interface {
	DidSelectItem(c *Controller, item Item)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(c *Controller, item Item)

// DidSelectItem calls f.
func (f ListenerFunc) DidSelectItem(c *Controller, item Item) { f(c, item) }

// Animator moves the visual pose toward logical targets. Animate replaces any
// transition in flight; the replaced transition's done hook never runs.
type Animator interface {
	Jump(to Pose)
	Animate(to Pose, d time.Duration, curve Curve, done func())
}

// Appearance holds the host-visible styling properties. Every setter on
// Controller bumps Revision so views know to refresh cached resources.
type Appearance struct {
	CenterButtonRadius float64
	Background         color.RGBA
	Border             color.RGBA
	ArcWidth           float64
	AnimationDuration  time.Duration
	CollapsedScale     float64
	CenterIcon         string
}

// DefaultAppearance returns the stock look: a near-white wheel with white
// borders, a 32pt center button and 0.2s transitions.
func DefaultAppearance() Appearance {
	return Appearance{
		CenterButtonRadius: 32,
		Background:         color.RGBA{R: 250, G: 250, B: 250, A: 255},
		Border:             color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ArcWidth:           5,
		AnimationDuration:  200 * time.Millisecond,
		CollapsedScale:     0.1,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithAnimator sets the animator. Without one, transitions complete immediately.
func WithAnimator(a Animator) Option {
	return func(c *Controller) { c.animator = a }
}

// WithListener registers the selection listener.
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithLogger sets the logger. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithAppearance replaces the default appearance.
func WithAppearance(a Appearance) Option {
	return func(c *Controller) { c.appearance = a }
}

// WithContentOffset sets the icon distance as a fraction of the radius.
func WithContentOffset(f float64) Option {
	return func(c *Controller) { c.contentOffset = f }
}

// WithCenterAction replaces the center button's default open/close toggle.
func WithCenterAction(fn func()) Option {
	return func(c *Controller) { c.centerAction = fn }
}

// Controller owns a wheel's layout and state. It is not safe for concurrent
// use; drive it from the UI thread.
type Controller struct {
	layout        Layout
	contentOffset float64
	state         State
	appearance    Appearance

	animator     Animator
	listener     Listener
	centerAction func()
	logger       *slog.Logger

	highlighted int
	revision    uint64
}

// New validates items and builds a controller for a wheel of the given
// radius. The wheel starts open with slot 0 selected.
func New(items []Item, radius float64, opts ...Option) (*Controller, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, fmt.Errorf("wheel: radius must be positive, got %v", radius)
	}
	c := &Controller{
		appearance: DefaultAppearance(),
		state:      State{Open: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = &instant{}
	}
	if c.logger == nil {
		c.logger = slog.New(discardHandler{})
	}
	c.layout = NewLayout(items, radius, c.contentOffset)
	c.animator.Jump(c.geometry().Pose(c.state))
	return c, nil
}

// SetListener replaces the registered listener. nil unregisters.
func (c *Controller) SetListener(l Listener) { c.listener = l }

// SetCenterAction replaces the center button action. nil restores the toggle.
func (c *Controller) SetCenterAction(fn func()) { c.centerAction = fn }

// SetItems replaces the item list, rebuilds the wedges and resets the
// selection to slot 0 without notifying the listener.
func (c *Controller) SetItems(items []Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	c.layout = NewLayout(items, c.layout.Radius(), c.contentOffset)
	c.state = State{Open: c.state.Open}
	c.highlighted = 0
	c.animator.Jump(c.geometry().Pose(c.state))
	c.revision++
	c.logger.Debug("items replaced", "count", len(items))
	return nil
}

// Resize rebuilds the wedges for a new radius, keeping items and state.
func (c *Controller) Resize(radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("wheel: radius must be positive, got %v", radius)
	}
	if radius == c.layout.Radius() {
		return nil
	}
	c.layout = NewLayout(c.layout.Items(), radius, c.contentOffset)
	c.state.Dragging = false
	c.revision++
	return nil
}

// SetContentOffset moves the icons to fraction f of the radius.
func (c *Controller) SetContentOffset(f float64) {
	if f == c.contentOffset {
		return
	}
	c.contentOffset = f
	c.layout = NewLayout(c.layout.Items(), c.layout.Radius(), f)
	c.revision++
}

// Handle feeds one input through Step and applies the outcome.
func (c *Controller) Handle(in Input) {
	next, out := Step(c.state, in, c.geometry())
	c.state = next
	if in.Kind != DragMove {
		c.logger.Debug("wheel input", "kind", in.Kind, "x", in.Point.X, "y", in.Point.Y, "rotation", c.state.Rotation)
	}
	c.apply(out)
}

// DragBegin starts a rotation gesture at p.
func (c *Controller) DragBegin(p r2.Vec) { c.Handle(Input{Kind: DragBegin, Point: p}) }

// DragMove rotates the wheel by the angle swept from the previous point to p.
func (c *Controller) DragMove(p r2.Vec) { c.Handle(Input{Kind: DragMove, Point: p}) }

// DragEnd snaps to the nearest slot and reports it.
func (c *Controller) DragEnd() { c.Handle(Input{Kind: DragEnd}) }

// Tap selects the wedge under p, or runs the center action when p is on the
// center button.
func (c *Controller) Tap(p r2.Vec) { c.Handle(Input{Kind: Tap, Point: p}) }

// Toggle opens a closed wheel and closes an open one.
func (c *Controller) Toggle() { c.Handle(Input{Kind: Toggle}) }

// SetOpen opens or closes the wheel. It does nothing if already in that state.
func (c *Controller) SetOpen(open bool) {
	if c.state.Open == open {
		return
	}
	c.Toggle()
}

// TapCenter runs the center action, or toggles the wheel when none is set.
func (c *Controller) TapCenter() {
	if c.layout.Len() == 0 {
		return
	}
	if c.centerAction != nil {
		c.logger.Debug("center action")
		c.centerAction()
		return
	}
	c.Toggle()
}

// SetSelectedIndex selects slot i and rotates to its canonical angle. The
// listener is not notified. Out-of-range indexes leave the state unchanged.
func (c *Controller) SetSelectedIndex(i int, animated bool) error {
	n := c.layout.Len()
	if n == 0 {
		return ErrNoItems
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	c.state.Selected = i
	c.state.Dragging = false
	c.state.Rotation = CanonicalAngle(n, i)
	pose := c.geometry().Pose(c.state)
	if !animated || c.appearance.AnimationDuration <= 0 {
		c.animator.Jump(pose)
		c.highlighted = i
		return nil
	}
	c.animator.Animate(pose, c.appearance.AnimationDuration, CurveEaseInOut, c.highlightFunc(i))
	return nil
}

func (c *Controller) apply(out Outcome) {
	tr := out.Transition
	switch tr.Kind {
	case TransitionJump:
		c.settle()
		c.animator.Jump(tr.To)
	case TransitionSnap:
		if c.appearance.AnimationDuration <= 0 {
			c.animator.Jump(tr.To)
			c.highlighted = tr.Index
		} else {
			c.animator.Animate(tr.To, c.appearance.AnimationDuration, CurveEaseInOut, c.highlightFunc(tr.Index))
		}
	case TransitionSpring:
		c.settle()
		c.animator.Animate(tr.To, c.appearance.AnimationDuration, CurveSpring, nil)
		c.logger.Info("wheel toggled", "open", c.state.Open)
	}

	if out.Center {
		c.TapCenter()
	}

	if sel := out.Selection; sel != nil {
		c.logger.Info("item selected", "index", sel.Index, "id", sel.Item.ID, "by", sel.By)
		if c.listener != nil {
			c.listener.DidSelectItem(c, sel.Item)
		}
	}
}

// settle marks the logical selection highlighted. Jumps and springs replace
// any snap in flight, and the snap's completion must still take effect.
func (c *Controller) settle() {
	c.highlighted = c.state.Selected
}

func (c *Controller) highlightFunc(i int) func() {
	return func() { c.highlighted = i }
}

func (c *Controller) geometry() Geometry {
	return Geometry{
		Layout:             c.layout,
		CenterButtonRadius: c.appearance.CenterButtonRadius,
		CollapsedScale:     c.appearance.CollapsedScale,
	}
}

// Len returns the number of items.
func (c *Controller) Len() int { return c.layout.Len() }

// Layout returns the current wedge generation.
func (c *Controller) Layout() Layout { return c.layout }

// Items returns the items in slot order.
func (c *Controller) Items() []Item { return c.layout.Items() }

// State returns a copy of the logical state.
func (c *Controller) State() State { return c.state }

// Selected returns the selected slot.
func (c *Controller) Selected() int { return c.state.Selected }

// SelectedItem returns the selected item. ok is false on an empty wheel.
func (c *Controller) SelectedItem() (Item, bool) {
	if c.layout.Len() == 0 {
		return Item{}, false
	}
	return c.layout.Wedge(c.state.Selected).Item, true
}

// IsOpen reports whether the wheel is open.
func (c *Controller) IsOpen() bool { return c.state.Open }

// Pose returns the logical target pose.
func (c *Controller) Pose() Pose { return c.geometry().Pose(c.state) }

// Highlighted returns the slot drawn as selected. It lags Selected until the
// snap animation completes.
func (c *Controller) Highlighted() int { return c.highlighted }

// Appearance returns the current styling.
func (c *Controller) Appearance() Appearance { return c.appearance }

// Revision increases whenever the layout or the appearance changes.
func (c *Controller) Revision() uint64 { return c.revision }

// SetCenterButtonRadius sets the radius of the center button.
func (c *Controller) SetCenterButtonRadius(r float64) {
	c.appearance.CenterButtonRadius = r
	c.revision++
}

// SetBackground sets the wedge fill color.
func (c *Controller) SetBackground(col color.RGBA) {
	c.appearance.Background = col
	c.revision++
}

// SetBorder sets the wedge border color.
func (c *Controller) SetBorder(col color.RGBA) {
	c.appearance.Border = col
	c.revision++
}

// SetArcWidth sets the width of the selection arc.
func (c *Controller) SetArcWidth(w float64) {
	c.appearance.ArcWidth = w
	c.revision++
}

// SetAnimationDuration sets the snap and open/close duration. Zero disables
// animation.
func (c *Controller) SetAnimationDuration(d time.Duration) {
	c.appearance.AnimationDuration = d
	c.revision++
}

// SetCenterIcon sets the center button icon reference. Empty selects the
// host's default glyph.
func (c *Controller) SetCenterIcon(ref string) {
	c.appearance.CenterIcon = ref
	c.revision++
}

// SetCollapsedScale sets the wheel scale while closed.
func (c *Controller) SetCollapsedScale(s float64) {
	c.appearance.CollapsedScale = s
	c.revision++
	if !c.state.Open {
		c.animator.Jump(c.Pose())
	}
}

// instant applies every transition at once.
type instant struct {
	pose Pose
}

func (a *instant) Jump(to Pose) { a.pose = to }

func (a *instant) Animate(to Pose, _ time.Duration, _ Curve, done func()) {
	a.pose = to
	if done != nil {
		done()
	}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
