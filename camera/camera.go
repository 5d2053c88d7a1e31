// Package camera maps window coordinates to the wheel's host frame and keeps
// the wheel anchored as the window is resized.
package camera

import "fmt"

// Anchor selects where the wheel sits in the window.
type Anchor int

const (
	AnchorBottom Anchor = iota // bottom middle, like a tab bar
	AnchorCenter
)

// ParseAnchor converts a config value to an Anchor. Empty means bottom.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "bottom":
		return AnchorBottom, nil
	case "center":
		return AnchorCenter, nil
	}
	return AnchorBottom, fmt.Errorf("unknown anchor %q", s)
}

// Camera places the wheel's host frame, a WorldW x WorldH box with its origin
// at the top-left, inside the window.
type Camera struct {
	// Screen position of the host frame origin
	X, Y float32

	// Zoom level (1.0 = 1:1)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Host frame dimensions (the wheel's bounding box)
	WorldW, WorldH float32

	Anchor Anchor
	Margin float32

	// Zoom constraints; MaxFitZoom is the largest zoom that keeps the wheel inside the margins
	MinZoom, MaxZoom float32
	MaxFitZoom       float32
}

// New creates a camera for a wheel of the given diameter at 1:1 zoom, or
// smaller if the wheel would not fit.
func New(viewportW, viewportH, diameter float32, anchor Anchor, margin float32) *Camera {
	c := &Camera{
		Zoom:    1.0,
		WorldW:  diameter,
		WorldH:  diameter,
		Anchor:  anchor,
		Margin:  margin,
		MinZoom: 0.25,
		MaxZoom: 4.0,
	}
	c.ViewportW, c.ViewportH = viewportW, viewportH
	c.refit()
	c.Zoom = clamp(1, c.MinZoom, c.MaxFitZoom)
	c.place()
	return c
}

// WorldToScreen converts host-frame coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.X + wx*c.Zoom, c.Y + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to host-frame coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.X) / c.Zoom, (sy - c.Y) / c.Zoom
}

// ScreenCenter returns the screen position of the wheel center.
func (c *Camera) ScreenCenter() (sx, sy float32) {
	return c.WorldToScreen(c.WorldW/2, c.WorldH/2)
}

// IsVisible returns true if a circle at (wx, wy) with given radius could be
// visible on screen.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	r := radius * c.Zoom
	return sx+r >= 0 && sx-r <= c.ViewportW && sy+r >= 0 && sy-r <= c.ViewportH
}

// Resize updates viewport dimensions and re-anchors the wheel.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.refit()
	if c.Zoom > c.MaxFitZoom {
		c.Zoom = c.MaxFitZoom
	}
	c.place()
}

// SetWheelSize changes the host frame size, as after a radius change.
func (c *Camera) SetWheelSize(diameter float32) {
	c.WorldW, c.WorldH = diameter, diameter
	c.refit()
	c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxFitZoom)
	c.place()
}

// SetZoom sets the zoom level, clamped to what fits the window.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxFitZoom)
	c.place()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns to 1:1 zoom, or the largest zoom that fits.
func (c *Camera) Reset() {
	c.SetZoom(1.0)
}

// refit recomputes MaxFitZoom for the current viewport.
func (c *Camera) refit() {
	availW := c.ViewportW - 2*c.Margin
	availH := c.ViewportH - 2*c.Margin
	fit := availW / c.WorldW
	if h := availH / c.WorldH; h < fit {
		fit = h
	}
	c.MaxFitZoom = clamp(fit, c.MinZoom, c.MaxZoom)
}

// place positions the host frame according to the anchor.
func (c *Camera) place() {
	w := c.WorldW * c.Zoom
	h := c.WorldH * c.Zoom
	c.X = (c.ViewportW - w) / 2
	switch c.Anchor {
	case AnchorCenter:
		c.Y = (c.ViewportH - h) / 2
	default:
		c.Y = c.ViewportH - c.Margin - h
	}
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
