package wheel

import (
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// SeamOverlap extends every wedge's end angle so adjacent fills leave no
	// hairline gap when rasterized.
	SeamOverlap = 0.005

	// ArcOverhang extends the selection arc past the wedge on both ends.
	ArcOverhang = 0.01

	// DefaultContentOffset places icons at one third of the radius from the center.
	DefaultContentOffset = 1.0 / 3
)

// Wedge is the geometry of one slot. Angles are in radians in the host frame:
// 0 points right and angles grow clockwise on screen because y grows downward.
type Wedge struct {
	Index  int
	Item   Item
	Start  float64
	End    float64
	Center r2.Vec
	Radius float64

	// Content places the wedge's icon: rotate by Index*slice around Center,
	// then move outward along the rotated y axis.
	Content gg.Matrix
}

// Mid returns the nominal center angle of the wedge, ignoring the seam overlap.
func (w Wedge) Mid() float64 {
	return (w.Start + w.End - SeamOverlap) / 2
}

// ArcSpan returns the start and end angles of the wedge's selection arc.
func (w Wedge) ArcSpan() (start, end float64) {
	return w.Start - ArcOverhang, w.End + ArcOverhang
}

// Contains reports whether p lies inside the pie slice.
func (w Wedge) Contains(p r2.Vec) bool {
	d := r2.Sub(p, w.Center)
	if r2.Norm2(d) > w.Radius*w.Radius {
		return false
	}
	if d.X == 0 && d.Y == 0 {
		// The apex is shared by every wedge.
		return true
	}
	return angleWithin(math.Atan2(d.Y, d.X), w.Start, w.End)
}

// Centroid returns the area centroid of the slice.
func (w Wedge) Centroid() r2.Vec {
	half := (w.End - SeamOverlap - w.Start) / 2
	dist := 0.0
	if half > 0 && half < math.Pi {
		dist = 2 * w.Radius * math.Sin(half) / (3 * half)
	}
	sin, cos := math.Sincos(w.Mid())
	return r2.Add(w.Center, r2.Vec{X: dist * cos, Y: dist * sin})
}

// IconPoint returns where the wedge's icon is centered.
func (w Wedge) IconPoint() r2.Vec {
	return Apply(w.Content, w.Center)
}

// IconRotation returns the icon's rotation around its own center.
func (w Wedge) IconRotation() float64 {
	return Angle(w.Content)
}

// SliceAngle returns 2*pi/n, or 0 when n <= 0.
func SliceAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi / float64(n)
}

// CanonicalAngle returns the wheel rotation that brings slot i to the
// selected position: (n - i) * slice.
func CanonicalAngle(n, i int) float64 {
	return float64(n-i) * SliceAngle(n)
}

// NearestIndex returns the slot whose canonical angle is closest to the given
// wheel rotation. Angles exactly halfway between two slots resolve toward the
// lower k, where k = floor((angle + slice/2) / slice). Returns 0 when n <= 0.
func NearestIndex(n int, angle float64) int {
	if n <= 0 {
		return 0
	}
	slice := SliceAngle(n)
	k := int(math.Floor((normAngle(angle) + slice/2) / slice))
	idx := (n - k) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// ComputeWedges lays out n empty slots around a circle of the given radius
// whose bounding box starts at the origin, so the center is (radius, radius).
func ComputeWedges(n int, radius float64) []Wedge {
	return computeWedges(n, radius, DefaultContentOffset)
}

func computeWedges(n int, radius, contentOffset float64) []Wedge {
	if n <= 0 {
		return nil
	}
	slice := SliceAngle(n)
	center := r2.Vec{X: radius, Y: radius}
	wedges := make([]Wedge, n)
	for i := range wedges {
		start := float64(i)*slice - slice/2 - math.Pi/2
		end := float64(i+1)*slice - slice/2 - math.Pi/2 + SeamOverlap
		wedges[i] = Wedge{
			Index:   i,
			Start:   start,
			End:     end,
			Center:  center,
			Radius:  radius,
			Content: RotationAbout(float64(i)*slice, center).Multiply(gg.Translate(0, -radius*contentOffset)),
		}
	}
	return wedges
}

// Layout is one generation of wedges for an item list. It is never mutated;
// changing the items or the radius produces a new Layout.
type Layout struct {
	radius        float64
	contentOffset float64
	wedges        []Wedge
}

// NewLayout assigns items to slots in order. A contentOffset <= 0 selects
// DefaultContentOffset.
func NewLayout(items []Item, radius, contentOffset float64) Layout {
	if contentOffset <= 0 {
		contentOffset = DefaultContentOffset
	}
	wedges := computeWedges(len(items), radius, contentOffset)
	for i := range wedges {
		wedges[i].Item = items[i]
	}
	return Layout{radius: radius, contentOffset: contentOffset, wedges: wedges}
}

// Len returns the number of wedges.
func (l Layout) Len() int { return len(l.wedges) }

// Radius returns the bounding radius.
func (l Layout) Radius() float64 { return l.radius }

// ContentOffset returns the icon distance as a fraction of the radius.
func (l Layout) ContentOffset() float64 { return l.contentOffset }

// Center returns the wheel center in the host frame.
func (l Layout) Center() r2.Vec { return r2.Vec{X: l.radius, Y: l.radius} }

// Wedge returns slot i.
func (l Layout) Wedge(i int) Wedge { return l.wedges[i] }

// Wedges returns a copy of all slots.
func (l Layout) Wedges() []Wedge {
	out := make([]Wedge, len(l.wedges))
	copy(out, l.wedges)
	return out
}

// Items returns the items in slot order.
func (l Layout) Items() []Item {
	items := make([]Item, len(l.wedges))
	for i, w := range l.wedges {
		items[i] = w.Item
	}
	return items
}

// WedgeAt returns the first wedge containing p, in slot order.
func (l Layout) WedgeAt(p r2.Vec) (int, bool) {
	for i := range l.wedges {
		if l.wedges[i].Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// normAngle returns theta in [0, 2*pi).
func normAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	if theta >= 2*math.Pi {
		theta = 0
	}
	return theta
}

// wrapAngle returns theta in (-pi, pi].
func wrapAngle(theta float64) float64 {
	theta = normAngle(theta)
	if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// angleWithin reports whether theta lies in [lower, upper] modulo 2*pi.
// Spans of a full turn or more contain every angle.
func angleWithin(theta, lower, upper float64) bool {
	span := upper - lower
	if span >= 2*math.Pi {
		return true
	}
	return normAngle(theta-lower) <= span
}
