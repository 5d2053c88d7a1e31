package wheel

import (
	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is the visual state of the whole wheel: a rotation and a uniform scale
// around the wheel center.
type Pose struct {
	Rotation float64
	Scale    float64
}

// Transform returns the pose as an affine transform around center.
func (p Pose) Transform(center r2.Vec) gg.Matrix {
	return ScaleRotationAbout(p.Scale, p.Rotation, center)
}

// Curve selects the easing the animator uses for a transition.
type Curve int

const (
	CurveEaseInOut Curve = iota // selection snaps
	CurveSpring                 // open/close
)

func (c Curve) String() string {
	switch c {
	case CurveEaseInOut:
		return "ease-in-out"
	case CurveSpring:
		return "spring"
	default:
		return "unknown"
	}
}
