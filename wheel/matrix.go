package wheel

import (
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

// ScaleRotationAbout returns a uniform scale followed by a rotation, both
// around p.
func ScaleRotationAbout(scale, angle float64, p r2.Vec) gg.Matrix {
	return gg.Translate(p.X, p.Y).
		Multiply(gg.Rotate(angle)).
		Multiply(gg.Scale(scale, scale)).
		Multiply(gg.Translate(-p.X, -p.Y))
}

// RotationAbout returns a rotation by angle radians around p.
func RotationAbout(angle float64, p r2.Vec) gg.Matrix {
	return ScaleRotationAbout(1, angle, p)
}

// Apply maps p through m.
func Apply(m gg.Matrix, p r2.Vec) r2.Vec {
	q := m.TransformPoint(gg.Pt(p.X, p.Y))
	return r2.Vec{X: q.X, Y: q.Y}
}

// Angle returns the rotation component of m in (-pi, pi].
func Angle(m gg.Matrix) float64 {
	return math.Atan2(m.D, m.A)
}

// Invert returns the inverse of m. ok is false when m is singular, as for a
// pose of scale 0.
func Invert(m gg.Matrix) (inv gg.Matrix, ok bool) {
	if math.Abs(m.A*m.E-m.B*m.D) < 1e-10 {
		return gg.Identity(), false
	}
	return m.Invert(), true
}
