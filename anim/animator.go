// Package anim drives a wheel pose toward its logical target one frame at a
// time.
package anim

import (
	"math"
	"time"

	"github.com/pthm-cable/wheeltab/wheel"
)

// Spring parameters for open/close transitions, in duration-normalized time.
const (
	SpringDamping  = 0.5
	SpringVelocity = 5.0
	springOmega    = 12.0
)

// Animator implements wheel.Animator with frame-stepped interpolation.
// Rotation always travels the short way around.
type Animator struct {
	pose wheel.Pose
	from wheel.Pose
	to   wheel.Pose
	turn float64

	curve    wheel.Curve
	duration time.Duration
	elapsed  time.Duration
	active   bool
	done     func()
}

// New returns an idle animator resting at initial.
func New(initial wheel.Pose) *Animator {
	return &Animator{pose: initial, from: initial, to: initial}
}

// Jump moves to the pose immediately and drops any pending completion.
func (a *Animator) Jump(to wheel.Pose) {
	a.pose, a.from, a.to = to, to, to
	a.turn = 0
	a.active = false
	a.done = nil
}

// Animate starts a transition from the current visual pose. A transition
// already in flight is replaced and its done hook is discarded.
func (a *Animator) Animate(to wheel.Pose, d time.Duration, curve wheel.Curve, done func()) {
	if d <= 0 {
		a.Jump(to)
		if done != nil {
			done()
		}
		return
	}
	a.from = a.pose
	a.to = to
	a.turn = shortest(to.Rotation - a.pose.Rotation)
	a.curve = curve
	a.duration = d
	a.elapsed = 0
	a.active = true
	a.done = done
}

// Update advances the transition by dt. The done hook runs on the frame the
// transition completes.
func (a *Animator) Update(dt time.Duration) {
	if !a.active {
		return
	}
	a.elapsed += dt
	t := a.Progress()
	if t >= 1 {
		a.pose = a.to
		a.active = false
		done := a.done
		a.done = nil
		if done != nil {
			done()
		}
		return
	}
	e := Ease(a.curve, t)
	a.pose = wheel.Pose{
		Rotation: a.from.Rotation + a.turn*e,
		Scale:    a.from.Scale + (a.to.Scale-a.from.Scale)*e,
	}
}

// Pose returns the current visual pose.
func (a *Animator) Pose() wheel.Pose { return a.pose }

// Active reports whether a transition is in flight.
func (a *Animator) Active() bool { return a.active }

// Progress returns the fraction of the current transition elapsed, in [0, 1].
func (a *Animator) Progress() float64 {
	if !a.active || a.duration <= 0 {
		return 1
	}
	return math.Min(1, float64(a.elapsed)/float64(a.duration))
}

// Ease maps linear progress t in [0, 1] through the curve.
func Ease(c wheel.Curve, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if c == wheel.CurveSpring {
		return spring(t)
	}
	return t * t * (3 - 2*t)
}

// spring is an underdamped oscillator from 0 to 1 with initial velocity
// SpringVelocity. It overshoots before settling.
func spring(t float64) float64 {
	zw := SpringDamping * springOmega
	wd := springOmega * math.Sqrt(1-SpringDamping*SpringDamping)
	k := (zw - SpringVelocity) / wd
	return 1 - math.Exp(-zw*t)*(math.Cos(wd*t)+k*math.Sin(wd*t))
}

// shortest wraps an angle difference into (-pi, pi].
func shortest(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
