package cloud

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Autorotation rates in radians per second.
	spinRateY = 0.05
	spinRateX = 0.02

	// tiltScale maps a normalized pointer position to a target tilt.
	tiltScale = 0.3
	// easeStep is the fraction of the remaining tilt covered per 60 Hz frame.
	easeStep = 0.05
	refHz    = 60.0
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
)

// Rotation is the orientation of the whole cloud: a steady spin plus a
// pointer-driven tilt that eases toward its target without overshoot.
type Rotation struct {
	SpinX, SpinY     float64
	TiltX, TiltY     float64
	TargetX, TargetY float64
}

// Aim sets the tilt target from a pointer in normalized device
// coordinates. Moving the pointer right turns the cloud about Y; moving it
// up turns it about X.
func (r *Rotation) Aim(nx, ny float64) {
	r.TargetY = nx * tiltScale
	r.TargetX = -ny * tiltScale
}

// Step advances the spin by dt and eases the tilt toward its target. The
// easing is the per-frame proportional step rescaled to dt, so the motion
// looks the same at any frame rate.
func (r *Rotation) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	r.SpinY += spinRateY * sec
	r.SpinX += spinRateX * sec

	k := 1 - math.Pow(1-easeStep, sec*refHz)
	r.TiltX += (r.TargetX - r.TiltX) * k
	r.TiltY += (r.TargetY - r.TiltY) * k
}

// Angles returns the combined rotation about X and Y.
func (r Rotation) Angles() (x, y float64) {
	return r.SpinX + r.TiltX, r.SpinY + r.TiltY
}

// Orientation is a precomputed rigid-body transform.
type Orientation struct {
	rx, ry r3.Rotation
}

// Orientation builds the transform for the current angles. Points are
// turned about Y first, then about X.
func (r Rotation) Orientation() Orientation {
	ax, ay := r.Angles()
	return Orientation{
		rx: r3.NewRotation(ax, axisX),
		ry: r3.NewRotation(ay, axisY),
	}
}

// Apply rotates p.
func (o Orientation) Apply(p r3.Vec) r3.Vec {
	return o.rx.Rotate(o.ry.Rotate(p))
}
