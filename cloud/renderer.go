package cloud

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"maxlab/canvas"
	"maxlab/frame"
	"maxlab/motion"
	"maxlab/stage"
)

const (
	cameraZ   = 8.0
	fovDeg    = 75.0
	nearPlane = 0.1
	pointSize = 0.012
	minDot    = 0.5
	// farFade is how far the most distant points blend into the background.
	farFade = 0.55
)

// background is the page colour far points fade toward.
var background = canvas.Hex("#0b0d10")

// Options configures a cloud renderer.
type Options struct {
	Count   int
	Radius  float64
	Seed    int64
	Palette []Swatch
}

func (o Options) withDefaults() Options {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	return o
}

// reactive is implemented by motion sources that report changes.
type reactive interface {
	Subscribe(fn func(reduced bool)) (cancel func())
}

// Renderer draws the point cloud. Unlike the grid it follows the motion
// preference live: turning reduced motion on freezes the cloud in place and
// turning it off resumes the spin.
type Renderer struct {
	stage.Lifecycle

	env  stage.Env
	opts Options

	particles []Particle
	rot       Rotation
	last      time.Duration
	hasLast   bool

	pending     frame.Handle
	resizeID    canvas.ListenerID
	pointerID   canvas.ListenerID
	unsubscribe func()
	frames      int
}

// New returns an unmounted renderer.
func New(env stage.Env, opts Options) *Renderer {
	return &Renderer{env: env, opts: opts.withDefaults()}
}

// Factory adapts New with default options to stage.Factory.
func Factory(env stage.Env) stage.Visual {
	return New(env, Options{})
}

// FactoryWith returns a stage.Factory using opts.
func FactoryWith(opts Options) stage.Factory {
	return func(env stage.Env) stage.Visual {
		return New(env, opts)
	}
}

// Mount generates the particles and starts drawing. Without a surface it
// does nothing.
func (r *Renderer) Mount() {
	if r.State() != stage.Uninitialized {
		return
	}
	if r.env.Surface == nil {
		r.env.Log().Printf("cloud: no drawing surface, skipping mount")
		return
	}
	rng := rand.New(rand.NewSource(r.opts.Seed))
	r.particles = Generate(rng, r.opts.Count, r.opts.Radius, r.opts.Palette)

	if vp := r.env.Viewport; vp != nil {
		w, h, dpr := vp.Size()
		r.env.Surface.Resize(w, h, dpr)
		r.resizeID = vp.OnResize(r.Resize)
		r.pointerID = vp.OnPointer(func(float64, float64) {
			r.rot.Aim(vp.NormalizedPointer())
		})
		if _, _, ok := vp.Pointer(); ok {
			r.rot.Aim(vp.NormalizedPointer())
		}
	}
	if src, ok := r.env.Motion.(reactive); ok {
		r.unsubscribe = src.Subscribe(r.motionChanged)
	}

	if motion.Reduced(r.env.Motion) || r.env.Frames == nil {
		r.Start(stage.SingleFrame)
		r.paint()
		return
	}
	r.Start(stage.Running)
	r.pending = r.env.Frames.Request(r.tick)
}

func (r *Renderer) tick(now time.Duration) {
	r.pending = 0
	if r.State() != stage.Running {
		return
	}
	r.Render(now)
	r.pending = r.env.Frames.Request(r.tick)
}

// Render advances the rotation to now and draws. A still cloud is redrawn
// without moving.
func (r *Renderer) Render(now time.Duration) {
	if !r.Live() {
		return
	}
	if r.State() == stage.Running {
		if r.hasLast && now > r.last {
			r.rot.Step(now - r.last)
		}
		r.last, r.hasLast = now, true
	}
	r.paint()
}

func (r *Renderer) motionChanged(reduced bool) {
	switch {
	case reduced && r.State() == stage.Running:
		if r.pending != 0 {
			r.env.Frames.Cancel(r.pending)
			r.pending = 0
		}
		r.Settle(stage.SingleFrame)
		r.paint()
	case !reduced && r.State() == stage.SingleFrame && r.env.Frames != nil:
		r.Settle(stage.Running)
		r.hasLast = false
		r.pending = r.env.Frames.Request(r.tick)
	}
}

// Resize refits the surface and repaints a still cloud.
func (r *Renderer) Resize(width, height int, dpr float64) {
	if r.env.Surface == nil || r.State() == stage.Disposed {
		return
	}
	r.env.Surface.Resize(width, height, dpr)
	if r.State() == stage.SingleFrame {
		r.paint()
	}
}

// Particles returns the generated cloud.
func (r *Renderer) Particles() []Particle {
	return r.particles
}

// Rotation returns the current orientation state.
func (r *Renderer) Rotation() Rotation {
	return r.rot
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int {
	return r.frames
}

// Dispose cancels the pending frame and drops every listener and
// subscription taken at mount.
func (r *Renderer) Dispose() {
	r.Lifecycle.Dispose(func() {
		if r.pending != 0 && r.env.Frames != nil {
			r.env.Frames.Cancel(r.pending)
			r.pending = 0
		}
		if vp := r.env.Viewport; vp != nil {
			vp.RemoveResize(r.resizeID)
			vp.RemovePointer(r.pointerID)
		}
		if r.unsubscribe != nil {
			r.unsubscribe()
			r.unsubscribe = nil
		}
	})
}

// Dot is a projected particle in surface coordinates.
type Dot struct {
	X, Y, R float64
	Depth   float64
	Color   colorful.Color
	Alpha   float64
}

// Project rotates every particle by o and projects it onto a w×h surface
// with a perspective camera on the +Z axis looking at the origin. Points
// behind the near plane are dropped.
func Project(particles []Particle, o Orientation, w, h, radius float64) []Dot {
	if w <= 0 || h <= 0 {
		return nil
	}
	focal := (h / 2) / math.Tan(fovDeg*math.Pi/360)
	cx, cy := w/2, h/2
	dots := make([]Dot, 0, len(particles))
	for _, p := range particles {
		q := o.Apply(p.Pos)
		depth := cameraZ - q.Z
		if depth <= nearPlane {
			continue
		}
		scale := focal / depth
		// 0 at the nearest possible point, 1 at the farthest.
		far := (depth - (cameraZ - radius)) / (2 * radius)
		far = math.Max(0, math.Min(1, far))
		dots = append(dots, Dot{
			X:     cx + q.X*scale,
			Y:     cy - q.Y*scale,
			R:     math.Max(minDot, pointSize*scale),
			Depth: depth,
			Color: canvas.Fade(p.Color, background, far*farFade),
			Alpha: 0.9 - 0.5*far,
		})
	}
	return dots
}

func (r *Renderer) paint() {
	s := r.env.Surface
	s.Clear()
	for _, d := range Project(r.particles, r.rot.Orientation(), s.Width(), s.Height(), r.opts.Radius) {
		s.FillCircle(d.X, d.Y, d.R, canvas.WithAlpha(d.Color, d.Alpha))
	}
	r.frames++
}
