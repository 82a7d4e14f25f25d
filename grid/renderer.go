package grid

import (
	"time"

	"maxlab/canvas"
	"maxlab/frame"
	"maxlab/motion"
	"maxlab/stage"
)

// Renderer animates the grid on a surface until it is disposed. It reads
// the motion preference once, at mount.
type Renderer struct {
	stage.Lifecycle

	env      stage.Env
	pending  frame.Handle
	resizeID canvas.ListenerID
	frames   int
}

// New returns an unmounted renderer.
func New(env stage.Env) *Renderer {
	return &Renderer{env: env}
}

// Factory adapts New to stage.Factory.
func Factory(env stage.Env) stage.Visual {
	return New(env)
}

// Mount fits the surface to the viewport, starts listening for resizes and
// either draws one still frame or starts the animation loop. Without a
// surface it does nothing.
func (r *Renderer) Mount() {
	if r.State() != stage.Uninitialized {
		return
	}
	if r.env.Surface == nil {
		r.env.Log().Printf("grid: no drawing surface, skipping mount")
		return
	}
	if r.env.Viewport != nil {
		w, h, dpr := r.env.Viewport.Size()
		r.Resize(w, h, dpr)
		r.resizeID = r.env.Viewport.OnResize(r.Resize)
	}

	if motion.Reduced(r.env.Motion) || r.env.Frames == nil {
		r.Start(stage.SingleFrame)
		r.draw(StillFrameMillis)
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
	r.draw(frame.Millis(now))
	r.pending = r.env.Frames.Request(r.tick)
}

// Render draws one frame at now regardless of the loop.
func (r *Renderer) Render(now time.Duration) {
	if !r.Live() {
		return
	}
	r.draw(frame.Millis(now))
}

func (r *Renderer) draw(millis float64) {
	s := r.env.Surface
	Paint(s, Layout(s.Width(), s.Height(), AnimationTime(millis)))
	r.frames++
}

// Resize refits the surface immediately. Reallocating the buffer wipes it,
// so a still frame is drawn again; a running loop repaints on its next tick.
func (r *Renderer) Resize(width, height int, dpr float64) {
	if r.env.Surface == nil || r.State() == stage.Disposed {
		return
	}
	r.env.Surface.Resize(width, height, dpr)
	if r.State() == stage.SingleFrame {
		r.draw(StillFrameMillis)
	}
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int {
	return r.frames
}

// Dispose cancels the pending frame and removes the resize listener.
func (r *Renderer) Dispose() {
	r.Lifecycle.Dispose(func() {
		if r.pending != 0 && r.env.Frames != nil {
			r.env.Frames.Cancel(r.pending)
			r.pending = 0
		}
		if r.resizeID != 0 && r.env.Viewport != nil {
			r.env.Viewport.RemoveResize(r.resizeID)
			r.resizeID = 0
		}
	})
}
