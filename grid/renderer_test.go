package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maxlab/canvas"
	"maxlab/frame"
	"maxlab/motion"
	"maxlab/stage"
)

type harness struct {
	rec      *canvas.Recorder
	surface  *canvas.Surface
	viewport *canvas.Viewport
	frames   *frame.Queue
}

func newHarness() *harness {
	rec := &canvas.Recorder{}
	return &harness{
		rec:      rec,
		surface:  canvas.NewSurface(rec),
		viewport: canvas.NewViewport(1280, 720, 2),
		frames:   frame.NewQueue(),
	}
}

func (h *harness) env(reduced bool) stage.Env {
	return stage.Env{
		Surface:  h.surface,
		Viewport: h.viewport,
		Frames:   h.frames,
		Motion:   motion.Static(reduced),
		Logger:   stage.Discard(),
	}
}

// advance ticks the queue every 16ms from `from` up to and including `to`.
func (h *harness) advance(from, to time.Duration) {
	for now := from; now <= to; now += 16 * time.Millisecond {
		h.frames.Tick(now)
	}
}

func TestMountFitsSurfaceToViewport(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()
	defer r.Dispose()

	bw, bh := h.surface.BufferSize()
	assert.Equal(t, 2560, bw)
	assert.Equal(t, 1440, bh)
	resize, _ := h.viewport.Listeners()
	assert.Equal(t, 1, resize)
	assert.Equal(t, stage.Running, r.State())
	assert.Equal(t, 1, h.frames.Pending())
}

func TestResizeEventRecomputesBuffer(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()
	defer r.Dispose()

	for _, sz := range []struct {
		w, h int
		dpr  float64
	}{{800, 600, 1}, {390, 844, 3}, {1920, 1080, 1.5}} {
		h.viewport.Resize(sz.w, sz.h, sz.dpr)
		bw, bh := h.surface.BufferSize()
		assert.Equal(t, int(float64(sz.w)*sz.dpr), bw)
		assert.Equal(t, int(float64(sz.h)*sz.dpr), bh)
		assert.Equal(t, float64(sz.w), h.surface.Width())
	}
}

func TestReducedMotionDrawsExactlyOneFrame(t *testing.T) {
	h := newHarness()
	r := New(h.env(true))
	r.Mount()

	assert.Equal(t, stage.SingleFrame, r.State())
	assert.Equal(t, 1, h.rec.Frames())
	assert.Zero(t, h.frames.Pending())

	h.advance(0, time.Second)
	assert.Equal(t, 1, h.rec.Frames())
	assert.Equal(t, 1, r.Frames())

	r.Dispose()
	assert.Equal(t, stage.Disposed, r.State())
}

func TestStillFrameUsesNominalTime(t *testing.T) {
	h := newHarness()
	r := New(h.env(true))
	r.Mount()
	defer r.Dispose()

	want := &canvas.Recorder{}
	s := canvas.NewSurface(want)
	s.Resize(1280, 720, 2)
	want.Reset()
	Paint(s, Layout(1280, 720, AnimationTime(StillFrameMillis)))

	got := h.rec.Calls[len(h.rec.Calls)-len(want.Calls):]
	assert.Equal(t, want.Calls, got)
}

func TestAnimatedFramesMove(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()
	defer r.Dispose()

	h.frames.Tick(1000 * time.Millisecond)
	first := h.rec.Of(canvas.OpCircle)
	h.rec.Reset()
	h.frames.Tick(3000 * time.Millisecond)
	second := h.rec.Of(canvas.OpCircle)

	require.Equal(t, len(first), len(second))
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, r.Frames())
}

func TestDisposeStopsLoopAndRemovesListener(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()

	h.advance(0, 1000*time.Millisecond)
	drawn := h.rec.Frames()
	require.Greater(t, drawn, 60)

	r.Dispose()
	assert.Zero(t, h.frames.Pending())
	resize, _ := h.viewport.Listeners()
	assert.Zero(t, resize)

	h.advance(1016*time.Millisecond, 5*time.Second)
	h.viewport.Resize(10, 10, 1)
	r.Render(6 * time.Second)
	assert.Equal(t, drawn, h.rec.Frames())
	assert.Zero(t, h.frames.Pending())
}

func TestDisposeIsIdempotent(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()
	r.Dispose()
	r.Dispose()
	assert.Equal(t, stage.Disposed, r.State())
	assert.Zero(t, h.frames.Pending())

	// A disposed renderer cannot be remounted.
	r.Mount()
	assert.Zero(t, h.frames.Pending())
}

func TestDisposeFromInsideFrame(t *testing.T) {
	h := newHarness()
	r := New(h.env(false))
	r.Mount()

	h.frames.Request(func(time.Duration) { r.Dispose() })
	h.frames.Tick(16 * time.Millisecond)
	h.advance(32*time.Millisecond, 500*time.Millisecond)

	assert.Equal(t, 1, h.rec.Frames())
	assert.Zero(t, h.frames.Pending())
}

func TestMissingSurfaceIsNoop(t *testing.T) {
	h := newHarness()
	env := h.env(false)
	env.Surface = nil
	r := New(env)
	r.Mount()

	assert.Equal(t, stage.Uninitialized, r.State())
	assert.Zero(t, h.frames.Pending())
	resize, _ := h.viewport.Listeners()
	assert.Zero(t, resize)

	r.Render(time.Second)
	r.Resize(10, 10, 1)
	r.Dispose()
	assert.Equal(t, stage.Disposed, r.State())
}

func TestFactoryBuildsRenderer(t *testing.T) {
	v := stage.Variants{"grid": Factory}
	vis, err := v.New("grid", newHarness().env(true))
	require.NoError(t, err)
	_, ok := vis.(*Renderer)
	assert.True(t, ok)
}
