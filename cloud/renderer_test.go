package cloud

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
		viewport: canvas.NewViewport(800, 600, 1),
		frames:   frame.NewQueue(),
	}
}

func (h *harness) env(src motion.Source) stage.Env {
	return stage.Env{
		Surface:  h.surface,
		Viewport: h.viewport,
		Frames:   h.frames,
		Motion:   src,
		Logger:   stage.Discard(),
	}
}

var small = Options{Count: 300, Radius: 5, Seed: 11}

func TestMountGeneratesConfiguredCloud(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(false)), small)
	r.Mount()
	defer r.Dispose()

	require.Len(t, r.Particles(), 300)
	assert.Equal(t, stage.Running, r.State())
	assert.Equal(t, 1, h.frames.Pending())
	resize, pointer := h.viewport.Listeners()
	assert.Equal(t, 1, resize)
	assert.Equal(t, 1, pointer)
}

func TestDefaultsUseReferenceCount(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(true)), Options{Seed: 1})
	r.Mount()
	defer r.Dispose()
	assert.Len(t, r.Particles(), DefaultCount)
}

func TestReducedMotionRendersStaticCloudOnce(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(true)), small)
	r.Mount()
	defer r.Dispose()

	assert.Equal(t, stage.SingleFrame, r.State())
	assert.Equal(t, 1, h.rec.Frames())
	assert.Positive(t, h.rec.Count(canvas.OpCircle))
	assert.Zero(t, h.frames.Pending())

	for i := 1; i <= 30; i++ {
		h.frames.Tick(time.Duration(i) * 16 * time.Millisecond)
	}
	assert.Equal(t, 1, h.rec.Frames())
	assert.Equal(t, Rotation{}, r.Rotation())
}

func TestFramesRotateCloud(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(false)), small)
	r.Mount()
	defer r.Dispose()

	h.frames.Tick(0)
	first := h.rec.Of(canvas.OpCircle)
	h.rec.Reset()
	h.frames.Tick(2 * time.Second)
	second := h.rec.Of(canvas.OpCircle)

	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.InDelta(t, spinRateY*2, r.Rotation().SpinY, 1e-9)
}

func TestPointerSteersTilt(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(false)), small)
	r.Mount()
	defer r.Dispose()

	h.viewport.MovePointer(800, 300)
	assert.InDelta(t, tiltScale, r.Rotation().TargetY, 1e-9)

	for i := 0; i <= 300; i++ {
		h.frames.Tick(time.Duration(i) * time.Second / 60)
	}
	assert.InDelta(t, tiltScale, r.Rotation().TiltY, 1e-3)
	assert.LessOrEqual(t, r.Rotation().TiltY, tiltScale)
}

func TestReactiveMotionFreezesAndResumes(t *testing.T) {
	h := newHarness()
	sig := motion.NewSignal(false)
	r := New(h.env(sig), small)
	r.Mount()

	h.frames.Tick(0)
	h.frames.Tick(time.Second)
	require.Equal(t, 2, h.rec.Frames())

	sig.Set(true)
	assert.Equal(t, stage.SingleFrame, r.State())
	assert.Zero(t, h.frames.Pending())
	assert.Equal(t, 3, h.rec.Frames())
	frozen := r.Rotation()

	h.frames.Tick(2 * time.Second)
	assert.Equal(t, frozen, r.Rotation())

	sig.Set(false)
	assert.Equal(t, stage.Running, r.State())
	h.frames.Tick(10 * time.Second)
	// Resuming does not jump by the time spent frozen.
	assert.Equal(t, frozen.SpinY, r.Rotation().SpinY)
	h.frames.Tick(11 * time.Second)
	assert.InDelta(t, frozen.SpinY+spinRateY, r.Rotation().SpinY, 1e-9)

	r.Dispose()
	assert.Zero(t, sig.Subscribers())
	sig.Set(true)
	sig.Set(false)
	assert.Zero(t, h.frames.Pending())
}

func TestDisposeIsTerminal(t *testing.T) {
	h := newHarness()
	sig := motion.NewSignal(false)
	r := New(h.env(sig), small)
	r.Mount()
	for i := 0; i < 10; i++ {
		h.frames.Tick(time.Duration(i) * 16 * time.Millisecond)
	}
	drawn := h.rec.Frames()

	r.Dispose()
	r.Dispose()
	assert.Equal(t, stage.Disposed, r.State())
	assert.Zero(t, h.frames.Pending())
	resize, pointer := h.viewport.Listeners()
	assert.Zero(t, resize)
	assert.Zero(t, pointer)
	assert.Zero(t, sig.Subscribers())

	for i := 10; i < 100; i++ {
		h.frames.Tick(time.Duration(i) * 16 * time.Millisecond)
	}
	h.viewport.Resize(100, 100, 2)
	r.Render(5 * time.Second)
	assert.Equal(t, drawn, h.rec.Frames())
}

func TestResizeKeepsBufferInSync(t *testing.T) {
	h := newHarness()
	r := New(h.env(motion.Static(true)), small)
	r.Mount()
	defer r.Dispose()

	h.viewport.Resize(1024, 768, 2)
	bw, bh := h.surface.BufferSize()
	assert.Equal(t, 2048, bw)
	assert.Equal(t, 1536, bh)
	// The still cloud is repainted onto the fresh buffer.
	assert.Equal(t, 2, h.rec.Frames())
}

func TestMissingSurfaceIsNoop(t *testing.T) {
	h := newHarness()
	env := h.env(motion.Static(false))
	env.Surface = nil
	r := New(env, small)
	r.Mount()

	assert.Equal(t, stage.Uninitialized, r.State())
	assert.Empty(t, r.Particles())
	assert.Zero(t, h.frames.Pending())
	r.Dispose()
	assert.Equal(t, stage.Disposed, r.State())
}

func TestProjectCentresOrigin(t *testing.T) {
	ps := []Particle{{Color: DefaultPalette[0].Color}}
	dots := Project(ps, Rotation{}.Orientation(), 800, 600, 5)
	require.Len(t, dots, 1)
	assert.InDelta(t, 400, dots[0].X, 1e-9)
	assert.InDelta(t, 300, dots[0].Y, 1e-9)
	assert.InDelta(t, cameraZ, dots[0].Depth, 1e-9)
	assert.Nil(t, Project(ps, Rotation{}.Orientation(), 0, 600, 5))
}
