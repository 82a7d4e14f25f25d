package stage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVisual struct {
	Lifecycle
	name string
}

func (f *fakeVisual) Mount()                   { f.Start(Running) }
func (f *fakeVisual) Render(time.Duration)     {}
func (f *fakeVisual) Resize(int, int, float64) {}
func (f *fakeVisual) Dispose()                 { f.Lifecycle.Dispose(nil) }

func TestVariantsNew(t *testing.T) {
	v := Variants{
		"grid":  func(Env) Visual { return &fakeVisual{name: "grid"} },
		"cloud": func(Env) Visual { return &fakeVisual{name: "cloud"} },
	}
	got, err := v.New("cloud", Env{})
	require.NoError(t, err)
	assert.Equal(t, "cloud", got.(*fakeVisual).name)

	_, err = v.New("webgl", Env{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Contains(t, err.Error(), "webgl")

	assert.Equal(t, []string{"cloud", "grid"}, v.Names())
	assert.Equal(t, "grid", v.Next("cloud"))
	assert.Equal(t, "cloud", v.Next("grid"))
	assert.Equal(t, "cloud", v.Next("missing"))
	assert.Equal(t, "", Variants{}.Next("grid"))
}

func TestLifecycleTransitions(t *testing.T) {
	var l Lifecycle
	assert.Equal(t, Uninitialized, l.State())
	assert.False(t, l.Live())
	assert.False(t, l.Settle(SingleFrame))
	assert.False(t, l.Start(Disposed))

	require.True(t, l.Start(SingleFrame))
	assert.False(t, l.Start(Running))
	assert.True(t, l.Live())
	assert.True(t, l.Settle(Running))
	assert.Equal(t, Running, l.State())

	calls := 0
	l.Dispose(func() { calls++ })
	l.Dispose(func() { calls++ })
	assert.Equal(t, 1, calls)
	assert.Equal(t, Disposed, l.State())
	assert.False(t, l.Settle(Running))
	assert.False(t, l.Start(Running))
}

func TestDisposeBeforeStart(t *testing.T) {
	var l Lifecycle
	l.Dispose(nil)
	assert.Equal(t, Disposed, l.State())
	assert.False(t, l.Start(Running))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "single-frame", SingleFrame.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestEnvLogFallback(t *testing.T) {
	assert.NotNil(t, Env{}.Log())
	l := Discard()
	assert.Same(t, l, Env{Logger: l}.Log())
}
