package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	zone := Rect{0, 0, 100, 100}
	tests := []struct {
		name   string
		target Rect
		want   float64
	}{
		{"inside", Rect{10, 10, 20, 20}, 1},
		{"half below", Rect{0, 50, 100, 100}, 0.5},
		{"outside", Rect{0, 200, 100, 10}, 0},
		{"touching edge", Rect{0, 100, 100, 10}, 0},
		{"zero height inside", Rect{10, 40, 50, 0}, 1},
		{"zero height outside", Rect{10, 140, 50, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.target, zone), 1e-12)
		})
	}
}

func TestWatcherReportsInitialStateAndChanges(t *testing.T) {
	w := NewWatcher(DefaultOptions())
	tgt := NewTarget("projects", Rect{0, 1000, 800, 500})
	var got []Entry
	w.Observe(tgt, func(e Entry) { got = append(got, e) })

	w.Update(Rect{0, 0, 800, 600})
	require.Len(t, got, 1)
	assert.False(t, got[0].Intersecting)

	// Still outside: no new entry.
	w.Update(Rect{0, 100, 800, 600})
	assert.Len(t, got, 1)

	// 60px visible of 500 is 12%, but the 40px bottom margin hides 40 of it.
	w.Update(Rect{0, 460, 800, 600})
	assert.Len(t, got, 1)

	w.Update(Rect{0, 500, 800, 600})
	require.Len(t, got, 2)
	assert.True(t, got[1].Intersecting)
	assert.InDelta(t, 0.12, got[1].Ratio, 1e-12)

	w.Update(Rect{0, 0, 800, 600})
	require.Len(t, got, 3)
	assert.False(t, got[2].Intersecting)
}

func TestWatcherThresholdBoundary(t *testing.T) {
	w := NewWatcher(Options{Threshold: 0.08})
	tgt := NewTarget("about", Rect{0, 100, 100, 100})
	var last Entry
	w.Observe(tgt, func(e Entry) { last = e })

	w.Update(Rect{0, 0, 100, 107})
	assert.False(t, last.Intersecting)
	w.Update(Rect{0, 0, 100, 108})
	assert.True(t, last.Intersecting)
}

func TestWatcherUnobserveDuringUpdate(t *testing.T) {
	w := NewWatcher(DefaultOptions())
	a := NewTarget("a", Rect{0, 0, 10, 10})
	b := NewTarget("b", Rect{0, 20, 10, 10})
	calledB := false
	w.Observe(a, func(Entry) { w.Unobserve(b.ID) })
	w.Observe(b, func(Entry) { calledB = true })

	w.Update(Rect{0, 0, 100, 100})
	assert.False(t, calledB)
	assert.Equal(t, 1, w.Observed())
}

func TestWatcherDisconnect(t *testing.T) {
	w := NewWatcher(DefaultOptions())
	calls := 0
	sub := w.Observe(NewTarget("a", Rect{0, 0, 10, 10}), func(Entry) { calls++ })
	w.Observe(NewTarget("b", Rect{0, 0, 10, 10}), func(Entry) { calls++ })
	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 1, w.Observed())

	w.Disconnect()
	w.Update(Rect{0, 0, 100, 100})
	assert.Zero(t, calls)
	assert.Zero(t, w.Observed())
	Subscription{}.Cancel()
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 0.08, o.Threshold)
	assert.Equal(t, Margin{Bottom: -40}, o.RootMargin)
}
