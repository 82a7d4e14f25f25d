// Package reveal fades page sections in the first time they scroll into
// view.
package reveal

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Margin grows (positive) or shrinks (negative) the root rectangle before
// intersections are computed, like a CSS margin.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Options configures a Watcher.
type Options struct {
	// Threshold is the visible fraction of a target at which it counts as
	// intersecting.
	Threshold  float64
	RootMargin Margin
}

// DefaultOptions reveal a section once 8% of it is visible, with the
// bottom trigger line pulled 40px up from the viewport edge.
func DefaultOptions() Options {
	return Options{Threshold: 0.08, RootMargin: Margin{Bottom: -40}}
}

// Entry reports a change in a target's intersection with the root.
type Entry struct {
	Target       *Target
	Ratio        float64
	Intersecting bool
}

// Subscription is a live observation of one target.
type Subscription struct {
	w  *Watcher
	id uuid.UUID
}

// Cancel stops observing the target. It is safe to call more than once.
func (s Subscription) Cancel() {
	if s.w != nil {
		s.w.Unobserve(s.id)
	}
}

type observation struct {
	target *Target
	fn     func(Entry)
	seen   bool
	last   bool
	order  int
}

// Watcher computes how much of each observed target is inside the root
// rectangle and calls back when a target starts or stops intersecting.
// The first Update after Observe always reports the target once.
type Watcher struct {
	opts  Options
	obs   map[uuid.UUID]*observation
	order int
}

// NewWatcher returns a watcher with no observations.
func NewWatcher(opts Options) *Watcher {
	return &Watcher{opts: opts, obs: make(map[uuid.UUID]*observation)}
}

// Options returns the watcher's configuration.
func (w *Watcher) Options() Options {
	return w.opts
}

// Observe starts watching t. Observing a target twice replaces its callback.
func (w *Watcher) Observe(t *Target, fn func(Entry)) Subscription {
	w.order++
	w.obs[t.ID] = &observation{target: t, fn: fn, order: w.order}
	return Subscription{w: w, id: t.ID}
}

// Unobserve stops watching the target with the given id.
func (w *Watcher) Unobserve(id uuid.UUID) {
	delete(w.obs, id)
}

// Disconnect drops every observation.
func (w *Watcher) Disconnect() {
	for id := range w.obs {
		delete(w.obs, id)
	}
}

// Observed returns the number of targets being watched.
func (w *Watcher) Observed() int {
	return len(w.obs)
}

// Update measures every observed target against root and delivers entries
// in observation order. Callbacks may unobserve targets, including ones
// not yet visited in this update.
func (w *Watcher) Update(root Rect) {
	zone := w.zone(root)
	list := make([]*observation, 0, len(w.obs))
	for _, o := range w.obs {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].order < list[j].order })

	for _, o := range list {
		if cur, ok := w.obs[o.target.ID]; !ok || cur != o {
			continue
		}
		ratio := Ratio(o.target.Rect, zone)
		hit := w.intersecting(o.target.Rect, zone, ratio)
		if o.seen && hit == o.last {
			continue
		}
		o.seen, o.last = true, hit
		o.fn(Entry{Target: o.target, Ratio: ratio, Intersecting: hit})
	}
}

func (w *Watcher) zone(root Rect) Rect {
	m := w.opts.RootMargin
	return Rect{
		X: root.X - m.Left,
		Y: root.Y - m.Top,
		W: math.Max(0, root.W+m.Left+m.Right),
		H: math.Max(0, root.H+m.Top+m.Bottom),
	}
}

func (w *Watcher) intersecting(target, zone Rect, ratio float64) bool {
	if target.H <= 0 || target.W <= 0 {
		return ratio > 0
	}
	return ratio > 0 && ratio >= w.opts.Threshold
}

// Ratio returns the fraction of target's area that lies inside zone. A
// target with no area counts as fully visible when its top-left corner is
// inside the zone.
func Ratio(target, zone Rect) float64 {
	if target.W <= 0 || target.H <= 0 {
		if target.X >= zone.X && target.X <= zone.Right() && target.Y >= zone.Y && target.Y <= zone.Bottom() {
			return 1
		}
		return 0
	}
	ix := math.Min(target.Right(), zone.Right()) - math.Max(target.X, zone.X)
	iy := math.Min(target.Bottom(), zone.Bottom()) - math.Max(target.Y, zone.Y)
	if ix <= 0 || iy <= 0 {
		return 0
	}
	return (ix * iy) / (target.W * target.H)
}
