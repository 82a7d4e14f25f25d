package frame

import "time"

// Clock converts wall time into the monotonic offsets a Queue expects.
type Clock struct {
	origin time.Time
	now    func() time.Time
}

// NewClock starts a clock at the current time. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{origin: now(), now: now}
}

// Elapsed returns the time since the clock started.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.origin)
}

// Millis converts a frame timestamp to the fractional milliseconds used by
// the animation formulas.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
