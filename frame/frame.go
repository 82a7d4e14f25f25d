// Package frame schedules per-refresh callbacks, the desktop counterpart of
// a browser's animation frame requests.
//
// A Queue is driven by its owner (the window's update loop, or a test) with
// Tick. Callbacks requested before a tick run during it, in request order,
// all receiving the same timestamp. Callbacks requested while a tick is
// running are deferred to the next tick, so a callback that reschedules
// itself runs once per refresh.
package frame

import "time"

// Handle identifies a pending request. The zero Handle is never issued.
type Handle uint64

// Callback receives the time elapsed since the queue's origin.
type Callback func(now time.Duration)

// Scheduler is the part of Queue that renderers depend on.
type Scheduler interface {
	Request(cb Callback) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	cb     Callback
}

// Queue is a single-threaded frame scheduler. It is not safe for concurrent
// use; every call must come from the goroutine that calls Tick.
type Queue struct {
	next    Handle
	pending []request
	running []request
	last    time.Duration
	ticks   uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Request schedules cb for the next tick.
func (q *Queue) Request(cb Callback) Handle {
	q.next++
	q.pending = append(q.pending, request{handle: q.next, cb: cb})
	return q.next
}

// Cancel drops a request that has not run yet, including one later in the
// batch of the tick currently running. Unknown, zero, or already-run handles
// are ignored.
func (q *Queue) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].handle == h {
			q.running[i].cb = nil
			return
		}
	}
}

// Pending returns the number of requests waiting for the next tick.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Ticks returns the number of ticks run so far.
func (q *Queue) Ticks() uint64 {
	return q.ticks
}

// Last returns the timestamp of the most recent tick.
func (q *Queue) Last() time.Duration {
	return q.last
}

// Tick runs every request made before this call and returns how many ran.
// Timestamps must not go backwards; an earlier now is clamped to the
// previous tick's time.
func (q *Queue) Tick(now time.Duration) int {
	if now < q.last {
		now = q.last
	}
	q.last = now
	q.ticks++

	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		cb := q.running[i].cb
		if cb == nil {
			continue
		}
		q.running[i].cb = nil
		cb(now)
		ran++
	}
	q.running = nil
	return ran
}
