package stage

import "sync"

// State is the lifecycle position of a Visual. Transitions only move
// forward: Uninitialized to Running or SingleFrame, and any state to
// Disposed.
type State int

const (
	Uninitialized State = iota
	Running
	SingleFrame
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case SingleFrame:
		return "single-frame"
	case Disposed:
		return "disposed"
	}
	return "unknown"
}

// Lifecycle tracks a Visual's state and runs its teardown at most once.
type Lifecycle struct {
	state State
	once  sync.Once
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Start moves from Uninitialized to s. It reports false if the visual was
// already started or disposed.
func (l *Lifecycle) Start(s State) bool {
	if l.state != Uninitialized || (s != Running && s != SingleFrame) {
		return false
	}
	l.state = s
	return true
}

// Settle moves a running visual to SingleFrame, or back to Running when a
// reactive visual resumes. Disposed and uninitialized visuals are left alone.
func (l *Lifecycle) Settle(s State) bool {
	if l.state != Running && l.state != SingleFrame {
		return false
	}
	if s != Running && s != SingleFrame {
		return false
	}
	l.state = s
	return true
}

// Live reports whether the visual is started and not disposed.
func (l *Lifecycle) Live() bool {
	return l.state == Running || l.state == SingleFrame
}

// Dispose marks the visual disposed and runs teardown the first time only.
func (l *Lifecycle) Dispose(teardown func()) {
	l.once.Do(func() {
		l.state = Disposed
		if teardown != nil {
			teardown()
		}
	})
}
