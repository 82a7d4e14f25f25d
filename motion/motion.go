// Package motion exposes the user's reduced-motion preference to renderers.
//
// Renderers that only care about the value at mount use the static read
// ([Source.ReducedMotion]); renderers that follow a mid-session change use
// [Signal.Subscribe] and release the subscription when they are disposed.
package motion

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Environment variables consulted by FromEnvironment, in order.
const (
	EnvReducedMotion = "MAXLAB_REDUCED_MOTION"
	EnvGTKAnimations = "GTK_ENABLE_ANIMATIONS"
)

// Source is the static read of the preference.
type Source interface {
	ReducedMotion() bool
}

// Reduced reports the preference of src, treating a nil source as motion allowed.
func Reduced(src Source) bool {
	if src == nil {
		return false
	}
	return src.ReducedMotion()
}

// Static is a fixed preference.
type Static bool

// ReducedMotion implements Source.
func (s Static) ReducedMotion() bool { return bool(s) }

// Signal is a process-wide preference that can change while the program runs.
type Signal struct {
	mu      sync.Mutex
	reduced bool
	nextID  int
	subs    map[int]func(bool)
}

// NewSignal returns a signal holding the initial value.
func NewSignal(reduced bool) *Signal {
	return &Signal{reduced: reduced, subs: make(map[int]func(bool))}
}

// ReducedMotion implements Source.
func (s *Signal) ReducedMotion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reduced
}

// Set updates the preference and notifies subscribers if the value changed.
// Callbacks run on the calling goroutine after the lock is released.
func (s *Signal) Set(reduced bool) {
	s.mu.Lock()
	if s.reduced == reduced {
		s.mu.Unlock()
		return
	}
	s.reduced = reduced
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
}

// Toggle flips the preference and returns the new value.
func (s *Signal) Toggle() bool {
	next := !s.ReducedMotion()
	s.Set(next)
	return next
}

// Subscribe registers fn for change notifications. The returned cancel
// function is safe to call more than once.
func (s *Signal) Subscribe(fn func(reduced bool)) (cancel func()) {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(bool))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// FromEnvironment reads the platform preference through lookup (usually
// os.LookupEnv). Anything missing or unparseable means motion is allowed.
func FromEnvironment(lookup func(string) (string, bool)) bool {
	if lookup == nil {
		return false
	}
	if v, ok := lookup(EnvReducedMotion); ok {
		if reduced, ok := parseBool(v); ok {
			return reduced
		}
	}
	if v, ok := lookup(EnvGTKAnimations); ok {
		if animations, ok := parseBool(v); ok {
			return !animations
		}
	}
	return false
}

func parseBool(v string) (bool, bool) {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "reduce", "reduced", "yes", "on":
		return true, true
	case "no-preference", "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
