// Package stage defines the decorative landing visual as one capability
// with interchangeable variants, and the environment those variants are
// mounted into.
package stage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"maxlab/canvas"
	"maxlab/frame"
	"maxlab/motion"
)

// ErrUnknownVariant is returned when a variant name is not registered.
var ErrUnknownVariant = errors.New("unknown hero variant")

// Visual is an animated landing visual.
type Visual interface {
	// Mount acquires resources and starts drawing.
	Mount()
	// Render draws one frame at the given time since the scheduler origin.
	Render(now time.Duration)
	// Resize refits the drawing surface.
	Resize(width, height int, dpr float64)
	// Dispose releases everything Mount acquired. Safe to call repeatedly.
	Dispose()
	State() State
}

// Env is everything a Visual needs from its host.
type Env struct {
	Surface  *canvas.Surface
	Viewport *canvas.Viewport
	Frames   frame.Scheduler
	Motion   motion.Source
	Logger   *log.Logger
}

// Log returns the env logger, falling back to the standard logger.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// Factory builds a Visual for an environment.
type Factory func(env Env) Visual

// Variants maps variant names to factories.
type Variants map[string]Factory

// New builds the named variant.
func (v Variants) New(name string, env Env) (Visual, error) {
	f, ok := v[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return f(env), nil
}

// Next returns the variant name after current in sorted order, wrapping.
func (v Variants) Next(current string) string {
	names := v.Names()
	if len(names) == 0 {
		return ""
	}
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Names returns the registered variant names in sorted order.
func (v Variants) Names() []string {
	names := make([]string, 0, len(v))
	for n := range v {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
