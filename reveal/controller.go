package reveal

import (
	"log"
	"time"

	"github.com/google/uuid"

	"maxlab/motion"
)

// Target is a page region that starts hidden and is revealed once.
type Target struct {
	ID   uuid.UUID
	Name string
	Rect Rect

	visible    bool
	instant    bool
	revealedAt time.Duration
}

// NewTarget returns a pending target with a fresh identity.
func NewTarget(name string, r Rect) *Target {
	return &Target{ID: uuid.New(), Name: name, Rect: r}
}

// Visible reports whether the target has been revealed.
func (t *Target) Visible() bool { return t.visible }

// RevealedAt returns the clock time of the reveal.
func (t *Target) RevealedAt() time.Duration { return t.revealedAt }

// Instant reports whether the target was shown without a transition.
func (t *Target) Instant() bool { return t.instant }

// reveal marks the target visible. Later calls change nothing.
func (t *Target) reveal(at time.Duration) bool {
	if t.visible {
		return false
	}
	t.visible = true
	t.revealedAt = at
	return true
}

// Controller reveals targets as they scroll into view. Each target is
// observed until its first intersection and then forgotten.
type Controller struct {
	motion motion.Source
	opts   Options
	clock  func() time.Duration
	logger *log.Logger

	watcher  *Watcher
	subs     map[uuid.UUID]Subscription
	revealed int
	disposed bool
}

// NewController returns an unmounted controller. clock supplies the time
// stamped on revealed targets; nil means zero.
func NewController(src motion.Source, opts Options, clock func() time.Duration, logger *log.Logger) *Controller {
	if clock == nil {
		clock = func() time.Duration { return 0 }
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{motion: src, opts: opts, clock: clock, logger: logger}
}

// Mount starts observing targets. When reduced motion is preferred every
// target is revealed at once and no watcher is built.
func (c *Controller) Mount(targets []*Target) {
	if c.disposed || c.watcher != nil {
		return
	}
	if motion.Reduced(c.motion) {
		for _, t := range targets {
			if c.show(t) {
				t.instant = true
			}
		}
		return
	}
	c.watcher = NewWatcher(c.opts)
	c.subs = make(map[uuid.UUID]Subscription, len(targets))
	for _, t := range targets {
		if t.Visible() {
			continue
		}
		c.subs[t.ID] = c.watcher.Observe(t, c.handle)
	}
}

func (c *Controller) handle(e Entry) {
	if !e.Intersecting {
		return
	}
	c.show(e.Target)
	if sub, ok := c.subs[e.Target.ID]; ok {
		sub.Cancel()
		delete(c.subs, e.Target.ID)
	}
}

func (c *Controller) show(t *Target) bool {
	if !t.reveal(c.clock()) {
		return false
	}
	c.revealed++
	return true
}

// Scroll reports the current viewport rectangle in document coordinates.
func (c *Controller) Scroll(view Rect) {
	if c.watcher == nil || c.disposed {
		return
	}
	c.watcher.Update(view)
}

// Watching reports whether a watcher was built.
func (c *Controller) Watching() bool {
	return c.watcher != nil && !c.disposed
}

// Pending returns the number of targets still observed.
func (c *Controller) Pending() int {
	return len(c.subs)
}

// Revealed returns how many targets this controller revealed.
func (c *Controller) Revealed() int {
	return c.revealed
}

// Dispose cancels all observations. It is safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.watcher != nil {
		c.watcher.Disconnect()
	}
	for id := range c.subs {
		delete(c.subs, id)
	}
	c.logger.Printf("reveal: disposed with %d targets revealed", c.revealed)
}
