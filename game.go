package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"maxlab/canvas"
	"maxlab/cloud"
	"maxlab/content"
	"maxlab/frame"
	"maxlab/grid"
	"maxlab/motion"
	"maxlab/page"
	"maxlab/reveal"
	"maxlab/stage"
)

// Game hosts the landing page: the hero visual, the laid-out sections and
// the reveal controller, all driven from Ebitengine's update loop.
type Game struct {
	logger *log.Logger

	clock    *frame.Clock
	frames   *frame.Queue
	viewport *canvas.Viewport
	backend  *imageBackend
	surface  *canvas.Surface
	motion   *motion.Signal

	variants stage.Variants
	heroName string
	hero     stage.Visual

	page   *page.Page
	reveal *reveal.Controller

	// Size reported by Layout, applied on the next Update.
	pendingW, pendingH int
	pendingDPR         float64
	haveSize           bool

	pointerX, pointerY float64
	hoverCard          int
	hoverX, hoverY     float64

	profile       *cpuProfile
	lastStatsLog  time.Duration
	lastUpdateDur time.Duration
}

// gameOptions are the resolved flag values newGame needs.
type gameOptions struct {
	hero      string
	reduced   bool
	particles int
	seed      int64
	logger    *log.Logger
}

// newGame builds the page and mounts the selected hero.
func newGame(opts gameOptions) (*Game, error) {
	g := &Game{
		logger:    opts.logger,
		clock:     frame.NewClock(nil),
		frames:    frame.NewQueue(),
		viewport:  canvas.NewViewport(windowW, windowH, 1),
		backend:   newOffscreenBackend(),
		motion:    motion.NewSignal(opts.reduced),
		heroName:  opts.hero,
		hoverCard: -1,
	}
	g.surface = canvas.NewSurface(g.backend)
	g.variants = stage.Variants{
		"grid": grid.Factory,
		"cloud": cloud.FactoryWith(cloud.Options{
			Count: opts.particles,
			Seed:  opts.seed,
		}),
	}

	g.page = page.New(content.Default(), page.Metrics{CharWidth: faceCharWidth, LineHeight: lineHeight})
	g.page.Resize(windowW, windowH)
	g.reveal = reveal.NewController(g.motion, reveal.DefaultOptions(), g.clock.Elapsed, g.logger)
	g.reveal.Mount(g.page.Targets())

	if err := g.mountHero(opts.hero); err != nil {
		return nil, err
	}
	g.logger.Printf("mounted %s hero (reduced motion: %v, watching sections: %v)",
		g.heroName, g.motion.ReducedMotion(), g.reveal.Watching())
	return g, nil
}

func (g *Game) env() stage.Env {
	return stage.Env{
		Surface:  g.surface,
		Viewport: g.viewport,
		Frames:   g.frames,
		Motion:   g.motion,
		Logger:   g.logger,
	}
}

// mountHero disposes the current hero, if any, and mounts the named one.
func (g *Game) mountHero(name string) error {
	next, err := g.variants.New(name, g.env())
	if err != nil {
		return err
	}
	if g.hero != nil {
		g.hero.Dispose()
	}
	g.hero = next
	g.heroName = name
	g.hero.Mount()
	return nil
}

// Update applies pending resizes, reads input, runs due frame callbacks and
// feeds the scroll position to the reveal controller.
func (g *Game) Update() error {
	start := time.Now()
	now := g.clock.Elapsed()

	if g.haveSize {
		g.haveSize = false
		g.viewport.Resize(g.pendingW, g.pendingH, g.pendingDPR)
		g.page.Resize(float64(g.pendingW), float64(g.pendingH))
	}

	g.handleInput()
	g.handleDebugControls()

	g.frames.Tick(now)
	g.reveal.Scroll(g.page.View())

	if g.profile.Due(now) {
		g.profile.Stop(now)
		g.profile = nil
	}
	g.lastUpdateDur = time.Since(start)
	g.logStats(now)
	return nil
}

// logStats periodically reports loop health when debugging.
func (g *Game) logStats(now time.Duration) {
	if !*debugFlag || now-g.lastStatsLog < debugStatsInterval {
		return
	}
	g.lastStatsLog = now
	bw, bh := g.surface.BufferSize()
	g.logger.Printf("hero %s %s, buffer %dx%d, %d frames pending, %d sections pending, TPS %.1f",
		g.heroName, g.hero.State(), bw, bh, g.frames.Pending(), g.reveal.Pending(), ebiten.ActualTPS())
}

// Close releases the hero and reveal controller and stops profiling.
func (g *Game) Close() {
	if g.hero != nil {
		g.hero.Dispose()
	}
	g.reveal.Dispose()
	g.profile.Stop(g.clock.Elapsed())
}
