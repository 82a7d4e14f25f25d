package main

import (
	"time"

	"maxlab/canvas"
)

// Window, scrolling and palette constants for the landing page. Renderer
// tuning lives with each renderer; these values only shape the host window.
const (
	windowW, windowH   = 1280, 720
	windowTitle        = "Max's Lab"
	defaultHero        = "grid"
	scrollStep         = 48.0
	keyScrollStep      = 40.0
	cardGlowRadius     = 160.0
	cardGlowAlpha      = 0.10
	navPadX            = 24.0
	navLinkGap         = 28.0
	revealSlide        = 24.0
	profileDuration    = 15 * time.Second
	debugStatsInterval = 5 * time.Second
)

// Environment variables that provide defaults for flags left unset on the
// command line. They may come from the process environment or a .env file.
const (
	envHero      = "MAXLAB_HERO"
	envParticles = "MAXLAB_PARTICLES"
	envSeed      = "MAXLAB_SEED"
	envDebug     = "MAXLAB_DEBUG"
)

var (
	colorBackground = canvas.Hex("#0b0d10")
	colorText       = canvas.Hex("#e8eaed")
	colorSecondary  = canvas.Hex("#9aa0a6")
	colorMuted      = canvas.Hex("#5f6670")
	colorCyan       = canvas.Hex("#00e5cc")
	colorAmber      = canvas.Hex("#e5a045")
	colorCardEdge   = canvas.Hex("#1f252d")
)
