package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"maxlab/page"
)

// handleInput scrolls the page, tracks the pointer and follows nav links.
func (g *Game) handleInput() {
	_, viewH, dpr := g.viewport.Size()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/dpr, float64(cy)/dpr
	if x != g.pointerX || y != g.pointerY {
		g.pointerX, g.pointerY = x, y
		g.viewport.MovePointer(x, y)
	}
	g.hoverCard, g.hoverX, g.hoverY, _ = g.page.CardAt(x, y)

	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.page.ScrollBy(-wy * scrollStep)
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.page.ScrollBy(keyScrollStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.page.ScrollBy(-keyScrollStep)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.page.ScrollBy(float64(viewH) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.page.ScrollBy(-float64(viewH) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.page.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.page.ScrollTo(g.page.MaxScroll())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, l := range g.navLinks() {
			if l.contains(x, y) {
				g.follow(l.href)
				break
			}
		}
	}
}

// follow scrolls to the section with the given anchor, just below the nav.
func (g *Game) follow(href string) {
	s := g.page.Section(href)
	if s == nil {
		g.logger.Printf("no section for %s", href)
		return
	}
	g.page.ScrollTo(s.Rect.Y - page.NavHeight)
}

// handleDebugControls toggles reduced motion (M) and swaps the hero (H).
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		reduced := g.motion.Toggle()
		g.logger.Printf("reduced motion: %v", reduced)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		next := g.variants.Next(g.heroName)
		if err := g.mountHero(next); err != nil {
			g.logger.Printf("hero swap: %v", err)
			return
		}
		g.logger.Printf("hero: %s", next)
	}
}
