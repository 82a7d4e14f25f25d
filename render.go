package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"maxlab/canvas"
	"maxlab/content"
	"maxlab/page"
)

const (
	faceCharWidth = 7.0
	lineHeight    = 18.0
	// faceAscent lifts text so a block's Y is the top of its first line.
	faceAscent = 2.0
)

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	// asciiFold maps the typography in the copy onto glyphs the bitmap
	// face carries.
	asciiFold = strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", `"`, "”", `"`,
		"—", "--", "–", "-",
		"·", "*", "→", "->", "↗", "^",
	)
)

// navLink is a clickable label in the navigation bar, in viewport space.
type navLink struct {
	label, href string
	x, y, w, h  float64
}

func (l navLink) contains(x, y float64) bool {
	return x >= l.x && x < l.x+l.w && y >= l.y && y < l.y+l.h
}

// navLinks lays the nav labels out right-aligned in the bar.
func (g *Game) navLinks() []navLink {
	nav := g.page.Site().Nav
	links := make([]navLink, len(nav))
	x := g.page.Width() - navPadX
	for i := len(nav) - 1; i >= 0; i-- {
		w := float64(len(nav[i].Label)) * faceCharWidth
		x -= w
		links[i] = navLink{
			label: nav[i].Label,
			href:  nav[i].Href,
			x:     x,
			y:     (page.NavHeight - lineHeight) / 2,
			w:     w,
			h:     lineHeight,
		}
		x -= navLinkGap
	}
	return links
}

// Draw composes the hero canvas, the page sections and the nav bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	_, _, dpr := g.viewport.Size()
	scroll := g.page.Scroll()
	now := g.clock.Elapsed()

	if img := g.backend.Image(); img != nil && scroll < g.page.Hero().Rect.Bottom() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -scroll*dpr)
		screen.DrawImage(img, op)
	}
	g.drawBlocks(screen, g.page.Hero().Blocks, 1, 0, dpr)

	for _, s := range g.page.Sections() {
		view := g.page.View()
		if s.Rect.Bottom() < view.Y || s.Rect.Y > view.Bottom() {
			continue
		}
		progress := page.FadeProgress(s.Target, now)
		if progress <= 0 {
			continue
		}
		slide := (1 - progress) * revealSlide
		if s.Name == "projects" {
			g.drawCards(screen, progress, slide, dpr)
		}
		g.drawBlocks(screen, s.Blocks, progress, slide, dpr)
	}

	g.drawNav(screen, dpr)

	if *debugFlag {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %.1f  TPS %.1f  hero %s (%s)  reduced %v\nscroll %.0f/%.0f  revealed %d  pending %d  update %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.heroName, g.hero.State(), g.motion.ReducedMotion(),
			scroll, g.page.MaxScroll(), g.reveal.Revealed(), g.reveal.Pending(), g.lastUpdateDur))
	}
}

func styleColor(s page.Style) colorful.Color {
	switch s {
	case page.Label, page.Accent:
		return colorCyan
	case page.Heading:
		return colorText
	case page.Meta:
		return colorSecondary
	case page.Muted:
		return colorMuted
	}
	return colorSecondary
}

// drawBlocks draws text blocks offset by the scroll and the reveal slide.
func (g *Game) drawBlocks(screen *ebiten.Image, blocks []page.Block, alpha, slide, dpr float64) {
	scroll := g.page.Scroll()
	for _, b := range blocks {
		clr := styleColor(b.Style)
		for i, line := range b.Lines {
			y := b.Y + float64(i)*lineHeight - scroll + slide
			drawText(screen, line, b.X, y, clr, alpha, dpr)
		}
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr colorful.Color, alpha, dpr float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y+faceAscent)
	op.GeoM.Scale(dpr, dpr)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, asciiFold.Replace(s), face, op)
}

// drawCards outlines the project cards and lights the one under the pointer.
func (g *Game) drawCards(screen *ebiten.Image, alpha, slide, dpr float64) {
	scroll := g.page.Scroll()
	var glow *canvas.Surface
	for i, c := range g.page.Cards() {
		x, y := c.Rect.X, c.Rect.Y-scroll+slide
		if i == g.hoverCard {
			if glow == nil {
				w, h, _ := g.viewport.Size()
				glow = canvas.NewSurface(newScreenBackend(screen))
				glow.Resize(w, h, dpr)
			}
			glowColor := colorCyan
			if c.Project.Accent == content.Amber {
				glowColor = colorAmber
			}
			glow.RadialGlow(x+g.hoverX, y+g.hoverY, cardGlowRadius, canvas.WithAlpha(glowColor, cardGlowAlpha*alpha))
		}
		edge := canvas.WithAlpha(colorCardEdge, alpha)
		vector.StrokeRect(screen,
			float32(x*dpr), float32(y*dpr), float32(c.Rect.W*dpr), float32(c.Rect.H*dpr),
			float32(dpr), edge, true)
	}
}

// drawNav draws the site name and links, over a solid bar once the page has
// scrolled.
func (g *Game) drawNav(screen *ebiten.Image, dpr float64) {
	if g.page.NavScrolled() {
		bar := canvas.WithAlpha(colorBackground, 0.92)
		vector.DrawFilledRect(screen, 0, 0, float32(g.page.Width()*dpr), float32(page.NavHeight*dpr), bar, false)
		vector.StrokeLine(screen, 0, float32(page.NavHeight*dpr), float32(g.page.Width()*dpr),
			float32(page.NavHeight*dpr), float32(dpr), canvas.WithAlpha(colorCardEdge, 1), false)
	}
	name := g.page.Site().Name
	drawText(screen, name, navPadX, (page.NavHeight-lineHeight)/2, colorText, 1, dpr)
	for _, l := range g.navLinks() {
		clr := colorSecondary
		if l.contains(g.pointerX, g.pointerY) {
			clr = colorCyan
		}
		drawText(screen, l.label, l.x, l.y, clr, 1, dpr)
	}
}

// Layout renders at device resolution. The size is applied on the next
// Update so resize listeners never run mid-draw.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	if dpr <= 0 {
		dpr = 1
	}
	w, h, cur := g.viewport.Size()
	if w != outsideWidth || h != outsideHeight || cur != dpr {
		g.pendingW, g.pendingH, g.pendingDPR = outsideWidth, outsideHeight, dpr
		g.haveSize = true
	}
	return int(math.Round(float64(outsideWidth) * dpr)), int(math.Round(float64(outsideHeight) * dpr))
}
