// Package page lays out the landing page: the full-height hero, the content
// sections below it, and the navigation bar. Every section except the hero
// is a reveal target; its rectangle is updated in place on resize so reveal
// state survives relayout.
package page

import (
	"math"
	"strings"
	"time"

	"maxlab/content"
	"maxlab/reveal"
)

const (
	// NavScrollThreshold is how far the page scrolls before the nav bar
	// switches to its solid style.
	NavScrollThreshold = 60.0
	// NavHeight is the height of the navigation bar.
	NavHeight = 56.0
	// FadeDuration is how long a revealed section takes to fade in.
	FadeDuration = 600 * time.Millisecond

	sectionPad  = 96.0
	gutter      = 24.0
	maxContent  = 1120.0
	sidePad     = 24.0
	cardHeight  = 176.0
	cardPadding = 20.0
)

// Metrics describes the monospaced text face used for layout.
type Metrics struct {
	CharWidth  float64
	LineHeight float64
}

// Style picks how a text block is drawn.
type Style int

const (
	Body Style = iota
	Label
	Heading
	Meta
	Accent
	Muted
)

// Block is a run of wrapped lines positioned in document coordinates.
type Block struct {
	X, Y  float64
	Lines []string
	Style Style
}

// Section is one vertical band of the page.
type Section struct {
	Name   string
	Anchor string
	Rect   reveal.Rect
	// Target is nil for the hero, which is always visible.
	Target *reveal.Target
	Blocks []Block
}

// Card is one project card in document coordinates.
type Card struct {
	Rect    reveal.Rect
	Project content.Project
}

// Page is the laid-out document plus its scroll position.
type Page struct {
	site    content.Site
	metrics Metrics

	width, viewH float64
	height       float64
	scroll       float64

	hero     *Section
	sections []*Section
	cards    []Card
}

// New builds a page for site. Call Resize before use.
func New(site content.Site, m Metrics) *Page {
	if m.CharWidth <= 0 {
		m.CharWidth = 7
	}
	if m.LineHeight <= 0 {
		m.LineHeight = 16
	}
	p := &Page{site: site, metrics: m}
	p.hero = &Section{Name: "hero", Anchor: "#hero"}
	for _, s := range []struct{ name, anchor string }{
		{"projects", "#experiments"},
		{"writing", "#writing"},
		{"about", "#about"},
		{"contact", "#contact"},
	} {
		p.sections = append(p.sections, &Section{
			Name:   s.name,
			Anchor: s.anchor,
			Target: reveal.NewTarget(s.name, reveal.Rect{}),
		})
	}
	return p
}

// Resize lays the page out for a viewport of the given logical size.
func (p *Page) Resize(width, viewH float64) {
	p.width = math.Max(0, width)
	p.viewH = math.Max(0, viewH)

	p.hero.Rect = reveal.Rect{W: p.width, H: p.viewH}
	p.hero.Blocks = p.heroBlocks()

	y := p.viewH
	p.cards = p.cards[:0]
	for _, s := range p.sections {
		var blocks []Block
		var h float64
		switch s.Name {
		case "projects":
			blocks, h = p.projectsBlocks(y)
		case "writing":
			blocks, h = p.writingBlocks(y)
		case "about":
			blocks, h = p.aboutBlocks(y)
		case "contact":
			blocks, h = p.contactBlocks(y)
		}
		s.Rect = reveal.Rect{X: 0, Y: y, W: p.width, H: h}
		s.Target.Rect = s.Rect
		s.Blocks = blocks
		y += h
	}
	p.height = y
	p.ScrollTo(p.scroll)
}

// Width returns the layout width.
func (p *Page) Width() float64 { return p.width }

// Height returns the document height.
func (p *Page) Height() float64 { return p.height }

// Hero returns the hero section.
func (p *Page) Hero() *Section { return p.hero }

// Sections returns the content sections in document order.
func (p *Page) Sections() []*Section { return p.sections }

// Cards returns the project cards.
func (p *Page) Cards() []Card { return p.cards }

// Site returns the page content.
func (p *Page) Site() content.Site { return p.site }

// Targets returns the reveal targets of every content section.
func (p *Page) Targets() []*reveal.Target {
	out := make([]*reveal.Target, 0, len(p.sections))
	for _, s := range p.sections {
		out = append(out, s.Target)
	}
	return out
}

// Section returns the section with the given name or anchor.
func (p *Page) Section(name string) *Section {
	if name == p.hero.Name || name == p.hero.Anchor {
		return p.hero
	}
	for _, s := range p.sections {
		if s.Name == name || s.Anchor == name {
			return s
		}
	}
	return nil
}

// Scroll returns the scroll offset.
func (p *Page) Scroll() float64 { return p.scroll }

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.height-p.viewH)
}

// ScrollTo sets the scroll offset, clamped to the document.
func (p *Page) ScrollTo(y float64) {
	if math.IsNaN(y) {
		y = 0
	}
	p.scroll = math.Max(0, math.Min(y, p.MaxScroll()))
}

// ScrollBy moves the scroll offset by dy.
func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.scroll + dy)
}

// View returns the viewport rectangle in document coordinates.
func (p *Page) View() reveal.Rect {
	return reveal.Rect{X: 0, Y: p.scroll, W: p.width, H: p.viewH}
}

// NavScrolled reports whether the nav bar should use its solid style.
func (p *Page) NavScrolled() bool {
	return p.scroll > NavScrollThreshold
}

// CardAt returns the index of the card under a viewport-space point and
// the point in card-local coordinates.
func (p *Page) CardAt(x, y float64) (idx int, lx, ly float64, ok bool) {
	dy := y + p.scroll
	for i, c := range p.cards {
		r := c.Rect
		if x >= r.X && x < r.Right() && dy >= r.Y && dy < r.Bottom() {
			return i, x - r.X, dy - r.Y, true
		}
	}
	return -1, 0, 0, false
}

// FadeProgress returns how far a target's fade-in has run at now, from 0
// (hidden) to 1 (fully shown), eased out. A nil target and one shown
// instantly are fully shown.
func FadeProgress(t *reveal.Target, now time.Duration) float64 {
	if t == nil {
		return 1
	}
	if !t.Visible() {
		return 0
	}
	if t.Instant() {
		return 1
	}
	elapsed := now - t.RevealedAt()
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= FadeDuration {
		return 1
	}
	x := float64(elapsed) / float64(FadeDuration)
	return 1 - (1-x)*(1-x)*(1-x)
}

// Wrap breaks text into lines of at most width characters, splitting on
// spaces. Words longer than width are placed on their own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur []rune
	for _, w := range words {
		wr := []rune(w)
		switch {
		case len(cur) == 0:
			cur = append(cur, wr...)
		case len(cur)+1+len(wr) <= width:
			cur = append(cur, ' ')
			cur = append(cur, wr...)
		default:
			lines = append(lines, string(cur))
			cur = append(cur[:0], wr...)
		}
	}
	return append(lines, string(cur))
}
