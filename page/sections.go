package page

import (
	"math"

	"maxlab/content"
	"maxlab/reveal"
)

// column returns the left edge and width of the centred content column.
func (p *Page) column() (left, width float64) {
	width = math.Min(maxContent, p.width-2*sidePad)
	if width < 0 {
		width = 0
	}
	return (p.width - width) / 2, width
}

func (p *Page) chars(w float64) int {
	return int(w / p.metrics.CharWidth)
}

// text builds a block and returns it with the y just below it.
func (p *Page) text(x, y, w float64, s string, style Style) (Block, float64) {
	lines := Wrap(s, p.chars(w))
	return Block{X: x, Y: y, Lines: lines, Style: style}, y + float64(len(lines))*p.metrics.LineHeight
}

func (p *Page) heroBlocks() []Block {
	left, width := p.column()
	textW := math.Min(width, 560)
	lh := p.metrics.LineHeight
	y := p.viewH*0.42 - 2*lh
	label, y := p.text(left, y, textW, p.site.Hero.Label, Label)
	sub, _ := p.text(left, y+lh, textW, p.site.Hero.Sub, Body)
	return []Block{label, sub, {X: p.width / 2, Y: p.viewH - 3*lh, Lines: []string{"Scroll"}, Style: Muted}}
}

// cardColumns is 3 on wide layouts, 2 on tablets and 1 on phones.
func cardColumns(width float64) int {
	switch {
	case width >= 900:
		return 3
	case width >= 600:
		return 2
	}
	return 1
}

func (p *Page) projectsBlocks(top float64) ([]Block, float64) {
	left, width := p.column()
	lh := p.metrics.LineHeight
	label, y := p.text(left, top+sectionPad, width, "Projects", Label)
	blocks := []Block{label}
	y += lh

	cols := cardColumns(width)
	cardW := (width - gutter*float64(cols-1)) / float64(cols)
	inner := cardW - 2*cardPadding
	for i, proj := range p.site.Projects {
		col, row := i%cols, i/cols
		x := left + float64(col)*(cardW+gutter)
		cy := y + float64(row)*(cardHeight+gutter)
		p.cards = append(p.cards, Card{Rect: rectOf(x, cy, cardW, cardHeight), Project: proj})

		ty := cy + cardPadding
		num, ty := p.text(x+cardPadding, ty, inner, proj.Num, Muted)
		title, ty := p.text(x+cardPadding, ty+lh/2, inner, proj.Title, Heading)
		desc, _ := p.text(x+cardPadding, ty+lh/2, inner, proj.Desc, Body)
		style := Accent
		if proj.Accent == content.Amber {
			style = Meta
		}
		tag := Block{X: x + cardPadding, Y: cy + cardHeight - cardPadding - lh, Lines: []string{proj.Tag}, Style: style}
		blocks = append(blocks, num, title, desc, tag)
	}
	rows := (len(p.site.Projects) + cols - 1) / cols
	if rows > 0 {
		y += float64(rows)*(cardHeight+gutter) - gutter
	}
	return blocks, y + sectionPad - top
}

func (p *Page) writingBlocks(top float64) ([]Block, float64) {
	left, width := p.column()
	lh := p.metrics.LineHeight
	label, y := p.text(left, top+sectionPad, width, "Writing & Research", Label)
	blocks := []Block{label}
	y += lh

	// Two columns on wide layouts: the featured piece left, the list right.
	featW, listX, listW := width, left, width
	twoCol := width >= 900
	if twoCol {
		featW = width*0.58 - gutter/2
		listX = left + width*0.58 + gutter/2
		listW = width*0.42 - gutter/2
	}

	f := p.site.Featured
	fy := y
	b, fy := p.text(left, fy, featW, "Featured", Accent)
	blocks = append(blocks, b)
	b, fy = p.text(left, fy+lh/2, featW, f.Title, Heading)
	blocks = append(blocks, b)
	b, fy = p.text(left, fy+lh/2, featW, f.Excerpt, Body)
	blocks = append(blocks, b)
	b, fy = p.text(left, fy+lh/2, featW, f.Date+" · "+f.Topic, Meta)
	blocks = append(blocks, b)

	ly := y
	if !twoCol {
		ly = fy + 2*lh
	}
	for _, a := range p.site.Articles {
		b, ly = p.text(listX, ly, listW, a.Title, Heading)
		blocks = append(blocks, b)
		b, ly = p.text(listX, ly+lh/2, listW, a.Excerpt, Muted)
		blocks = append(blocks, b)
		b, ly = p.text(listX, ly+lh/2, listW, a.Date, Meta)
		blocks = append(blocks, b)
		ly += 2 * lh
	}
	bottom := math.Max(fy, ly)
	return blocks, bottom + sectionPad - top
}

func (p *Page) aboutBlocks(top float64) ([]Block, float64) {
	left, width := p.column()
	lh := p.metrics.LineHeight
	label, y := p.text(left, top+sectionPad, width, "About", Label)
	blocks := []Block{label}
	y += lh

	textW := width
	if width >= 900 {
		textW = width * 0.55
	}
	for _, line := range p.site.About.Heading {
		var b Block
		b, y = p.text(left, y, textW, line, Heading)
		blocks = append(blocks, b)
	}
	y += lh
	for _, para := range p.site.About.Body {
		var b Block
		b, y = p.text(left, y, textW, para, Body)
		blocks = append(blocks, b)
		y += lh
	}
	return blocks, y + sectionPad - top
}

func (p *Page) contactBlocks(top float64) ([]Block, float64) {
	left, width := p.column()
	lh := p.metrics.LineHeight
	c := p.site.Contact
	blocks := make([]Block, 0, 8)

	b, y := p.text(left, top+sectionPad, width, c.Heading, Heading)
	blocks = append(blocks, b)
	b, y = p.text(left, y+lh/2, math.Min(width, 480), c.Body, Body)
	blocks = append(blocks, b)
	b, y = p.text(left, y+lh, width, c.Email+" ↗", Accent)
	blocks = append(blocks, b)

	y += lh
	b, y = p.text(left, y, width, "Elsewhere", Label)
	blocks = append(blocks, b)
	for _, l := range c.Links {
		b, y = p.text(left, y, width, l.Label+" →", Body)
		blocks = append(blocks, b)
	}
	y += lh
	for _, line := range c.Colophon {
		b, y = p.text(left, y, width, line, Muted)
		blocks = append(blocks, b)
	}
	return blocks, y + sectionPad/2 - top
}

func rectOf(x, y, w, h float64) reveal.Rect {
	return reveal.Rect{X: x, Y: y, W: w, H: h}
}
