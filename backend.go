package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// dotRadius is the size below which circles are drawn as squares; at that
// scale the two are indistinguishable and squares are far cheaper.
const dotRadius = 1.25

// imageBackend rasterizes canvas calls with Ebitengine's vector package. An
// owned backend allocates its own offscreen image; an unowned one draws
// straight onto an image it was given, such as the screen.
type imageBackend struct {
	img   *ebiten.Image
	owned bool
}

func newOffscreenBackend() *imageBackend {
	return &imageBackend{owned: true}
}

func newScreenBackend(screen *ebiten.Image) *imageBackend {
	return &imageBackend{img: screen}
}

func (b *imageBackend) Allocate(width, height int) {
	if !b.owned {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if b.img != nil {
		sz := b.img.Bounds().Size()
		if sz.X == width && sz.Y == height {
			b.img.Clear()
			return
		}
		b.img.Deallocate()
	}
	b.img = ebiten.NewImage(width, height)
}

func (b *imageBackend) Clear() {
	if b.img != nil {
		b.img.Clear()
	}
}

func (b *imageBackend) StrokeLine(x0, y0, x1, y1, width float32, clr color.NRGBA) {
	if b.img == nil {
		return
	}
	vector.StrokeLine(b.img, x0, y0, x1, y1, width, clr, true)
}

func (b *imageBackend) FillCircle(cx, cy, r float32, clr color.NRGBA) {
	if b.img == nil {
		return
	}
	if r < dotRadius {
		vector.DrawFilledRect(b.img, cx-r, cy-r, 2*r, 2*r, clr, false)
		return
	}
	vector.DrawFilledCircle(b.img, cx, cy, r, clr, true)
}

// Image returns the backing image, or nil before the first Allocate.
func (b *imageBackend) Image() *ebiten.Image {
	return b.img
}
