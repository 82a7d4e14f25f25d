package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" string. It panics on malformed input and is meant
// for package-level palette tables.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("canvas: bad colour " + s + ": " + err.Error())
	}
	return c
}

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// WithAlpha converts c to a non-premultiplied colour with alpha a in [0,1].
func WithAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// Fade blends c toward the background bg by t in [0,1] in Lab space.
func Fade(c, bg colorful.Color, t float64) colorful.Color {
	return c.BlendLab(bg, clamp01(t)).Clamped()
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
