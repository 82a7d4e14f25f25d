// Package canvas holds the drawing surface shared by the hero renderers and
// the viewport events that drive it.
package canvas

import (
	"image/color"
	"math"
)

// Backend rasterizes drawing calls. Coordinates passed to a Backend are
// already in buffer pixels.
type Backend interface {
	// Allocate resizes the pixel buffer, discarding its contents.
	Allocate(width, height int)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float32, clr color.NRGBA)
	FillCircle(cx, cy, r float32, clr color.NRGBA)
}

// glowSteps is the number of rings used to approximate a radial gradient.
const glowSteps = 8

// Surface is a drawable region measured in logical pixels. Its backing
// buffer always holds width*dpr by height*dpr pixels and every drawing call
// is scaled by dpr on the way to the backend.
type Surface struct {
	backend       Backend
	width, height float64
	dpr           float64
	bufW, bufH    int
}

// NewSurface wraps b. A nil backend yields a nil surface, which renderers
// treat as "no drawing surface available".
func NewSurface(b Backend) *Surface {
	if b == nil {
		return nil
	}
	return &Surface{backend: b, dpr: 1}
}

// Resize sets the displayed size and device pixel ratio, reallocating the
// backend buffer and the transform. A non-positive or NaN ratio counts as 1.
func (s *Surface) Resize(width, height int, dpr float64) {
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = float64(width)
	s.height = float64(height)
	s.dpr = dpr
	s.bufW = int(math.Round(float64(width) * dpr))
	s.bufH = int(math.Round(float64(height) * dpr))
	s.backend.Allocate(s.bufW, s.bufH)
}

// Width returns the displayed width in logical pixels.
func (s *Surface) Width() float64 { return s.width }

// Height returns the displayed height in logical pixels.
func (s *Surface) Height() float64 { return s.height }

// DPR returns the device pixel ratio.
func (s *Surface) DPR() float64 { return s.dpr }

// BufferSize returns the backing buffer dimensions in device pixels.
func (s *Surface) BufferSize() (int, int) { return s.bufW, s.bufH }

// Backend returns the rasterizer behind the surface.
func (s *Surface) Backend() Backend { return s.backend }

// Clear wipes the whole buffer.
func (s *Surface) Clear() {
	s.backend.Clear()
}

// StrokeLine draws a line between two logical points.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	k := s.dpr
	s.backend.StrokeLine(float32(x0*k), float32(y0*k), float32(x1*k), float32(y1*k), float32(width*k), clr)
}

// FillCircle draws a solid disc.
func (s *Surface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 {
		return
	}
	k := s.dpr
	s.backend.FillCircle(float32(cx*k), float32(cy*k), float32(r*k), clr)
}

// RadialGlow approximates a radial gradient from clr at the centre to fully
// transparent at radius r with stacked translucent discs.
func (s *Surface) RadialGlow(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 || clr.A == 0 {
		return
	}
	// Each ring adds the same alpha so the centre accumulates to clr.A and
	// the outer edge carries one step.
	step := float64(clr.A) / glowSteps
	ring := clr
	ring.A = uint8(math.Max(1, math.Round(step)))
	for i := 0; i < glowSteps; i++ {
		rr := r * float64(glowSteps-i) / glowSteps
		s.FillCircle(cx, cy, rr, ring)
	}
}
