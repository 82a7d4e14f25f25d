// Package grid renders the chart-paper hero background: drifting grid lines
// and twelve pulsing, softly glowing data nodes.
package grid

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"maxlab/canvas"
)

const (
	// TimeScale converts frame milliseconds into animation time.
	TimeScale = 0.0001
	// StillFrameMillis is the nominal time drawn when motion is reduced.
	StillFrameMillis = 1000.0

	columnSpacing = 80.0
	rowSpacing    = 100.0
	columnDrift   = 6.0
	rowDrift      = 4.0
	nodeDrift     = 10.0
	nodeCount     = 12
)

// lineColor is the cyan used for every grid line.
var lineColor = canvas.RGB(0, 229, 204)

// Palette is the fixed node palette, indexed round-robin by node index.
var Palette = [nodeCount]colorful.Color{
	canvas.RGB(0, 229, 204),   // cyan
	canvas.RGB(229, 160, 69),  // amber
	canvas.RGB(120, 160, 255), // periwinkle
	canvas.RGB(0, 229, 204),   // cyan
	canvas.RGB(200, 120, 220), // soft violet
	canvas.RGB(229, 160, 69),  // amber
	canvas.RGB(100, 220, 180), // seafoam
	canvas.RGB(229, 120, 140), // rose
	canvas.RGB(120, 160, 255), // periwinkle
	canvas.RGB(0, 229, 204),   // cyan
	canvas.RGB(200, 120, 220), // soft violet
	canvas.RGB(229, 160, 69),  // amber
}

// Line is one grid line: Pos is x for columns and y for rows.
type Line struct {
	Pos   float64
	Alpha float64
}

// Node is one data node as drawn in a single frame.
type Node struct {
	X, Y      float64
	Core      float64
	Pulse     float64
	HaloAlpha float64
	CoreAlpha float64
	Color     colorful.Color
}

// Frame is the full geometry of one tick. It is recomputed every frame.
type Frame struct {
	Columns []Line
	Rows    []Line
	Nodes   [nodeCount]Node
}

// AnimationTime converts a frame timestamp in milliseconds to the slow
// drift clock used by every formula in this package.
func AnimationTime(millis float64) float64 {
	return millis * TimeScale
}

// Scatter returns the base position of node k as fractions of the surface.
// x and y follow a golden-ratio low-discrepancy sequence. Nodes 4 and 7 are
// pinned to hand-picked x fractions so they clear the hero copy; overridden
// reports that case, where x is a fraction of the full width rather than of
// the inset rectangle.
func Scatter(k int) (fx, fy float64, overridden bool) {
	fx = math.Mod(float64(k)*0.618, 1)
	fy = math.Mod(float64(k)*0.382, 1)
	switch k {
	case 4:
		return 0.54, fy, true
	case 7:
		return 0.42, fy, true
	}
	return fx, fy, false
}

// Layout computes the geometry of a w×h surface at animation time t.
func Layout(w, h, t float64) Frame {
	var f Frame

	cols := int(math.Floor(w / columnSpacing))
	f.Columns = make([]Line, 0, cols+1)
	for i := 0; i <= cols; i++ {
		base := 0.0
		if cols > 0 {
			base = float64(i) / float64(cols) * w
		}
		fi := float64(i)
		f.Columns = append(f.Columns, Line{
			Pos:   base + math.Sin(t+fi*0.7)*columnDrift,
			Alpha: 0.20 + math.Sin(t+fi)*0.06,
		})
	}

	rows := int(math.Floor(h / rowSpacing))
	f.Rows = make([]Line, 0, rows+1)
	for j := 0; j <= rows; j++ {
		base := 0.0
		if rows > 0 {
			base = float64(j) / float64(rows) * h
		}
		fj := float64(j)
		f.Rows = append(f.Rows, Line{
			Pos:   base + math.Cos(t*0.8+fj*0.5)*rowDrift,
			Alpha: 0.15 + math.Sin(t+fj*1.2)*0.05,
		})
	}

	for k := 0; k < nodeCount; k++ {
		fx, fy, overridden := Scatter(k)
		nx := w * (0.15 + 0.75*fx)
		if overridden {
			nx = w * fx
		}
		ny := h * (0.1 + 0.8*fy)

		fk := float64(k)
		pulse := Pulse(t, k)
		core := 4 + pulse*4
		f.Nodes[k] = Node{
			X:         nx + math.Sin(t+fk)*nodeDrift,
			Y:         ny + math.Cos(t*0.7+fk)*nodeDrift,
			Core:      core,
			Pulse:     pulse,
			HaloAlpha: 0.15 + pulse*0.1,
			CoreAlpha: 0.5 + pulse*0.3,
			Color:     Palette[k%len(Palette)],
		}
	}
	return f
}

// Pulse is the [0,1] breathing phase of node k at time t.
func Pulse(t float64, k int) float64 {
	return 0.5 + 0.5*math.Sin(2*t+1.5*float64(k))
}

// Paint draws f onto s.
func Paint(s *canvas.Surface, f Frame) {
	w, h := s.Width(), s.Height()
	s.Clear()
	for _, c := range f.Columns {
		s.StrokeLine(c.Pos, 0, c.Pos, h, 1, canvas.WithAlpha(lineColor, c.Alpha))
	}
	for _, r := range f.Rows {
		s.StrokeLine(0, r.Pos, w, r.Pos, 1, canvas.WithAlpha(lineColor, r.Alpha))
	}
	for _, n := range f.Nodes {
		s.RadialGlow(n.X, n.Y, n.Core*3, canvas.WithAlpha(n.Color, n.HaloAlpha))
		s.FillCircle(n.X, n.Y, n.Core, canvas.WithAlpha(n.Color, n.CoreAlpha))
	}
}
