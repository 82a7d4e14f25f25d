package canvas

import "image/color"

// Op names a recorded drawing call.
type Op string

// Recorded operation kinds.
const (
	OpAllocate Op = "allocate"
	OpClear    Op = "clear"
	OpLine     Op = "line"
	OpCircle   Op = "circle"
)

// Call is one recorded backend call. Unused fields are zero.
type Call struct {
	Op         Op
	X0, Y0     float32
	X1, Y1     float32
	Width, R   float32
	Color      color.NRGBA
	BufW, BufH int
}

// Recorder is a Backend that remembers every call instead of drawing.
type Recorder struct {
	Calls      []Call
	BufW, BufH int
}

// Allocate implements Backend.
func (r *Recorder) Allocate(width, height int) {
	r.BufW, r.BufH = width, height
	r.Calls = append(r.Calls, Call{Op: OpAllocate, BufW: width, BufH: height})
}

// Clear implements Backend.
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

// StrokeLine implements Backend.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float32, clr color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

// FillCircle implements Backend.
func (r *Recorder) FillCircle(cx, cy, rad float32, clr color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X0: cx, Y0: cy, R: rad, Color: clr})
}

// Count returns how many calls of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Of returns the recorded calls of kind op, in order.
func (r *Recorder) Of(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Frames returns the number of frames drawn, counted by Clear calls.
func (r *Recorder) Frames() int {
	return r.Count(OpClear)
}

// Reset forgets the recorded calls but keeps the buffer size.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
