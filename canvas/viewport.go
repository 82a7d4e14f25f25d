package canvas

import "sort"

// ResizeFunc receives the new viewport size in logical pixels and the
// device pixel ratio.
type ResizeFunc func(width, height int, dpr float64)

// PointerFunc receives the pointer position in logical pixels.
type PointerFunc func(x, y float64)

// ListenerID identifies a registered listener.
type ListenerID int

// Viewport tracks the window size and pointer and fans events out to
// listeners. Listeners run synchronously, in registration order, on the
// goroutine that reports the event.
type Viewport struct {
	width, height int
	dpr           float64
	px, py        float64
	hasPointer    bool

	nextID  ListenerID
	resize  map[ListenerID]ResizeFunc
	pointer map[ListenerID]PointerFunc
}

// NewViewport returns a viewport of the given initial size.
func NewViewport(width, height int, dpr float64) *Viewport {
	if dpr <= 0 {
		dpr = 1
	}
	return &Viewport{
		width:   width,
		height:  height,
		dpr:     dpr,
		resize:  make(map[ListenerID]ResizeFunc),
		pointer: make(map[ListenerID]PointerFunc),
	}
}

// Size returns the current logical size and pixel ratio.
func (v *Viewport) Size() (int, int, float64) {
	return v.width, v.height, v.dpr
}

// Pointer returns the last pointer position and whether one was reported.
func (v *Viewport) Pointer() (float64, float64, bool) {
	return v.px, v.py, v.hasPointer
}

// NormalizedPointer maps the pointer to [-1,1] on both axes with +y up, the
// convention of normalized device coordinates. Without a pointer it returns
// the centre.
func (v *Viewport) NormalizedPointer() (float64, float64) {
	if !v.hasPointer || v.width <= 0 || v.height <= 0 {
		return 0, 0
	}
	nx := v.px/float64(v.width)*2 - 1
	ny := -(v.py/float64(v.height)*2 - 1)
	return clampUnit(nx), clampUnit(ny)
}

// OnResize registers fn and returns its id for RemoveResize.
func (v *Viewport) OnResize(fn ResizeFunc) ListenerID {
	v.nextID++
	v.resize[v.nextID] = fn
	return v.nextID
}

// RemoveResize unregisters a resize listener. Unknown ids are ignored.
func (v *Viewport) RemoveResize(id ListenerID) {
	delete(v.resize, id)
}

// OnPointer registers fn and returns its id for RemovePointer.
func (v *Viewport) OnPointer(fn PointerFunc) ListenerID {
	v.nextID++
	v.pointer[v.nextID] = fn
	return v.nextID
}

// RemovePointer unregisters a pointer listener. Unknown ids are ignored.
func (v *Viewport) RemovePointer(id ListenerID) {
	delete(v.pointer, id)
}

// Listeners returns the number of registered resize and pointer listeners.
func (v *Viewport) Listeners() (resize, pointer int) {
	return len(v.resize), len(v.pointer)
}

// Resize records a new size and notifies every resize listener, even when
// the size did not change.
func (v *Viewport) Resize(width, height int, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	v.width, v.height, v.dpr = width, height, dpr
	for _, id := range sortedIDs(v.resize) {
		if fn, ok := v.resize[id]; ok {
			fn(width, height, dpr)
		}
	}
}

// MovePointer records a pointer position and notifies pointer listeners.
func (v *Viewport) MovePointer(x, y float64) {
	v.px, v.py, v.hasPointer = x, y, true
	for _, id := range sortedIDs(v.pointer) {
		if fn, ok := v.pointer[id]; ok {
			fn(x, y)
		}
	}
}

func sortedIDs[F any](m map[ListenerID]F) []ListenerID {
	ids := make([]ListenerID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
