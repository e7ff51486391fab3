package matte

// Stroke is one committed brush gesture: an ordered point trail in canvas
// space plus the brush settings it was drawn with. Strokes are immutable
// once committed; undo and redo move them between stacks by reference.
type Stroke struct {
	Points []Point
	Mode   BrushMode

	// Radius is the brush size setting the stroke was drawn with.
	// The effective stamp radius is Radius/2.
	Radius float64
}

// StrokeBuilder accumulates the points of an in-progress pointer gesture.
// It is transient state: nothing reaches the history until End returns a
// stroke and the caller commits it.
type StrokeBuilder struct {
	points []Point
	active bool
}

// Begin starts a new gesture at p.
// A Begin while a gesture is already active is ignored.
func (b *StrokeBuilder) Begin(p Point) {
	if b.active {
		return
	}
	b.active = true
	b.points = append(b.points[:0], p)
}

// Extend appends p to the active gesture.
// No-op if no gesture is active.
func (b *StrokeBuilder) Extend(p Point) {
	if !b.active {
		return
	}
	b.points = append(b.points, p)
}

// Active reports whether a gesture is in progress.
func (b *StrokeBuilder) Active() bool {
	return b.active
}

// Points returns the accumulated point buffer of the active gesture.
// The slice is only valid until the next Begin; callers rendering a live
// preview must not retain it.
func (b *StrokeBuilder) Points() []Point {
	return b.points
}

// End finishes the gesture and returns the resulting stroke.
//
// A single-point gesture (a click with no movement) is a valid stroke
// producing one dab. ok is false only for the degenerate case of a gesture
// that never accumulated a point, or when no gesture was active.
// The returned stroke owns a copy of the points; the builder's buffer is
// never aliased by committed history.
func (b *StrokeBuilder) End(mode BrushMode, radius float64) (Stroke, bool) {
	if !b.active {
		return Stroke{}, false
	}
	b.active = false

	if len(b.points) == 0 {
		return Stroke{}, false
	}

	pts := make([]Point, len(b.points))
	copy(pts, b.points)
	b.points = b.points[:0]

	return Stroke{Points: pts, Mode: mode, Radius: radius}, true
}
