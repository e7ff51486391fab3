package matte

// RenderMask rebuilds the full-resolution alpha mask from the baseline mask
// plus an ordered stroke sequence.
//
// Every call is a full replay: the output starts as a copy of baseline and
// each stroke's points are stamped in order, the result of stroke i feeding
// stroke i+1. There is no incremental caching; cost is bounded by total
// historical stroke complexity. Replay order is not commutative — an erase
// followed by a restore differs from the reverse wherever stamps overlap
// with partial alpha.
//
// Inputs are never mutated.
func RenderMask(baseline *Mask, strokes []Stroke) *Mask {
	out := baseline.Clone()
	for _, s := range strokes {
		applyStroke(out, s)
	}
	return out
}

// applyStroke stamps every point of a stroke into the mask in trail order.
func applyStroke(m *Mask, s Stroke) {
	for _, p := range s.Points {
		stamp(m, p, s.Radius, s.Mode)
	}
}
