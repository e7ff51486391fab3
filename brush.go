package matte

import "math"

// BrushMode selects how a stroke's stamps combine with the mask.
type BrushMode uint8

const (
	// Erase removes coverage from the mask (destination-out).
	Erase BrushMode = iota

	// Restore adds coverage back to the mask (source-over).
	Restore
)

// String returns the mode name for logging.
func (m BrushMode) String() string {
	switch m {
	case Erase:
		return "erase"
	case Restore:
		return "restore"
	default:
		return "unknown"
	}
}

// Brush holds the active brush settings of a session.
// Size is the stamp diameter in canvas-space pixels; the stamp's radial
// falloff runs from full strength at the center to zero at Size/2.
type Brush struct {
	Mode BrushMode
	Size float64
}

// DefaultBrush is the brush a new session starts with.
// Erase is the default mode since refining a segmentation usually means
// removing background the segmenter left behind.
var DefaultBrush = Brush{Mode: Erase, Size: 40}

// stamp applies a single radial dab to the mask at point p.
//
// The dab has radius r = size/2 with linear alpha falloff:
// a(d) = 1 - d/r for d < r, 0 beyond. Restore composites source-over,
// Erase composites destination-out. The same code path serves committed
// replay and live preview, so the two can never diverge.
func stamp(m *Mask, p Point, size float64, mode BrushMode) {
	r := size / 2
	if r <= 0 {
		return
	}

	minX := int(p.X - r)
	maxX := int(p.X + r + 1)
	minY := int(p.Y - r)
	maxY := int(p.Y + r + 1)

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.width {
		maxX = m.width
	}
	if maxY > m.height {
		maxY = m.height
	}

	for y := minY; y < maxY; y++ {
		dy := float64(y) - p.Y
		row := y * m.width
		for x := minX; x < maxX; x++ {
			dx := float64(x) - p.X
			d := dx*dx + dy*dy
			if d >= r*r {
				continue
			}
			a := 1 - math.Sqrt(d)/r

			old := float64(m.data[row+x])
			var out float64
			switch mode {
			case Restore:
				// source-over: new = a*255 + old*(1-a)
				out = a*255 + old*(1-a)
			case Erase:
				// destination-out: new = old*(1-a)
				out = old * (1 - a)
			default:
				out = old
			}
			m.data[row+x] = uint8(clamp255(out))
		}
	}
}
