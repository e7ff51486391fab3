package matte

// Viewport maps raw pointer positions on screen to canvas-space
// coordinates. Zoom is purely a presentation transform: stored stroke
// coordinates are always canvas-space, so changing zoom never rewrites
// stroke data.
type Viewport struct {
	// OriginX, OriginY locate the canvas's top-left corner on screen.
	OriginX float64
	OriginY float64

	// Zoom is the on-screen scale factor. Must be > 0.
	Zoom float64
}

// NewViewport creates a viewport at the given origin and zoom.
// A zoom <= 0 is replaced with 1.
func NewViewport(originX, originY, zoom float64) Viewport {
	if zoom <= 0 {
		zoom = 1
	}
	return Viewport{OriginX: originX, OriginY: originY, Zoom: zoom}
}

// Map converts a screen position to canvas space.
//
// Mouse and touch positions map identically; for touch the caller passes
// the primary touch point. Out-of-canvas results are valid — clamping, if
// any, happens in brush stamping, not here.
func (v Viewport) Map(screenX, screenY float64) Point {
	return Point{
		X: (screenX - v.OriginX) / v.Zoom,
		Y: (screenY - v.OriginY) / v.Zoom,
	}
}
