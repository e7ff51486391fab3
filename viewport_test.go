package matte

import "testing"

func TestViewportMap(t *testing.T) {
	// Screen (100,100), origin (0,0), zoom 2 maps to canvas (50,50).
	v := NewViewport(0, 0, 2.0)
	p := v.Map(100, 100)
	if p != Pt(50, 50) {
		t.Errorf("expected (50,50), got %v", p)
	}
}

func TestViewportMapWithOrigin(t *testing.T) {
	v := NewViewport(10, 20, 1.0)
	p := v.Map(110, 120)
	if p != Pt(100, 100) {
		t.Errorf("expected (100,100), got %v", p)
	}
}

func TestViewportZoomInvariance(t *testing.T) {
	// For a fixed screen position and origin, doubling zoom halves the
	// mapped canvas coordinates.
	base := NewViewport(0, 0, 1.0).Map(80, 60)
	double := NewViewport(0, 0, 2.0).Map(80, 60)

	if double.X != base.X/2 || double.Y != base.Y/2 {
		t.Errorf("expected %v halved, got %v", base, double)
	}
}

func TestViewportOutOfCanvas(t *testing.T) {
	// Out-of-canvas coordinates are valid; nothing clamps here.
	v := NewViewport(50, 50, 1.0)
	p := v.Map(0, 0)
	if p != Pt(-50, -50) {
		t.Errorf("expected (-50,-50), got %v", p)
	}
}

func TestViewportRejectsZeroZoom(t *testing.T) {
	v := NewViewport(0, 0, 0)
	if v.Zoom != 1 {
		t.Errorf("expected zoom fallback to 1, got %f", v.Zoom)
	}
}
