package matte

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, 4))
	if p != Pt(4, 6) {
		t.Errorf("expected (4,6), got %v", p)
	}

	p = Pt(5, 5).Sub(Pt(2, 3))
	if p != Pt(3, 2) {
		t.Errorf("expected (3,2), got %v", p)
	}

	p = Pt(1, 2).Mul(3)
	if p != Pt(3, 6) {
		t.Errorf("expected (3,6), got %v", p)
	}
}

func TestPointDistance(t *testing.T) {
	d := Pt(0, 0).Distance(Pt(3, 4))
	if d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0).Lerp(Pt(10, 20), 0.5)
	if p != Pt(5, 10) {
		t.Errorf("expected (5,10), got %v", p)
	}
}
