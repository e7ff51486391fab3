package matte

import "testing"

func TestStrokeBuilderLifecycle(t *testing.T) {
	var b StrokeBuilder

	b.Begin(Pt(1, 2))
	b.Extend(Pt(3, 4))
	b.Extend(Pt(5, 6))

	if !b.Active() {
		t.Fatal("expected active gesture")
	}

	s, ok := b.End(Erase, 30)
	if !ok {
		t.Fatal("expected a stroke")
	}
	if len(s.Points) != 3 {
		t.Errorf("expected 3 points, got %d", len(s.Points))
	}
	if s.Mode != Erase || s.Radius != 30 {
		t.Errorf("unexpected stroke settings: %+v", s)
	}
	if b.Active() {
		t.Error("expected builder idle after End")
	}
}

func TestStrokeBuilderReentrantBegin(t *testing.T) {
	var b StrokeBuilder

	b.Begin(Pt(1, 1))
	b.Begin(Pt(9, 9)) // ignored: gesture already in progress

	s, ok := b.End(Restore, 10)
	if !ok {
		t.Fatal("expected a stroke")
	}
	if len(s.Points) != 1 || s.Points[0] != Pt(1, 1) {
		t.Errorf("re-entrant Begin should be a no-op, got %v", s.Points)
	}
}

func TestStrokeBuilderSinglePoint(t *testing.T) {
	var b StrokeBuilder

	// A click with no movement is a valid single-dab stroke.
	b.Begin(Pt(7, 7))
	s, ok := b.End(Erase, 20)
	if !ok {
		t.Fatal("single-point gesture must produce a stroke")
	}
	if len(s.Points) != 1 {
		t.Errorf("expected 1 point, got %d", len(s.Points))
	}
}

func TestStrokeBuilderEndWithoutBegin(t *testing.T) {
	var b StrokeBuilder

	if _, ok := b.End(Erase, 20); ok {
		t.Error("End without Begin must not produce a stroke")
	}

	b.Extend(Pt(1, 1)) // no-op when idle
	if _, ok := b.End(Erase, 20); ok {
		t.Error("Extend while idle must not start a gesture")
	}
}

func TestStrokeBuilderPointsCopied(t *testing.T) {
	var b StrokeBuilder

	b.Begin(Pt(1, 1))
	s, _ := b.End(Erase, 20)

	// A new gesture reuses the builder's buffer; the committed stroke
	// must not observe it.
	b.Begin(Pt(100, 100))

	if s.Points[0] != Pt(1, 1) {
		t.Errorf("committed stroke aliased the builder buffer: %v", s.Points[0])
	}
}
