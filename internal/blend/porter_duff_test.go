package blend

import "testing"

func TestSourceOverOpaque(t *testing.T) {
	op := GetFunc(SourceOver)

	// Opaque source fully replaces the destination.
	r, g, b, a := op(255, 0, 0, 255, 0, 255, 0, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("expected opaque red, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestSourceOverTransparentSource(t *testing.T) {
	op := GetFunc(SourceOver)

	r, g, b, a := op(0, 0, 0, 0, 10, 20, 30, 255)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("transparent source must keep destination, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestSourceOverHalf(t *testing.T) {
	op := GetFunc(SourceOver)

	// Premultiplied half-opaque white over opaque black:
	// 128 + 0*(1-0.5) = 128 for color, 128 + 255*127/255 ≈ 255 for alpha.
	r, _, _, a := op(128, 128, 128, 128, 0, 0, 0, 255)
	if r != 128 {
		t.Errorf("expected r=128, got %d", r)
	}
	if a != 255 {
		t.Errorf("expected a=255, got %d", a)
	}
}

func TestDestinationOut(t *testing.T) {
	op := GetFunc(DestinationOut)

	// Opaque source erases the destination completely.
	r, g, b, a := op(255, 255, 255, 255, 10, 20, 30, 255)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("expected cleared pixel, got (%d,%d,%d,%d)", r, g, b, a)
	}

	// Half-opaque source halves the destination.
	_, _, _, a = op(0, 0, 0, 128, 0, 0, 0, 255)
	if a < 126 || a > 128 {
		t.Errorf("expected ~127, got %d", a)
	}
}

func TestDestinationIn(t *testing.T) {
	op := GetFunc(DestinationIn)

	// Destination survives only where the source has coverage.
	_, _, _, a := op(0, 0, 0, 128, 0, 0, 0, 255)
	if a != 128 {
		t.Errorf("expected a=128, got %d", a)
	}
	_, _, _, a = op(0, 0, 0, 0, 0, 0, 0, 255)
	if a != 0 {
		t.Errorf("expected a=0, got %d", a)
	}
}

func TestClearAndSourceAndDestination(t *testing.T) {
	if _, _, _, a := GetFunc(Clear)(1, 2, 3, 4, 5, 6, 7, 8); a != 0 {
		t.Error("clear must produce transparent black")
	}
	if r, _, _, _ := GetFunc(Source)(9, 0, 0, 255, 5, 6, 7, 8); r != 9 {
		t.Error("source must replace destination")
	}
	if r, _, _, _ := GetFunc(Destination)(9, 0, 0, 255, 5, 6, 7, 8); r != 5 {
		t.Error("destination must keep destination")
	}
}

func TestMulDiv255(t *testing.T) {
	cases := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{128, 128, 64},
	}
	for _, c := range cases {
		if got := MulDiv255(c.a, c.b); got != c.want {
			t.Errorf("MulDiv255(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGetFuncUnknownMode(t *testing.T) {
	op := GetFunc(Mode(200))
	r, _, _, _ := op(255, 0, 0, 255, 0, 0, 0, 255)
	if r != 255 {
		t.Error("unknown mode must fall back to source-over")
	}
}
