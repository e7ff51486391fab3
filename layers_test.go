package matte

import (
	"image"
	"image/color"
	"testing"
)

// opaqueSubject returns a solid red subject pixmap.
func opaqueSubject(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Clear(RGBA{R: 1, G: 0, B: 0, A: 1})
	return pm
}

func TestCompositeSilhouette(t *testing.T) {
	subject := opaqueSubject(32, 32)
	mask := NewMask(32, 32)
	mask.Set(10, 10, 255)
	mask.Set(20, 20, 128)

	out := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, ShadowConfig{})

	if got := out.AlphaAt(10, 10); got != 255 {
		t.Errorf("masked-in pixel: expected alpha 255, got %d", got)
	}
	if got := out.AlphaAt(20, 20); got < 127 || got > 129 {
		t.Errorf("half-masked pixel: expected alpha ~128, got %d", got)
	}
	if got := out.AlphaAt(5, 5); got != 0 {
		t.Errorf("masked-out pixel: expected alpha 0, got %d", got)
	}

	// RGB carries through where visible.
	c := out.GetPixel(10, 10)
	if c.R < 0.99 || c.G > 0.01 {
		t.Errorf("expected red subject pixel, got %+v", c)
	}
}

func TestCompositeSolidBackground(t *testing.T) {
	subject := opaqueSubject(16, 16)
	mask := NewMask(16, 16) // fully masked out

	out := Composite(subject, mask, SolidBackground(RGBA{R: 0, G: 0, B: 1, A: 1}), OutlineConfig{}, ShadowConfig{})

	c := out.GetPixel(8, 8)
	if c.B < 0.99 || c.A < 0.99 {
		t.Errorf("expected blue background, got %+v", c)
	}
}

func TestCompositeSubjectOverBackground(t *testing.T) {
	subject := opaqueSubject(16, 16)
	mask := NewMask(16, 16)
	mask.Fill(255)

	out := Composite(subject, mask, SolidBackground(RGBA{R: 0, G: 0, B: 1, A: 1}), OutlineConfig{}, ShadowConfig{})

	c := out.GetPixel(8, 8)
	if c.R < 0.99 || c.B > 0.01 {
		t.Errorf("subject must cover the background, got %+v", c)
	}
}

// squareScene returns an opaque subject and a mask that is opaque only on
// the square [min,max) on both axes.
func squareScene(size, min, max int) (*Pixmap, *Mask) {
	subject := opaqueSubject(size, size)
	mask := NewMask(size, size)
	for y := min; y < max; y++ {
		for x := min; x < max; x++ {
			mask.Set(x, y, 255)
		}
	}
	return subject, mask
}

func TestCompositeOutlinePass(t *testing.T) {
	subject, mask := squareScene(64, 20, 44)
	outline := OutlineConfig{Color: White, Width: 3}

	out := Composite(subject, mask, TransparentBackground(), outline, ShadowConfig{})

	// Just left of the square: covered by the (-3, 0) offset copy.
	c := out.GetPixel(18, 32)
	if c.A < 0.99 || c.R < 0.99 || c.G < 0.99 || c.B < 0.99 {
		t.Errorf("expected white outline left of subject, got %+v", c)
	}

	// Inside the square the subject pass wins.
	c = out.GetPixel(32, 32)
	if c.R < 0.99 || c.G > 0.01 {
		t.Errorf("expected subject over outline, got %+v", c)
	}

	// Far outside stays transparent.
	if got := out.AlphaAt(5, 5); got != 0 {
		t.Errorf("expected transparent corner, got alpha %d", got)
	}

	// Diagonal corner gap: the 4-direction approximation leaves the
	// diagonal at (min-2, min-2) uncovered.
	if got := out.AlphaAt(18, 18); got != 0 {
		t.Errorf("expected corner gap in 4-direction outline, got alpha %d", got)
	}
}

func TestCompositeOutlineDisabled(t *testing.T) {
	subject, mask := squareScene(32, 10, 20)

	out := Composite(subject, mask, TransparentBackground(), OutlineConfig{Color: White, Width: 0}, ShadowConfig{})

	if got := out.AlphaAt(8, 15); got != 0 {
		t.Errorf("width 0 must disable the outline pass, got alpha %d", got)
	}
}

func TestCompositeShadowOffset(t *testing.T) {
	subject, mask := squareScene(64, 10, 30)
	shadow := ShadowConfig{OffsetX: 6, OffsetY: 6}

	out := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, shadow)

	// (33, 33) is outside the square but inside its +6 offset copy.
	c := out.GetPixel(33, 33)
	if c.A < 0.4 || c.A > 0.6 {
		t.Errorf("expected half-opaque shadow, got alpha %f", c.A)
	}
	if c.R > 0.05 && c.A > 0 {
		t.Errorf("expected dark shadow tint, got %+v", c)
	}

	// Inside the square the subject covers the shadow.
	c = out.GetPixel(20, 20)
	if c.R < 0.99 || c.A < 0.99 {
		t.Errorf("expected subject over shadow, got %+v", c)
	}
}

func TestCompositeShadowBlurSpreads(t *testing.T) {
	subject, mask := squareScene(64, 20, 40)

	sharp := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, ShadowConfig{OffsetX: 4, OffsetY: 4})
	soft := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, ShadowConfig{OffsetX: 4, OffsetY: 4, Blur: 3})

	// Well outside the sharp shadow's reach, blur must have spread some
	// coverage.
	x, y := 48, 30
	if sharp.AlphaAt(x, y) != 0 {
		t.Fatalf("expected no sharp shadow at probe, got %d", sharp.AlphaAt(x, y))
	}
	if soft.AlphaAt(x, y) == 0 {
		t.Error("expected blurred shadow to spread past the sharp edge")
	}
}

func TestCompositeShadowDisabled(t *testing.T) {
	subject, mask := squareScene(32, 10, 20)

	out := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, ShadowConfig{})

	if got := out.AlphaAt(25, 25); got != 0 {
		t.Errorf("all-zero shadow config must disable the pass, got alpha %d", got)
	}
}

func TestCompositeImageBackgroundLetterbox(t *testing.T) {
	subject := opaqueSubject(40, 40)
	mask := NewMask(40, 40) // subject fully masked out

	// A 2:1 green background into a square canvas: letterbox bars above
	// and below, image rows in the middle.
	bg := image.NewNRGBA(image.Rect(0, 0, 80, 40))
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i+1] = 255
		bg.Pix[i+3] = 255
	}

	out := Composite(subject, mask, ImageBackground(bg), OutlineConfig{}, ShadowConfig{})

	// Center row is image content.
	c := out.GetPixel(20, 20)
	if c.G < 0.9 || c.A < 0.9 {
		t.Errorf("expected green background at center, got %+v", c)
	}

	// Top letterbox bar stays transparent.
	if got := out.AlphaAt(20, 2); got != 0 {
		t.Errorf("expected transparent letterbox bar, got alpha %d", got)
	}
}

func TestCompositeDimensions(t *testing.T) {
	subject := opaqueSubject(33, 21)
	mask := NewMask(33, 21)

	out := Composite(subject, mask, TransparentBackground(), OutlineConfig{}, ShadowConfig{})
	if out.Width() != 33 || out.Height() != 21 {
		t.Errorf("expected 33x21 output, got %dx%d", out.Width(), out.Height())
	}
}

func TestCompositeDoesNotMutateSubject(t *testing.T) {
	subject := opaqueSubject(16, 16)
	mask := NewMask(16, 16)
	mask.Fill(100)

	before := append([]uint8(nil), subject.Data()...)
	_ = Composite(subject, mask, SolidBackground(White), OutlineConfig{Color: Black, Width: 2}, ShadowConfig{OffsetX: 2, OffsetY: 2, Blur: 1})

	for i, b := range subject.Data() {
		if before[i] != b {
			t.Fatalf("subject mutated at byte %d", i)
		}
	}
}

// sanity for the image-interface path used by background decode
func TestCompositeBackgroundFromDecodedImage(t *testing.T) {
	subject := opaqueSubject(8, 8)
	mask := NewMask(8, 8)

	bg := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	bg.SetNRGBA(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out := Composite(subject, mask, ImageBackground(bg), OutlineConfig{}, ShadowConfig{})
	if out.Width() != 8 {
		t.Fatalf("unexpected output width %d", out.Width())
	}
}
