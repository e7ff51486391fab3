package matte

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(64, 48)
	if pm.Width() != 64 || pm.Height() != 48 {
		t.Errorf("expected 64x48, got %dx%d", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 64*48*4 {
		t.Errorf("expected %d bytes, got %d", 64*48*4, len(pm.Data()))
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 4, RGBA{R: 1, G: 0.5, B: 0, A: 1})

	c := pm.GetPixel(3, 4)
	if c.R != 1 || c.A != 1 {
		t.Errorf("unexpected pixel: %+v", c)
	}
	if c.G < 0.49 || c.G > 0.51 {
		t.Errorf("expected G ~0.5, got %f", c.G)
	}

	// Out of bounds
	if pm.GetPixel(-1, 0) != Transparent {
		t.Error("expected Transparent for out-of-bounds read")
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(RGBA{R: 0, G: 0, B: 1, A: 1})

	c := pm.GetPixel(7, 7)
	if c.B != 1 || c.A != 1 {
		t.Errorf("unexpected pixel after clear: %+v", c)
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(2, 2, White)

	clone := pm.Clone()
	clone.SetPixel(2, 2, Black)

	if pm.GetPixel(2, 2).R != 1 {
		t.Error("clone mutation leaked into original")
	}
}

func TestPixmapFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	pm := PixmapFromImage(img)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("expected 4x4, got %dx%d", pm.Width(), pm.Height())
	}

	i := (2*4 + 1) * 4
	if pm.Data()[i] != 200 || pm.Data()[i+1] != 100 || pm.Data()[i+2] != 50 {
		t.Errorf("unexpected pixel bytes: %v", pm.Data()[i:i+4])
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(4, 4)
	if pm.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("unexpected bounds: %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("expected NRGBA color model")
	}
}
