package matte

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/matte/internal/blend"
	"github.com/gogpu/matte/internal/filter"
)

// Composite produces the final raster from the subject, the edited mask,
// and the background/outline/shadow configuration.
//
// Pass order is fixed, later passes drawn on top of earlier ones:
//
//  1. Silhouette: subject restricted to the mask (destination-in).
//  2. Background: solid fill, letterboxed image, or transparent.
//  3. Shadow: blurred, tinted silhouette alpha, offset, under the subject.
//  4. Outline: silhouette redrawn in the outline color at four offsets.
//  5. Subject: the silhouette itself, unmodified.
//
// The output has the same dimensions as the subject. Inputs are not
// mutated.
func Composite(subject *Pixmap, mask *Mask, bg BackgroundConfig, outline OutlineConfig, shadow ShadowConfig) *Pixmap {
	w, h := subject.Width(), subject.Height()

	sil := silhouette(subject, mask)
	out := NewPixmap(w, h)

	drawBackground(out, bg)

	if shadow.Enabled() {
		drawShadow(out, sil, shadow)
	}

	if outline.Enabled() {
		drawOutline(out, sil, outline)
	}

	drawPixmap(out, sil, 0, 0, blend.SourceOver)

	return out
}

// silhouette returns the subject masked by the edited mask:
// out.rgb = subject.rgb, out.a = subject.a * mask.a.
func silhouette(subject *Pixmap, mask *Mask) *Pixmap {
	out := subject.Clone()
	data := out.Data()
	mdata := mask.Data()

	for i, a := range mdata {
		data[i*4+3] = blend.MulDiv255(data[i*4+3], a)
	}
	return out
}

// drawBackground fills dst according to the background config.
// The transparent variant leaves dst untouched.
func drawBackground(dst *Pixmap, bg BackgroundConfig) {
	switch bg.Kind {
	case BackgroundColor:
		dst.Clear(bg.Color)
	case BackgroundImage:
		if bg.Image != nil {
			drawLetterboxed(dst, bg.Image)
		}
	case BackgroundTransparent:
	}
}

// drawLetterboxed scales img to fit inside dst preserving aspect ratio,
// centers it, and blits it. Catmull-Rom gives good quality for both up-
// and downscaling of photographic backgrounds.
func drawLetterboxed(dst *Pixmap, img image.Image) {
	w, h := dst.Width(), dst.Height()
	ib := img.Bounds()
	iw, ih := ib.Dx(), ib.Dy()
	if iw <= 0 || ih <= 0 {
		return
	}

	scale := math.Min(float64(w)/float64(iw), float64(h)/float64(ih))
	dw := int(math.Round(float64(iw) * scale))
	dh := int(math.Round(float64(ih) * scale))
	x0 := (w - dw) / 2
	y0 := (h - dh) / 2

	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(tmp, image.Rect(x0, y0, x0+dw, y0+dh), img, ib, xdraw.Over, nil)

	drawPixmap(dst, PixmapFromImage(tmp), 0, 0, blend.SourceOver)
}

// drawShadow extracts the silhouette's alpha channel displaced by the
// shadow offset, blurs it, tints it, and composites it onto dst.
func drawShadow(dst *Pixmap, sil *Pixmap, cfg ShadowConfig) {
	w, h := dst.Width(), dst.Height()
	offX := int(math.Round(cfg.OffsetX))
	offY := int(math.Round(cfg.OffsetY))

	// Extract alpha with the offset applied: the shadow at (x, y) comes
	// from the silhouette pixel at (x-offX, y-offY).
	alpha := make([]float32, w*h)
	sdata := sil.Data()
	for y := 0; y < h; y++ {
		srcY := y - offY
		if srcY < 0 || srcY >= h {
			continue
		}
		for x := 0; x < w; x++ {
			srcX := x - offX
			if srcX < 0 || srcX >= w {
				continue
			}
			alpha[y*w+x] = float32(sdata[(srcY*w+srcX)*4+3]) / 255
		}
	}

	filter.BlurAlpha(alpha, w, h, cfg.Blur)

	tint := cfg.tint()
	ddata := dst.Data()
	op := blend.GetFunc(blend.SourceOver)

	for i, a := range alpha {
		sa := float64(a) * tint.A
		if sa <= 0 {
			continue
		}

		// Shadow source pixel, premultiplied.
		psa := uint8(clamp255(sa * 255))
		psr := uint8(clamp255(tint.R * sa * 255))
		psg := uint8(clamp255(tint.G * sa * 255))
		psb := uint8(clamp255(tint.B * sa * 255))

		di := i * 4
		dr, dg, db, da := premul(ddata[di], ddata[di+1], ddata[di+2], ddata[di+3])
		r, g, b, ra := op(psr, psg, psb, psa, dr, dg, db, da)
		ddata[di], ddata[di+1], ddata[di+2], ddata[di+3] = unpremul(r, g, b, ra)
	}
}

// drawOutline approximates a morphological dilation by drawing the
// silhouette four times, recolored to the outline color with the
// silhouette's own alpha as stencil, offset along each axis.
func drawOutline(dst *Pixmap, sil *Pixmap, cfg OutlineConfig) {
	w, h := sil.Width(), sil.Height()
	off := int(math.Round(cfg.Width))
	if off < 1 {
		off = 1
	}

	// Recolor once, stamp four times.
	stencil := NewPixmap(w, h)
	sdata := sil.Data()
	tdata := stencil.Data()
	for i := 0; i < len(sdata); i += 4 {
		a := float64(sdata[i+3]) / 255 * cfg.Color.A
		tdata[i+0] = uint8(clamp255(cfg.Color.R * 255))
		tdata[i+1] = uint8(clamp255(cfg.Color.G * 255))
		tdata[i+2] = uint8(clamp255(cfg.Color.B * 255))
		tdata[i+3] = uint8(clamp255(a * 255))
	}

	offsets := [4][2]int{{off, 0}, {-off, 0}, {0, off}, {0, -off}}
	for _, o := range offsets {
		drawPixmap(dst, stencil, o[0], o[1], blend.SourceOver)
	}
}

// drawPixmap composites src onto dst at an integer offset using the given
// Porter-Duff mode. Pixels are premultiplied for the blend and converted
// back to straight alpha on write.
func drawPixmap(dst, src *Pixmap, offX, offY int, mode blend.Mode) {
	op := blend.GetFunc(mode)
	dw, dh := dst.Width(), dst.Height()
	sw, sh := src.Width(), src.Height()
	ddata := dst.Data()
	sdata := src.Data()

	for sy := 0; sy < sh; sy++ {
		dy := sy + offY
		if dy < 0 || dy >= dh {
			continue
		}
		for sx := 0; sx < sw; sx++ {
			dx := sx + offX
			if dx < 0 || dx >= dw {
				continue
			}

			si := (sy*sw + sx) * 4
			if sdata[si+3] == 0 && mode == blend.SourceOver {
				continue
			}

			di := (dy*dw + dx) * 4
			sr, sg, sb, sa := premul(sdata[si], sdata[si+1], sdata[si+2], sdata[si+3])
			dr, dg, db, da := premul(ddata[di], ddata[di+1], ddata[di+2], ddata[di+3])
			r, g, b, a := op(sr, sg, sb, sa, dr, dg, db, da)
			ddata[di], ddata[di+1], ddata[di+2], ddata[di+3] = unpremul(r, g, b, a)
		}
	}
}

// premul converts a straight-alpha pixel to premultiplied bytes.
func premul(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	if a == 255 {
		return r, g, b, a
	}
	return blend.MulDiv255(r, a), blend.MulDiv255(g, a), blend.MulDiv255(b, a), a
}

// unpremul converts premultiplied bytes back to straight alpha.
func unpremul(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	if a == 255 {
		return r, g, b, a
	}
	ur := uint8((uint16(r)*255 + uint16(a)/2) / uint16(a))
	ug := uint8((uint16(g)*255 + uint16(a)/2) / uint16(a))
	ub := uint8((uint16(b)*255 + uint16(a)/2) / uint16(a))
	return ur, ug, ub, a
}
