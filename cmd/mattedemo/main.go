// Command mattedemo exercises the matte editing session from the command
// line: it loads a subject image and its segmentation mask, replays brush
// strokes given as flags, applies background/outline/shadow settings, and
// writes the export composite.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	"github.com/gogpu/matte"
)

func main() {
	var (
		subject      = flag.String("subject", "subject.png", "subject image file")
		mask         = flag.String("mask", "mask.png", "baseline mask file (alpha channel)")
		output       = flag.String("output", "cutout.png", "output file")
		bgColor      = flag.String("bg", "", "solid background color (hex), empty for transparent")
		bgImage      = flag.String("bg-image", "", "background image file")
		outlineWidth = flag.Float64("outline", 0, "outline width in pixels, 0 disables")
		outlineColor = flag.String("outline-color", "#FFFFFF", "outline color (hex)")
		shadowBlur   = flag.Float64("shadow-blur", 0, "shadow blur radius")
		shadowDX     = flag.Float64("shadow-dx", 0, "shadow X offset")
		shadowDY     = flag.Float64("shadow-dy", 0, "shadow Y offset")
		brushSize    = flag.Float64("brush", 40, "brush size in pixels")
		erase        = flag.String("erase", "", "erase stroke as x,y;x,y;... canvas coordinates")
		restore      = flag.String("restore", "", "restore stroke as x,y;x,y;... canvas coordinates")
		preview      = flag.Int("preview", 0, "also write a preview with longest edge <= N")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		matte.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []matte.SessionOption{
		matte.WithBrush(matte.Erase, *brushSize),
	}
	if *bgColor != "" {
		opts = append(opts, matte.WithBackground(matte.SolidBackground(matte.Hex(*bgColor))))
	}
	if *outlineWidth > 0 {
		opts = append(opts, matte.WithOutline(matte.OutlineConfig{
			Color: matte.Hex(*outlineColor),
			Width: *outlineWidth,
		}))
	}
	if *shadowBlur > 0 || *shadowDX != 0 || *shadowDY != 0 {
		opts = append(opts, matte.WithShadow(matte.ShadowConfig{
			Blur:    *shadowBlur,
			OffsetX: *shadowDX,
			OffsetY: *shadowDY,
		}))
	}

	s, err := matte.NewSession(matte.SourceFile(*subject), matte.SourceFile(*mask), opts...)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}

	if *bgImage != "" {
		if err := s.SetBackgroundImage(matte.SourceFile(*bgImage)); err != nil {
			log.Printf("Background skipped: %v", err)
		}
	}

	drawStroke(s, *erase, matte.Erase)
	drawStroke(s, *restore, matte.Restore)

	out := s.Save()
	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Cutout saved to %s (%dx%d, %d strokes)\n", *output, s.Width(), s.Height(), s.StrokeCount())

	if *preview > 0 {
		if err := savePreview(out, *preview, previewPath(*output)); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}
}

// drawStroke replays a semicolon-separated coordinate list as one gesture.
// Coordinates are canvas-space, so the demo session keeps zoom at 1 with
// the canvas origin at (0, 0).
func drawStroke(s *matte.Session, coords string, mode matte.BrushMode) {
	if coords == "" {
		return
	}
	pts := parsePoints(coords)
	if len(pts) == 0 {
		return
	}

	s.SetBrushMode(mode)
	s.PointerDown(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.PointerMove(p.X, p.Y)
	}
	s.PointerUp()
}

func parsePoints(coords string) []matte.Point {
	var pts []matte.Point
	for _, pair := range strings.Split(coords, ";") {
		xy := strings.Split(strings.TrimSpace(pair), ",")
		if len(xy) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, matte.Pt(x, y))
	}
	return pts
}

// savePreview writes a Lanczos-downscaled copy with the longest edge
// capped at maxSize.
func savePreview(pm *matte.Pixmap, maxSize int, path string) error {
	img := pm.ToImage()
	w, h := pm.Width(), pm.Height()

	if w > maxSize || h > maxSize {
		var nw, nh uint
		if w >= h {
			nw = uint(maxSize)
		} else {
			nh = uint(maxSize)
		}
		small := resize.Resize(nw, nh, img, resize.Lanczos3)

		f, err := os.Create(path) //nolint:gosec // path derives from the output flag
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		return png.Encode(f, small)
	}

	return pm.SavePNG(path)
}

func previewPath(output string) string {
	if i := strings.LastIndex(output, "."); i > 0 {
		return output[:i] + "_preview" + output[i:]
	}
	return output + "_preview.png"
}
