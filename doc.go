// Package matte implements an interactive cutout mask editor and compositor.
//
// # Overview
//
// matte takes an automatically generated foreground/background segmentation
// and lets an application refine it by hand: brush strokes erase or restore
// regions of the alpha mask, and the refined subject is composited against a
// configurable background with optional outline and shadow effects.
//
// The central object is the [Session]. It owns the subject image, the
// baseline mask produced by an upstream segmenter, the stroke history, and
// all compositing configuration. Pointer input flows through the session's
// [Viewport] into a [StrokeBuilder]; finished strokes are committed to a
// [History] and replayed over the baseline mask on every change.
//
// # Quick Start
//
//	import "github.com/gogpu/matte"
//
//	s, err := matte.NewSession(
//	    matte.SourceFile("subject.png"),
//	    matte.SourceFile("mask.png"),
//	    matte.WithBrush(matte.Erase, 40),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.PointerDown(120, 80)
//	s.PointerMove(140, 95)
//	s.PointerUp()
//
//	out := s.Save()
//	_ = out.SavePNG("cutout.png")
//
// # Determinism
//
// The rendered mask is a pure function of the baseline mask and the
// committed stroke sequence. Undo and redo move strokes between two stacks
// and trigger a full replay; no incremental mask state is ever kept. This
// bounds recomposite cost by total historical stroke complexity, a
// deliberate simplicity/performance tradeoff.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Stroke points are stored in canvas space, independent of on-screen zoom.
// Changing zoom never rewrites stroke data, only the screen mapping.
package matte

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
