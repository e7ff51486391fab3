package matte

import "image"

// BackgroundKind discriminates the mutually exclusive background variants.
type BackgroundKind uint8

const (
	// BackgroundTransparent leaves the canvas fully transparent.
	BackgroundTransparent BackgroundKind = iota

	// BackgroundColor fills the canvas with a solid color.
	BackgroundColor

	// BackgroundImage draws a raster image centered and letterboxed,
	// preserving its aspect ratio.
	BackgroundImage
)

// BackgroundConfig describes what the subject is composited against.
// The three variants are mutually exclusive; the constructors enforce it.
type BackgroundConfig struct {
	Kind  BackgroundKind
	Color RGBA
	Image image.Image
}

// TransparentBackground returns the default, fully transparent background.
func TransparentBackground() BackgroundConfig {
	return BackgroundConfig{Kind: BackgroundTransparent}
}

// SolidBackground returns a solid color background.
func SolidBackground(c RGBA) BackgroundConfig {
	return BackgroundConfig{Kind: BackgroundColor, Color: c}
}

// ImageBackground returns an image background.
// The image is drawn centered and letterboxed at composite time.
func ImageBackground(img image.Image) BackgroundConfig {
	return BackgroundConfig{Kind: BackgroundImage, Image: img}
}

// OutlineConfig describes the outline pass.
// Width 0 disables the pass.
//
// The outline is a 4-directional dilation approximation: the silhouette is
// redrawn in Color at offsets (±Width, 0) and (0, ±Width). Corners of the
// silhouette show gaps relative to a true disc dilation; this is an
// accepted approximation, not a defect.
type OutlineConfig struct {
	Color RGBA
	Width float64
}

// Enabled reports whether the outline pass runs.
func (o OutlineConfig) Enabled() bool {
	return o.Width > 0
}

// ShadowConfig describes the drop shadow pass.
// An all-zero config disables the pass.
type ShadowConfig struct {
	// Blur is the Gaussian blur radius applied to the shadow alpha.
	Blur float64

	// OffsetX and OffsetY displace the shadow from the subject.
	OffsetX float64
	OffsetY float64

	// Color tints the shadow. A zero-value color means
	// DefaultShadowColor (black at half opacity).
	Color RGBA
}

// Enabled reports whether the shadow pass runs.
func (s ShadowConfig) Enabled() bool {
	return s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// tint returns the effective shadow color.
func (s ShadowConfig) tint() RGBA {
	if s.Color == (RGBA{}) {
		return DefaultShadowColor
	}
	return s.Color
}
