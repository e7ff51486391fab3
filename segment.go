package matte

import "image"

// Segmenter is the upstream collaborator that produces a baseline
// foreground/background segmentation for a subject image. How the
// segmentation is computed is opaque to this package; implementations
// typically call out to an inference service.
//
// The returned image's alpha channel is the segmentation: opaque where
// the subject is, transparent where the background is.
type Segmenter interface {
	Segment(img image.Image) (image.Image, error)
}

// MaskFromSegmenter runs the segmenter on a subject image and extracts
// the resulting alpha channel as a baseline mask.
func MaskFromSegmenter(s Segmenter, subject image.Image) (*Mask, error) {
	out, err := s.Segment(subject)
	if err != nil {
		return nil, err
	}
	return MaskFromAlpha(out), nil
}
