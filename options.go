package matte

// SessionOption configures a Session during creation.
//
// Example:
//
//	// Default brush and transparent background
//	s, err := matte.NewSession(subjectSrc, maskSrc)
//
//	// Restore brush over a white background
//	s, err := matte.NewSession(subjectSrc, maskSrc,
//	    matte.WithBrush(matte.Restore, 24),
//	    matte.WithBackground(matte.SolidBackground(matte.White)),
//	)
type SessionOption func(*Session)

// WithBrush sets the initial brush mode and size.
// A size <= 0 keeps the default.
func WithBrush(mode BrushMode, size float64) SessionOption {
	return func(s *Session) {
		s.brush.Mode = mode
		if size > 0 {
			s.brush.Size = size
		}
	}
}

// WithViewport sets the initial screen-to-canvas mapping.
func WithViewport(v Viewport) SessionOption {
	return func(s *Session) {
		if v.Zoom <= 0 {
			v.Zoom = 1
		}
		s.viewport = v
	}
}

// WithZoom sets the initial zoom factor, keeping the origin at (0, 0).
func WithZoom(zoom float64) SessionOption {
	return func(s *Session) {
		if zoom > 0 {
			s.viewport.Zoom = zoom
		}
	}
}

// WithBackground sets the initial background configuration.
func WithBackground(bg BackgroundConfig) SessionOption {
	return func(s *Session) {
		s.background = bg
	}
}

// WithOutline sets the initial outline configuration.
func WithOutline(o OutlineConfig) SessionOption {
	return func(s *Session) {
		s.outline = o
	}
}

// WithShadow sets the initial shadow configuration.
func WithShadow(sh ShadowConfig) SessionOption {
	return func(s *Session) {
		s.shadow = sh
	}
}

// WithID overrides the generated session identifier.
// Useful when the surrounding application already tracks its own IDs.
func WithID(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}
