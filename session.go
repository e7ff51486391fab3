package matte

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

// SessionState is the lifecycle state of a Session.
type SessionState uint8

const (
	// StateLoading is the initial state while the subject and baseline
	// mask sources decode. All input is rejected.
	StateLoading SessionState = iota

	// StateReady is the idle editing state: pointer-down, undo/redo and
	// configuration changes are accepted.
	StateReady

	// StateDrawing is active while a pointer gesture is in progress.
	StateDrawing

	// StateErrored is terminal: a required source failed to decode.
	StateErrored

	// StateClosed is terminal: the session was canceled.
	StateClosed
)

// String returns the state name for logging.
func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDrawing:
		return "drawing"
	case StateErrored:
		return "errored"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is the interactive mask-editing session. It owns the subject
// image, the baseline mask, the stroke history, and all compositing
// configuration, and drives the redraw pipeline.
//
// A Session is single-threaded by construction: it is owned by one
// event loop and performs no internal locking after construction. The
// edited mask is always a pure function of the baseline mask and the
// committed stroke sequence.
type Session struct {
	id    string
	state SessionState
	err   error

	subject  *Pixmap
	baseline *Mask

	history  History
	builder  StrokeBuilder
	viewport Viewport
	brush    Brush

	background BackgroundConfig
	outline    OutlineConfig
	shadow     ShadowConfig

	// mask and output are rebuilt by recompose after every history or
	// configuration change. output never contains the live preview.
	mask   *Mask
	output *Pixmap
}

// NewSession decodes the subject and baseline mask sources and returns a
// ready session. The two decodes run concurrently and both join before
// the constructor returns; there is no partial state.
//
// On decode failure the returned session is in StateErrored with the
// cause available from Err, and the same error is returned. A subject
// and mask with different pixel dimensions is a precondition violation
// and fails the same way with ErrDimensionMismatch.
func NewSession(subject, mask ImageSource, opts ...SessionOption) (*Session, error) {
	s := &Session{
		id:         ksuid.New().String(),
		state:      StateLoading,
		viewport:   NewViewport(0, 0, 1),
		brush:      DefaultBrush,
		background: TransparentBackground(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var (
		wg               sync.WaitGroup
		subjImg, maskImg image.Image
		subjErr, maskErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		subjImg, subjErr = subject.decode()
	}()
	go func() {
		defer wg.Done()
		maskImg, maskErr = mask.decode()
	}()
	wg.Wait()

	if subjErr != nil {
		return s.fail(fmt.Errorf("%w: subject: %w", ErrDecodeFailed, subjErr))
	}
	if maskErr != nil {
		return s.fail(fmt.Errorf("%w: mask: %w", ErrDecodeFailed, maskErr))
	}

	sb, mb := subjImg.Bounds(), maskImg.Bounds()
	if sb.Dx() != mb.Dx() || sb.Dy() != mb.Dy() {
		return s.fail(fmt.Errorf("%w: subject %dx%d, mask %dx%d",
			ErrDimensionMismatch, sb.Dx(), sb.Dy(), mb.Dx(), mb.Dy()))
	}

	s.subject = PixmapFromImage(subjImg)
	s.baseline = MaskFromAlpha(maskImg)
	s.state = StateReady
	s.recompose()

	Logger().Info("matte: session ready",
		"session", s.id, "width", s.subject.Width(), "height", s.subject.Height())
	return s, nil
}

// fail moves the session to the terminal error state.
func (s *Session) fail(err error) (*Session, error) {
	s.state = StateErrored
	s.err = err
	Logger().Warn("matte: session failed", "session", s.id, "err", err)
	return s, err
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Err returns the error that moved the session to StateErrored, if any.
func (s *Session) Err() error { return s.err }

// Width returns the canvas width in pixels, or 0 before Ready.
func (s *Session) Width() int {
	if s.subject == nil {
		return 0
	}
	return s.subject.Width()
}

// Height returns the canvas height in pixels, or 0 before Ready.
func (s *Session) Height() int {
	if s.subject == nil {
		return 0
	}
	return s.subject.Height()
}

// PointerDown begins a stroke gesture at a screen position.
// Ignored unless the session is Ready.
func (s *Session) PointerDown(screenX, screenY float64) {
	if s.state != StateReady {
		return
	}
	s.state = StateDrawing
	s.builder.Begin(s.viewport.Map(screenX, screenY))
}

// PointerMove extends the active gesture with a screen position.
// Ignored unless a gesture is in progress.
func (s *Session) PointerMove(screenX, screenY float64) {
	if s.state != StateDrawing {
		return
	}
	s.builder.Extend(s.viewport.Map(screenX, screenY))
}

// PointerUp ends the active gesture. If the gesture produced a stroke it
// is committed to history, which clears the redo stack and triggers a
// full recomposite. Ignored unless a gesture is in progress.
func (s *Session) PointerUp() {
	if s.state != StateDrawing {
		return
	}
	s.state = StateReady

	stroke, ok := s.builder.End(s.brush.Mode, s.brush.Size)
	if !ok {
		return
	}
	s.history.Commit(stroke)
	Logger().Debug("matte: stroke committed",
		"session", s.id, "mode", stroke.Mode, "points", len(stroke.Points), "size", stroke.Radius)
	s.recompose()
}

// PointerCancel is treated identically to PointerUp: a pointer leaving
// the canvas commits whatever the gesture accumulated.
func (s *Session) PointerCancel() {
	s.PointerUp()
}

// Undo moves the most recent stroke to the redo stack and recomposites.
// Returns false when there is nothing to undo or the session is not Ready.
func (s *Session) Undo() bool {
	if s.state != StateReady || !s.history.Undo() {
		return false
	}
	s.recompose()
	return true
}

// Redo reapplies the most recently undone stroke and recomposites.
// Returns false when there is nothing to redo or the session is not Ready.
func (s *Session) Redo() bool {
	if s.state != StateReady || !s.history.Redo() {
		return false
	}
	s.recompose()
	return true
}

// StrokeCount returns the number of committed strokes.
func (s *Session) StrokeCount() int { return s.history.Len() }

// CanUndo reports whether Undo would succeed in the Ready state.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would succeed in the Ready state.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// SetBrushMode sets the brush mode for subsequent strokes.
func (s *Session) SetBrushMode(mode BrushMode) {
	s.brush.Mode = mode
}

// SetBrushSize sets the brush size for subsequent strokes.
// Sizes <= 0 are ignored.
func (s *Session) SetBrushSize(size float64) {
	if size > 0 {
		s.brush.Size = size
	}
}

// Brush returns the active brush settings.
func (s *Session) Brush() Brush { return s.brush }

// SetZoom sets the on-screen zoom factor. Zoom never mutates stroke
// data; committed strokes stay in canvas space. Values <= 0 are ignored.
func (s *Session) SetZoom(zoom float64) {
	if zoom > 0 {
		s.viewport.Zoom = zoom
	}
}

// SetViewport replaces the screen-to-canvas mapping.
func (s *Session) SetViewport(v Viewport) {
	if v.Zoom <= 0 {
		v.Zoom = 1
	}
	s.viewport = v
}

// Viewport returns the current screen-to-canvas mapping.
func (s *Session) Viewport() Viewport { return s.viewport }

// SetBackgroundColor switches to a solid color background.
// Ignored unless the session is Ready.
func (s *Session) SetBackgroundColor(c RGBA) {
	if s.state != StateReady {
		return
	}
	s.background = SolidBackground(c)
	s.recompose()
}

// SetBackgroundImage decodes src and switches to an image background.
//
// A decode failure is recoverable: the prior background configuration is
// left untouched and the wrapped ErrBackgroundDecode is returned for the
// caller to surface as a transient notice.
func (s *Session) SetBackgroundImage(src ImageSource) error {
	if s.state != StateReady {
		return nil
	}
	img, err := src.decode()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrBackgroundDecode, err)
		Logger().Warn("matte: background decode failed", "session", s.id, "err", err)
		return err
	}
	s.background = ImageBackground(img)
	s.recompose()
	return nil
}

// ClearBackground switches back to the transparent background.
// Ignored unless the session is Ready.
func (s *Session) ClearBackground() {
	if s.state != StateReady {
		return
	}
	s.background = TransparentBackground()
	s.recompose()
}

// SetOutline replaces the outline configuration.
// Ignored unless the session is Ready.
func (s *Session) SetOutline(o OutlineConfig) {
	if s.state != StateReady {
		return
	}
	s.outline = o
	s.recompose()
}

// SetShadow replaces the shadow configuration.
// Ignored unless the session is Ready.
func (s *Session) SetShadow(sh ShadowConfig) {
	if s.state != StateReady {
		return
	}
	s.shadow = sh
	s.recompose()
}

// Mask returns the current edited mask: the baseline with all committed
// strokes replayed. The returned mask is owned by the session; callers
// must not mutate it.
func (s *Session) Mask() *Mask { return s.mask }

// Render returns the visible composite.
//
// While a gesture is in progress the in-progress points are overlaid
// through the same stamp path as committed replay, without touching
// history: the preview is rebuilt from scratch on every call and
// discarded. In every other state Render returns the current composite.
func (s *Session) Render() *Pixmap {
	if s.state == StateDrawing && len(s.builder.Points()) > 0 {
		preview := s.mask.Clone()
		applyStroke(preview, Stroke{
			Points: s.builder.Points(),
			Mode:   s.brush.Mode,
			Radius: s.brush.Size,
		})
		return Composite(s.subject, preview, s.background, s.outline, s.shadow)
	}
	return s.output
}

// Save produces the export composite: background and subject flattened
// into one raster with no interactive overlay. A gesture in progress is
// not included. Returns nil unless the session reached Ready.
func (s *Session) Save() *Pixmap {
	if s.output == nil {
		return nil
	}
	return s.output.Clone()
}

// Cancel discards the session without producing output.
// All further input is rejected.
func (s *Session) Cancel() {
	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	s.subject = nil
	s.baseline = nil
	s.mask = nil
	s.output = nil
	Logger().Info("matte: session canceled", "session", s.id)
}

// recompose rebuilds the edited mask from the baseline plus committed
// strokes, then reruns the layer passes. Called synchronously after
// every mutating operation; there is no implicit dependency tracking.
func (s *Session) recompose() {
	start := time.Now()
	s.mask = RenderMask(s.baseline, s.history.Strokes())
	s.output = Composite(s.subject, s.mask, s.background, s.outline, s.shadow)
	Logger().Debug("matte: recomposite",
		"session", s.id, "strokes", s.history.Len(), "elapsed", time.Since(start))
}
