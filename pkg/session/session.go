// Package session drives incremental rendering of the Mandelbrot set.
//
// A Session draws one scanline per call to AdvanceOneRow so a host can interleave rendering
// with input handling on a single thread. Sessions are not safe for concurrent use.
package session

import (
	"log/slog"

	"github.com/willbeason/mandelzoom/pkg/palette"
	"github.com/willbeason/mandelzoom/pkg/plane"
	"github.com/willbeason/mandelzoom/pkg/transforms"
)

// DefaultZoomFactor shrinks the viewport 10x per click.
const DefaultZoomFactor = 0.1

// Surface receives one color directive per rendered pixel.
// Hue is in degrees; saturation and brightness are in [0, 1].
type Surface interface {
	SetPixelColor(x, y int, hue, saturation, brightness float64)
}

// Params are the constants a Session starts from.
type Params struct {
	CenterReal     float64
	CenterImag     float64
	HalfRange      float64
	IterationBound int

	// ZoomFactor scales the viewport on each zoom. Zero means DefaultZoomFactor.
	ZoomFactor float64
	// HueRange is the hue span in degrees escape times are spread over.
	// Zero means palette.DefaultHueRange.
	HueRange   float64
}

// ScanCursor tracks the next row to draw. Row == Height means the viewport is fully rendered.
type ScanCursor struct {
	Row    int
	Width  int
	Height int
}

func (c ScanCursor) Done() bool {
	return c.Row >= c.Height
}

type Session struct {
	viewport plane.Viewport
	cursor   ScanCursor
	surface  Surface

	zoomFactor float64
	hueRange   float64

	logger *slog.Logger
}

type Option func(*Session)

// WithLogger sets the logger zooms and resets are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New initializes a Session over a width x height surface. Both dimensions and p.HalfRange
// must be positive and p.IterationBound must be at least 1.
func New(p Params, surface Surface, width, height int, opts ...Option) *Session {
	s := &Session{
		surface:    surface,
		zoomFactor: p.ZoomFactor,
		hueRange:   p.HueRange,
		logger:     slog.Default(),
	}
	if s.zoomFactor == 0 {
		s.zoomFactor = DefaultZoomFactor
	}
	if s.hueRange == 0 {
		s.hueRange = palette.DefaultHueRange
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Initialize(p.CenterReal, p.CenterImag, p.HalfRange, p.IterationBound, width, height)

	return s
}

// Initialize replaces the viewport and restarts the scan from the top.
func (s *Session) Initialize(centerReal, centerImag, halfRange float64, bound, width, height int) {
	s.viewport = plane.NewViewport(plane.Complex{Re: centerReal, Im: centerImag}, halfRange, bound, width, height)
	s.cursor = ScanCursor{Width: width, Height: height}
	s.logger.Debug("initialized", "session", s)
}

// AdvanceOneRow draws the next row of the viewport to the surface.
// It returns true while rows remain. Once the viewport is complete, calls draw nothing and
// return false until Reset.
func (s *Session) AdvanceOneRow() bool {
	if s.cursor.Done() {
		return false
	}

	y := s.cursor.Row
	w, h := s.cursor.Width, s.cursor.Height
	m := transforms.Mandelbrot{Bound: s.viewport.IterationBound}

	for x := 0; x < w; x++ {
		c := s.viewport.PixelToComplex(x, y, w, h)
		shade := palette.Shade(m.Escape(c), m.Bound, s.hueRange)
		s.surface.SetPixelColor(x, y, shade.Hue, shade.Saturation, shade.Brightness)
	}

	s.cursor.Row++
	if s.cursor.Done() {
		s.logger.Info("render complete", "session", s)
	}

	return !s.cursor.Done()
}

// ZoomTo re-centers on the normalized surface position (nx, ny), shrinks the viewport by the
// zoom factor, doubles the iteration bound and restarts the scan.
func (s *Session) ZoomTo(nx, ny float64) {
	target := s.viewport.NormalizedToComplex(nx, ny)
	s.viewport = s.viewport.Zoom(target, s.zoomFactor)
	s.logger.Debug("zoomed", "x", nx, "y", ny, "viewport", s.viewport)
	s.Reset()
}

// Reset restarts the scan from the top row with the current viewport.
func (s *Session) Reset() {
	s.cursor.Row = 0
}

// Resize adapts the session to new surface dimensions. The center, imaginary half extent and
// iteration bound are kept; the real half extent follows the new aspect ratio.
func (s *Session) Resize(width, height int) {
	s.viewport = plane.NewViewport(s.viewport.Center, s.viewport.HalfExtent.Im, s.viewport.IterationBound, width, height)
	s.cursor = ScanCursor{Width: width, Height: height}
	s.logger.Debug("resized", "width", width, "height", height)
}

func (s *Session) Viewport() plane.Viewport {
	return s.viewport
}

func (s *Session) Cursor() ScanCursor {
	return s.cursor
}

// Row is the next row AdvanceOneRow will draw.
func (s *Session) Row() int {
	return s.cursor.Row
}

func (s *Session) Done() bool {
	return s.cursor.Done()
}

func (s *Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("viewport", s.viewport),
		slog.Int("row", s.cursor.Row),
		slog.Int("width", s.cursor.Width),
		slog.Int("height", s.cursor.Height),
	)
}

var _ slog.LogValuer = (*Session)(nil)
