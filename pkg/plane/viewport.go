package plane

import "log/slog"

// A Viewport is the region of the complex plane shown on a surface.
//
// HalfExtent is the distance from Center to the right edge (Re) and to the top edge (Im).
// The real half extent is aspect-corrected so the set is not stretched on non-square surfaces.
type Viewport struct {
	Center     Complex
	HalfExtent Complex

	// IterationBound is the number of iterations after which a point is assumed to be in the set.
	IterationBound int
}

// NewViewport builds a Viewport whose imaginary half extent is halfRange and whose real half
// extent is stretched by width/height.
func NewViewport(center Complex, halfRange float64, bound, width, height int) Viewport {
	return Viewport{
		Center:         center,
		HalfExtent:     Complex{Re: halfRange * float64(width) / float64(height), Im: halfRange},
		IterationBound: bound,
	}
}

// Lerp maps n from [start1, stop1] onto [start2, stop2].
// Values outside [start1, stop1] extrapolate linearly.
func Lerp(n, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((n-start1)/(stop1-start1))
}

// Real returns the real coordinate at fraction t of the way from the left edge to the right edge.
func (v Viewport) Real(t float64) float64 {
	return Lerp(t, 0, 1, v.Center.Re-v.HalfExtent.Re, v.Center.Re+v.HalfExtent.Re)
}

// Imag returns the imaginary coordinate at fraction t of the way from the top edge to the bottom edge.
// Rows grow downward while the imaginary axis grows upward.
func (v Viewport) Imag(t float64) float64 {
	return Lerp(t, 0, 1, v.Center.Im+v.HalfExtent.Im, v.Center.Im-v.HalfExtent.Im)
}

// PixelToComplex maps the pixel (px, py) of a width x height surface with a top-left origin
// to the complex plane. Pixels outside the surface extrapolate; (width, height) maps to the
// bottom-right corner of the viewport.
func (v Viewport) PixelToComplex(px, py, width, height int) Complex {
	return Complex{
		Re: Lerp(float64(px), 0, float64(width), v.Center.Re-v.HalfExtent.Re, v.Center.Re+v.HalfExtent.Re),
		Im: Lerp(float64(py), 0, float64(height), v.Center.Im+v.HalfExtent.Im, v.Center.Im-v.HalfExtent.Im),
	}
}

// NormalizedToComplex maps a position in [0,1]x[0,1], measured from the top-left corner,
// to the complex plane.
func (v Viewport) NormalizedToComplex(nx, ny float64) Complex {
	return Complex{Re: v.Real(nx), Im: v.Imag(ny)}
}

// Zoom returns a Viewport centered on target with both half extents multiplied by factor
// and the iteration bound doubled.
func (v Viewport) Zoom(target Complex, factor float64) Viewport {
	return Viewport{
		Center:         target,
		HalfExtent:     v.HalfExtent.Scale(factor),
		IterationBound: v.IterationBound * 2,
	}
}

func (v Viewport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("center_re", v.Center.Re),
		slog.Float64("center_im", v.Center.Im),
		slog.Float64("range_re", v.HalfExtent.Re),
		slog.Float64("range_im", v.HalfExtent.Im),
		slog.Int("bound", v.IterationBound),
	)
}

var _ slog.LogValuer = Viewport{}
