package transforms

import (
	"math"

	"github.com/willbeason/mandelzoom/pkg/plane"
)

// EscapeRadius is the magnitude past which an orbit is known to diverge.
const EscapeRadius = 2.0

// Mandelbrot iterates z -> z^2 + c.
type Mandelbrot struct {
	// Bound is the number of iterations after which c is assumed to be in the set.
	// Must be at least 1.
	Bound int
}

func (m Mandelbrot) Next(z, c plane.Complex) plane.Complex {
	return z.Square().Add(c)
}

// Escape returns the continuous escape time of c.
//
// Points whose orbit stays within EscapeRadius for Bound iterations return exactly Bound.
// Otherwise the result is m + 1 - log(log2|z|), where m is the number of iterations taken
// and z is the first orbit value with |z| >= EscapeRadius. An orbit landing exactly on the
// escape radius counts as escaped.
func (m Mandelbrot) Escape(c plane.Complex) float64 {
	z := plane.Complex{}
	iterations := 0

	for iterations < m.Bound && z.Abs() < EscapeRadius {
		z = m.Next(z, c)
		iterations++
	}

	if iterations >= m.Bound {
		return float64(m.Bound)
	}

	return float64(iterations) + 1.0 - math.Log(Log2(z.Abs()))
}

// Log2 is the base 2 logarithm computed as ln(n)/ln(2).
func Log2(n float64) float64 {
	return math.Log(n) / math.Ln2
}
