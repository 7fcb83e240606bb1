package plane

import "math"

// Complex is a point on the complex plane. Values are immutable; every
// operation returns a new Complex.
type Complex struct {
	Re, Im float64
}

func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Complex) Square() Complex {
	return Complex{
		Re: a.Re*a.Re - a.Im*a.Im,
		Im: 2 * a.Re * a.Im,
	}
}

// Scale multiplies both components by the real number k.
func (a Complex) Scale(k float64) Complex {
	return Complex{Re: a.Re * k, Im: a.Im * k}
}

// Abs is the magnitude of a.
func (a Complex) Abs() float64 {
	return math.Sqrt(a.Re*a.Re + a.Im*a.Im)
}

func (a Complex) Complex128() complex128 {
	return complex(a.Re, a.Im)
}
