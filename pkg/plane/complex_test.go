package plane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCommutes(t *testing.T) {
	values := []Complex{
		{},
		{Re: 1, Im: 0},
		{Re: -0.75, Im: 0.1},
		{Re: 3.5, Im: -2.25},
		{Re: 1e-12, Im: 1e12},
	}

	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, a.Add(b), b.Add(a), "%v + %v", a, b)
		}
	}
}

func TestSquare(t *testing.T) {
	tcs := []struct {
		name string
		in   Complex
		want Complex
	}{
		{name: "zero", in: Complex{}, want: Complex{}},
		{name: "one", in: Complex{Re: 1}, want: Complex{Re: 1}},
		{name: "i", in: Complex{Im: 1}, want: Complex{Re: -1}},
		{name: "1+i", in: Complex{Re: 1, Im: 1}, want: Complex{Re: 0, Im: 2}},
		{name: "-2+3i", in: Complex{Re: -2, Im: 3}, want: Complex{Re: -5, Im: -12}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Square()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in.Complex128()*tc.in.Complex128(), got.Complex128())
		})
	}
}

func TestScale(t *testing.T) {
	a := Complex{Re: 3, Im: -4}

	assert.Equal(t, Complex{Re: 0.30000000000000004, Im: -0.4}, a.Scale(0.1))
	assert.Equal(t, Complex{Re: 6, Im: -8}, a.Scale(2))
	assert.Equal(t, Complex{Re: 3, Im: -4}, a, "Scale must not modify its receiver")
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 0.0, Complex{}.Abs())
	assert.Equal(t, 5.0, Complex{Re: 3, Im: -4}.Abs())
	assert.Equal(t, 2.0, Complex{Re: -2}.Abs())

	for _, a := range []Complex{{Re: -1, Im: -1}, {Re: 1e-300}, {Im: -7}} {
		assert.GreaterOrEqual(t, a.Abs(), 0.0)
	}
}
