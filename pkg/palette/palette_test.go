package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShade(t *testing.T) {
	tcs := []struct {
		name   string
		escape float64
		bound  int
		want   HSB
	}{
		{name: "in set", escape: 50, bound: 50, want: HSB{Hue: 255, Saturation: 1, Brightness: 0}},
		{name: "halfway", escape: 25, bound: 50, want: HSB{Hue: 127.5, Saturation: 1, Brightness: 1}},
		{name: "fast escape", escape: 1.5, bound: 100, want: HSB{Hue: 3.825, Saturation: 1, Brightness: 1}},
		{name: "just below bound", escape: 49.999, bound: 50, want: HSB{Hue: 254.99490000000003, Saturation: 1, Brightness: 1}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Shade(tc.escape, tc.bound, DefaultHueRange)
			assert.InDelta(t, tc.want.Hue, got.Hue, 1e-9)
			assert.Equal(t, tc.want.Saturation, got.Saturation)
			assert.Equal(t, tc.want.Brightness, got.Brightness)
		})
	}
}

func TestShadeHueRange(t *testing.T) {
	assert.Equal(t, 180.0, Shade(50, 100, 360).Hue)
}

func TestShadePropagatesNaN(t *testing.T) {
	got := Shade(math.NaN(), 50, DefaultHueRange)

	assert.True(t, math.IsNaN(got.Hue))
	// NaN is not below the bound, so the pixel is drawn as if in the set.
	assert.Equal(t, 0.0, got.Brightness)
}

func TestColor(t *testing.T) {
	tcs := []struct {
		name    string
		in      HSB
		r, g, b uint8
	}{
		{name: "red", in: HSB{Hue: 0, Saturation: 1, Brightness: 1}, r: 255},
		{name: "green", in: HSB{Hue: 120, Saturation: 1, Brightness: 1}, g: 255},
		{name: "blue", in: HSB{Hue: 240, Saturation: 1, Brightness: 1}, b: 255},
		{name: "wrapped", in: HSB{Hue: 480, Saturation: 1, Brightness: 1}, g: 255},
		{name: "negative", in: HSB{Hue: -120, Saturation: 1, Brightness: 1}, b: 255},
		{name: "black", in: HSB{Hue: 200, Saturation: 1, Brightness: 0}},
		{name: "white", in: HSB{Hue: 10, Saturation: 0, Brightness: 1}, r: 255, g: 255, b: 255},
		{name: "nan", in: HSB{Hue: math.NaN(), Saturation: 1, Brightness: 1}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := tc.in.RGB8()
			assert.Equal(t, []uint8{tc.r, tc.g, tc.b}, []uint8{r, g, b})
		})
	}
}
