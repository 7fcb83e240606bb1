// Package palette turns escape times into colors.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHueRange spreads escape times over the first 255 degrees of the hue wheel.
const DefaultHueRange = 255.0

// HSB is a color in the hue/saturation/brightness model.
// Hue is in degrees; Saturation and Brightness are in [0, 1].
type HSB struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

// Shade colors a point by its escape time.
//
// Hue is proportional to escape/bound scaled to hueRange. Points that did not escape
// before bound are black. NaN or infinite escape times propagate into Hue.
func Shade(escape float64, bound int, hueRange float64) HSB {
	brightness := 0.0
	if escape < float64(bound) {
		brightness = 1.0
	}

	return HSB{
		Hue:        escape * hueRange / float64(bound),
		Saturation: 1.0,
		Brightness: brightness,
	}
}

// Color converts c to RGB. Hues outside [0, 360) wrap around the wheel.
func (c HSB) Color() colorful.Color {
	h := math.Mod(c.Hue, 360)
	if h < 0 {
		h += 360
	}

	return colorful.Hsv(h, c.Saturation, c.Brightness).Clamped()
}

// RGB8 returns the 8-bit channels of c.
func (c HSB) RGB8() (r, g, b uint8) {
	return c.Color().RGB255()
}
