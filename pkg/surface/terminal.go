package surface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/willbeason/mandelzoom/pkg/palette"
	"github.com/willbeason/mandelzoom/pkg/session"
)

// upperHalf draws its foreground in the top half of a cell and its background in the bottom half.
const upperHalf = '▀'

// Terminal draws onto a tcell screen at two pixels per cell, stacked vertically.
// Cells are roughly twice as tall as they are wide, so pixels come out close to square.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int
	pixels []tcell.Color
}

func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	t.Resize()
	return t
}

// Resize reads the screen size and clears the pixel buffer.
func (t *Terminal) Resize() {
	cols, rows := t.screen.Size()
	t.width = cols
	t.height = 2 * rows
	t.pixels = make([]tcell.Color, t.width*t.height)
	for i := range t.pixels {
		t.pixels[i] = tcell.ColorBlack
	}
}

// Size is the surface size in pixels.
func (t *Terminal) Size() (width, height int) {
	return t.width, t.height
}

// SetPixelColor sets the pixel at (x, y) and redraws the cell containing it.
// Pixels outside the screen are dropped.
func (t *Terminal) SetPixelColor(x, y int, hue, saturation, brightness float64) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}

	r, g, b := palette.HSB{Hue: hue, Saturation: saturation, Brightness: brightness}.RGB8()
	t.pixels[y*t.width+x] = tcell.NewRGBColor(int32(r), int32(g), int32(b))

	top := t.pixels[(y&^1)*t.width+x]
	bottom := t.pixels[(y|1)*t.width+x]
	style := tcell.StyleDefault.Foreground(top).Background(bottom)
	t.screen.SetContent(x, y/2, upperHalf, nil, style)
}

// Normalize converts a cell position into a position in [0,1]x[0,1] from the top-left corner.
func (t *Terminal) Normalize(col, row int) (float64, float64) {
	return float64(col) / float64(t.width), float64(2*row) / float64(t.height)
}

var _ session.Surface = (*Terminal)(nil)
