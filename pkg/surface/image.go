// Package surface implements session.Surface for PNG rasters and terminals.
package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/willbeason/mandelzoom/pkg/palette"
	"github.com/willbeason/mandelzoom/pkg/session"
)

// Image is an in-memory RGBA raster.
type Image struct {
	img *image.RGBA64
}

func NewImage(width, height int) *Image {
	return &Image{img: image.NewRGBA64(image.Rect(0, 0, width, height))}
}

// SetPixelColor sets the pixel at (x, y). Pixels outside the raster are dropped.
func (i *Image) SetPixelColor(x, y int, hue, saturation, brightness float64) {
	c := palette.HSB{Hue: hue, Saturation: saturation, Brightness: brightness}
	i.img.Set(x, y, c.Color())
}

func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Image() image.Image {
	return i.img
}

func (i *Image) Encode(w io.Writer) error {
	return png.Encode(w, i.img)
}

// Save writes the raster to dir/<timestamp>.png and returns the path written.
func (i *Image) Save(dir string, now time.Time) (string, error) {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.png", now.Format("20060102150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	err = i.Encode(f)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	return path, f.Close()
}

var _ session.Surface = (*Image)(nil)
