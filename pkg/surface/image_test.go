package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelzoom/pkg/session"
)

func TestImageSetPixelColor(t *testing.T) {
	img := NewImage(3, 2)

	img.SetPixelColor(0, 0, 0, 1, 1)
	img.SetPixelColor(2, 1, 240, 1, 1)
	img.SetPixelColor(1, 1, 120, 1, 0)
	img.SetPixelColor(5, 5, 120, 1, 1)

	toRGBA := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.Image().At(x, y)).(color.RGBA)
	}
	assert.Equal(t, color.RGBA{R: 255, A: 255}, toRGBA(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, toRGBA(2, 1))
	assert.Equal(t, color.RGBA{A: 255}, toRGBA(1, 1))
	// Never written.
	assert.Equal(t, color.RGBA{}, toRGBA(1, 0))
}

func TestImageSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	img := NewImage(4, 2)
	img.SetPixelColor(1, 1, 120, 1, 1)

	path, err := img.Save(dir, time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240309140506.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
	r, g, b, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestImageRendersSession(t *testing.T) {
	const w, h = 16, 8
	img := NewImage(w, h)
	s := session.New(session.Params{HalfRange: 1.5, IterationBound: 20}, img, w, h)

	for s.AdvanceOneRow() {
	}

	width, height := img.Size()
	assert.Equal(t, w, width)
	assert.Equal(t, h, height)

	// The center of the view, the origin, is in the set.
	r, g, b, a := img.Image().At(w/2, h/2).RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a})

	// The top left corner escapes immediately and is drawn in color.
	r, g, b, _ = img.Image().At(0, 0).RGBA()
	assert.NotEqual(t, []uint32{0, 0, 0}, []uint32{r, g, b})

	var buf bytes.Buffer
	require.NoError(t, img.Encode(&buf))
	assert.NotZero(t, buf.Len())
}
