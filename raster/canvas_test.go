package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guinness"
)

var (
	opaqueRed  = color.RGBA{R: 0xFF, A: 0xFF}
	opaqueBlue = color.RGBA{B: 0xFF, A: 0xFF}
)

func solid(w, h int, c color.RGBA) *guinness.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return guinness.NewImage(img)
}

func TestFillRect(t *testing.T) {
	cv := New(10, 10)
	cv.FillRect(guinness.Rect{X: 2, Y: 2, W: 4, H: 4}, guinness.ColorRed)
	cv.FillRect(guinness.Rect{W: 10, H: 10}, guinness.ColorNone)

	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(3, 3))
	assert.Zero(t, cv.Image().RGBAAt(0, 0).A)
	assert.Zero(t, cv.Image().RGBAAt(6, 6).A)
}

func TestClear(t *testing.T) {
	cv := New(4, 4)
	cv.FillRect(guinness.Rect{W: 4, H: 4}, guinness.ColorRed)
	cv.Clear(guinness.ColorBlue)
	assert.Equal(t, opaqueBlue, cv.Image().RGBAAt(1, 1))
}

func TestFillPolygon(t *testing.T) {
	cv := New(20, 20)
	tri := guinness.Polygon{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 0, Y: 16}}
	cv.FillPolygon(tri, guinness.ColorRed)

	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(3, 3))
	assert.Zero(t, cv.Image().RGBAAt(14, 14).A)
}

func TestStrokePolygon(t *testing.T) {
	cv := New(20, 20)
	cv.StrokePolygon(guinness.RectPolygon(guinness.Rect{X: 2, Y: 2, W: 14, H: 14}), guinness.ColorRed, 2)

	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(2, 8), "left edge")
	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(8, 15), "bottom edge")
	assert.Zero(t, cv.Image().RGBAAt(9, 9).A, "outline only")
}

func TestDrawImage(t *testing.T) {
	src := solid(2, 2, opaqueBlue)

	cv := New(8, 8)
	cv.DrawImage(src, src.Bounds(), guinness.Rect{W: 4, H: 4}, guinness.ColorWhite)
	assert.Equal(t, opaqueBlue, cv.Image().RGBAAt(1, 1), "white tint copies the image")
	assert.Zero(t, cv.Image().RGBAAt(6, 6).A)

	glyph := solid(2, 2, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	cv = New(8, 8)
	cv.DrawImage(glyph, glyph.Bounds(), guinness.Rect{X: 4, Y: 4, W: 4, H: 4}, guinness.ColorRed)
	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(5, 5), "tint colors through the alpha")

	cv.DrawImage(nil, image.Rect(0, 0, 1, 1), guinness.Rect{W: 1, H: 1}, guinness.ColorWhite)
	assert.Zero(t, cv.Image().RGBAAt(0, 0).A)
}

func TestRenderDisplay(t *testing.T) {
	d := guinness.NewDisplay()
	r, err := guinness.NewRectangle(guinness.Rect{X: 1, Y: 1, W: 4, H: 4}, guinness.ColorRed)
	require.NoError(t, err)
	require.NoError(t, d.Attach(guinness.NewLayer("main"), r))
	d.Viewport().SetScale(2)

	cv := New(16, 16)
	d.Render(cv)

	// Scaled to (2,2)-(10,10).
	assert.Equal(t, opaqueRed, cv.Image().RGBAAt(9, 9))
	assert.Zero(t, cv.Image().RGBAAt(11, 11).A)
	assert.Zero(t, cv.Image().RGBAAt(1, 1).A)
}
