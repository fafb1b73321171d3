// Package raster paints components into an in-memory *image.RGBA. It needs
// no GPU and no window, which makes it the canvas for tests, snapshots and
// headless documentation renders.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-theft-auto/guinness"
)

// Canvas implements guinness.Canvas on an RGBA image.
type Canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

var _ guinness.Canvas = (*Canvas)(nil)

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage paints into an existing image.
func NewFromImage(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	return &Canvas{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// Image returns the target image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col uint32) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toColor(col)), image.Point{}, draw.Src)
}

// FillRect fills r, blending over existing pixels.
func (c *Canvas) FillRect(r guinness.Rect, col uint32) {
	if col == guinness.ColorNone || r.W <= 0 || r.H <= 0 {
		return
	}
	draw.Draw(c.dst, toRect(r), image.NewUniform(toColor(col)), image.Point{}, draw.Over)
}

// FillPolygon fills p with anti-aliased edges.
func (c *Canvas) FillPolygon(p guinness.Polygon, col uint32) {
	if col == guinness.ColorNone || len(p) < 3 {
		return
	}
	c.rasterize(col, p)
}

// StrokePolygon draws each edge of p as a quad of the given thickness.
func (c *Canvas) StrokePolygon(p guinness.Polygon, col uint32, thickness float32) {
	if col == guinness.ColorNone || len(p) < 2 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		if quad, ok := edgeQuad(a, b, thickness); ok {
			c.rasterize(col, quad)
		}
	}
}

// DrawImage scales the src region of img into dst. With a white tint the
// image is copied as is; any other tint paints the tint color through the
// image's alpha, which colorizes white glyph atlases.
func (c *Canvas) DrawImage(img *guinness.Image, src image.Rectangle, dst guinness.Rect, tint uint32) {
	if img == nil || img.Pixels == nil || tint == guinness.ColorNone {
		return
	}
	to := toRect(dst)
	if to.Empty() || src.Empty() {
		return
	}
	if tint == guinness.ColorWhite {
		draw.ApproxBiLinear.Scale(c.dst, to, img.Pixels, src, draw.Over, nil)
		return
	}

	mask := image.NewRGBA(image.Rect(0, 0, to.Dx(), to.Dy()))
	draw.NearestNeighbor.Scale(mask, mask.Bounds(), img.Pixels, src, draw.Src, nil)
	draw.DrawMask(c.dst, to, image.NewUniform(toColor(tint)), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Canvas) rasterize(col uint32, p guinness.Polygon) {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(p[0].X-float32(b.Min.X), p[0].Y-float32(b.Min.Y))
	for _, v := range p[1:] {
		c.z.LineTo(v.X-float32(b.Min.X), v.Y-float32(b.Min.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, b, image.NewUniform(toColor(col)), image.Point{})
}

// edgeQuad returns the rectangle of the given thickness centered on a-b.
func edgeQuad(a, b guinness.Vec2, thickness float32) (guinness.Polygon, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return nil, false
	}
	nx := -dy / length * thickness * 0.5
	ny := dx / length * thickness * 0.5
	return guinness.Polygon{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, true
}

func toColor(c uint32) color.NRGBA {
	r, g, b, a := guinness.UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func toRect(r guinness.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.X))),
		int(math.Round(float64(r.Y))),
		int(math.Round(float64(r.X+r.W))),
		int(math.Round(float64(r.Y+r.H))),
	)
}
