package guinness

import "image"

// Canvas is the paint surface a Design draws components onto.
// Coordinates are screen pixels; colors are packed RGBA (see RGBA).
//
// Two implementations ship with the package: DrawList, which batches
// vertices for a GPU backend, and raster.Canvas, which paints straight into
// an *image.RGBA.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, color uint32)

	// FillPolygon fills a polygon.
	FillPolygon(p Polygon, color uint32)

	// StrokePolygon draws the closed outline of a polygon.
	StrokePolygon(p Polygon, color uint32, thickness float32)

	// DrawImage scales the src region of img into dst. The image is
	// multiplied by tint; pass ColorWhite to draw it unchanged. Glyph atlases
	// are white-on-transparent, so tinting colorizes them.
	DrawImage(img *Image, src image.Rectangle, dst Rect, tint uint32)
}

// Image is a raster asset usable by every Canvas.
// Pixels carries the CPU-side data; TextureID is filled in by a GPU backend
// once the image has been uploaded (0 = not uploaded).
type Image struct {
	Pixels    image.Image
	TextureID uint32
}

// NewImage wraps pixel data as an Image.
func NewImage(pixels image.Image) *Image {
	return &Image{Pixels: pixels}
}

// Bounds returns the pixel bounds, or an empty rectangle for a nil image.
func (img *Image) Bounds() image.Rectangle {
	if img == nil || img.Pixels == nil {
		return image.Rectangle{}
	}
	return img.Pixels.Bounds()
}

// Width returns the pixel width.
func (img *Image) Width() int {
	return img.Bounds().Dx()
}
