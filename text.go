package guinness

// DrawString paints text left to right starting at (x, y), one square cell of
// size pixels per rune. Each rune is looked up in the font's atlas by index;
// runes without a glyph use the provider's not-found cell. The glyph is
// tinted with the font color and scaled to size.
//
// It returns the painted extent. A font without glyphs paints nothing but
// still reports the extent, so layout stays stable.
func DrawString(c Canvas, font *Font, text string, x, y, size float32) Vec2 {
	runes := []rune(text)
	extent := Vec2{X: size * float32(len(runes)), Y: size}
	if font == nil || font.Glyphs == nil || size <= 0 {
		return extent
	}

	atlas := font.Glyphs.Atlas()
	for i, r := range runes {
		DrawChar(c, font.Glyphs, atlas, r, x+size*float32(i), y, size, font.Color)
	}
	return extent
}

// DrawChar paints a single glyph cell.
func DrawChar(c Canvas, glyphs GlyphProvider, atlas *Image, r rune, x, y, size float32, color uint32) {
	index := glyphs.IndexOf(r)
	if index < 0 || !glyphs.IsImplemented(r) {
		index = glyphs.NotFoundIndex()
	}
	c.DrawImage(atlas, glyphs.CellRect(index), Rect{X: x, Y: y, W: size, H: size}, color)
}

// TextWidth returns the width of text at the given cell size.
func TextWidth(text string, size float32) float32 {
	return size * float32(len([]rune(text)))
}
