package guinness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonContains(t *testing.T) {
	// An L-shaped concave polygon.
	l := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10}}

	tests := []struct {
		name string
		pt   Vec2
		want bool
	}{
		{"inside top arm", Vec2{X: 8, Y: 2}, true},
		{"inside left arm", Vec2{X: 2, Y: 8}, true},
		{"in the notch", Vec2{X: 8, Y: 8}, false},
		{"outside", Vec2{X: -1, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Contains(tt.pt))
		})
	}

	assert.False(t, Polygon{{X: 0, Y: 0}, {X: 5, Y: 5}}.Contains(Vec2{X: 1, Y: 1}), "degenerate polygons contain nothing")
}

func TestPolygonTransformsCopy(t *testing.T) {
	p := RectPolygon(Rect{X: 2, Y: 3, W: 4, H: 5})
	orig := p.Clone()

	moved := p.MoveTo(Vec2{X: 10, Y: 10})
	assert.Equal(t, Rect{X: 10, Y: 10, W: 4, H: 5}, moved.Bounds())

	scaled := p.Scale(2)
	assert.Equal(t, Rect{X: 4, Y: 6, W: 8, H: 10}, scaled.Bounds())

	assert.Equal(t, orig, p, "transforms never modify the receiver")
	assert.Equal(t, Rect{}, Polygon(nil).Bounds())
}

func TestTransformFlags(t *testing.T) {
	c, err := NewButton("a", WithMovable(false))
	if !assert.NoError(t, err) {
		return
	}
	v := NewViewport()
	v.SetOffset(Vec2{X: 10, Y: 0})
	v.SetScale(2)

	screen := v.ToScreen(c, Vec2{X: 5, Y: 5})
	assert.Equal(t, Vec2{X: 10, Y: 10}, screen)
	assert.Equal(t, Vec2{X: 5, Y: 5}, v.ToLocal(c, screen))

	c.SetMovable(true)
	screen = v.ToScreen(c, Vec2{X: 5, Y: 5})
	assert.Equal(t, Vec2{X: 30, Y: 10}, screen)
	assert.Equal(t, Vec2{X: 5, Y: 5}, v.ToLocal(c, screen))
}

func TestDrawStringExtent(t *testing.T) {
	cv := &recordingCanvas{}
	font := &Font{Size: 8, Glyphs: newFakeGlyphs("ab"), Color: ColorRed}

	ext := DrawString(cv, font, "abz", 0, 0, 8)
	assert.Equal(t, Vec2{X: 24, Y: 8}, ext)

	ops := cv.filter("image")
	if assert.Len(t, ops, 3) {
		assert.Equal(t, font.Glyphs.CellRect(1), ops[0].src)
		assert.Equal(t, font.Glyphs.CellRect(0), ops[2].src, "unknown runes use the not-found cell")
		assert.Equal(t, ColorRed, ops[0].color)
	}

	cv = &recordingCanvas{}
	ext = DrawString(cv, DefaultFont(), "héllo", 0, 0, 10)
	assert.Equal(t, Vec2{X: 50, Y: 10}, ext)
	assert.Empty(t, cv.filter("image"))
	assert.Equal(t, float32(50), TextWidth("héllo", 10))
}
