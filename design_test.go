package guinness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTransform(t *testing.T) {
	tests := []struct {
		name     string
		movable  bool
		scalable bool
		want     Rect
	}{
		// "ok" is 2 cells: 2*18 + 8 wide, 18 + 8 high.
		{name: "movable and scalable", movable: true, scalable: true, want: Rect{X: 30, Y: 50, W: 88, H: 52}},
		{name: "scalable only", movable: false, scalable: true, want: Rect{X: 20, Y: 40, W: 88, H: 52}},
		{name: "movable only", movable: true, scalable: false, want: Rect{X: 15, Y: 25, W: 44, H: 26}},
		{name: "pinned", movable: false, scalable: false, want: Rect{X: 10, Y: 20, W: 44, H: 26}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewButton("ok",
				WithLocation(10, 20),
				WithMovable(tt.movable),
				WithScalable(tt.scalable),
			)
			require.NoError(t, err)

			cv := &recordingCanvas{}
			ClassicDesign().Render(cv, b, Vec2{X: 5, Y: 5}, 2)

			rects := cv.filter("rect")
			require.NotEmpty(t, rects)
			assert.Equal(t, tt.want, rects[0].rect)
		})
	}
}

func TestRenderButtonLayers(t *testing.T) {
	d := ClassicDesign()
	b, err := NewButton("ab", WithDesign(d), WithFont(&Font{Size: 10, Glyphs: newFakeGlyphs("ab")}))
	require.NoError(t, err)

	cv := &recordingCanvas{}
	d.Render(cv, b, Vec2{}, 1)

	rects := cv.filter("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, d.BorderColor, rects[0].color)
	assert.Equal(t, Rect{X: 2, Y: 2, W: 24, H: 14}, rects[1].rect)
	assert.Equal(t, d.BackgroundColor, rects[1].color)

	glyphs := cv.filter("image")
	require.Len(t, glyphs, 2)
	assert.Equal(t, Rect{X: 4, Y: 4, W: 10, H: 10}, glyphs[0].rect)
	assert.Equal(t, Rect{X: 14, Y: 4, W: 10, H: 10}, glyphs[1].rect)
	assert.Equal(t, d.FontColor, glyphs[0].color, "fonts without a color use the design font color")
}

func TestRenderTextfieldFieldSizedToCapacity(t *testing.T) {
	d := ClassicDesign()
	tf, err := NewTextfield(5, WithDesign(d), WithValue("a"))
	require.NoError(t, err)

	cv := &recordingCanvas{}
	d.Render(cv, tf, Vec2{}, 1)

	rects := cv.filter("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, Rect{X: 2, Y: 2, W: 94, H: 22}, rects[1].rect)
	assert.Equal(t, ColorWhite, rects[1].color)
}

func TestRenderCheckbox(t *testing.T) {
	d := ClassicDesign()

	cb, err := NewCheckbox(false, WithDesign(d))
	require.NoError(t, err)
	cv := &recordingCanvas{}
	d.Render(cv, cb, Vec2{}, 1)
	rects := cv.filter("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, Rect{W: 20, H: 20}, rects[0].rect)
	assert.Equal(t, Rect{X: 2, Y: 2, W: 18, H: 18}, rects[1].rect)

	cb.Click()
	cv = &recordingCanvas{}
	d.Render(cv, cb, Vec2{}, 1)
	rects = cv.filter("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, Rect{X: 4, Y: 4, W: 14, H: 14}, rects[2].rect)

	d.CheckIcon = NewImage(newFakeGlyphs("").atlas.Pixels)
	cv = &recordingCanvas{}
	d.Render(cv, cb, Vec2{}, 1)
	assert.Len(t, cv.filter("rect"), 2)
	require.Len(t, cv.filter("image"), 1)
}

func TestRenderPathIgnoresTransformAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	d := ClassicDesign()
	d.SetLogger(zerolog.New(&buf))

	points := Polygon{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 5, Y: 8}}
	p, err := NewPath(points, true, ColorRed, WithDesign(d))
	require.NoError(t, err)

	cv := &recordingCanvas{}
	d.Render(cv, p, Vec2{}, 1)
	assert.Empty(t, buf.String(), "identity transform must not warn")

	d.Render(cv, p, Vec2{X: 3}, 2)
	d.Render(cv, p, Vec2{X: 3}, 2)
	assert.Equal(t, 1, strings.Count(buf.String(), "path rendered without viewport transform"))

	polys := cv.filter("polygon")
	require.Len(t, polys, 3)
	for _, op := range polys {
		assert.Equal(t, points, op.poly)
		assert.Equal(t, ColorRed, op.color)
	}

	outline, err := NewPath(points, false, ColorRed, WithDesign(d))
	require.NoError(t, err)
	cv = &recordingCanvas{}
	d.Render(cv, outline, Vec2{}, 1)
	assert.Len(t, cv.filter("stroke"), 1)
}

func TestRenderPolyButtonCentersLabel(t *testing.T) {
	d := ClassicDesign()
	look := RectPolygon(Rect{W: 100, H: 40})
	pb, err := NewPolyButton("ab", look,
		WithDesign(d),
		WithFont(&Font{Size: 10, Glyphs: newFakeGlyphs("ab")}),
		WithTextAlign(AlignCenter, Vec2{X: 1, Y: 2}),
	)
	require.NoError(t, err)

	cv := &recordingCanvas{}
	d.Render(cv, pb, Vec2{}, 1)

	require.Len(t, cv.filter("polygon"), 1)
	glyphs := cv.filter("image")
	require.Len(t, glyphs, 2)
	// Centered: 50 - 20/2 + 1, 20 - 10/2 + 2
	assert.Equal(t, Vec2{X: 41, Y: 17}, glyphs[0].rect.Pos())
}

func TestRenderImageAndRectangle(t *testing.T) {
	d := ClassicDesign()
	img := NewImage(newFakeGlyphs("a").atlas.Pixels)

	ic, err := NewImageComponent(img, Rect{X: 1, Y: 2, W: 30, H: 40}, WithDesign(d))
	require.NoError(t, err)
	cv := &recordingCanvas{}
	d.Render(cv, ic, Vec2{}, 1)
	ops := cv.filter("image")
	require.Len(t, ops, 1)
	assert.Equal(t, Rect{X: 1, Y: 2, W: 30, H: 40}, ops[0].rect)
	assert.Equal(t, img.Bounds(), ops[0].src)
	assert.Equal(t, ColorWhite, ops[0].color)

	r, err := NewRectangle(Rect{W: 5, H: 5}, ColorBlue, WithDesign(d))
	require.NoError(t, err)
	cv = &recordingCanvas{}
	d.Render(cv, r, Vec2{}, 3)
	rects := cv.filter("rect")
	require.Len(t, rects, 1)
	assert.Equal(t, Rect{W: 15, H: 15}, rects[0].rect)
	assert.Equal(t, ColorBlue, rects[0].color)
}

func TestUnknownKindUsesDefaultRoutine(t *testing.T) {
	d := ClassicDesign()
	c, err := NewComponent(UnknownKind{Name: "badge"}, WithValue("v1"), WithDesign(d))
	require.NoError(t, err)
	assert.Equal(t, "badge", c.Tag())

	cv := &recordingCanvas{}
	d.Render(cv, c, Vec2{}, 1)
	assert.Len(t, cv.filter("rect"), 2)
}

func TestSelectionBoxLayout(t *testing.T) {
	sb, err := NewSelectionBox(true, []string{"a", "bb"})
	require.NoError(t, err)
	k := sb.Kind().(*SelectionBoxKind)

	// Two rows of 18px plus 2px inner spacing, framed by a 2px border.
	assert.Equal(t, Rect{W: 60, H: 42}, sb.Style().Bounds())
	assert.Equal(t, 0, k.OptionAt(Vec2{X: 25, Y: 10}))
	assert.Equal(t, 1, k.OptionAt(Vec2{X: 30, Y: 30}))
	assert.Equal(t, -1, k.OptionAt(Vec2{X: 100, Y: 100}))

	sb.SetLocation(Vec2{X: 100, Y: 0})
	assert.Equal(t, 0, k.OptionAt(Vec2{X: 125, Y: 10}))
	assert.Equal(t, -1, k.OptionAt(Vec2{X: 25, Y: 10}))
}

func TestSelectionBoxSelect(t *testing.T) {
	single := NewSelectionBoxKind(true, NewSelectionOption("a"), NewSelectionOption("b"))
	single.Select(0)
	single.Select(1)
	assert.Equal(t, []int{1}, single.Selected())
	single.Select(5)
	assert.Equal(t, []int{1}, single.Selected())

	multi := NewSelectionBoxKind(false, NewSelectionOption("a"), NewSelectionOption("b"))
	multi.Select(0)
	multi.Select(1)
	assert.Equal(t, []int{0, 1}, multi.Selected())
	multi.Select(0)
	assert.Equal(t, []int{1}, multi.Selected())
}

func TestRenderSelectionBox(t *testing.T) {
	d := ClassicDesign()
	sb, err := NewSelectionBox(false, []string{"a", "b"}, WithDesign(d))
	require.NoError(t, err)
	k := sb.Kind().(*SelectionBoxKind)
	k.Select(1)
	k.Options()[0].Color = ColorYellow

	cv := &recordingCanvas{}
	d.Render(cv, sb, Vec2{}, 1)

	// Backing, checked mark for option 1, label background for option 0.
	rects := cv.filter("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, ColorYellow, rects[1].color)
	assert.Equal(t, d.BorderColor, rects[2].color)
	assert.Len(t, cv.filter("stroke"), 1, "unchecked option is outlined")
}

func TestGenerateDefaultShapeFollowsDesign(t *testing.T) {
	thick := ClassicDesign()
	thick.InnerThickness = 4
	thick.BorderThickness = 6

	b, err := NewButton("abc", WithDesign(thick))
	require.NoError(t, err)
	assert.Equal(t, Rect{W: 3*18 + 20, H: 18 + 20}, b.Style().Bounds())

	b.SetDesign(ClassicDesign())
	assert.Equal(t, Rect{W: 3*18 + 8, H: 18 + 8}, b.Style().Bounds())
}
