// Package glyph bakes TrueType fonts into fixed-cell glyph atlases.
//
// Every glyph occupies one square cell of the atlas image, white on
// transparent, so a canvas can tint it to any font color. Cell 0 holds a
// box drawn for characters the atlas does not implement.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/guinness"
)

// NotFound is the cell index of the fallback glyph.
const NotFound = 0

// DefaultCellSize is the pixel size of one cell.
const DefaultCellSize = 32

// ErrNoGlyphs is returned when none of the requested runes exist in the font.
var ErrNoGlyphs = errors.New("glyph: font has none of the requested runes")

// Options configures atlas baking.
type Options struct {
	// TTF is the TrueType data. Empty means Go Mono.
	TTF []byte

	// CellSize is the pixel size of a cell. Zero means DefaultCellSize.
	CellSize int

	// Runes lists the characters to bake. Empty means printable ASCII.
	Runes []rune
}

// Atlas is a baked glyph atlas. It implements guinness.GlyphProvider and is
// read-only after New, so one atlas may serve many fonts and goroutines.
type Atlas struct {
	name  string
	image *guinness.Image
	cell  int
	cols  int
	index map[rune]int
}

var _ guinness.GlyphProvider = (*Atlas)(nil)

// Default bakes printable ASCII from Go Mono.
func Default() (*Atlas, error) {
	return New(Options{})
}

// New bakes an atlas.
func New(opts Options) (*Atlas, error) {
	name := "gomono"
	ttf := opts.TTF
	if len(ttf) == 0 {
		ttf = gomono.TTF
	} else {
		name = "custom"
	}
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	runes := opts.Runes
	if len(runes) == 0 {
		runes = asciiRunes()
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if fname := f.Name(truetype.NameIDFontFullName); fname != "" {
		name = fname
	}

	// Only runes with a real glyph get a cell.
	var baked []rune
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] || f.Index(r) == 0 {
			continue
		}
		seen[r] = true
		baked = append(baked, r)
	}
	if len(baked) == 0 {
		return nil, ErrNoGlyphs
	}

	cells := len(baked) + 1
	cols := int(math.Ceil(math.Sqrt(float64(cells))))
	rows := (cells + cols - 1) / cols
	dst := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	a := &Atlas{
		name:  name,
		cell:  cell,
		cols:  cols,
		index: make(map[rune]int, len(baked)),
	}
	drawNotFound(dst, a.CellRect(NotFound))

	size := float64(cell) * 0.8
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()
	ascent := face.Metrics().Ascent
	height := ascent + face.Metrics().Descent

	for i, r := range baked {
		idx := i + 1
		a.index[r] = idx
		rect := a.CellRect(idx)

		adv, _ := face.GlyphAdvance(r)
		x := fixed.I(rect.Min.X) + (fixed.I(cell)-adv)/2
		y := fixed.I(rect.Min.Y) + (fixed.I(cell)-height)/2 + ascent
		if _, err := ctx.DrawString(string(r), fixed.Point26_6{X: x, Y: y}); err != nil {
			return nil, fmt.Errorf("draw %q: %w", r, err)
		}
	}

	a.image = guinness.NewImage(dst)
	return a, nil
}

func asciiRunes() []rune {
	out := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		out = append(out, r)
	}
	return out
}

// drawNotFound outlines the cell with a one-pixel box inset by an eighth.
func drawNotFound(dst *image.RGBA, cell image.Rectangle) {
	inset := cell.Dx() / 8
	box := cell.Inset(inset)
	white := image.NewUniform(color.White)
	edges := []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1),
		image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y),
		image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e, white, image.Point{}, draw.Src)
	}
}

// Name returns the font's full name.
func (a *Atlas) Name() string { return a.name }

// CellSize returns the pixel size of a cell.
func (a *Atlas) CellSize() int { return a.cell }

// Len returns the number of baked glyphs, excluding the fallback.
func (a *Atlas) Len() int { return len(a.index) }

// IndexOf returns the cell of r, or -1.
func (a *Atlas) IndexOf(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// IsImplemented reports whether r has its own cell.
func (a *Atlas) IsImplemented(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IsDisplayableCode reports whether typing k produces a baked glyph.
// Control codes never do.
func (a *Atlas) IsDisplayableCode(k guinness.KeyCode) bool {
	if k < ' ' || k == guinness.KeyCodeDelete {
		return false
	}
	return a.IsImplemented(rune(k))
}

// NotFoundIndex returns the fallback cell.
func (a *Atlas) NotFoundIndex() int { return NotFound }

// CellRect returns the pixel region of cell i.
func (a *Atlas) CellRect(i int) image.Rectangle {
	x := (i % a.cols) * a.cell
	y := (i / a.cols) * a.cell
	return image.Rect(x, y, x+a.cell, y+a.cell)
}

// Atlas returns the atlas image.
func (a *Atlas) Atlas() *guinness.Image { return a.image }

// Font wraps the atlas in a font of the given pixel size and color.
// Pass guinness.ColorNone to use the design font color.
func (a *Atlas) Font(size int, color uint32) *guinness.Font {
	return &guinness.Font{
		Name:   a.name,
		Source: "glyph.Atlas",
		Size:   size,
		Color:  color,
		Glyphs: a,
	}
}
