package guinness

import (
	"image"
	"unicode"
)

// KeyCode identifies a key delivered by the keyboard driver. Printable keys
// carry their rune; control keys use the constants below.
type KeyCode rune

const (
	KeyCodeNone      KeyCode = 0
	KeyCodeBackspace KeyCode = '\b'
	KeyCodeTab       KeyCode = '\t'
	KeyCodeEnter     KeyCode = '\r'
	KeyCodeEscape    KeyCode = 0x1B
	KeyCodeDelete    KeyCode = 0x7F
)

// GlyphProvider is a fixed-size bitmap glyph atlas plus character lookup.
//
// The package does not depend on any concrete atlas; glyph.Atlas bakes one
// from a TrueType font, tests use small fakes.
type GlyphProvider interface {
	// IndexOf returns the atlas cell of r, or -1 when r is absent.
	IndexOf(r rune) int

	// IsImplemented reports whether r has its own glyph.
	IsImplemented(r rune) bool

	// IsDisplayableCode reports whether a key code produces a glyph that may
	// be typed into a text field.
	IsDisplayableCode(k KeyCode) bool

	// NotFoundIndex is the cell drawn for characters without a glyph.
	NotFoundIndex() int

	// CellRect returns the atlas region of a cell.
	CellRect(index int) image.Rectangle

	// Atlas returns the atlas image. Glyphs are white on transparent.
	Atlas() *Image
}

// Font is a glyph-provider configuration: which atlas, at which pixel size,
// in which color.
type Font struct {
	Name   string
	Source string // where the atlas came from (file path or embedded name)
	Size   int    // pixel size of one rendered glyph cell
	Color  uint32 // ColorNone: use the design font color
	Glyphs GlyphProvider
}

// DefaultFontSize is used when a component has no font.
const DefaultFontSize = 18

// DefaultFont returns a font without glyphs. Shapes are still sized by it,
// text is skipped until a GlyphProvider is attached.
// Its color is ColorNone, so designs paint it in their own font color.
func DefaultFont() *Font {
	return &Font{Name: "default", Size: DefaultFontSize, Color: ColorNone}
}

// WithSize returns a copy of the font at another pixel size.
func (f *Font) WithSize(size int) *Font {
	if f == nil {
		return nil
	}
	cp := *f
	cp.Size = size
	return &cp
}

// IsDisplayable reports whether k may be typed with this font. Without a
// glyph provider any printable rune qualifies.
func (f *Font) IsDisplayable(k KeyCode) bool {
	if f != nil && f.Glyphs != nil {
		return f.Glyphs.IsDisplayableCode(k)
	}
	return k >= ' ' && k != KeyCodeDelete && unicode.IsPrint(rune(k))
}

func (f *Font) size() int {
	if f == nil || f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}
