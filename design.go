package guinness

import (
	"sync"

	"github.com/rs/zerolog"
)

// Design is a rendering strategy: theme colors and thicknesses plus one
// draw routine per kind. A design is shared by many components and keeps no
// per-call state, so one instance may render from several goroutines.
type Design struct {
	Name string

	BorderColor     uint32
	BackgroundColor uint32
	ActiveColor     uint32
	HoverColor      uint32
	FontColor       uint32

	InnerThickness  float32
	BorderThickness float32

	// CheckIcon is drawn inside checked checkboxes that have no style image.
	// Without it a filled square is drawn.
	CheckIcon *Image

	log    zerolog.Logger
	warned sync.Map // uuid.UUID -> struct{}, paths already reported
}

// ClassicDesign returns the built-in theme: dark borders, light gray
// surfaces and black text.
func ClassicDesign() *Design {
	return &Design{
		Name:            "classic",
		BorderColor:     ColorDarkGray,
		BackgroundColor: ColorLightGray,
		ActiveColor:     ColorGray,
		HoverColor:      RGBA(0xD8, 0xD8, 0xE8, 0xFF),
		FontColor:       ColorBlack,
		InnerThickness:  2,
		BorderThickness: 2,
		log:             zerolog.Nop(),
	}
}

// defaultDesign is shared by components built without WithDesign.
var defaultDesign = sync.OnceValue(ClassicDesign)

// SetLogger sets the logger used for rendering warnings. Call it before the
// design is shared.
func (d *Design) SetLogger(l zerolog.Logger) {
	d.log = l
}

// Render paints exactly one component under the viewport offset and scale.
// The component's movable and scalable flags decide which of the two apply.
func (d *Design) Render(cv Canvas, c *Component, offset Vec2, scale float32) {
	tr := newTransform(c, offset, scale)

	switch k := c.Kind().(type) {
	case ButtonKind:
		d.drawDefault(cv, c, tr)
	case DescriptionKind:
		d.drawDescription(cv, c, tr)
	case ImageKind:
		d.drawImage(cv, c, tr)
	case TextfieldKind:
		d.drawTextfield(cv, c, tr)
	case *CheckboxKind:
		d.drawCheckbox(cv, c, k, tr)
	case *SelectionBoxKind:
		d.drawSelectionBox(cv, c, k, tr)
	case RectangleKind:
		d.drawRectangle(cv, c, tr)
	case PolyButtonKind:
		d.drawPolyButton(cv, c, tr)
	case PathKind:
		d.drawPath(cv, c, k, offset, scale)
	default:
		d.drawDefault(cv, c, tr)
	}
}

// GenerateDefaultShape returns the text rectangle for c at its location:
// capacity times font size plus inner and border thickness on both sides,
// one line high. Padding does not change the shape.
func (d *Design) GenerateDefaultShape(c *Component) Polygon {
	s := c.Style()
	fs := float32(s.Font().size())
	frame := 2*d.InnerThickness + 2*d.BorderThickness
	loc := s.Location()
	return RectPolygon(Rect{
		X: loc.X,
		Y: loc.Y,
		W: float32(s.Length())*fs + frame,
		H: fs + frame,
	})
}

// UpdateShape stores the generated shape on c. Kinds with an explicit look
// keep it; a selection box relays out its options instead.
func (d *Design) UpdateShape(c *Component) {
	switch k := c.Kind().(type) {
	case *SelectionBoxKind:
		s := c.Style()
		backing := k.layout(s.Location(), float32(s.Font().size()), d.InnerThickness, d.BorderThickness)
		s.setLook(RectPolygon(backing))
	default:
		if hasExplicitLook(k) {
			return
		}
		c.Style().setLook(d.GenerateDefaultShape(c))
	}
}

// textFont returns the component font scaled by s and colored with the
// design font color when the font has none of its own.
func (d *Design) textFont(c *Component, s float32) (*Font, float32) {
	f := c.Style().Font()
	size := float32(f.size()) * s
	if f.Color != ColorNone {
		return f, size
	}
	cp := *f
	cp.Color = d.FontColor
	return &cp, size
}

// transform maps layer-local coordinates to the screen for one component.
type transform struct {
	offset Vec2
	scale  float32
}

func newTransform(c *Component, offset Vec2, scale float32) transform {
	tr := transform{scale: 1}
	if c.Movable() {
		tr.offset = offset
	}
	if c.Scalable() {
		tr.scale = scale
	}
	return tr
}

func (tr transform) point(p Vec2) Vec2 {
	return p.Add(tr.offset).Mul(tr.scale)
}

func (tr transform) rect(r Rect) Rect {
	o := tr.point(r.Pos())
	return Rect{X: o.X, Y: o.Y, W: r.W * tr.scale, H: r.H * tr.scale}
}

func (tr transform) polygon(p Polygon) Polygon {
	return p.Translate(tr.offset).Scale(tr.scale)
}
