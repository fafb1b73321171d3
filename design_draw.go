package guinness

import "unicode/utf8"

// drawDefault paints the border rectangle, a background sized to the text
// and the text itself. Buttons and unknown kinds use it.
func (d *Design) drawDefault(cv Canvas, c *Component, tr transform) {
	s := c.Style()
	b := s.Bounds()
	outer := tr.rect(b)
	cv.FillRect(outer, d.BorderColor)

	value := c.Value()
	fs := float32(s.Font().size())
	textW := fs * float32(utf8.RuneCountInString(value))
	cv.FillRect(Rect{
		X: outer.X + d.BorderThickness*tr.scale,
		Y: outer.Y + d.BorderThickness*tr.scale,
		W: (textW + 2*d.InnerThickness) * tr.scale,
		H: (fs + 2*d.InnerThickness) * tr.scale,
	}, s.PrimaryColor())

	font, size := d.textFont(c, tr.scale)
	inset := (d.InnerThickness + d.BorderThickness) * tr.scale
	DrawString(cv, font, value, outer.X+inset, outer.Y+inset, size)
}

func (d *Design) drawDescription(cv Canvas, c *Component, tr transform) {
	inset := d.InnerThickness + d.BorderThickness
	o := tr.point(c.Style().Bounds().Pos().Add(Vec2{X: inset, Y: inset}))
	font, size := d.textFont(c, tr.scale)
	DrawString(cv, font, c.Value(), o.X, o.Y, size)
}

func (d *Design) drawImage(cv Canvas, c *Component, tr transform) {
	img := c.Style().Image()
	if img == nil {
		return
	}
	cv.DrawImage(img, img.Bounds(), tr.rect(c.Style().Bounds()), ColorWhite)
}

// drawTextfield paints the border, a field sized to the capacity in the
// primary color and the current text.
func (d *Design) drawTextfield(cv Canvas, c *Component, tr transform) {
	s := c.Style()
	outer := tr.rect(s.Bounds())
	cv.FillRect(outer, d.BorderColor)

	fs := float32(s.Font().size())
	field := Rect{
		X: outer.X + d.BorderThickness*tr.scale,
		Y: outer.Y + d.BorderThickness*tr.scale,
		W: (fs*float32(s.Length()) + 2*d.InnerThickness) * tr.scale,
		H: (fs + 2*d.InnerThickness) * tr.scale,
	}
	cv.FillRect(field, s.PrimaryColor())

	font, size := d.textFont(c, tr.scale)
	inner := d.InnerThickness * tr.scale
	DrawString(cv, font, c.Value(), field.X+inner, field.Y+inner, size)
}

// drawCheckbox paints an outer border square, a white inner square and,
// when checked, the check icon two border widths in.
func (d *Design) drawCheckbox(cv Canvas, c *Component, k *CheckboxKind, tr transform) {
	s := c.Style()
	b := s.Bounds()
	size := b.W
	o := tr.point(b.Pos())

	outer := (size + d.InnerThickness) * tr.scale
	cv.FillRect(Rect{X: o.X, Y: o.Y, W: outer, H: outer}, d.BorderColor)

	border := d.BorderThickness * tr.scale
	cv.FillRect(Rect{X: o.X + border, Y: o.Y + border, W: size * tr.scale, H: size * tr.scale}, ColorWhite)

	if !k.Checked() {
		return
	}
	at := Vec2{X: o.X + 2*border, Y: o.Y + 2*border}
	icon := s.Image()
	if icon == nil {
		icon = d.CheckIcon
	}
	if icon == nil {
		mark := (size - 2*d.BorderThickness) * tr.scale
		cv.FillRect(Rect{X: at.X, Y: at.Y, W: mark, H: mark}, d.BorderColor)
		return
	}
	px := float32(icon.Width()) * tr.scale
	cv.DrawImage(icon, icon.Bounds(), Rect{X: at.X, Y: at.Y, W: px, H: px}, ColorWhite)
}

// drawSelectionBox paints the backing rectangle, then per option the
// checked or unchecked icon, an optional label background and the label.
func (d *Design) drawSelectionBox(cv Canvas, c *Component, k *SelectionBoxKind, tr transform) {
	d.drawRectangle(cv, c, tr)

	font, size := d.textFont(c, tr.scale)
	options, shapes := k.shapeTable()
	for i, opt := range options {
		icon := tr.rect(shapes[i].icon)
		mark := k.Icons[0]
		if opt.Checked() {
			mark = k.Icons[1]
		}
		switch {
		case mark != nil:
			cv.DrawImage(mark, mark.Bounds(), icon, ColorWhite)
		case opt.Checked():
			cv.FillRect(icon, d.BorderColor)
		default:
			cv.StrokePolygon(RectPolygon(icon), d.BorderColor, maxf(1, d.BorderThickness*tr.scale))
		}

		title := tr.rect(shapes[i].title)
		if opt.Color != ColorNone {
			cv.FillRect(title, opt.Color)
		}
		DrawString(cv, font, opt.Value, title.X, title.Y, size)
	}
}

func (d *Design) drawRectangle(cv Canvas, c *Component, tr transform) {
	color := c.Style().PrimaryColor()
	if color == ColorNone {
		color = ColorBlack
	}
	cv.FillRect(tr.rect(c.Style().Bounds()), color)
}

// drawPolyButton fills the look polygon and places the label either at the
// top-left of its bounds or centered in them, shifted by the transition.
func (d *Design) drawPolyButton(cv Canvas, c *Component, tr transform) {
	s := c.Style()
	look := s.Look()
	cv.FillPolygon(tr.polygon(look), s.PrimaryColor())

	b := look.Bounds()
	align, transition := s.TextAlign()
	value := c.Value()
	at := b.Pos()
	if align == AlignCenter {
		fs := float32(s.Font().size())
		textW := fs * float32(utf8.RuneCountInString(value))
		at = Vec2{X: b.X + b.W/2 - textW/2, Y: b.Y + b.H/2 - fs/2}
	}
	o := tr.point(at.Add(transition))
	font, size := d.textFont(c, tr.scale)
	DrawString(cv, font, value, o.X, o.Y, size)
}

// drawPath paints the raw points without any transform. A non-identity
// viewport is reported once per component and otherwise ignored.
func (d *Design) drawPath(cv Canvas, c *Component, k PathKind, offset Vec2, scale float32) {
	if !offset.IsZero() || scale != 1 {
		if _, seen := d.warned.LoadOrStore(c.ID(), struct{}{}); !seen {
			d.log.Warn().
				Object("component", c).
				Float32("offset_x", offset.X).
				Float32("offset_y", offset.Y).
				Float32("scale", scale).
				Msg("path rendered without viewport transform")
		}
	}
	color := c.Style().PrimaryColor()
	if k.Fill {
		cv.FillPolygon(k.Points, color)
		return
	}
	cv.StrokePolygon(k.Points, color, 1)
}
