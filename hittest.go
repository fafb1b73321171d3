package guinness

// ComponentAt returns the top-most enabled, visible component whose screen
// shape contains p, or nil. Hidden layers are skipped.
func (d *Display) ComponentAt(p Vec2) *Component {
	offset, scale := d.viewport.Transform()
	for _, c := range d.Components() {
		if !c.Enabled() || !c.Style().IsVisible() {
			continue
		}
		if screenShape(c, offset, scale).Contains(p) {
			return c
		}
	}
	return nil
}

// screenShape is the look as painted: paths stay untransformed, everything
// else follows the component's movable and scalable flags.
func screenShape(c *Component, offset Vec2, scale float32) Polygon {
	look := c.Style().Look()
	if _, ok := c.Kind().(PathKind); ok {
		return look
	}
	return newTransform(c, offset, scale).polygon(look)
}
