package guinness

// Polygon is a closed shape given by its vertices in drawing order.
// The last vertex connects back to the first.
//
// All transforms return a new polygon; the receiver is never modified, so a
// component's stored look can be shared with the renderer safely.
type Polygon []Vec2

// RectPolygon builds a four-vertex polygon covering r.
func RectPolygon(r Rect) Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Clone returns a copy of the polygon.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Bounds returns the axis-aligned bounding box.
// An empty polygon has zero bounds.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX = minf(minX, v.X)
		minY = minf(minY, v.Y)
		maxX = maxf(maxX, v.X)
		maxY = maxf(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Translate moves every vertex by d.
func (p Polygon) Translate(d Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// MoveTo translates the polygon so its bounding box starts at pos.
func (p Polygon) MoveTo(pos Vec2) Polygon {
	return p.Translate(pos.Sub(p.Bounds().Pos()))
}

// Scale multiplies every vertex by s (scaling about the origin).
func (p Polygon) Scale(s float32) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Mul(s)
	}
	return out
}

// Contains reports whether pt lies inside the polygon (even-odd rule).
func (p Polygon) Contains(pt Vec2) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			crossX := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
