package guinness

import (
	"image"
	"sync"
)

// drawOp is one call recorded by recordingCanvas.
type drawOp struct {
	op    string // rect, polygon, stroke, image
	rect  Rect
	poly  Polygon
	src   image.Rectangle
	color uint32
}

type recordingCanvas struct {
	mu  sync.Mutex
	ops []drawOp
}

func (r *recordingCanvas) FillRect(rect Rect, color uint32) {
	r.record(drawOp{op: "rect", rect: rect, color: color})
}

func (r *recordingCanvas) FillPolygon(p Polygon, color uint32) {
	r.record(drawOp{op: "polygon", poly: p.Clone(), color: color})
}

func (r *recordingCanvas) StrokePolygon(p Polygon, color uint32, thickness float32) {
	r.record(drawOp{op: "stroke", poly: p.Clone(), color: color})
}

func (r *recordingCanvas) DrawImage(img *Image, src image.Rectangle, dst Rect, tint uint32) {
	r.record(drawOp{op: "image", rect: dst, src: src, color: tint})
}

func (r *recordingCanvas) record(op drawOp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *recordingCanvas) filter(op string) []drawOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []drawOp
	for _, o := range r.ops {
		if o.op == op {
			out = append(out, o)
		}
	}
	return out
}

// fakeGlyphs is an 8px atlas holding a few lowercase letters. Cell 0 is the
// not-found glyph.
type fakeGlyphs struct {
	atlas *Image
	index map[rune]int
}

func newFakeGlyphs(runes string) *fakeGlyphs {
	g := &fakeGlyphs{index: make(map[rune]int)}
	for i, r := range []rune(runes) {
		g.index[r] = i + 1
	}
	g.atlas = NewImage(image.NewRGBA(image.Rect(0, 0, 8*(len(g.index)+1), 8)))
	return g
}

func (g *fakeGlyphs) IndexOf(r rune) int {
	if i, ok := g.index[r]; ok {
		return i
	}
	return -1
}

func (g *fakeGlyphs) IsImplemented(r rune) bool {
	_, ok := g.index[r]
	return ok
}

func (g *fakeGlyphs) IsDisplayableCode(k KeyCode) bool {
	return g.IsImplemented(rune(k))
}

func (g *fakeGlyphs) NotFoundIndex() int { return 0 }

func (g *fakeGlyphs) CellRect(i int) image.Rectangle {
	return image.Rect(i*8, 0, i*8+8, 8)
}

func (g *fakeGlyphs) Atlas() *Image { return g.atlas }

// recordingCursor collects cursor requests.
type recordingCursor struct {
	mu     sync.Mutex
	shapes []CursorShape
}

func (r *recordingCursor) SetCursor(s CursorShape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes = append(r.shapes, s)
}

func (r *recordingCursor) calls() []CursorShape {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CursorShape(nil), r.shapes...)
}
