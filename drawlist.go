package guinness

import (
	"image"
	"math"
	"sync"
)

// drawListPool provides efficient reuse of DrawList buffers.
// The whole component set is repainted every frame, so reusing the vertex
// and index slices keeps the paint cycle allocation free.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame and implements Canvas for
// GPU backends. Primitives are batched by texture to minimize state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

var _ Canvas = (*DrawList)(nil)

// NewDrawList creates an empty DrawList outside the pool.
func NewDrawList() *DrawList {
	dl := &DrawList{}
	dl.Clear()
	return dl
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw() // Force new command with new clip rect
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw() // Force new command with restored clip rect
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		// Finalize any pending primitives with the old texture first
		if len(dl.CmdBuffer) > 0 {
			lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
			lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		}
		dl.textureID = textureID
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ClipRect:     dl.currentClip,
			TextureID:    dl.textureID,
			VertexOffset: uint32(len(dl.VtxBuffer)),
			IndexOffset:  uint32(len(dl.IdxBuffer)),
		})
		dl.cmdOffset = uint32(len(dl.VtxBuffer))
		dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// ensureCommand ensures there's an active draw command.
func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	dl.ensureCommand()
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// FillRect draws a filled rectangle.
func (dl *DrawList) FillRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.SetTexture(0)

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// FillPolygon fills a polygon as a triangle fan around its first vertex.
// The fan is exact for convex polygons; concave looks should be split by
// the caller or painted on a raster canvas.
func (dl *DrawList) FillPolygon(p Polygon, color uint32) {
	if color&0xFF000000 == 0 || len(p) < 3 {
		return
	}
	dl.SetTexture(0)

	verts := make([]Vertex, len(p))
	for i, v := range p {
		verts[i] = Vertex{Pos: [2]float32{v.X, v.Y}, Color: color}
	}
	idx := dl.addVertices(verts...)
	for i := 1; i < len(p)-1; i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i+1))
	}
}

// StrokePolygon draws the closed outline of a polygon.
func (dl *DrawList) StrokePolygon(p Polygon, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || len(p) < 2 {
		return
	}
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		dl.AddLine(a.X, a.Y, b.X, b.Y, color, thickness)
	}
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// DrawImage draws the src region of an uploaded image into dst.
// Images without a texture are skipped; the backend uploads them first
// (see opengl.Renderer.Upload).
func (dl *DrawList) DrawImage(img *Image, src image.Rectangle, dst Rect, tint uint32) {
	if img == nil || img.TextureID == 0 || tint&0xFF000000 == 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || src.Empty() {
		return
	}
	dl.SetTexture(img.TextureID)

	u0 := float32(src.Min.X-b.Min.X) / float32(b.Dx())
	v0 := float32(src.Min.Y-b.Min.Y) / float32(b.Dy())
	u1 := float32(src.Max.X-b.Min.X) / float32(b.Dx())
	v1 := float32(src.Max.Y-b.Min.Y) / float32(b.Dy())

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{dst.X, dst.Y}, TexCoord: [2]float32{u0, v0}, Color: tint},
		Vertex{Pos: [2]float32{dst.X + dst.W, dst.Y}, TexCoord: [2]float32{u1, v0}, Color: tint},
		Vertex{Pos: [2]float32{dst.X + dst.W, dst.Y + dst.H}, TexCoord: [2]float32{u1, v1}, Color: tint},
		Vertex{Pos: [2]float32{dst.X, dst.Y + dst.H}, TexCoord: [2]float32{u0, v1}, Color: tint},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
