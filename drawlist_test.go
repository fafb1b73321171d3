package guinness_test

import (
	"image"
	"testing"

	"github.com/go-theft-auto/guinness"
)

func TestDrawListPool(t *testing.T) {
	dl1 := guinness.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	dl1.FillRect(guinness.Rect{W: 100, H: 100}, guinness.ColorWhite)
	guinness.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := guinness.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	guinness.ReleaseDrawList(dl2)
}

func TestDrawListFillRect(t *testing.T) {
	dl := guinness.NewDrawList()
	dl.FillRect(guinness.Rect{X: 1, Y: 2, W: 3, H: 4}, guinness.ColorRed)
	dl.FillRect(guinness.Rect{W: 10, H: 10}, guinness.ColorNone)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(dl.IdxBuffer))
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{4, 6} {
		t.Errorf("bottom-right vertex = %v, want [4 6]", got)
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("expected one command of 6 elements, got %+v", dl.CmdBuffer)
	}
}

func TestDrawListFillPolygonFan(t *testing.T) {
	dl := guinness.NewDrawList()
	pentagon := guinness.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 12, Y: 6}, {X: 5, Y: 10}, {X: -2, Y: 6}}
	dl.FillPolygon(pentagon, guinness.ColorGreen)
	dl.FillPolygon(pentagon[:2], guinness.ColorGreen)
	dl.Finalize()

	if len(dl.VtxBuffer) != 5 {
		t.Errorf("expected 5 vertices, got %d", len(dl.VtxBuffer))
	}
	// Three triangles for five vertices.
	if len(dl.IdxBuffer) != 9 {
		t.Errorf("expected 9 indices, got %d", len(dl.IdxBuffer))
	}
}

func TestDrawListStrokePolygon(t *testing.T) {
	dl := guinness.NewDrawList()
	dl.StrokePolygon(guinness.RectPolygon(guinness.Rect{W: 10, H: 10}), guinness.ColorBlack, 1)
	dl.Finalize()

	// One quad per edge.
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("expected 16 vertices, got %d", len(dl.VtxBuffer))
	}
}

func TestDrawListBatchesByTexture(t *testing.T) {
	img := guinness.NewImage(image.NewRGBA(image.Rect(0, 0, 16, 8)))
	dl := guinness.NewDrawList()

	dl.DrawImage(img, image.Rect(0, 0, 8, 8), guinness.Rect{W: 8, H: 8}, guinness.ColorWhite)
	if len(dl.VtxBuffer) != 0 {
		t.Fatal("images without a texture must be skipped")
	}

	img.TextureID = 7
	dl.FillRect(guinness.Rect{W: 5, H: 5}, guinness.ColorWhite)
	dl.DrawImage(img, image.Rect(8, 0, 16, 8), guinness.Rect{W: 8, H: 8}, guinness.ColorWhite)
	dl.DrawImage(img, image.Rect(0, 0, 8, 8), guinness.Rect{X: 8, W: 8, H: 8}, guinness.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	cmd := dl.CmdBuffer[1]
	if cmd.TextureID != 7 || cmd.ElemCount != 12 {
		t.Errorf("texture command = %+v", cmd)
	}
	first := dl.VtxBuffer[4]
	if first.TexCoord != [2]float32{0.5, 0} {
		t.Errorf("uv of second cell = %v, want [0.5 0]", first.TexCoord)
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := guinness.NewDrawList()
	dl.PushClipRect(0, 0, 50, 50)
	dl.FillRect(guinness.Rect{W: 10, H: 10}, guinness.ColorWhite)
	dl.PopClipRect()
	dl.FillRect(guinness.Rect{W: 10, H: 10}, guinness.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ClipRect != [4]float32{0, 0, 50, 50} {
		t.Errorf("clip = %v", dl.CmdBuffer[0].ClipRect)
	}
	if dl.CmdBuffer[1].ClipRect[2] != 1e9 {
		t.Errorf("clip was not restored: %v", dl.CmdBuffer[1].ClipRect)
	}
}

func TestColorFunctions(t *testing.T) {
	c := guinness.RGBA(255, 128, 64, 200)
	r, g, b, a := guinness.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	if guinness.ColorNone&0xFF000000 != 0 {
		t.Error("ColorNone must be fully transparent")
	}
}
