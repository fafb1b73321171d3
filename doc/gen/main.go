// Command gen renders every component kind with sample data and saves JPEG
// screenshots to doc/imgs/. It paints through the raster canvas, so it
// needs no window or GPU.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/guinness"
	"github.com/go-theft-auto/guinness/glyph"
	"github.com/go-theft-auto/guinness/raster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single component screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	build  func(k *kit) ([]*guinness.Component, error)
	scale  float32 // viewport zoom, 0 = 1
}

// kit carries the shared design and font into the builders.
type kit struct {
	design *guinness.Design
	font   *guinness.Font
}

func (k *kit) opts(extra ...guinness.ComponentOption) []guinness.ComponentOption {
	return append([]guinness.ComponentOption{guinness.WithDesign(k.design), guinness.WithFont(k.font)}, extra...)
}

func run() error {
	atlas, err := glyph.Default()
	if err != nil {
		return fmt.Errorf("glyph atlas: %w", err)
	}
	k := &kit{
		design: guinness.ClassicDesign(),
		font:   atlas.Font(guinness.DefaultFontSize, guinness.ColorNone),
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(k, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(k *kit, s screenshot, outDir string) error {
	components, err := s.build(k)
	if err != nil {
		return err
	}

	// Fresh display per screenshot so nothing leaks between captures.
	display := guinness.NewDisplay()
	if s.scale > 0 {
		display.Viewport().SetScale(s.scale)
	}
	if err := display.Attach(guinness.NewLayer(s.name), components...); err != nil {
		return err
	}

	cv := raster.New(s.width, s.height)
	cv.Clear(guinness.RGBA(0x1F, 0x1F, 0x24, 0xFF))
	display.Render(cv)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, cv.Image(), &jpeg.Options{Quality: 92}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "button", width: 220, height: 70,
			build: func(k *kit) ([]*guinness.Component, error) {
				b, err := guinness.NewButton("Click me", k.opts(guinness.WithLocation(16, 16))...)
				return []*guinness.Component{b}, err
			},
		},
		{
			name: "button_hover", width: 220, height: 70,
			build: func(k *kit) ([]*guinness.Component, error) {
				b, err := guinness.NewButton("Hovered", k.opts(
					guinness.WithLocation(16, 16),
					guinness.WithPrimaryColor(k.design.HoverColor),
				)...)
				return []*guinness.Component{b}, err
			},
		},
		{
			name: "textfield", width: 300, height: 70,
			build: func(k *kit) ([]*guinness.Component, error) {
				tf, err := guinness.NewTextfield(12, k.opts(guinness.WithLocation(16, 16))...)
				if err != nil {
					return nil, err
				}
				for _, r := range "hello" {
					tf.Write(r)
				}
				return []*guinness.Component{tf}, nil
			},
		},
		{
			name: "textfield_captured", width: 300, height: 70,
			build: func(k *kit) ([]*guinness.Component, error) {
				tf, err := guinness.NewTextfield(12, k.opts(
					guinness.WithLocation(16, 16),
					guinness.WithValue("typing"),
				)...)
				if err != nil {
					return nil, err
				}
				tf.SetActive(k.design.ActiveColor)
				return []*guinness.Component{tf}, nil
			},
		},
		{
			name: "description", width: 260, height: 60,
			build: func(k *kit) ([]*guinness.Component, error) {
				d, err := guinness.NewDescription("Static label", k.opts(guinness.WithLocation(16, 16))...)
				return []*guinness.Component{d}, err
			},
		},
		{
			name: "checkbox", width: 120, height: 60,
			build: func(k *kit) ([]*guinness.Component, error) {
				off, err := guinness.NewCheckbox(false, k.opts(guinness.WithLocation(16, 16))...)
				if err != nil {
					return nil, err
				}
				on, err := guinness.NewCheckbox(true, k.opts(guinness.WithLocation(64, 16))...)
				return []*guinness.Component{off, on}, err
			},
		},
		{
			name: "selectionbox", width: 220, height: 120,
			build: func(k *kit) ([]*guinness.Component, error) {
				sb, err := guinness.NewSelectionBox(true, []string{"small", "medium", "large"}, k.opts(guinness.WithLocation(16, 16))...)
				if err != nil {
					return nil, err
				}
				sb.Kind().(*guinness.SelectionBoxKind).Select(1)
				return []*guinness.Component{sb}, nil
			},
		},
		{
			name: "rectangle", width: 160, height: 100,
			build: func(k *kit) ([]*guinness.Component, error) {
				r, err := guinness.NewRectangle(guinness.Rect{X: 16, Y: 16, W: 128, H: 68},
					guinness.RGBA(0x70, 0xA0, 0xD0, 0xFF), guinness.WithDesign(k.design))
				return []*guinness.Component{r}, err
			},
		},
		{
			name: "image", width: 160, height: 160,
			build: func(k *kit) ([]*guinness.Component, error) {
				// The glyph atlas itself makes a recognizable picture.
				img, err := guinness.NewImageComponent(k.font.Glyphs.Atlas(),
					guinness.Rect{X: 16, Y: 16, W: 128, H: 128}, guinness.WithDesign(k.design))
				return []*guinness.Component{img}, err
			},
		},
		{
			name: "polybutton", width: 200, height: 90,
			build: func(k *kit) ([]*guinness.Component, error) {
				pb, err := guinness.NewPolyButton("Go", guinness.Polygon{
					{X: 0, Y: 0}, {X: 120, Y: 0}, {X: 160, Y: 28}, {X: 120, Y: 56}, {X: 0, Y: 56},
				}, k.opts(
					guinness.WithLocation(16, 16),
					guinness.WithTextAlign(guinness.AlignCenter, guinness.Vec2{X: -12}),
					guinness.WithPrimaryColor(guinness.RGBA(0x70, 0xA0, 0xD0, 0xFF)),
				)...)
				return []*guinness.Component{pb}, err
			},
		},
		{
			name: "path", width: 160, height: 100,
			build: func(k *kit) ([]*guinness.Component, error) {
				p, err := guinness.NewPath(guinness.Polygon{{X: 20, Y: 80}, {X: 80, Y: 16}, {X: 140, Y: 80}},
					false, guinness.RGBA(0xE0, 0xC0, 0x40, 0xFF), guinness.WithDesign(k.design))
				return []*guinness.Component{p}, err
			},
		},
		{
			name: "zoomed", width: 440, height: 140, scale: 2,
			build: func(k *kit) ([]*guinness.Component, error) {
				b, err := guinness.NewButton("Zoom x2", k.opts(guinness.WithLocation(8, 8))...)
				if err != nil {
					return nil, err
				}
				pinned, err := guinness.NewDescription("pinned", k.opts(
					guinness.WithLocation(300, 100),
					guinness.WithScalable(false),
				)...)
				return []*guinness.Component{b, pinned}, err
			},
		},
	}
}
