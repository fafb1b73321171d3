package guinness

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// ComponentOption configures a component at construction.
type ComponentOption func(*componentConfig)

// componentConfig collects construction options. Flags that have a
// meaningful zero value carry a companion "Set" field.
type componentConfig struct {
	value     string
	length    int
	lengthSet bool

	location    Vec2
	locationSet bool
	look        Polygon

	design        *Design
	font          *Font
	image         *Image
	primary       uint32
	primarySet    bool
	paddingTop    float32
	paddingBottom float32
	textAlign     TextAlign
	transition    Vec2

	visible    bool
	visibleSet bool

	enabled  bool
	movable  bool
	scalable bool

	onClick func(*Component)
	onHover func(*Component)
	logic   []func(*Logic)
}

// WithValue sets the initial text.
func WithValue(v string) ComponentOption {
	return func(c *componentConfig) { c.value = v }
}

// WithLength sets the text capacity in characters.
func WithLength(n int) ComponentOption {
	return func(c *componentConfig) {
		c.length = n
		c.lengthSet = true
	}
}

// WithLocation sets the layer-local origin.
func WithLocation(x, y float32) ComponentOption {
	return func(c *componentConfig) {
		c.location = Vec2{X: x, Y: y}
		c.locationSet = true
	}
}

// WithLook sets an explicit shape. Only kinds that keep their own look
// (rectangle, image, polybutton, checkbox) use it; when WithLocation is
// also given the shape is moved there.
func WithLook(p Polygon) ComponentOption {
	return func(c *componentConfig) { c.look = p.Clone() }
}

// WithRect is WithLook for an axis-aligned rectangle.
func WithRect(r Rect) ComponentOption {
	return func(c *componentConfig) {
		c.look = RectPolygon(r)
		c.location = r.Pos()
		c.locationSet = true
	}
}

// WithDesign sets the rendering strategy. The default is ClassicDesign.
func WithDesign(d *Design) ComponentOption {
	return func(c *componentConfig) { c.design = d }
}

// WithFont sets the font.
func WithFont(f *Font) ComponentOption {
	return func(c *componentConfig) { c.font = f }
}

// WithImage sets the raster asset for image components.
func WithImage(img *Image) ComponentOption {
	return func(c *componentConfig) { c.image = img }
}

// WithPrimaryColor overrides the fill color taken from the design.
func WithPrimaryColor(color uint32) ComponentOption {
	return func(c *componentConfig) {
		c.primary = color
		c.primarySet = true
	}
}

// WithPadding sets the vertical padding stored on the style.
func WithPadding(top, bottom float32) ComponentOption {
	return func(c *componentConfig) {
		c.paddingTop = top
		c.paddingBottom = bottom
	}
}

// WithTextAlign positions the label of a poly button.
func WithTextAlign(a TextAlign, transition Vec2) ComponentOption {
	return func(c *componentConfig) {
		c.textAlign = a
		c.transition = transition
	}
}

// WithVisible sets the visibility explicitly, so layer defaults leave it alone.
func WithVisible(v bool) ComponentOption {
	return func(c *componentConfig) {
		c.visible = v
		c.visibleSet = true
	}
}

// WithEnabled toggles hit testing. Components are enabled by default.
func WithEnabled(v bool) ComponentOption {
	return func(c *componentConfig) { c.enabled = v }
}

// WithMovable toggles the viewport offset. Components are movable by default.
func WithMovable(v bool) ComponentOption {
	return func(c *componentConfig) { c.movable = v }
}

// WithScalable toggles the viewport scale. Components are scalable by default.
func WithScalable(v bool) ComponentOption {
	return func(c *componentConfig) { c.scalable = v }
}

// OnClick sets the click callback.
func OnClick(fn func(*Component)) ComponentOption {
	return func(c *componentConfig) { c.onClick = fn }
}

// OnHover sets the hover callback.
func OnHover(fn func(*Component)) ComponentOption {
	return func(c *componentConfig) { c.onHover = fn }
}

// WithLogic adjusts the interaction policy.
//
//	guinness.WithLogic(func(l *guinness.Logic) {
//		l.SetMultithreading(true)
//		l.SetDelayMs(50)
//	})
func WithLogic(fn func(*Logic)) ComponentOption {
	return func(c *componentConfig) { c.logic = append(c.logic, fn) }
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPoolSize sets the capacity of both callback pools. Values below one
// are ignored.
func WithPoolSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.poolSize = n
		}
	}
}

// WithTickInterval pauses the loop between ticks. Zero, the default, only
// yields the processor.
func WithTickInterval(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) {
		if d > 0 {
			disp.tickInterval = d
		}
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(l zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.log = l }
}

// WithMetrics registers dispatcher metrics on reg.
func WithMetrics(reg prometheus.Registerer) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = NewMetrics(reg) }
}

// WithCursorSetter forwards cursor changes to a window backend.
func WithCursorSetter(cs CursorSetter) DisplayOption {
	return func(d *Display) { d.cursorSink = cs }
}

// WithDisplayLogger sets the display logger.
func WithDisplayLogger(l zerolog.Logger) DisplayOption {
	return func(d *Display) { d.log = l }
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)
