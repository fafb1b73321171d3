package guinness

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrForeignComponent is returned when attaching a component that already
// belongs to another display.
var ErrForeignComponent = errors.New("guinness: component belongs to another display")

// CursorShape is the mouse cursor requested by the dispatcher.
type CursorShape int32

const (
	CursorDefault CursorShape = iota
	CursorHand
	CursorText
)

func (s CursorShape) String() string {
	switch s {
	case CursorDefault:
		return "default"
	case CursorHand:
		return "hand"
	case CursorText:
		return "text"
	default:
		return fmt.Sprintf("cursor(%d)", int32(s))
	}
}

// CursorSetter applies cursor changes to a window.
type CursorSetter interface {
	SetCursor(CursorShape)
}

// Display is the top-level context: one viewport, the registry of attached
// components and the cursor. Components refer back to it weakly, so
// dropping the display releases the whole tree.
type Display struct {
	viewport *Viewport

	mu       sync.RWMutex
	registry map[uuid.UUID]*Component

	cursor     atomic.Int32
	cursorSink CursorSetter

	log zerolog.Logger
}

// NewDisplay creates a display with an empty viewport.
func NewDisplay(opts ...DisplayOption) *Display {
	d := &Display{
		viewport: NewViewport(),
		registry: make(map[uuid.UUID]*Component),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Viewport returns the display's viewport.
func (d *Display) Viewport() *Viewport { return d.viewport }

// AddLayer appends a layer on top of the existing ones. Adding a layer
// twice is a no-op.
func (d *Display) AddLayer(l *Layer) {
	if d.viewport.addLayer(l) {
		d.log.Debug().Str("layer", l.Name).Msg("layer added")
	}
}

// Attach adds components to layer, adding the layer first if needed, and
// registers them with the display. A component already in the layer is
// left where it is.
func (d *Display) Attach(l *Layer, cs ...*Component) error {
	if !d.viewport.hasLayer(l) {
		d.AddLayer(l)
	}
	for _, c := range cs {
		if !c.attach(d) {
			return fmt.Errorf("attach %s to layer %q: %w", c, l.Name, ErrForeignComponent)
		}
		d.mu.Lock()
		d.registry[c.ID()] = c
		d.mu.Unlock()
		if l.contains(c) {
			continue
		}
		l.add(c)
	}
	return nil
}

// Detach removes c from l. Once no layer of the display holds c it leaves
// the registry and may be attached to another display.
func (d *Display) Detach(l *Layer, c *Component) bool {
	if !l.remove(c) {
		return false
	}
	for _, other := range d.viewport.Layers() {
		if other.contains(c) {
			return true
		}
	}
	d.mu.Lock()
	delete(d.registry, c.ID())
	d.mu.Unlock()
	c.detach(d)
	d.log.Debug().Object("component", c).Str("layer", l.Name).Msg("component detached")
	return true
}

// Lookup finds an attached component by id.
func (d *Display) Lookup(id uuid.UUID) (*Component, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.registry[id]
	return c, ok
}

// Len returns the number of attached components.
func (d *Display) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.registry)
}

// Components returns the components of visible layers, top-most first:
// upper layers before lower ones, later components before earlier ones.
func (d *Display) Components() []*Component {
	layers := d.viewport.Layers()
	var out []*Component
	for i := len(layers) - 1; i >= 0; i-- {
		if !layers[i].IsVisible() {
			continue
		}
		cs := layers[i].Components()
		for j := len(cs) - 1; j >= 0; j-- {
			out = append(out, cs[j])
		}
	}
	return out
}

// SetCursor records the requested cursor and forwards it to the cursor
// setter, if any.
func (d *Display) SetCursor(shape CursorShape) {
	d.cursor.Store(int32(shape))
	if d.cursorSink != nil {
		d.cursorSink.SetCursor(shape)
	}
}

// Cursor returns the last requested cursor.
func (d *Display) Cursor() CursorShape {
	return CursorShape(d.cursor.Load())
}

// Render paints every visible component of every visible layer, bottom
// layer first, under the current viewport transform.
func (d *Display) Render(cv Canvas) {
	offset, scale := d.viewport.Transform()
	for _, l := range d.viewport.Layers() {
		if !l.IsVisible() {
			continue
		}
		for _, c := range l.Components() {
			if !c.Style().IsVisible() {
				continue
			}
			c.Style().Design().Render(cv, c, offset, scale)
		}
	}
}
