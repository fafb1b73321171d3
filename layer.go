package guinness

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Layer is an ordered group of components sharing a visibility flag.
// Components painted later sit on top.
type Layer struct {
	Name string

	visible        atomic.Bool
	defaultVisible atomic.Bool

	mu         sync.RWMutex
	components []*Component
}

// NewLayer creates a visible layer whose components default to visible.
func NewLayer(name string) *Layer {
	l := &Layer{Name: name}
	l.visible.Store(true)
	l.defaultVisible.Store(true)
	return l
}

// IsVisible reports whether the layer is painted and hit tested.
func (l *Layer) IsVisible() bool { return l.visible.Load() }

// SetVisible shows or hides the whole layer.
func (l *Layer) SetVisible(v bool) { l.visible.Store(v) }

// SetDefaultVisible sets the visibility given to components added later
// whose visibility was never set explicitly.
func (l *Layer) SetDefaultVisible(v bool) { l.defaultVisible.Store(v) }

// Components returns a snapshot in paint order.
func (l *Layer) Components() []*Component {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.components)
}

// Len returns the number of components.
func (l *Layer) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.components)
}

// add appends components, filling unset visibility with the layer default.
func (l *Layer) add(cs ...*Component) {
	def := l.defaultVisible.Load()
	for _, c := range cs {
		c.Style().applyDefaultVisibility(def)
	}
	l.mu.Lock()
	l.components = append(l.components, cs...)
	l.mu.Unlock()
}

// contains reports whether c is in the layer.
func (l *Layer) contains(c *Component) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.components, c)
}

// remove drops c and reports whether it was present.
func (l *Layer) remove(c *Component) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.Index(l.components, c)
	if i < 0 {
		return false
	}
	l.components = slices.Delete(l.components, i, i+1)
	return true
}

// Viewport is the ordered set of layers of a display plus the pan offset
// and zoom scale applied to them.
type Viewport struct {
	mu     sync.RWMutex
	layers []*Layer
	offset Vec2
	scale  float32
}

// NewViewport creates an empty viewport with identity transform.
func NewViewport() *Viewport {
	return &Viewport{scale: 1}
}

// Layers returns a snapshot, bottom layer first.
func (v *Viewport) Layers() []*Layer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.layers)
}

func (v *Viewport) addLayer(l *Layer) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if slices.Contains(v.layers, l) {
		return false
	}
	v.layers = append(v.layers, l)
	return true
}

func (v *Viewport) hasLayer(l *Layer) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Contains(v.layers, l)
}

// Transform returns the offset and scale together.
func (v *Viewport) Transform() (Vec2, float32) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offset, v.scale
}

// Offset returns the pan offset.
func (v *Viewport) Offset() Vec2 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offset
}

// Scale returns the zoom factor.
func (v *Viewport) Scale() float32 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scale
}

// SetOffset sets the pan offset.
func (v *Viewport) SetOffset(p Vec2) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = p
}

// Pan moves the offset by d.
func (v *Viewport) Pan(d Vec2) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = v.offset.Add(d)
}

// SetScale sets the zoom factor. Non-positive factors are ignored.
func (v *Viewport) SetScale(s float32) {
	if s <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scale = s
}

// Zoom multiplies the scale by f. Non-positive factors are ignored.
func (v *Viewport) Zoom(f float32) {
	if f <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scale *= f
}

// ToLocal maps a screen point into the layer-local space of c, undoing
// whatever part of the transform applies to it.
func (v *Viewport) ToLocal(c *Component, p Vec2) Vec2 {
	offset, scale := v.Transform()
	if c.Scalable() && scale != 0 {
		p = p.Mul(1 / scale)
	}
	if c.Movable() {
		p = p.Sub(offset)
	}
	return p
}

// ToScreen maps a layer-local point of c to the screen.
func (v *Viewport) ToScreen(c *Component, p Vec2) Vec2 {
	offset, scale := v.Transform()
	return newTransform(c, offset, scale).point(p)
}
