package guinness

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"
	"weak"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidLength is returned when a text capacity is zero or negative.
	ErrInvalidLength = errors.New("guinness: text capacity must be at least 1")

	// ErrValueTooLong is returned when an initial value exceeds the capacity.
	ErrValueTooLong = errors.New("guinness: value exceeds text capacity")
)

// Component is a retained widget: one kind, one style, one logic, a text
// value and the callbacks the dispatcher fires.
//
// Value and BufferedValue are safe to use from callbacks running on worker
// goroutines; the flags are atomics.
type Component struct {
	id   uuid.UUID
	kind Kind

	mu            sync.Mutex
	value         string
	bufferedValue *string
	display       weak.Pointer[Display]

	enabled  atomic.Bool
	movable  atomic.Bool
	scalable atomic.Bool
	hovered  atomic.Bool

	style *Style
	logic *Logic

	onClick func(*Component)
	onHover func(*Component)
}

// NewComponent builds a component of the given kind.
//
// Text capacity comes from WithLength, or from the initial value when no
// length is given. A textfield needs a capacity of at least one; any
// explicit capacity must be positive; the initial value may not exceed it.
func NewComponent(kind Kind, opts ...ComponentOption) (*Component, error) {
	if kind == nil {
		kind = UnknownKind{}
	}
	cfg := componentConfig{movable: true, scalable: true, enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	valueLen := utf8.RuneCountInString(cfg.value)
	length := cfg.length
	if !cfg.lengthSet {
		length = valueLen
	}
	_, isTextfield := kind.(TextfieldKind)
	if length <= 0 && (cfg.lengthSet || isTextfield) {
		return nil, fmt.Errorf("new %s: capacity %d: %w", kind.Tag(), length, ErrInvalidLength)
	}
	if valueLen > length {
		return nil, fmt.Errorf("new %s: %q is %d characters, capacity %d: %w",
			kind.Tag(), cfg.value, valueLen, length, ErrValueTooLong)
	}

	c := &Component{
		id:      uuid.New(),
		kind:    kind,
		value:   cfg.value,
		style:   newStyle(cfg.design),
		logic:   newLogic(),
		onClick: cfg.onClick,
		onHover: cfg.onHover,
	}
	c.enabled.Store(cfg.enabled)
	c.movable.Store(cfg.movable)
	c.scalable.Store(cfg.scalable)

	s := c.style
	s.length = length
	s.location = cfg.location
	s.paddingTop, s.paddingBottom = cfg.paddingTop, cfg.paddingBottom
	s.image = cfg.image
	s.textAlign, s.transition = cfg.textAlign, cfg.transition
	if cfg.font != nil {
		s.font = cfg.font
	}
	if cfg.visibleSet {
		s.SetVisible(cfg.visible)
	}
	if cfg.primarySet {
		s.primaryColor = cfg.primary
	}
	for _, fn := range cfg.logic {
		fn(c.logic)
	}

	c.initLook(cfg)
	return c, nil
}

// initLook places the kind's geometry at the configured location.
func (c *Component) initLook(cfg componentConfig) {
	s := c.style
	switch k := c.kind.(type) {
	case PathKind:
		s.look = k.Points.Clone()
		s.location = s.look.Bounds().Pos()
	case *CheckboxKind:
		size := float32(s.font.size())
		if cfg.look != nil {
			size = cfg.look.Bounds().W
		}
		s.look = RectPolygon(Rect{X: s.location.X, Y: s.location.Y, W: size, H: size})
	case *SelectionBoxKind:
		c.UpdateShape()
	default:
		if !hasExplicitLook(c.kind) {
			c.UpdateShape()
			return
		}
		look := cfg.look
		if look == nil {
			look = RectPolygon(Rect{X: s.location.X, Y: s.location.Y})
		}
		if cfg.locationSet {
			s.look = look.MoveTo(s.location)
		} else {
			s.look = look.Clone()
			s.location = look.Bounds().Pos()
		}
	}
}

// ID returns the identifier the display registry knows this component by.
func (c *Component) ID() uuid.UUID { return c.id }

// Kind returns the kind; it never changes.
func (c *Component) Kind() Kind { return c.kind }

// Tag returns the kind tag.
func (c *Component) Tag() string { return c.kind.Tag() }

// Style returns the owned style.
func (c *Component) Style() *Style { return c.style }

// Logic returns the owned interaction policy.
func (c *Component) Logic() *Logic { return c.logic }

// Value returns the current text.
func (c *Component) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// BufferedValue returns the revert snapshot and whether one exists.
func (c *Component) BufferedValue() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bufferedValue == nil {
		return "", false
	}
	return *c.bufferedValue, true
}

// SetBufferedValue replaces the revert snapshot.
func (c *Component) SetBufferedValue(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bufferedValue = &v
}

// SetValue replaces the text. Values longer than the capacity are rejected
// and false is returned.
func (c *Component) SetValue(v string) bool {
	if utf8.RuneCountInString(v) > c.style.Length() {
		return false
	}
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.UpdateShape()
	return true
}

// Write appends r unless the value is at capacity. The previous value is
// kept for Revert.
func (c *Component) Write(r rune) {
	length := c.style.Length()
	c.mu.Lock()
	if utf8.RuneCountInString(c.value)+1 > length {
		c.mu.Unlock()
		return
	}
	prev := c.value
	c.bufferedValue = &prev
	c.value = prev + string(r)
	c.mu.Unlock()
	c.UpdateShape()
}

// EraseLastChar deletes the final character unless the value is empty.
// The previous value is kept for Revert.
func (c *Component) EraseLastChar() {
	c.mu.Lock()
	if c.value == "" {
		c.mu.Unlock()
		return
	}
	prev := c.value
	_, size := utf8.DecodeLastRuneInString(prev)
	c.bufferedValue = &prev
	c.value = prev[:len(prev)-size]
	c.mu.Unlock()
	c.UpdateShape()
}

// Revert restores the buffered value. Without one it does nothing.
func (c *Component) Revert() {
	length := c.style.Length()
	c.mu.Lock()
	if c.bufferedValue == nil || utf8.RuneCountInString(*c.bufferedValue) > length {
		c.mu.Unlock()
		return
	}
	c.value = *c.bufferedValue
	c.mu.Unlock()
	c.UpdateShape()
}

// IsCursorAtBeginning reports whether the value is empty.
func (c *Component) IsCursorAtBeginning() bool {
	return c.Value() == ""
}

// IsCursorAtEnd reports whether the value is at capacity.
func (c *Component) IsCursorAtEnd() bool {
	return utf8.RuneCountInString(c.Value())+1 > c.style.Length()
}

// SetLength changes the capacity. Capacities below one and capacities
// smaller than the current value are rejected.
func (c *Component) SetLength(n int) bool {
	if n <= 0 || utf8.RuneCountInString(c.Value()) > n {
		return false
	}
	c.style.setLength(n)
	c.UpdateShape()
	return true
}

// SetFont changes the font and recomputes the shape.
func (c *Component) SetFont(f *Font) {
	if f == nil {
		f = DefaultFont()
	}
	c.style.setFont(f)
	c.UpdateShape()
}

// SetPadding changes the vertical padding. The generated shape is only
// sized by font, capacity and thickness, so it stays as it is.
func (c *Component) SetPadding(top, bottom float32) {
	c.style.setPadding(top, bottom)
}

// SetDesign switches the rendering strategy and recomputes the shape.
func (c *Component) SetDesign(d *Design) {
	if d == nil {
		return
	}
	c.style.setDesign(d)
	c.UpdateShape()
}

// SetLocation moves the component within its layer.
func (c *Component) SetLocation(p Vec2) {
	c.style.setLocation(p)
	if _, ok := c.kind.(*SelectionBoxKind); ok {
		c.UpdateShape()
	}
}

// UpdateShape recomputes the generated look from font size and capacity.
// Kinds with an explicit look keep theirs.
func (c *Component) UpdateShape() {
	if d := c.style.Design(); d != nil {
		d.UpdateShape(c)
	}
}

// Enabled reports whether the component takes part in hit testing.
func (c *Component) Enabled() bool { return c.enabled.Load() }

// SetEnabled toggles hit testing.
func (c *Component) SetEnabled(v bool) { c.enabled.Store(v) }

// Movable reports whether the viewport offset applies.
func (c *Component) Movable() bool { return c.movable.Load() }

// SetMovable toggles the viewport offset.
func (c *Component) SetMovable(v bool) { c.movable.Store(v) }

// Scalable reports whether the viewport scale applies.
func (c *Component) Scalable() bool { return c.scalable.Load() }

// SetScalable toggles the viewport scale.
func (c *Component) SetScalable(v bool) { c.scalable.Store(v) }

// Hovered reports whether the pointer is on the component.
func (c *Component) Hovered() bool { return c.hovered.Load() }

func (c *Component) setHovered(v bool) { c.hovered.Store(v) }

// Display returns the owning display, or nil when the component is not
// attached or the display is gone.
func (c *Component) Display() *Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display.Value()
}

// attach records the owning display once. It reports false if another
// live display already owns the component.
func (c *Component) attach(d *Display) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if owner := c.display.Value(); owner != nil && owner != d {
		return false
	}
	c.display = weak.Make(d)
	return true
}

// detach clears the display handle if d still owns the component.
func (c *Component) detach(d *Display) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.display.Value() == d {
		c.display = weak.Pointer[Display]{}
	}
}

// Click runs the click behavior: checkboxes toggle, then the callback runs.
func (c *Component) Click() {
	if k, ok := c.kind.(*CheckboxKind); ok {
		k.Toggle()
	}
	if c.onClick != nil {
		c.onClick(c)
	}
}

// Hover runs the hover callback.
func (c *Component) Hover() {
	if c.onHover != nil {
		c.onHover(c)
	}
}

// SelectAt selects the selection-box option under the screen point p,
// undoing the owning display's viewport transform. It returns the option
// index or -1.
func (c *Component) SelectAt(p Vec2) int {
	k, ok := c.kind.(*SelectionBoxKind)
	if !ok {
		return -1
	}
	local := p
	if d := c.Display(); d != nil {
		local = d.Viewport().ToLocal(c, p)
	}
	i := k.OptionAt(local)
	k.Select(i)
	return i
}

// SetActive highlights the component with color, remembering the previous
// fill for SetInactive.
func (c *Component) SetActive(color uint32) bool {
	return c.style.BufferColor(color)
}

// SetInactive restores the fill saved by SetActive.
func (c *Component) SetInactive() bool {
	return c.style.RestoreColor()
}

// String implements fmt.Stringer.
func (c *Component) String() string {
	return fmt.Sprintf("%s(%s) %q", c.kind.Tag(), c.id.String()[:8], c.Value())
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c *Component) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", c.id.String()).Str("kind", c.kind.Tag()).Str("value", c.Value())
}
