package guinness

import (
	"sync"
	"sync/atomic"
)

// Kind selects how a component is rendered and how the dispatcher animates
// it. The set of kinds is closed: every variant is declared in this file.
// UnknownKind keeps room for tags this version does not know; it renders
// with the default routine.
type Kind interface {
	// Tag returns the kind name, e.g. "button".
	Tag() string
	isKind()
}

// Kind tags.
const (
	TagButton       = "button"
	TagTextfield    = "textfield"
	TagDescription  = "description"
	TagCheckbox     = "checkbox"
	TagSelectionBox = "selectionbox"
	TagRectangle    = "rectangle"
	TagImage        = "image"
	TagPath         = "path"
	TagPolyButton   = "polybutton"
)

// ButtonKind is a rectangular push button with a text label.
type ButtonKind struct{}

// TextfieldKind is a single-line text input with a fixed capacity.
type TextfieldKind struct{}

// DescriptionKind is static text.
type DescriptionKind struct{}

// RectangleKind is a filled rectangle decoration.
type RectangleKind struct{}

// ImageKind paints the style image into the component bounds.
type ImageKind struct{}

// PolyButtonKind is a button with an arbitrary polygon look.
type PolyButtonKind struct{}

// PathKind is a raw polygon painted in untransformed screen coordinates.
//
// Deprecated: paths ignore the viewport offset and scale. Only use them with
// an identity viewport transform; a non-identity transform is logged, not
// corrected. Use PolyButtonKind or RectangleKind for transformed shapes.
type PathKind struct {
	Points Polygon
	Fill   bool
}

// UnknownKind carries a tag this package has no dedicated routine for.
type UnknownKind struct {
	Name string
}

// CheckboxKind is a square toggle.
type CheckboxKind struct {
	checked atomic.Bool
}

func (ButtonKind) Tag() string      { return TagButton }
func (TextfieldKind) Tag() string   { return TagTextfield }
func (DescriptionKind) Tag() string { return TagDescription }
func (RectangleKind) Tag() string   { return TagRectangle }
func (ImageKind) Tag() string       { return TagImage }
func (PolyButtonKind) Tag() string  { return TagPolyButton }
func (PathKind) Tag() string        { return TagPath }
func (k UnknownKind) Tag() string   { return k.Name }
func (*CheckboxKind) Tag() string   { return TagCheckbox }
func (*SelectionBoxKind) Tag() string {
	return TagSelectionBox
}

func (ButtonKind) isKind()        {}
func (TextfieldKind) isKind()     {}
func (DescriptionKind) isKind()   {}
func (RectangleKind) isKind()     {}
func (ImageKind) isKind()         {}
func (PolyButtonKind) isKind()    {}
func (PathKind) isKind()          {}
func (UnknownKind) isKind()       {}
func (*CheckboxKind) isKind()     {}
func (*SelectionBoxKind) isKind() {}

// Checked reports whether the box is ticked.
func (k *CheckboxKind) Checked() bool { return k.checked.Load() }

// SetChecked sets the tick state.
func (k *CheckboxKind) SetChecked(v bool) { k.checked.Store(v) }

// Toggle flips the tick state and returns the new value.
func (k *CheckboxKind) Toggle() bool {
	for {
		old := k.checked.Load()
		if k.checked.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SelectionOption is one entry of a selection box.
type SelectionOption struct {
	Value string
	Color uint32 // label background; ColorNone paints none

	checked atomic.Bool
}

// NewSelectionOption creates an option with the given label.
func NewSelectionOption(value string) *SelectionOption {
	return &SelectionOption{Value: value}
}

// Checked reports whether the option is selected.
func (o *SelectionOption) Checked() bool { return o.checked.Load() }

// optionShape is the cached layer-local geometry of one option.
type optionShape struct {
	icon  Rect
	title Rect
}

// SelectionBoxKind is a vertical list of checkable options.
// With Single set, selecting an option clears all others.
type SelectionBoxKind struct {
	// Icons are the unchecked and checked marks.
	Icons  [2]*Image
	Single bool

	mu      sync.RWMutex
	options []*SelectionOption
	shapes  []optionShape
}

// NewSelectionBoxKind creates a selection box kind holding the options.
func NewSelectionBoxKind(single bool, options ...*SelectionOption) *SelectionBoxKind {
	return &SelectionBoxKind{Single: single, options: options}
}

// Options returns a snapshot of the options.
func (k *SelectionBoxKind) Options() []*SelectionOption {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]*SelectionOption, len(k.options))
	copy(out, k.options)
	return out
}

// Select checks option i. Out-of-range indexes are ignored.
func (k *SelectionBoxKind) Select(i int) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if i < 0 || i >= len(k.options) {
		return
	}
	if k.Single {
		for j, o := range k.options {
			o.checked.Store(j == i)
		}
		return
	}
	k.options[i].checked.Store(!k.options[i].checked.Load())
}

// Selected returns the indexes of all checked options.
func (k *SelectionBoxKind) Selected() []int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	var out []int
	for i, o := range k.options {
		if o.Checked() {
			out = append(out, i)
		}
	}
	return out
}

// OptionAt returns the option whose row contains the layer-local point p,
// or -1.
func (k *SelectionBoxKind) OptionAt(p Vec2) int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	for i, s := range k.shapes {
		row := Rect{X: s.icon.X, Y: s.icon.Y, W: s.title.X + s.title.W - s.icon.X, H: maxf(s.icon.H, s.title.H)}
		if row.Contains(p) {
			return i
		}
	}
	return -1
}

// layout recomputes the shape table from the box origin and returns the
// backing rectangle that encloses all rows.
func (k *SelectionBoxKind) layout(origin Vec2, fontSize, inner, border float32) Rect {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.shapes = k.shapes[:0]
	rowH := fontSize + inner
	width := float32(0)
	for i, o := range k.options {
		y := origin.Y + border + float32(i)*rowH
		icon := Rect{X: origin.X + border, Y: y, W: fontSize, H: fontSize}
		title := Rect{X: icon.X + fontSize + inner, Y: y, W: TextWidth(o.Value, fontSize), H: fontSize}
		k.shapes = append(k.shapes, optionShape{icon: icon, title: title})
		width = maxf(width, title.X+title.W-origin.X)
	}
	height := float32(len(k.options))*rowH - inner
	if height < 0 {
		height = 0
	}
	return Rect{X: origin.X, Y: origin.Y, W: width + border, H: height + 2*border}
}

// shapeTable returns a copy of the cached option geometry, index-aligned
// with options.
func (k *SelectionBoxKind) shapeTable() ([]*SelectionOption, []optionShape) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	opts := make([]*SelectionOption, len(k.shapes))
	copy(opts, k.options[:len(k.shapes)])
	shapes := make([]optionShape, len(k.shapes))
	copy(shapes, k.shapes)
	return opts, shapes
}

// hasExplicitLook reports whether the kind keeps the look it was built with
// instead of the generated text rectangle.
func hasExplicitLook(k Kind) bool {
	switch k.(type) {
	case RectangleKind, ImageKind, PolyButtonKind, PathKind, *CheckboxKind, *SelectionBoxKind:
		return true
	default:
		return false
	}
}
