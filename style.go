package guinness

import "sync"

// Visibility is a tri-state flag. A layer fills VisibilityUnset with its
// default when a component is added, but never overrides an explicit choice.
type Visibility int8

const (
	VisibilityUnset Visibility = iota
	Visible
	Hidden
)

// TextAlign positions the label of a poly button.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Style holds the visual attributes of a component.
//
// The dispatcher writes colors while the paint loop reads them on another
// goroutine, so every accessor takes the style lock.
type Style struct {
	mu sync.RWMutex

	design        *Design
	look          Polygon // layer-local, unscaled, untranslated
	visible       Visibility
	length        int
	font          *Font
	primaryColor  uint32
	bufferedColor uint32
	location      Vec2
	paddingTop    float32
	paddingBottom float32
	textAlign     TextAlign
	transition    Vec2
	image         *Image
}

func newStyle(design *Design) *Style {
	if design == nil {
		design = defaultDesign()
	}
	return &Style{
		design:       design,
		font:         DefaultFont(),
		primaryColor: design.BackgroundColor,
	}
}

// Design returns the active rendering strategy.
func (s *Style) Design() *Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.design
}

// Look returns the layer-local shape.
func (s *Style) Look() Polygon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.look
}

// Bounds returns the bounding box of the look.
func (s *Style) Bounds() Rect {
	return s.Look().Bounds()
}

// Visibility returns the tri-state visibility.
func (s *Style) Visibility() Visibility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// IsVisible treats an unset visibility as visible.
func (s *Style) IsVisible() bool {
	return s.Visibility() != Hidden
}

// SetVisible sets the visibility explicitly.
func (s *Style) SetVisible(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v {
		s.visible = Visible
	} else {
		s.visible = Hidden
	}
}

// applyDefaultVisibility fills an unset visibility and reports whether it did.
func (s *Style) applyDefaultVisibility(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible != VisibilityUnset {
		return false
	}
	if v {
		s.visible = Visible
	} else {
		s.visible = Hidden
	}
	return true
}

// Length returns the character capacity.
func (s *Style) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length
}

// Font returns the font.
func (s *Style) Font() *Font {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.font
}

// PrimaryColor returns the current fill color.
func (s *Style) PrimaryColor() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primaryColor
}

// SetPrimaryColor replaces the fill color.
func (s *Style) SetPrimaryColor(c uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primaryColor = c
}

// BufferedColor returns the color saved by BufferColor, or ColorNone.
func (s *Style) BufferedColor() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bufferedColor
}

// BufferColor saves the primary color and switches to c.
// It reports false when there is no primary color to save.
func (s *Style) BufferColor(c uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.primaryColor == ColorNone {
		return false
	}
	s.bufferedColor = s.primaryColor
	s.primaryColor = c
	return true
}

// RestoreColor undoes BufferColor. Without a buffered color it is a no-op
// and reports false.
func (s *Style) RestoreColor() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bufferedColor == ColorNone {
		return false
	}
	s.primaryColor = s.bufferedColor
	s.bufferedColor = ColorNone
	return true
}

// Location returns the layer-local origin of the component.
func (s *Style) Location() Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// Padding returns the top and bottom padding.
func (s *Style) Padding() (top, bottom float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paddingTop, s.paddingBottom
}

// TextAlign returns the label alignment and its pixel transition offset.
func (s *Style) TextAlign() (TextAlign, Vec2) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textAlign, s.transition
}

// SetTextAlign sets the label alignment and transition offset.
func (s *Style) SetTextAlign(a TextAlign, transition Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textAlign = a
	s.transition = transition
}

// Image returns the optional raster asset.
func (s *Style) Image() *Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image
}

// SetImage sets the raster asset.
func (s *Style) SetImage(img *Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image = img
}

// Setters below change inputs of the generated shape. They are unexported;
// Component wraps them so the shape is recomputed afterwards.

func (s *Style) setDesign(d *Design) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.design = d
}

func (s *Style) setLook(p Polygon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.look = p
}

func (s *Style) setLength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.length = n
}

func (s *Style) setFont(f *Font) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.font = f
}

func (s *Style) setPadding(top, bottom float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paddingTop = top
	s.paddingBottom = bottom
}

// setLocation moves the origin and drags the look along with it.
func (s *Style) setLocation(p Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delta := p.Sub(s.location)
	s.location = p
	if len(s.look) > 0 && !delta.IsZero() {
		s.look = s.look.Translate(delta)
	}
}
