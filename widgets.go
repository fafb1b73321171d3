package guinness

// Convenience constructors for the built-in kinds. Options given by the
// caller are applied after the defaults set here, so they win.

// NewButton creates a push button labeled value.
func NewButton(value string, opts ...ComponentOption) (*Component, error) {
	return NewComponent(ButtonKind{}, prepend(opts, WithValue(value))...)
}

// NewTextfield creates an empty text field holding at most length characters.
// The field is white until it captures the keyboard.
func NewTextfield(length int, opts ...ComponentOption) (*Component, error) {
	return NewComponent(TextfieldKind{}, prepend(opts, WithLength(length), WithPrimaryColor(ColorWhite))...)
}

// NewDescription creates a static label.
func NewDescription(value string, opts ...ComponentOption) (*Component, error) {
	return NewComponent(DescriptionKind{}, prepend(opts, WithValue(value))...)
}

// NewCheckbox creates a checkbox of the font's size.
// Use WithLook to give it another size.
func NewCheckbox(checked bool, opts ...ComponentOption) (*Component, error) {
	k := &CheckboxKind{}
	k.SetChecked(checked)
	return NewComponent(k, opts...)
}

// NewSelectionBox creates a vertical list of options. With single set,
// at most one option is selected at a time.
func NewSelectionBox(single bool, values []string, opts ...ComponentOption) (*Component, error) {
	options := make([]*SelectionOption, len(values))
	for i, v := range values {
		options[i] = NewSelectionOption(v)
	}
	return NewComponent(NewSelectionBoxKind(single, options...), opts...)
}

// NewRectangle creates a filled rectangle decoration.
func NewRectangle(r Rect, color uint32, opts ...ComponentOption) (*Component, error) {
	return NewComponent(RectangleKind{}, prepend(opts, WithRect(r), WithPrimaryColor(color))...)
}

// NewImageComponent creates a component that paints img into r.
func NewImageComponent(img *Image, r Rect, opts ...ComponentOption) (*Component, error) {
	return NewComponent(ImageKind{}, prepend(opts, WithRect(r), WithImage(img))...)
}

// NewPath creates a raw polygon decoration.
//
// Deprecated: paths ignore the viewport transform. See PathKind.
func NewPath(points Polygon, fill bool, color uint32, opts ...ComponentOption) (*Component, error) {
	return NewComponent(PathKind{Points: points.Clone(), Fill: fill}, prepend(opts, WithPrimaryColor(color))...)
}

// NewPolyButton creates a button with an arbitrary polygon look.
func NewPolyButton(value string, look Polygon, opts ...ComponentOption) (*Component, error) {
	return NewComponent(PolyButtonKind{}, prepend(opts, WithValue(value), WithLook(look))...)
}

func prepend(opts []ComponentOption, defaults ...ComponentOption) []ComponentOption {
	return append(defaults, opts...)
}
