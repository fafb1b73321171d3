/*
Package guinness provides a retained-mode GUI component toolkit.

Components (buttons, text fields, checkboxes, selection boxes and
decorations) live in layers on a Display. The display paints them onto a
Canvas under a pan/zoom viewport, and a Dispatcher running on its own
goroutine turns pointer and keyboard state into focus, hover, click and
text-entry behavior.

# Quick Start

	display := guinness.NewDisplay()
	layer := guinness.NewLayer("main")

	ok, _ := guinness.NewButton("OK",
	    guinness.WithLocation(40, 40),
	    guinness.OnClick(func(c *guinness.Component) { log.Println("clicked") }),
	)
	name, _ := guinness.NewTextfield(12, guinness.WithLocation(40, 90))
	_ = display.Attach(layer, ok, name)

	adapter := opengl.NewGLFWInputAdapter(window, display)
	dispatcher := guinness.NewDispatcher(display, adapter.Input())
	go dispatcher.Run(ctx)

	// Render loop, on the window thread
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    adapter.Update(dt)
	    dl.Clear()
	    display.Render(dl)
	    renderer.Render(dl)
	}

# Components

A Component has exactly one Kind, chosen at construction:

	ButtonKind        push button with a label
	TextfieldKind     single-line input with a fixed capacity
	DescriptionKind   static text
	CheckboxKind      square toggle
	SelectionBoxKind  vertical list of checkable options
	RectangleKind     filled rectangle
	ImageKind         image scaled into the bounds
	PolyButtonKind    button with a polygon look
	PathKind          raw polygon (identity viewport only)
	UnknownKind       any other tag, painted with the default routine

Text capacity is fixed: Write past it and EraseLastChar on an empty value
are no-ops, and every edit keeps the previous value for Revert.

# Rendering

A Design paints one component per call. Screen coordinates follow

	screen = (local + offset) * scale

where offset applies only to movable components and scale only to
scalable ones. Shapes are recomputed when value, font or capacity change, never
while painting.

Two canvases ship with the module: DrawList batches vertices for the
OpenGL backend, raster.Canvas paints into an *image.RGBA.

# Dispatching

Each Tick polls the InputDriver once:

 1. Resolve the focused component and the click state.
 2. Mark repeated hover and repeated click.
 3. Enable the keyboard while a text field is captured.
 4. Move capture on click, type into the captured field, fire callbacks.
 5. Recolor buttons and set the cursor.
 6. Remember click and hover for the next tick.

Callbacks run inline, or on a bounded click or hover pool when the
component's Logic enables multithreading. A component's delay pauses the
whole loop after it fires.
*/
package guinness
