package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guinness"
)

// GLFWInputAdapter feeds GLFW window events into a guinness.InputState and
// shows the cursor the dispatcher asked for.
//
// GLFW may only be called from the main thread, while the dispatcher sets
// the cursor from its own goroutine. The display only records the request;
// Update applies it.
type GLFWInputAdapter struct {
	window  *glfw.Window
	display *guinness.Display
	input   *guinness.InputState
	cursors map[guinness.CursorShape]*glfw.Cursor
	applied guinness.CursorShape
}

// NewGLFWInputAdapter installs the window callbacks. Focus is resolved by
// hit testing display.
func NewGLFWInputAdapter(window *glfw.Window, display *guinness.Display) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window:  window,
		display: display,
		input:   guinness.NewInputState(display),
		cursors: map[guinness.CursorShape]*glfw.Cursor{
			guinness.CursorDefault: glfw.CreateStandardCursor(glfw.ArrowCursor),
			guinness.CursorHand:    glfw.CreateStandardCursor(glfw.HandCursor),
			guinness.CursorText:    glfw.CreateStandardCursor(glfw.IBeamCursor),
		},
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update advances key repeat and applies the latest cursor request.
// Call it once per frame on the main thread, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update(dt float32) *guinness.InputState {
	a.input.UpdateKeyRepeat(dt)

	if shape := a.display.Cursor(); shape != a.applied {
		if cur, ok := a.cursors[shape]; ok {
			a.window.SetCursor(cur)
		}
		a.applied = shape
	}

	return a.input
}

// Input returns the input state to hand to a guinness.Dispatcher.
func (a *GLFWInputAdapter) Input() *guinness.InputState {
	return a.input
}

// Destroy releases the standard cursors.
func (a *GLFWInputAdapter) Destroy() {
	a.window.SetCursor(nil)
	for shape, cur := range a.cursors {
		cur.Destroy()
		delete(a.cursors, shape)
	}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == guinness.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps the GLFW keys guinness cares about. Printable keys are
// delivered through the char callback.
func glfwKeyToKey(key glfw.Key) guinness.Key {
	switch key {
	case glfw.KeyTab:
		return guinness.KeyTab
	case glfw.KeyLeft:
		return guinness.KeyLeft
	case glfw.KeyRight:
		return guinness.KeyRight
	case glfw.KeyUp:
		return guinness.KeyUp
	case glfw.KeyDown:
		return guinness.KeyDown
	case glfw.KeyHome:
		return guinness.KeyHome
	case glfw.KeyEnd:
		return guinness.KeyEnd
	case glfw.KeyDelete:
		return guinness.KeyDelete
	case glfw.KeyBackspace:
		return guinness.KeyBackspace
	case glfw.KeySpace:
		return guinness.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return guinness.KeyEnter
	case glfw.KeyEscape:
		return guinness.KeyEscape
	default:
		return guinness.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) guinness.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return guinness.MouseButtonLeft
	case glfw.MouseButtonRight:
		return guinness.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return guinness.MouseButtonMiddle
	default:
		return -1
	}
}
