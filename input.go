package guinness

import "sync"

// InputDriver is what the dispatcher polls each tick.
type InputDriver interface {
	// FocusedComponent returns the component under the pointer, or nil.
	FocusedComponent() *Component

	// IsClicking reports whether the primary button is held.
	IsClicking() bool

	// Keyboard returns the keyboard sub-driver.
	Keyboard() KeyboardDriver

	// IsNoListenerActive reports whether the dispatcher has nothing to
	// switch off: the keyboard is already idle, or another listener needs it.
	IsNoListenerActive() bool
}

// KeyboardDriver delivers typed keys while enabled.
type KeyboardDriver interface {
	// ActiveKey returns the next pending key, or KeyCodeNone.
	ActiveKey() KeyCode
	Enable()
	Disable()
	Enabled() bool
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a physical keyboard key reported by a window backend.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// keyCodes maps physical keys to the codes delivered to text fields.
// Printable keys arrive through AddInputChar instead.
var keyCodes = map[Key]KeyCode{
	KeyTab:       KeyCodeTab,
	KeyDelete:    KeyCodeDelete,
	KeyBackspace: KeyCodeBackspace,
	KeyEnter:     KeyCodeEnter,
	KeyEscape:    KeyCodeEscape,
}

// InputState is the built-in InputDriver. A window backend feeds it from
// its event callbacks on the main thread while the dispatcher polls it from
// its own goroutine, so all state sits behind one mutex.
type InputState struct {
	display *Display

	mu        sync.Mutex
	mouse     Vec2
	mouseDown [MouseButtonCount]bool
	wheel     Vec2

	keyDown     [KeyCount]bool
	keyHoldTime [KeyCount]float32 // How long each key has been held

	listeners int
	keyboard  *Keyboard
}

var _ InputDriver = (*InputState)(nil)

// NewInputState creates an input state that resolves focus by hit testing d.
func NewInputState(d *Display) *InputState {
	return &InputState{
		display:  d,
		keyboard: NewKeyboard(),
	}
}

// FocusedComponent hit tests the display at the pointer position.
func (s *InputState) FocusedComponent() *Component {
	if s.display == nil {
		return nil
	}
	return s.display.ComponentAt(s.MousePos())
}

// IsClicking reports whether the left button is held.
func (s *InputState) IsClicking() bool {
	return s.MouseDown(MouseButtonLeft)
}

// Keyboard returns the keyboard queue.
func (s *InputState) Keyboard() KeyboardDriver {
	return s.keyboard
}

// IsNoListenerActive reports true while the keyboard is disabled or an
// AddKeyListener is outstanding, so the dispatcher only disables a keyboard
// it enabled itself.
func (s *InputState) IsNoListenerActive() bool {
	s.mu.Lock()
	listeners := s.listeners
	s.mu.Unlock()
	return listeners > 0 || !s.keyboard.Enabled()
}

// AddKeyListener registers an extra keyboard consumer and enables the
// keyboard. While any is registered the dispatcher leaves it enabled.
func (s *InputState) AddKeyListener() {
	s.mu.Lock()
	s.listeners++
	s.mu.Unlock()
	s.keyboard.Enable()
}

// RemoveKeyListener undoes AddKeyListener.
func (s *InputState) RemoveKeyListener() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners > 0 {
		s.listeners--
	}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse = Vec2{X: x, Y: y}
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseDown[button] = down
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseDown[button]
}

// AddMouseWheel accumulates wheel movement until TakeMouseWheel.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wheel = s.wheel.Add(Vec2{X: x, Y: y})
}

// TakeMouseWheel returns and clears the accumulated wheel movement.
func (s *InputState) TakeMouseWheel() Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.wheel
	s.wheel = Vec2{}
	return w
}

// SetKey sets key state. Pressing a control key queues its key code.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.mu.Lock()
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down != wasDown {
		s.keyHoldTime[key] = 0 // Reset hold time on press and release
	}
	s.mu.Unlock()

	if down && !wasDown {
		if code, ok := keyCodes[key]; ok {
			s.keyboard.push(code)
		}
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyDown[key]
}

// UpdateKeyRepeat advances hold times and queues repeated key codes for
// held control keys (holding backspace keeps erasing).
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	var repeated []KeyCode
	s.mu.Lock()
	for key := Key(0); key < KeyCount; key++ {
		if !s.keyDown[key] {
			continue
		}
		prev := s.keyHoldTime[key]
		s.keyHoldTime[key] += dt
		code, ok := keyCodes[key]
		if ok && crossedRepeat(prev, s.keyHoldTime[key]) {
			repeated = append(repeated, code)
		}
	}
	s.mu.Unlock()

	for _, code := range repeated {
		s.keyboard.push(code)
	}
}

// crossedRepeat reports whether a repeat boundary lies in (prev, now].
// Returns true after KeyRepeatDelay, then every KeyRepeatInterval.
func crossedRepeat(prev, now float32) bool {
	if now < KeyRepeatDelay {
		return false
	}
	if prev < KeyRepeatDelay {
		return true
	}
	return int((now-KeyRepeatDelay)/KeyRepeatInterval) > int((prev-KeyRepeatDelay)/KeyRepeatInterval)
}

// AddInputChar queues a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.keyboard.push(KeyCode(ch))
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "--"
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyDelete:
		return "Del"
	case KeyBackspace:
		return "Backspace"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	default:
		return "?"
	}
}

// Keyboard is a queue of key codes that only accepts keys while enabled.
type Keyboard struct {
	mu      sync.Mutex
	enabled bool
	queue   []KeyCode
}

var _ KeyboardDriver = (*Keyboard)(nil)

// maxQueuedKeys bounds the queue when keys arrive faster than ticks.
const maxQueuedKeys = 64

// NewKeyboard creates a disabled keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{queue: make([]KeyCode, 0, 16)}
}

// ActiveKey pops the oldest pending key.
func (k *Keyboard) ActiveKey() KeyCode {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.queue) == 0 {
		return KeyCodeNone
	}
	code := k.queue[0]
	k.queue = k.queue[1:]
	return code
}

// Enable starts accepting keys.
func (k *Keyboard) Enable() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.enabled = true
}

// Disable stops accepting keys and drops any pending ones.
func (k *Keyboard) Disable() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.enabled = false
	k.queue = k.queue[:0]
}

// Enabled reports whether keys are accepted.
func (k *Keyboard) Enabled() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.enabled
}

func (k *Keyboard) push(code KeyCode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.enabled || len(k.queue) >= maxQueuedKeys {
		return
	}
	k.queue = append(k.queue, code)
}
