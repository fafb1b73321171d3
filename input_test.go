package guinness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardQueue(t *testing.T) {
	k := NewKeyboard()
	k.push('a')
	assert.Equal(t, KeyCodeNone, k.ActiveKey(), "a disabled keyboard drops keys")

	k.Enable()
	k.push('a')
	k.push('b')
	assert.Equal(t, KeyCode('a'), k.ActiveKey())
	assert.Equal(t, KeyCode('b'), k.ActiveKey())
	assert.Equal(t, KeyCodeNone, k.ActiveKey())

	for i := 0; i < maxQueuedKeys+10; i++ {
		k.push('x')
	}
	n := 0
	for k.ActiveKey() != KeyCodeNone {
		n++
	}
	assert.Equal(t, maxQueuedKeys, n)

	k.push('z')
	k.Disable()
	assert.False(t, k.Enabled())
	k.Enable()
	assert.Equal(t, KeyCodeNone, k.ActiveKey(), "disable drops pending keys")
}

func TestSetKeyQueuesOnPress(t *testing.T) {
	s := NewInputState(nil)
	s.Keyboard().Enable()

	s.SetKey(KeyBackspace, true)
	s.SetKey(KeyBackspace, true)
	s.SetKey(KeyLeft, true)
	assert.True(t, s.KeyDown(KeyBackspace))

	kb := s.Keyboard()
	assert.Equal(t, KeyCodeBackspace, kb.ActiveKey())
	assert.Equal(t, KeyCodeNone, kb.ActiveKey(), "held keys and keys without a code queue nothing")

	s.SetKey(KeyBackspace, false)
	s.SetKey(Key(-1), true)
	s.SetKey(KeyCount, true)
	assert.False(t, s.KeyDown(KeyBackspace))
	assert.False(t, s.KeyDown(KeyCount))
}

func TestUpdateKeyRepeat(t *testing.T) {
	s := NewInputState(nil)
	kb := s.Keyboard()
	kb.Enable()

	s.SetKey(KeyBackspace, true)
	kb.ActiveKey()

	s.UpdateKeyRepeat(0.3)
	assert.Equal(t, KeyCodeNone, kb.ActiveKey())

	s.UpdateKeyRepeat(0.15)
	assert.Equal(t, KeyCodeBackspace, kb.ActiveKey(), "repeat starts after the delay")
	assert.Equal(t, KeyCodeNone, kb.ActiveKey())
}

func TestCrossedRepeat(t *testing.T) {
	tests := []struct {
		prev, now float32
		want      bool
	}{
		{0, 0.1, false},
		{0.3, 0.39, false},
		{0.39, 0.41, true},
		{0.41, 0.42, false},
		{0.42, 0.44, true},
		{0.5, 0.6, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, crossedRepeat(tt.prev, tt.now), "crossedRepeat(%v, %v)", tt.prev, tt.now)
	}
}

func TestIsNoListenerActive(t *testing.T) {
	s := NewInputState(nil)
	assert.True(t, s.IsNoListenerActive(), "an idle keyboard needs no disabling")

	s.Keyboard().Enable()
	assert.False(t, s.IsNoListenerActive())

	s.AddKeyListener()
	assert.True(t, s.IsNoListenerActive())
	s.RemoveKeyListener()
	s.RemoveKeyListener()
	assert.False(t, s.IsNoListenerActive())
}

func TestMouseState(t *testing.T) {
	s := NewInputState(nil)
	assert.Nil(t, s.FocusedComponent())

	s.SetMouseButton(MouseButtonLeft, true)
	s.SetMouseButton(MouseButtonCount, true)
	assert.True(t, s.IsClicking())
	assert.False(t, s.MouseDown(MouseButtonCount))

	s.AddMouseWheel(0, 1)
	s.AddMouseWheel(0, 2)
	assert.Equal(t, Vec2{Y: 3}, s.TakeMouseWheel())
	assert.Equal(t, Vec2{}, s.TakeMouseWheel())
}
