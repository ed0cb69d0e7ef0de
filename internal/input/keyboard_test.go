package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestKeyboardHandler_Held(t *testing.T) {
	t.Run("no keys down yields no held forces", func(t *testing.T) {
		handler := NewKeyboardHandler()
		held := handler.Held()
		assert.False(t, held.Attractor)
		assert.False(t, held.Repellor)
		assert.False(t, held.SpeedUp)
		assert.False(t, held.SlowDown)
		assert.False(t, held.Reverse)
	})

	t.Run("space activates attractor", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyState(rl.KeySpace, true)
		assert.True(t, handler.Held().Attractor)
	})

	t.Run("left shift activates repellor", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyState(rl.KeyLeftShift, true)
		assert.True(t, handler.Held().Repellor)
	})

	t.Run("up and down scale speed oppositely", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyState(rl.KeyUp, true)
		held := handler.Held()
		assert.True(t, held.SpeedUp)
		assert.False(t, held.SlowDown)

		handler = NewKeyboardHandler()
		handler.SetKeyState(rl.KeyDown, true)
		held = handler.Held()
		assert.False(t, held.SpeedUp)
		assert.True(t, held.SlowDown)
	})

	t.Run("r reverses velocity", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyState(rl.KeyR, true)
		assert.True(t, handler.Held().Reverse)
	})
}

func TestKeyboardHandler_Pressed(t *testing.T) {
	t.Run("g toggles gravity once", func(t *testing.T) {
		handler := NewKeyboardHandler()
		assert.False(t, handler.Pressed().ToggleGravity)

		handler.SetKeyPressed(rl.KeyG, true)
		assert.True(t, handler.Pressed().ToggleGravity)

		handler.SetKeyPressed(rl.KeyG, false)
		assert.False(t, handler.Pressed().ToggleGravity)
	})

	t.Run("c toggles speed colouring", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(rl.KeyC, true)
		assert.True(t, handler.Pressed().ToggleColour)
	})

	t.Run("v toggles rendering", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(rl.KeyV, true)
		assert.True(t, handler.Pressed().ToggleRender)
	})

	t.Run("n advances to the next demo", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(rl.KeyN, true)
		assert.True(t, handler.Pressed().NextDemo)
	})
}
