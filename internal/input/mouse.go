package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"weakfield/internal/vecmath"
)

// MouseHandler handles mouse input: left click spawns a new particle at
// the cursor's world position, translated 1:1 from screen space since
// the world rectangle is rendered unscaled.
type MouseHandler struct {
	buttonStates map[rl.MouseButton]bool
	position     vecmath.Vec2
}

// NewMouseHandler creates a new mouse handler.
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{
		buttonStates: make(map[rl.MouseButton]bool),
	}
}

// SetButtonDown sets the state of a mouse button (for testing).
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetPosition sets the cursor's world position (for testing).
func (m *MouseHandler) SetPosition(pos vecmath.Vec2) {
	m.position = pos
}

// IsButtonDown checks if a mouse button is held down.
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool {
	return m.buttonStates[button]
}

// Position returns the last-known cursor world position.
func (m *MouseHandler) Position() vecmath.Vec2 {
	return m.position
}

// SpawnRequested reports whether the left button is held, and the world
// position a new particle should be spawned at if so.
func (m *MouseHandler) SpawnRequested() (vecmath.Vec2, bool) {
	if !m.IsButtonDown(rl.MouseLeftButton) {
		return vecmath.Zero(), false
	}
	return m.position, true
}

// UpdateFromRaylib updates mouse state from raylib (for production use).
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseLeftButton] = rl.IsMouseButtonDown(rl.MouseLeftButton)
	pos := rl.GetMousePosition()
	m.position = vecmath.New(pos.X, pos.Y)
}
