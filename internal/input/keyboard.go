package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Held represents the solver force flags that stay active only while
// their key is held down.
type Held struct {
	Attractor bool
	Repellor  bool
	SpeedUp   bool
	SlowDown  bool
	Reverse   bool
}

// Pressed represents one-shot actions that fire only on the frame a key
// transitions from up to down.
type Pressed struct {
	ToggleGravity bool
	ToggleColour  bool
	ToggleRender  bool
	NextDemo      bool
}

var trackedKeys = []int32{
	rl.KeySpace, rl.KeyLeftShift, rl.KeyUp, rl.KeyDown, rl.KeyR,
	rl.KeyG, rl.KeyC, rl.KeyV, rl.KeyN,
}

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	keyStates  map[int32]bool
	keyPressed map[int32]bool
}

// NewKeyboardHandler creates a new keyboard handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		keyStates:  make(map[int32]bool),
		keyPressed: make(map[int32]bool),
	}
}

// SetKeyState sets the state of a key (for testing)
func (k *KeyboardHandler) SetKeyState(key int32, pressed bool) {
	k.keyStates[key] = pressed
}

// SetKeyPressed sets whether a key was just pressed (for testing)
func (k *KeyboardHandler) SetKeyPressed(key int32, pressed bool) {
	k.keyPressed[key] = pressed
}

// IsKeyDown checks if a key is currently held down
func (k *KeyboardHandler) IsKeyDown(key int32) bool {
	return k.keyStates[key]
}

// IsKeyPressed checks if a key was just pressed
func (k *KeyboardHandler) IsKeyPressed(key int32) bool {
	return k.keyPressed[key]
}

// UpdateFromRaylib updates key states from raylib (for production use)
func (k *KeyboardHandler) UpdateFromRaylib() {
	k.keyPressed = make(map[int32]bool)
	for _, key := range trackedKeys {
		k.keyPressed[key] = rl.IsKeyPressed(key)
		k.keyStates[key] = rl.IsKeyDown(key)
	}
}

// Held translates the currently-tracked held keys into solver force
// flags: Space/LeftShift attract/repel toward world centre, Up/Down
// scale velocity, R reverses it.
func (k *KeyboardHandler) Held() Held {
	return Held{
		Attractor: k.IsKeyDown(rl.KeySpace),
		Repellor:  k.IsKeyDown(rl.KeyLeftShift),
		SpeedUp:   k.IsKeyDown(rl.KeyUp),
		SlowDown:  k.IsKeyDown(rl.KeyDown),
		Reverse:   k.IsKeyDown(rl.KeyR),
	}
}

// Pressed translates one-shot key presses into driver/solver actions:
// G toggles gravity, C toggles speed-colouring, V toggles rendering, N
// cycles to the next demo scene.
func (k *KeyboardHandler) Pressed() Pressed {
	return Pressed{
		ToggleGravity: k.IsKeyPressed(rl.KeyG),
		ToggleColour:  k.IsKeyPressed(rl.KeyC),
		ToggleRender:  k.IsKeyPressed(rl.KeyV),
		NextDemo:      k.IsKeyPressed(rl.KeyN),
	}
}
