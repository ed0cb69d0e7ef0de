package input

import (
	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

// FrameState holds driver-level toggles. Render lives outside the
// solver entirely (it only gates the driver's render hook).
// SpeedColouring is the persistent toggle latch for the C key; each
// Update call mirrors it onto sim.Flags.SpeedColouring so the solver
// picks it up, since the solver itself has no press-edge detection of
// its own.
type FrameState struct {
	Render         bool
	SpeedColouring bool
}

// SpawnRequest reports whether the driver should spawn a new particle
// this frame, and where.
type SpawnRequest struct {
	Position  vecmath.Vec2
	Requested bool
}

// Controller coordinates keyboard and mouse input, translating it into
// the solver's boolean force setters plus driver-level spawn and demo
// actions. It owns no simulation state itself.
type Controller struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
}

// NewController creates an input controller with no keys or buttons held.
func NewController() *Controller {
	return &Controller{
		keyboard: NewKeyboardHandler(),
		mouse:    NewMouseHandler(),
	}
}

// UpdateFromRaylib refreshes keyboard and mouse state from the real
// window; call once per frame before Update.
func (c *Controller) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

// Update writes this frame's held-key forces directly onto sim.Flags,
// applies one-shot toggles onto state, and reports whether a spawn was
// requested. NextDemo is returned separately so the scene layer can
// react to it without this package depending on scene.
func (c *Controller) Update(sim *solver.Solver, state *FrameState) (SpawnRequest, bool) {
	held := c.keyboard.Held()
	sim.Flags.Attractor = held.Attractor
	sim.Flags.Repellor = held.Repellor
	sim.Flags.SpeedUp = held.SpeedUp
	sim.Flags.SlowDown = held.SlowDown
	sim.Flags.Reverse = held.Reverse

	pressed := c.keyboard.Pressed()
	if pressed.ToggleGravity {
		sim.Flags.Gravity = !sim.Flags.Gravity
	}
	if pressed.ToggleColour {
		state.SpeedColouring = !state.SpeedColouring
	}
	if pressed.ToggleRender {
		state.Render = !state.Render
	}
	sim.Flags.SpeedColouring = state.SpeedColouring

	pos, spawn := c.mouse.SpawnRequested()
	return SpawnRequest{Position: pos, Requested: spawn}, pressed.NextDemo
}

// Reset clears all tracked keyboard and mouse state (used between demo
// switches so a held key from the previous scene doesn't leak in).
func (c *Controller) Reset() {
	c.keyboard = NewKeyboardHandler()
	c.mouse = NewMouseHandler()
}
