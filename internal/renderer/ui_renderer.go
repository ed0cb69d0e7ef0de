package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"weakfield/internal/solver"
)

// UIColor is an RGBA color for UI elements.
type UIColor struct {
	R, G, B, A uint8
}

// UIState is the full set of per-frame values the overlay displays.
type UIState struct {
	ParticleCount int
	Resolver      solver.ResolverMode
	Threads       int
	TargetFPS     int
	ActualFPS     int
	FrameTime     float64
	Paused        bool
}

// UIRenderer draws the heads-up overlay: title, particle count, resolver
// mode, FPS/frame time, control reminders and a pause banner.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int

	title         string
	particleCount int
	resolver      solver.ResolverMode
	threads       int
	targetFPS     int
	actualFPS     int
	frameTime     float64
	paused        bool
}

// NewUIRenderer creates a UI renderer sized to the given screen.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "Weakfield 2D Particle Physics",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) {
	ui.title = title
}

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string {
	return ui.title
}

// SetParticleCount sets the particle count.
func (ui *UIRenderer) SetParticleCount(count int) {
	ui.particleCount = count
}

// GetParticleCount returns the particle count.
func (ui *UIRenderer) GetParticleCount() int {
	return ui.particleCount
}

// SetResolver sets the active collision resolver mode and worker count.
func (ui *UIRenderer) SetResolver(mode solver.ResolverMode, threads int) {
	ui.resolver = mode
	ui.threads = threads
}

// GetResolverString returns the resolver display string.
func (ui *UIRenderer) GetResolverString() string {
	switch ui.resolver {
	case solver.ResolverThreaded:
		return fmt.Sprintf("Resolver: threaded (%d workers)", ui.threads)
	case solver.ResolverCellular:
		return "Resolver: cellular (serial)"
	case solver.ResolverNaive:
		return "Resolver: naive (O(n^2))"
	default:
		return "Resolver: unknown"
	}
}

// GetControlInstructions returns the control instruction lines.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Left click to spawn, Space to attract, Shift to repel",
		"Up/Down to speed up/slow down, R to reverse",
		"G gravity, C colour, V render, N next demo",
	}
}

// SetTargetFPS sets the target FPS.
func (ui *UIRenderer) SetTargetFPS(fps int) {
	ui.targetFPS = fps
}

// GetTargetFPS returns the target FPS.
func (ui *UIRenderer) GetTargetFPS() int {
	return ui.targetFPS
}

// SetActualFPS sets the actual FPS.
func (ui *UIRenderer) SetActualFPS(fps int) {
	ui.actualFPS = fps
}

// GetActualFPS returns the actual FPS.
func (ui *UIRenderer) GetActualFPS() int {
	return ui.actualFPS
}

// SetFrameTime sets the frame time.
func (ui *UIRenderer) SetFrameTime(t float64) {
	ui.frameTime = t
}

// GetFrameTime returns the frame time.
func (ui *UIRenderer) GetFrameTime() float64 {
	return ui.frameTime
}

// SetPaused sets the pause state.
func (ui *UIRenderer) SetPaused(paused bool) {
	ui.paused = paused
}

// IsPaused returns the pause state.
func (ui *UIRenderer) IsPaused() bool {
	return ui.paused
}

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Press P to unpause)"
}

// GetTitlePosition returns the title position.
func (ui *UIRenderer) GetTitlePosition() (int, int) {
	return 10, 10
}

// GetParticleCountPosition returns the particle count position.
func (ui *UIRenderer) GetParticleCountPosition() (int, int) {
	return 10, 40
}

// GetResolverPosition returns the resolver display position.
func (ui *UIRenderer) GetResolverPosition() (int, int) {
	return 10, 70
}

// GetFPSPosition returns the FPS display position.
func (ui *UIRenderer) GetFPSPosition() (int, int) {
	return ui.screenWidth - 220, 10
}

// GetPausePosition returns the pause indicator position.
func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

// GetTitleColor returns the title color (lime/green).
func (ui *UIRenderer) GetTitleColor() UIColor {
	return UIColor{R: 0, G: 255, B: 0, A: 255}
}

// GetDefaultTextColor returns the default text color (white).
func (ui *UIRenderer) GetDefaultTextColor() UIColor {
	return UIColor{R: 255, G: 255, B: 255, A: 255}
}

// GetResolverColor returns the color for the resolver readout: green for
// threaded, orange for cellular, yellow for naive (slowest, flags the
// user into knowing why frame time spiked).
func (ui *UIRenderer) GetResolverColor() UIColor {
	switch ui.resolver {
	case solver.ResolverThreaded:
		return UIColor{R: 0, G: 255, B: 0, A: 255}
	case solver.ResolverCellular:
		return UIColor{R: 255, G: 165, B: 0, A: 255}
	default:
		return UIColor{R: 255, G: 255, B: 0, A: 255}
	}
}

// GetPauseColor returns the pause indicator color (yellow).
func (ui *UIRenderer) GetPauseColor() UIColor {
	return UIColor{R: 255, G: 255, B: 0, A: 255}
}

// GetFontSize returns the font size.
func (ui *UIRenderer) GetFontSize() int {
	return ui.fontSize
}

// SetFontSize sets the font size.
func (ui *UIRenderer) SetFontSize(size int) {
	ui.fontSize = size
}

// UpdateState updates the UI state from a UIState struct.
func (ui *UIRenderer) UpdateState(state UIState) {
	ui.particleCount = state.ParticleCount
	ui.resolver = state.Resolver
	ui.threads = state.Threads
	ui.targetFPS = state.TargetFPS
	ui.actualFPS = state.ActualFPS
	ui.frameTime = state.FrameTime
	ui.paused = state.Paused
}

func toRlColor(c UIColor) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Render draws every overlay element. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (ui *UIRenderer) Render() {
	titleX, titleY := ui.GetTitlePosition()
	rl.DrawText(ui.title, int32(titleX), int32(titleY), int32(ui.fontSize), toRlColor(ui.GetTitleColor()))

	countX, countY := ui.GetParticleCountPosition()
	rl.DrawText(ui.GetParticleCountText(), int32(countX), int32(countY), int32(ui.fontSize), toRlColor(ui.GetDefaultTextColor()))

	resolverX, resolverY := ui.GetResolverPosition()
	rl.DrawText(ui.GetResolverString(), int32(resolverX), int32(resolverY), int32(ui.fontSize), toRlColor(ui.GetResolverColor()))

	fpsX, fpsY := ui.GetFPSPosition()
	rl.DrawText(ui.GetTargetFPSText(), int32(fpsX), int32(fpsY), int32(ui.fontSize), toRlColor(ui.GetDefaultTextColor()))
	rl.DrawText(ui.GetActualFPSText(), int32(fpsX), int32(fpsY+25), int32(ui.fontSize), toRlColor(ui.GetDefaultTextColor()))
	rl.DrawText(ui.GetFrameTimeText(), int32(fpsX), int32(fpsY+50), int32(ui.fontSize), toRlColor(ui.GetDefaultTextColor()))

	for i, line := range ui.GetControlInstructions() {
		x, y := ui.GetControlPosition(i)
		rl.DrawText(line, int32(x), int32(y), int32(ui.fontSize), toRlColor(ui.GetDefaultTextColor()))
	}

	if ui.paused {
		x, y := ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(x), int32(y), int32(ui.fontSize), toRlColor(ui.GetPauseColor()))
	}
}

// GetParticleCountText returns formatted particle count text.
func (ui *UIRenderer) GetParticleCountText() string {
	return fmt.Sprintf("Particles: %d", ui.particleCount)
}

// GetTargetFPSText returns formatted target FPS text.
func (ui *UIRenderer) GetTargetFPSText() string {
	return fmt.Sprintf("Target FPS: %d", ui.targetFPS)
}

// GetActualFPSText returns formatted actual FPS text.
func (ui *UIRenderer) GetActualFPSText() string {
	return fmt.Sprintf("Actual FPS: %d", ui.actualFPS)
}

// GetFrameTimeText returns formatted frame time text.
func (ui *UIRenderer) GetFrameTimeText() string {
	return fmt.Sprintf("Frame Time: %.3fs", ui.frameTime)
}

// GetControlPosition returns the position for control instruction at the
// given index.
func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, 130 + index*30
}

// GetActualFPSPosition returns the actual FPS display position.
func (ui *UIRenderer) GetActualFPSPosition() (int, int) {
	return ui.screenWidth - 220, 35
}

// GetFrameTimePosition returns the frame time display position.
func (ui *UIRenderer) GetFrameTimePosition() (int, int) {
	return ui.screenWidth - 220, 60
}
