package renderer

import "time"

// RenderLoop tracks frame pacing statistics for the UI overlay. Actual
// frame-rate limiting is raylib's own (rl.SetTargetFPS); this struct
// only records what the driver observed each frame so the overlay has
// something to display.
type RenderLoop struct {
	targetFPS       int
	targetFrameTime float64
	lastFrameTime   float64
	actualFPS       int

	frameStartTime time.Time
}

// NewRenderLoop creates a render loop defaulted to 60 FPS.
func NewRenderLoop() *RenderLoop {
	loop := &RenderLoop{targetFPS: 60}
	loop.targetFrameTime = 1.0 / float64(loop.targetFPS)
	return loop
}

// SetTargetFPS records the driver's target FPS for display purposes.
func (r *RenderLoop) SetTargetFPS(fps int) {
	r.targetFPS = fps
	r.targetFrameTime = 1.0 / float64(fps)
}

// BeginFrame marks the start of a frame.
func (r *RenderLoop) BeginFrame() {
	r.frameStartTime = time.Now()
}

// RecordFrameTime records a frame time and derives the actual FPS from it.
func (r *RenderLoop) RecordFrameTime(frameTime float64) {
	r.lastFrameTime = frameTime
	if frameTime > 0 {
		r.actualFPS = int(1.0 / frameTime)
	}
}

// GetLastFrameTime returns the last recorded frame time.
func (r *RenderLoop) GetLastFrameTime() float64 {
	return r.lastFrameTime
}

// GetActualFPS returns the actual FPS based on the last recorded frame time.
func (r *RenderLoop) GetActualFPS() int {
	return r.actualFPS
}
