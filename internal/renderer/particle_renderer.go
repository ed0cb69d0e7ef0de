// Package renderer draws a solver's read-only views through raylib's
// immediate-mode 2D primitives.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

func toRaylibVector2(v vecmath.Vec2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

func toRaylibColor(c solver.Colour) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// constraintColour is the uniform line colour for non-body constraints;
// body-internal edges (InBody) are skipped entirely rather than drawn
// in a second colour, since a rigid cluster's outline is already
// implied by its member particles.
var constraintColour = rl.Color{R: 120, G: 120, B: 120, A: 255}
var springColour = rl.Color{R: 80, G: 160, B: 220, A: 255}
var softBodyColour = rl.Color{R: 220, G: 180, B: 60, A: 255}

// ParticleRenderer draws a solver's particles, constraints, springs and
// soft bodies for one frame. It holds no simulation state of its own;
// every call reads straight from the solver's read-only views.
type ParticleRenderer struct {
	DrawConstraints bool
	DrawSprings     bool
	DrawSoftBodies  bool
}

// NewParticleRenderer creates a renderer with every overlay enabled.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{DrawConstraints: true, DrawSprings: true, DrawSoftBodies: true}
}

// Draw renders one frame of sim's current state. Must be called
// between rl.BeginDrawing and rl.EndDrawing.
func (r *ParticleRenderer) Draw(sim *solver.Solver) {
	if r.DrawConstraints {
		r.drawConstraints(sim)
	}
	if r.DrawSprings {
		r.drawSprings(sim)
	}
	if r.DrawSoftBodies {
		r.drawSoftBodies(sim)
	}
	r.drawParticles(sim)
}

func (r *ParticleRenderer) drawParticles(sim *solver.Solver) {
	for _, p := range sim.Particles() {
		if p.Radius <= 0 {
			continue
		}
		colour := toRaylibColor(p.Colour)
		if p.Fixed {
			colour = rl.Gray
		}
		rl.DrawCircleV(toRaylibVector2(p.Position), p.Radius, colour)
	}
}

func (r *ParticleRenderer) drawConstraints(sim *solver.Solver) {
	particles := sim.Particles()
	for _, c := range sim.Constraints() {
		if c.InBody {
			continue
		}
		rl.DrawLineV(toRaylibVector2(particles[c.A].Position), toRaylibVector2(particles[c.B].Position), constraintColour)
	}
}

func (r *ParticleRenderer) drawSprings(sim *solver.Solver) {
	particles := sim.Particles()
	for _, s := range sim.Springs() {
		rl.DrawLineV(toRaylibVector2(particles[s.A].Position), toRaylibVector2(particles[s.B].Position), springColour)
	}
}

func (r *ParticleRenderer) drawSoftBodies(sim *solver.Solver) {
	for id := range sim.SoftBodies() {
		verts := sim.VertexPositions(solver.SoftBodyID(id))
		for i := range verts {
			next := verts[(i+1)%len(verts)]
			rl.DrawLineV(toRaylibVector2(verts[i]), toRaylibVector2(next), softBodyColour)
		}
	}
}
