package solver

import (
	"math"

	"weakfield/internal/vecmath"
)

// Colour is an RGB triple in the 0..255 range, matching the renderer's
// expected colour format.
type Colour struct {
	R, G, B uint8
}

// Particle is a single Verlet point: its current and previous position
// implicitly encode velocity, so collision and constraint resolution can
// write straight to Position without ever touching a velocity field.
type Particle struct {
	Position     vecmath.Vec2
	PrevPosition vecmath.Vec2
	Acceleration vecmath.Vec2
	Radius       float32 // 0 marks a massless marker
	Colour       Colour
	Fixed        bool
	Body         BodyID // NoBody if unassigned
}

// NewParticle creates a particle at rest at the given position.
func NewParticle(pos vecmath.Vec2, radius float32) Particle {
	return Particle{
		Position:     pos,
		PrevPosition: pos,
		Radius:       radius,
		Colour:       Colour{R: 255, G: 255, B: 255},
	}
}

// Integrate performs one Verlet step: it derives the implicit velocity
// from the position history, damps it, and projects the position
// forward by velocity plus acceleration·dt². Acceleration is zeroed
// afterwards so the next substep starts clean. When Fixed, the position
// is left unchanged and only the acceleration is cleared.
func (p *Particle) Integrate(dt float32) {
	if p.Fixed {
		p.Acceleration = vecmath.Zero()
		return
	}
	displacement := p.Position.Sub(p.PrevPosition).Scale(Damping)
	p.PrevPosition = p.Position
	p.Position = p.Position.Add(displacement).Add(p.Acceleration.Scale(dt * dt))
	p.Acceleration = vecmath.Zero()
}

// Velocity returns the implicit velocity (Position-PrevPosition)/dt.
func (p *Particle) Velocity(dt float32) vecmath.Vec2 {
	if dt == 0 {
		return vecmath.Zero()
	}
	return p.Position.Sub(p.PrevPosition).Scale(1.0 / dt)
}

// SetVelocity rewrites PrevPosition so that Velocity(dt) == v. Must
// only be called between substeps, never while integration or
// collision resolution is in flight.
func (p *Particle) SetVelocity(v vecmath.Vec2, dt float32) {
	p.PrevPosition = p.Position.Sub(v.Scale(dt))
}

// Accelerate accumulates a force/mass contribution for this substep.
func (p *Particle) Accelerate(a vecmath.Vec2) {
	p.Acceleration = p.Acceleration.Add(a)
}

// UpdateColour maps speed through three phase-shifted sinusoids into an
// RGB triple, so faster particles cycle through colour.
func (p *Particle) UpdateColour(dt float32) {
	speed := float64(p.Velocity(dt).Length()) * float64(ColourSpeedScale)

	const twoThirdsPi = 2.0 * math.Pi / 3.0
	r := math.Sin(speed)
	g := math.Sin(speed + twoThirdsPi)
	b := math.Sin(speed + 2*twoThirdsPi)

	p.Colour = Colour{
		R: channel(r),
		G: channel(g),
		B: channel(b),
	}
}

func channel(v float64) uint8 {
	v = v * v * 255.0
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
