package solver

import "weakfield/internal/vecmath"

// Constraint is a hard distance rule between two particles, enforced by
// direct position projection. InBody marks an internal rigid/soft-body
// edge the renderer may skip drawing; it has no effect on resolution.
type Constraint struct {
	A, B           ParticleID
	TargetDistance float32
	InBody         bool
}

// Resolve pushes a and b toward TargetDistance apart. Both-fixed pairs
// are a no-op; one-fixed pairs move the free particle by the whole
// error; otherwise the error is split evenly.
func (c *Constraint) Resolve(particles []Particle) {
	a := &particles[c.A]
	b := &particles[c.B]
	d := a.Position.Sub(b.Position)
	length := d.Length()
	if length < 1e-6 {
		return
	}
	n := d.Scale(1.0 / length)
	err := c.TargetDistance - length
	applyAlongAxis(a, b, n, err)
}

// applyAlongAxis pushes a along +n and b along -n by their fixed-vs-free
// share of a signed displacement magnitude disp. This is the one
// fixed/free distribution rule shared by Constraint and Spring.
func applyAlongAxis(a, b *Particle, n vecmath.Vec2, disp float32) {
	switch {
	case a.Fixed && b.Fixed:
		return
	case a.Fixed:
		b.Position = b.Position.Sub(n.Scale(disp))
	case b.Fixed:
		a.Position = a.Position.Add(n.Scale(disp))
	default:
		half := n.Scale(disp * 0.5)
		a.Position = a.Position.Add(half)
		b.Position = b.Position.Sub(half)
	}
}

// Spring is a soft distance rule: it applies a Hooke's-law force
// proportional to deviation from TargetDistance, plus a velocity
// damping term, rather than directly correcting position.
type Spring struct {
	A, B           ParticleID
	TargetDistance float32
	K              float32
	Damping        float32
}

// NewSpring builds a Spring with the package's default stiffness and
// damping constants.
func NewSpring(a, b ParticleID, targetDistance float32) Spring {
	return Spring{A: a, B: b, TargetDistance: targetDistance, K: SpringConstant, Damping: SpringDamping}
}

// Resolve applies the spring's force-like displacement for one Jakobsen
// pass: it pulls a and b together by k·(len-L) plus damping·(vA-vB)·n
// (the relative velocity along the axis), distributed by the same
// fixed-vs-free rule as Constraint.
func (s *Spring) Resolve(particles []Particle, dt float32) {
	a := &particles[s.A]
	b := &particles[s.B]

	d := a.Position.Sub(b.Position)
	length := d.Length()
	if length < 1e-6 {
		return
	}
	n := d.Scale(1.0 / length)

	// Spring force pulls a and b together when stretched (len > L); the
	// sign matches Constraint's (target-length) convention so positive
	// disp always moves a along +n.
	disp := s.K * (s.TargetDistance - length)

	// Damping opposes the relative velocity along n: a separating pair
	// (relVel·n > 0) gets a negative contribution that pulls it back.
	relVel := a.Velocity(dt).Sub(b.Velocity(dt))
	disp -= s.Damping * relVel.Dot(n)

	applyAlongAxis(a, b, n, disp)
}
