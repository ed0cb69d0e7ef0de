package solver

import "weakfield/internal/vecmath"

// ForceKind names a force contributor variant. A small sum type here
// replaces the accretive boolean-flag style (attractor, repellor,
// speed-up, ...) with a data-driven list the integration pass simply
// iterates, so adding a force is a data change rather than a new flag
// plus a new branch.
type ForceKind int

const (
	// ForceGravity applies a constant acceleration to every particle.
	ForceGravity ForceKind = iota
	// ForceRadial applies a radial force of the given Magnitude toward
	// (positive) or away from (negative) Centre.
	ForceRadial
	// ForceVelocityScale names velocity scaling by Magnitude. Apply does
	// nothing for this kind, and the solver never puts one in its force
	// list: speed-up/slow-down/reverse are turned into a single scale
	// factor by Solver.velocityScaleFactor and applied in integrateRange.
	ForceVelocityScale
)

// ForceContributor is one entry in the solver's force list.
type ForceContributor struct {
	Kind      ForceKind
	Vector    vecmath.Vec2 // direction/magnitude for ForceGravity
	Centre    vecmath.Vec2 // origin for ForceRadial
	Magnitude float32      // scale for ForceRadial / ForceVelocityScale
}

// Apply accumulates or applies this contributor's effect on one
// particle for the current substep. Velocity-scaling is handled by the
// caller (it needs dt to rewrite PrevPosition) — see Solver.integrateRange.
func (f ForceContributor) Apply(p *Particle) {
	switch f.Kind {
	case ForceGravity:
		p.Accelerate(f.Vector)
	case ForceRadial:
		toCentre := f.Centre.Sub(p.Position)
		dir := toCentre.Normalize()
		p.Accelerate(dir.Scale(f.Magnitude))
	}
}
