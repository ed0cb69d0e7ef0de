package solver

// Tuning constants named directly after the quantities they control.
const (
	// Damping is the mild per-substep velocity damping applied during
	// Verlet integration.
	Damping float32 = 0.9999

	// ColourSpeedScale (K) maps speed to the colour-cycling phase.
	ColourSpeedScale float32 = 0.0015

	// ConstraintIterations (Jakobsen relaxation passes) run per substep.
	ConstraintIterations = 10

	// SpringConstant (k) is the default Hooke's-law stiffness.
	SpringConstant float32 = 0.5

	// SpringDamping is the default velocity-proportional damping term.
	SpringDamping float32 = 0.9

	// SoftBodyAlpha (α) scales the outward displacement applied per
	// vertex during area-preservation correction.
	SoftBodyAlpha float32 = 0.01

	// CellCapacity bounds how many particle indices a grid cell can
	// hold. Overflow insertions are write-sacrificial: see Grid.Insert.
	CellCapacity = 8

	// ResponseCoef (the relaxation factor used by collision resolution
	// and border reflection) trades jitter (near 1) against residual
	// overlap (near 0).
	ResponseCoef float32 = 0.5

	// BorderResponseScale further attenuates ResponseCoef for the
	// boundary reflector, so edges are softer than particle contacts.
	BorderResponseScale float32 = 0.2

	// BorderMargin is added to a particle's radius to get its
	// minimum allowed distance from any world edge.
	BorderMargin float32 = 1.0

	// BodyMassRadius is the radius substituted for body-tagged
	// particles when computing the collision mass proxy, so a single
	// free particle cannot fling an entire dense body.
	BodyMassRadius float32 = 20.0

	// AttractorForce is the magnitude of the central attractor/repellor
	// radial force.
	AttractorForce float32 = 1000.0

	// Gravity is the magnitude of the downward gravitational
	// acceleration (G in spec terms); sign is applied by the caller.
	Gravity float32 = 1000.0
)
