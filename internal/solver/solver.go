package solver

import "weakfield/internal/vecmath"

// ResolverMode selects which collision resolution strategy Step uses.
// "naive" and "cellular" exist only for benchmarking against the
// production "threaded" path.
type ResolverMode int

const (
	ResolverThreaded ResolverMode = iota
	ResolverCellular
	ResolverNaive
)

// Flags holds the boolean forces a driver's input layer toggles between
// steps. Gravity is separated from the attractor/repellor/speed pair
// because it is unconditional rather than radial.
type Flags struct {
	Gravity        bool
	Attractor      bool
	Repellor       bool
	SpeedUp        bool
	SlowDown       bool
	Reverse        bool
	SpeedColouring bool
}

const (
	speedUpFactor  float32 = 1.02
	slowDownFactor float32 = 0.98
	reverseFactor  float32 = -1.0
)

// Solver owns every piece of simulation state: particles, constraints,
// springs, soft bodies, the spatial grid and a shared task pool.
// Constraints/springs/soft bodies reference particles by ParticleID
// (a slice index), never by pointer, so the particle slice can grow
// during spawning without invalidating any cross-reference.
type Solver struct {
	particles  []Particle
	constraints []Constraint
	springs    []Spring
	softBodies []SoftBody

	bodyCount int

	grid *Grid
	pool *TaskPool

	WorldWidth, WorldHeight float32

	Flags    Flags
	Resolver ResolverMode

	centre vecmath.Vec2
}

// NewSolver builds a solver over a worldWidth x worldHeight world,
// dispatching parallel work through pool. cellSize should be at least
// twice the largest particle radius the scene will use.
func NewSolver(worldWidth, worldHeight, cellSize float32, pool *TaskPool) *Solver {
	return &Solver{
		grid:        NewGrid(worldWidth, worldHeight, cellSize),
		pool:        pool,
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		Resolver:    ResolverThreaded,
		centre:      vecmath.New(worldWidth/2, worldHeight/2),
	}
}

// --- Scene builder contract ---

// AddParticle appends a new particle and returns its stable ID.
func (s *Solver) AddParticle(pos vecmath.Vec2, radius float32, fixed bool) ParticleID {
	p := NewParticle(pos, radius)
	p.Fixed = fixed
	s.particles = append(s.particles, p)
	return ParticleID(len(s.particles) - 1)
}

// AddConstraint links two particles with a hard distance rule.
func (s *Solver) AddConstraint(a, b ParticleID, targetDistance float32) ConstraintID {
	s.constraints = append(s.constraints, Constraint{A: a, B: b, TargetDistance: targetDistance})
	return ConstraintID(len(s.constraints) - 1)
}

// AddBodyConstraint is AddConstraint for an edge internal to a rigid or
// soft body; the renderer uses InBody to skip drawing it.
func (s *Solver) AddBodyConstraint(a, b ParticleID, targetDistance float32) ConstraintID {
	s.constraints = append(s.constraints, Constraint{A: a, B: b, TargetDistance: targetDistance, InBody: true})
	return ConstraintID(len(s.constraints) - 1)
}

// AddSpring links two particles with a Hooke's-law-plus-damping rule.
func (s *Solver) AddSpring(a, b ParticleID, targetDistance, k, damping float32) SpringID {
	s.springs = append(s.springs, Spring{A: a, B: b, TargetDistance: targetDistance, K: k, Damping: damping})
	return SpringID(len(s.springs) - 1)
}

// AddSoftBody wires an ordered ring of particle IDs into a closed
// polygon area-preservation rule and a perimeter of in-body constraints
// linking consecutive vertices at their current separation.
func (s *Solver) AddSoftBody(vertices []ParticleID, radius float32) SoftBodyID {
	body := NewSoftBody(vertices, radius)
	s.softBodies = append(s.softBodies, body)

	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		d := s.particles[a].Position.Sub(s.particles[b].Position).Length()
		s.AddBodyConstraint(a, b, d)
	}

	return SoftBodyID(len(s.softBodies) - 1)
}

// NewBodyTag allocates a fresh BodyID distinct from NoBody and every
// previously allocated tag.
func (s *Solver) NewBodyTag() BodyID {
	s.bodyCount++
	return BodyID(s.bodyCount)
}

// AssignBody tags a particle as belonging to body b, excluding it from
// intra-body pairwise collisions against other members of b.
func (s *Solver) AssignBody(p ParticleID, b BodyID) {
	s.particles[p].Body = b
}

// SetVelocity rewrites a particle's implicit velocity. Must only be
// called between substeps, never while Step is in flight.
func (s *Solver) SetVelocity(p ParticleID, v vecmath.Vec2, dt float32) {
	s.particles[p].SetVelocity(v, dt)
}

// --- Read-only render views ---
// Callers must not mutate the returned slices; they alias the solver's
// own storage for zero-copy rendering of potentially tens of thousands
// of particles per frame.

func (s *Solver) Particles() []Particle       { return s.particles }
func (s *Solver) Constraints() []Constraint   { return s.constraints }
func (s *Solver) Springs() []Spring           { return s.springs }
func (s *Solver) SoftBodies() []SoftBody      { return s.softBodies }

// VertexPositions returns the current positions of a soft body's ring,
// for renderers that draw it as a closed polyline.
func (s *Solver) VertexPositions(b SoftBodyID) []vecmath.Vec2 {
	body := s.softBodies[b]
	out := make([]vecmath.Vec2, len(body.Vertices))
	for i, id := range body.Vertices {
		out[i] = s.particles[id].Position
	}
	return out
}

// ColumnOccupancy exposes the grid's per-column particle counts, for the
// diagnostics package's spatial-density spectrum reader. Reflects the
// grid as of the last Step call; never recomputed on demand.
func (s *Solver) ColumnOccupancy() []int {
	return s.grid.ColumnOccupancy()
}

// --- Step pipeline ---

// Step advances the simulation by dtFrame, split into substeps equal
// inner iterations. Each substep: rebuild grid, resolve collisions,
// relax constraints/springs/soft bodies for ConstraintIterations passes,
// then integrate.
func (s *Solver) Step(dtFrame float32, substeps int) {
	if substeps < 1 {
		substeps = 1
	}
	dtStep := dtFrame / float32(substeps)

	for i := 0; i < substeps; i++ {
		s.grid.Rebuild(s.particles, s.WorldWidth, s.WorldHeight)
		s.resolveCollisions()
		s.relax()
		s.integrate(dtStep)
	}
}

func (s *Solver) resolveCollisions() {
	switch s.Resolver {
	case ResolverNaive:
		resolveCollisionsNaive(s.particles)
	case ResolverCellular:
		resolveCollisionsSerial(s.particles, s.grid)
	default:
		resolveCollisionsStriped(s.particles, s.grid, s.pool)
	}
}

// relax runs the Jakobsen passes: all constraints, then all springs,
// then all soft bodies, repeated ConstraintIterations times. Ordering
// within a pass is sequential — constraint i observes the position
// changes made by constraint i-1 — and is identical across iterations,
// so the relaxation is fully deterministic regardless of resolver mode.
func (s *Solver) relax() {
	for pass := 0; pass < ConstraintIterations; pass++ {
		for i := range s.constraints {
			s.constraints[i].Resolve(s.particles)
		}
		for i := range s.springs {
			// dt cancels out of the damping term's direction; springs
			// only need a representative dt for the velocity estimate,
			// so a fixed reference value matching one substep is used.
			s.springs[i].Resolve(s.particles, referenceDt)
		}
		for i := range s.softBodies {
			s.softBodies[i].Resolve(s.particles)
		}
	}
}

// referenceDt is the nominal per-substep timestep springs use to
// estimate relative velocity for damping; Step always calls relax with
// the same cadence so this constant tracks the default config.
const referenceDt float32 = (1.0 / 60.0) / 8.0

// forceContributors builds this substep's force list from the current
// flags. Gravity and the attractor/repellor are ordinary
// ForceContributors applied uniformly to every particle; SpeedUp,
// SlowDown and Reverse are not in the list: velocityScaleFactor turns
// them into one scale factor that integrateRange applies, since scaling
// velocity needs dt to rewrite PrevPosition, which
// ForceContributor.Apply does not receive.
func (s *Solver) forceContributors() []ForceContributor {
	var forces []ForceContributor
	if s.Flags.Gravity {
		forces = append(forces, ForceContributor{Kind: ForceGravity, Vector: vecmath.New(0, Gravity)})
	}
	if s.Flags.Attractor {
		forces = append(forces, ForceContributor{Kind: ForceRadial, Centre: s.centre, Magnitude: AttractorForce})
	}
	if s.Flags.Repellor {
		forces = append(forces, ForceContributor{Kind: ForceRadial, Centre: s.centre, Magnitude: -AttractorForce})
	}
	return forces
}

func (s *Solver) velocityScaleFactor() (float32, bool) {
	switch {
	case s.Flags.Reverse:
		return reverseFactor, true
	case s.Flags.SpeedUp:
		return speedUpFactor, true
	case s.Flags.SlowDown:
		return slowDownFactor, true
	default:
		return 0, false
	}
}

func (s *Solver) integrate(dt float32) {
	forces := s.forceContributors()
	scale, scaling := s.velocityScaleFactor()

	n := len(s.particles)
	s.pool.Dispatch(n, func(start, end int) {
		s.integrateRange(start, end, dt, forces, scale, scaling)
	})
}

func (s *Solver) integrateRange(start, end int, dt float32, forces []ForceContributor, scale float32, scaling bool) {
	colouring := s.Flags.SpeedColouring
	for i := start; i < end; i++ {
		p := &s.particles[i]
		if p.Fixed {
			continue
		}

		for _, f := range forces {
			f.Apply(p)
		}
		if scaling {
			p.SetVelocity(p.Velocity(dt).Scale(scale), dt)
		}

		p.Integrate(dt)
		if colouring {
			p.UpdateColour(dt)
		}
		s.reflectBorder(p)
	}
}

// reflectBorder projects a particle's penetrating component back from
// whichever world edge it crosses, scaled by BorderResponseScale *
// ResponseCoef. No velocity reflection: the Verlet scheme absorbs the
// impact as deceleration through prev_position inertia.
func (s *Solver) reflectBorder(p *Particle) {
	margin := BorderMargin + p.Radius
	scale := BorderResponseScale * ResponseCoef

	if p.Position.X < margin {
		p.Position.X += (margin - p.Position.X) * scale
	} else if p.Position.X > s.WorldWidth-margin {
		p.Position.X -= (p.Position.X - (s.WorldWidth - margin)) * scale
	}

	if p.Position.Y < margin {
		p.Position.Y += (margin - p.Position.Y) * scale
	} else if p.Position.Y > s.WorldHeight-margin {
		p.Position.Y -= (p.Position.Y - (s.WorldHeight - margin)) * scale
	}
}
