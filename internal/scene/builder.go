// Package scene builds named demo topologies on top of a solver: a
// free particle cloud, a central attractor with orbiting cloud, an
// anchored rope, a cloth grid, a soft-body ring and a dense rigid box —
// all expressed purely through the solver's scene-builder contract
// (AddParticle/AddConstraint/AddSpring/AddSoftBody/NewBodyTag/AssignBody).
package scene

import (
	"math"

	"golang.org/x/exp/rand"

	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

// Region is an axis-aligned rectangle particles are scattered within.
type Region struct {
	MinX, MinY, MaxX, MaxY float32
}

// Builder wraps a solver and an RNG, generalizing the random-cloud
// spawner into a small set of named topologies.
type Builder struct {
	Solver *solver.Solver
	rng    *rand.Rand
}

// NewBuilder creates a Builder seeded deterministically by seed; the
// caller owns seed selection (demo-menu, CLI flag, or time-derived),
// keeping RNG seeding scaffolding outside the solver itself.
func NewBuilder(sim *solver.Solver, seed uint64) *Builder {
	return &Builder{Solver: sim, rng: rand.New(rand.NewSource(seed))}
}

func (b *Builder) jitterRadius(rMin, rMax float32) float32 {
	return rMin + b.rng.Float32()*(rMax-rMin)
}

func (b *Builder) jitterPosition(r Region) vecmath.Vec2 {
	x := r.MinX + b.rng.Float32()*(r.MaxX-r.MinX)
	y := r.MinY + b.rng.Float32()*(r.MaxY-r.MinY)
	return vecmath.New(x, y)
}

// SpawnCloud scatters n free particles with uniform random radius in
// [rMin, rMax] at uniform random positions within region.
func (b *Builder) SpawnCloud(n int, rMin, rMax float32, region Region) []solver.ParticleID {
	ids := make([]solver.ParticleID, n)
	for i := 0; i < n; i++ {
		ids[i] = b.Solver.AddParticle(b.jitterPosition(region), b.jitterRadius(rMin, rMax), false)
	}
	return ids
}

// SpawnCentralAttractor places one oversized fixed particle at centre
// plus a cloud of n free particles scattered around it.
func (b *Builder) SpawnCentralAttractor(n int, centre vecmath.Vec2, centralRadius, rMin, rMax float32, region Region) (solver.ParticleID, []solver.ParticleID) {
	core := b.Solver.AddParticle(centre, centralRadius, true)
	cloud := b.SpawnCloud(n, rMin, rMax, region)
	return core, cloud
}

// SpawnRope lays out n particles in a straight vertical chain joined by
// hard constraints of segmentLength, optionally fixing the first
// particle as an anchor.
func (b *Builder) SpawnRope(n int, anchor vecmath.Vec2, segmentLength, particleRadius float32, anchorFixed bool) []solver.ParticleID {
	ids := make([]solver.ParticleID, n)
	for i := 0; i < n; i++ {
		pos := vecmath.New(anchor.X, anchor.Y+float32(i)*segmentLength)
		ids[i] = b.Solver.AddParticle(pos, particleRadius, anchorFixed && i == 0)
	}
	for i := 0; i < n-1; i++ {
		b.Solver.AddConstraint(ids[i], ids[i+1], segmentLength)
	}
	return ids
}

// SpawnCloth lays out a cols x rows grid of particles joined by
// structural constraints (horizontal/vertical neighbours) and shear
// constraints (diagonal neighbours), with the top row fixed.
func (b *Builder) SpawnCloth(cols, rows int, topLeft vecmath.Vec2, spacing, particleRadius float32) [][]solver.ParticleID {
	grid := make([][]solver.ParticleID, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]solver.ParticleID, cols)
		for x := 0; x < cols; x++ {
			pos := vecmath.New(topLeft.X+float32(x)*spacing, topLeft.Y+float32(y)*spacing)
			grid[y][x] = b.Solver.AddParticle(pos, particleRadius, y == 0)
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x+1 < cols {
				b.Solver.AddBodyConstraint(grid[y][x], grid[y][x+1], spacing)
			}
			if y+1 < rows {
				b.Solver.AddBodyConstraint(grid[y][x], grid[y+1][x], spacing)
			}
			if x+1 < cols && y+1 < rows {
				diag := spacing * float32(math.Sqrt2)
				b.Solver.AddBodyConstraint(grid[y][x], grid[y+1][x+1], diag)
				b.Solver.AddBodyConstraint(grid[y][x+1], grid[y+1][x], diag)
			}
		}
	}
	return grid
}

// SpawnSoftBody wires a regular n-vertex polygon ring around centre into
// a SoftBody plus its perimeter constraints.
func (b *Builder) SpawnSoftBody(n int, radius, particleRadius float32, centre vecmath.Vec2) solver.SoftBodyID {
	vertices := make([]solver.ParticleID, n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		offset := vecmath.New(radius*float32(math.Cos(angle)), radius*float32(math.Sin(angle)))
		vertices[i] = b.Solver.AddParticle(centre.Add(offset), particleRadius, false)
	}
	return b.Solver.AddSoftBody(vertices, radius)
}

// SpawnBox packs n particles into region as a dense rigid cluster: every
// pair of particles within the cluster is linked by a constraint at
// their spawn-time distance, and all are tagged with one fresh BodyID
// so intra-cluster collisions are suppressed.
func (b *Builder) SpawnBox(n int, particleRadius float32, region Region) ([]solver.ParticleID, solver.BodyID) {
	body := b.Solver.NewBodyTag()
	ids := make([]solver.ParticleID, n)
	for i := 0; i < n; i++ {
		ids[i] = b.Solver.AddParticle(b.jitterPosition(region), particleRadius, false)
		b.Solver.AssignBody(ids[i], body)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := b.Solver.Particles()[ids[i]].Position.Sub(b.Solver.Particles()[ids[j]].Position).Length()
			b.Solver.AddBodyConstraint(ids[i], ids[j], d)
		}
	}
	return ids, body
}
