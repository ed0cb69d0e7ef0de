package scene

import (
	"testing"

	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

func newTestBuilder(t *testing.T) (*Builder, *solver.Solver) {
	t.Helper()
	pool := solver.NewTaskPool(2)
	t.Cleanup(pool.Stop)
	sim := solver.NewSolver(1000, 1000, 20, pool)
	return NewBuilder(sim, 1), sim
}

func TestSpawnCloudProducesRequestedCountWithinRegionAndRadiusRange(t *testing.T) {
	b, sim := newTestBuilder(t)
	region := Region{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

	ids := b.SpawnCloud(50, 2, 8, region)

	if len(ids) != 50 {
		t.Fatalf("expected 50 particles, got %d", len(ids))
	}
	particles := sim.Particles()
	for _, id := range ids {
		p := particles[id]
		if p.Fixed {
			t.Errorf("particle %d should be free, not fixed", id)
		}
		if p.Radius < 2 || p.Radius > 8 {
			t.Errorf("particle %d radius out of range: %f", id, p.Radius)
		}
		if p.Position.X < region.MinX || p.Position.X > region.MaxX {
			t.Errorf("particle %d X out of bounds: %f", id, p.Position.X)
		}
		if p.Position.Y < region.MinY || p.Position.Y > region.MaxY {
			t.Errorf("particle %d Y out of bounds: %f", id, p.Position.Y)
		}
	}
}

func TestSpawnCentralAttractorFixesCoreAndScattersCloud(t *testing.T) {
	b, sim := newTestBuilder(t)
	region := Region{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	centre := vecmath.New(500, 500)

	core, cloud := b.SpawnCentralAttractor(20, centre, 30, 2, 6, region)

	particles := sim.Particles()
	if !particles[core].Fixed {
		t.Errorf("central attractor must be fixed")
	}
	if particles[core].Position != centre {
		t.Errorf("central attractor not at requested centre: got %v", particles[core].Position)
	}
	if len(cloud) != 20 {
		t.Fatalf("expected 20 cloud particles, got %d", len(cloud))
	}
	for _, id := range cloud {
		if particles[id].Fixed {
			t.Errorf("cloud particle %d should not be fixed", id)
		}
	}
}

func TestSpawnRopeChainsSegmentsAndOptionallyAnchorsFirst(t *testing.T) {
	b, sim := newTestBuilder(t)
	anchor := vecmath.New(100, 0)

	ids := b.SpawnRope(6, anchor, 10, 1, true)

	if len(ids) != 6 {
		t.Fatalf("expected 6 particles, got %d", len(ids))
	}
	particles := sim.Particles()
	if !particles[ids[0]].Fixed {
		t.Errorf("first rope particle should be fixed when anchorFixed is true")
	}
	for _, id := range ids[1:] {
		if particles[id].Fixed {
			t.Errorf("particle %d should not be fixed", id)
		}
	}
	if len(sim.Constraints()) != 5 {
		t.Errorf("expected 5 constraints linking 6 particles, got %d", len(sim.Constraints()))
	}
}

func TestSpawnRopeWithoutAnchorLeavesAllParticlesFree(t *testing.T) {
	b, sim := newTestBuilder(t)
	ids := b.SpawnRope(4, vecmath.New(0, 0), 10, 1, false)

	particles := sim.Particles()
	for _, id := range ids {
		if particles[id].Fixed {
			t.Errorf("particle %d should be free when anchorFixed is false", id)
		}
	}
}

func TestSpawnClothFixesTopRowAndWiresStructuralAndShearConstraints(t *testing.T) {
	b, sim := newTestBuilder(t)

	grid := b.SpawnCloth(4, 3, vecmath.New(0, 0), 10, 1)

	if len(grid) != 3 || len(grid[0]) != 4 {
		t.Fatalf("expected 3x4 grid, got %dx%d", len(grid), len(grid[0]))
	}
	particles := sim.Particles()
	for x := 0; x < 4; x++ {
		if !particles[grid[0][x]].Fixed {
			t.Errorf("top row particle (0,%d) should be fixed", x)
		}
	}
	for y := 1; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if particles[grid[y][x]].Fixed {
				t.Errorf("non-top-row particle (%d,%d) should not be fixed", y, x)
			}
		}
	}
	// 3 rows x 3 horizontal + 2 rows x 4 vertical + 2x3 diagonal pairs x 2
	want := 3*3 + 2*4 + 2*3*2
	if got := len(sim.Constraints()); got != want {
		t.Errorf("expected %d cloth constraints, got %d", want, got)
	}
}

func TestSpawnSoftBodyWiresRingOfVerticesIntoOneSoftBody(t *testing.T) {
	b, sim := newTestBuilder(t)
	centre := vecmath.New(200, 200)

	id := b.SpawnSoftBody(8, 40, 2, centre)

	bodies := sim.SoftBodies()
	if len(bodies) != 1 {
		t.Fatalf("expected 1 soft body, got %d", len(bodies))
	}
	verts := sim.VertexPositions(id)
	if len(verts) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(verts))
	}
	for _, v := range verts {
		d := v.Sub(centre).Length()
		if d < 39 || d > 41 {
			t.Errorf("vertex not on ring of radius 40: distance %f", d)
		}
	}
}

func TestSpawnBoxTagsOneBodyAndFullyConstrainsPairwiseDistances(t *testing.T) {
	b, sim := newTestBuilder(t)
	region := Region{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}

	ids, body := b.SpawnBox(5, 3, region)

	if body == solver.NoBody {
		t.Fatalf("SpawnBox must assign a real body tag")
	}
	particles := sim.Particles()
	for _, id := range ids {
		if particles[id].Body != body {
			t.Errorf("particle %d not tagged with box body", id)
		}
	}
	want := 5 * 4 / 2
	if got := len(sim.Constraints()); got != want {
		t.Errorf("expected %d pairwise constraints for 5 particles, got %d", want, got)
	}
}
