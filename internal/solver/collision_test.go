package solver

import (
	"testing"

	"weakfield/internal/vecmath"
)

func TestResolvePairPushesOverlappingParticlesApart(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(10, 10), 5),
		NewParticle(vecmath.New(13, 10), 5), // overlap: distance 3 < sum radii 10
	}
	before := particles[0].Position.Sub(particles[1].Position).Length()

	resolvePair(particles, 0, 1)

	after := particles[0].Position.Sub(particles[1].Position).Length()
	if after <= before {
		t.Errorf("expected separation to increase, before=%v after=%v", before, after)
	}
}

func TestResolvePairNoOpWhenNotOverlapping(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 2),
		NewParticle(vecmath.New(100, 100), 2),
	}
	want := particles[0].Position

	resolvePair(particles, 0, 1)

	if particles[0].Position != want {
		t.Errorf("expected no movement for non-overlapping pair")
	}
}

func TestResolvePairSkipsSameBody(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(10, 10), 5),
		NewParticle(vecmath.New(13, 10), 5),
	}
	particles[0].Body = 1
	particles[1].Body = 1
	want0, want1 := particles[0].Position, particles[1].Position

	resolvePair(particles, 0, 1)

	if particles[0].Position != want0 || particles[1].Position != want1 {
		t.Errorf("expected same-body pair to be skipped")
	}
}

func TestResolvePairSkipsBothFixed(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(10, 10), 5),
		NewParticle(vecmath.New(13, 10), 5),
	}
	particles[0].Fixed = true
	particles[1].Fixed = true
	want0, want1 := particles[0].Position, particles[1].Position

	resolvePair(particles, 0, 1)

	if particles[0].Position != want0 || particles[1].Position != want1 {
		t.Errorf("expected both-fixed pair to be skipped")
	}
}

func TestResolvePairOnlyMovesFreeParticleWhenOtherFixed(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(10, 10), 5),
		NewParticle(vecmath.New(13, 10), 5),
	}
	particles[1].Fixed = true
	fixedPos := particles[1].Position

	resolvePair(particles, 0, 1)

	if particles[1].Position != fixedPos {
		t.Errorf("fixed particle must never move")
	}
	if particles[0].Position == vecmath.New(10, 10) {
		t.Errorf("free particle should have been displaced")
	}
}

func TestResolveCollisionsNaiveMatchesSerialGrid(t *testing.T) {
	naive := []Particle{
		NewParticle(vecmath.New(10, 10), 5),
		NewParticle(vecmath.New(13, 10), 5),
		NewParticle(vecmath.New(40, 40), 5),
	}
	gridParticles := make([]Particle, len(naive))
	copy(gridParticles, naive)

	resolveCollisionsNaive(naive)

	g := NewGrid(100, 100, 10)
	g.Rebuild(gridParticles, 100, 100)
	resolveCollisionsSerial(gridParticles, g)

	for i := range naive {
		d := naive[i].Position.Sub(gridParticles[i].Position).Length()
		if d > 1e-4 {
			t.Errorf("particle %d diverged between naive and grid resolvers: %v vs %v", i, naive[i].Position, gridParticles[i].Position)
		}
	}
}

func TestResolveCollisionsStripedMatchesSerial(t *testing.T) {
	build := func() []Particle {
		return []Particle{
			NewParticle(vecmath.New(10, 10), 5),
			NewParticle(vecmath.New(13, 10), 5),
			NewParticle(vecmath.New(50, 50), 5),
			NewParticle(vecmath.New(52, 51), 5),
			NewParticle(vecmath.New(90, 90), 5),
		}
	}

	serial := build()
	gSerial := NewGrid(100, 100, 10)
	gSerial.Rebuild(serial, 100, 100)
	resolveCollisionsSerial(serial, gSerial)

	striped := build()
	gStriped := NewGrid(100, 100, 10)
	gStriped.Rebuild(striped, 100, 100)
	pool := NewTaskPool(2)
	defer pool.Stop()
	resolveCollisionsStriped(striped, gStriped, pool)

	for i := range serial {
		d := serial[i].Position.Sub(striped[i].Position).Length()
		if d > 1e-3 {
			t.Errorf("particle %d diverged between serial and striped resolvers: %v vs %v", i, serial[i].Position, striped[i].Position)
		}
	}
}

func TestMassProxyUsesBodyMassRadiusForBodyMembers(t *testing.T) {
	free := NewParticle(vecmath.New(0, 0), 1)
	bodied := NewParticle(vecmath.New(0, 0), 1)
	bodied.Body = 1

	if massProxy(&free) == massProxy(&bodied) {
		t.Errorf("expected body member to use BodyMassRadius, diverging from a free particle's own radius")
	}
}
