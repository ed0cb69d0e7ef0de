package solver

import (
	"math"
	"testing"

	"weakfield/internal/vecmath"
)

func TestConstraintBothFree(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 1),
		NewParticle(vecmath.New(5, 0), 1),
	}
	c := Constraint{A: 0, B: 1, TargetDistance: 10}
	c.Resolve(particles)

	got := particles[1].Position.Sub(particles[0].Position).Length()
	if math.Abs(float64(got-10)) > 1e-3 {
		t.Errorf("expected separation 10, got %f", got)
	}
}

func TestConstraintOneFixed(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 1),
		NewParticle(vecmath.New(5, 0), 1),
	}
	particles[0].Fixed = true
	before := particles[0].Position

	c := Constraint{A: 0, B: 1, TargetDistance: 10}
	c.Resolve(particles)

	if particles[0].Position != before {
		t.Errorf("fixed particle moved: %+v", particles[0].Position)
	}
	got := particles[1].Position.Sub(particles[0].Position).Length()
	if math.Abs(float64(got-10)) > 1e-3 {
		t.Errorf("expected separation 10, got %f", got)
	}
}

func TestConstraintBothFixedNoOp(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 1),
		NewParticle(vecmath.New(5, 0), 1),
	}
	particles[0].Fixed = true
	particles[1].Fixed = true
	b := particles[1].Position

	c := Constraint{A: 0, B: 1, TargetDistance: 10}
	c.Resolve(particles)

	if particles[1].Position != b {
		t.Errorf("both-fixed constraint should be a no-op, got %+v", particles[1].Position)
	}
}

func TestJakobsenConverges(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 1),
		NewParticle(vecmath.New(2, 0), 1),
	}
	c := Constraint{A: 0, B: 1, TargetDistance: 10}

	for i := 0; i < ConstraintIterations; i++ {
		c.Resolve(particles)
	}

	got := particles[1].Position.Sub(particles[0].Position).Length()
	if math.Abs(float64(got-10)) > 1e-2 {
		t.Errorf("expected convergence to 10 within tolerance, got %f", got)
	}
}

func TestSpringPullsTogetherWhenStretched(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(0, 0), 1),
		NewParticle(vecmath.New(20, 0), 1),
	}
	s := NewSpring(0, 1, 10)
	before := particles[1].Position.Sub(particles[0].Position).Length()

	s.Resolve(particles, 1.0/60.0)

	after := particles[1].Position.Sub(particles[0].Position).Length()
	if after >= before {
		t.Errorf("expected stretched spring to pull particles closer: before=%f after=%f", before, after)
	}
}

func TestZeroDistanceGuarded(t *testing.T) {
	particles := []Particle{
		NewParticle(vecmath.New(3, 3), 1),
		NewParticle(vecmath.New(3, 3), 1),
	}
	c := Constraint{A: 0, B: 1, TargetDistance: 5}
	c.Resolve(particles) // must not panic or divide by zero

	if particles[0].Position != vecmath.New(3, 3) {
		t.Errorf("coincident particles should be left untouched, got %+v", particles[0].Position)
	}
}
