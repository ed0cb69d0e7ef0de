package renderer

import (
	"testing"

	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

func TestNewParticleRendererEnablesEveryOverlayByDefault(t *testing.T) {
	r := NewParticleRenderer()

	if !r.DrawConstraints || !r.DrawSprings || !r.DrawSoftBodies {
		t.Error("new renderer should draw constraints, springs and soft bodies by default")
	}
}

func TestToRaylibVector2PreservesComponents(t *testing.T) {
	v := toRaylibVector2(vecmath.New(3, -4))
	if v.X != 3 || v.Y != -4 {
		t.Errorf("expected (3,-4), got (%f,%f)", v.X, v.Y)
	}
}

func TestToRaylibColorPreservesChannelsAndForcesOpaqueAlpha(t *testing.T) {
	c := toRaylibColor(solver.Colour{R: 10, G: 20, B: 30})
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("colour conversion mismatch: %+v", c)
	}
}
