package solver

import (
	"math"

	"weakfield/internal/vecmath"
)

// SoftBody is an ordered cycle of particle references forming a closed
// polygon, plus a DesiredArea derived at construction. Area is
// maintained as a soft, iterative pressure model rather than a strict
// invariant: each pass nudges every vertex along its outward normal.
type SoftBody struct {
	Vertices    []ParticleID
	DesiredArea float32
}

// NewSoftBody derives DesiredArea from an initial radius as π·r².
func NewSoftBody(vertices []ParticleID, radius float32) SoftBody {
	return SoftBody{
		Vertices:    vertices,
		DesiredArea: math.Pi * radius * radius,
	}
}

// Resolve applies one area-correction pass: it computes the current
// signed area via the shoelace formula and displaces each vertex along
// the outward normal at that vertex (the normalized perpendicular of
// the segment from its predecessor to its successor, oriented away from
// the ring's interior for either winding) by
// α·(desired-current)/(2N).
func (s *SoftBody) Resolve(particles []Particle) {
	n := len(s.Vertices)
	if n < 3 {
		return
	}

	positions := make([]vecmath.Vec2, n)
	for i, id := range s.Vertices {
		positions[i] = particles[id].Position
	}

	area := vecmath.PolygonArea(positions)
	// Perp of the predecessor-to-successor tangent points into the ring
	// for counter-clockwise winding (positive signed area), so flip it
	// there to get the outward normal.
	outward := float32(-1)
	if area < 0 {
		area = -area
		outward = 1
	}
	areaErr := s.DesiredArea - area
	disp := SoftBodyAlpha * areaErr / float32(2*n)

	for i := range positions {
		prev := positions[(i-1+n)%n]
		next := positions[(i+1)%n]
		tangent := next.Sub(prev)
		normal := tangent.Perp().Normalize().Scale(outward)

		p := &particles[s.Vertices[i]]
		if p.Fixed {
			continue
		}
		p.Position = p.Position.Add(normal.Scale(disp))
	}
}
