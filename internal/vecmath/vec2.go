// Package vecmath provides the 2D vector algebra the solver is built on.
package vecmath

import "math"

// Vec2 is a pair of single-precision floats. It carries no invariants.
type Vec2 struct {
	X, Y float32
}

// New creates a Vec2 from two scalars.
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero is the additive identity.
func Zero() Vec2 {
	return Vec2{}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns the squared magnitude, avoiding the sqrt.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if v is (near) zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-12 {
		return Zero()
	}
	return v.Scale(1.0 / l)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// PolygonArea computes the signed area of a closed polygon via the
// shoelace formula. Positive for counter-clockwise winding.
func PolygonArea(verts []Vec2) float32 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	var sum float32
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum * 0.5
}
