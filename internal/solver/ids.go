package solver

// ParticleID, ConstraintID, SpringID and SoftBodyID are opaque handles
// into the solver's owned slices. They are dense indices rather than
// pointers so the particle vector can grow during spawning without
// invalidating any cross-reference held by a constraint or soft body.
type (
	ParticleID  int
	ConstraintID int
	SpringID    int
	SoftBodyID  int
	BodyID      int
)

// NoBody is the zero value meaning "no body assigned". Body tags start
// at 1 so a zero-valued Particle.Body reads as "free" without an extra
// bool field.
const NoBody BodyID = 0
