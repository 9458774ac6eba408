package core

// Ray represents a ray with an origin, a direction and a moment in time.
// Time selects the position of moving geometry when the ray is tested.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a new ray that samples the scene at the given time
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Degenerate reports whether the ray has a zero-length direction.
// Such a ray cannot be intersected or normalized.
func (r Ray) Degenerate() bool {
	return r.Direction.LengthSquared() == 0
}
