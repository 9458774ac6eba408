package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly between two centers
type Sphere struct {
	Center0  core.Vec3 // Center at Time0 (the only center for a static sphere)
	Center1  core.Vec3 // Center at Time1
	Time0    float64   // Start of the motion window
	Time1    float64   // End of the motion window
	Radius   float64
	Material material.Material
	moving   bool
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center0:  center,
		Center1:  center,
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// NewMovingSphere creates a sphere that travels from center0 at time0 to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   math.Max(0, radius),
		Material: mat,
		moving:   true,
	}
}

// IsMoving reports whether the sphere changes position over time
func (s *Sphere) IsMoving() bool {
	return s.moving
}

// CenterAt returns the sphere center at the given time.
// Outside the motion window the center stays at Center0.
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	if !s.moving || time < s.Time0 || time > s.Time1 || s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Lerp(s.Center1, t)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// A zero-radius sphere is a point and a zero direction has no quadratic
	if s.Radius <= 0 || ray.Degenerate() {
		return nil, false
	}

	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
