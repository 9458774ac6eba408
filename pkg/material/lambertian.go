package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   diffuseRay(rayIn, hit, sampler),
		Attenuation: l.Albedo,
	}, true
}

// diffuseRay builds a scattered ray leaving hit along normal + a random unit vector.
// Directions that cancel out fall back to the normal itself.
func diffuseRay(rayIn core.Ray, hit HitRecord, sampler core.Sampler) core.Ray {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}
	return core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)
}
