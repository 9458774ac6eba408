package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Range of the uniform draw compared against Density
const (
	volumeDrawMin = 0.0
	volumeDrawMax = 0.5
)

// Volumetric approximates a thin scattering medium such as smoke.
// Each hit either scatters diffusely or lets the ray continue unchanged.
type Volumetric struct {
	Albedo  core.Vec3 // Color of the scattered light
	Density float64   // Larger values let more rays pass through
}

// NewVolumetric creates a new volumetric material, clamping density to [0, 1]
func NewVolumetric(albedo core.Vec3, density float64) *Volumetric {
	return &Volumetric{Albedo: albedo, Density: max(0.0, min(1.0, density))}
}

// Scatter implements the Material interface for volumetric scattering
func (v *Volumetric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if core.RandomRange(sampler, volumeDrawMin, volumeDrawMax) > v.Density {
		return ScatterResult{
			Scattered:   diffuseRay(rayIn, hit, sampler),
			Attenuation: v.Albedo,
		}, true
	}

	// Pass straight through, restarting at the hit point
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, rayIn.Direction, rayIn.Time),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}
