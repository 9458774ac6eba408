package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// Raytracer estimates the radiance carried along camera rays
type Raytracer struct {
	world      geometry.Hittable
	background Background
}

// NewRaytracer creates a raytracer for the given world. A nil background means the sky gradient.
func NewRaytracer(world geometry.Hittable, background Background) *Raytracer {
	if background == nil {
		background = NewSkyBackground()
	}
	return &Raytracer{
		world:      world,
		background: background,
	}
}

// RayColor returns the radiance arriving along r, following at most depth bounces.
// Each surface contributes its emission plus its attenuation times the radiance of
// the scattered ray.
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// A zero direction would poison the estimate with NaNs
	if r.Degenerate() {
		return core.Vec3{}
	}

	hit, isHit := rt.world.Hit(r, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return rt.background.Color(r)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	emitted := material.Emitted(hit.Material, r, *hit)

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, sampler)))
}
