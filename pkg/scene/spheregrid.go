package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	// Convert hue from degrees to radians
	hRad := core.DegreesToRadians(h)

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// Convert from OKLAB to linear RGB
	// Using simplified approximation for OKLAB to RGB conversion
	// This is not perfectly accurate but good enough for our purposes

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// sphereGridCamera is the elevated, narrow-angle camera with depth of field used by the sphere field scenes
func sphereGridCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(13, 2, 3) // Low and far back, looking across the field
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VFov = 20
	config.DefocusAngle = 0.6 // Noticeable blur away from the focus plane
	config.FocusDist = 10
	return config
}

// NewSphereGridScene creates a field of randomly placed small spheres around three large ones
func NewSphereGridScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene(sphereGridCamera(), renderer.NewSkyBackground(), cameraOverrides...)
	addSphereGrid(s, core.NewSeededSampler(seed), false)
	return s
}

// NewBouncingSpheresScene creates the sphere field with diffuse spheres jumping upward
// while the shutter is open
func NewBouncingSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	config := sphereGridCamera()
	config.StartTime = 0
	config.EndTime = 1

	s := newScene(config, renderer.NewSkyBackground(), cameraOverrides...)
	addSphereGrid(s, core.NewSeededSampler(seed), true)
	return s
}

// addSphereGrid fills s with a ground sphere, a 22x22 jittered grid of small
// spheres and three large feature spheres
func addSphereGrid(s *Scene, sampler core.Sampler, moving bool) {
	s.addGround(0, core.NewVec3(0.5, 0.5, 0.5))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, 0.2, float64(b)+0.9*jitter.Y)

			// Keep the space around the large metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				// Diffuse with a random hue
				hue := core.RandomRange(sampler, 0, 360)
				lightness := core.RandomRange(sampler, 0.45, 0.85)
				albedo := oklchToRGB(lightness, 0.12, hue)
				if moving {
					center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
					s.AddMovingSphere(center, center1, 0.2, material.NewLambertian(albedo))
				} else {
					s.AddSphere(center, 0.2, material.NewLambertian(albedo))
				}
			case chooseMaterial < 0.95:
				// Metal
				albedo := core.NewVec3(
					core.RandomRange(sampler, 0.5, 1),
					core.RandomRange(sampler, 0.5, 1),
					core.RandomRange(sampler, 0.5, 1),
				)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				s.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				s.AddSphere(center, 0.2, glass)
			}
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
}
