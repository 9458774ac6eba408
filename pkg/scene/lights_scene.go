package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewLightsScene creates a scene lit only by emissive spheres under a black sky
func NewLightsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.VFov = 20
	config.SamplesPerPixel = 200 // Small lights need more samples to converge

	s := newScene(config, renderer.SolidBackground{}, cameraOverrides...)

	s.addGround(0, core.NewVec3(0.48, 0.83, 0.53))
	s.AddSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	s.AddSphere(core.NewVec3(0, 2, -4.5), 1.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.05))

	// Key light above and a dimmer fill light behind the camera
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, core.NewVec3(4, 4, 4))
	s.AddSphereLight(core.NewVec3(8, 1.5, 5), 0.75, core.NewVec3(3, 2.4, 1.6))

	return s
}
