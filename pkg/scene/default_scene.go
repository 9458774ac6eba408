package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates three spheres resting on a large ground sphere, seen
// through the default camera under a sky gradient
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene(renderer.DefaultCameraConfig(), renderer.NewSkyBackground(), cameraOverrides...)

	// Create materials
	groundMaterial := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMaterial := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	leftMaterial := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1)
	rightMaterial := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, groundMaterial)
	s.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, centerMaterial)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, leftMaterial)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, rightMaterial)

	return s
}
