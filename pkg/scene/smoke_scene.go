package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewSmokeScene creates volumetric spheres of different densities beside glass and metal
func NewSmokeScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(0, 1.5, 5)
	config.LookAt = core.NewVec3(0, 0.5, -1)
	config.VFov = 40

	s := newScene(config, renderer.NewSkyBackground(), cameraOverrides...)

	s.addGround(-0.5, core.NewVec3(0.5, 0.5, 0.5))

	// Density sets how often a ray passes straight through a surface hit
	s.AddSphere(core.NewVec3(-1.1, 0, -1), 0.5, material.NewVolumetric(core.NewVec3(0.9, 0.9, 0.9), 0.1))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewVolumetric(core.NewVec3(0.2, 0.2, 0.2), 0.3))
	s.AddSphere(core.NewVec3(1.1, 0, -1), 0.5, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(0, 0.25, 0.2), 0.25, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))

	return s
}
