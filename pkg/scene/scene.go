package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *geometry.HittableList // Objects in the scene
	Background   renderer.Background    // Radiance of rays that escape the world
	CameraConfig renderer.CameraConfig  // Recommended camera for the scene
}

// newScene creates an empty scene, applying the first camera override to config
func newScene(config renderer.CameraConfig, background renderer.Background, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := config
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(config, cameraOverrides[0])
	}

	return &Scene{
		World:        geometry.NewHittableList(),
		Background:   background,
		CameraConfig: cameraConfig,
	}
}

// NewCamera builds the camera described by the scene's camera configuration
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}

// ObjectCount returns the number of top-level objects in the world
func (s *Scene) ObjectCount() int {
	return s.World.Len()
}

// AddSphere adds a static sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// AddMovingSphere adds a sphere that moves from center0 to center1 while the shutter is open
func (s *Scene) AddMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) {
	config := s.CameraConfig
	s.World.Add(geometry.NewMovingSphere(center0, center1, config.StartTime, config.EndTime, radius, mat))
}

// AddSphereLight adds a spherical light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.AddSphere(center, radius, material.NewEmissive(emission))
}

// addGround adds the huge sphere used as a floor by most scenes
func (s *Scene) addGround(y float64, albedo core.Vec3) {
	s.AddSphere(core.NewVec3(0, y-1000, 0), 1000, material.NewLambertian(albedo))
}
