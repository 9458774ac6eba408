package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder creates a scene. Scenes with random layouts derive them from seed.
type Builder func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string // Human readable name
	Description string
	Build       Builder
}

var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Three Spheres",
		Description: "Diffuse sphere between a polished and a brushed metal sphere",
		Build: func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewDefaultScene(cameraOverrides...)
		},
	},
	{
		ID:          "weekend",
		DisplayName: "Sphere Field",
		Description: "Random field of small spheres around three large ones, with depth of field",
		Build:       NewSphereGridScene,
	},
	{
		ID:          "motion",
		DisplayName: "Bouncing Spheres",
		Description: "Sphere field with diffuse spheres moving during the exposure",
		Build:       NewBouncingSpheresScene,
	},
	{
		ID:          "lights",
		DisplayName: "Sphere Lights",
		Description: "Emissive spheres lighting a scene against a black sky",
		Build: func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewLightsScene(cameraOverrides...)
		},
	},
	{
		ID:          "smoke",
		DisplayName: "Smoke",
		Description: "Thin volumetric spheres next to glass and metal",
		Build: func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewSmokeScene(cameraOverrides...)
		},
	},
}

// ListScenes returns all registered scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of all registered scenes, sorted
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.ID)
	}
	return names
}

// Lookup finds a registered scene by ID, ignoring case
func Lookup(id string) (SceneInfo, error) {
	for _, info := range builtinScenes {
		if strings.EqualFold(info.ID, id) {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
}

// Build looks up a scene by ID and builds it
func Build(id string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	info, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return info.Build(seed, cameraOverrides...), nil
}
