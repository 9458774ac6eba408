package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	ImageWidth      int       // Rendered image width in pixels
	AspectRatio     float64   // Width / height
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
	SamplesPerPixel int       // Number of random samples for each pixel
	MaxDepth        int       // Maximum number of ray bounces
	StartTime       float64   // Shutter open time
	EndTime         float64   // Shutter close time
}

// DefaultCameraConfig returns a 16:9 pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       1,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.VUp != (core.Vec3{}) {
		result.VUp = override.VUp
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDist != 0 {
		result.FocusDist = override.FocusDist
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.StartTime != 0 {
		result.StartTime = override.StartTime
	}
	if override.EndTime != 0 {
		result.EndTime = override.EndTime
	}
	return result
}

// Validate checks the configuration for values that would break camera setup
func (c CameraConfig) Validate() error {
	switch {
	case c.ImageWidth < 1:
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidCamera, c.ImageWidth)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidCamera, c.AspectRatio)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %v", ErrInvalidCamera, c.VFov)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidCamera, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidCamera, c.MaxDepth)
	case c.LookFrom.Equals(c.LookAt):
		return fmt.Errorf("%w: look-from and look-at must differ", ErrInvalidCamera)
	case c.VUp.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return fmt.Errorf("%w: view-up vector must not be parallel to the view direction", ErrInvalidCamera)
	case !(c.FocusDist > 0):
		return fmt.Errorf("%w: focus distance must be positive, got %v", ErrInvalidCamera, c.FocusDist)
	case c.DefocusAngle < 0 || c.DefocusAngle >= 180:
		return fmt.Errorf("%w: defocus angle must be in [0, 180), got %v", ErrInvalidCamera, c.DefocusAngle)
	case c.EndTime < c.StartTime:
		return fmt.Errorf("%w: shutter end time %v precedes start time %v", ErrInvalidCamera, c.EndTime, c.StartTime)
	}
	return nil
}

// Camera generates rays for rendering.
// All derived state is computed once in NewCamera and never changes afterwards.
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3 // Camera center
	pixel00Loc  core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors
	defocusU    core.Vec3 // Defocus disk horizontal radius
	defocusV    core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates config and derives the viewport geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageHeight := max(1, int(float64(config.ImageWidth)/config.AspectRatio))
	center := config.LookFrom

	// Viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))

	// Orthonormal camera basis
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
		defocusU:    u.Multiply(defocusRadius),
		defocusV:    v.Multiply(defocusRadius),
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the image height derived from width and aspect ratio
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// PixelCenter returns the world-space center of pixel (i, j), with j counted from the top row
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay builds a camera ray for pixel (i, j).
// The target is jittered inside the pixel footprint, the origin is sampled from the
// defocus disk when DefocusAngle > 0, and the time is drawn from the shutter interval.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	rayTime := c.config.StartTime
	if shutter := core.NewInterval(c.config.StartTime, c.config.EndTime); shutter.Size() > 0 {
		rayTime = core.RandomRange(sampler, c.config.StartTime, c.config.EndTime)
	}

	return core.NewRayAtTime(rayOrigin, pixelSample.Subtract(rayOrigin), rayTime)
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
}
