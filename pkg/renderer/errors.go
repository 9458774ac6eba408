package renderer

import "errors"

var (
	// ErrInvalidCamera is returned when a CameraConfig cannot produce a valid camera
	ErrInvalidCamera = errors.New("invalid camera configuration")

	// ErrInvalidRenderConfig is returned when a RenderConfig is malformed
	ErrInvalidRenderConfig = errors.New("invalid render configuration")
)
