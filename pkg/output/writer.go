package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

var (
	// ErrUnknownFormat is returned for an unsupported image format name
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrRowLength is returned when a row does not match the image width
	ErrRowLength = errors.New("row length does not match image width")

	// ErrNotStarted is returned when rows are written before Begin
	ErrNotStarted = errors.New("image writer used before Begin")
)

// ImageWriter receives an image one row at a time, top row first
type ImageWriter interface {
	Begin(width, height int) error
	WriteRow(row int, pixels []core.Vec3) error
	End() error
}

// Format identifies an image file format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat converts a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM, "":
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// NewImageWriter creates a writer for the format that streams to w
func NewImageWriter(format Format, w io.Writer) (ImageWriter, error) {
	switch format {
	case FormatPPM:
		return NewPPMWriter(w), nil
	case FormatPNG:
		return NewPNGWriter(w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func checkRow(width, row int, pixels []core.Vec3) error {
	if len(pixels) != width {
		return fmt.Errorf("%w: row %d has %d pixels, expected %d", ErrRowLength, row, len(pixels), width)
	}
	return nil
}
