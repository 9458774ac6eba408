package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PPMWriter streams an image as plain-text PPM (P3)
type PPMWriter struct {
	w     *bufio.Writer
	width int
}

// NewPPMWriter creates a PPM writer over w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the P3 header
func (p *PPMWriter) Begin(width, height int) error {
	p.width = width
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WriteRow writes one "r g b" line per pixel, left to right
func (p *PPMWriter) WriteRow(row int, pixels []core.Vec3) error {
	if err := checkRow(p.width, row, pixels); err != nil {
		return err
	}
	for _, pixel := range pixels {
		r, g, b := ToRGB8(pixel)
		if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return nil
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}
