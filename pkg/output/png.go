package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PNGWriter collects rows into an image and encodes it as PNG on End
type PNGWriter struct {
	w   io.Writer
	img *image.RGBA
}

// NewPNGWriter creates a PNG writer over w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// Begin allocates the image
func (p *PNGWriter) Begin(width, height int) error {
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// WriteRow stores one row of pixels
func (p *PNGWriter) WriteRow(row int, pixels []core.Vec3) error {
	if p.img == nil {
		return ErrNotStarted
	}
	if err := checkRow(p.img.Bounds().Dx(), row, pixels); err != nil {
		return err
	}
	for i, pixel := range pixels {
		r, g, b := ToRGB8(pixel)
		p.img.SetRGBA(i, row, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return nil
}

// End encodes the finished image
func (p *PNGWriter) End() error {
	if p.img == nil {
		return ErrNotStarted
	}
	return png.Encode(p.w, p.img)
}
