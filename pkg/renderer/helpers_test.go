package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// fixedSampler replays a fixed sequence of values, cycling when exhausted
type fixedSampler struct {
	values []float64
	next   int
}

func newFixedSampler(values ...float64) *fixedSampler {
	return &fixedSampler{values: values}
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.Get1D(), f.Get1D())
}

func (f *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.Get1D(), f.Get1D(), f.Get1D())
}

// memorySink collects rows in the order they are written
type memorySink struct {
	width, height int
	rows          []int
	pixels        [][]core.Vec3
	ended         bool
	failAt        int
}

func newMemorySink() *memorySink {
	return &memorySink{failAt: -1}
}

func (m *memorySink) Begin(width, height int) error {
	m.width, m.height = width, height
	return nil
}

func (m *memorySink) WriteRow(row int, pixels []core.Vec3) error {
	if row == m.failAt {
		return errSinkFull
	}
	m.rows = append(m.rows, row)
	m.pixels = append(m.pixels, pixels)
	return nil
}

func (m *memorySink) End() error {
	m.ended = true
	return nil
}

func approxEqual(a, b, tolerance float64) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}
