package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// fixedSampler replays a fixed sequence of values, cycling when exhausted
type fixedSampler struct {
	values []float64
	next   int
	draws  int
}

func newFixedSampler(values ...float64) *fixedSampler {
	return &fixedSampler{values: values}
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	f.draws++
	return v
}

func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.Get1D(), f.Get1D())
}

func (f *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.Get1D(), f.Get1D(), f.Get1D())
}
