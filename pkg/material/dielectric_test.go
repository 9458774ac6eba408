package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestDielectric_NormalIncidence(t *testing.T) {
	ratios := []float64{1.0 / 1.5, 1.5, 1.0 / 2.4, 2.4, 1.0}

	for _, ratio := range ratios {
		if CannotRefract(1.0, ratio) {
			t.Errorf("Normal incidence must never trigger total internal reflection (ratio %f)", ratio)
		}

		r0 := (1 - ratio) / (1 + ratio)
		r0 = r0 * r0
		if got := Reflectance(1.0, ratio); got != r0 {
			t.Errorf("Expected Schlick reflectance r0=%v at cos=1, got %v", r0, got)
		}
	}
}

func TestDielectric_ReflectOrRefractByDraw(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		Material:  glass,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		// r0 = 0.04 for glass at normal incidence
		{"draw below reflectance reflects", 0.01, core.NewVec3(0, 0, 1)},
		{"draw above reflectance refracts", 0.99, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scatter, didScatter := glass.Scatter(ray, hit, newFixedSampler(tt.draw))
			if !didScatter {
				t.Fatal("Dielectric should always scatter")
			}
			if !scatter.Scattered.Direction.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, scatter.Scattered.Direction)
			}
			if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
				t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the glass striking the boundary at a grazing angle
	rayDirection := core.NewVec3(1, 0, 0.2).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, -1), rayDirection)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, -1), // flipped to oppose the ray
		FrontFace: false,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	expected := core.Reflect(rayDirection, hit.Normal)
	for i := 0; i < 50; i++ {
		scatter, _ := glass.Scatter(ray, hit, sampler)
		if !scatter.Scattered.Direction.ApproxEquals(expected, 1e-12) {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
		}
	}
}

func TestDielectric_ProducesBothOutcomes(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	reflections, refractions := 0, 0
	for i := 0; i < 1000; i++ {
		scatter, _ := glass.Scatter(ray, hit, sampler)
		if scatter.Scattered.Direction.Y > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if reflections == 0 || refractions == 0 {
		t.Errorf("Expected both reflection and refraction, got %d reflections and %d refractions",
			reflections, refractions)
	}
	if refractions < reflections {
		t.Errorf("At 45 degrees refraction should dominate, got %d reflections and %d refractions",
			reflections, refractions)
	}
}
