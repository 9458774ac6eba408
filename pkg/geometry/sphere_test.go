package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

var defaultInterval = core.NewInterval(0.001, math.Inf(1))

func TestSphere_Hit_Reference(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != 0.5 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, -0.5)) {
		t.Errorf("Expected point (0, 0, -0.5), got %v", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultInterval)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultInterval)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.ApproxEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_IntervalIsOpen(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		radius    float64
		interval  core.Interval
		expectHit bool
		expectedT float64
	}{
		{"sphere beyond tmax", 0.1, core.NewInterval(0.0, 0.2), false, 0},
		{"near root equal to tmin falls back to far root", 0.5, core.NewInterval(0.5, 2.0), true, 1.5},
		{"near root equal to tmax is excluded", 0.5, core.NewInterval(0.0, 0.5), false, 0},
		{"far root equal to tmax is excluded", 0.5, core.NewInterval(0.6, 1.5), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, -1), tt.radius, nil)
			hit, isHit := sphere.Hit(ray, tt.interval)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && hit.T != tt.expectedT {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_RecordsMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.3))
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1.0, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), defaultInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != mat {
		t.Errorf("Expected hit material %v, got %v", mat, hit.Material)
	}
}

func TestSphere_ZeroRadiusNeverHits(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero radius", 0},
		{"negative radius clamped", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, -1), tt.radius, nil)
			if sphere.Radius != 0 {
				t.Errorf("Expected radius clamped to 0, got %f", sphere.Radius)
			}
			// Ray passes exactly through the center
			if _, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), defaultInterval); isHit {
				t.Error("Zero-radius sphere should never be hit")
			}
		})
	}
}

func TestSphere_DegenerateRayNeverHits(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	if _, isHit := sphere.Hit(ray, core.UniverseInterval); isHit {
		t.Error("Zero-length ray direction should never report a hit")
	}
}

func TestMovingSphere_CenterAt(t *testing.T) {
	center0 := core.NewVec3(0, 0, 0)
	center1 := core.NewVec3(2, 0, 0)
	sphere := NewMovingSphere(center0, center1, 0, 1, 0.5, nil)

	tests := []struct {
		name     string
		time     float64
		expected core.Vec3
	}{
		{"start of window", 0, center0},
		{"middle of window", 0.5, core.NewVec3(1, 0, 0)},
		{"end of window", 1, center1},
		{"before window clamps to start", -1, center0},
		{"after window clamps to start", 2, center0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sphere.CenterAt(tt.time); !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected center %v at time %f, got %v", tt.expected, tt.time, got)
			}
		})
	}

	if !sphere.IsMoving() {
		t.Error("Expected moving sphere")
	}
	if NewSphere(center0, 1, nil).IsMoving() {
		t.Error("Expected stationary sphere")
	}
}

func TestMovingSphere_HitDependsOnRayTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 0.5, nil)
	direction := core.NewVec3(0, 0, -1)
	origin := core.NewVec3(2, 0, 5)

	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 0), defaultInterval); isHit {
		t.Error("Sphere should not yet be at x=2 at time 0")
	}

	hit, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 1), defaultInterval)
	if !isHit {
		t.Fatal("Sphere should be at x=2 at time 1")
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal relative to the moved center, got %v", hit.Normal)
	}

	// The query must not mutate the sphere
	if !sphere.CenterAt(0).Equals(core.NewVec3(0, 0, 0)) {
		t.Error("Hit should not change the sphere's trajectory")
	}
}

func TestSphere_Hit_TinyDirections(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	origin := core.NewVec3(0, 0, -2)

	// Squared length 1e-300 is still representable
	hit, isHit := sphere.Hit(core.NewRay(origin, core.NewVec3(0, 0, 1e-150)), defaultInterval)
	if !isHit {
		t.Fatal("Expected a tiny but representable direction to hit")
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0, 0, -1), got %v", hit.Normal)
	}

	// Squared length underflows to zero
	if _, isHit := sphere.Hit(core.NewRay(origin, core.NewVec3(0, 0, 1e-200)), defaultInterval); isHit {
		t.Error("Expected a direction with underflowing length to miss")
	}
}
