package lens

import (
	"math"
	"testing"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

func TestAssembly_OnAxisRayPassesThrough(t *testing.T) {
	a := Assembly{
		Elements: []Element{
			{Radius: 5, Eta: 1.5, Thickness: 1},
			{Radius: -5, Eta: 1.0, Thickness: 0.5},
		},
		ApertureRadius: 2,
	}

	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
	out, ok := a.Trace(ray)
	if !ok {
		t.Fatal("expected on-axis ray to pass through")
	}
	// An on-axis ray refracts with zero deviation at every surface,
	// so the direction stays along +z within numerical tolerance.
	if math.Abs(out.Direction.X) > 1e-9 || math.Abs(out.Direction.Y) > 1e-9 {
		t.Errorf("expected on-axis ray to stay on-axis, got direction %v", out.Direction)
	}
	if out.Direction.Z <= 0 {
		t.Errorf("expected forward direction, got %v", out.Direction)
	}
}

func TestAssembly_RejectsRayOutsideAperture(t *testing.T) {
	a := Assembly{
		Elements:       []Element{{Radius: 5, Eta: 1.5, Thickness: 1}},
		ApertureRadius: 0.1,
	}

	ray := core.NewRay(core.NewVec3(3, 0, -10), core.NewVec3(0, 0, 1))
	if _, ok := a.Trace(ray); ok {
		t.Errorf("expected ray landing outside the aperture stop to be rejected")
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	d := core.NewVec3(0, 0, 1)
	n := core.NewVec3(0, 0, -1)
	out, ok := refract(d, n, 1/1.5)
	if !ok {
		t.Fatal("expected refraction to succeed at normal incidence")
	}
	if !out.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("expected undeviated direction at normal incidence, got %v", out)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Steep ray from a denser medium (etaRatio > 1) beyond the critical angle.
	d := core.NewVec3(math.Sin(1.4), 0, math.Cos(1.4))
	n := core.NewVec3(0, 0, -1)
	_, ok := refract(d, n, 1.5)
	if ok {
		t.Errorf("expected total internal reflection to reject the ray")
	}
}
