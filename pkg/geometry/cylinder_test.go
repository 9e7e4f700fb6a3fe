package geometry

import (
	"math"
	"testing"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

func TestHitCylinder_Barrel(t *testing.T) {
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0))
	hit, ok := Intersect(KindCylinder, ray, 0.001, 1000, 0, core.Vec3{})
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("expected t=1.5, got %f", hit.T)
	}
	expectedNormal := core.NewVec3(1, 0, 0)
	if !hit.Normal.Normalize().Equals(expectedNormal) {
		t.Errorf("expected normal %v, got %v", expectedNormal, hit.Normal.Normalize())
	}
}

func TestHitCylinder_TopCap(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	hit, ok := Intersect(KindCylinder, ray, 0.001, 1000, 0, core.Vec3{})
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("expected t=1.5, got %f", hit.T)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("expected top cap normal, got %v", hit.Normal)
	}
}

func TestHitCylinder_MissesBeyondRadius(t *testing.T) {
	ray := core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(0, 1, 0))
	if _, ok := Intersect(KindCylinder, ray, 0.001, 1000, 0, core.Vec3{}); ok {
		t.Errorf("expected miss")
	}
}
