package geometry

import (
	"math"
	"testing"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

func TestHitSphere_Miss(t *testing.T) {
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))
	if _, ok := Intersect(KindSphere, ray, 0.001, 1000, 0, core.Vec3{}); ok {
		t.Errorf("expected miss")
	}
}

func TestHitSphere_OutwardNormal(t *testing.T) {
	tests := []struct {
		name           string
		ray            core.Ray
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "approaching from outside",
			ray:            core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)),
			expectedT:      1.5,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "origin inside, exits through far side",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expectedT:      0.5,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Intersect(KindSphere, tt.ray, 0.001, 1000, 0, core.Vec3{})
			if !ok {
				t.Fatal("expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			n := hit.Normal.Normalize()
			if !n.Equals(tt.expectedNormal) {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, n)
			}
		})
	}
}

func TestHitSphere_TMaxTMinBounds(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if _, ok := Intersect(KindSphere, ray, 0.001, 0.5, 0, core.Vec3{}); ok {
		t.Errorf("expected miss due to tMax bound")
	}
	if _, ok := Intersect(KindSphere, ray, 2.5, 1000, 0, core.Vec3{}); ok {
		t.Errorf("expected miss due to tMin bound")
	}
}

func TestHitSphereMoving_CenterOffset(t *testing.T) {
	c2 := core.NewVec3(1, 0, 0)
	// At time=1 the sphere is centered at (1,0,0); a ray travelling
	// along -z through that center should hit its near surface.
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))
	hit, ok := Intersect(KindSphereMoving, ray, 0.001, 1000, 1.0, c2)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("expected t=1.5, got %f", hit.T)
	}
}

func TestSphereUV_Pole(t *testing.T) {
	uv := sphereUV(core.NewVec3(0, 0.5, 0))
	if math.Abs(uv.X-0.5) > 1e-9 {
		t.Errorf("expected pole u=0.5, got %f", uv.X)
	}
}
