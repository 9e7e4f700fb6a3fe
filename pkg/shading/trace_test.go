package shading

import (
	"math"
	"math/rand"
	"testing"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/material"
	"github.com/feldrise/phong-raytracer/pkg/scene"
)

func unitSphereScene(mat material.Material) *scene.RenderScene {
	return &scene.RenderScene{
		Width: 1, Height: 1,
		Ka: 1, Kd: 1, Ks: 1,
		Shapes: []scene.RenderShape{
			{Kind: geometry.KindSphere, Material: mat, CTM: core.Identity4(), CTMInv: core.Identity4()},
		},
	}
}

func TestTraceRay_MissReturnsBlack(t *testing.T) {
	sc := unitSphereScene(material.Material{})
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0))
	random := rand.New(rand.NewSource(1))
	cache := material.NewTextureCache(nil)

	got := TraceRay(ray, sc, core.DefaultConfig(), 0, 0, cache, random)
	if !got.Equals(core.Vec3{}) {
		t.Errorf("expected black on miss, got %v", got)
	}
}

func TestTraceRay_HitReturnsAmbientAtMinimum(t *testing.T) {
	mat := material.Material{Ambient: core.NewVec3(0.2, 0.2, 0.2)}
	sc := unitSphereScene(mat)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	random := rand.New(rand.NewSource(1))
	cache := material.NewTextureCache(nil)

	got := TraceRay(ray, sc, core.DefaultConfig(), 0, 0, cache, random)
	if got.X < mat.Ambient.X-1e-9 {
		t.Errorf("expected at least ambient contribution, got %v", got)
	}
}

func TestTraceShadowRay_DistanceMatchesHitParameter(t *testing.T) {
	sc := unitSphereScene(material.Material{})
	origin := core.NewVec3(0, 0, -5)
	dir := core.NewVec3(0, 0, 1)

	dist, hit := TraceShadowRay(origin, dir, sc, 0)
	if !hit {
		t.Fatalf("expected a shadow hit")
	}
	// The sphere has radius 0.5 at the origin; the ray enters at z=-0.5,
	// a distance of 4.5 from the origin at (0,0,-5).
	if math.Abs(dist-4.5) > 1e-6 {
		t.Errorf("expected distance ~4.5, got %v", dist)
	}
}

func TestIntersectScene_PicksNearestAcrossShapes(t *testing.T) {
	near := core.NewTranslate(core.NewVec3(0, 0, -2))
	far := core.NewTranslate(core.NewVec3(0, 0, 2))

	sc := &scene.RenderScene{
		Shapes: []scene.RenderShape{
			{Kind: geometry.KindSphere, Material: material.Material{Ambient: core.NewVec3(1, 0, 0)}, CTM: far, CTMInv: far.Inverse()},
			{Kind: geometry.KindSphere, Material: material.Material{Ambient: core.NewVec3(0, 1, 0)}, CTM: near, CTMInv: near.Inverse()},
		},
	}

	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
	hit, ok := intersectScene(ray, sc, math.Inf(1), 0)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.shape.Material.Ambient.Y != 1 {
		t.Errorf("expected the nearer sphere to win, got material %v", hit.shape.Material.Ambient)
	}
}

func TestTraceRay_OnlyRenderNormalsSkipsShading(t *testing.T) {
	sc := unitSphereScene(material.Material{Ambient: core.NewVec3(1, 1, 1)})
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	cfg := core.DefaultConfig()
	cfg.OnlyRenderNormals = true
	random := rand.New(rand.NewSource(1))
	cache := material.NewTextureCache(nil)

	got := TraceRay(ray, sc, cfg, 0, 0, cache, random)
	// The hit point (0,0,-0.5) has object-space normal (0,0,-1), so the
	// visualized color should be (0.5, 0.5, 0).
	if math.Abs(got.X-0.5) > 1e-6 || math.Abs(got.Y-0.5) > 1e-6 || math.Abs(got.Z) > 1e-6 {
		t.Errorf("unexpected normal visualization %v", got)
	}
}
