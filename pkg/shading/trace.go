// Package shading implements scene traversal (traceRay / traceShadowRay,
// §4.4) and the Phong illumination kernel (§4.5) that evaluates each
// hit.
package shading

import (
	"math"
	"math/rand"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/material"
	"github.com/feldrise/phong-raytracer/pkg/scene"
)

const minT = 1e-6

// sceneHit is the nearest intersection across every RenderShape, with
// the winning shape and its object-space hit carried along for the
// caller to finish (world transform, UV, material lookup).
type sceneHit struct {
	shape *scene.RenderShape
	hit   geometry.Hit
}

// intersectScene scans every shape, converting the world ray into
// each shape's object space by its cached CTM^-1 before dispatching
// to the shape kernel, and keeps the globally nearest hit. t is
// compared directly across shapes in their own object-space units,
// matching §4.4's literal "track the global minimum t*" contract.
func intersectScene(ray core.Ray, sc *scene.RenderScene, tMax, time float64) (sceneHit, bool) {
	best := math.Inf(1)
	var result sceneHit
	found := false

	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		objRay := s.CTMInv.TransformRay(ray)
		hit, ok := geometry.Intersect(s.Kind, objRay, minT, best, time, s.Center2)
		if !ok || hit.T >= best {
			continue
		}
		best = hit.T
		result = sceneHit{shape: s, hit: hit}
		found = true
	}

	_ = tMax
	return result, found
}

// TraceRay casts a world-space ray and returns its illumination,
// black if nothing is hit. depth is the current recursion depth for
// bounded mirror reflection.
func TraceRay(ray core.Ray, sc *scene.RenderScene, cfg core.RendererConfig, depth int, time float64, cache *material.TextureCache, random *rand.Rand) core.Vec3 {
	if cfg.OnlyRenderNormals {
		return traceNormals(ray, sc, time)
	}

	hit, ok := intersectScene(ray, sc, math.Inf(1), time)
	if !ok {
		return core.Vec3{}
	}

	worldPoint := hit.shape.CTM.TransformPoint(hit.hit.Point)
	normalMat := hit.shape.CTMInv.Transpose3()
	worldNormal := normalMat.TransformVector(hit.hit.Normal).Normalize()
	if worldNormal.Dot(ray.Direction) > 0 {
		worldNormal = worldNormal.Negate()
	}
	view := ray.Direction.Negate().Normalize()
	uvHit := hit.hit
	if hit.shape.Kind == geometry.KindSphereMoving || hit.shape.Kind == geometry.KindCubeMoving {
		uvHit.Point = uvHit.Point.Subtract(hit.shape.Center2.Multiply(time))
	}
	uv := geometry.UV(hit.shape.Kind, uvHit)

	return phong(phongInputs{
		point:    worldPoint,
		normal:   worldNormal,
		view:     view,
		mat:      hit.shape.Material,
		uv:       uv,
		scene:    sc,
		cfg:      cfg,
		depth:    depth,
		time:     time,
		cache:    cache,
		random:   random,
	})
}

// traceNormals is the onlyRenderNormals debug path: it skips the
// Phong kernel entirely and visualizes the world-space normal.
func traceNormals(ray core.Ray, sc *scene.RenderScene, time float64) core.Vec3 {
	hit, ok := intersectScene(ray, sc, math.Inf(1), time)
	if !ok {
		return core.Vec3{}
	}
	normalMat := hit.shape.CTMInv.Transpose3()
	worldNormal := normalMat.TransformVector(hit.hit.Normal).Normalize()
	if worldNormal.Dot(ray.Direction) > 0 {
		worldNormal = worldNormal.Negate()
	}
	return worldNormal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
}

// TraceShadowRay returns the distance to the nearest shape along
// (origin, dir), or ok=false if nothing is hit. The distance is
// |t* . dir| using dir as passed in (matching §4.4's literal
// formula), so the caller must pass the same direction/scale it used
// to reach the light.
func TraceShadowRay(origin, dir core.Vec3, sc *scene.RenderScene, time float64) (float64, bool) {
	ray := core.Ray{Origin: origin, Direction: dir}
	hit, ok := intersectScene(ray, sc, math.Inf(1), time)
	if !ok {
		return 0, false
	}
	return math.Abs(hit.hit.T * dir.Length()), true
}
