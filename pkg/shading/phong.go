package shading

import (
	"math"
	"math/rand"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/lights"
	"github.com/feldrise/phong-raytracer/pkg/material"
	"github.com/feldrise/phong-raytracer/pkg/scene"
)

// reflectionEpsilon offsets a reflected ray's origin off the surface
// it bounced from. The original renderer used 1e-1, large enough to
// visibly skip surface detail on curved reflectors; this is the
// corrected value, just past float64 round-off at scene scale.
const reflectionEpsilon = 1e-4

// areaLightGridCells is the normalization constant for area-light
// accumulation: the grid is always 6x6 regardless of how many cells'
// shadow rays actually reach the light, so the divisor is the fixed
// cell count, not the hit count.
const areaLightGridCells = 36

type phongInputs struct {
	point  core.Vec3
	normal core.Vec3
	view   core.Vec3 // unit vector from the surface point toward the eye
	mat    material.Material
	uv     core.Vec2
	scene  *scene.RenderScene
	cfg    core.RendererConfig
	depth  int
	time   float64
	cache  *material.TextureCache
	random *rand.Rand
}

// phong evaluates the Phong illumination model of §4.5 at one hit:
// ambient, then per-light diffuse+specular over shadow-tested
// samples, then bounded recursive mirror reflection.
func phong(in phongInputs) core.Vec3 {
	color := in.mat.Ambient.Multiply(in.scene.Ka)

	diffuseBase := in.cache.Sample(in.mat, in.uv.X, in.uv.Y, in.scene.Kd, in.cfg.EnableTextureMap)

	for _, lt := range in.scene.Lights {
		color = color.Add(shadeLight(in, lt, diffuseBase))
	}

	if in.cfg.EnableReflection && in.depth < in.cfg.MaxRecursiveDepth && !in.mat.Reflective.IsZero() {
		reflectDir := core.Reflect(in.view, in.normal).Normalize()
		origin := in.point.Add(reflectDir.Multiply(reflectionEpsilon))
		reflected := TraceRay(core.NewRay(origin, reflectDir), in.scene, in.cfg, in.depth+1, in.time, in.cache, in.random)
		color = color.Add(reflected.MultiplyVec(in.mat.Reflective).Multiply(in.scene.Ks))
	}

	return color
}

// shadeLight accumulates one light's contribution, averaging over its
// samples (1 for point/directional/spot, the 36 cells of the jittered
// grid for area lights).
func shadeLight(in phongInputs, lt lights.Light, diffuseBase core.Vec3) core.Vec3 {
	samples := lights.Samples(lt, in.point, in.random)

	divisor := float64(len(samples))
	if lt.Kind == lights.KindArea {
		divisor = areaLightGridCells
	}

	var total core.Vec3
	for _, s := range samples {
		if in.cfg.EnableShadow {
			origin := in.point.Add(s.L.Multiply(s.ShadowEp))
			if dist, hit := TraceShadowRay(origin, s.L, in.scene, in.time); hit && dist < s.Dist-s.ShadowEp {
				continue
			}
		}

		ndotl := in.normal.Dot(s.L)
		if ndotl <= 0 {
			continue
		}

		diffuse := diffuseBase.Multiply(ndotl * s.Atten)

		var specular core.Vec3
		if in.mat.Shininess > 0 {
			reflectDir := core.Reflect(s.L, in.normal).Normalize()
			rdotv := reflectDir.Dot(in.view)
			if rdotv > 0 {
				specular = in.mat.Specular.Multiply(in.scene.Ks * s.Atten * math.Pow(rdotv, in.mat.Shininess))
			}
		}

		total = total.Add(diffuse.Add(specular).MultiplyVec(s.Color))
	}

	return total.Multiply(1 / divisor)
}
