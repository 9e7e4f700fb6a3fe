// Package lights holds the light data model — a tagged union over
// Point, Directional, Spot, and Area — plus the small per-kind
// geometry helpers the shading kernel needs (direction/attenuation to
// a surface point, spotlight falloff, area-light sample grid). The
// shadow test and illumination accumulation themselves live in
// pkg/shading, since they need the scene to trace rays against.
package lights

import (
	"math"
	"math/rand"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

type Kind int

const (
	KindPoint Kind = iota
	KindDirectional
	KindSpot
	KindArea
)

// Light is the tagged union described in §3 of the light data model.
// Fields not relevant to Kind are simply unused; alpha of the
// original 4-tuple color is never consulted, so Color is a Vec3.
type Light struct {
	Kind  Kind
	Color core.Vec3

	// Point, Spot
	Position core.Vec3
	Atten    core.Vec3 // (a0, a1, a2)

	// Directional: direction FROM the light toward the scene.
	// Spot: axis direction the cone points along.
	Direction core.Vec3

	// Spot
	OuterAngle float64 // radians, half-angle of the outer cone
	Penumbra   float64 // radians, width of the falloff band

	// Area
	Corner core.Vec3
	EdgeU  core.Vec3
	EdgeV  core.Vec3
	Width  float64
	Height float64
}

// Sample is one evaluation point for a light: a direction/distance
// pair plus the color to use for that sample (area lights only ever
// produce one color; the field exists so the shading kernel has a
// uniform shape across all four kinds).
type Sample struct {
	L        core.Vec3 // unit direction from the surface point toward the light
	Dist     float64   // distance to the sample, or +Inf for directional
	Atten    float64   // attenuation factor already applied (includes spot falloff)
	Color    core.Vec3
	ShadowEp float64 // self-intersection epsilon to offset the shadow ray origin by
}

const shadowEpsilon = 1e-4

// Samples returns the evaluation points for light at surface point x.
// Point/Directional/Spot each produce exactly one; Area produces the
// 36 cells of its jittered sampling grid.
func Samples(l Light, x core.Vec3, random *rand.Rand) []Sample {
	switch l.Kind {
	case KindPoint:
		return []Sample{pointSample(l, x)}
	case KindDirectional:
		return []Sample{directionalSample(l)}
	case KindSpot:
		return []Sample{spotSample(l, x)}
	case KindArea:
		return areaSamples(l, x, random)
	default:
		panic("lights: unknown light kind")
	}
}

func attenuate(a core.Vec3, dist float64) float64 {
	denom := a.X + a.Y*dist + a.Z*dist*dist
	if denom <= 0 {
		return 1
	}
	return math.Min(1, 1/denom)
}

func pointSample(l Light, x core.Vec3) Sample {
	toLight := l.Position.Subtract(x)
	dist := toLight.Length()
	dir := toLight.Multiply(1 / dist)
	return Sample{L: dir, Dist: dist, Atten: attenuate(l.Atten, dist), Color: l.Color, ShadowEp: shadowEpsilon}
}

func directionalSample(l Light) Sample {
	return Sample{L: l.Direction.Negate().Normalize(), Dist: math.Inf(1), Atten: 1, Color: l.Color, ShadowEp: shadowEpsilon}
}

func spotSample(l Light, x core.Vec3) Sample {
	s := pointSample(l, x)

	axis := l.Direction.Normalize()
	fromLight := x.Subtract(l.Position).Normalize()
	alpha := math.Acos(clampUnit(axis.Dot(fromLight)))

	thetaOut := l.OuterAngle
	thetaIn := thetaOut - l.Penumbra

	var factor float64
	switch {
	case alpha <= thetaIn:
		factor = 1
	case alpha <= thetaOut:
		tt := (alpha - thetaIn) / l.Penumbra
		f := -2*tt*tt*tt + 3*tt*tt
		factor = 1 - f
	default:
		factor = 0
	}

	s.Atten *= factor
	return s
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// areaSamples jitters one sample per cell of a 6x6 grid spanning the
// light's rectangle.
func areaSamples(l Light, x core.Vec3, random *rand.Rand) []Sample {
	const grid = 6
	samples := make([]Sample, 0, grid*grid)

	uDir := l.EdgeU.Normalize()
	vDir := l.EdgeV.Normalize()

	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			ju, jv := core.JitterCell(random, col, row, grid, grid)
			pos := l.Corner.
				Add(uDir.Multiply(ju * l.Width)).
				Add(vDir.Multiply(jv * l.Height))

			toLight := pos.Subtract(x)
			dist := toLight.Length()
			dir := toLight.Multiply(1 / dist)
			samples = append(samples, Sample{
				L: dir, Dist: dist, Atten: attenuate(l.Atten, dist), Color: l.Color, ShadowEp: shadowEpsilon,
			})
		}
	}
	return samples
}
