package geometry

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// hitCube intersects ray with the canonical axis-aligned unit cube
// centered at the object-space origin (faces at ±0.5 on each axis).
func hitCube(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	p, d := ray.Origin, ray.Direction

	best := math.Inf(1)
	found := false

	tryAxis := func(originC, dirC, otherA0, otherDA, otherB0, otherDB float64) {
		if dirC == 0 {
			return
		}
		for _, face := range [2]float64{-0.5, 0.5} {
			t := (face - originC) / dirC
			if t <= tMin || t > tMax || t >= best {
				continue
			}
			a := otherA0 + t*otherDA
			b := otherB0 + t*otherDB
			if a >= -0.5-Epsilon && a <= 0.5+Epsilon && b >= -0.5-Epsilon && b <= 0.5+Epsilon {
				best = t
				found = true
			}
		}
	}

	tryAxis(p.X, d.X, p.Y, d.Y, p.Z, d.Z)
	tryAxis(p.Y, d.Y, p.X, d.X, p.Z, d.Z)
	tryAxis(p.Z, d.Z, p.X, d.X, p.Y, d.Y)

	if !found {
		return Hit{}, false
	}
	point := ray.At(best)
	return Hit{T: best, Point: point, Normal: normalCube(point)}, true
}

// normalCube returns the unit axis of whichever face p lies on, ties
// broken by whichever coordinate is closest to ±0.5.
func normalCube(p core.Vec3) core.Vec3 {
	dx := math.Abs(math.Abs(p.X) - 0.5)
	dy := math.Abs(math.Abs(p.Y) - 0.5)
	dz := math.Abs(math.Abs(p.Z) - 0.5)

	sign := func(v float64) float64 {
		if v < 0 {
			return -1
		}
		return 1
	}

	switch {
	case dx <= dy && dx <= dz:
		return core.NewVec3(sign(p.X), 0, 0)
	case dy <= dx && dy <= dz:
		return core.NewVec3(0, sign(p.Y), 0)
	default:
		return core.NewVec3(0, 0, sign(p.Z))
	}
}
