package geometry

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// hitCylinder intersects ray with the canonical cylinder of height 1
// and radius 0.5 centered at the object-space origin (y in [-0.5,0.5]).
func hitCylinder(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	p, d := ray.Origin, ray.Direction

	best := math.Inf(1)
	found := false

	// Barrel: 2D quadratic in x, z.
	a := d.X*d.X + d.Z*d.Z
	if a > 1e-12 {
		b := 2 * (p.X*d.X + p.Z*d.Z)
		c := p.X*p.X + p.Z*p.Z - 0.25
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t <= tMin || t > tMax || t >= best {
					continue
				}
				y := p.Y + t*d.Y
				if y >= -0.5 && y <= 0.5 {
					best, found = t, true
				}
			}
		}
	}

	// Caps: y = ±0.5 planes.
	if d.Y != 0 {
		for _, yCap := range [2]float64{-0.5, 0.5} {
			t := (yCap - p.Y) / d.Y
			if t <= tMin || t > tMax || t >= best {
				continue
			}
			x := p.X + t*d.X
			z := p.Z + t*d.Z
			if x*x+z*z <= 0.25 {
				best, found = t, true
			}
		}
	}

	if !found {
		return Hit{}, false
	}
	point := ray.At(best)
	return Hit{T: best, Point: point, Normal: normalCylinder(point)}, true
}

func normalCylinder(p core.Vec3) core.Vec3 {
	if withinEpsilon(p.Y, 0.5) {
		return core.NewVec3(0, 1, 0)
	}
	if withinEpsilon(p.Y, -0.5) {
		return core.NewVec3(0, -1, 0)
	}
	return core.NewVec3(2*p.X, 0, 2*p.Z)
}
