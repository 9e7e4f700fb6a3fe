package geometry

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// hitCone intersects ray with the canonical cone: apex at y=0.5, a
// circular base of radius 0.5 at y=-0.5.
func hitCone(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	p, d := ray.Origin, ray.Direction

	best := math.Inf(1)
	found := false

	a := d.X*d.X + d.Z*d.Z - 0.25*d.Y*d.Y
	b := 2*(p.X*d.X+p.Z*d.Z) - 0.5*p.Y*d.Y + 0.25*d.Y
	c := p.X*p.X + p.Z*p.Z - 0.25*p.Y*p.Y + 0.25*p.Y - 1.0/16.0

	if math.Abs(a) > 1e-12 {
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

	// Base: plane y = -0.5.
	if d.Y != 0 {
		t := (-0.5 - p.Y) / d.Y
		if t > tMin && t <= tMax && t < best {
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
	return Hit{T: best, Point: point, Normal: normalCone(point)}, true
}

func normalCone(p core.Vec3) core.Vec3 {
	if withinEpsilon(p.Y, -0.5) {
		return core.NewVec3(0, -1, 0)
	}
	return core.NewVec3(2*p.X, 0.25-0.5*p.Y, 2*p.Z)
}
