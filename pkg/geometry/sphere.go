package geometry

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// hitSphere intersects ray with the canonical sphere of radius 0.5
// centered at the object-space origin.
func hitSphere(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	p, d := ray.Origin, ray.Direction

	a := d.Dot(d)
	b := 2 * p.Dot(d)
	c := p.Dot(p) - 0.25

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)

	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)

	t, ok := smallestRootInRange(t0, t1, tMin, tMax)
	if !ok {
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{T: t, Point: point, Normal: normalSphere(point)}, true
}

func normalSphere(p core.Vec3) core.Vec3 {
	return p.Multiply(2)
}

// smallestRootInRange returns the smaller of t0, t1 that lies in
// (tMin, tMax], falling back to the larger one if only it qualifies.
func smallestRootInRange(t0, t1, tMin, tMax float64) (float64, bool) {
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > tMin && t0 <= tMax {
		return t0, true
	}
	if t1 > tMin && t1 <= tMax {
		return t1, true
	}
	return 0, false
}
