// Package lens implements the fixed ordered spherical refractive
// element stack a primary ray is bent through before entering the
// world, per §4.3. Every computation happens in lens space: camera
// space reflected across the z-axis so the optical axis points to +z.
package lens

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// Element is one spherical refracting interface: a sphere of radius
// Radius centered on the optical axis at a cumulative distance of the
// running sum of every preceding (and this) element's Thickness, with
// refractive index Eta on its far side. Air-to-glass is assumed at
// every interface (ratio 1/Eta), matching the original's single-medium
// simplification.
type Element struct {
	Radius    float64
	Eta       float64
	Thickness float64
}

// Assembly is the fixed lens stack plus the aperture stop radius that
// bounds the clear pencil of rays the last element accepts.
type Assembly struct {
	Elements       []Element
	ApertureRadius float64
}

// Trace routes ray (already in lens space) through every element in
// order. ok is false if the ray exits the lens barrel at any element
// or falls outside the aperture stop after the last one — the
// renderer's "outside lens" sentinel (§4.3, §7).
func (a Assembly) Trace(ray core.Ray) (out core.Ray, ok bool) {
	pos, dir := ray.Origin, ray.Direction.Normalize()
	z := 0.0

	for _, el := range a.Elements {
		z += el.Thickness
		center := core.NewVec3(0, 0, z)

		t, hit := intersectElementSphere(pos, dir, center, el.Radius)
		if !hit {
			return core.Ray{}, false
		}

		point := pos.Add(dir.Multiply(t))
		normal := point.Subtract(center).Normalize()
		if normal.Dot(dir) > 0 {
			normal = normal.Negate()
		}

		refracted, refractedOK := refract(dir, normal, 1/el.Eta)
		if !refractedOK {
			return core.Ray{}, false
		}

		pos, dir = point, refracted
	}

	if pos.X*pos.X+pos.Y*pos.Y > a.ApertureRadius*a.ApertureRadius {
		return core.Ray{}, false
	}

	return core.Ray{Origin: pos, Direction: dir}, true
}

// intersectElementSphere solves the same quadratic as the sphere
// shape kernel against a sphere of arbitrary radius and center, then
// picks the physically correct root by the sign of radius: the near
// intersection for a positive (convex-to-the-left) radius, the far
// one for a negative radius.
func intersectElementSphere(p, d, center core.Vec3, radius float64) (float64, bool) {
	oc := p.Subtract(center)
	a := d.Dot(d)
	b := 2 * oc.Dot(d)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var t float64
	if radius >= 0 {
		t = t0
	} else {
		t = t1
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// refract applies Snell's law at a surface with outward normal n
// (pointing back toward the incoming ray) and the ratio etaRatio =
// eta_incident/eta_transmitted.
func refract(d, n core.Vec3, etaRatio float64) (core.Vec3, bool) {
	cosThetaI := -d.Dot(n)
	sin2ThetaT := etaRatio * etaRatio * math.Max(0, 1-cosThetaI*cosThetaI)
	if sin2ThetaT > 1 {
		return core.Vec3{}, false // total internal reflection
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))

	out := d.Multiply(etaRatio).Add(n.Multiply(etaRatio*cosThetaI - cosThetaT))
	return out.Normalize(), true
}
