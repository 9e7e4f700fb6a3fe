// Package geometry implements closed-form ray intersection, surface
// normals, and UV mapping for the fixed set of canonical object-space
// primitives: a finite tagged union, dispatched by Kind, rather than an
// interface per shape. Every kernel operates entirely in the
// primitive's own canonical object space (sphere of radius 0.5 at the
// origin, unit cube centered at the origin, and so on); world
// positioning is the scene package's CTM, not this package's concern.
package geometry

import "github.com/feldrise/phong-raytracer/pkg/core"

// Kind is the tagged primitive kind a RenderShape carries.
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindCone
	KindCylinder
	KindSphereMoving
	KindCubeMoving
)

// Hit is the result of a successful Intersect call, expressed in the
// primitive's canonical object space.
type Hit struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3
}

// Intersect dispatches to the kernel for kind and returns the nearest
// hit in (tMin, tMax]. time and center2 are only consulted by the
// moving variants; center2 is the primitive's second center c2 and
// time in [0,1] interpolates the object's center between the origin
// and c2 for motion blur.
func Intersect(kind Kind, ray core.Ray, tMin, tMax, time float64, center2 core.Vec3) (Hit, bool) {
	switch kind {
	case KindSphere:
		return hitSphere(ray, tMin, tMax)
	case KindCube:
		return hitCube(ray, tMin, tMax)
	case KindCone:
		return hitCone(ray, tMin, tMax)
	case KindCylinder:
		return hitCylinder(ray, tMin, tMax)
	case KindSphereMoving:
		return hitMoving(KindSphere, ray, tMin, tMax, time, center2)
	case KindCubeMoving:
		return hitMoving(KindCube, ray, tMin, tMax, time, center2)
	default:
		panic("geometry: unknown primitive kind")
	}
}

// hitMoving offsets the ray into the static primitive's frame by the
// time-interpolated center, runs the static kernel, then translates
// the hit point back out (the normal is a direction and is unchanged).
func hitMoving(staticKind Kind, ray core.Ray, tMin, tMax, time float64, center2 core.Vec3) (Hit, bool) {
	c := center2.Multiply(time)
	shifted := core.Ray{Origin: ray.Origin.Subtract(c), Direction: ray.Direction}

	var hit Hit
	var ok bool
	switch staticKind {
	case KindSphere:
		hit, ok = hitSphere(shifted, tMin, tMax)
	case KindCube:
		hit, ok = hitCube(shifted, tMin, tMax)
	}
	if !ok {
		return Hit{}, false
	}
	hit.Point = hit.Point.Add(c)
	return hit, true
}
