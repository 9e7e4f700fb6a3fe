package geometry

import (
	"math"

	"github.com/feldrise/phong-raytracer/pkg/core"
)

// UV maps an object-space hit point (already in the primitive's own
// canonical frame — for moving variants, relative to the
// time-interpolated center) to texture coordinates in [0,1]^2.
func UV(kind Kind, point Hit) core.Vec2 {
	switch kind {
	case KindSphere, KindSphereMoving:
		return sphereUV(point.Point)
	case KindCube, KindCubeMoving:
		return cubeUV(point.Point, point.Normal)
	case KindCylinder:
		return cylinderUV(point.Point, point.Normal)
	case KindCone:
		return coneUV(point.Point, point.Normal)
	default:
		panic("geometry: unknown primitive kind")
	}
}

func sphereUV(p core.Vec3) core.Vec2 {
	v := math.Asin(p.Y/0.5)/math.Pi + 0.5
	if withinEpsilon(v, 0) || withinEpsilon(v, 1) {
		return core.NewVec2(0.5, v)
	}
	theta := math.Atan2(p.Z, p.X)
	var u float64
	if theta < 0 {
		u = -theta / (2 * math.Pi)
	} else {
		u = 1 - theta/(2*math.Pi)
	}
	return core.NewVec2(u, v)
}

// cubeUV unfolds the six faces, matching the sign table of the
// original single-ray tracer: the two in-plane coordinates of the
// face p lies on are mapped to [0,1]^2 so that the outward-facing
// texture reads left-to-right, bottom-to-top from outside the cube.
func cubeUV(p, n core.Vec3) core.Vec2 {
	switch {
	case n.X > 0.5: // +X face
		return core.NewVec2(0.5-p.Z, p.Y+0.5)
	case n.X < -0.5: // -X face
		return core.NewVec2(p.Z+0.5, p.Y+0.5)
	case n.Y > 0.5: // +Y face
		return core.NewVec2(p.X+0.5, 0.5-p.Z)
	case n.Y < -0.5: // -Y face
		return core.NewVec2(p.X+0.5, p.Z+0.5)
	case n.Z > 0.5: // +Z face
		return core.NewVec2(p.X+0.5, p.Y+0.5)
	default: // -Z face
		return core.NewVec2(0.5-p.X, p.Y+0.5)
	}
}

func cylinderUV(p, n core.Vec3) core.Vec2 {
	if withinEpsilon(n.Y, -1) { // bottom cap
		return core.NewVec2(p.X+0.5, p.Z+0.5)
	}
	if withinEpsilon(n.Y, 1) { // top cap, z flipped
		return core.NewVec2(p.X+0.5, 0.5-p.Z)
	}
	v := p.Y + 0.5
	theta := math.Atan2(p.Z, p.X)
	var u float64
	if theta < 0 {
		u = -theta / (2 * math.Pi)
	} else {
		u = 1 - theta/(2*math.Pi)
	}
	return core.NewVec2(u, v)
}

func coneUV(p, n core.Vec3) core.Vec2 {
	if withinEpsilon(n.Y, -1) {
		return core.NewVec2(p.X+0.5, p.Z+0.5)
	}
	v := p.Y + 0.5
	if withinEpsilon(v, 1) {
		return core.NewVec2(0.5, 1)
	}
	theta := math.Atan2(p.Z, p.X)
	var u float64
	if theta < 0 {
		u = -theta / (2 * math.Pi)
	} else {
		u = 1 - theta/(2*math.Pi)
	}
	return core.NewVec2(u, v)
}
