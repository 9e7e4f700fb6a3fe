// Package scene holds the flattened render-time scene description —
// RenderScene, RenderShape, Camera — and the depth-first flattener
// that produces it from a parsed scene graph (§2.7, §6).
package scene

import (
	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/lights"
	"github.com/feldrise/phong-raytracer/pkg/material"
)

// RenderShape is a primitive instance with its cumulative transform
// and that transform's inverse pre-computed, so scene traversal never
// inverts a matrix per ray.
type RenderShape struct {
	Kind     geometry.Kind
	Center2  core.Vec3 // c2, only meaningful for the *Moving kinds
	Material material.Material
	CTM      core.Mat4
	CTMInv   core.Mat4
}

// Camera is the pinhole camera description of §3: world position,
// look direction, up vector, aspect ratio, and full vertical field of
// view angle, with the view matrix and its inverse precomputed.
type Camera struct {
	Position    core.Vec3
	Look        core.Vec3 // unit direction the camera faces
	Up          core.Vec3 // unit up vector, orthogonal to Look
	Aspect      float64
	HeightAngle float64 // radians, full vertical field of view

	ViewMatrix    core.Mat4 // world space -> camera space
	ViewMatrixInv core.Mat4 // camera space -> world space, used to place primary rays
}

// NewCamera builds a camera and its view matrix from position, look
// target, and up vector, following the original's look-at
// construction: w is the direction from the target back to the eye
// (so the camera looks down -w), u completes a right-handed basis.
func NewCamera(position, lookAt, up core.Vec3, aspect, heightAngle float64) Camera {
	w := position.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	view := core.Mat4{M: [4][4]float64{
		{u.X, u.Y, u.Z, -u.Dot(position)},
		{v.X, v.Y, v.Z, -v.Dot(position)},
		{w.X, w.Y, w.Z, -w.Dot(position)},
		{0, 0, 0, 1},
	}}

	return Camera{
		Position:      position,
		Look:          lookAt.Subtract(position).Normalize(),
		Up:            v,
		Aspect:        aspect,
		HeightAngle:   heightAngle,
		ViewMatrix:    view,
		ViewMatrixInv: view.Inverse(),
	}
}

// FocalLength is not implemented, mirroring the original camera's
// contract: depth-of-field support was never finished upstream, so
// asking for it is a programmer error, not a recoverable condition.
func (c Camera) FocalLength() float64 {
	panic("scene: Camera.FocalLength is not implemented")
}

// Aperture is not implemented; see FocalLength.
func (c Camera) Aperture() float64 {
	panic("scene: Camera.Aperture is not implemented")
}

// RenderScene is the fully flattened, render-ready scene of §3: image
// dimensions, the global Phong coefficients, the camera, and the flat
// shape/light lists the traversal in pkg/shading scans per ray.
type RenderScene struct {
	Width, Height int
	Ka, Kd, Ks    float64
	Camera        Camera
	Lights        []lights.Light
	Shapes        []RenderShape
}
