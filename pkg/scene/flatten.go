package scene

import (
	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/lights"
	"github.com/feldrise/phong-raytracer/pkg/material"
)

// TransformKind tags one node of a scene-graph transform stack.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformMatrix
)

// Transform is one transform-stack entry: translate/scale use Vec as
// the offset or per-axis scale, rotate uses Vec as the axis and Angle
// in radians, and a raw matrix node uses Raw (row-major).
type Transform struct {
	Kind  TransformKind
	Vec   core.Vec3
	Angle float64
	Raw   [16]float64
}

// Matrix returns the affine matrix this transform node contributes.
func (t Transform) Matrix() core.Mat4 {
	switch t.Kind {
	case TransformTranslate:
		return core.NewTranslate(t.Vec)
	case TransformScale:
		return core.NewScale(t.Vec)
	case TransformRotate:
		return core.NewRotate(t.Vec, t.Angle)
	case TransformMatrix:
		return core.NewMat4Rows(t.Raw)
	default:
		panic("scene: unknown transform kind")
	}
}

// PrimitiveNode is a shape instance attached to a scene-graph node, in
// that node's local frame.
type PrimitiveNode struct {
	Kind     geometry.Kind
	Center2  core.Vec3
	Material material.Material
}

// LightNode is a light attached to a scene-graph node; its
// position/direction/corner/edge fields are in that node's local
// frame and are carried down to world space during flattening.
type LightNode struct {
	Light lights.Light
}

// Node is one scene-graph node: zero or more transforms applied in
// order, then zero or more primitives and lights in the resulting
// frame, then child nodes inheriting the accumulated transform.
type Node struct {
	Transforms []Transform
	Primitives []PrimitiveNode
	Lights     []LightNode
	Children   []*Node
}

// Flatten performs the depth-first traversal of §2.7/§9: it composes
// transforms down the graph into a cumulative transform matrix (CTM)
// per primitive and per light, and returns the flat lists the render
// traversal consumes. Cycles are out of scope — the caller's graph is
// a tree, never revisited.
func Flatten(root *Node) ([]RenderShape, []lights.Light) {
	var shapes []RenderShape
	var lightList []lights.Light
	flattenNode(root, core.Identity4(), &shapes, &lightList)
	return shapes, lightList
}

func flattenNode(n *Node, ctm core.Mat4, shapes *[]RenderShape, lightList *[]lights.Light) {
	for _, tr := range n.Transforms {
		ctm = ctm.Mul(tr.Matrix())
	}

	for _, p := range n.Primitives {
		*shapes = append(*shapes, RenderShape{
			Kind:     p.Kind,
			Center2:  p.Center2,
			Material: p.Material,
			CTM:      ctm,
			CTMInv:   ctm.Inverse(),
		})
	}

	for _, ln := range n.Lights {
		*lightList = append(*lightList, transformLight(ln.Light, ctm))
	}

	for _, child := range n.Children {
		flattenNode(child, ctm, shapes, lightList)
	}
}

// transformLight carries a light's position/direction fields from its
// node's local frame to world space, point fields through
// TransformPoint and direction fields through TransformVector.
func transformLight(l lights.Light, ctm core.Mat4) lights.Light {
	out := l
	switch l.Kind {
	case lights.KindPoint:
		out.Position = ctm.TransformPoint(l.Position)
	case lights.KindDirectional:
		out.Direction = ctm.TransformVector(l.Direction).Normalize()
	case lights.KindSpot:
		out.Position = ctm.TransformPoint(l.Position)
		out.Direction = ctm.TransformVector(l.Direction).Normalize()
	case lights.KindArea:
		out.Corner = ctm.TransformPoint(l.Corner)
		u := ctm.TransformVector(l.EdgeU)
		v := ctm.TransformVector(l.EdgeV)
		out.EdgeU, out.EdgeV = u, v
		out.Width, out.Height = u.Length(), v.Length()
	}
	return out
}
