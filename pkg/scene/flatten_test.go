package scene

import (
	"math"
	"testing"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/lights"
)

func TestFlatten_ComposesTransformsDownTheGraph(t *testing.T) {
	root := &Node{
		Transforms: []Transform{{Kind: TransformTranslate, Vec: core.NewVec3(1, 0, 0)}},
		Children: []*Node{
			{
				Transforms: []Transform{{Kind: TransformScale, Vec: core.NewVec3(2, 2, 2)}},
				Primitives: []PrimitiveNode{{Kind: geometry.KindSphere}},
			},
		},
	}

	shapes, _ := Flatten(root)
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}

	// Object-space origin should map to world (1,0,0): translate then scale.
	world := shapes[0].CTM.TransformPoint(core.NewVec3(0, 0, 0))
	if !world.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("expected world origin (1,0,0), got %v", world)
	}

	// CTM^-1 * CTM should be identity.
	identity := shapes[0].CTMInv.Mul(shapes[0].CTM)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			if math.Abs(identity.M[r][c]-want) > 1e-9 {
				t.Errorf("CTM^-1*CTM not identity at [%d][%d]: %f", r, c, identity.M[r][c])
			}
		}
	}
}

func TestFlatten_TransformsLightPosition(t *testing.T) {
	root := &Node{
		Transforms: []Transform{{Kind: TransformTranslate, Vec: core.NewVec3(0, 5, 0)}},
		Lights: []LightNode{
			{Light: lights.Light{Kind: lights.KindPoint, Position: core.NewVec3(0, 0, 0), Color: core.NewVec3(1, 1, 1)}},
		},
	}

	_, lightList := Flatten(root)
	if len(lightList) != 1 {
		t.Fatalf("expected 1 light, got %d", len(lightList))
	}
	if !lightList[0].Position.Equals(core.NewVec3(0, 5, 0)) {
		t.Errorf("expected light translated to (0,5,0), got %v", lightList[0].Position)
	}
}

func TestNewCamera_ViewMatrixRoundTrip(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1, math.Pi/4)
	eyeCamSpace := cam.ViewMatrix.TransformPoint(cam.Position)
	if !eyeCamSpace.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("expected eye at camera-space origin, got %v", eyeCamSpace)
	}

	worldBack := cam.ViewMatrixInv.TransformPoint(eyeCamSpace)
	if !worldBack.Equals(cam.Position) {
		t.Errorf("round trip through ViewMatrixInv failed: got %v", worldBack)
	}
}

func TestCamera_FocalLengthPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected FocalLength to panic")
		}
	}()
	cam := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1, math.Pi/4)
	cam.FocalLength()
}
