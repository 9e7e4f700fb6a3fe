package loaders

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/geometry"
	"github.com/feldrise/phong-raytracer/pkg/lens"
	"github.com/feldrise/phong-raytracer/pkg/lights"
	"github.com/feldrise/phong-raytracer/pkg/material"
	"github.com/feldrise/phong-raytracer/pkg/scene"
)

// The JSON scene-graph format is the out-of-scope collaborator named in
// spec.md §1 and §6: it parses into the scene.Node tree that
// scene.Flatten consumes, never into RenderShape/Light directly, so the
// transform-composition contract lives in exactly one place.

// These structs carry both json and yaml tags so the same in-memory
// representation decodes either the primary JSON scene format or the
// alternate YAML one loaded by LoadYAMLScene.

type sceneFile struct {
	Width      int        `json:"width" yaml:"width"`
	Height     int        `json:"height" yaml:"height"`
	GlobalData jsonGlobal `json:"globalData" yaml:"globalData"`
	Camera     jsonCamera `json:"camera" yaml:"camera"`
	Lens       *jsonLens  `json:"lens,omitempty" yaml:"lens,omitempty"`
	Root       jsonNode   `json:"root" yaml:"root"`
}

type jsonGlobal struct {
	Ka float64 `json:"ka" yaml:"ka"`
	Kd float64 `json:"kd" yaml:"kd"`
	Ks float64 `json:"ks" yaml:"ks"`
}

type jsonCamera struct {
	Position    [3]float64 `json:"position" yaml:"position"`
	LookAt      [3]float64 `json:"lookAt" yaml:"lookAt"`
	Up          [3]float64 `json:"up" yaml:"up"`
	HeightAngle float64    `json:"heightAngle" yaml:"heightAngle"` // degrees
}

type jsonLensElement struct {
	Radius    float64 `json:"radius" yaml:"radius"`
	Eta       float64 `json:"eta" yaml:"eta"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
}

type jsonLens struct {
	Elements []jsonLensElement `json:"elements" yaml:"elements"`
	Aperture float64           `json:"aperture" yaml:"aperture"`
}

type jsonTransform struct {
	Type  string      `json:"type" yaml:"type"` // translate, scale, rotate, matrix
	Data  [3]float64  `json:"data" yaml:"data"`
	Angle float64     `json:"angle" yaml:"angle"` // degrees, rotate only
	Raw   [16]float64 `json:"matrix" yaml:"matrix"`
}

type jsonTexture struct {
	Filename string  `json:"filename" yaml:"filename"`
	RepeatU  float64 `json:"repeatU" yaml:"repeatU"`
	RepeatV  float64 `json:"repeatV" yaml:"repeatV"`
	Blend    float64 `json:"blend" yaml:"blend"`
}

type jsonMaterial struct {
	Ambient    [3]float64   `json:"ambient" yaml:"ambient"`
	Diffuse    [3]float64   `json:"diffuse" yaml:"diffuse"`
	Specular   [3]float64   `json:"specular" yaml:"specular"`
	Reflective [3]float64   `json:"reflective" yaml:"reflective"`
	Shininess  float64      `json:"shininess" yaml:"shininess"`
	Texture    *jsonTexture `json:"texture,omitempty" yaml:"texture,omitempty"`
}

type jsonPrimitive struct {
	Type     string       `json:"type" yaml:"type"` // sphere, cube, cone, cylinder, sphere_moving, cube_moving
	Center2  [3]float64   `json:"center2" yaml:"center2"`
	Material jsonMaterial `json:"material" yaml:"material"`
}

type jsonLight struct {
	Type       string     `json:"type" yaml:"type"` // point, directional, spot, area
	Color      [3]float64 `json:"color" yaml:"color"`
	Position   [3]float64 `json:"position" yaml:"position"`
	Direction  [3]float64 `json:"direction" yaml:"direction"`
	Atten      [3]float64 `json:"attenuationCoeff" yaml:"attenuationCoeff"`
	OuterAngle float64    `json:"angle" yaml:"angle"`       // degrees, spot
	Penumbra   float64    `json:"penumbra" yaml:"penumbra"` // degrees, spot
	Corner     [3]float64 `json:"corner" yaml:"corner"`
	EdgeU      [3]float64 `json:"edgeU" yaml:"edgeU"`
	EdgeV      [3]float64 `json:"edgeV" yaml:"edgeV"`
}

type jsonNode struct {
	Transforms []jsonTransform `json:"transforms" yaml:"transforms"`
	Primitives []jsonPrimitive `json:"primitives" yaml:"primitives"`
	Lights     []jsonLight     `json:"lights" yaml:"lights"`
	Children   []jsonNode      `json:"children" yaml:"children"`
}

// LoadScene parses a JSON scene-graph file into a ready-to-render
// scene.RenderScene, performing the depth-first transform composition
// of spec.md §2.7/§9 via scene.Flatten.
func LoadScene(filename string) (*scene.RenderScene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to read scene file: %w", err)
	}
	return DecodeScene(data)
}

// DecodeScene parses raw JSON scene-graph bytes, the same format
// LoadScene reads from disk. Used by the HTTP render endpoint, which
// receives the scene inline in a request body rather than as a file
// path.
func DecodeScene(data []byte) (*scene.RenderScene, error) {
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("loaders: failed to parse scene JSON: %w", err)
	}
	return buildScene(sf)
}

func buildScene(sf sceneFile) (*scene.RenderScene, error) {
	root, err := convertNode(sf.Root)
	if err != nil {
		return nil, err
	}

	shapes, lightList := scene.Flatten(root)

	aspect := 1.0
	if sf.Height > 0 {
		aspect = float64(sf.Width) / float64(sf.Height)
	}
	cam := scene.NewCamera(
		vec3(sf.Camera.Position),
		vec3(sf.Camera.LookAt),
		vec3(sf.Camera.Up),
		aspect,
		sf.Camera.HeightAngle*math.Pi/180,
	)

	return &scene.RenderScene{
		Width:  sf.Width,
		Height: sf.Height,
		Ka:     sf.GlobalData.Ka,
		Kd:     sf.GlobalData.Kd,
		Ks:     sf.GlobalData.Ks,
		Camera: cam,
		Lights: lightList,
		Shapes: shapes,
	}, nil
}

// LoadLens parses the lens-stack section of a scene file independently,
// for the CLI's --lens flag (a standalone lens-profile file, not
// embedded in the scene JSON).
func LoadLens(filename string) (*lens.Assembly, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to read lens file: %w", err)
	}
	return DecodeLens(data)
}

// DecodeLens parses raw JSON lens-stack bytes, the same format
// LoadLens reads from disk. Used by the HTTP render endpoint.
func DecodeLens(data []byte) (*lens.Assembly, error) {
	var jl jsonLens
	if err := json.Unmarshal(data, &jl); err != nil {
		return nil, fmt.Errorf("loaders: failed to parse lens JSON: %w", err)
	}
	return convertLens(&jl), nil
}

func convertLens(jl *jsonLens) *lens.Assembly {
	if jl == nil {
		return nil
	}
	elements := make([]lens.Element, len(jl.Elements))
	for i, e := range jl.Elements {
		elements[i] = lens.Element{Radius: e.Radius, Eta: e.Eta, Thickness: e.Thickness}
	}
	return &lens.Assembly{Elements: elements, ApertureRadius: jl.Aperture}
}

func convertNode(jn jsonNode) (*scene.Node, error) {
	n := &scene.Node{}

	for _, t := range jn.Transforms {
		tr, err := convertTransform(t)
		if err != nil {
			return nil, err
		}
		n.Transforms = append(n.Transforms, tr)
	}

	for _, p := range jn.Primitives {
		prim, err := convertPrimitive(p)
		if err != nil {
			return nil, err
		}
		n.Primitives = append(n.Primitives, prim)
	}

	for _, l := range jn.Lights {
		lt, err := convertLight(l)
		if err != nil {
			return nil, err
		}
		n.Lights = append(n.Lights, scene.LightNode{Light: lt})
	}

	for _, c := range jn.Children {
		child, err := convertNode(c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	return n, nil
}

func convertTransform(t jsonTransform) (scene.Transform, error) {
	switch t.Type {
	case "translate":
		return scene.Transform{Kind: scene.TransformTranslate, Vec: vec3(t.Data)}, nil
	case "scale":
		return scene.Transform{Kind: scene.TransformScale, Vec: vec3(t.Data)}, nil
	case "rotate":
		return scene.Transform{Kind: scene.TransformRotate, Vec: vec3(t.Data), Angle: t.Angle * math.Pi / 180}, nil
	case "matrix":
		return scene.Transform{Kind: scene.TransformMatrix, Raw: t.Raw}, nil
	default:
		return scene.Transform{}, fmt.Errorf("loaders: unknown transform type %q", t.Type)
	}
}

func convertPrimitive(p jsonPrimitive) (scene.PrimitiveNode, error) {
	kind, err := primitiveKind(p.Type)
	if err != nil {
		return scene.PrimitiveNode{}, err
	}
	return scene.PrimitiveNode{
		Kind:     kind,
		Center2:  vec3(p.Center2),
		Material: convertMaterial(p.Material),
	}, nil
}

// primitiveKind maps the JSON primitive type name to a geometry.Kind.
// "mesh", "cone_moving", and "cylinder_moving" are recognized-but-
// unimplemented requests: per spec.md §7 these are programmer errors,
// surfaced as a panic, not a recoverable parse failure indistinguishable
// from a typo.
func primitiveKind(t string) (geometry.Kind, error) {
	switch t {
	case "sphere":
		return geometry.KindSphere, nil
	case "cube":
		return geometry.KindCube, nil
	case "cone":
		return geometry.KindCone, nil
	case "cylinder":
		return geometry.KindCylinder, nil
	case "sphere_moving":
		return geometry.KindSphereMoving, nil
	case "cube_moving":
		return geometry.KindCubeMoving, nil
	case "mesh":
		panic("loaders: mesh primitives are not implemented")
	case "cone_moving":
		panic("loaders: moving cone primitives are not implemented")
	case "cylinder_moving":
		panic("loaders: moving cylinder primitives are not implemented")
	default:
		return 0, fmt.Errorf("loaders: unknown primitive type %q", t)
	}
}

func convertMaterial(m jsonMaterial) material.Material {
	mat := material.Material{
		Ambient:    vec3(m.Ambient),
		Diffuse:    vec3(m.Diffuse),
		Specular:   vec3(m.Specular),
		Reflective: vec3(m.Reflective),
		Shininess:  m.Shininess,
	}
	if m.Texture != nil {
		mat.Texture = &material.Texture{
			Filename: m.Texture.Filename,
			RepeatU:  m.Texture.RepeatU,
			RepeatV:  m.Texture.RepeatV,
			Blend:    m.Texture.Blend,
		}
	}
	return mat
}

func convertLight(l jsonLight) (lights.Light, error) {
	switch l.Type {
	case "point":
		return lights.Light{Kind: lights.KindPoint, Color: vec3(l.Color), Position: vec3(l.Position), Atten: vec3(l.Atten)}, nil
	case "directional":
		return lights.Light{Kind: lights.KindDirectional, Color: vec3(l.Color), Direction: vec3(l.Direction)}, nil
	case "spot":
		return lights.Light{
			Kind: lights.KindSpot, Color: vec3(l.Color), Position: vec3(l.Position),
			Direction: vec3(l.Direction), Atten: vec3(l.Atten),
			OuterAngle: l.OuterAngle * math.Pi / 180, Penumbra: l.Penumbra * math.Pi / 180,
		}, nil
	case "area":
		return lights.Light{
			Kind: lights.KindArea, Color: vec3(l.Color), Corner: vec3(l.Corner),
			EdgeU: vec3(l.EdgeU), EdgeV: vec3(l.EdgeV), Atten: vec3(l.Atten),
		}, nil
	default:
		return lights.Light{}, fmt.Errorf("loaders: unknown light type %q", l.Type)
	}
}

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
