// Package material holds the flat Phong material description and the
// diffuse texture cache the shading kernel consults. Unlike the BRDF
// abstractions of a path tracer, a Phong material carries no behavior
// of its own — it is plain data read by pkg/shading.
package material

import "github.com/feldrise/phong-raytracer/pkg/core"

// Texture describes a diffuse texture map attached to a material. The
// alpha channel of the 4-tuple colors in Material is never consulted
// (the source scene format carries it for symmetry with the original
// format only), so Material stores plain Vec3 colors.
type Texture struct {
	Filename string
	RepeatU  float64
	RepeatV  float64
	Blend    float64 // weight of texel vs. k_d*diffuse, in [0,1]
}

// Material is the flat Phong material every RenderShape carries.
type Material struct {
	Ambient    core.Vec3
	Diffuse    core.Vec3
	Specular   core.Vec3
	Reflective core.Vec3
	Shininess  float64
	Texture    *Texture // nil if untextured
}
