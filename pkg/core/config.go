package core

// RendererConfig is the flag set of §6: feature toggles and the
// recursion-depth bound, shared by the shading kernel and the
// renderer and populated by the CLI, a YAML render profile, or
// programmatic construction (no behavioral difference between them).
type RendererConfig struct {
	EnableShadow        bool
	EnableReflection    bool
	EnableRefraction    bool // routes primary rays through the lens assembly
	EnableTextureMap    bool
	EnableTextureFilter bool // no-op, carried for scene-file compatibility
	EnableParallelism   bool
	EnableSuperSample   bool // no-op
	EnableAcceleration  bool // no-op
	EnableDepthOfField  bool // also routes primary rays through the lens assembly; either flag enables it
	MaxRecursiveDepth   int
	OnlyRenderNormals   bool // no-op

	TimeSamples int // N in §4.6, defaults to 100
}

// DefaultConfig returns the configuration the original renderer ships
// with: shadows, reflection, and texturing on, depth of field and
// refraction off, depth 4, 100 time samples.
func DefaultConfig() RendererConfig {
	return RendererConfig{
		EnableShadow:      true,
		EnableReflection:  true,
		EnableTextureMap:  true,
		EnableParallelism: true,
		MaxRecursiveDepth: 4,
		TimeSamples:       100,
	}
}
