// Command raytracer renders a JSON (or YAML) scene-graph file to a
// PNG, driving pkg/renderer from either ad-hoc command-line flags or a
// repeatable YAML render profile (pkg/loaders.RenderProfile).
package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/lens"
	"github.com/feldrise/phong-raytracer/pkg/loaders"
	"github.com/feldrise/phong-raytracer/pkg/renderer"
	"github.com/feldrise/phong-raytracer/pkg/scene"
)

var (
	sceneFlag    = flag.String("scene", "", "path to the scene-graph file to render")
	yamlFlag     = flag.Bool("yaml", false, "parse -scene as the alternate YAML scene-graph format instead of JSON")
	outputFlag   = flag.String("output", "render.png", "output PNG path")
	lensFlag     = flag.String("lens", "", "path to a lens-stack file; enables depth of field / refraction")
	profileFlag  = flag.String("profile", "", "path to a YAML render profile; when set, overrides every other flag below")
	shadowFlag   = flag.Bool("shadow", true, "enable shadow rays")
	reflectFlag  = flag.Bool("reflection", true, "enable recursive mirror reflection")
	textureFlag  = flag.Bool("texture", true, "enable diffuse texture mapping")
	depthFlag    = flag.Int("max-depth", 4, "maximum recursive reflection depth")
	samplesFlag  = flag.Int("time-samples", 100, "stratified time samples per pixel for motion blur")
	parallelFlag = flag.Bool("parallel", true, "render rows across a worker pool sized to the host's CPU count")
)

func main() {
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.ArgsHelp = ""
	cli.Main()

	sc, cfg, lensAssembly, outPath, err := resolveConfig()
	if err != nil {
		log.Fatalf("raytracer: %v", err)
	}

	r := renderer.NewRenderer(sc, cfg, lensAssembly)
	r.Logger = renderer.NewFortioLogger()

	log.Infof("raytracer: rendering %dx%d, %d shapes, %d lights", sc.Width, sc.Height, len(sc.Shapes), len(sc.Lights))
	img := r.Render()

	data, err := img.EncodePNG()
	if err != nil {
		log.Fatalf("raytracer: failed to encode PNG: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("raytracer: failed to write %s: %v", outPath, err)
	}
	log.Infof("raytracer: wrote %s", outPath)
}

// resolveConfig builds the scene, config, and optional lens assembly
// either from a render profile (-profile) or from the ad-hoc flags.
func resolveConfig() (*scene.RenderScene, core.RendererConfig, *lens.Assembly, string, error) {
	if *profileFlag != "" {
		return resolveFromProfile(*profileFlag)
	}
	return resolveFromFlags()
}

func resolveFromProfile(path string) (*scene.RenderScene, core.RendererConfig, *lens.Assembly, string, error) {
	profile, err := loaders.LoadRenderProfile(path)
	if err != nil {
		return nil, core.RendererConfig{}, nil, "", err
	}

	sc, err := loadScene(profile.Scene, *yamlFlag)
	if err != nil {
		return nil, core.RendererConfig{}, nil, "", err
	}

	var lensAssembly *lens.Assembly
	if profile.Lens != "" {
		lensAssembly, err = loaders.LoadLens(profile.Lens)
		if err != nil {
			return nil, core.RendererConfig{}, nil, "", err
		}
	}

	return sc, profile.RendererConfig(), lensAssembly, profile.Output, nil
}

func resolveFromFlags() (*scene.RenderScene, core.RendererConfig, *lens.Assembly, string, error) {
	if *sceneFlag == "" {
		return nil, core.RendererConfig{}, nil, "", fmt.Errorf("-scene is required (or pass -profile)")
	}

	sc, err := loadScene(*sceneFlag, *yamlFlag)
	if err != nil {
		return nil, core.RendererConfig{}, nil, "", err
	}

	var lensAssembly *lens.Assembly
	if *lensFlag != "" {
		lensAssembly, err = loaders.LoadLens(*lensFlag)
		if err != nil {
			return nil, core.RendererConfig{}, nil, "", err
		}
	}

	cfg := core.RendererConfig{
		EnableShadow:       *shadowFlag,
		EnableReflection:   *reflectFlag,
		EnableRefraction:   lensAssembly != nil,
		EnableTextureMap:   *textureFlag,
		EnableParallelism:  *parallelFlag,
		EnableDepthOfField: lensAssembly != nil,
		MaxRecursiveDepth:  *depthFlag,
		TimeSamples:        *samplesFlag,
	}

	return sc, cfg, lensAssembly, *outputFlag, nil
}

func loadScene(path string, isYAML bool) (*scene.RenderScene, error) {
	if isYAML {
		return loaders.LoadYAMLScene(path)
	}
	return loaders.LoadScene(path)
}
