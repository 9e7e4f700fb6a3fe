package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/feldrise/phong-raytracer/pkg/scene"
)

// LoadYAMLScene parses a scene graph expressed in the alternate YAML
// format (the same shape as the JSON one, gopkg.in/yaml.v3-decoded
// instead of encoding/json-decoded) into a ready-to-render
// scene.RenderScene. Render profiles (pkg/loaders/config.go) reference
// scenes by path; either extension works, dispatch is by caller choice
// rather than file-extension sniffing.
func LoadYAMLScene(filename string) (*scene.RenderScene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to read YAML scene file: %w", err)
	}

	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("loaders: failed to parse scene YAML: %w", err)
	}

	return buildScene(sf)
}
