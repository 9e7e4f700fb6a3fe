package material

import (
	"math"
	"sync"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/loaders"
)

// TextureCache maps a texture filename to its decoded image. Per the
// renderer's concurrency model the cache is insertion-only: entries
// are populated lazily on first miss under a shared lock, then read
// without locking contention for the remainder of the render (the
// lock is still taken on every get call, but never blocks once every
// filename in use has been loaded once).
type TextureCache struct {
	mu     sync.Mutex
	images map[string]*loaders.ImageData
	logger core.Logger
}

// NewTextureCache returns an empty cache. logger may be nil.
func NewTextureCache(logger core.Logger) *TextureCache {
	return &TextureCache{images: make(map[string]*loaders.ImageData), logger: logger}
}

// get loads filename on first request and caches the result,
// including load failures (a nil entry means "tried and failed").
func (c *TextureCache) get(filename string) *loaders.ImageData {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[filename]; ok {
		return img
	}

	img, err := loaders.LoadImage(filename)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("texture cache: failed to load %q: %v", filename, err)
		}
		c.images[filename] = nil
		return nil
	}
	c.images[filename] = img
	return img
}

// Sample computes the effective diffuse color at uv for mat, blending
// the texel with the material's base diffuse per §4.2. kd is the
// global diffuse coefficient. If texturing is disabled, the material
// has no texture, its blend is zero, or the texture failed to load,
// the pure kd*material.diffuse term is returned.
func (c *TextureCache) Sample(mat Material, u, v, kd float64, enableTextureMap bool) core.Vec3 {
	base := mat.Diffuse.Multiply(kd)
	if !enableTextureMap || mat.Texture == nil || mat.Texture.Blend <= 0 {
		return base
	}

	img := c.get(mat.Texture.Filename)
	if img == nil {
		return base
	}

	texel := sampleTexel(img, u, v, mat.Texture.RepeatU, mat.Texture.RepeatV)
	blend := mat.Texture.Blend
	return texel.Multiply(blend).Add(base.Multiply(1 - blend))
}

func sampleTexel(img *loaders.ImageData, u, v, repeatU, repeatV float64) core.Vec3 {
	col := int(math.Floor(u*repeatU*float64(img.Width))) % img.Width
	if col < 0 {
		col += img.Width
	}
	if col == int(repeatU*float64(img.Width)) {
		col--
	}

	row := int(math.Floor((1-v)*repeatV*float64(img.Height))) % img.Height
	if row < 0 {
		row += img.Height
	}
	if row == int(repeatV*float64(img.Height)) {
		row--
	}

	return img.Pixels[row*img.Width+col]
}
