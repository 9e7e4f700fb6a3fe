// Package renderer drives the full-image render of §4.6: per-pixel
// primary-ray generation through the optional lens assembly, N
// stratified time samples per pixel for motion blur, and the
// worker-pool based parallel dispatch of §5.
package renderer

import (
	"math"
	"math/rand"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/lens"
	"github.com/feldrise/phong-raytracer/pkg/material"
	"github.com/feldrise/phong-raytracer/pkg/scene"
	"github.com/feldrise/phong-raytracer/pkg/shading"
)

// outsideLensColor is the sentinel §4.3/§7 output for a primary ray
// that exits the lens barrel: opaque white, not a recoverable error.
var outsideLensColor = core.NewVec3(1, 1, 1)

// Image is a pre-allocated row-major RGBA buffer, alpha always 255,
// matching the external interface of §6.
type Image struct {
	Width, Height int
	Pixels        []byte // 4 bytes per pixel: R,G,B,A
}

// NewImage allocates a zeroed buffer with full opacity.
func NewImage(width, height int) *Image {
	img := &Image{Width: width, Height: height, Pixels: make([]byte, width*height*4)}
	for i := 3; i < len(img.Pixels); i += 4 {
		img.Pixels[i] = 255
	}
	return img
}

func (img *Image) setPixel(x, y int, c core.Vec3) {
	idx := (y*img.Width + x) * 4
	img.Pixels[idx] = toByte(c.X)
	img.Pixels[idx+1] = toByte(c.Y)
	img.Pixels[idx+2] = toByte(c.Z)
	img.Pixels[idx+3] = 255
}

func toByte(v float64) byte {
	v = math.Max(0, math.Min(1, v))
	return byte(math.Round(v * 255))
}

// Renderer holds everything a render pass needs besides the pixel
// coordinates: the flattened scene, the feature/quality config, the
// optional lens assembly, the shared texture cache, and a logger for
// the worker pool's completion message.
type Renderer struct {
	Scene  *scene.RenderScene
	Config core.RendererConfig
	Lens   *lens.Assembly // nil if no lens stack was supplied; used only when EnableRefraction or EnableDepthOfField is set
	Cache  *material.TextureCache
	Logger core.Logger
}

// NewRenderer builds a Renderer with a fresh texture cache and the
// stdlib-only DefaultLogger; callers wanting fortio.org/log wire their
// own Logger in (see cmd/raytracer).
func NewRenderer(sc *scene.RenderScene, cfg core.RendererConfig, lensAssembly *lens.Assembly) *Renderer {
	return &Renderer{
		Scene:  sc,
		Config: cfg,
		Lens:   lensAssembly,
		Cache:  material.NewTextureCache(nil),
		Logger: DefaultLogger{},
	}
}

// Render draws the full image, dividing rows across a worker pool
// (§5: independent parallel tasks over disjoint regions of the output
// buffer, no locks). If cfg.EnableParallelism is false, rendering runs
// on the calling goroutine.
func (r *Renderer) Render() *Image {
	img := NewImage(r.Scene.Width, r.Scene.Height)

	if !r.Config.EnableParallelism {
		for y := 0; y < r.Scene.Height; y++ {
			r.renderRow(img, y, rand.NewSource(int64(y)+1))
		}
		return img
	}

	pool := NewWorkerPool(r, img)
	pool.Run()
	return img
}

// renderRow fills one scanline. Each row gets its own seeded random
// source so output is deterministic per pixel regardless of which
// worker happened to draw the row (§5 ordering guarantee).
func (r *Renderer) renderRow(img *Image, y int, seed rand.Source) {
	random := rand.New(seed)
	for x := 0; x < r.Scene.Width; x++ {
		color := r.renderPixel(x, y, random)
		img.setPixel(x, y, color)
	}
}

// renderPixel implements §4.6 steps 1-6 for one pixel.
func (r *Renderer) renderPixel(i, j int, random *rand.Rand) core.Vec3 {
	cam := r.Scene.Camera
	h := 2 * math.Tan(cam.HeightAngle/2)
	w := cam.Aspect * h

	wpx, hpx := float64(r.Scene.Width), float64(r.Scene.Height)
	x := w * ((float64(i)+0.5)/wpx - 0.5)
	y := h * ((hpx-1-float64(j)+0.5)/hpx - 0.5)

	camDir := core.NewVec3(x, y, -1)

	if (r.Config.EnableRefraction || r.Config.EnableDepthOfField) && r.Lens != nil {
		lensSpace := core.NewRay(core.Vec3{}, core.NewVec3(camDir.X, camDir.Y, -camDir.Z))
		out, ok := r.Lens.Trace(lensSpace)
		if !ok {
			return outsideLensColor
		}
		camDir = core.NewVec3(out.Direction.X, out.Direction.Y, -out.Direction.Z)
	}

	camRay := core.NewRay(core.NewVec3(0, 0, 0), camDir)
	worldOrigin := cam.ViewMatrixInv.TransformPoint(camRay.Origin)
	worldDir := cam.ViewMatrixInv.TransformVector(camRay.Direction)
	worldRay := core.NewRay(worldOrigin, worldDir)

	n := r.Config.TimeSamples
	if n <= 0 {
		n = 1
	}

	var sum core.Vec3
	for k := 0; k < n; k++ {
		tk := core.StratifiedSample(random, k, n)
		sum = sum.Add(shading.TraceRay(worldRay, r.Scene, r.Config, 0, tk, r.Cache, random))
	}

	return sum.Multiply(1 / float64(n)).Clamp(0, 1)
}
