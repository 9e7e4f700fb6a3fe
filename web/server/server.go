// Package server adapts the teacher's progressive-refinement SSE
// render endpoint (web/server/server.go in the teacher) to this
// renderer's single-shot model: POST /render with a JSON scene graph
// and RendererConfig body renders synchronously, parallelized
// internally (§5), and streams back a PNG. There is no per-pass or
// per-tile event stream to adapt, since this renderer has no
// progressive refinement — one request produces one final image.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"fortio.org/log"

	"github.com/feldrise/phong-raytracer/pkg/core"
	"github.com/feldrise/phong-raytracer/pkg/lens"
	"github.com/feldrise/phong-raytracer/pkg/loaders"
	"github.com/feldrise/phong-raytracer/pkg/renderer"
)

// Server serves the single-shot render endpoint.
type Server struct {
	port int
}

// NewServer creates a web server bound to port.
func NewServer(port int) *Server {
	return &Server{port: port}
}

// renderRequest is the POST /render body: an inline scene-graph
// description, matching the field names loaders.LoadScene decodes
// from a file, plus the RendererConfig flags of spec.md §6.
type renderRequest struct {
	Scene  json.RawMessage   `json:"scene"`
	Lens   *json.RawMessage  `json:"lens,omitempty"`
	Config rendererConfigDTO `json:"config"`
}

// rendererConfigDTO mirrors core.RendererConfig with JSON tags; the
// core type itself carries none since it is constructed
// programmatically everywhere else in the module.
type rendererConfigDTO struct {
	EnableShadow       bool `json:"shadow"`
	EnableReflection   bool `json:"reflection"`
	EnableRefraction   bool `json:"refraction"`
	EnableTextureMap   bool `json:"textureMap"`
	EnableParallelism  bool `json:"parallelism"`
	EnableDepthOfField bool `json:"depthOfField"`
	MaxRecursiveDepth  int  `json:"maxRecursiveDepth"`
	TimeSamples        int  `json:"timeSamples"`
}

func (d rendererConfigDTO) toCore() core.RendererConfig {
	cfg := core.RendererConfig{
		EnableShadow:       d.EnableShadow,
		EnableReflection:   d.EnableReflection,
		EnableRefraction:   d.EnableRefraction,
		EnableTextureMap:   d.EnableTextureMap,
		EnableParallelism:  d.EnableParallelism,
		EnableDepthOfField: d.EnableDepthOfField,
		MaxRecursiveDepth:  d.MaxRecursiveDepth,
		TimeSamples:        d.TimeSamples,
	}
	if cfg.MaxRecursiveDepth == 0 {
		cfg.MaxRecursiveDepth = 4
	}
	if cfg.TimeSamples == 0 {
		cfg.TimeSamples = 100
	}
	return cfg
}

// Start registers the handlers and blocks serving HTTP on s.port.
func (s *Server) Start() error {
	http.HandleFunc("/render", s.handleRender)
	http.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Infof("server: listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender decodes the request body, runs the render to
// completion on the calling goroutine (the renderer parallelizes
// internally across rows, per §5), and writes back a PNG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	sc, err := loaders.DecodeScene(req.Scene)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid scene: %v", err), http.StatusBadRequest)
		return
	}

	var lensAssembly *lens.Assembly
	if req.Lens != nil {
		lensAssembly, err = loaders.DecodeLens(*req.Lens)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid lens: %v", err), http.StatusBadRequest)
			return
		}
	}

	cfg := req.Config.toCore()
	rend := renderer.NewRenderer(sc, cfg, lensAssembly)
	rend.Logger = renderer.NewFortioLogger()

	log.Infof("server: rendering %dx%d, %d shapes", sc.Width, sc.Height, len(sc.Shapes))
	img := rend.Render()

	var buf bytes.Buffer
	data, err := img.EncodePNG()
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}
	buf.Write(data)

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
