package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testSceneJSON = `{
	"width": 8, "height": 8,
	"globalData": {"ka": 0.1, "kd": 0.9, "ks": 0.3},
	"camera": {"position": [0,0,5], "lookAt": [0,0,0], "up": [0,1,0], "heightAngle": 45},
	"root": {
		"primitives": [{"type": "sphere", "material": {"ambient":[0.1,0,0],"diffuse":[0.8,0,0],"specular":[0,0,0],"reflective":[0,0,0],"shininess":0}}],
		"lights": [{"type": "directional", "color": [1,1,1], "direction": [0,0,-1]}]
	}
}`

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestHandleRender_RejectsNonPost(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/render", nil)
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleRender_RendersPNG(t *testing.T) {
	s := NewServer(0)

	body := map[string]interface{}{
		"scene": json.RawMessage(testSceneJSON),
		"config": map[string]interface{}{
			"shadow":      true,
			"reflection":  true,
			"textureMap":  true,
			"parallelism": true,
			"timeSamples": 1,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png content type, got %q", ct)
	}

	pngSig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	got := rec.Body.Bytes()
	if len(got) < len(pngSig) {
		t.Fatalf("response too short to be a PNG")
	}
	for i, b := range pngSig {
		if got[i] != b {
			t.Fatalf("missing PNG signature at byte %d", i)
		}
	}
}

func TestHandleRender_InvalidSceneBody(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader([]byte(`{"scene": "not-an-object"}`)))
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
