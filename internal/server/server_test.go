package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"ai-tools-go/internal/dispatch"
	"ai-tools-go/internal/telemetry"
)

// testMetrics is shared because promauto registers with the default
// registry; a second NewMetrics in the same binary would panic.
var testMetrics = telemetry.NewMetrics()

func newTestServer(t *testing.T, cfg Config) http.Handler {
	t.Helper()

	handler, err := New(cfg, zerolog.Nop(), testMetrics)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return handler
}

func mockConfig() Config {
	cfg := DefaultConfig()
	cfg.RandomSeed = 1
	return cfg
}

func TestServer_HealthEndpoint(t *testing.T) {
	handler := newTestServer(t, mockConfig())

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var health dispatch.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}

	if health.Status != "ok" {
		t.Errorf("Expected status ok, got %s", health.Status)
	}
	if len(health.AvailableTools) != 6 {
		t.Errorf("Expected 6 tools, got %d: %v", len(health.AvailableTools), health.AvailableTools)
	}
}

func TestServer_ProcessEndpoint(t *testing.T) {
	handler := newTestServer(t, mockConfig())

	body, _ := json.Marshal(dispatch.Request{Tool: "joke", Input: "gopher"})
	req := httptest.NewRequest("POST", "/api/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp dispatch.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Result, "gopher") {
		t.Errorf("Expected result to contain topic, got %q", resp.Result)
	}
}

func TestServer_UnknownToolIsClientError(t *testing.T) {
	handler := newTestServer(t, mockConfig())

	body, _ := json.Marshal(dispatch.Request{Tool: "translator", Input: "hi"})
	req := httptest.NewRequest("POST", "/api/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestServer_OpenAIBackendFailsLazily(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = BackendOpenAI
	// No API key: the server still starts, the first invocation reports a
	// resource failure as a server error.
	handler := newTestServer(t, cfg)

	body, _ := json.Marshal(dispatch.Request{Tool: "semantics", Input: "hello"})
	req := httptest.NewRequest("POST", "/api/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var resp dispatch.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected error message in envelope")
	}
}

func TestServer_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "quantum"

	if _, err := New(cfg, zerolog.Nop(), testMetrics); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
