// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/language"
	"github.com/nyayasetu/nyayasetu/internal/layout"
	"github.com/nyayasetu/nyayasetu/internal/tool"
)

type stubProvider struct {
	calls int
	fail  bool
}

func (p *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if p.fail {
		return "", fmt.Errorf("provider unavailable")
	}
	return "1. Generated point one.\n2. Generated point two.", nil
}

func (p *stubProvider) Name() string { return "stub" }

type nopRenderer struct{}

func (nopRenderer) Render(blocks []layout.Block, profile language.Profile, path string) error {
	return os.WriteFile(path, []byte("%PDF-stub"), 0o644)
}

func newTestServer(t *testing.T, provider *stubProvider) *Server {
	t.Helper()
	registry := language.NewRegistry()
	toolkit, err := tool.New(provider, registry, nopRenderer{}, t.TempDir())
	if err != nil {
		t.Fatalf("toolkit init: %v", err)
	}
	return NewServer(toolkit, registry)
}

func postJSON(t *testing.T, srv *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := postJSON(t, srv, "/v1/documents", map[string]string{
		"type":     "pil",
		"issue":    "Lake pollution",
		"context":  "Complaints since 2023",
		"name":     "Asha Rao",
		"location": "Bengaluru, Karnataka",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Language string `json:"language"`
		Artifact string `json:"artifact"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("missing invocation id")
	}
	if resp.Type != "PIL" || resp.Language != "en" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !strings.HasSuffix(resp.Artifact, "PIL_Asha_Rao_en.pdf") {
		t.Fatalf("unexpected artifact path: %q", resp.Artifact)
	}
}

func TestHandleGenerateUnknownType(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := postJSON(t, srv, "/v1/documents", map[string]string{
		"type":     "affidavit",
		"issue":    "x",
		"name":     "y",
		"location": "z",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGenerateMissingFields(t *testing.T) {
	provider := &stubProvider{}
	srv := newTestServer(t, provider)
	rec := postJSON(t, srv, "/v1/documents", map[string]string{"type": "rti", "issue": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if provider.calls != 0 {
		t.Fatalf("invalid request must not reach the provider")
	}
}

func TestHandleGenerateProviderFailure(t *testing.T) {
	srv := newTestServer(t, &stubProvider{fail: true})
	rec := postJSON(t, srv, "/v1/documents", map[string]string{
		"type":     "pil",
		"issue":    "x",
		"name":     "y",
		"location": "z",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestHandleTypesAndLanguages(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/documents/types", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("types status = %d", rec.Code)
	}
	var types struct {
		Types []string `json:"types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatalf("decode types: %v", err)
	}
	if len(types.Types) != 3 {
		t.Fatalf("expected 3 types, got %v", types.Types)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/languages", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("languages status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"en"`) {
		t.Fatalf("languages missing default: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleLogs(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/logs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("logs status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "logs") {
		t.Fatalf("unexpected logs payload: %s", rec.Body.String())
	}
}
