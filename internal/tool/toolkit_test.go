// File path: internal/tool/toolkit_test.go
package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/language"
	"github.com/nyayasetu/nyayasetu/internal/layout"
)

type queueProvider struct {
	responses []string
	calls     int
}

func (p *queueProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.calls >= len(p.responses) {
		return "", fmt.Errorf("unexpected call %d", p.calls)
	}
	resp := p.responses[p.calls]
	p.calls++
	if resp == "FAIL" {
		return "", fmt.Errorf("provider unavailable")
	}
	return resp, nil
}

func (p *queueProvider) Name() string { return "queue" }

type captureRenderer struct {
	blocks  []layout.Block
	profile language.Profile
	path    string
	err     error
}

func (r *captureRenderer) Render(blocks []layout.Block, profile language.Profile, path string) error {
	r.blocks = blocks
	r.profile = profile
	r.path = path
	if r.err != nil {
		return r.err
	}
	return os.WriteFile(path, []byte("%PDF-stub"), 0o644)
}

var pilResponses = []string{
	"1. Fact one dated 5 March 2023.\n2. Fact two.",
	"1. Article 21.\n2. Article 48A.\n3. Water Act, 1974.",
	"1. Direct remediation within 30 days.",
}

func pilRequest() document.Request {
	return document.Request{
		Issue:    "Lake pollution",
		Context:  "Complaints since 2023",
		Name:     "Asha Rao",
		Location: "Bengaluru, Karnataka",
	}
}

func newTestToolkit(t *testing.T, provider *queueProvider, renderer layout.Renderer, outDir string) *Toolkit {
	t.Helper()
	tk, err := New(provider, language.NewRegistry(), renderer, outDir)
	if err != nil {
		t.Fatalf("toolkit init: %v", err)
	}
	return tk
}

func TestGeneratePILEndToEnd(t *testing.T) {
	provider := &queueProvider{responses: pilResponses}
	renderer := &captureRenderer{}
	outDir := t.TempDir()
	tk := newTestToolkit(t, provider, renderer, outDir)

	result, err := tk.Generate(context.Background(), document.TypePIL, pilRequest())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	wantPath := filepath.Join(outDir, "PIL_Asha_Rao_en.pdf")
	if result.ArtifactPath != wantPath {
		t.Fatalf("artifact path = %q, want %q", result.ArtifactPath, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if provider.calls != 3 {
		t.Fatalf("default language must not call the translator, got %d calls", provider.calls)
	}
	var sawSubheader bool
	for _, b := range renderer.blocks {
		if b.Role == layout.RoleSubheader && b.Text == "FACTS OF THE CASE:" {
			sawSubheader = true
		}
	}
	if !sawSubheader {
		t.Fatalf("rendered blocks missing facts subheader")
	}
	if renderer.profile.Code != "en" {
		t.Fatalf("renderer received profile %q", renderer.profile.Code)
	}
}

func TestGenerateTranslatesNonDefaultLanguage(t *testing.T) {
	translated := "प्रति,\nमामले के तथ्य:\n1. अनुवादित तथ्य।"
	provider := &queueProvider{responses: append(append([]string{}, pilResponses...), translated)}
	renderer := &captureRenderer{}
	tk := newTestToolkit(t, provider, renderer, t.TempDir())

	req := pilRequest()
	req.Language = "hi"
	result, err := tk.Generate(context.Background(), document.TypePIL, req)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if provider.calls != 4 {
		t.Fatalf("expected 3 generation calls plus 1 translation, got %d", provider.calls)
	}
	if !strings.HasSuffix(result.ArtifactPath, "PIL_Asha_Rao_hi.pdf") {
		t.Fatalf("artifact path missing language code: %q", result.ArtifactPath)
	}
	// The translated body is classified against the hi profile.
	if len(renderer.blocks) == 0 || renderer.profile.Code != "hi" {
		t.Fatalf("renderer not invoked with hi profile")
	}
	var sawLocalizedHeader bool
	for _, b := range renderer.blocks {
		if b.Role == layout.RoleSubheader && b.Text == "मामले के तथ्य:" {
			sawLocalizedHeader = true
		}
	}
	if !sawLocalizedHeader {
		t.Fatalf("translated header not classified as subheader: %+v", renderer.blocks)
	}
}

func TestGenerateFailureProducesNoArtifact(t *testing.T) {
	provider := &queueProvider{responses: []string{"1. fact.", "FAIL"}}
	renderer := &captureRenderer{}
	outDir := t.TempDir()
	tk := newTestToolkit(t, provider, renderer, outDir)

	_, err := tk.Generate(context.Background(), document.TypePIL, pilRequest())
	if document.KindOf(err) != document.KindGenerationFailure {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if renderer.path != "" {
		t.Fatalf("renderer must not run after a failed stage")
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read outdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed invocation left artifacts: %v", entries)
	}
}

func TestGenerateRenderFailure(t *testing.T) {
	provider := &queueProvider{responses: pilResponses}
	renderer := &captureRenderer{err: fmt.Errorf("disk full")}
	tk := newTestToolkit(t, provider, renderer, t.TempDir())

	_, err := tk.Generate(context.Background(), document.TypePIL, pilRequest())
	if document.KindOf(err) != document.KindRenderFailure {
		t.Fatalf("expected render failure, got %v", err)
	}
}

func TestGenerateValidatesRequest(t *testing.T) {
	provider := &queueProvider{}
	tk := newTestToolkit(t, provider, &captureRenderer{}, t.TempDir())
	_, err := tk.Generate(context.Background(), document.TypePIL, document.Request{Issue: "x", Name: "y"})
	if err == nil || !strings.Contains(err.Error(), "location required") {
		t.Fatalf("expected validation error, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("invalid request must not reach the provider")
	}
}

func TestGenerateUnknownLanguageFallsBackButKeepsCode(t *testing.T) {
	// Unknown codes resolve to the default profile for layout, but the
	// artifact name and the translation attempt keep the raw code.
	provider := &queueProvider{responses: append(append([]string{}, pilResponses...), "translated body")}
	renderer := &captureRenderer{}
	tk := newTestToolkit(t, provider, renderer, t.TempDir())

	req := pilRequest()
	req.Language = "zz"
	result, err := tk.Generate(context.Background(), document.TypePIL, req)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.HasSuffix(result.ArtifactPath, "PIL_Asha_Rao_zz.pdf") {
		t.Fatalf("artifact path should keep raw code: %q", result.ArtifactPath)
	}
	if provider.calls != 4 {
		t.Fatalf("unknown code should still attempt translation, got %d calls", provider.calls)
	}
	if renderer.profile.Code != "en" {
		t.Fatalf("layout should use the default profile for unknown codes, got %q", renderer.profile.Code)
	}
}

func TestArtifactName(t *testing.T) {
	got := ArtifactName(document.TypeRTI, "Asha Kumari Rao", "kn")
	if got != "RTI_Asha_Kumari_Rao_kn.pdf" {
		t.Fatalf("ArtifactName = %q", got)
	}
}
