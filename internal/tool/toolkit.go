// File path: internal/tool/toolkit.go

// Package tool runs the drafting pipeline end to end: fragment generation,
// template assembly, optional translation, and layout rendering. All
// collaborators are injected; the package holds no global state.
package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/assemble"
	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/generate"
	"github.com/nyayasetu/nyayasetu/internal/language"
	"github.com/nyayasetu/nyayasetu/internal/layout"
	"github.com/nyayasetu/nyayasetu/internal/llm"
	"github.com/nyayasetu/nyayasetu/internal/translate"
)

// DefaultOutputDir is where artifacts land unless the caller overrides it.
const DefaultOutputDir = "generated_pdfs"

const artifactExt = ".pdf"

type Toolkit struct {
	generator  *generate.Generator
	assembler  *assemble.Assembler
	translator *translate.Translator
	renderer   layout.Renderer
	registry   *language.Registry
	outDir     string
	now        func() time.Time
}

// New builds a toolkit around the given provider, registry, and renderer.
// An empty outDir selects DefaultOutputDir.
func New(provider llm.Provider, registry *language.Registry, renderer layout.Renderer, outDir string) (*Toolkit, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider required")
	}
	if registry == nil {
		return nil, fmt.Errorf("language registry required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	assembler, err := assemble.New()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(outDir) == "" {
		outDir = DefaultOutputDir
	}
	return &Toolkit{
		generator:  generate.NewGenerator(provider),
		assembler:  assembler,
		translator: translate.New(provider, registry),
		renderer:   renderer,
		registry:   registry,
		outDir:     outDir,
		now:        time.Now,
	}, nil
}

// Generate runs one drafting invocation and returns the artifact path. A
// failure at any stage aborts the invocation; no artifact is produced.
func (t *Toolkit) Generate(ctx context.Context, typ document.Type, req document.Request) (*document.Result, error) {
	logger := common.Logger()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = language.DefaultCode
	}
	profile := t.registry.Resolve(lang)
	logger.Info("tool: invocation started", "type", typ, "language", lang, "requester", req.Name)

	frags, err := t.generator.Generate(ctx, typ, req)
	if err != nil {
		return nil, err
	}
	content, err := t.assembler.Assemble(typ, frags, req, profile, t.now())
	if err != nil {
		return nil, err
	}
	if lang != language.DefaultCode {
		content, err = t.translator.Translate(ctx, content, lang)
		if err != nil {
			return nil, err
		}
	}

	blocks := layout.Classify(content, profile)
	if err := os.MkdirAll(t.outDir, 0o755); err != nil {
		return nil, document.Fail(document.KindRenderFailure, "render", err)
	}
	path := filepath.Join(t.outDir, ArtifactName(typ, req.Name, lang))
	if err := t.renderer.Render(blocks, profile, path); err != nil {
		return nil, document.Fail(document.KindRenderFailure, "render", err)
	}
	logger.Info("tool: invocation complete", "type", typ, "artifact", path)
	return &document.Result{Type: typ, Language: lang, ArtifactPath: path}, nil
}

// ArtifactName derives the deterministic artifact filename. Repeat
// invocations with the same derived name overwrite the prior artifact.
func ArtifactName(typ document.Type, requester, lang string) string {
	return fmt.Sprintf("%s_%s_%s%s", typ, strings.ReplaceAll(requester, " ", "_"), lang, artifactExt)
}
