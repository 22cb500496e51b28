// File path: internal/translate/translator.go

// Package translate rewrites an assembled document body into the target
// language through the text-generation provider. The default language is an
// identity pass with no provider call. Codes without a display name are
// still translated, targeted only by their raw code; that targeting is
// best-effort and may degrade output.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/language"
	"github.com/nyayasetu/nyayasetu/internal/llm"
)

var translationPrompt = prompts.NewPromptTemplate(
	"Translate the following text into {{.language}}.\n"+
		"Keep the same structure, formatting and maintain the formal legal style and terminology:\n\n"+
		"{{.text}}\n\n"+
		"Translated text:",
	[]string{"language", "text"})

type Translator struct {
	provider llm.Provider
	registry *language.Registry
}

func New(provider llm.Provider, registry *language.Registry) *Translator {
	return &Translator{provider: provider, registry: registry}
}

// Translate returns text rendered in the target language. For the default
// code the input is returned unchanged. Provider failures surface as
// translation failures; there is no silent fallback to the untranslated
// body.
func (t *Translator) Translate(ctx context.Context, text, code string) (string, error) {
	if code == language.DefaultCode {
		return text, nil
	}
	target := t.registry.DisplayName(code)
	if target == "" {
		target = fmt.Sprintf("the target language (ISO code %q)", code)
	}
	instruction, err := translationPrompt.Format(map[string]any{
		"language": target,
		"text":     text,
	})
	if err != nil {
		return "", document.Fail(document.KindTranslationFailure, "translate", err)
	}
	logger := common.Logger()
	logger.Info("translate: translating document", "target", target, "provider", t.provider.Name())
	translated, err := t.provider.Complete(ctx, instruction)
	if err != nil {
		logger.Error("translate: provider failed", "target", target, "error", err)
		return "", document.Fail(document.KindTranslationFailure, "translate", err)
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", document.Fail(document.KindTranslationFailure, "translate", fmt.Errorf("empty response"))
	}
	return translated, nil
}
