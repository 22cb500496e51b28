// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is an offline stand-in used when no API key is configured.
// It echoes a marker plus the prompt so generated documents are visibly
// synthetic.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("empty prompt")
	}
	return "[local-stub] " + strings.TrimSpace(prompt), nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
