// File path: internal/llm/providers/provider.go
package providers

import "context"

// Provider is the text-generation collaborator. Complete submits one
// instruction and blocks for the response; failures are opaque and are
// never retried at this layer.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
