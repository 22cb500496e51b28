// File path: internal/llm/llm.go
package llm

import (
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v2/option"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/llm/providers"
)

type Provider = providers.Provider

// NewProvider selects the text-generation provider from the environment.
// NYAYASETU_PROVIDER=local selects the offline echo stub; everything else
// selects the OpenAI provider. A missing OPENAI_API_KEY is not a startup
// error, but every generation request will then fail.
func NewProvider() Provider {
	logger := common.Logger()
	if strings.EqualFold(strings.TrimSpace(os.Getenv("NYAYASETU_PROVIDER")), "local") {
		logger.Info("llm: local provider selected")
		return providers.NewLocalProvider()
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	var opts []option.RequestOption
	if apiKey == "" {
		logger.Warn("llm: OPENAI_API_KEY not set; generation requests will fail")
	} else {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
		} else {
			opts = append(opts, option.WithRequestTimeout(timeout))
		}
	}
	if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
		logger.Info("llm: using custom OpenAI endpoint", "endpoint", endpoint)
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	logger.Info("llm: OpenAI provider selected")
	return providers.NewOpenAIProvider(opts...)
}
