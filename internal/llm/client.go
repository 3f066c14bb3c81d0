package llm

import (
	"context"
	"fmt"

	"github.com/jonathan/linkedin-post-generator/internal/metrics"
)

// CompletionRequest carries one prompt and its generation parameters.
// Zero values for MaxTokens and Temperature select the package defaults.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completion is the result of one completion call, together with the
// measured cost of producing it.
type Completion struct {
	Text   string
	Metric metrics.CallMetric
}

// Client is the completion capability consumed by the pipeline.
// Implementations measure wall-clock latency per call and report token
// usage from the provider's response when present, estimating it
// otherwise (see EstimateTokens).
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Provider() Provider
	Close() error
}

// NewClient selects the provider strategy from configuration. An empty
// API key selects the mock client: mock mode is a configuration-time
// decision, never a per-call fallback.
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.APIKey == "" || cfg.Provider == ProviderMock {
		return NewMockClient(), nil
	}

	switch cfg.Provider {
	case ProviderGroq, "":
		return NewGroqClient(cfg)
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// normalize fills request defaults in place.
func (r *CompletionRequest) normalize() {
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.Temperature <= 0 {
		r.Temperature = DefaultTemperature
	}
}
