// Package llm provides the completion-client abstraction used by the
// post generation pipeline, with Groq and Gemini backends and a
// deterministic mock for running without credentials.
package llm

import "time"

// Provider identifies an LLM backend.
type Provider string

// Supported providers.
const (
	// ProviderGroq calls Groq's OpenAI-compatible chat completions API.
	ProviderGroq Provider = "groq"
	// ProviderGemini calls the Google Gemini API.
	ProviderGemini Provider = "gemini"
	// ProviderMock returns deterministic canned responses.
	ProviderMock Provider = "mock"
)

// Default generation parameters, applied when a CompletionRequest
// leaves them unset.
const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7

	// DefaultTimeout bounds a single completion call. A stuck upstream
	// call becomes a ProviderUnavailableError instead of hanging the
	// whole request.
	DefaultTimeout = 45 * time.Second
)

// Config selects the provider strategy at construction time.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// DefaultConfig returns the Groq configuration the service ships with.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Model:    "llama-3.1-8b-instant",
		Timeout:  DefaultTimeout,
	}
}

// defaultModel returns the default model name for a provider.
func defaultModel(p Provider) string {
	switch p {
	case ProviderGemini:
		return "gemini-1.5-flash"
	default:
		return "llama-3.1-8b-instant"
	}
}
