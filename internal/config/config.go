// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/linkedin-post-generator/internal/llm"
)

// Default server settings.
const (
	DefaultPort = 8000
	DefaultHost = "0.0.0.0"
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// environment variables.
type Config struct {
	// Server
	Host string `json:"host,omitempty"` // Listen address
	Port int    `json:"port,omitempty"` // Listen port

	// LLM provider
	Provider    string `json:"provider,omitempty"`     // "groq", "gemini" or "mock"
	Model       string `json:"model,omitempty"`        // Provider model name
	APIKey      string `json:"api_key,omitempty"`      // Provider API key
	TimeoutSecs int    `json:"timeout_secs,omitempty"` // Per-call timeout in seconds

	// Web search enrichment
	SearchAPIKey   string `json:"search_api_key,omitempty"`   // Google Custom Search API key
	SearchEngineID string `json:"search_engine_id,omitempty"` // Google Custom Search engine ID

	// Feedback
	FeedbackPath string `json:"feedback_path,omitempty"` // JSONL file for feedback entries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	switch c.Provider {
	case "", string(llm.ProviderGroq), string(llm.ProviderGemini), string(llm.ProviderMock):
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}
	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config error: 'timeout_secs' must be non-negative")
	}
	if c.SearchEngineID != "" && c.SearchAPIKey == "" {
		return fmt.Errorf("config error: 'search_engine_id' requires 'search_api_key'")
	}
	return nil
}

// ApplyEnv overrides credential fields from environment variables.
// Environment values win over file values. GROQ_API_KEY is the
// canonical key name; GROK_API_KEY is accepted as a legacy alias.
func (c *Config) ApplyEnv() {
	var key string
	switch llm.Provider(c.Provider) {
	case llm.ProviderGemini:
		key = os.Getenv("GEMINI_API_KEY")
	default:
		key = os.Getenv("GROQ_API_KEY")
		if key == "" {
			key = os.Getenv("GROK_API_KEY")
		}
	}
	if key != "" {
		c.APIKey = key
	}
	if v := os.Getenv("GOOGLE_SEARCH_API_KEY"); v != "" {
		c.SearchAPIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_CX"); v != "" {
		c.SearchEngineID = v
	}
}

// WithDefaults returns a copy with server defaults applied.
func (c *Config) WithDefaults() Config {
	result := *c
	if result.Host == "" {
		result.Host = DefaultHost
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.Provider == "" {
		result.Provider = string(llm.ProviderGroq)
	}
	return result
}

// LLMConfig builds the provider client configuration. An empty API key
// yields a config that the client factory resolves to mock mode.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Provider != "" {
		cfg.Provider = llm.Provider(c.Provider)
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	cfg.APIKey = c.APIKey
	if c.TimeoutSecs > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSecs) * time.Second
	}
	return cfg
}
