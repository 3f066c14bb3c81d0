package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-post-generator/internal/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9000,
		"provider": "gemini",
		"api_key": "key-123",
		"feedback_path": "/tmp/feedback.jsonl"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "/tmp/feedback.jsonl", cfg.FeedbackPath)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Empty config", Config{}, false},
		{"Valid groq", Config{Provider: "groq", Port: 8000}, false},
		{"Valid mock", Config{Provider: "mock"}, false},
		{"Unknown provider", Config{Provider: "claude"}, true},
		{"Port out of range", Config{Port: 70000}, true},
		{"Negative timeout", Config{TimeoutSecs: -1}, true},
		{"Engine ID without key", Config{SearchEngineID: "cx-1"}, true},
		{"Engine ID with key", Config{SearchEngineID: "cx-1", SearchAPIKey: "k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROK_API_KEY", "legacy-key")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "search-key")
	t.Setenv("GOOGLE_SEARCH_CX", "cx-9")

	cfg := Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "legacy-key", cfg.APIKey)
	assert.Equal(t, "search-key", cfg.SearchAPIKey)
	assert.Equal(t, "cx-9", cfg.SearchEngineID)

	t.Setenv("GROQ_API_KEY", "canonical-key")
	cfg = Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "canonical-key", cfg.APIKey, "GROQ_API_KEY wins over the legacy alias")
}

func TestApplyEnv_GeminiProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg := Config{Provider: "gemini"}
	cfg.ApplyEnv()
	assert.Equal(t, "gem-key", cfg.APIKey)
}

func TestApplyEnv_EnvWinsOverFileValue(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")

	cfg := Config{APIKey: "from-file"}
	cfg.ApplyEnv()
	assert.Equal(t, "env-key", cfg.APIKey)

	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROK_API_KEY", "")
	cfg = Config{APIKey: "from-file"}
	cfg.ApplyEnv()
	assert.Equal(t, "from-file", cfg.APIKey, "file value survives when no env key is set")
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "groq", cfg.Provider)

	cfg = (&Config{Host: "127.0.0.1", Port: 9999, Provider: "mock"}).WithDefaults()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "mock", cfg.Provider)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Provider: "gemini", Model: "gemini-1.5-pro", APIKey: "k", TimeoutSecs: 10}
	llmCfg := cfg.LLMConfig()

	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "gemini-1.5-pro", llmCfg.Model)
	assert.Equal(t, "k", llmCfg.APIKey)
	assert.Equal(t, 10*time.Second, llmCfg.Timeout)

	llmCfg = (&Config{}).LLMConfig()
	assert.Equal(t, llm.ProviderGroq, llmCfg.Provider)
	assert.Equal(t, llm.DefaultTimeout, llmCfg.Timeout)
	assert.Empty(t, llmCfg.APIKey)
}
