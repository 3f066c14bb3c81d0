package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-post-generator/internal/config"
	"github.com/jonathan/linkedin-post-generator/internal/feedback"
	"github.com/jonathan/linkedin-post-generator/internal/llm"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GROQ_API_KEY", "GROK_API_KEY", "GEMINI_API_KEY", "GOOGLE_SEARCH_API_KEY", "GOOGLE_SEARCH_CX"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	clearCredentialEnv(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultHost, cfg.Host)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("GROQ_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9100, "provider": "groq"}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadConfig_InvalidConfigRejected(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": "claude"}`), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestBuildGenerator_MockWithoutCredentials(t *testing.T) {
	clearCredentialEnv(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)

	generator, client, err := buildGenerator(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, generator)
	assert.Equal(t, llm.ProviderMock, client.Provider())
}

func TestBuildFeedbackSink(t *testing.T) {
	sink, err := buildFeedbackSink(config.Config{})
	require.NoError(t, err)
	assert.IsType(t, feedback.Discard{}, sink)

	path := filepath.Join(t.TempDir(), "fb", "feedback.jsonl")
	sink, err = buildFeedbackSink(config.Config{FeedbackPath: path})
	require.NoError(t, err)
	assert.IsType(t, &feedback.FileLog{}, sink)
}
