package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/linkedin-post-generator/internal/config"
	"github.com/jonathan/linkedin-post-generator/internal/feedback"
	"github.com/jonathan/linkedin-post-generator/internal/llm"
	"github.com/jonathan/linkedin-post-generator/internal/pipeline"
	"github.com/jonathan/linkedin-post-generator/internal/search"
)

// loadConfig reads the optional config file, merges environment
// credentials, and applies defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.WithDefaults(), nil
}

// buildGenerator assembles the LLM client and search provider into a
// pipeline generator. The returned client must be closed by the caller.
func buildGenerator(ctx context.Context, cfg config.Config) (*pipeline.Generator, llm.Client, error) {
	client, err := llm.NewClient(ctx, cfg.LLMConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	if client.Provider() == llm.ProviderMock {
		log.Println("[post_agent] no API key configured, using mock LLM responses")
	}

	var provider search.Provider
	if cfg.SearchAPIKey != "" && cfg.SearchEngineID != "" {
		provider, err = search.NewGoogleProvider(ctx, cfg.SearchAPIKey, cfg.SearchEngineID)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to create search provider: %w", err)
		}
	}

	return pipeline.New(client, provider), client, nil
}

// buildFeedbackSink returns a file-backed sink when a path is
// configured, otherwise a discarding one.
func buildFeedbackSink(cfg config.Config) (feedback.Sink, error) {
	if cfg.FeedbackPath == "" {
		return feedback.Discard{}, nil
	}
	return feedback.NewFileLog(cfg.FeedbackPath)
}
