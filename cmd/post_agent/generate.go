package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-post-generator/internal/observability"
	"github.com/jonathan/linkedin-post-generator/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate LinkedIn posts for a topic",
	Long: `Runs the generation pipeline once and prints the finished posts: brainstorm content angles, draft each post, add hashtags and a call-to-action, then screen the results.

Without an API key the pipeline runs against deterministic mock responses, which is useful for trying out the CLI.`,
	RunE: runGenerate,
}

var (
	generateConfigPath string
	generateTopic      string
	generateTone       string
	generateAudience   string
	generateCount      int
	generateWebSearch  bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "Topic to generate posts about (required)")
	generateCmd.Flags().StringVar(&generateTone, "tone", "", "Desired tone, e.g. inspirational or analytical")
	generateCmd.Flags().StringVar(&generateAudience, "audience", "", "Target audience, e.g. engineering managers")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", pipeline.DefaultPostCount, "Number of posts to generate (1-10)")
	generateCmd.Flags().BoolVar(&generateWebSearch, "web-search", false, "Enrich generation with recent web search results")

	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(generateConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	generator, client, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := generator.Generate(ctx, pipeline.Request{
		Topic:        generateTopic,
		Tone:         generateTone,
		Audience:     generateAudience,
		PostCount:    generateCount,
		UseWebSearch: generateWebSearch,
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResult(result)
	return nil
}
