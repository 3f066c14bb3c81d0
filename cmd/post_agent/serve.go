package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-post-generator/internal/server"
)

var (
	serveConfigPath string
	serveHost       string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating LinkedIn posts, streaming progress over SSE, and recording feedback.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()
	generator, client, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	sink, err := buildFeedbackSink(cfg)
	if err != nil {
		return fmt.Errorf("failed to create feedback sink: %w", err)
	}

	srv := server.New(server.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Generator: generator,
		Feedback:  sink,
		Provider:  string(client.Provider()),
	})

	return srv.Start()
}
