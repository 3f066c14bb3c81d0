// Package main provides the entry point for the LinkedIn Post Generator server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "post_agent",
	Short: "LinkedIn Post Generator",
	Long:  "LinkedIn Post Generator creates polished LinkedIn posts for a topic through a multi-stage LLM pipeline with optional web-search enrichment, exposed as a REST API or a one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
