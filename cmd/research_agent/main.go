// Package main provides the entry point for the brand research service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "research_agent",
	Short: "Brand Research HTTP API Server and CLI",
	Long:  "Brand Research runs AI-assisted brand, product, and competitor research and generates AI-visibility prompts, via REST API or one-shot commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
