package main

import (
	"context"

	"github.com/jonathan/brand-research/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
	serveAPIKey     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for brand, product, and competitor research and prompt generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT env var)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = serveAPIKey
	}

	svc, cleanup, err := buildService(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{Port: cfg.Port}, svc)
	return srv.Start()
}
