package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/brand-research/internal/competitors"
	"github.com/jonathan/brand-research/internal/config"
	"github.com/jonathan/brand-research/internal/fetch"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/research"
	"github.com/jonathan/brand-research/internal/search"
)

// loadMergedConfig layers configuration sources: an optional JSON config file
// under environment variables. Flags are applied by the individual commands.
func loadMergedConfig(configPath string) (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	cfg := config.FromEnv().MergeWithDefaults(fileCfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildService wires the research service from configuration. The returned
// cleanup function closes the LLM client and must be called when done.
func buildService(ctx context.Context, cfg config.Config) (*research.Service, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	fetcher := fetch.NewFetcher(cfg.ScrapeURL)
	fetcher.UseBrowser = cfg.UseBrowser
	fetcher.Verbose = cfg.Verbose

	searchClient := search.NewClient(cfg.SerpAPIKey)

	tables, err := loadTables(cfg.TablesPath)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	svc := research.NewService(client, fetcher, searchClient, competitors.NewExtractor(tables))
	cleanup := func() { _ = client.Close() }
	return svc, cleanup, nil
}

func loadTables(path string) (*competitors.Tables, error) {
	if path == "" {
		tables, err := competitors.DefaultTables()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in competitor tables: %w", err)
		}
		return tables, nil
	}

	tables, err := competitors.LoadTables(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitor tables from %s: %w", path, err)
	}
	return tables, nil
}

// printJSON writes an indented JSON rendering of v to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
