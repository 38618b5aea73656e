// Package config provides configuration loading and validation for the
// research service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults used when neither the config file nor the environment provides a
// value.
const (
	DefaultPort      = 8000
	DefaultScrapeURL = "http://localhost:3002"
)

// Config holds service configuration. Values can come from a JSON file, the
// environment, or CLI flags; all fields are optional and missing values use
// defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Credentials and endpoints
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key
	SerpAPIKey    string `json:"serpapi_api_key,omitempty"` // SerpAPI key for web search
	ScrapeURL     string `json:"scrape_url,omitempty"`      // Firecrawl-compatible scrape service base URL
	TablesPath    string `json:"tables_path,omitempty"`     // Optional override for competitor lookup tables
	RatePerMinute int    `json:"rate_per_minute,omitempty"` // Per-client request budget, 0 disables limiting

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser fallback for SPA sites
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
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

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SerpAPIKey:   os.Getenv("SERPAPI_API_KEY"),
		ScrapeURL:    os.Getenv("FIRECRAWL_URL"),
		TablesPath:   os.Getenv("COMPETITOR_TABLES_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if rate, err := strconv.Atoi(os.Getenv("RATE_PER_MINUTE")); err == nil {
		cfg.RatePerMinute = rate
	}
	if os.Getenv("USE_BROWSER") == "true" {
		cfg.UseBrowser = true
	}
	if os.Getenv("VERBOSE") == "true" {
		cfg.Verbose = true
	}
	return cfg
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; commands verify what they actually need.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RatePerMinute < 0 {
		return fmt.Errorf("config error: 'rate_per_minute' must be non-negative")
	}
	if c.TablesPath != "" {
		if _, err := os.Stat(c.TablesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: tables file not found: %s", c.TablesPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to layer a config file under environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SerpAPIKey == "" {
		result.SerpAPIKey = defaults.SerpAPIKey
	}
	if result.ScrapeURL == "" {
		result.ScrapeURL = defaults.ScrapeURL
	}
	if result.ScrapeURL == "" {
		result.ScrapeURL = DefaultScrapeURL
	}
	if result.TablesPath == "" {
		result.TablesPath = defaults.TablesPath
	}
	if result.RatePerMinute == 0 {
		result.RatePerMinute = defaults.RatePerMinute
	}

	// Bool fields cannot distinguish unset from false, so the receiver wins.

	return result
}
