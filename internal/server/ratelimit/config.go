package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // endpoint path, trailing "/" enables prefix matching
	Method string        // HTTP method
	Limit  int           // maximum requests per window
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit if 0
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Research endpoints
// fan out into LLM calls and web searches, so they get the strictest budget;
// prompt generation is a single LLM call and sits in a middle tier.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: research runs (LLM + multiple searches per request)
		{Path: "/research", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/research/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/brand/research", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/brand/research/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/competitors/research", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/competitors/research/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		// Tier 2: prompt generation (one LLM call per request)
		{Path: "/prompts/generate", Method: "POST", Limit: 100, Window: time.Hour, Burst: 10},
		{Path: "/prompts/generate/", Method: "POST", Limit: 100, Window: time.Hour, Burst: 10},

		// Tier 3: health check (unlimited) - handled by the matcher
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
