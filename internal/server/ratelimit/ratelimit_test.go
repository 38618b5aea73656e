package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/research", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/research/", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		},
	}
}

func TestAllow_BurstThenLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// Burst of 2 allowed, third denied.
	allowed, _ := l.Allow("1.2.3.4", "/research", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/research", "POST")
	assert.True(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/research", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.1.1.1", "/research", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.1.1.1", "/research", "POST")
	assert.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/research", "POST")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestAllow_PrefixMatch(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/research/simple", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.2.3.4", "/research/simple", "POST")
	assert.False(t, allowed, "/research/simple falls under the /research/ prefix tier")
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/research", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/research", "POST")
		require.True(t, allowed, "whitelisted clients are never limited")
	}

	allowed, _ := l.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed, "blacklisted clients are always denied")
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/research", Method: "POST", Limit: 10},
		{Path: "/research/", Method: "POST", Limit: 20},
	}

	exact := MatchEndpoint("/research", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/research/simple", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 20, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/other", "GET", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}

func TestTokenBucket_Refill(t *testing.T) {
	// 10 tokens per second, capacity 1.
	tb := newTokenBucket(1, 10)

	require.True(t, tb.allow())
	require.False(t, tb.allow())

	time.Sleep(150 * time.Millisecond)
	assert.True(t, tb.allow(), "tokens refill over time")
}
