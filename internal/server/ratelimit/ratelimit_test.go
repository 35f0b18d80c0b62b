package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tightConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Exempt:        make(map[string]bool),
		Endpoints: []EndpointConfig{
			{Path: "/evaluate/batch", Method: "POST", Limit: 30, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(tightConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/evaluate/batch", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 30, info.Limit)
	}
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	limiter := NewLimiter(tightConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/evaluate/batch", "POST")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/evaluate/batch", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(tightConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/evaluate/batch", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/evaluate/batch", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_ExemptClient(t *testing.T) {
	cfg := tightConfig()
	cfg.Exempt["10.0.0.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.9", "/evaluate/batch", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/evaluate/batch", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(tightConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_FallsBackToDefaultLimit(t *testing.T) {
	limiter := NewLimiter(tightConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/configs", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/evaluate/batch", Method: "POST", Limit: 30},
		{Path: "/evaluate", Method: "POST", Limit: 120},
		{Path: "/admin/", Method: "GET", Limit: 10},
	}

	tests := []struct {
		name   string
		path   string
		method string
		want   int // expected Limit; -1 means no match
	}{
		{"exact match", "/evaluate", "POST", 120},
		{"longer exact match", "/evaluate/batch", "POST", 30},
		{"prefix match", "/admin/users", "GET", 10},
		{"method mismatch", "/evaluate", "GET", -1},
		{"no match", "/configs", "GET", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchEndpoint(tt.path, tt.method, configs)
			if tt.want == -1 {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got.Limit)
			}
		})
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	got := matchEndpoint("/health", "GET", nil)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Limit)
}

func TestBucketRefill(t *testing.T) {
	b := newBucket(2, 1000) // refills fast enough to observe in a test

	require.True(t, b.take())
	require.True(t, b.take())
	assert.False(t, b.take())

	time.Sleep(5 * time.Millisecond)
	assert.True(t, b.take(), "tokens should refill with elapsed time")
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Exempt["10.0.0.1"])
	assert.True(t, cfg.Exempt["10.0.0.2"])
}
