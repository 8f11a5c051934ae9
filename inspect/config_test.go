// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package inspect

import (
	"testing"
	"time"

	"github.com/jongio/parseurl/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.Metrics)
}

func TestLoadConfig(t *testing.T) {
	path := testutil.WriteFile(t, "inspect.yaml", `
addr: ":9090"
prefix: /api
placeholderBase: https://placeholder.example
rateLimit: 2.5
metrics: true
shutdownTimeout: 2s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/api", cfg.Prefix)
	assert.Equal(t, "https://placeholder.example", cfg.PlaceholderBase)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
	assert.Equal(t, 10, cfg.Burst, "unset keys keep defaults")
	assert.True(t, cfg.Metrics)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(testutil.WriteFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"unknown key", "listen: :80\n", "field listen not found"},
		{"bad yaml", "addr: [\n", "failed to parse config"},
		{"invalid prefix", "prefix: api\n", "must start with /"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(testutil.WriteFile(t, "c.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}

	_, err := LoadConfig(t.TempDir() + "/missing.yaml")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{"empty addr", func(c *Config) { c.Addr = " " }, "addr is required"},
		{"root prefix", func(c *Config) { c.Prefix = "/" }, "must not end with /"},
		{"trailing slash prefix", func(c *Config) { c.Prefix = "/api/" }, "must not end with /"},
		{"relative base", func(c *Config) { c.PlaceholderBase = "/x" }, "absolute origin"},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }, "must not be negative"},
		{"zero burst", func(c *Config) { c.RateLimit = 1; c.Burst = 0 }, "burst must be at least 1"},
		{"negative timeout", func(c *Config) { c.ShutdownTimeout = -time.Second }, "shutdownTimeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errText)
		})
	}

	cfg := DefaultConfig()
	cfg.Addr, cfg.Prefix = "", "x"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "addr is required")
	assert.ErrorContains(t, err, "must start with /")
}
