// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	neturl "net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configures the inspect server.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// Prefix, when set, is stripped from request paths before the current URL is
	// parsed, so responses show both the rewritten and the original URL.
	Prefix string `yaml:"prefix"`
	// PlaceholderBase overrides the origin relative URLs are parsed against.
	PlaceholderBase string `yaml:"placeholderBase"`
	// RateLimit is the sustained requests per second. Zero disables limiting.
	RateLimit float64 `yaml:"rateLimit"`
	// Burst is the number of requests allowed above RateLimit at once.
	Burst int `yaml:"burst"`
	// Metrics records parse counters for this server's parser and serves them on
	// /metrics. Other parsers in the process are unaffected.
	Metrics bool `yaml:"metrics"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:8080",
		Burst:           10,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.Prefix != "" {
		if !strings.HasPrefix(c.Prefix, "/") {
			errs = append(errs, fmt.Errorf("prefix %q must start with /", c.Prefix))
		} else if c.Prefix == "/" || strings.HasSuffix(c.Prefix, "/") {
			errs = append(errs, fmt.Errorf("prefix %q must not end with /", c.Prefix))
		}
	}
	if c.PlaceholderBase != "" {
		u, err := neturl.Parse(c.PlaceholderBase)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("placeholderBase %q must be an absolute origin", c.PlaceholderBase))
		}
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rateLimit must not be negative, got %v", c.RateLimit))
	}
	if c.RateLimit > 0 && c.Burst < 1 {
		errs = append(errs, fmt.Errorf("burst must be at least 1 when rateLimit is set, got %d", c.Burst))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdownTimeout must not be negative, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}
