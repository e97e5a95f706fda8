// Package config loads the application configuration and the optional feed
// descriptor override table from YAML. Configuration is read once at
// startup and treated as immutable afterward.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abelbrown/vantage/internal/feeds"
)

// Config is the application configuration.
type Config struct {
	// Server address for the HTTP read surface
	ListenAddr string `yaml:"listen_addr"`

	// RefreshSchedule is a cron expression for pipeline refresh cycles
	RefreshSchedule string `yaml:"refresh_schedule"`

	// FetchTimeoutSeconds bounds each individual feed fetch
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	// CacheTTLMinutes controls how long externally-facing reads are served
	// from cache
	CacheTTLMinutes int `yaml:"cache_ttl_minutes"`

	// FeedsFile optionally overrides the built-in descriptor table
	FeedsFile string `yaml:"feeds_file"`
}

// Default returns a runnable configuration.
func Default() *Config {
	return &Config{
		ListenAddr:          ":8080",
		RefreshSchedule:     "*/5 * * * *",
		FetchTimeoutSeconds: 10,
		CacheTTLMinutes:     5,
	}
}

// Load reads the YAML config at path, merged over defaults. A missing file
// is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate fails fast on unusable settings.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is empty")
	}
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	if c.CacheTTLMinutes <= 0 {
		return fmt.Errorf("cache_ttl_minutes must be positive, got %d", c.CacheTTLMinutes)
	}
	return nil
}

// FetchTimeout returns the per-fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// CacheTTL returns the read-cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Descriptors returns the feed table: the override file if configured,
// otherwise the built-in table. Validates every descriptor either way.
func (c *Config) Descriptors() ([]feeds.Descriptor, error) {
	table := feeds.DefaultDescriptors()

	if c.FeedsFile != "" {
		data, err := os.ReadFile(c.FeedsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read feeds file: %w", err)
		}
		var override []feeds.Descriptor
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to parse feeds file: %w", err)
		}
		table = override
	}

	for i, d := range table {
		if d.Endpoint == "" || d.SourceName == "" {
			return nil, fmt.Errorf("feed descriptor %d: missing endpoint or source name", i)
		}
		switch d.Scope {
		case feeds.ScopeInternational, feeds.ScopeRegional, feeds.ScopeLocal:
		default:
			return nil, fmt.Errorf("feed descriptor %q: unknown scope %q", d.SourceName, d.Scope)
		}
	}
	return table, nil
}
