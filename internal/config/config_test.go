package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abelbrown/vantage/internal/feeds"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	def := Default()
	if cfg.ListenAddr != def.ListenAddr || cfg.RefreshSchedule != def.RefreshSchedule {
		t.Errorf("Load = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vantage.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":9090\"\ncache_ttl_minutes: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.CacheTTL() != 2*time.Minute {
		t.Errorf("cache ttl = %v, want 2m", cfg.CacheTTL())
	}
	// Unset keys keep their defaults
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("fetch timeout = %v, want default 10s", cfg.FetchTimeout())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeoutSeconds = 0 }},
		{"negative cache ttl", func(c *Config) { c.CacheTTLMinutes = -1 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: want validation error", tc.name)
		}
	}
}

func TestDescriptorsBuiltInTable(t *testing.T) {
	cfg := Default()
	table, err := cfg.Descriptors()
	if err != nil {
		t.Fatalf("built-in descriptor table should validate: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("built-in table empty")
	}
}

func TestDescriptorsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	body := `
- endpoint: https://example.com/rss
  source_name: Example Wire
  category: world
  scope: international
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.FeedsFile = path
	table, err := cfg.Descriptors()
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 1 || table[0].SourceName != "Example Wire" {
		t.Errorf("override table = %+v", table)
	}
	if table[0].Scope != feeds.ScopeInternational {
		t.Errorf("scope = %q", table[0].Scope)
	}
}

func TestDescriptorsRejectsUnknownScope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	body := `
- endpoint: https://example.com/rss
  source_name: Example Wire
  scope: galactic
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.FeedsFile = path
	if _, err := cfg.Descriptors(); err == nil {
		t.Error("unknown scope should fail validation")
	}
}
