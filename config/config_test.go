package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
			t.Errorf("PokeAPI.BaseURL = %s, want https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
		}
		if cfg.PokeAPI.ListLimit != 20 {
			t.Errorf("PokeAPI.ListLimit = %d, want 20", cfg.PokeAPI.ListLimit)
		}
		if cfg.PokeAPI.Timeout != 15*time.Second {
			t.Errorf("PokeAPI.Timeout = %v, want 15s", cfg.PokeAPI.Timeout)
		}
		if cfg.Enrich.Concurrency != 0 {
			t.Errorf("Enrich.Concurrency = %d, want 0", cfg.Enrich.Concurrency)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Upstream != 50 {
			t.Errorf("RateLimit.Upstream = %v, want 50", cfg.RateLimit.Upstream)
		}
		if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
			t.Errorf("Logging = %+v, want info/console", cfg.Logging)
		}
		if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
			t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		t.Setenv("DEXVIEW_SERVER_PORT", "9090")
		t.Setenv("DEXVIEW_SERVER_ENVIRONMENT", "production")
		t.Setenv("DEXVIEW_POKEAPI_BASE_URL", "https://custom.api.com")
		t.Setenv("DEXVIEW_POKEAPI_LIST_LIMIT", "151")
		t.Setenv("DEXVIEW_POKEAPI_TIMEOUT", "3s")
		t.Setenv("DEXVIEW_ENRICH_CONCURRENCY", "8")
		t.Setenv("DEXVIEW_RATELIMIT_PER_IP", "200")
		t.Setenv("DEXVIEW_LOGGING_FORMAT", "json")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.PokeAPI.BaseURL != "https://custom.api.com" {
			t.Errorf("PokeAPI.BaseURL = %s, want https://custom.api.com", cfg.PokeAPI.BaseURL)
		}
		if cfg.PokeAPI.ListLimit != 151 {
			t.Errorf("PokeAPI.ListLimit = %d, want 151", cfg.PokeAPI.ListLimit)
		}
		if cfg.PokeAPI.Timeout != 3*time.Second {
			t.Errorf("PokeAPI.Timeout = %v, want 3s", cfg.PokeAPI.Timeout)
		}
		if cfg.Enrich.Concurrency != 8 {
			t.Errorf("Enrich.Concurrency = %d, want 8", cfg.Enrich.Concurrency)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.Logging.Format != "json" {
			t.Errorf("Logging.Format = %s, want json", cfg.Logging.Format)
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		t.Setenv("DEXVIEW_LOGGING_FORMAT", "xml")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error")
		}
		if !strings.Contains(err.Error(), "logging format") {
			t.Errorf("error = %v, want logging format error", err)
		}
	})

	t.Run("rejects negative concurrency", func(t *testing.T) {
		t.Setenv("DEXVIEW_ENRICH_CONCURRENCY", "-1")

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want error")
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads explicit yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dexview.yaml")
		content := `
server:
  port: "7000"
pokeapi:
  list_limit: 50
metrics:
  enabled: false
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v, want nil", err)
		}

		if cfg.Server.Port != "7000" {
			t.Errorf("Server.Port = %s, want 7000", cfg.Server.Port)
		}
		if cfg.PokeAPI.ListLimit != 50 {
			t.Errorf("PokeAPI.ListLimit = %d, want 50", cfg.PokeAPI.ListLimit)
		}
		if cfg.Metrics.Enabled {
			t.Errorf("Metrics.Enabled = true, want false")
		}
		// Untouched keys keep defaults
		if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
			t.Errorf("PokeAPI.BaseURL = %s, want default", cfg.PokeAPI.BaseURL)
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Fatal("LoadFile() error = nil, want error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			PokeAPI: PokeAPIConfig{BaseURL: "https://pokeapi.co/api/v2", ListLimit: 20},
			Logging: LoggingConfig{Format: "console"},
			Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.PokeAPI.BaseURL = "" }, true},
		{"negative list limit", func(c *Config) { c.PokeAPI.ListLimit = -1 }, true},
		{"negative upstream rate", func(c *Config) { c.RateLimit.Upstream = -1 }, true},
		{"metrics path without slash", func(c *Config) { c.Metrics.Path = "metrics" }, true},
		{"metrics disabled ignores path", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = ""
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
