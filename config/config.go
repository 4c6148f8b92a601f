package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	PokeAPI   PokeAPIConfig
	Enrich    EnrichConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PokeAPIConfig holds upstream catalog configuration
type PokeAPIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	ListLimit int           `mapstructure:"list_limit"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// EnrichConfig holds parallel fetch configuration
type EnrichConfig struct {
	Concurrency int `mapstructure:"concurrency"` // 0 = unbounded
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP    int     `mapstructure:"per_ip"`   // requests per minute per client
	Upstream float64 `mapstructure:"upstream"` // requests per second to the catalog
	Burst    int     `mapstructure:"burst"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
	File   string `mapstructure:"file"`
}

// MetricsConfig holds Prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration like Load, reading path instead of searching
// the default locations when path is non-empty
func LoadFile(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/dexview/")
	}

	// Environment variable settings
	v.SetEnvPrefix("DEXVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// PokeAPI defaults
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.list_limit", 20)
	v.SetDefault("pokeapi.timeout", "15s")
	v.SetDefault("pokeapi.user_agent", "dexview/1.0")

	// Enrichment defaults
	v.SetDefault("enrich.concurrency", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)
	v.SetDefault("ratelimit.upstream", 50)
	v.SetDefault("ratelimit.burst", 25)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.PokeAPI.BaseURL == "" {
		return fmt.Errorf("PokeAPI base URL is required (set DEXVIEW_POKEAPI_BASE_URL)")
	}

	if config.PokeAPI.ListLimit < 0 {
		return fmt.Errorf("list limit must be >= 0, got: %d", config.PokeAPI.ListLimit)
	}

	if config.Enrich.Concurrency < 0 {
		return fmt.Errorf("enrich concurrency must be >= 0, got: %d", config.Enrich.Concurrency)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Upstream < 0 {
		return fmt.Errorf("rate limits must be >= 0")
	}

	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		return fmt.Errorf("logging format must be 'console' or 'json', got: %s", config.Logging.Format)
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/', got: %s", config.Metrics.Path)
	}

	return nil
}
