package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Synth     SynthConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string `envconfig:"AIAGEN_PORT" default:"8000"`
	Host           string `envconfig:"AIAGEN_HOST" default:"0.0.0.0"`
	RequestTimeout int    `envconfig:"AIAGEN_REQUEST_TIMEOUT_SECONDS" default:"30"`
	MaxBodyBytes   int64  `envconfig:"AIAGEN_MAX_BODY_BYTES" default:"1048576"`
}

// SynthConfig holds synthesis configuration and input bounds.
type SynthConfig struct {
	DefaultNamespace   string `envconfig:"AIAGEN_DEFAULT_NAMESPACE" default:"appinventor.ai_anonymous"`
	DensityMode        string `envconfig:"AIAGEN_DENSITY_MODE" default:"px"`
	MaxComponents      int    `envconfig:"AIAGEN_MAX_COMPONENTS" default:"500"`
	MaxNestingDepth    int    `envconfig:"AIAGEN_MAX_NESTING_DEPTH" default:"20"`
	MaxExpressionNodes int    `envconfig:"AIAGEN_MAX_EXPRESSION_NODES" default:"2000"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"AIAGEN_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"AIAGEN_LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"AIAGEN_RATE_LIMIT_RPS" default:"20"`
	Burst             int  `envconfig:"AIAGEN_RATE_LIMIT_BURST" default:"40"`
	Enabled           bool `envconfig:"AIAGEN_RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8000",
			Host:           "0.0.0.0",
			RequestTimeout: 30,
			MaxBodyBytes:   1 << 20,
		},
		Synth: SynthConfig{
			DefaultNamespace:   "appinventor.ai_anonymous",
			DensityMode:        "px",
			MaxComponents:      500,
			MaxNestingDepth:    20,
			MaxExpressionNodes: 2000,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			Enabled:           true,
		},
	}
}
