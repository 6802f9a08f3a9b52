// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration, mapped from environment
// variables with the defaults the service ships with.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `envconfig:"ADDR" default:":8001"`
	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	// CacheTTL is the freshness window of every cached result.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	// CacheCapacity bounds the result cache entry count.
	CacheCapacity int `envconfig:"CACHE_CAPACITY" default:"1000"`
	// StreamInterval is the push period of the WebSocket quote stream.
	StreamInterval time.Duration `envconfig:"STREAM_INTERVAL" default:"2s"`
	// StrictSymbols rejects unknown symbols instead of lazily registering
	// them with a random base price.
	StrictSymbols bool `envconfig:"STRICT_SYMBOLS" default:"false"`
	// Symbols overrides the tracked universe; empty keeps the default set.
	Symbols []string `envconfig:"SYMBOLS"`
	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads a .env file if present and maps the environment into a
// Config. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
