// Package config reads the finpredictor settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the server and the command line.
type Config struct {
	// Addr is the address the server listens on.
	Addr string `env:"FINPREDICTOR_ADDR" envDefault:":8000"`
	// APIURL is the server the command line talks to.
	APIURL string `env:"FINPREDICTOR_API_URL" envDefault:"http://localhost:8000"`
	// UserID is the user the command line acts for, as returned by signup or login.
	UserID string `env:"FINPREDICTOR_USER"`
	// RedisURL enables the Redis cache, e.g. redis://localhost:6379/0.
	RedisURL string `env:"FINPREDICTOR_REDIS_URL"`
	// CacheTTL is how long AI predictions are kept.
	CacheTTL time.Duration `env:"FINPREDICTOR_CACHE_TTL" envDefault:"1h"`
	// GeminiAPIKey enables AI insights. Without it the demo insights are served.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	// GeminiModel is the model used for insights and the assistant.
	GeminiModel string `env:"FINPREDICTOR_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	// CORSOrigins are the origins allowed to call the API, "*" for any.
	CORSOrigins []string `env:"FINPREDICTOR_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
