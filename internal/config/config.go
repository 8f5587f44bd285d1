package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required"`
	RedisURL            string `env:"REDIS_URL"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string `env:"LOG_FORMAT" envDefault:"console"`
	Environment         string `env:"ENVIRONMENT" envDefault:"development"`
	RateLimitPerMin     int    `env:"RATE_LIMIT_PER_MIN" envDefault:"120"`
	SessionMaxOpenHours int    `env:"SESSION_MAX_OPEN_HOURS" envDefault:"0"`
	DefaultPageLimit    int    `env:"DEFAULT_PAGE_LIMIT" envDefault:"100"`
	MaxPageLimit        int    `env:"MAX_PAGE_LIMIT" envDefault:"1000"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SessionMaxOpen is zero when stale sessions are never closed automatically.
func (c *Config) SessionMaxOpen() time.Duration {
	return time.Duration(c.SessionMaxOpenHours) * time.Hour
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if !IsSQLiteURL(c.DatabaseURL) &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return errors.New("DATABASE_URL must start with postgres://, postgresql://, sqlite:// or file:")
	}
	if c.RateLimitPerMin < 0 {
		return errors.New("RATE_LIMIT_PER_MIN must not be negative")
	}
	if c.SessionMaxOpenHours < 0 {
		return errors.New("SESSION_MAX_OPEN_HOURS must not be negative")
	}
	if c.DefaultPageLimit <= 0 || c.MaxPageLimit <= 0 {
		return errors.New("DEFAULT_PAGE_LIMIT and MAX_PAGE_LIMIT must be positive")
	}
	if c.DefaultPageLimit > c.MaxPageLimit {
		return fmt.Errorf("DEFAULT_PAGE_LIMIT (%d) exceeds MAX_PAGE_LIMIT (%d)", c.DefaultPageLimit, c.MaxPageLimit)
	}

	if c.IsProduction() {
		if IsSQLiteURL(c.DatabaseURL) {
			log.Warn().Msg("DATABASE_URL points at SQLite in production: writes are serialized on a single connection")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
	}

	return nil
}

// IsSQLiteURL reports whether url selects the embedded SQLite engine.
func IsSQLiteURL(url string) bool {
	return strings.HasPrefix(url, "sqlite://") || strings.HasPrefix(url, "file:")
}

// Load reads an optional .env file from the working directory and then
// parses the process environment. Variables already set in the environment
// win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
