package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

const devSecret = "dressify-dev-secret"

// Config holds all application configuration.
type Config struct {
	// Server
	Host     string
	Port     string
	AppEnv   string // "development" or "production"
	LogLevel string

	// Storage
	StoreDriver string
	DatabaseURL string

	// JWT
	JWTSecret     string
	JWTExpiration time.Duration

	// CORS
	AllowOrigins string

	// Rate limiting on /api, per client IP. Zero max disables it.
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// DefaultConfig returns configuration with development defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		AppEnv:          "development",
		LogLevel:        "info",
		StoreDriver:     StorePostgres,
		JWTExpiration:   7 * 24 * time.Hour,
		AllowOrigins:    "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173",
		RateLimitMax:    100,
		RateLimitWindow: 15 * time.Minute,
	}
}

// LoadFromEnv loads .env (if present) and overrides fields from the
// environment. Malformed values are reported rather than ignored.
func (c *Config) LoadFromEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.AppEnv = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.StoreDriver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		c.JWTExpiration = d
	}
	if v := os.Getenv("ALLOW_ORIGINS"); strings.TrimSpace(v) != "" {
		c.AllowOrigins = v
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_MAX: %w", err)
		}
		c.RateLimitMax = n
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
		}
		c.RateLimitWindow = d
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate checks the combination of settings. Outside production a missing
// JWT secret falls back to a fixed development value.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = devSecret
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT expiration must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// ParseDuration accepts Go durations ("90m", "24h") and whole days ("7d").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
