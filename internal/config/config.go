package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/Conceptual-Machines/lounge-api/internal/playback"
)

// Config holds the application configuration
// Note: This is a stateless configuration - arrangements are recomputed per request
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the upstream gateway
	AuthMode string

	// Control surface defaults, used when a request leaves them out
	DefaultKey   string
	DefaultTempo int     // BPM
	DefaultSwing float64 // Swing ratio
}

const (
	defaultTempo = 120
	defaultSwing = 0.55
)

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		Port:         getEnv("PORT", "8080"),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
		AuthMode:     getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
		DefaultKey:   getEnv("DEFAULT_KEY", "C"),
		DefaultTempo: getEnvInt("DEFAULT_TEMPO", defaultTempo),
		DefaultSwing: getEnvFloat("DEFAULT_SWING", defaultSwing),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARN] Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[WARN] Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// Validate checks the control surface defaults against the supported keys and ranges
func (c *Config) Validate() error {
	if _, err := arranger.LookupKey(c.DefaultKey); err != nil {
		return fmt.Errorf("DEFAULT_KEY: %w", err)
	}
	if err := playback.ValidateTempo(c.DefaultTempo); err != nil {
		return fmt.Errorf("DEFAULT_TEMPO: %w", err)
	}
	if err := playback.ValidateSwing(c.DefaultSwing); err != nil {
		return fmt.Errorf("DEFAULT_SWING: %w", err)
	}
	if c.AuthMode != "none" && c.AuthMode != "gateway" {
		return fmt.Errorf("AUTH_MODE: unsupported mode %q", c.AuthMode)
	}
	return nil
}

// IsGatewayMode returns true if running behind the auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction returns true in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
