// Package config loads the application configuration from environment
// variables, with optional .env file support for development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// minSecretLen guards against trivially guessable HMAC keys.
const minSecretLen = 32

// Config holds the runtime settings for the server.
type Config struct {
	Port          string // HTTP listen port
	DatabasePath  string // SQLite data source name
	SessionSecret string // HMAC key for session cookies; mandatory
	TemplateDir   string // directory containing the HTML templates
	StaticDir     string // directory served under /static/
}

// Load reads configuration from the environment. A .env file in the working
// directory is read first when present. There is deliberately no default
// for SESSION_SECRET: starting with a known-weak signing key is worse than
// not starting.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "portal.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TemplateDir:   getEnv("TEMPLATE_DIR", "web/templates"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server must not run with.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if len(c.SessionSecret) < minSecretLen {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSecretLen)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
