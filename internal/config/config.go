package config

import (
	"fmt"
	"os"
	"strconv"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds the application configuration, populated from environment
// variables with development defaults.
type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type StoreConfig struct {
	// Backend selects the persistence implementation: memory or postgres.
	Backend string
	// SeedData replays the default hero set into an empty store at boot.
	SeedData bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Superhero API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3001"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Backend:  getEnv("STORE_BACKEND", StoreMemory),
			SeedData: getEnvBool("SEED_DATA", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Store.Backend != StoreMemory && c.Store.Backend != StorePostgres {
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StorePostgres, c.Store.Backend)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
