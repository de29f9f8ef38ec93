// Package config reads the application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/ephemeris"
)

// Config holds application configuration.
type Config struct {
	DataDir       string
	VSOP87Dir     string
	DatabasePath  string
	LogLevel      string
	Pretty        bool
	Ayanamsa      string
	HouseSystem   string
	NodeMode      string
	DashaYears    int
	CacheTTLHours int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:       getEnv("JYOTISH_DATA_DIR", "./data"),
		VSOP87Dir:     getEnv("VSOP87_DIR", "./data/vsop87"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/jyotish.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Pretty:        getEnvAsBool("LOG_PRETTY", false),
		Ayanamsa:      getEnv("JYOTISH_AYANAMSA", string(chart.AyanamsaLahiri)),
		HouseSystem:   getEnv("JYOTISH_HOUSE_SYSTEM", string(chart.WholeSign)),
		NodeMode:      getEnv("JYOTISH_NODE_MODE", string(ephemeris.NodeMean)),
		DashaYears:    getEnvAsInt("JYOTISH_DASHA_YEARS", 120),
		CacheTTLHours: getEnvAsInt("JYOTISH_CACHE_TTL_HOURS", 24),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured identifiers are known.
func (c *Config) Validate() error {
	if !chart.Ayanamsa(c.Ayanamsa).Valid() {
		return fmt.Errorf("JYOTISH_AYANAMSA: unknown ayanamsa %q", c.Ayanamsa)
	}
	if !chart.HouseSystem(c.HouseSystem).Valid() {
		return fmt.Errorf("JYOTISH_HOUSE_SYSTEM: unknown house system %q", c.HouseSystem)
	}
	if !ephemeris.NodeMode(c.NodeMode).Valid() {
		return fmt.Errorf("JYOTISH_NODE_MODE: unknown node mode %q", c.NodeMode)
	}
	if c.DashaYears <= 0 {
		return fmt.Errorf("JYOTISH_DASHA_YEARS must be positive, got %d", c.DashaYears)
	}
	if c.CacheTTLHours <= 0 {
		return fmt.Errorf("JYOTISH_CACHE_TTL_HOURS must be positive, got %d", c.CacheTTLHours)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
