package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	DatabasePath    string // sqlite file holding the generated snapshot
	SessionSecret   string
	SessionTTL      time.Duration // idle time before a session copy is evicted
	SweepSchedule   string        // cron expression driving the session reaper
	SimulateLatency bool          // inject a random delay before each API request
	LogLevel        string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "10m"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./invoices.db"),
		SessionSecret:   getEnv("SESSION_SECRET", "demo-app-secret-key-change-in-production"),
		SessionTTL:      ttl,
		SweepSchedule:   getEnv("SESSION_SWEEP_SCHEDULE", "@every 1m"),
		SimulateLatency: getEnv("SIMULATE_LATENCY", "false") == "true",
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
