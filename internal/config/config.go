package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port string

	// Data backend selection: "memory" (optionally snapshotted to disk) or
	// "postgres".
	DataBackend        string
	DBConnectionString string

	// Snapshot settings for the memory backend. An empty path disables
	// persistence entirely.
	SnapshotPath     string
	SnapshotInterval time.Duration

	JWTSecret       string
	SessionDuration time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DataBackend:        getEnv("DATA_BACKEND", BackendMemory),
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),
		SnapshotPath:       getEnv("SNAPSHOT_PATH", ""),
		SnapshotInterval:   getEnvDuration("SNAPSHOT_INTERVAL", 30*time.Second),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SessionDuration:    getEnvDuration("SESSION_DURATION", 720*time.Hour),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("no JWT_SECRET provided")
	}
	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBConnectionString == "" {
			return fmt.Errorf("DATA_BACKEND=postgres requires DB_CONNECTION_STRING")
		}
	default:
		return fmt.Errorf("invalid DATA_BACKEND %q: must be %q or %q", c.DataBackend, BackendMemory, BackendPostgres)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default %s", key, raw, fallback)
		return fallback
	}
	return parsed
}
