package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer  string // Required: issuer claim for session tokens
	BaseURL string // Public origin used to build shareable invitation links

	SessionKeyFile string        // Optional: path to a PEM Ed25519 signing key (empty = ephemeral key)
	SessionTTL     time.Duration // Optional: session token lifetime (default: 30 days)

	AdminEmail    string // Optional: email for the bootstrapped admin account
	AdminPassword string // Optional: password for the bootstrapped admin account

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./joblink.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("JOBLINK_ISSUER"),
		BaseURL:             getEnvOrDefault("JOBLINK_BASE_URL", "http://localhost:8080"),
		SessionKeyFile:      os.Getenv("JOBLINK_SESSION_KEY_FILE"),
		SessionTTL:          getEnvDurationOrDefault("JOBLINK_SESSION_TTL", 30*24*time.Hour),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		DatabaseFile:        getEnvOrDefault("JOBLINK_DATABASE_FILE", "joblink.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "joblink-auth"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
