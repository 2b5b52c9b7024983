package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for access tokens

	DatabaseFile string // Optional: path to SQLite database file (default: ./doorstep.db)
	BlobRoot     string // Optional: root directory for uploaded files (default: ./blobs)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	InviteTTL  time.Duration // Optional: invite code lifetime (default: 5m)
	AccessTTL  time.Duration // Optional: access token lifetime (default: 15m)
	SessionTTL time.Duration // Optional: session lifetime (default: 7d)
	ResetTTL   time.Duration // Optional: password reset token lifetime (default: 1h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 15m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("DOORSTEP_ISSUER"),
		DatabaseFile:         getEnvOrDefault("DOORSTEP_DATABASE_FILE", "doorstep.db"),
		BlobRoot:             getEnvOrDefault("DOORSTEP_BLOB_ROOT", "blobs"),
		PepperFile:           getEnvOrDefault("DOORSTEP_PEPPER_FILE", "pepper"),
		InviteTTL:            getEnvDurationOrDefault("DOORSTEP_INVITE_TTL", 5*time.Minute),
		AccessTTL:            getEnvDurationOrDefault("DOORSTEP_ACCESS_TTL", 15*time.Minute),
		SessionTTL:           getEnvDurationOrDefault("DOORSTEP_SESSION_TTL", 7*24*time.Hour),
		ResetTTL:             getEnvDurationOrDefault("DOORSTEP_RESET_TTL", 1*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 15*time.Minute),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "doorstep-agency"
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

	// Plain integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
