package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/service"
)

type Config struct {
	Issuer      string // Optional: token issuer and TOTP issuer (default: securefile-edu)
	TokenSecret string // Optional: HS256 key for session tokens (default: random per start)
	DatabaseDSN string // Optional: sqlite DSN (default: shared in-memory database)

	SessionTimeout time.Duration // Optional: inactivity countdown ceiling (default: 15m)
	SessionWarning time.Duration // Optional: warn this long before logout (default: 1m)
	AuthLatency    time.Duration // Optional: simulated verification delay (default: 1.5s)
	FeedInterval   time.Duration // Optional: synthetic event interval (default: 30s)
	FeedCapacity   int           // Optional: events kept in the feed (default: 20)
	UploadTick     time.Duration // Optional: upload progress tick (default: 150ms)
	UploadStep     int           // Optional: percent per upload tick (default: 5)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1m)
}

func LoadConfig() Config {
	return Config{
		Issuer:      getEnvOrDefault("SECUREFILE_ISSUER", "securefile-edu"),
		TokenSecret: os.Getenv("SECUREFILE_TOKEN_SECRET"),
		DatabaseDSN: getEnvOrDefault("SECUREFILE_DATABASE_DSN", "file:securefile?mode=memory&cache=shared"),

		SessionTimeout: getEnvDurationOrDefault("SECUREFILE_SESSION_TIMEOUT", service.DefaultSessionTimeout),
		SessionWarning: getEnvDurationOrDefault("SECUREFILE_SESSION_WARNING", service.DefaultSessionWarning),
		AuthLatency:    getEnvDurationOrDefault("SECUREFILE_AUTH_LATENCY", service.DefaultAuthLatency),
		FeedInterval:   getEnvDurationOrDefault("SECUREFILE_FEED_INTERVAL", service.DefaultFeedInterval),
		FeedCapacity:   getEnvIntOrDefault("SECUREFILE_FEED_CAPACITY", service.DefaultFeedCapacity),
		UploadTick:     getEnvDurationOrDefault("SECUREFILE_UPLOAD_TICK", service.DefaultUploadTick),
		UploadStep:     getEnvIntOrDefault("SECUREFILE_UPLOAD_STEP", service.DefaultUploadStep),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Minute),
	}
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
