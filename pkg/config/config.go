package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/platinummonkey/bookstand/pkg/observability"
	"github.com/platinummonkey/bookstand/pkg/reviews"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Auth configuration
	Auth AuthConfig

	// Review policy configuration
	Reviews ReviewsConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Health/metrics server (separate port for probes)
	HealthPort string
}

// AuthConfig holds token issuance settings. The signing secret is injected
// here, never a literal in code.
type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// ReviewsConfig selects the per-user review policy
type ReviewsConfig struct {
	Policy reviews.Policy
	Cap    int
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("BOOKSTAND_HOST", "0.0.0.0"),
			Port:            getEnv("BOOKSTAND_PORT", "8080"),
			ReadTimeout:     getEnvDuration("BOOKSTAND_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("BOOKSTAND_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("BOOKSTAND_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("BOOKSTAND_SHUTDOWN_TIMEOUT", 30*time.Second),
			HealthPort:      getEnv("BOOKSTAND_HEALTH_PORT", "9090"),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("BOOKSTAND_TOKEN_SECRET", ""),
			TokenTTL:    getEnvDuration("BOOKSTAND_TOKEN_TTL", time.Hour),
		},
		Reviews: ReviewsConfig{
			Policy: reviews.Policy(getEnv("BOOKSTAND_REVIEW_POLICY", string(reviews.PolicyCappedAppend))),
			Cap:    getEnvInt("BOOKSTAND_REVIEW_CAP", reviews.DefaultCap),
		},
		Observability: ObservabilityConfig{
			LogLevel:       parseLogLevel(getEnv("BOOKSTAND_LOG_LEVEL", "info")),
			MetricsEnabled: getEnvBool("BOOKSTAND_METRICS_ENABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.HealthPort == "" {
		return fmt.Errorf("health port is required")
	}
	if c.Server.Port == c.Server.HealthPort {
		return fmt.Errorf("server port and health port must be different")
	}

	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("BOOKSTAND_TOKEN_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if _, err := reviews.ParsePolicy(string(c.Reviews.Policy)); err != nil {
		return err
	}
	if c.Reviews.Policy == reviews.PolicyCappedAppend && c.Reviews.Cap < 1 {
		return fmt.Errorf("review cap must be at least 1 under the capped policy")
	}

	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
