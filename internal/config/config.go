package config

import (
	"errors"
	"os"
	"time"
)

// service configuration, loaded from environment variables
type Config struct {
	Provider  string
	Port      string
	JWTSecret string

	// Interview session persistence. Empty means the in-memory repository
	// is used (local development and tests).
	MongoURI      string
	MongoDatabase string

	// Mock-test session store. Empty means the in-process store is used;
	// sessions then do not survive a restart, which is acceptable given the
	// one-hour expiry policy.
	RedisAddr string

	MockTestTTL       time.Duration
	MockTestSweepSpec string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("MOCKTEST_TTL", "1h"))
	if err != nil {
		return nil, errors.New("invalid MOCKTEST_TTL: " + err.Error())
	}

	config := &Config{
		Provider:          getEnvOrDefault("AI_PROVIDER", "gemini"),
		Port:              getEnvOrDefault("PORT", "8080"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnvOrDefault("MONGO_DB_NAME", "hirehub"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		MockTestTTL:       ttl,
		MockTestSweepSpec: getEnvOrDefault("MOCKTEST_SWEEP_SCHEDULE", "@hourly"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	if config.MockTestTTL <= 0 {
		return errors.New("MOCKTEST_TTL must be positive")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
