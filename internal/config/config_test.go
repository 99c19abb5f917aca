package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("MOCKTEST_TTL", "")
	t.Setenv("MOCKTEST_SWEEP_SCHEDULE", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected default provider gemini, got %q", cfg.Provider)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MongoDatabase != "hirehub" {
		t.Fatalf("expected default database hirehub, got %q", cfg.MongoDatabase)
	}
	if cfg.MockTestTTL != time.Hour {
		t.Fatalf("expected default TTL 1h, got %v", cfg.MockTestTTL)
	}
	if cfg.MockTestSweepSpec != "@hourly" {
		t.Fatalf("expected default sweep schedule @hourly, got %q", cfg.MockTestSweepSpec)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MOCKTEST_TTL", "30m")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.MockTestTTL != 30*time.Minute {
		t.Fatalf("expected TTL 30m, got %v", cfg.MockTestTTL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr, got %q", cfg.RedisAddr)
	}
}

func TestLoadConfigRejections(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}

	setBaseEnv(t)
	t.Setenv("AI_PROVIDER", "openai")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unsupported provider")
	}

	setBaseEnv(t)
	t.Setenv("MOCKTEST_TTL", "not-a-duration")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid TTL")
	}
}
