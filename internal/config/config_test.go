package config

import (
	"testing"
)

// TestLoadDefaults verifies the built-in defaults with a clean environment
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected default port 8081, got %s", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected development environment, got %s", cfg.Environment)
	}
	if !cfg.DemoMode {
		t.Error("Expected demo mode on by default")
	}
	if cfg.Storage.LocalPath != "./data/invoices" {
		t.Errorf("Expected default storage path, got %s", cfg.Storage.LocalPath)
	}
	if cfg.RateLimit.RequestsPerSecond != 100.0 {
		t.Errorf("Expected 100 rps default, got %v", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.RateLimit.Burst != 200 {
		t.Errorf("Expected burst 200 default, got %d", cfg.RateLimit.Burst)
	}
}

// TestLoadEnvironmentOverrides verifies environment variables win over
// defaults.
func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("RATE_LIMIT_BURST", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.DemoMode {
		t.Error("Expected demo mode off")
	}
	if cfg.RateLimit.Burst != 50 {
		t.Errorf("Expected burst 50, got %d", cfg.RateLimit.Burst)
	}
}

// TestGetEnvHelpers verifies the fallback helpers
func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_STRING", "value")
	if got := GetEnv("CFG_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("Expected 'value', got '%s'", got)
	}
	if got := GetEnv("CFG_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got '%s'", got)
	}

	t.Setenv("CFG_TEST_BOOL", "true")
	if !GetEnvAsBool("CFG_TEST_BOOL", false) {
		t.Error("Expected true from environment")
	}
	t.Setenv("CFG_TEST_BOOL", "not-a-bool")
	if !GetEnvAsBool("CFG_TEST_BOOL", true) {
		t.Error("Expected fallback for unparsable value")
	}
}
