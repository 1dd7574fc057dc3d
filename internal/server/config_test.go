package server

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Addr != ":8080" {
		t.Errorf("Expected Addr to be :8080, got %s", cfg.Addr)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be 'info', got %s", cfg.LogLevel)
	}

	if cfg.Backend != BackendMock {
		t.Errorf("Expected Backend to be mock, got %s", cfg.Backend)
	}

	if cfg.MetricsInterval != 15*time.Second {
		t.Errorf("Expected MetricsInterval to be 15s, got %v", cfg.MetricsInterval)
	}

	if cfg.OpenAI.Timeout <= 0 {
		t.Error("OpenAI timeout should be positive")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfigValidate_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "quantum"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for unknown backend")
	}
}

func TestConfigValidate_OpenAIRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = BackendOpenAI

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error when openai backend has no API key")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected config with API key to validate, got %v", err)
	}
}

func TestConfigValidate_MetricsInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsInterval = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for zero metrics interval")
	}
}
