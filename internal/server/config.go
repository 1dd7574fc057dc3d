package server

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Tool backend selection. The two backends register the same six tool
// names; callers cannot tell them apart from the response shape.
const (
	BackendMock   = "mock"
	BackendOpenAI = "openai"
)

// Config contains the server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string `envconfig:"ADDR" default:":8080"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Backend selects the tool handler set: "mock" or "openai".
	Backend string `envconfig:"TOOLS_BACKEND" default:"mock"`

	// RandomSeed seeds the mock handlers' random source. Zero means seed
	// from the clock; a fixed value makes randomized output reproducible.
	RandomSeed int64 `envconfig:"TOOLS_RANDOM_SEED" default:"0"`

	// MetricsInterval is how often system metrics are collected.
	MetricsInterval time.Duration `envconfig:"METRICS_INTERVAL" default:"15s"`

	OpenAI OpenAIConfig
}

// OpenAIConfig configures the inference collaborator for the openai backend.
type OpenAIConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY"`
	Model   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	BaseURL string        `envconfig:"OPENAI_BASE_URL"`
	Timeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"30s"`
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		Backend:         BackendMock,
		MetricsInterval: 15 * time.Second,
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present, which is useful for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMock:
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("backend %q requires OPENAI_API_KEY", c.Backend)
		}
	default:
		return fmt.Errorf("unknown tools backend %q", c.Backend)
	}

	if c.MetricsInterval <= 0 {
		return fmt.Errorf("metrics interval must be positive, got %v", c.MetricsInterval)
	}

	return nil
}
