package server

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ai-tools-go/internal/dispatch"
	"ai-tools-go/internal/inference"
	"ai-tools-go/internal/telemetry"
	"ai-tools-go/internal/tools"
	"ai-tools-go/internal/tools/ai"
	"ai-tools-go/internal/tools/mock"
)

// New creates a new HTTP handler with the given configuration.
func New(cfg Config, logger zerolog.Logger, metrics *telemetry.Metrics) (http.Handler, error) {
	toolSet, err := buildToolSet(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Build the registry once at startup; it is never mutated afterward.
	registry := tools.NewRegistry()
	for _, tool := range toolSet {
		registry.Register(tool)
		logger.Info().
			Str("tool", tool.Name()).
			Str("backend", cfg.Backend).
			Msg("Registered tool")
	}

	wrapped := telemetry.NewRegistryWrapper(registry, metrics)
	dispatcher := dispatch.NewDispatcher(wrapped, logger)

	// Create router
	r := chi.NewRouter()

	// Add middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(telemetry.HTTPMetricsMiddleware(metrics))

	// Enable CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Add routes
	r.Post("/api/process", dispatcher.Process)
	r.Get("/api/health", dispatcher.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}

// buildToolSet constructs the handler set for the configured backend.
func buildToolSet(cfg Config, logger zerolog.Logger) ([]tools.Tool, error) {
	switch cfg.Backend {
	case BackendMock:
		seed := cfg.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Info().Int64("seed", seed).Msg("Using mock tool backend")
		return mock.NewToolSet(rand.New(rand.NewSource(seed))), nil

	case BackendOpenAI:
		// The client handle is created lazily on first use so the server
		// starts even when the inference backend is briefly unreachable.
		slot := ai.NewClientSlot(func(ctx context.Context) (inference.Client, error) {
			return inference.NewOpenAIClient(inference.OpenAIOptions{
				APIKey:  cfg.OpenAI.APIKey,
				Model:   cfg.OpenAI.Model,
				BaseURL: cfg.OpenAI.BaseURL,
				Timeout: cfg.OpenAI.Timeout,
			}, logger)
		})
		logger.Info().Str("model", cfg.OpenAI.Model).Msg("Using openai tool backend")
		return ai.NewToolSet(slot), nil

	default:
		return nil, fmt.Errorf("unknown tools backend %q", cfg.Backend)
	}
}
