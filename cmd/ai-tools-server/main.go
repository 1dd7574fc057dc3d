package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"ai-tools-go/internal/server"
	"ai-tools-go/internal/telemetry"
)

func main() {
	// Configuration
	cfg, err := server.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()

	logger.Info().
		Str("backend", cfg.Backend).
		Str("log_level", level.String()).
		Msg("Starting AI tools server")

	// Metrics
	metrics := telemetry.NewMetrics()

	// Create server
	handler, err := server.New(cfg, logger, metrics)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create server")
	}

	// System metrics collection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := telemetry.NewSystemMetricsCollector(metrics, logger, cfg.MetricsInterval)
	go collector.Start(ctx)
	defer collector.Stop()

	// Start server
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("Starting server")
		errCh <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
