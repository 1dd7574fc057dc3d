package telemetry

import (
	"context"
	"time"

	"ai-tools-go/internal/tools"
)

// RegistryWrapper wraps a tool registry to add telemetry
type RegistryWrapper struct {
	*tools.Registry
	metrics *Metrics
}

// NewRegistryWrapper creates a new telemetry-aware tool registry wrapper
func NewRegistryWrapper(registry *tools.Registry, metrics *Metrics) *RegistryWrapper {
	return &RegistryWrapper{
		Registry: registry,
		metrics:  metrics,
	}
}

// Process wraps the original Process to add telemetry
func (w *RegistryWrapper) Process(ctx context.Context, name, input string) (string, error) {
	start := time.Now()

	result, err := w.Registry.Process(ctx, name, input)

	duration := time.Since(start)
	status := "success"
	if err != nil {
		status = "error"
	}

	w.metrics.RecordToolExecution(name, status, duration)

	return result, err
}
