package dispatch

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"ai-tools-go/internal/tools"
)

// Registry is the tool lookup the dispatcher routes requests through.
type Registry interface {
	Process(ctx context.Context, name, input string) (string, error)
	Names() []string
}

// Request is a single tool invocation request.
type Request struct {
	Tool  string `json:"tool"`
	Input string `json:"input"`
}

// Response is the envelope returned for every tool invocation: exactly one
// of Result or Error is set.
type Response struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse reports process liveness and the fixed set of registered
// tool names.
type HealthResponse struct {
	Status         string   `json:"status"`
	AvailableTools []string `json:"available_tools"`
}

// Dispatcher routes a request to the named tool and normalizes its result
// or error into a response envelope. Errors never escape this boundary.
type Dispatcher struct {
	registry Registry
	logger   zerolog.Logger
}

// NewDispatcher creates a new request dispatcher.
func NewDispatcher(registry Registry, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch invokes the named tool and returns the response envelope with
// the HTTP status to report: 400 for a request naming an unregistered tool,
// 500 for a handler failure, 200 otherwise.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Response, int) {
	result, err := d.registry.Process(ctx, req.Tool, req.Input)
	if err != nil {
		if tools.IsUnknownTool(err) {
			d.logger.Warn().
				Str("tool", req.Tool).
				Msg("Request for unknown tool")
			return Response{Error: errorMessage(err)}, http.StatusBadRequest
		}

		d.logger.Error().
			Err(err).
			Str("tool", req.Tool).
			Str("error_code", tools.ErrorCode(err)).
			Msg("Tool invocation failed")
		return Response{Error: err.Error()}, http.StatusInternalServerError
	}

	d.logger.Debug().
		Str("tool", req.Tool).
		Int("result_length", len(result)).
		Msg("Tool invocation succeeded")

	return Response{Result: result}, http.StatusOK
}

// errorMessage prefers the bare message of a tool error over its code-
// prefixed Error() form for client-facing envelopes.
func errorMessage(err error) string {
	var toolErr *tools.Error
	if errors.As(err, &toolErr) {
		return toolErr.Message
	}
	return err.Error()
}
