package dispatch

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"ai-tools-go/internal/tools"
)

// failingTool always returns the configured error
type failingTool struct {
	name string
	err  error
}

func (t *failingTool) Name() string { return t.name }

func (t *failingTool) ProcessQuery(ctx context.Context, input string) (string, error) {
	return "", t.err
}

// echoTool returns its input unchanged
type echoTool struct {
	name string
}

func (t *echoTool) Name() string { return t.name }

func (t *echoTool) ProcessQuery(ctx context.Context, input string) (string, error) {
	return input, nil
}

func TestDispatcher_Success(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(&echoTool{name: "joke"})
	dispatcher := NewDispatcher(registry, zerolog.Nop())

	resp, status := dispatcher.Dispatch(context.Background(), Request{Tool: "joke", Input: "penguins"})

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}
	if resp.Result != "penguins" {
		t.Errorf("Expected result penguins, got %q", resp.Result)
	}
	if resp.Error != "" {
		t.Errorf("Expected empty error, got %q", resp.Error)
	}
}

func TestDispatcher_UnknownTool(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(&echoTool{name: "joke"})
	dispatcher := NewDispatcher(registry, zerolog.Nop())

	resp, status := dispatcher.Dispatch(context.Background(), Request{Tool: "nonexistent", Input: "x"})

	if status != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", status)
	}
	if resp.Result != "" {
		t.Errorf("Expected empty result, got %q", resp.Result)
	}
	if !strings.Contains(resp.Error, "nonexistent") {
		t.Errorf("Expected error to mention the unknown tool name, got %q", resp.Error)
	}
}

func TestDispatcher_MissingToolField(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(&echoTool{name: "joke"})
	dispatcher := NewDispatcher(registry, zerolog.Nop())

	// An absent tool field dispatches the empty name, which is never registered
	_, status := dispatcher.Dispatch(context.Background(), Request{Input: "x"})

	if status != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", status)
	}
}

func TestDispatcher_HandlerFailure(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(&failingTool{
		name: "semantics",
		err:  tools.NewResourceUnavailableError("semantics", context.DeadlineExceeded),
	})
	dispatcher := NewDispatcher(registry, zerolog.Nop())

	resp, status := dispatcher.Dispatch(context.Background(), Request{Tool: "semantics", Input: "hello"})

	if status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", status)
	}
	if resp.Error == "" {
		t.Error("Expected error message in envelope")
	}
	if resp.Result != "" {
		t.Errorf("Expected empty result, got %q", resp.Result)
	}
}
