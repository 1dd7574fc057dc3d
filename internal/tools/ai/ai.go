// Package ai contains the tool handlers backed by a real inference
// capability. Each handler shares one lazily initialized inference client:
// the client handle is created on first use and reused for the process
// lifetime.
package ai

import (
	"context"

	"ai-tools-go/internal/inference"
	"ai-tools-go/internal/lazy"
	"ai-tools-go/internal/tools"
)

// ClientSlot guards the shared inference client so at most one
// initialization occurs even under concurrent first use.
type ClientSlot = lazy.Slot[inference.Client]

// NewClientSlot wraps an inference client factory in a lazy slot.
func NewClientSlot(init func(ctx context.Context) (inference.Client, error)) *ClientSlot {
	return lazy.NewSlot(init)
}

// NewToolSet returns the six inference-backed tool handlers sharing the
// given client slot.
func NewToolSet(client *ClientSlot) []tools.Tool {
	return []tools.Tool{
		NewSemanticsAnalyzer(client),
		NewImageClassifier(client),
		NewTextSummarizer(client),
		NewJokeGenerator(client),
		NewHaikuWriter(client),
		NewQuestionAnswerer(client),
	}
}

// classify converts an inference failure into the tool error taxonomy:
// unreachable backends surface as resource errors, everything else as a
// processing failure.
func classify(tool string, err error) error {
	if inference.IsUnavailable(err) {
		return tools.NewResourceUnavailableError(tool, err)
	}
	return tools.NewProcessingError(tool, err)
}

// acquire fetches the shared inference client, reporting initialization
// failures as resource errors for the named tool.
func acquire(ctx context.Context, tool string, slot *ClientSlot) (inference.Client, error) {
	client, err := slot.Acquire(ctx)
	if err != nil {
		return nil, tools.NewResourceUnavailableError(tool, err)
	}
	return client, nil
}
