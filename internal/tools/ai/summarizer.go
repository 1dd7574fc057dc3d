package ai

import (
	"context"
	"strings"

	"ai-tools-go/internal/tools"
)

// TextSummarizer shortens long text.
type TextSummarizer struct {
	client *ClientSlot
}

// NewTextSummarizer creates a new summarization tool.
func NewTextSummarizer(client *ClientSlot) *TextSummarizer {
	return &TextSummarizer{client: client}
}

// Name returns the name of the tool.
func (t *TextSummarizer) Name() string {
	return tools.NameSummarizer
}

// ProcessQuery summarizes the input text. The result is never longer than
// the input.
func (t *TextSummarizer) ProcessQuery(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", tools.NewInvalidInputError(t.Name(), "nothing to summarize")
	}

	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	summary, err := client.Summarize(ctx, input)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	return summary, nil
}
