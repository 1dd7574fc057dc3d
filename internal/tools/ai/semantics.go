package ai

import (
	"context"
	"fmt"

	"ai-tools-go/internal/tools"
)

// SemanticsAnalyzer classifies the sentiment of free text.
type SemanticsAnalyzer struct {
	client *ClientSlot
}

// NewSemanticsAnalyzer creates a new sentiment analysis tool.
func NewSemanticsAnalyzer(client *ClientSlot) *SemanticsAnalyzer {
	return &SemanticsAnalyzer{client: client}
}

// Name returns the name of the tool.
func (t *SemanticsAnalyzer) Name() string {
	return tools.NameSemantics
}

// ProcessQuery analyzes the sentiment of the input text.
func (t *SemanticsAnalyzer) ProcessQuery(ctx context.Context, input string) (string, error) {
	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	sentiment, err := client.Sentiment(ctx, input)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	return fmt.Sprintf("Sentiment: %s (confidence: %.2f%%)", sentiment.Label, sentiment.Score*100), nil
}
