// Package inference defines the external inference capability used by the
// real tool handlers. The backing model is a deployment detail; callers
// treat every method as an opaque blocking call.
package inference

import "context"

// Sentiment is a single-label sentiment classification.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Prediction is one image classification candidate.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client supplies sentiment classification, image classification,
// summarization and free-text generation.
type Client interface {
	// Sentiment classifies the sentiment of text.
	Sentiment(ctx context.Context, text string) (Sentiment, error)

	// ClassifyImage returns up to three predictions for a base64-encoded
	// image payload, ordered by descending score.
	ClassifyImage(ctx context.Context, imageB64 string) ([]Prediction, error)

	// Summarize shortens text without exceeding its length.
	Summarize(ctx context.Context, text string) (string, error)

	// Generate completes a free-text prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
