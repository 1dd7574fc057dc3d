package tools

import "context"

// Tool is the interface that all tools must implement.
type Tool interface {
	// Name returns the name of the tool as it appears in the registry.
	Name() string

	// ProcessQuery processes a single string input and returns a single
	// string result. For the image classifier the input is an image
	// payload encoded as base64 text.
	ProcessQuery(ctx context.Context, input string) (string, error)
}

// Registered tool names. The registry is built once at startup with
// exactly these six entries.
const (
	NameSemantics       = "semantics"
	NameImageClassifier = "image-classifier"
	NameSummarizer      = "summarizer"
	NameJoke            = "joke"
	NameHaiku           = "haiku"
	NameQuestion        = "question"
)
