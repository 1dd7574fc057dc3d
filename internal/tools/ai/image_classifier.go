package ai

import (
	"context"
	"fmt"
	"strings"

	"ai-tools-go/internal/tools"
)

// ImageClassifier describes what is in an image payload.
type ImageClassifier struct {
	client *ClientSlot
}

// NewImageClassifier creates a new image classification tool.
func NewImageClassifier(client *ClientSlot) *ImageClassifier {
	return &ImageClassifier{client: client}
}

// Name returns the name of the tool.
func (t *ImageClassifier) Name() string {
	return tools.NameImageClassifier
}

// ProcessQuery classifies a base64-encoded image payload and returns the
// top predictions, one line per label, in descending score order.
func (t *ImageClassifier) ProcessQuery(ctx context.Context, input string) (string, error) {
	if _, err := tools.DecodeImagePayload(input); err != nil {
		return "", tools.NewInvalidInputError(t.Name(), "image payload is not valid base64")
	}

	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	predictions, err := client.ClassifyImage(ctx, input)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	var sb strings.Builder
	sb.WriteString("I see:\n")
	for _, pred := range predictions {
		fmt.Fprintf(&sb, "- %s: %.2f%%\n", pred.Label, pred.Score*100)
	}

	return sb.String(), nil
}
