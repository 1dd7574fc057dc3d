package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"ai-tools-go/internal/tools"
)

// candidate is a fixed image classification label with its canned score.
type candidate struct {
	label string
	score float64
}

var imageCandidates = []candidate{
	{"cat", 0.87},
	{"dog", 0.72},
	{"bird", 0.65},
	{"landscape", 0.78},
	{"food", 0.81},
	{"person", 0.69},
}

// ImageClassifier fabricates predictions by sampling three labels from a
// fixed candidate set.
type ImageClassifier struct {
	rng *randSource
}

// NewImageClassifier creates a new mock image classification tool.
func NewImageClassifier(rng *randSource) *ImageClassifier {
	return &ImageClassifier{rng: rng}
}

// Name returns the name of the tool.
func (t *ImageClassifier) Name() string {
	return tools.NameImageClassifier
}

// ProcessQuery returns exactly three label lines in descending score order.
// The payload is still decoded so malformed input fails the same way as in
// the inference-backed variant.
func (t *ImageClassifier) ProcessQuery(ctx context.Context, input string) (string, error) {
	if _, err := tools.DecodeImagePayload(input); err != nil {
		return "", tools.NewInvalidInputError(t.Name(), "image payload is not valid base64")
	}

	order := t.rng.perm(len(imageCandidates))
	selected := make([]candidate, 0, 3)
	for _, idx := range order[:3] {
		selected = append(selected, imageCandidates[idx])
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].score > selected[j].score
	})

	var sb strings.Builder
	sb.WriteString("I see:\n")
	for _, pred := range selected {
		fmt.Fprintf(&sb, "- %s: %.2f%%\n", pred.label, pred.score*100)
	}

	return sb.String(), nil
}
