package mock

import (
	"context"
	"strings"

	"ai-tools-go/internal/tools"
)

// TextSummarizer shortens text by keeping the leading sentences.
type TextSummarizer struct{}

// NewTextSummarizer creates a new extractive summarization tool.
func NewTextSummarizer() *TextSummarizer {
	return &TextSummarizer{}
}

// Name returns the name of the tool.
func (t *TextSummarizer) Name() string {
	return tools.NameSummarizer
}

// ProcessQuery keeps roughly the first third of the input's sentences,
// at least one and at most three. The output never exceeds the input.
func (t *TextSummarizer) ProcessQuery(ctx context.Context, input string) (string, error) {
	sentences := splitSentences(input)
	if len(sentences) == 0 {
		return "", tools.NewInvalidInputError(t.Name(), "nothing to summarize")
	}

	count := len(sentences) / 3
	if count < 1 {
		count = 1
	}
	if count > 3 {
		count = 3
	}

	return strings.Join(sentences[:count], ". ") + ".", nil
}

// splitSentences splits text on sentence terminators, dropping empty parts.
func splitSentences(text string) []string {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(text)

	var sentences []string
	for _, part := range strings.Split(normalized, ".") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
