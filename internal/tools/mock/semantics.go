package mock

import (
	"context"
	"fmt"
	"strings"

	"ai-tools-go/internal/tools"
)

// SemanticsAnalyzer classifies sentiment by counting hits against fixed
// positive and negative word sets.
type SemanticsAnalyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewSemanticsAnalyzer creates a new keyword-based sentiment tool.
func NewSemanticsAnalyzer() *SemanticsAnalyzer {
	return &SemanticsAnalyzer{
		positive: wordSet("good", "great", "excellent", "amazing", "wonderful", "happy", "love", "best", "fantastic"),
		negative: wordSet("bad", "terrible", "awful", "horrible", "hate", "worst", "poor", "sad", "disappointing"),
	}
}

// Name returns the name of the tool.
func (t *SemanticsAnalyzer) Name() string {
	return tools.NameSemantics
}

// ProcessQuery labels the input POSITIVE, NEGATIVE or NEUTRAL. Confidence
// grows with the number of distinct matched words, capped at 95%; neutral
// input is reported at exactly 50%.
func (t *SemanticsAnalyzer) ProcessQuery(ctx context.Context, input string) (string, error) {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(input)) {
		words[word] = struct{}{}
	}

	var posCount, negCount int
	for word := range words {
		if _, ok := t.positive[word]; ok {
			posCount++
		}
		if _, ok := t.negative[word]; ok {
			negCount++
		}
	}

	var label string
	var confidence float64
	switch {
	case posCount > negCount:
		label = "POSITIVE"
		confidence = cappedConfidence(posCount)
	case negCount > posCount:
		label = "NEGATIVE"
		confidence = cappedConfidence(negCount)
	default:
		label = "NEUTRAL"
		confidence = 0.50
	}

	return fmt.Sprintf("Sentiment: %s (confidence: %.2f%%)", label, confidence*100), nil
}

func cappedConfidence(hits int) float64 {
	confidence := 0.60 + float64(hits)*0.10
	if confidence > 0.95 {
		return 0.95
	}
	return confidence
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
