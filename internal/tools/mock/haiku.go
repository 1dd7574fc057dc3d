package mock

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"ai-tools-go/internal/tools"
)

var haikuTemplates = []string{
	"{topic} shines bright\nIn the quiet morning light\nPeace fills the new day",
	"Dancing {topic}\nWhispers secrets to the wind\nNature's gentle song",
	"{topic} stands tall\nSilent witness to the world\nTimeless and serene",
}

// HaikuWriter substitutes the topic into a random fixed three-line template.
type HaikuWriter struct {
	rng *randSource
}

// NewHaikuWriter creates a new template-based haiku tool.
func NewHaikuWriter(rng *randSource) *HaikuWriter {
	return &HaikuWriter{rng: rng}
}

// Name returns the name of the tool.
func (t *HaikuWriter) Name() string {
	return tools.NameHaiku
}

// ProcessQuery produces a three-line haiku referencing the input topic.
func (t *HaikuWriter) ProcessQuery(ctx context.Context, input string) (string, error) {
	template := haikuTemplates[t.rng.intn(len(haikuTemplates))]
	haiku := strings.ReplaceAll(template, "{topic}", capitalize(input))

	return fmt.Sprintf("Write a haiku (5-7-5 syllables) about %s:\n%s", input, haiku), nil
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
