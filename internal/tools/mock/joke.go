package mock

import (
	"context"
	"fmt"
	"strings"

	"ai-tools-go/internal/tools"
)

var jokeTemplates = []string{
	"Why did the {topic} cross the road? To get to the other side!",
	"What do you call a {topic} that can't stop talking? A chatter-{topic}!",
	"How many {topic}s does it take to change a lightbulb? Just one, but it takes forever!",
	"A {topic} walks into a bar. The bartender says, 'We don't serve {topic}s here!'",
	"What's a {topic}'s favorite type of music? Anything with a good beat!",
}

// JokeGenerator substitutes the topic into a random fixed template.
type JokeGenerator struct {
	rng *randSource
}

// NewJokeGenerator creates a new template-based joke tool.
func NewJokeGenerator(rng *randSource) *JokeGenerator {
	return &JokeGenerator{rng: rng}
}

// Name returns the name of the tool.
func (t *JokeGenerator) Name() string {
	return tools.NameJoke
}

// ProcessQuery produces a joke that always contains the input topic.
func (t *JokeGenerator) ProcessQuery(ctx context.Context, input string) (string, error) {
	template := jokeTemplates[t.rng.intn(len(jokeTemplates))]
	joke := strings.ReplaceAll(template, "{topic}", input)

	return fmt.Sprintf("Here's a funny joke about %s:\n%s", input, joke), nil
}
