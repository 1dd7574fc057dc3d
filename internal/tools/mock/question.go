package mock

import (
	"context"
	"fmt"

	"ai-tools-go/internal/tools"
)

var cannedAnswers = []string{
	"Because that's how nature designed it to work.",
	"Because it helps maintain balance in the system.",
	"Because of scientific principles we're still discovering.",
	"Because that's what makes it unique and special.",
	"Because evolution favored this adaptation over time.",
}

// QuestionAnswerer answers questions with a random canned clause.
type QuestionAnswerer struct {
	rng *randSource
}

// NewQuestionAnswerer creates a new canned-answer question tool.
func NewQuestionAnswerer(rng *randSource) *QuestionAnswerer {
	return &QuestionAnswerer{rng: rng}
}

// Name returns the name of the tool.
func (t *QuestionAnswerer) Name() string {
	return tools.NameQuestion
}

// ProcessQuery echoes the question followed by an answer clause.
func (t *QuestionAnswerer) ProcessQuery(ctx context.Context, input string) (string, error) {
	answer := cannedAnswers[t.rng.intn(len(cannedAnswers))]
	return fmt.Sprintf("Question: %s\nAnswer: %s", input, answer), nil
}
