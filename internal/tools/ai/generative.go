package ai

import (
	"context"
	"fmt"

	"ai-tools-go/internal/tools"
)

// JokeGenerator produces a joke about a topic.
type JokeGenerator struct {
	client *ClientSlot
}

// NewJokeGenerator creates a new joke generation tool.
func NewJokeGenerator(client *ClientSlot) *JokeGenerator {
	return &JokeGenerator{client: client}
}

// Name returns the name of the tool.
func (t *JokeGenerator) Name() string {
	return tools.NameJoke
}

// ProcessQuery generates a joke about the input topic. The returned text
// keeps the generation prompt as its first line, so the topic always
// appears in the result.
func (t *JokeGenerator) ProcessQuery(ctx context.Context, input string) (string, error) {
	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Here's a funny joke about %s:\n", input)
	joke, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	return prompt + joke, nil
}

// HaikuWriter produces a three-line haiku about a topic.
type HaikuWriter struct {
	client *ClientSlot
}

// NewHaikuWriter creates a new haiku writing tool.
func NewHaikuWriter(client *ClientSlot) *HaikuWriter {
	return &HaikuWriter{client: client}
}

// Name returns the name of the tool.
func (t *HaikuWriter) Name() string {
	return tools.NameHaiku
}

// ProcessQuery writes a haiku about the input topic.
func (t *HaikuWriter) ProcessQuery(ctx context.Context, input string) (string, error) {
	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Write a haiku (5-7-5 syllables) about %s:\n", input)
	haiku, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	return prompt + haiku, nil
}

// QuestionAnswerer answers "why" questions.
type QuestionAnswerer struct {
	client *ClientSlot
}

// NewQuestionAnswerer creates a new question answering tool.
func NewQuestionAnswerer(client *ClientSlot) *QuestionAnswerer {
	return &QuestionAnswerer{client: client}
}

// Name returns the name of the tool.
func (t *QuestionAnswerer) Name() string {
	return tools.NameQuestion
}

// ProcessQuery answers the input question. The result echoes the question
// followed by an answer clause.
func (t *QuestionAnswerer) ProcessQuery(ctx context.Context, input string) (string, error) {
	client, err := acquire(ctx, t.Name(), t.client)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Question: %s\nAnswer: Because", input)
	answer, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", classify(t.Name(), err)
	}

	return prompt + " " + answer, nil
}
