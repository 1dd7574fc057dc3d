package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/rs/zerolog"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second

	maxPredictions = 3
)

// OpenAIOptions configures the OpenAI-backed inference client.
type OpenAIOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAIClient implements Client using the OpenAI chat completions API.
type OpenAIClient struct {
	api     openai.Client
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

// Ensure OpenAIClient implements Client
var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a new OpenAI-backed inference client.
func NewOpenAIClient(opts OpenAIOptions, logger zerolog.Logger) (*OpenAIClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai API key is required")
	}

	cfg := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg = append(cfg, option.WithBaseURL(strings.TrimRight(base, "/")))
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &OpenAIClient{
		api:     openai.NewClient(cfg...),
		model:   model,
		timeout: timeout,
		logger:  logger.With().Str("component", "openai_client").Str("model", model).Logger(),
	}, nil
}

// Sentiment classifies the sentiment of text.
func (c *OpenAIClient) Sentiment(ctx context.Context, text string) (Sentiment, error) {
	const system = `You are a sentiment classifier. Respond with a JSON object ` +
		`{"label": "POSITIVE"|"NEGATIVE"|"NEUTRAL", "score": <confidence between 0 and 1>} and nothing else.`

	raw, err := c.complete(ctx, system, text)
	if err != nil {
		return Sentiment{}, err
	}

	var result Sentiment
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		return Sentiment{}, fmt.Errorf("unexpected sentiment response %q: %w", raw, err)
	}

	result.Label = strings.ToUpper(strings.TrimSpace(result.Label))
	switch result.Label {
	case "POSITIVE", "NEGATIVE", "NEUTRAL":
	default:
		return Sentiment{}, fmt.Errorf("unexpected sentiment label %q", result.Label)
	}

	return result, nil
}

// ClassifyImage returns up to three predictions for a base64-encoded image
// payload, ordered by descending score.
func (c *OpenAIClient) ClassifyImage(ctx context.Context, imageB64 string) ([]Prediction, error) {
	const instruction = `Classify the main subjects of this image. Respond with a JSON array of at ` +
		`most 3 objects like [{"label": "cat", "score": 0.87}] sorted by descending score and nothing else.`

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(instruction),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageDataURL(imageB64),
				}),
			}),
		},
	})
	if err != nil {
		return nil, wrapAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	var predictions []Prediction
	raw := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(extractJSON(raw)), &predictions); err != nil {
		return nil, fmt.Errorf("unexpected classification response %q: %w", raw, err)
	}
	if len(predictions) == 0 {
		return nil, errors.New("classification returned no predictions")
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})
	if len(predictions) > maxPredictions {
		predictions = predictions[:maxPredictions]
	}

	return predictions, nil
}

// Summarize shortens text without exceeding its length.
func (c *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	const system = `Summarize the user's text in at most three sentences. The summary must be ` +
		`shorter than the original text. Respond with the summary only.`

	summary, err := c.complete(ctx, system, text)
	if err != nil {
		return "", err
	}

	summary = strings.TrimSpace(summary)
	// The output contract requires the summary to never exceed the input.
	for len(summary) > len(text) {
		_, size := utf8.DecodeLastRuneInString(summary)
		summary = strings.TrimSpace(summary[:len(summary)-size])
	}
	return summary, nil
}

// Generate completes a free-text prompt.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.8),
		MaxCompletionTokens: openai.Int(200),
	})
	if err != nil {
		return "", wrapAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", wrapAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	c.logger.Debug().
		Int("prompt_length", len(user)).
		Int("completion_length", len(resp.Choices[0].Message.Content)).
		Msg("Chat completion finished")

	return resp.Choices[0].Message.Content, nil
}

// wrapAPIError annotates API errors with their HTTP status code.
func wrapAPIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return fmt.Errorf("openai API error (%d): %w", apiErr.StatusCode, err)
	}
	return err
}

// IsUnavailable reports whether err indicates the inference backend could
// not be reached at all, as opposed to rejecting a particular request.
func IsUnavailable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusTooManyRequests
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// imageDataURL wraps a bare base64 payload in a data URI; payloads that
// already carry a data: prefix pass through unchanged.
func imageDataURL(imageB64 string) string {
	if strings.HasPrefix(imageB64, "data:") {
		return imageB64
	}
	return "data:image/jpeg;base64," + imageB64
}

// extractJSON trims any prose or code fences around a JSON value.
func extractJSON(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return s
	}
	return s[start : end+1]
}
