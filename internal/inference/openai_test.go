package inference

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIOptions{}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewOpenAIClient_Defaults(t *testing.T) {
	client, err := NewOpenAIClient(OpenAIOptions{APIKey: "sk-test"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultTimeout, client.timeout)
}

func TestNewOpenAIClient_Overrides(t *testing.T) {
	client, err := NewOpenAIClient(OpenAIOptions{
		APIKey:  "sk-test",
		Model:   "gpt-4o",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.model)
	assert.Equal(t, 5*time.Second, client.timeout)
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		`{"label":"POSITIVE","score":0.9}`:                          `{"label":"POSITIVE","score":0.9}`,
		"```json\n{\"label\":\"NEUTRAL\",\"score\":0.5}\n```":       `{"label":"NEUTRAL","score":0.5}`,
		`Sure! Here it is: [{"label":"cat","score":0.87}] Enjoy.`:   `[{"label":"cat","score":0.87}]`,
		"no json here":                                              "no json here",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, extractJSON(input))
	}
}

func TestImageDataURL(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", imageDataURL("aGVsbG8="))

	// Payloads that already carry a prefix pass through unchanged
	uri := "data:image/png;base64,aGVsbG8="
	assert.Equal(t, uri, imageDataURL(uri))
}
