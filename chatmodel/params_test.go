package chatmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/settings"
)

func TestResolve_APIProvider(t *testing.T) {
	svc := settings.New()
	require.NoError(t, svc.SetAPIKey(provider.Groq, "gsk-test"))

	got := Resolve(svc, provider.Groq, "llama3-8b-8192")

	assert.Equal(t, Params{
		Provider:    provider.Groq,
		BaseURL:     "https://api.groq.com/openai/v1",
		APIKey:      "gsk-test",
		ModelName:   "llama3-8b-8192",
		MaxRetries:  settings.DefaultMaxRetries,
		Temperature: settings.DefaultTemperature,
		MaxTokens:   settings.DefaultMaxOutputTokens,
		Timeout:     60 * time.Second,
		TopP:        settings.DefaultTopP,
	}, got)
}

func TestResolve_LocalProvider(t *testing.T) {
	svc := settings.New()
	require.NoError(t, svc.SetBaseURL(provider.Ollama, "http://gpu:11434/"))

	got := Resolve(svc, provider.Ollama, "llama3:8b")

	assert.Equal(t, "http://gpu:11434/", got.BaseURL)
	assert.Empty(t, got.APIKey)
	assert.Equal(t, "llama3:8b", got.ModelName)
}

func TestResolve_ForwardsValuesVerbatim(t *testing.T) {
	svc := settings.New()
	svc.SetGeneration(settings.Generation{
		Temperature:     5,
		TopP:            -1,
		Timeout:         0,
		MaxRetries:      -3,
		MaxOutputTokens: 0,
	})

	got := Resolve(svc, provider.OpenAI, "")

	assert.Equal(t, 5.0, got.Temperature)
	assert.Equal(t, -1.0, got.TopP)
	assert.Equal(t, time.Duration(0), got.Timeout)
	assert.Equal(t, -3, got.MaxRetries)
	assert.Equal(t, "", got.ModelName)
}

type staticSource struct{}

func (staticSource) APIKey(provider.Provider) string  { return "key" }
func (staticSource) BaseURL(provider.Provider) string { return "http://stub" }
func (staticSource) Generation() settings.Generation {
	return settings.Generation{Temperature: 0.2, Timeout: time.Second}
}

func TestResolve_CustomSource(t *testing.T) {
	got := Resolve(staticSource{}, provider.Mistral, "mistral-small")

	assert.Equal(t, "key", got.APIKey)
	assert.Equal(t, "http://stub", got.BaseURL)
	assert.Equal(t, 0.2, got.Temperature)
	assert.Equal(t, time.Second, got.Timeout)
}

func TestModelNames(t *testing.T) {
	assert.Equal(t,
		[]string{"gemma-7b-it", "llama3-8b-8192", "llama3-70b-8192", "llama2-70b-4096", "mixtral-8x7b-32768"},
		ModelNames(provider.Groq))

	for _, p := range provider.LocalProviders() {
		assert.Empty(t, ModelNames(p), p.Name())
	}
	for _, p := range provider.APIBasedProviders() {
		assert.NotEmpty(t, ModelNames(p), p.Name())
	}
}
