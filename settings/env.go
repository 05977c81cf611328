package settings

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/randalmurphal/llmconf/model"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnv.
const EnvPrefix = "LLMCONF_"

// LoadFromEnv populates snapshot fields from environment variables.
// Variables take precedence over existing values; unparsable numbers are
// ignored.
//
// Supported variables:
//   - LLMCONF_OPENAI_API_KEY, LLMCONF_ANTHROPIC_API_KEY, LLMCONF_MISTRAL_API_KEY,
//     LLMCONF_GROQ_API_KEY, LLMCONF_DEEPINFRA_API_KEY, LLMCONF_GEMINI_API_KEY
//   - LLMCONF_OLLAMA_URL, LLMCONF_LMSTUDIO_URL, LLMCONF_GPT4ALL_URL,
//     LLMCONF_JAN_URL, LLMCONF_EXO_URL, LLMCONF_LLAMACPP_URL
//   - LLMCONF_TEMPERATURE, LLMCONF_TOP_P
//   - LLMCONF_TIMEOUT: seconds ("90") or a duration ("1m30s")
//   - LLMCONF_MAX_RETRIES, LLMCONF_MAX_OUTPUT_TOKENS, LLMCONF_CHAT_MEMORY_SIZE,
//     LLMCONF_DEFAULT_WINDOW_CONTEXT
//   - LLMCONF_STREAM_MODE: "true" or "1"
func (s *State) LoadFromEnv() {
	strs := map[string]*string{
		"OPENAI_API_KEY":    &s.OpenAIKey,
		"ANTHROPIC_API_KEY": &s.AnthropicKey,
		"MISTRAL_API_KEY":   &s.MistralKey,
		"GROQ_API_KEY":      &s.GroqKey,
		"DEEPINFRA_API_KEY": &s.DeepInfraKey,
		"GEMINI_API_KEY":    &s.GeminiKey,
		"OLLAMA_URL":        &s.OllamaModelURL,
		"LMSTUDIO_URL":      &s.LMStudioModelURL,
		"GPT4ALL_URL":       &s.GPT4AllModelURL,
		"JAN_URL":           &s.JanModelURL,
		"EXO_URL":           &s.ExoModelURL,
		"LLAMACPP_URL":      &s.LlamaCPPURL,
	}
	for name, field := range strs {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*field = v
		}
	}

	floats := map[string]*float64{
		"TEMPERATURE": &s.Temperature,
		"TOP_P":       &s.TopP,
	}
	for name, field := range floats {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*field = f
			}
		}
	}

	ints := map[string]*int{
		"MAX_RETRIES":            &s.MaxRetries,
		"MAX_OUTPUT_TOKENS":      &s.MaxOutputTokens,
		"CHAT_MEMORY_SIZE":       &s.ChatMemorySize,
		"DEFAULT_WINDOW_CONTEXT": &s.DefaultWindowContext,
	}
	for name, field := range ints {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*field = n
			}
		}
	}

	if v := os.Getenv(EnvPrefix + "TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Timeout = n
		} else if d, err := time.ParseDuration(v); err == nil {
			s.Timeout = int(d / time.Second)
		}
	}
	if v := os.Getenv(EnvPrefix + "STREAM_MODE"); v == "true" || v == "1" {
		s.StreamMode = true
	}
}

// Validate checks value ranges. The Service never calls it; resolution and
// mutation accept any value. Callers that accept user input (forms, CLI)
// validate before saving.
func (s *State) Validate() error {
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2], got %v", s.Temperature)
	}
	if s.TopP < 0 || s.TopP > 1 {
		return fmt.Errorf("topP must be within [0, 1], got %v", s.TopP)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %d", s.Timeout)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must be >= 0, got %d", s.MaxRetries)
	}
	if s.MaxOutputTokens < 0 {
		return fmt.Errorf("maxOutputTokens must be >= 0, got %d", s.MaxOutputTokens)
	}
	if s.ChatMemorySize < 0 {
		return fmt.Errorf("chatMemorySize must be >= 0, got %d", s.ChatMemorySize)
	}
	if s.DefaultWindowContext <= 0 {
		return fmt.Errorf("defaultWindowContext must be > 0, got %d", s.DefaultWindowContext)
	}

	names := make(map[string]bool, len(s.CustomPrompts))
	for _, p := range s.CustomPrompts {
		if p.Name == "" {
			return ErrEmptyPromptName
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate custom prompt %q", p.Name)
		}
		names[p.Name] = true
	}

	for raw, v := range s.ModelInputCosts {
		if err := validateCost("modelInputCosts", raw, v); err != nil {
			return err
		}
	}
	for raw, v := range s.ModelOutputCosts {
		if err := validateCost("modelOutputCosts", raw, v); err != nil {
			return err
		}
	}
	for raw, v := range s.ModelWindowContexts {
		if _, err := model.ParseCostKey(raw); err != nil {
			return fmt.Errorf("modelWindowContexts: %w", err)
		}
		if v < 0 {
			return fmt.Errorf("modelWindowContexts[%s] must be >= 0, got %d", raw, v)
		}
	}
	return nil
}

func validateCost(field, raw string, v float64) error {
	if _, err := model.ParseCostKey(raw); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if v < 0 {
		return fmt.Errorf("%s[%s] must be >= 0, got %v", field, raw, v)
	}
	return nil
}
