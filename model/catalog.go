package model

import "github.com/randalmurphal/llmconf/provider"

// defaultModels lists the model names offered for each API provider,
// in the order a picker should show them. Local providers discover their
// models at runtime and have no built-in list.
var defaultModels = map[provider.Provider][]string{
	provider.OpenAI: {
		"gpt-4o", "gpt-4-turbo-preview", "gpt-4", "gpt-3.5-turbo",
	},
	provider.Anthropic: {
		"claude-3-5-sonnet-20240620", "claude-3-opus-20240229",
		"claude-3-sonnet-20240229", "claude-3-haiku-20240307",
	},
	provider.Mistral: {
		"open-mistral-7b", "open-mixtral-8x7b", "open-mixtral-8x22b",
		"mistral-small-latest", "mistral-medium-latest", "mistral-large-latest",
		"codestral-latest",
	},
	provider.Groq: {
		"gemma-7b-it", "llama3-8b-8192", "llama3-70b-8192",
		"llama2-70b-4096", "mixtral-8x7b-32768",
	},
	provider.DeepInfra: {
		"meta-llama/Meta-Llama-3-70B-Instruct",
		"meta-llama/Meta-Llama-3-8B-Instruct",
		"mistralai/Mixtral-8x7B-Instruct-v0.1",
		"mistralai/Mixtral-8x22B-Instruct-v0.1",
		"mistralai/Mistral-7B-Instruct-v0.3",
		"microsoft/WizardLM-2-8x22B",
		"microsoft/WizardLM-2-7B",
		"openchat/openchat_3.5",
		"google/gemma-1.1-7b-it",
	},
	provider.Google: {
		"gemini-1.5-pro-latest", "gemini-1.5-flash-latest",
	},
}

// DefaultModels returns the built-in model names for a provider.
// The caller owns the returned slice.
func DefaultModels(p provider.Provider) []string {
	names := defaultModels[p]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
