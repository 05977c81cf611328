package model

import (
	"sync"

	"github.com/randalmurphal/llmconf/provider"
)

// defaultPrices is the shipped price list in USD per million tokens.
var defaultPrices = map[CostKey]Pricing{
	{provider.OpenAI, "gpt-4"}:               {Input: 30, Output: 60},
	{provider.OpenAI, "gpt-4-turbo-preview"}: {Input: 10, Output: 30},
	{provider.OpenAI, "gpt-3.5-turbo"}:       {Input: 0.5, Output: 1.5},
	{provider.OpenAI, "gpt-4o"}:              {Input: 5, Output: 15},

	{provider.Anthropic, "claude-3-5-sonnet-20240620"}: {Input: 3, Output: 15},
	{provider.Anthropic, "claude-3-opus-20240229"}:     {Input: 15, Output: 75},
	{provider.Anthropic, "claude-3-sonnet-20240229"}:   {Input: 3, Output: 15},
	{provider.Anthropic, "claude-3-haiku-20240307"}:    {Input: 0.25, Output: 1.25},

	{provider.Mistral, "open-mistral-7b"}:       {Input: 0.25, Output: 0.25},
	{provider.Mistral, "open-mixtral-8x7b"}:     {Input: 0.7, Output: 0.7},
	{provider.Mistral, "open-mixtral-8x22b"}:    {Input: 2, Output: 6},
	{provider.Mistral, "mistral-small-latest"}:  {Input: 1, Output: 3},
	{provider.Mistral, "mistral-medium-latest"}: {Input: 2.7, Output: 8.1},
	{provider.Mistral, "mistral-large-latest"}:  {Input: 4, Output: 12},
	{provider.Mistral, "codestral-latest"}:      {Input: 1, Output: 3},

	{provider.Groq, "gemma-7b-it"}:        {Input: 0.07, Output: 0.07},
	{provider.Groq, "llama3-8b-8192"}:     {Input: 0.05, Output: 0.08},
	{provider.Groq, "llama3-70b-8192"}:    {Input: 0.59, Output: 0.79},
	{provider.Groq, "llama2-70b-4096"}:    {Input: 0.7, Output: 0.8},
	{provider.Groq, "mixtral-8x7b-32768"}: {Input: 0.24, Output: 0.24},

	{provider.DeepInfra, "meta-llama/Meta-Llama-3-70B-Instruct"}:  {Input: 0.56, Output: 0.77},
	{provider.DeepInfra, "meta-llama/Meta-Llama-3-8B-Instruct"}:   {Input: 0.064, Output: 0.064},
	{provider.DeepInfra, "mistralai/Mixtral-8x7B-Instruct-v0.1"}:  {Input: 0.24, Output: 0.24},
	{provider.DeepInfra, "mistralai/Mixtral-8x22B-Instruct-v0.1"}: {Input: 0.65, Output: 0.65},
	{provider.DeepInfra, "mistralai/Mistral-7B-Instruct-v0.3"}:    {Input: 0.07, Output: 0.07},
	{provider.DeepInfra, "microsoft/WizardLM-2-8x22B"}:            {Input: 0.63, Output: 0.63},
	{provider.DeepInfra, "microsoft/WizardLM-2-7B"}:               {Input: 0.07, Output: 0.07},
	{provider.DeepInfra, "openchat/openchat_3.5"}:                 {Input: 0.07, Output: 0.07},
	{provider.DeepInfra, "google/gemma-1.1-7b-it"}:                {Input: 0.07, Output: 0.07},

	{provider.Google, "gemini-1.5-pro-latest"}:   {Input: 7, Output: 21},
	{provider.Google, "gemini-1.5-flash-latest"}: {Input: 0.7, Output: 2.1},
}

// defaultWindows is the shipped context window size in tokens.
var defaultWindows = map[CostKey]int{
	{provider.OpenAI, "gpt-4"}:               8_192,
	{provider.OpenAI, "gpt-4-turbo-preview"}: 128_000,
	{provider.OpenAI, "gpt-3.5-turbo"}:       16_385,
	{provider.OpenAI, "gpt-4o"}:              128_000,

	{provider.Anthropic, "claude-3-5-sonnet-20240620"}: 200_000,
	{provider.Anthropic, "claude-3-opus-20240229"}:     200_000,
	{provider.Anthropic, "claude-3-sonnet-20240229"}:   200_000,
	{provider.Anthropic, "claude-3-haiku-20240307"}:    200_000,

	{provider.Mistral, "open-mistral-7b"}:       32_000,
	{provider.Mistral, "open-mixtral-8x7b"}:     32_000,
	{provider.Mistral, "open-mixtral-8x22b"}:    64_000,
	{provider.Mistral, "mistral-small-latest"}:  32_000,
	{provider.Mistral, "mistral-medium-latest"}: 32_000,
	{provider.Mistral, "mistral-large-latest"}:  32_000,
	{provider.Mistral, "codestral-latest"}:      32_000,

	{provider.Groq, "gemma-7b-it"}:        8_192,
	{provider.Groq, "llama3-8b-8192"}:     8_192,
	{provider.Groq, "llama3-70b-8192"}:    8_192,
	{provider.Groq, "llama2-70b-4096"}:    4_096,
	{provider.Groq, "mixtral-8x7b-32768"}: 32_768,

	{provider.DeepInfra, "meta-llama/Meta-Llama-3-70B-Instruct"}:  8_000,
	{provider.DeepInfra, "meta-llama/Meta-Llama-3-8B-Instruct"}:   8_000,
	{provider.DeepInfra, "mistralai/Mixtral-8x7B-Instruct-v0.1"}:  32_000,
	{provider.DeepInfra, "mistralai/Mixtral-8x22B-Instruct-v0.1"}: 64_000,
	{provider.DeepInfra, "mistralai/Mistral-7B-Instruct-v0.3"}:    32_000,
	{provider.DeepInfra, "microsoft/WizardLM-2-8x22B"}:            64_000,
	{provider.DeepInfra, "microsoft/WizardLM-2-7B"}:               32_000,
	{provider.DeepInfra, "openchat/openchat_3.5"}:                 8_000,
	{provider.DeepInfra, "google/gemma-1.1-7b-it"}:                8_000,

	{provider.Google, "gemini-1.5-pro-latest"}:   1_000_000,
	{provider.Google, "gemini-1.5-flash-latest"}: 1_000_000,
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Defaults
)

// DefaultTable returns the shipped Default Metadata Table.
// The returned table is shared and read-only.
func DefaultTable() *Defaults {
	defaultTableOnce.Do(func() {
		defaultTable = NewDefaults(defaultPrices, defaultWindows)
	})
	return defaultTable
}
