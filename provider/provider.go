// Package provider defines the closed catalog of LLM backends known to llmconf.
//
// Every provider is either API-based (remote, metered, cost and window
// tracking enabled) or local (self-hosted, unmetered). The api-based
// predicate gates every cost/window mutation in the settings package.
package provider

import (
	"fmt"
	"strings"
)

// Provider identifies an LLM backend by its stable display name.
type Provider string

// Local providers (self-hosted, never metered).
const (
	Ollama   Provider = "Ollama"
	LMStudio Provider = "LMStudio"
	GPT4All  Provider = "GPT4All"
	Jan      Provider = "Jan"
	Exo      Provider = "Exo"
	LLaMA    Provider = "LLaMA.c++"
)

// API-based providers (remote, metered).
const (
	OpenAI    Provider = "OpenAI"
	Anthropic Provider = "Anthropic"
	Mistral   Provider = "Mistral"
	Groq      Provider = "Groq"
	DeepInfra Provider = "DeepInfra"
	Google    Provider = "Google"
)

// catalog lists every provider in declaration order.
var catalog = []Provider{
	Ollama, LMStudio, GPT4All, Jan, Exo, LLaMA,
	OpenAI, Anthropic, Mistral, Groq, DeepInfra, Google,
}

var apiBased = map[Provider]bool{
	OpenAI:    true,
	Anthropic: true,
	Mistral:   true,
	Groq:      true,
	DeepInfra: true,
	Google:    true,
}

// Name returns the stable provider name used in persisted keys.
func (p Provider) Name() string {
	return string(p)
}

// String implements fmt.Stringer.
func (p Provider) String() string {
	return string(p)
}

// APIBased reports whether the provider is a remote, metered API.
// Unknown providers are treated as local.
func (p Provider) APIBased() bool {
	return apiBased[p]
}

// Valid reports whether p is part of the catalog.
func (p Provider) Valid() bool {
	for _, c := range catalog {
		if c == p {
			return true
		}
	}
	return false
}

// All returns every known provider in declaration order.
func All() []Provider {
	out := make([]Provider, len(catalog))
	copy(out, catalog)
	return out
}

// APIBasedProviders returns the remote, metered providers.
func APIBasedProviders() []Provider {
	return filter(true)
}

// LocalProviders returns the self-hosted providers.
func LocalProviders() []Provider {
	return filter(false)
}

func filter(api bool) []Provider {
	var out []Provider
	for _, p := range catalog {
		if p.APIBased() == api {
			out = append(out, p)
		}
	}
	return out
}

// Parse resolves a provider from its name, ignoring case.
// Returns ErrUnknownProvider if no provider matches.
func Parse(name string) (Provider, error) {
	name = strings.TrimSpace(name)
	for _, p := range catalog {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}
