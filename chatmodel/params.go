// Package chatmodel resolves the parameters a chat client is built from.
//
// Client construction belongs to the host. This package only gathers the
// endpoint, credentials and generation settings for a (provider, model) pair
// so every client factory reads them the same way.
package chatmodel

import (
	"time"

	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/settings"
)

// Params holds everything needed to construct a chat client.
type Params struct {
	Provider    provider.Provider
	BaseURL     string
	APIKey      string // empty for local providers
	ModelName   string
	MaxRetries  int
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	TopP        float64
}

// ParamSource supplies endpoint, credential and generation settings.
// *settings.Service satisfies it.
type ParamSource interface {
	APIKey(p provider.Provider) string
	BaseURL(p provider.Provider) string
	Generation() settings.Generation
}

var _ ParamSource = (*settings.Service)(nil)

// Resolve reads the parameters for modelName on p. Values are forwarded
// as stored; range checks are the caller's concern (see settings.State.Validate).
func Resolve(src ParamSource, p provider.Provider, modelName string) Params {
	g := src.Generation()
	return Params{
		Provider:    p,
		BaseURL:     src.BaseURL(p),
		APIKey:      src.APIKey(p),
		ModelName:   modelName,
		MaxRetries:  g.MaxRetries,
		Temperature: g.Temperature,
		MaxTokens:   g.MaxOutputTokens,
		Timeout:     g.Timeout,
		TopP:        g.TopP,
	}
}

// ModelNames returns the built-in model names offered for p. Local providers
// have none; their models are discovered from the running server.
func ModelNames(p provider.Provider) []string {
	return model.DefaultModels(p)
}
