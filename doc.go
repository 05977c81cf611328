// Package llmconf holds the persisted settings of a multi-provider LLM client.
//
// It stores API credentials, local endpoints, generation parameters, custom
// prompts and per-model cost and context window overrides, and resolves
// cost and window metadata with a family fallback when no exact entry exists.
// Each subpackage can be used on its own:
//
//   - provider: the closed provider catalog, api-based or local
//   - model: cost keys, the default cost/window table, model catalogs
//   - settings: the settings Service, its lifecycle and the resolver
//   - store: file (JSON/YAML/TOML) and SQLite persistence, reload on change
//   - metrics: Prometheus counters of resolution outcomes
//   - chatmodel: parameters a chat client is built from
//   - tokens: token estimates, window budgets and prompt cost
//   - truncate: trimming prompts to a window budget
//
// # Quick Start
//
// Restore settings and resolve a cost:
//
//	import (
//		"github.com/randalmurphal/llmconf/provider"
//		"github.com/randalmurphal/llmconf/settings"
//		"github.com/randalmurphal/llmconf/store"
//	)
//
//	svc := settings.New()
//	fs, _ := store.NewFileStore(store.DefaultPath())
//	if err := store.Restore(ctx, fs, svc); err != nil {
//		return err
//	}
//	cost := svc.InputCost(provider.OpenAI, "gpt-4-1106-preview") // family fallback to gpt-4
//
// Override a model and save:
//
//	svc.SetModelCost(provider.Groq, "llama3-70b-8192", 0.59, 0.79)
//	if err := store.Persist(ctx, fs, svc); err != nil {
//		return err
//	}
//
// Local providers (Ollama, LMStudio, GPT4All, Jan, Exo, LLaMA.c++) are never
// metered: their output cost is 0 and cost or window overrides for them are
// ignored.
package llmconf
