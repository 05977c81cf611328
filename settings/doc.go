// Package settings holds the persisted configuration of llmconf: provider
// credentials, generation parameters, custom prompts, the language model
// catalog, and the cost/window override maps, together with the resolver
// that turns them into per-model costs and window sizes.
//
// # Lifecycle
//
// A Service is created once per process with New and handed to every
// caller. It has two lifecycle hooks with distinct effects:
//
//   - construction (New) seeds the built-in prompts if the list is empty;
//   - reload (LoadState) overwrites every field from a snapshot, then seeds
//     each empty cost map from the Default Metadata Table and the prompts if
//     the list is empty.
//
// Writes through SetModelCost never bulk-seed: a set on an empty map leaves
// exactly one entry until the next reload.
//
//	svc := settings.New()
//	svc.LoadState(snapshot)
//	in := svc.InputCost(provider.OpenAI, "gpt-4-1106-preview")
//
// # Ownership
//
// Every slice or map crossing the Service boundary is copied: callers own
// what they receive and what they pass in stays theirs.
package settings
