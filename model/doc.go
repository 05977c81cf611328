// Package model holds the static model metadata shipped with llmconf.
//
// The Default Metadata Table maps a (provider, model name) Cost Key to the
// default input and output cost per million tokens and, where known, the
// context window size. The table is immutable reference data: the settings
// package copies it into its override maps when seeding and consults it when
// no override exists.
//
// # Lookups
//
//	defaults := model.DefaultTable()
//	key := model.NewCostKey(provider.OpenAI, "gpt-4")
//	in, ok := defaults.InputCost(key)
//
// # Family fallback
//
// When a model is missing from the table, FamilyInputCost and friends match
// it against entries sharing the first hyphen-delimited segment of its name:
//
//	key := model.NewCostKey(provider.OpenAI, "gpt-4-1106-preview")
//	in, ok := defaults.FamilyInputCost(key) // matches the "gpt" family
//
// Candidates are scanned in lexicographic model-name order, so the first
// match is always the smallest name of the family.
package model
