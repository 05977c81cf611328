// Package truncate cuts prompts down to a model's token budget.
//
// Context gathered from a project (files, diffs, search results) often exceeds
// the configured window. A Truncator trims it with one of three strategies:
//
//   - FromEnd: keep the head (default)
//   - FromMiddle: keep head and tail, drop the middle
//   - FromStart: keep the tail
//
// Usage:
//
//	b := tokens.ForModel(svc, provider.OpenAI, "gpt-4", maxOutputTokens)
//	text, cut := truncate.New(truncate.FromMiddle).Fit(b, projectContext)
//
// The elision marker counts against the budget.
package truncate
