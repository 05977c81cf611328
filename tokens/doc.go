// Package tokens estimates prompt sizes and what they cost against the
// configured cost and window tables.
//
// Estimation uses the rule of thumb that about 4 characters make 1 token.
// It needs no model-specific tokenizer and is meant for budgeting, not billing.
//
// # Counter
//
//	counter := tokens.NewEstimatingCounter()
//	n := counter.Count("Hello, world!") // ~3 tokens
//
// # Budget
//
// A Budget is the context window of one model minus the tokens reserved for
// the response:
//
//	b := tokens.ForModel(svc, provider.OpenAI, "gpt-4", maxOutputTokens)
//	b.Fits(prompt)
//	b.Remaining(used)
//
// # Cost
//
//	usd := tokens.Cost(svc, provider.OpenAI, "gpt-4", inputTokens, outputTokens)
//
// Costs in the tables are per million tokens.
package tokens
