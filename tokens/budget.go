package tokens

import "github.com/randalmurphal/llmconf/provider"

// perMillion converts table costs to per-token costs.
const perMillion = 1_000_000

// Resolver supplies per-model costs and window sizes.
// *settings.Service satisfies it.
type Resolver interface {
	InputCost(p provider.Provider, modelName string) float64
	OutputCost(p provider.Provider, modelName string) float64
	WindowContext(p provider.Provider, modelName string) int
}

// Budget is the prompt space of one model.
type Budget struct {
	// Window is the model's context window in tokens.
	Window int

	// Reserved is held back for the response.
	Reserved int

	counter Counter
}

// NewBudget creates a budget over window tokens with reserved tokens held
// back for the response. Negative values are treated as zero.
func NewBudget(window, reserved int) *Budget {
	return &Budget{
		Window:   max(window, 0),
		Reserved: max(reserved, 0),
		counter:  NewEstimatingCounter(),
	}
}

// ForModel creates a budget from the resolved window of a model.
func ForModel(r Resolver, p provider.Provider, modelName string, reserved int) *Budget {
	return NewBudget(r.WindowContext(p, modelName), reserved)
}

// WithCounter replaces the estimating counter.
func (b *Budget) WithCounter(c Counter) *Budget {
	if c != nil {
		b.counter = c
	}
	return b
}

// Available returns the tokens a prompt may use.
func (b *Budget) Available() int {
	return max(b.Window-b.Reserved, 0)
}

// Fits reports whether text fits in the available space.
func (b *Budget) Fits(text string) bool {
	return b.FitsTokens(b.counter.Count(text))
}

// FitsTokens reports whether n tokens fit in the available space.
func (b *Budget) FitsTokens(n int) bool {
	return n <= b.Available()
}

// Remaining returns the available tokens left after used, floored at 0.
func (b *Budget) Remaining(used int) int {
	return max(b.Available()-used, 0)
}

// Count estimates the tokens of text with the budget's counter.
func (b *Budget) Count(text string) int {
	return b.counter.Count(text)
}

// Cost returns the price of a call, in the currency of the cost tables.
// Local providers cost nothing on output; input follows the resolver.
func Cost(r Resolver, p provider.Provider, modelName string, inputTokens, outputTokens int) float64 {
	in := r.InputCost(p, modelName) * float64(inputTokens) / perMillion
	out := r.OutputCost(p, modelName) * float64(outputTokens) / perMillion
	return in + out
}
