package tokens

import "unicode/utf8"

// DefaultCharsPerToken approximates English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	Count(text string) int
}

// EstimatingCounter counts tokens from the rune count of the text.
type EstimatingCounter struct {
	// CharsPerToken is the average number of runes per token.
	CharsPerToken float64
}

// NewEstimatingCounter creates a counter with the default ratio.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{CharsPerToken: DefaultCharsPerToken}
}

// NewEstimatingCounterWithRatio creates a counter with a custom ratio.
// A ratio <= 0 selects the default.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{CharsPerToken: charsPerToken}
}

// Count returns the rounded estimate for text.
func (c *EstimatingCounter) Count(text string) int {
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	return int(float64(utf8.RuneCountInString(text))/ratio + 0.5)
}

// EstimateTokens counts text with the default counter.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
