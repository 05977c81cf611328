package truncate

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/llmconf/tokens"
)

// Strategy selects which part of the text is dropped.
type Strategy int

const (
	// FromEnd drops the tail.
	FromEnd Strategy = iota

	// FromMiddle drops the middle, keeping head and tail.
	FromMiddle

	// FromStart drops the head.
	FromStart
)

// String returns the flag form of the strategy.
func (s Strategy) String() string {
	switch s {
	case FromMiddle:
		return "middle"
	case FromStart:
		return "start"
	default:
		return "end"
	}
}

// ParseStrategy parses "end", "middle" or "start".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end", "":
		return FromEnd, nil
	case "middle":
		return FromMiddle, nil
	case "start":
		return FromStart, nil
	default:
		return FromEnd, fmt.Errorf("unknown truncation strategy %q (use end, middle, start)", s)
	}
}

// Elision markers.
const (
	DefaultMarker       = "..."
	DefaultMiddleMarker = "\n...[content truncated]...\n"
)

// Truncator trims text to a token limit.
type Truncator struct {
	counter  tokens.Counter
	strategy Strategy
	marker   string
}

// New creates a truncator with the default counter and marker for strategy.
func New(strategy Strategy) *Truncator {
	marker := DefaultMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{
		counter:  tokens.NewEstimatingCounter(),
		strategy: strategy,
		marker:   marker,
	}
}

// WithCounter replaces the token counter.
func (t *Truncator) WithCounter(c tokens.Counter) *Truncator {
	if c != nil {
		t.counter = c
	}
	return t
}

// WithMarker replaces the elision marker.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Strategy returns the configured strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the elision marker.
func (t *Truncator) Marker() string {
	return t.marker
}

// Fit trims text to the space available in b.
func (t *Truncator) Fit(b *tokens.Budget, text string) (string, bool) {
	return t.Truncate(text, b.Available())
}

// Truncate trims text to at most maxTokens, marker included, and reports
// whether anything was dropped. When even the marker does not fit, the
// marker alone is returned.
func (t *Truncator) Truncate(text string, maxTokens int) (string, bool) {
	if t.counter.Count(text) <= maxTokens {
		return text, false
	}

	budget := maxTokens - t.counter.Count(t.marker)
	if budget <= 0 {
		return t.marker, true
	}

	// Each candidate is counted joined with the marker: counts of the parts
	// do not add up to the count of the whole.
	fits := func(s string) bool { return t.counter.Count(s) <= maxTokens }

	runes := []rune(text)
	switch t.strategy {
	case FromStart:
		n := longestFit(len(runes), func(n int) bool {
			return fits(t.marker + string(runes[len(runes)-n:]))
		})
		return t.marker + string(runes[len(runes)-n:]), true

	case FromMiddle:
		headBudget := budget / 2
		head := longestFit(len(runes), func(n int) bool {
			return t.counter.Count(string(runes[:n])) <= headBudget && fits(string(runes[:n])+t.marker)
		})
		joined := string(runes[:head]) + t.marker
		rest := runes[head:]
		n := longestFit(len(rest), func(n int) bool {
			return fits(joined + string(rest[len(rest)-n:]))
		})
		return joined + string(rest[len(rest)-n:]), true

	default:
		n := longestFit(len(runes), func(n int) bool {
			return fits(string(runes[:n]) + t.marker)
		})
		return string(runes[:n]) + t.marker, true
	}
}

// longestFit binary-searches the largest n in [0, limit] for which ok holds.
// ok must be monotone and hold for 0.
func longestFit(limit int, ok func(n int) bool) int {
	low, high := 0, limit
	for low < high {
		mid := (low + high + 1) / 2
		if ok(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
