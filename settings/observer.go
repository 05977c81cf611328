package settings

import "github.com/randalmurphal/llmconf/provider"

// Kind names the value a resolution produced.
type Kind string

// Resolution kinds.
const (
	KindInputCost     Kind = "input_cost"
	KindOutputCost    Kind = "output_cost"
	KindWindowContext Kind = "window_context"
)

// Source names where a resolved value came from.
type Source string

// Resolution sources, in lookup order.
const (
	SourceLocal    Source = "local"    // provider is not api-based
	SourceOverride Source = "override" // override map
	SourceDefault  Source = "default"  // exact Default Metadata Table entry
	SourceFamily   Source = "family"   // family fallback scan
	SourceRegistry Source = "registry" // window registry
	SourceFallback Source = "fallback" // nothing matched; zero or configured default
)

// Observer is notified of every cost or window resolution.
// Implementations must be safe for concurrent use and must not call back
// into the Service.
type Observer interface {
	ObserveResolution(kind Kind, p provider.Provider, source Source)
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(Kind, provider.Provider, Source) {}
