package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/randalmurphal/llmconf/provider"
)

// keySeparator joins provider name and model name in persisted keys.
const keySeparator = ":"

// CostKey identifies a model of a provider in every cost and window table.
// Model names are compared verbatim (case-sensitive).
type CostKey struct {
	Provider  provider.Provider
	ModelName string
}

// NewCostKey creates a cost key.
func NewCostKey(p provider.Provider, modelName string) CostKey {
	return CostKey{Provider: p, ModelName: modelName}
}

// String returns the persisted form "<provider>:<model>".
func (k CostKey) String() string {
	return k.Provider.Name() + keySeparator + k.ModelName
}

// ParseCostKey parses the persisted "<provider>:<model>" form.
// The split happens on the first separator since model names may contain
// colons (e.g. "llama3:8b") while provider names never do. The provider
// name must match exactly, as String writes it, so that no two persisted
// keys decode to the same CostKey.
func ParseCostKey(s string) (CostKey, error) {
	name, modelName, ok := strings.Cut(s, keySeparator)
	if !ok {
		return CostKey{}, fmt.Errorf("invalid cost key %q: missing %q", s, keySeparator)
	}
	p, err := provider.Parse(name)
	if err != nil {
		return CostKey{}, fmt.Errorf("invalid cost key %q: %w", s, err)
	}
	if p.Name() != name {
		return CostKey{}, fmt.Errorf("invalid cost key %q: provider must be spelled %q", s, p.Name())
	}
	return CostKey{Provider: p, ModelName: modelName}, nil
}

// Pricing holds per-million-token pricing for a model.
type Pricing struct {
	Input  float64
	Output float64
}

// Defaults is the immutable Default Metadata Table.
// It is safe for concurrent use since nothing mutates it after construction.
type Defaults struct {
	prices  map[CostKey]Pricing
	windows map[CostKey]int

	// Model names per provider, sorted, for deterministic family scans.
	priceNames  map[provider.Provider][]string
	windowNames map[provider.Provider][]string
}

// NewDefaults builds a table from the given prices and window sizes.
// The maps are copied; later changes by the caller are not observed.
func NewDefaults(prices map[CostKey]Pricing, windows map[CostKey]int) *Defaults {
	d := &Defaults{
		prices:  make(map[CostKey]Pricing, len(prices)),
		windows: make(map[CostKey]int, len(windows)),
	}
	for k, v := range prices {
		d.prices[k] = v
	}
	for k, v := range windows {
		d.windows[k] = v
	}
	d.priceNames = indexNames(d.prices)
	d.windowNames = indexNames(d.windows)
	return d
}

func indexNames[V any](m map[CostKey]V) map[provider.Provider][]string {
	idx := make(map[provider.Provider][]string)
	for k := range m {
		idx[k.Provider] = append(idx[k.Provider], k.ModelName)
	}
	for _, names := range idx {
		slices.Sort(names)
	}
	return idx
}

// InputCost returns the default input cost for key.
func (d *Defaults) InputCost(key CostKey) (float64, bool) {
	p, ok := d.prices[key]
	return p.Input, ok
}

// OutputCost returns the default output cost for key.
func (d *Defaults) OutputCost(key CostKey) (float64, bool) {
	p, ok := d.prices[key]
	return p.Output, ok
}

// Window returns the default context window for key.
func (d *Defaults) Window(key CostKey) (int, bool) {
	w, ok := d.windows[key]
	return w, ok
}

// FamilyInputCost returns the input cost of the first entry of the same
// provider whose model name starts with the family of key.ModelName.
func (d *Defaults) FamilyInputCost(key CostKey) (float64, bool) {
	name, ok := familyMatch(d.priceNames[key.Provider], key.ModelName)
	if !ok {
		return 0, false
	}
	return d.prices[CostKey{Provider: key.Provider, ModelName: name}].Input, true
}

// FamilyOutputCost is the output-cost counterpart of FamilyInputCost.
func (d *Defaults) FamilyOutputCost(key CostKey) (float64, bool) {
	name, ok := familyMatch(d.priceNames[key.Provider], key.ModelName)
	if !ok {
		return 0, false
	}
	return d.prices[CostKey{Provider: key.Provider, ModelName: name}].Output, true
}

// FamilyWindow is the window-size counterpart of FamilyInputCost.
func (d *Defaults) FamilyWindow(key CostKey) (int, bool) {
	name, ok := familyMatch(d.windowNames[key.Provider], key.ModelName)
	if !ok {
		return 0, false
	}
	return d.windows[CostKey{Provider: key.Provider, ModelName: name}], true
}

// familyMatch returns the lexicographically smallest candidate in the family
// of name. candidates must be sorted.
func familyMatch(candidates []string, name string) (string, bool) {
	for _, c := range candidates {
		if InFamily(c, name) {
			return c, true
		}
	}
	return "", false
}

// InputCosts returns a fresh copy of every default input cost.
func (d *Defaults) InputCosts() map[CostKey]float64 {
	out := make(map[CostKey]float64, len(d.prices))
	for k, p := range d.prices {
		out[k] = p.Input
	}
	return out
}

// OutputCosts returns a fresh copy of every default output cost.
func (d *Defaults) OutputCosts() map[CostKey]float64 {
	out := make(map[CostKey]float64, len(d.prices))
	for k, p := range d.prices {
		out[k] = p.Output
	}
	return out
}

// Keys returns every priced key sorted by provider then model name.
func (d *Defaults) Keys() []CostKey {
	keys := make([]CostKey, 0, len(d.prices))
	for k := range d.prices {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b CostKey) int {
		if c := strings.Compare(string(a.Provider), string(b.Provider)); c != 0 {
			return c
		}
		return strings.Compare(a.ModelName, b.ModelName)
	})
	return keys
}

// Len returns the number of priced entries.
func (d *Defaults) Len() int {
	return len(d.prices)
}
