package model

import "github.com/randalmurphal/llmconf/provider"

// LanguageModel describes a model the user can pick, as kept in the
// settings catalog. Costs are per million tokens.
type LanguageModel struct {
	Provider      provider.Provider `json:"provider" yaml:"provider" toml:"provider"`
	ModelName     string            `json:"modelName" yaml:"modelName" toml:"modelName"`
	DisplayName   string            `json:"displayName" yaml:"displayName" toml:"displayName"`
	APIKeyUsed    bool              `json:"apiKeyUsed" yaml:"apiKeyUsed" toml:"apiKeyUsed"`
	InputCost     float64           `json:"inputCost" yaml:"inputCost" toml:"inputCost"`
	OutputCost    float64           `json:"outputCost" yaml:"outputCost" toml:"outputCost"`
	ContextWindow int               `json:"contextWindow" yaml:"contextWindow" toml:"contextWindow"`
}

// Key returns the cost key of the model.
func (m LanguageModel) Key() CostKey {
	return CostKey{Provider: m.Provider, ModelName: m.ModelName}
}

// DefaultLanguageModels builds descriptors for every built-in model of p,
// filled from the given table.
func DefaultLanguageModels(p provider.Provider, d *Defaults) []LanguageModel {
	names := defaultModels[p]
	out := make([]LanguageModel, 0, len(names))
	for _, name := range names {
		key := NewCostKey(p, name)
		in, _ := d.InputCost(key)
		outCost, _ := d.OutputCost(key)
		window, _ := d.Window(key)
		out = append(out, LanguageModel{
			Provider:      p,
			ModelName:     name,
			DisplayName:   name,
			APIKeyUsed:    p.APIBased(),
			InputCost:     in,
			OutputCost:    outCost,
			ContextWindow: window,
		})
	}
	return out
}
