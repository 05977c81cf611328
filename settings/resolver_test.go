package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

// familyTable holds a single gpt-4 entry for the OpenAI provider.
func familyTable() *model.Defaults {
	return model.NewDefaults(
		map[model.CostKey]model.Pricing{
			model.NewCostKey(provider.OpenAI, "gpt-4"): {Input: 30, Output: 60},
		},
		map[model.CostKey]int{
			model.NewCostKey(provider.OpenAI, "gpt-4"): 8192,
		},
	)
}

func TestInputCost_ExactOverrideWins(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithObserver(obs))
	svc.LoadState(nil)

	svc.SetModelCost(provider.OpenAI, "gpt-4", 0.7, 1.4)

	assert.Equal(t, 0.7, svc.InputCost(provider.OpenAI, "gpt-4"))
	assert.Equal(t, SourceOverride, obs.last())
	assert.Equal(t, 1.4, svc.OutputCost(provider.OpenAI, "gpt-4"))
}

func TestInputCost_DefaultWhenUnseeded(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithObserver(obs))

	assert.Equal(t, 30.0, svc.InputCost(provider.OpenAI, "gpt-4"))
	assert.Equal(t, SourceDefault, obs.last())
}

func TestInputCost_ZeroOverrideFallsThrough(t *testing.T) {
	svc := New()
	svc.SetModelCost(provider.OpenAI, "gpt-4", 0, 0)

	assert.Equal(t, 30.0, svc.InputCost(provider.OpenAI, "gpt-4"))
	assert.Equal(t, 60.0, svc.OutputCost(provider.OpenAI, "gpt-4"))
}

func TestInputCost_FamilyFallback(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithDefaults(familyTable()), WithObserver(obs))

	assert.Equal(t, 30.0, svc.InputCost(provider.OpenAI, "gpt-4-1106-preview"))
	assert.Equal(t, SourceFamily, obs.last())
}

func TestInputCost_ZeroFloor(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithDefaults(familyTable()), WithObserver(obs))
	svc.LoadState(nil)

	tests := []struct {
		name     string
		provider provider.Provider
		model    string
	}{
		{"unknown family", provider.OpenAI, "davinci-002"},
		{"other provider", provider.Groq, "gpt-4"},
		{"empty name", provider.OpenAI, ""},
		{"local provider", provider.Ollama, "gpt-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, svc.InputCost(tt.provider, tt.model))
			assert.Equal(t, SourceFallback, obs.last())
		})
	}
}

func TestInputCost_CaseSensitive(t *testing.T) {
	svc := New()
	svc.SetModelCost(provider.OpenAI, "My-Model", 3, 3)

	assert.Equal(t, 3.0, svc.InputCost(provider.OpenAI, "My-Model"))
	assert.Equal(t, 0.0, svc.InputCost(provider.OpenAI, "my-model"))
}

func TestOutputCost_LocalProviderIsZero(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithObserver(obs))
	svc.LoadState(nil)

	for _, p := range provider.LocalProviders() {
		assert.Equal(t, 0.0, svc.OutputCost(p, "gpt-4"))
		assert.Equal(t, SourceLocal, obs.last())
	}
}

func TestOutputCost_FamilyFallback(t *testing.T) {
	svc := New(WithDefaults(familyTable()))

	assert.Equal(t, 60.0, svc.OutputCost(provider.OpenAI, "gpt-4-1106-preview"))
}

func TestOutputCost_Legacy(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(WithDefaults(familyTable()), WithObserver(obs), WithLegacyOutputCost())

	// No family scan.
	assert.Equal(t, 0.0, svc.OutputCost(provider.OpenAI, "gpt-4-1106-preview"))
	assert.Equal(t, SourceFallback, obs.last())

	// Exact default.
	assert.Equal(t, 60.0, svc.OutputCost(provider.OpenAI, "gpt-4"))
	assert.Equal(t, SourceDefault, obs.last())

	// A present zero override is returned as is.
	svc.SetModelCost(provider.OpenAI, "gpt-4", 1, 0)
	assert.Equal(t, 0.0, svc.OutputCost(provider.OpenAI, "gpt-4"))
	assert.Equal(t, SourceOverride, obs.last())
}

func TestSetters_LocalProviderImmunity(t *testing.T) {
	svc := New()

	for _, p := range provider.LocalProviders() {
		for _, v := range []float64{0, 1, -1, 1e9} {
			svc.SetModelCost(p, "llama3", v, v)
			svc.SetModelWindowContext(p, "llama3", int(v))
		}
	}

	assert.Empty(t, svc.InputCosts())
	assert.Empty(t, svc.OutputCosts())
	assert.Empty(t, svc.WindowContexts())
}

func TestSetModelCost_DoesNotBulkSeed(t *testing.T) {
	svc := New()

	svc.SetModelCost(provider.Anthropic, "claude-x", 1, 5)

	assert.Equal(t, map[model.CostKey]float64{
		model.NewCostKey(provider.Anthropic, "claude-x"): 1,
	}, svc.InputCosts())
	assert.Equal(t, map[model.CostKey]float64{
		model.NewCostKey(provider.Anthropic, "claude-x"): 5,
	}, svc.OutputCosts())

	// The next reload keeps the non-empty maps as they are.
	svc.LoadState(svc.State())
	assert.Len(t, svc.InputCosts(), 1)
}

func TestWindowContext(t *testing.T) {
	obs := &recordingObserver{}
	svc := New(
		WithDefaults(familyTable()),
		WithWindowRegistry(model.StaticRegistry{"davinci-002": 16384}),
		WithObserver(obs),
	)

	tests := []struct {
		name     string
		provider provider.Provider
		model    string
		want     int
		source   Source
	}{
		{"local provider uses default window", provider.Ollama, "gpt-4", DefaultWindowContext, SourceLocal},
		{"exact default", provider.OpenAI, "gpt-4", 8192, SourceDefault},
		{"family fallback", provider.OpenAI, "gpt-4-32k", 8192, SourceFamily},
		{"registry", provider.OpenAI, "davinci-002", 16384, SourceRegistry},
		{"nothing matches", provider.Groq, "unknown", DefaultWindowContext, SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.WindowContext(tt.provider, tt.model))
			assert.Equal(t, tt.source, obs.last())
		})
	}

	t.Run("override wins", func(t *testing.T) {
		svc.SetModelWindowContext(provider.OpenAI, "gpt-4", 32000)
		assert.Equal(t, 32000, svc.WindowContext(provider.OpenAI, "gpt-4"))
		assert.Equal(t, SourceOverride, obs.last())
	})
}

func TestWindowContext_ConfiguredDefault(t *testing.T) {
	svc := New()
	svc.Update(func(st *State) {
		st.DefaultWindowContext = 4096
	})

	assert.Equal(t, 4096, svc.DefaultWindowContext())
	assert.Equal(t, 4096, svc.WindowContext(provider.Jan, "anything"))
	assert.Equal(t, 4096, svc.WindowContext(provider.Groq, "no-such-model"))
}
