package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/settings"
)

func TestCollector_CountsResolutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	svc := settings.New(settings.WithObserver(c))
	svc.LoadState(nil)

	_ = svc.InputCost(provider.OpenAI, "gpt-4")
	_ = svc.InputCost(provider.OpenAI, "gpt-4")
	_ = svc.OutputCost(provider.Ollama, "llama3")
	_ = svc.WindowContext(provider.Groq, "no-such-model")

	tests := []struct {
		kind, provider, source string
		want                   float64
	}{
		{"input_cost", "OpenAI", "override", 2},
		{"output_cost", "Ollama", "local", 1},
		{"window_context", "Groq", "fallback", 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(c.resolutions.WithLabelValues(tt.kind, tt.provider, tt.source))
		assert.Equal(t, tt.want, got, "%s/%s/%s", tt.kind, tt.provider, tt.source)
	}
}

func TestCollector_Gather(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveResolution(settings.KindInputCost, provider.Anthropic, settings.SourceFamily)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	var mf *dto.MetricFamily = families[0]
	assert.Equal(t, "llmconf_resolutions_total", mf.GetName())
	require.Len(t, mf.GetMetric(), 1)

	labels := map[string]string{}
	for _, lp := range mf.GetMetric()[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, map[string]string{
		"kind":     "input_cost",
		"provider": "Anthropic",
		"source":   "family",
	}, labels)
	assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}
