package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randalmurphal/llmconf/provider"
	"github.com/randalmurphal/llmconf/settings"
)

// Namespace prefixes every metric name.
const Namespace = "llmconf"

// Collector counts cost and window resolutions.
type Collector struct {
	resolutions *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "resolutions_total",
				Help:      "Cost and window resolutions by kind, provider and source",
			},
			[]string{"kind", "provider", "source"},
		),
	}

	if err := reg.Register(c.resolutions); err != nil {
		return nil, fmt.Errorf("register resolutions counter: %w", err)
	}
	return c, nil
}

// ObserveResolution implements settings.Observer.
func (c *Collector) ObserveResolution(kind settings.Kind, p provider.Provider, src settings.Source) {
	c.resolutions.WithLabelValues(string(kind), p.Name(), string(src)).Inc()
}

var _ settings.Observer = (*Collector)(nil)
