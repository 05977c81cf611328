// Package metrics exposes settings resolution outcomes as Prometheus metrics.
//
// Collector implements settings.Observer. Attach it to a Service with
// settings.WithObserver and register it on any prometheus.Registerer:
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg)
//	svc := settings.New(settings.WithObserver(c))
//
// Metrics:
//   - llmconf_resolutions_total: resolutions by kind, provider and source
//
// A steady stream of source="fallback" for an api-based provider usually
// means the cost table is missing a model.
package metrics
