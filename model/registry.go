package model

import (
	"log/slog"

	"charm.land/catwalk/pkg/catwalk"
	"charm.land/catwalk/pkg/embedded"
)

// WindowRegistry supplies context window sizes for models missing from the
// Default Metadata Table.
type WindowRegistry interface {
	// ContextWindow returns the window size in tokens for a model ID,
	// and false when the model is unknown.
	ContextWindow(modelID string) (int, bool)
}

// CatalogRegistry implements WindowRegistry using catwalk's embedded
// provider database. Everything is compiled into the binary; no network
// calls are made.
type CatalogRegistry struct {
	models map[string]catwalk.Model
}

// NewCatalogRegistry creates a registry holding every model from catwalk's
// embedded database.
func NewCatalogRegistry() *CatalogRegistry {
	models := make(map[string]catwalk.Model)
	for _, p := range embedded.GetAll() {
		for _, m := range p.Models {
			models[m.ID] = m
		}
	}

	slog.Debug("catalog registry loaded", "models", len(models))

	return &CatalogRegistry{models: models}
}

// ContextWindow implements WindowRegistry.
func (r *CatalogRegistry) ContextWindow(modelID string) (int, bool) {
	m, ok := r.models[modelID]
	if !ok || m.ContextWindow <= 0 {
		return 0, false
	}
	return int(m.ContextWindow), true
}

// Len returns the number of known models.
func (r *CatalogRegistry) Len() int {
	return len(r.models)
}

// StaticRegistry is a WindowRegistry backed by a fixed map.
type StaticRegistry map[string]int

// ContextWindow implements WindowRegistry.
func (r StaticRegistry) ContextWindow(modelID string) (int, bool) {
	w, ok := r[modelID]
	if !ok || w <= 0 {
		return 0, false
	}
	return w, true
}
