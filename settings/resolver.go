package settings

import (
	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

// InputCost resolves the input cost per million tokens of a model.
// It never fails:
//  1. a non-zero override wins,
//  2. then a non-zero exact default,
//  3. then the family fallback (first entry of the same provider, in model
//     name order, whose name starts with the first hyphen segment),
//  4. else 0.
func (s *Service) InputCost(p provider.Provider, modelName string) float64 {
	key := model.NewCostKey(p, modelName)

	s.mu.RLock()
	cost, src := resolveCost(key, s.inputCost, s.defaults.InputCost, s.defaults.FamilyInputCost)
	s.mu.RUnlock()

	s.observer.ObserveResolution(KindInputCost, p, src)
	return cost
}

// OutputCost resolves the output cost per million tokens of a model.
// Local providers always resolve to 0 without consulting any table.
// For api-based providers the lookup chain matches InputCost, unless the
// Service was built WithLegacyOutputCost.
func (s *Service) OutputCost(p provider.Provider, modelName string) float64 {
	if !p.APIBased() {
		s.observer.ObserveResolution(KindOutputCost, p, SourceLocal)
		return 0
	}
	key := model.NewCostKey(p, modelName)

	s.mu.RLock()
	var (
		cost float64
		src  Source
	)
	if s.legacyOutput {
		cost, src = s.legacyOutputCostLocked(key)
	} else {
		cost, src = resolveCost(key, s.outputCost, s.defaults.OutputCost, s.defaults.FamilyOutputCost)
	}
	s.mu.RUnlock()

	s.observer.ObserveResolution(KindOutputCost, p, src)
	return cost
}

func (s *Service) legacyOutputCostLocked(key model.CostKey) (float64, Source) {
	if v, ok := s.outputCost[key]; ok {
		return v, SourceOverride
	}
	if v, ok := s.defaults.OutputCost(key); ok {
		return v, SourceDefault
	}
	return 0, SourceFallback
}

type lookupFunc func(model.CostKey) (float64, bool)

func resolveCost(key model.CostKey, overrides map[model.CostKey]float64, exact, family lookupFunc) (float64, Source) {
	if v := overrides[key]; v != 0 {
		return v, SourceOverride
	}
	if v, ok := exact(key); ok && v != 0 {
		return v, SourceDefault
	}
	if v, ok := family(key); ok {
		return v, SourceFamily
	}
	return 0, SourceFallback
}

// WindowContext resolves the context window size in tokens of a model.
// Local providers resolve to the configured default window. For api-based
// providers: override, exact default, family fallback, window registry,
// then the configured default window.
func (s *Service) WindowContext(p provider.Provider, modelName string) int {
	key := model.NewCostKey(p, modelName)

	s.mu.RLock()
	window, src := s.windowContextLocked(key)
	s.mu.RUnlock()

	s.observer.ObserveResolution(KindWindowContext, p, src)
	return window
}

func (s *Service) windowContextLocked(key model.CostKey) (int, Source) {
	if !key.Provider.APIBased() {
		return s.state.DefaultWindowContext, SourceLocal
	}
	if v := s.windowContext[key]; v != 0 {
		return v, SourceOverride
	}
	if v, ok := s.defaults.Window(key); ok && v != 0 {
		return v, SourceDefault
	}
	if v, ok := s.defaults.FamilyWindow(key); ok && v != 0 {
		return v, SourceFamily
	}
	if s.windows != nil {
		if v, ok := s.windows.ContextWindow(key.ModelName); ok {
			return v, SourceRegistry
		}
	}
	return s.state.DefaultWindowContext, SourceFallback
}

// SetModelCost writes both cost overrides of a model. Calls for providers
// that are not api-based are silently ignored. Only the given key is
// written; an empty map is not bulk-seeded.
func (s *Service) SetModelCost(p provider.Provider, modelName string, inputCost, outputCost float64) {
	if !p.APIBased() {
		s.logger.Debug("ignoring cost override for local provider",
			"provider", p.Name(), "model", modelName)
		return
	}
	key := model.NewCostKey(p, modelName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputCost[key] = inputCost
	s.outputCost[key] = outputCost
}

// SetModelWindowContext writes the window override of a model, with the
// same api-based gate as SetModelCost.
func (s *Service) SetModelWindowContext(p provider.Provider, modelName string, windowContext int) {
	if !p.APIBased() {
		s.logger.Debug("ignoring window override for local provider",
			"provider", p.Name(), "model", modelName)
		return
	}
	key := model.NewCostKey(p, modelName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.windowContext[key] = windowContext
}

// DefaultWindowContext returns the window size used when nothing else
// resolves.
func (s *Service) DefaultWindowContext() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DefaultWindowContext
}
