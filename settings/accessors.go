package settings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

// Sentinel errors for settings mutations.
var (
	// ErrNoAPIKey indicates the provider does not take an API key.
	ErrNoAPIKey = errors.New("provider does not take an API key")

	// ErrFixedBaseURL indicates the provider's endpoint is not configurable.
	ErrFixedBaseURL = errors.New("provider base URL is fixed")

	// ErrEmptyPromptName indicates a custom prompt without a name.
	ErrEmptyPromptName = errors.New("custom prompt name is empty")
)

// Every accessor below hands out caller-owned values: slices and maps are
// copied on the way out and on the way in, so callers never alias the
// Service's internal collections.

// LanguageModels returns the model catalog.
func (s *Service) LanguageModels() []model.LanguageModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.LanguageModels)
}

// SetLanguageModels replaces the model catalog with a copy of models.
func (s *Service) SetLanguageModels(models []model.LanguageModel) {
	cp := slices.Clone(models)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LanguageModels = cp
}

// CustomPrompts returns the prompt list in order.
func (s *Service) CustomPrompts() []CustomPrompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.CustomPrompts)
}

// SetCustomPrompts replaces the prompt list. When names repeat, the first
// occurrence wins.
func (s *Service) SetCustomPrompts(prompts []CustomPrompt) {
	cp := uniquePrompts(prompts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CustomPrompts = cp
}

// Prompt returns the custom prompt with the given name.
func (s *Service) Prompt(name string) (CustomPrompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.state.CustomPrompts {
		if p.Name == name {
			return p, true
		}
	}
	return CustomPrompt{}, false
}

// PutCustomPrompt adds a prompt, or replaces the prompt with the same name
// in place.
func (s *Service) PutCustomPrompt(p CustomPrompt) error {
	if p.Name == "" {
		return ErrEmptyPromptName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CustomPrompts {
		if s.state.CustomPrompts[i].Name == p.Name {
			s.state.CustomPrompts[i] = p
			return nil
		}
	}
	s.state.CustomPrompts = append(s.state.CustomPrompts, p)
	return nil
}

// RemoveCustomPrompt removes the prompt with the given name.
// Returns false if no such prompt exists.
func (s *Service) RemoveCustomPrompt(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.state.CustomPrompts {
		if p.Name == name {
			s.state.CustomPrompts = slices.Delete(s.state.CustomPrompts, i, i+1)
			return true
		}
	}
	return false
}

func uniquePrompts(prompts []CustomPrompt) []CustomPrompt {
	if prompts == nil {
		return nil
	}
	seen := make(map[string]bool, len(prompts))
	out := make([]CustomPrompt, 0, len(prompts))
	for _, p := range prompts {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out
}

// ExcludedDirectories returns the directory names skipped when scanning
// sources.
func (s *Service) ExcludedDirectories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.ExcludedDirectories)
}

// SetExcludedDirectories replaces the excluded directory list.
func (s *Service) SetExcludedDirectories(dirs []string) {
	cp := slices.Clone(dirs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ExcludedDirectories = cp
}

// IncludedFileExtensions returns the file extensions included when scanning
// sources.
func (s *Service) IncludedFileExtensions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.IncludedFileExtensions)
}

// SetIncludedFileExtensions replaces the included extension list.
func (s *Service) SetIncludedFileExtensions(exts []string) {
	cp := slices.Clone(exts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IncludedFileExtensions = cp
}

// InputCosts returns a copy of the input cost override map.
func (s *Service) InputCosts() map[model.CostKey]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.inputCost)
}

// OutputCosts returns a copy of the output cost override map.
func (s *Service) OutputCosts() map[model.CostKey]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.outputCost)
}

// WindowContexts returns a copy of the window override map.
func (s *Service) WindowContexts() map[model.CostKey]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.windowContext)
}

// APIKey returns the configured API key of p, or "" for providers that take
// none.
func (s *Service) APIKey(p provider.Provider) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f := s.state.apiKeyField(p); f != nil {
		return *f
	}
	return ""
}

// SetAPIKey stores the API key of p.
func (s *Service) SetAPIKey(p provider.Provider, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.state.apiKeyField(p)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrNoAPIKey, p)
	}
	*f = key
	return nil
}

// BaseURL returns the endpoint of p: the configured URL for local providers
// (or the shipped default when unset), the fixed endpoint otherwise.
func (s *Service) BaseURL(p provider.Provider) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f := s.state.urlField(p); f != nil && *f != "" {
		return *f
	}
	return provider.DefaultBaseURL(p)
}

// SetBaseURL stores the endpoint of a local provider.
func (s *Service) SetBaseURL(p provider.Provider, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.state.urlField(p)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrFixedBaseURL, p)
	}
	*f = url
	return nil
}

// Generation holds the scalar generation parameters.
type Generation struct {
	Temperature     float64
	TopP            float64
	Timeout         time.Duration
	MaxRetries      int
	MaxOutputTokens int
	ChatMemorySize  int
}

// Generation returns the current generation parameters.
func (s *Service) Generation() Generation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Generation{
		Temperature:     s.state.Temperature,
		TopP:            s.state.TopP,
		Timeout:         time.Duration(s.state.Timeout) * time.Second,
		MaxRetries:      s.state.MaxRetries,
		MaxOutputTokens: s.state.MaxOutputTokens,
		ChatMemorySize:  s.state.ChatMemorySize,
	}
}

// SetGeneration stores the generation parameters. The timeout is persisted
// in whole seconds.
func (s *Service) SetGeneration(g Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Temperature = g.Temperature
	s.state.TopP = g.TopP
	s.state.Timeout = int(g.Timeout / time.Second)
	s.state.MaxRetries = g.MaxRetries
	s.state.MaxOutputTokens = g.MaxOutputTokens
	s.state.ChatMemorySize = g.ChatMemorySize
}
