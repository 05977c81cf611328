package settings

import (
	"log/slog"
	"sync"

	"github.com/randalmurphal/llmconf/model"
)

// Service owns the settings of a process. Create one with New and pass it to
// every caller; there is no global instance.
//
// A single RWMutex serializes every mutation (seeding, Set*, LoadState,
// Update) against every read, so no reader observes a map mid-seed.
type Service struct {
	mu sync.RWMutex

	// state holds every field except the override maps, which live below
	// in typed form. Its cost map fields are always nil.
	state *State

	inputCost     map[model.CostKey]float64
	outputCost    map[model.CostKey]float64
	windowContext map[model.CostKey]int

	defaults     *model.Defaults
	windows      model.WindowRegistry
	observer     Observer
	logger       *slog.Logger
	legacyOutput bool
}

// Option configures a Service.
type Option func(*Service)

// WithDefaults replaces the Default Metadata Table.
func WithDefaults(d *model.Defaults) Option {
	return func(s *Service) {
		if d != nil {
			s.defaults = d
		}
	}
}

// WithWindowRegistry sets the registry consulted for window sizes missing
// from the default table.
func WithWindowRegistry(r model.WindowRegistry) Option {
	return func(s *Service) {
		s.windows = r
	}
}

// WithObserver sets the resolution observer.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLegacyOutputCost makes OutputCost skip the family fallback scan and
// return a present override even when it is zero.
func WithLegacyOutputCost() Option {
	return func(s *Service) {
		s.legacyOutput = true
	}
}

// New creates a Service holding the shipped defaults.
//
// Construction seeds the built-in prompts only. The cost maps stay empty
// until LoadState (or InitializeDefaultCostsIfEmpty) seeds them.
func New(opts ...Option) *Service {
	s := &Service{
		state:         DefaultState(),
		inputCost:     make(map[model.CostKey]float64),
		outputCost:    make(map[model.CostKey]float64),
		windowContext: make(map[model.CostKey]int),
		defaults:      model.DefaultTable(),
		observer:      nopObserver{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.ModelInputCosts = nil
	s.state.ModelOutputCosts = nil
	s.state.ModelWindowContexts = nil

	s.initializeDefaultPromptsLocked()
	return s
}

// LoadState replaces every field with the snapshot's (a structural
// overwrite, not a merge), then seeds each empty cost map from the defaults
// and seeds the prompts if the list is empty. A nil snapshot loads the
// shipped defaults.
//
// Override entries keyed to a non-api-based provider, or whose key cannot be
// parsed, are dropped.
func (s *Service) LoadState(snap *State) {
	if snap == nil {
		snap = DefaultState()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.installLocked(snap.Clone())
	s.initializeDefaultCostsLocked()
	s.initializeDefaultPromptsLocked()
}

// State returns a snapshot of every field. The caller owns the result.
func (s *Service) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Update applies fn to a snapshot and installs the result as a structural
// overwrite. Unlike LoadState it never seeds; emptied maps stay empty.
// fn runs with the write lock held and must not call back into the Service.
func (s *Service) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshotLocked()
	fn(next)
	s.installLocked(next)
}

// InitializeDefaultCostsIfEmpty copies the default input costs into the
// input override map if it is empty, and independently the default output
// costs into the output map if that one is empty. Idempotent.
func (s *Service) InitializeDefaultCostsIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initializeDefaultCostsLocked()
}

func (s *Service) initializeDefaultCostsLocked() {
	if len(s.inputCost) == 0 {
		s.inputCost = s.defaults.InputCosts()
		s.logger.Debug("seeded default input costs", "entries", len(s.inputCost))
	}
	if len(s.outputCost) == 0 {
		s.outputCost = s.defaults.OutputCosts()
		s.logger.Debug("seeded default output costs", "entries", len(s.outputCost))
	}
}

func (s *Service) initializeDefaultPromptsLocked() {
	if len(s.state.CustomPrompts) == 0 {
		s.state.CustomPrompts = defaultPrompts()
	}
}

// installLocked takes ownership of next.
func (s *Service) installLocked(next *State) {
	s.inputCost = decodeMap(s.logger, "modelInputCosts", next.ModelInputCosts)
	s.outputCost = decodeMap(s.logger, "modelOutputCosts", next.ModelOutputCosts)
	s.windowContext = decodeMap(s.logger, "modelWindowContexts", next.ModelWindowContexts)

	next.ModelInputCosts = nil
	next.ModelOutputCosts = nil
	next.ModelWindowContexts = nil
	next.CustomPrompts = uniquePrompts(next.CustomPrompts)
	s.state = next
}

func (s *Service) snapshotLocked() *State {
	snap := s.state.Clone()
	snap.ModelInputCosts = encodeMap(s.inputCost)
	snap.ModelOutputCosts = encodeMap(s.outputCost)
	snap.ModelWindowContexts = encodeMap(s.windowContext)
	return snap
}

// decodeMap converts persisted keys into cost keys, dropping entries that
// would break the api-based invariant.
func decodeMap[V any](logger *slog.Logger, field string, in map[string]V) map[model.CostKey]V {
	out := make(map[model.CostKey]V, len(in))
	for raw, v := range in {
		key, err := model.ParseCostKey(raw)
		if err != nil {
			logger.Warn("dropping override with invalid key",
				slog.String("field", field),
				slog.String("key", raw),
				slog.Any("error", err))
			continue
		}
		if !key.Provider.APIBased() {
			logger.Warn("dropping override for local provider",
				slog.String("field", field),
				slog.String("key", raw))
			continue
		}
		out[key] = v
	}
	return out
}

func encodeMap[V any](in map[model.CostKey]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k.String()] = v
	}
	return out
}
