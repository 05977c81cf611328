package settings

import (
	"maps"
	"slices"

	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/provider"
)

// Built-in prompt texts.
const (
	SystemPrompt  = "You are a software developer with expert knowledge in any programming language. Always answer in markdown and keep explanations concise."
	TestPrompt    = "Write a unit test for this code using the project's test framework."
	ExplainPrompt = "Break down the code in simple terms to help a junior developer grasp its functionality."
	ReviewPrompt  = "Review the selected code, can you spot possible bugs or suggest improvements?"
)

// Built-in prompt names seeded into an empty prompt list.
const (
	PromptTest    = "test"
	PromptExplain = "explain"
	PromptReview  = "review"
)

// Shipped defaults.
const (
	DefaultTemperature      = 0.7
	DefaultTopP             = 0.9
	DefaultTimeoutSeconds   = 60
	DefaultMaxRetries       = 3
	DefaultChatMemorySize   = 10
	DefaultMaxOutputTokens  = 2500
	DefaultMaxSearchResults = 3
	DefaultWindowContext    = 8000
)

// CustomPrompt is a named prompt template. Names are unique within a list.
type CustomPrompt struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Prompt string `json:"prompt" yaml:"prompt" toml:"prompt"`
}

// State is the persisted settings snapshot: a flat bean of named fields.
// Field tags are the wire contract and must stay stable for existing
// snapshots to load.
//
// Cost and window maps are keyed by the persisted cost key form
// "<provider>:<model>" (see model.CostKey).
type State struct {
	CustomPrompts  []CustomPrompt        `json:"customPrompts" yaml:"customPrompts" toml:"customPrompts"`
	LanguageModels []model.LanguageModel `json:"languageModels" yaml:"languageModels" toml:"languageModels"`

	// Local provider URLs
	OllamaModelURL   string `json:"ollamaModelUrl" yaml:"ollamaModelUrl" toml:"ollamaModelUrl"`
	LMStudioModelURL string `json:"lmstudioModelUrl" yaml:"lmstudioModelUrl" toml:"lmstudioModelUrl"`
	GPT4AllModelURL  string `json:"gpt4allModelUrl" yaml:"gpt4allModelUrl" toml:"gpt4allModelUrl"`
	JanModelURL      string `json:"janModelUrl" yaml:"janModelUrl" toml:"janModelUrl"`
	ExoModelURL      string `json:"exoModelUrl" yaml:"exoModelUrl" toml:"exoModelUrl"`
	LlamaCPPURL      string `json:"llamaCPPUrl" yaml:"llamaCPPUrl" toml:"llamaCPPUrl"`

	// API keys
	OpenAIKey    string `json:"openAIKey" yaml:"openAIKey" toml:"openAIKey"`
	MistralKey   string `json:"mistralKey" yaml:"mistralKey" toml:"mistralKey"`
	AnthropicKey string `json:"anthropicKey" yaml:"anthropicKey" toml:"anthropicKey"`
	GroqKey      string `json:"groqKey" yaml:"groqKey" toml:"groqKey"`
	DeepInfraKey string `json:"deepInfraKey" yaml:"deepInfraKey" toml:"deepInfraKey"`
	GeminiKey    string `json:"geminiKey" yaml:"geminiKey" toml:"geminiKey"`

	// Web search
	HideSearchButtonsFlag bool   `json:"hideSearchButtonsFlag" yaml:"hideSearchButtonsFlag" toml:"hideSearchButtonsFlag"`
	GoogleSearchKey       string `json:"googleSearchKey" yaml:"googleSearchKey" toml:"googleSearchKey"`
	GoogleCSIKey          string `json:"googleCSIKey" yaml:"googleCSIKey" toml:"googleCSIKey"`
	TavilySearchKey       string `json:"tavilySearchKey" yaml:"tavilySearchKey" toml:"tavilySearchKey"`
	MaxSearchResults      int    `json:"maxSearchResults" yaml:"maxSearchResults" toml:"maxSearchResults" jsonschema:"minimum=0"`

	// Last selection
	SelectedProvider      string `json:"selectedProvider" yaml:"selectedProvider" toml:"selectedProvider"`
	SelectedLanguageModel string `json:"selectedLanguageModel" yaml:"selectedLanguageModel" toml:"selectedLanguageModel"`

	StreamMode bool `json:"streamMode" yaml:"streamMode" toml:"streamMode"`

	// Generation parameters
	Temperature     float64 `json:"temperature" yaml:"temperature" toml:"temperature" jsonschema:"minimum=0,maximum=2"`
	TopP            float64 `json:"topP" yaml:"topP" toml:"topP" jsonschema:"minimum=0,maximum=1"`
	Timeout         int     `json:"timeout" yaml:"timeout" toml:"timeout" jsonschema:"minimum=0,description=Request timeout in seconds"`
	MaxRetries      int     `json:"maxRetries" yaml:"maxRetries" toml:"maxRetries" jsonschema:"minimum=0"`
	ChatMemorySize  int     `json:"chatMemorySize" yaml:"chatMemorySize" toml:"chatMemorySize" jsonschema:"minimum=0"`
	MaxOutputTokens int     `json:"maxOutputTokens" yaml:"maxOutputTokens" toml:"maxOutputTokens" jsonschema:"minimum=0"`

	// Source scanning
	ASTMode           bool `json:"astMode" yaml:"astMode" toml:"astMode"`
	ASTParentClass    bool `json:"astParentClass" yaml:"astParentClass" toml:"astParentClass"`
	ASTClassReference bool `json:"astClassReference" yaml:"astClassReference" toml:"astClassReference"`
	ASTFieldReference bool `json:"astFieldReference" yaml:"astFieldReference" toml:"astFieldReference"`

	SystemPrompt  string `json:"systemPrompt" yaml:"systemPrompt" toml:"systemPrompt"`
	TestPrompt    string `json:"testPrompt" yaml:"testPrompt" toml:"testPrompt"`
	ReviewPrompt  string `json:"reviewPrompt" yaml:"reviewPrompt" toml:"reviewPrompt"`
	ExplainPrompt string `json:"explainPrompt" yaml:"explainPrompt" toml:"explainPrompt"`

	ExcludeJavaDoc         bool     `json:"excludeJavaDoc" yaml:"excludeJavaDoc" toml:"excludeJavaDoc"`
	ExcludedDirectories    []string `json:"excludedDirectories" yaml:"excludedDirectories" toml:"excludedDirectories"`
	IncludedFileExtensions []string `json:"includedFileExtensions" yaml:"includedFileExtensions" toml:"includedFileExtensions"`

	// Cost and window overrides
	ModelInputCosts      map[string]float64 `json:"modelInputCosts" yaml:"modelInputCosts" toml:"modelInputCosts"`
	ModelOutputCosts     map[string]float64 `json:"modelOutputCosts" yaml:"modelOutputCosts" toml:"modelOutputCosts"`
	ModelWindowContexts  map[string]int     `json:"modelWindowContexts" yaml:"modelWindowContexts" toml:"modelWindowContexts"`
	DefaultWindowContext int                `json:"defaultWindowContext" yaml:"defaultWindowContext" toml:"defaultWindowContext" jsonschema:"minimum=1"`
}

// DefaultState returns a snapshot holding the shipped defaults.
// Prompts and cost maps are empty; the Service lifecycle hooks seed them.
func DefaultState() *State {
	return &State{
		OllamaModelURL:   provider.DefaultBaseURL(provider.Ollama),
		LMStudioModelURL: provider.DefaultBaseURL(provider.LMStudio),
		GPT4AllModelURL:  provider.DefaultBaseURL(provider.GPT4All),
		JanModelURL:      provider.DefaultBaseURL(provider.Jan),
		ExoModelURL:      provider.DefaultBaseURL(provider.Exo),
		LlamaCPPURL:      provider.DefaultBaseURL(provider.LLaMA),

		MaxSearchResults: DefaultMaxSearchResults,

		Temperature:     DefaultTemperature,
		TopP:            DefaultTopP,
		Timeout:         DefaultTimeoutSeconds,
		MaxRetries:      DefaultMaxRetries,
		ChatMemorySize:  DefaultChatMemorySize,
		MaxOutputTokens: DefaultMaxOutputTokens,

		SystemPrompt:  SystemPrompt,
		TestPrompt:    TestPrompt,
		ReviewPrompt:  ReviewPrompt,
		ExplainPrompt: ExplainPrompt,

		ExcludedDirectories: []string{
			"build", ".git", "bin", "out", "target", "node_modules", ".idea",
		},
		IncludedFileExtensions: []string{
			"java", "kt", "groovy", "scala", "xml", "json", "yaml", "yml", "properties", "txt", "md",
		},

		ModelInputCosts:      make(map[string]float64),
		ModelOutputCosts:     make(map[string]float64),
		ModelWindowContexts:  make(map[string]int),
		DefaultWindowContext: DefaultWindowContext,
	}
}

// defaultPrompts returns the built-in prompts in seeding order.
func defaultPrompts() []CustomPrompt {
	return []CustomPrompt{
		{Name: PromptTest, Prompt: TestPrompt},
		{Name: PromptExplain, Prompt: ExplainPrompt},
		{Name: PromptReview, Prompt: ReviewPrompt},
	}
}

// Clone creates a deep copy of the snapshot.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	clone := *s
	clone.CustomPrompts = slices.Clone(s.CustomPrompts)
	clone.LanguageModels = slices.Clone(s.LanguageModels)
	clone.ExcludedDirectories = slices.Clone(s.ExcludedDirectories)
	clone.IncludedFileExtensions = slices.Clone(s.IncludedFileExtensions)
	clone.ModelInputCosts = maps.Clone(s.ModelInputCosts)
	clone.ModelOutputCosts = maps.Clone(s.ModelOutputCosts)
	clone.ModelWindowContexts = maps.Clone(s.ModelWindowContexts)
	return &clone
}

// apiKeyField returns the field holding the API key of p, or nil when p
// takes no key.
func (s *State) apiKeyField(p provider.Provider) *string {
	switch p {
	case provider.OpenAI:
		return &s.OpenAIKey
	case provider.Mistral:
		return &s.MistralKey
	case provider.Anthropic:
		return &s.AnthropicKey
	case provider.Groq:
		return &s.GroqKey
	case provider.DeepInfra:
		return &s.DeepInfraKey
	case provider.Google:
		return &s.GeminiKey
	default:
		return nil
	}
}

// urlField returns the field holding the configurable URL of p, or nil when
// p uses a fixed endpoint.
func (s *State) urlField(p provider.Provider) *string {
	switch p {
	case provider.Ollama:
		return &s.OllamaModelURL
	case provider.LMStudio:
		return &s.LMStudioModelURL
	case provider.GPT4All:
		return &s.GPT4AllModelURL
	case provider.Jan:
		return &s.JanModelURL
	case provider.Exo:
		return &s.ExoModelURL
	case provider.LLaMA:
		return &s.LlamaCPPURL
	default:
		return nil
	}
}
