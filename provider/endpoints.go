package provider

// DefaultBaseURL returns the shipped endpoint for a provider.
// API-based providers always use this value. Local providers use it only
// until the user configures their own URL in settings.
func DefaultBaseURL(p Provider) string {
	return baseURLs[p]
}

var baseURLs = map[Provider]string{
	Ollama:   "http://localhost:11434/",
	LMStudio: "http://localhost:1234/v1/",
	GPT4All:  "http://localhost:4891/v1/",
	Jan:      "http://localhost:1337/v1/",
	Exo:      "http://localhost:8000/v1/",
	LLaMA:    "http://localhost:8080",

	OpenAI:    "https://api.openai.com/v1",
	Anthropic: "https://api.anthropic.com/v1",
	Mistral:   "https://api.mistral.ai/v1",
	Groq:      "https://api.groq.com/openai/v1",
	DeepInfra: "https://api.deepinfra.com/v1/openai",
	Google:    "https://generativelanguage.googleapis.com/v1beta",
}
