package llm

import (
	"context"
	"strings"
	"time"
)

// DefaultTemperature is the sampling temperature used when callers do not pick one.
const DefaultTemperature = 0.5

// Provider names one backend variant. The set is closed: Providers lists every
// value and the dispatcher switches over all of them.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Providers returns every supported backend.
func Providers() []Provider {
	return []Provider{ProviderGroq, ProviderOpenAI, ProviderOllama}
}

// ParseProvider resolves a configured provider name.
func ParseProvider(name string) (Provider, error) {
	clean := Provider(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range Providers() {
		if p == clean {
			return p, nil
		}
	}
	return "", &UnknownProviderError{Name: name}
}

// DefaultModel returns the model used when LLM_MODEL is unset.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderOllama:
		return "llama3.1:8b"
	default:
		return ""
	}
}

// Request is one single-turn completion.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// NewRequest builds a request with the default temperature.
func NewRequest(prompt string, maxTokens int) Request {
	return Request{Prompt: prompt, MaxTokens: maxTokens, Temperature: DefaultTemperature}
}

// Completer returns the text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Config selects and configures the backend. It is built once at startup.
type Config struct {
	Provider      string
	Model         string
	GroqAPIKey    string
	GroqBaseURL   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaHost    string
	Timeout       time.Duration
	MaxRetries    int
	RetryDelay    time.Duration
}

// ModelFor returns the configured model, or the provider default.
func (c Config) ModelFor(p Provider) string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return p.DefaultModel()
}
