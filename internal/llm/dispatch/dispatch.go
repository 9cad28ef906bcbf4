// Package dispatch builds the configured llm.Completer once at startup.
package dispatch

import (
	"context"

	"job-recommender/internal/llm"
	"job-recommender/internal/llm/groq"
	"job-recommender/internal/llm/ollama"
	"job-recommender/internal/llm/openai"
)

// New resolves cfg.Provider and returns the decorated backend. An unknown
// provider yields a Completer whose every call fails without network I/O.
func New(cfg llm.Config) llm.Completer {
	provider, err := llm.ParseProvider(cfg.Provider)
	if err != nil {
		return unknownProvider{err: err}
	}

	var base llm.Completer
	model := cfg.ModelFor(provider)
	switch provider {
	case llm.ProviderGroq:
		base = groq.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, model, cfg.Timeout)
	case llm.ProviderOpenAI:
		base = openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, model, cfg.Timeout)
	case llm.ProviderOllama:
		base = ollama.NewClient(cfg.OllamaHost, model, cfg.Timeout)
	default:
		return unknownProvider{err: &llm.UnknownProviderError{Name: cfg.Provider}}
	}

	c := llm.WithTimeout(base, cfg.Timeout)
	c = llm.Instrument(c, provider)
	return llm.WithRetry(c, cfg.MaxRetries, cfg.RetryDelay)
}

type unknownProvider struct {
	err error
}

func (u unknownProvider) Complete(context.Context, llm.Request) (string, error) {
	return "", u.err
}
