// Package groq talks to Groq through its OpenAI-compatible endpoint.
package groq

import (
	"strings"
	"time"

	"job-recommender/internal/llm"
	"job-recommender/internal/llm/openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// NewClient constructs a Groq client. A missing key is reported on first use.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *openai.Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return openai.New(openai.Options{
		Provider: llm.ProviderGroq,
		KeyEnv:   "GROQ_API_KEY",
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  timeout,
	})
}
