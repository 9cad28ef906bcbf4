package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"job-recommender/internal/llm"
)

// Client implements llm.Completer for any OpenAI-compatible chat completions
// API using the official OpenAI SDK.
type Client struct {
	client   *openai.Client
	provider llm.Provider
	keyEnv   string
	apiKey   string
	model    string
}

// Options configures a Client for one provider.
type Options struct {
	Provider llm.Provider
	// KeyEnv names the variable reported when APIKey is empty.
	KeyEnv  string
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewClient constructs an OpenAI client.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return New(Options{
		Provider: llm.ProviderOpenAI,
		KeyEnv:   "OPENAI_API_KEY",
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  timeout,
	})
}

// New constructs a client for an OpenAI-compatible provider. SDK-level retries
// are disabled; retry policy is applied by llm.WithRetry. A missing key is
// reported on first use.
func New(o Options) *Client {
	apiKey := strings.TrimSpace(o.APIKey)
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(o.Timeout))
	}
	if base := strings.TrimSpace(o.BaseURL); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	return &Client{
		client:   openai.NewClient(opts...),
		provider: o.Provider,
		keyEnv:   o.KeyEnv,
		apiKey:   apiKey,
		model:    o.Model,
	}
}

// Provider reports which backend the client talks to.
func (c *Client) Provider() llm.Provider { return c.provider }

// Complete sends a single user message and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, in llm.Request) (string, error) {
	if c.apiKey == "" {
		return "", &llm.ConfigError{Provider: c.provider, Key: c.keyEnv}
	}

	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(in.Prompt),
		}),
		Model:       openai.F(openai.ChatModel(c.model)),
		Temperature: openai.F(in.Temperature),
	}
	if in.MaxTokens > 0 {
		params.MaxTokens = openai.F(int64(in.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		status := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return "", &llm.RequestError{Provider: c.provider, StatusCode: status, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &llm.RequestError{Provider: c.provider, Err: fmt.Errorf("%s response missing choices", c.provider)}
	}
	return completion.Choices[0].Message.Content, nil
}

var _ llm.Completer = (*Client)(nil)
