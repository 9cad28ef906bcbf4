package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"job-recommender/internal/llm"
)

// DefaultHost is the local Ollama server address.
const DefaultHost = "http://localhost:11434"

// Client implements llm.Completer against a local Ollama server.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient constructs an Ollama client for host.
func NewClient(host, model string, timeout time.Duration) *Client {
	if strings.TrimSpace(host) == "" {
		host = DefaultHost
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(host, "/")).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c, model: model}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict  int     `json:"num_predict"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Complete issues a non-streaming generate call and returns the response text.
func (c *Client) Complete(ctx context.Context, in llm.Request) (string, error) {
	var out generateResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  c.model,
			Prompt: in.Prompt,
			Stream: false,
			Options: generateOptions{
				NumPredict:  in.MaxTokens,
				Temperature: in.Temperature,
			},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/generate")
	if err != nil {
		return "", &llm.RequestError{Provider: llm.ProviderOllama, Err: err}
	}
	if resp.IsError() {
		msg := strings.TrimSpace(apiErr.Error)
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return "", &llm.RequestError{
			Provider:   llm.ProviderOllama,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("ollama http status %d: %s", resp.StatusCode(), msg),
		}
	}
	if !resp.IsSuccess() {
		return "", &llm.RequestError{Provider: llm.ProviderOllama, StatusCode: resp.StatusCode(), Err: errors.New("unexpected ollama response")}
	}
	return out.Response, nil
}

var _ llm.Completer = (*Client)(nil)
