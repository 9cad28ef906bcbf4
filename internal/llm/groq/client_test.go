package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"job-recommender/internal/llm"
)

func TestCompleteSendsSingleUserMessage(t *testing.T) {
	var mu sync.Mutex
	var lastBody map[string]any
	var lastAuth, lastPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		mu.Lock()
		lastBody = payload
		lastAuth = r.Header.Get("Authorization")
		lastPath = r.URL.Path
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"llama-3.1-8b-instant",` +
			`"choices":[{"index":0,"finish_reason":"stop","logprobs":null,"message":{"role":"assistant","content":"A concise summary","refusal":null}},` +
			`{"index":1,"finish_reason":"stop","logprobs":null,"message":{"role":"assistant","content":"ignored","refusal":null}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "llama-3.1-8b-instant", time.Second)
	if client.Provider() != llm.ProviderGroq {
		t.Fatalf("unexpected provider %q", client.Provider())
	}
	got, err := client.Complete(context.Background(), llm.Request{Prompt: "Summarize", MaxTokens: 400, Temperature: 0.5})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "A concise summary" {
		t.Fatalf("expected first choice content, got %q", got)
	}

	mu.Lock()
	defer mu.Unlock()
	if lastPath != "/chat/completions" {
		t.Fatalf("unexpected path %q", lastPath)
	}
	if lastAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", lastAuth)
	}
	if lastBody["model"] != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected model: %v", lastBody["model"])
	}
	if lastBody["max_tokens"] != float64(400) {
		t.Fatalf("unexpected max_tokens: %v", lastBody["max_tokens"])
	}
	if lastBody["temperature"] != 0.5 {
		t.Fatalf("unexpected temperature: %v", lastBody["temperature"])
	}
	messages, ok := lastBody["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected one message, got %v", lastBody["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "Summarize" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestCompleteMissingKeyFailsBeforeNetwork(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient(server.URL, " ", "m", time.Second)
	_, err := client.Complete(context.Background(), llm.NewRequest("hi", 10))

	var cfgErr *llm.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Key != "GROQ_API_KEY" {
		t.Fatalf("unexpected key %q", cfgErr.Key)
	}
	if calls != 0 {
		t.Fatalf("expected no upstream calls, got %d", calls)
	}
}

func TestCompleteWrapsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"over capacity","type":"server_error"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "m", time.Second)
	_, err := client.Complete(context.Background(), llm.NewRequest("hi", 10))

	var reqErr *llm.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", reqErr.StatusCode)
	}
	if !reqErr.Temporary() {
		t.Fatalf("expected 503 to be temporary")
	}
}

func TestCompleteMissingChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "m", time.Second)
	_, err := client.Complete(context.Background(), llm.NewRequest("hi", 10))

	var reqErr *llm.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Provider != llm.ProviderGroq {
		t.Fatalf("unexpected provider %q", reqErr.Provider)
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, "k", "m", time.Second)
	_, err := client.Complete(context.Background(), llm.NewRequest("hi", 10))

	var reqErr *llm.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Provider != llm.ProviderGroq {
		t.Fatalf("unexpected provider %q", reqErr.Provider)
	}
}
