package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// UnknownProviderError reports a provider name outside Providers().
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown LLM provider: %q", e.Name)
}

// ConfigError reports a credential or setting the selected provider needs.
type ConfigError struct {
	Provider Provider
	Key      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is required for LLM provider %s", e.Key, e.Provider)
}

// RequestError wraps any upstream failure of a completion call.
type RequestError struct {
	Provider   Provider
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s request failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Temporary reports whether retrying the same request may succeed.
func (e *RequestError) Temporary() bool {
	switch {
	case e.StatusCode == 429 || e.StatusCode >= 500:
		return true
	case e.StatusCode > 0:
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr)
}
