package llm

import (
	"context"
	"errors"
	"time"

	"job-recommender/internal/shared/metrics"
	"job-recommender/internal/shared/telemetry"
)

const defaultRetryDelay = 300 * time.Millisecond

// Unwrapper is implemented by decorators so callers can reach the backend.
type Unwrapper interface {
	Unwrap() Completer
}

// Base returns the innermost Completer behind any decorators.
func Base(c Completer) Completer {
	for {
		u, ok := c.(Unwrapper)
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}

type timeoutCompleter struct {
	base    Completer
	timeout time.Duration
}

// WithTimeout bounds every call with its own deadline.
func WithTimeout(base Completer, timeout time.Duration) Completer {
	if timeout <= 0 {
		return base
	}
	return timeoutCompleter{base: base, timeout: timeout}
}

func (t timeoutCompleter) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.base.Complete(ctx, req)
}

func (t timeoutCompleter) Unwrap() Completer { return t.base }

type retryingCompleter struct {
	base       Completer
	maxRetries int
	delay      time.Duration
}

// WithRetry retries transient RequestErrors up to maxRetries extra times with
// doubling delay. maxRetries <= 0 returns base unchanged.
func WithRetry(base Completer, maxRetries int, delay time.Duration) Completer {
	if maxRetries <= 0 {
		return base
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	return retryingCompleter{base: base, maxRetries: maxRetries, delay: delay}
}

func (r retryingCompleter) Complete(ctx context.Context, req Request) (string, error) {
	out, err := r.base.Complete(ctx, req)
	delay := r.delay
	for attempt := 1; attempt <= r.maxRetries && shouldRetry(err); attempt++ {
		telemetry.Warn("llm.retry", map[string]any{
			"attempt":     attempt,
			"max_retries": r.maxRetries,
			"delay_ms":    delay.Milliseconds(),
			"error":       err,
		})
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		delay *= 2
		out, err = r.base.Complete(ctx, req)
	}
	return out, err
}

func (r retryingCompleter) Unwrap() Completer { return r.base }

func shouldRetry(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.Temporary()
}

type instrumentedCompleter struct {
	base     Completer
	provider Provider
}

// Instrument records latency and outcome of each call.
func Instrument(base Completer, provider Provider) Completer {
	return instrumentedCompleter{base: base, provider: provider}
}

func (i instrumentedCompleter) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	out, err := i.base.Complete(ctx, req)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ObserveLLMRequest(string(i.provider), outcome, time.Since(start))
	return out, err
}

func (i instrumentedCompleter) Unwrap() Completer { return i.base }
