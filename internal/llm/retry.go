package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"
)

// RetryProvider is a decorator that retries transient failures with
// exponential backoff and jitter. It makes at most MaxRetries+1 total
// attempts and fails immediately on non-retryable errors.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.config.MaxRetries + 1
	var lastErr error
	invalidRetried := false

	for attempt := range attempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return nil, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == attempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		fmt.Fprintf(os.Stderr, "retrying provider call: attempt %d failed, waiting %s\n", attempt+1, wait.Round(time.Millisecond))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("retries exhausted after %d attempts: %w", attempts, lastErr)
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func (r *RetryProvider) shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A refusal will be refused again; retrying rephrased content is out
	// of scope. A spent reasoning budget won't recover on replay either.
	var refusal *ErrContentRefusal
	if errors.As(err, &refusal) {
		return false
	}
	var exhausted *ErrReasoningExhausted
	if errors.As(err, &exhausted) {
		return false
	}

	// Invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, by type or by error-text signature, and provider
	// outages are transient.
	if IsRateLimited(err) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	return false
}

// backoff computes the wait for the given 0-indexed attempt:
// BaseDelay * 2^attempt plus random jitter up to MaxJitter.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.BaseDelay) * math.Pow(2, float64(attempt))
	if jitter := r.config.MaxJitter; jitter > 0 {
		wait += rand.Float64() * float64(jitter)
	}

	return time.Duration(wait)
}
