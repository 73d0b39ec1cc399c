package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrContentRefusal indicates the provider declined to generate content
// for the requested topic or phrasing. Never retried: a repeat of the
// same prompt will be refused again.
type ErrContentRefusal struct {
	Err error
}

func (e *ErrContentRefusal) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content refused by provider: %v", e.Err)
	}
	return "content refused by provider"
}

func (e *ErrContentRefusal) Unwrap() error { return e.Err }

// ErrReasoningExhausted indicates the provider spent its internal token
// budget and returned no usable content.
type ErrReasoningExhausted struct {
	Content json.RawMessage
}

func (e *ErrReasoningExhausted) Error() string {
	return "provider exhausted its reasoning budget before producing content"
}

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid provider response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// rateLimitSignatures are error-text fragments that identify a rate limit
// for providers that don't surface an HTTP status code.
var rateLimitSignatures = []string{
	"rate limit",
	"rate_limit",
	"too many requests",
	"429",
	"quota exceeded",
}

// IsRateLimited reports whether err is a rate-limit failure, either by
// type or by error-text signature.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range rateLimitSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
