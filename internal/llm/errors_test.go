package llm

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"typed rate limit", &ErrRateLimit{RetryAfter: time.Second}, true},
		{"wrapped typed rate limit", fmt.Errorf("call failed: %w", &ErrRateLimit{}), true},
		{"429 in text", errors.New("HTTP 429 from upstream"), true},
		{"rate limit in text", errors.New("Rate Limit exceeded"), true},
		{"rate_limit in text", errors.New("error code rate_limit_error"), true},
		{"too many requests", errors.New("Too Many Requests"), true},
		{"quota exceeded", errors.New("monthly quota exceeded"), true},
		{"unrelated error", errors.New("connection reset by peer"), false},
		{"refusal", &ErrContentRefusal{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimited(tt.err); got != tt.want {
				t.Errorf("IsRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrRateLimit_Unwrap(t *testing.T) {
	inner := errors.New("upstream said no")
	err := &ErrRateLimit{RetryAfter: time.Second, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestErrInvalidResponse_KeepsContent(t *testing.T) {
	err := &ErrInvalidResponse{
		Content: []byte(`{"partial":`),
		Err:     errors.New("unexpected end of JSON input"),
	}
	if len(err.Content) == 0 {
		t.Error("expected the offending content to be preserved for debugging")
	}
	var target *ErrInvalidResponse
	if !errors.As(fmt.Errorf("tier failed: %w", err), &target) {
		t.Error("expected errors.As to find ErrInvalidResponse through wrapping")
	}
}
