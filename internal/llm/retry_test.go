package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fastRetry keeps test waits negligible.
func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxJitter:  0,
	}
}

func okResponse() MockResponse {
	return MockResponse{Content: []byte(`{"ok":true}`)}
}

func TestRetry_SuccessFirstAttempt(t *testing.T) {
	mock := NewMockProvider(okResponse())
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}},
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAllAttempts(t *testing.T) {
	mock := NewMockProvider()
	// Empty queue: every call fails with ErrProviderUnavailable.
	p := WithRetry(mock, fastRetry(2))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected MaxRetries+1 = 3 calls, got %d", mock.CallCount())
	}
	if !strings.Contains(err.Error(), "retries exhausted after 3 attempts") {
		t.Errorf("unexpected error text: %v", err)
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestRetry_RefusalNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrContentRefusal{}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var refusal *ErrContentRefusal
	if !errors.As(err, &refusal) {
		t.Fatalf("expected ErrContentRefusal, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("refusal must not be retried: got %d calls", mock.CallCount())
	}
}

func TestRetry_ReasoningExhaustedNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrReasoningExhausted{}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var exhausted *ErrReasoningExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ErrReasoningExhausted, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("exhausted budget must not be retried: got %d calls", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("second invalid response must end the attempt: got %d calls", mock.CallCount())
	}
}

func TestRetry_RateLimitSignatureText(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("upstream: 429 Too Many Requests")},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("signature-matched rate limit should retry: got %d calls", mock.CallCount())
	}
}

func TestRetry_UnknownErrorNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("malformed request")},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("unknown errors must fail immediately: got %d calls", mock.CallCount())
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 30 * time.Millisecond}},
		okResponse(),
	)
	p := WithRetry(mock, fastRetry(3))

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("expected to wait at least RetryAfter, waited %s", elapsed)
	}
}

func TestRetry_ContextCancelStopsWaiting(t *testing.T) {
	mock := NewMockProvider() // Always ErrProviderUnavailable.
	p := WithRetry(mock, RetryConfig{MaxRetries: 3, BaseDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Generate(ctx, Request{})
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return after cancellation")
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry(1))
	if p.ModelID() != "mock" {
		t.Errorf("expected mock, got %q", p.ModelID())
	}
}
