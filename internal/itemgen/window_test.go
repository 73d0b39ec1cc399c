package itemgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verbly-app/verbly/internal/store"
)

// fakeDeliverableRepo is an in-memory store.DeliverableRepo shared by the
// window, dedup, and orchestrator tests.
type fakeDeliverableRepo struct {
	texts    []string
	latest   time.Time
	inserted []store.DeliverableData
	err      error
}

func (f *fakeDeliverableRepo) Insert(_ context.Context, data store.DeliverableData) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, data)
	return nil
}

func (f *fakeDeliverableRepo) PriorQuestionTexts(_ context.Context, topic, exerciseType string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.texts, nil
}

func (f *fakeDeliverableRepo) Purge(_ context.Context, topic string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := len(f.inserted)
	f.inserted = nil
	return n, nil
}

func (f *fakeDeliverableRepo) LatestCreatedAt(_ context.Context, topic, exerciseType string) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	return f.latest, nil
}

func TestRateWindow_NoPriorGeneration(t *testing.T) {
	w := NewRateWindow(&fakeDeliverableRepo{})
	if err := w.Check(context.Background(), "present-tense", TypeFillBlank); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRateWindow_WithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	w := NewRateWindow(&fakeDeliverableRepo{latest: now.Add(-30 * time.Second)})
	w.now = func() time.Time { return now }

	err := w.Check(context.Background(), "present-tense", TypeFillBlank)
	var throttled *ErrGenerationThrottled
	if !errors.As(err, &throttled) {
		t.Fatalf("expected ErrGenerationThrottled, got %v", err)
	}
	if throttled.RetryAfter != 90*time.Second {
		t.Errorf("expected 90s remaining, got %s", throttled.RetryAfter)
	}
	if throttled.Topic != "present-tense" || throttled.ExerciseType != TypeFillBlank {
		t.Errorf("throttle error should carry the pair: %+v", throttled)
	}
}

func TestRateWindow_ExactlyAtBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	w := NewRateWindow(&fakeDeliverableRepo{latest: now.Add(-GenerationWindow)})
	w.now = func() time.Time { return now }

	if err := w.Check(context.Background(), "present-tense", TypeFillBlank); err != nil {
		t.Fatalf("the boundary itself is allowed: %v", err)
	}
}

func TestRateWindow_StoreError(t *testing.T) {
	w := NewRateWindow(&fakeDeliverableRepo{err: errors.New("db locked")})
	if err := w.Check(context.Background(), "present-tense", TypeFillBlank); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
