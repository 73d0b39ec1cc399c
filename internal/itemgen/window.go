package itemgen

import (
	"context"
	"fmt"
	"time"

	"github.com/verbly-app/verbly/internal/store"
)

// GenerationWindow is the minimum gap between bulk generations for the
// same (topic, exercise type) pair. It guards against double-submits,
// independent of the upstream provider's own limits.
const GenerationWindow = 120 * time.Second

// RateWindow checks the sliding time window against prior generations.
type RateWindow struct {
	deliverables store.DeliverableRepo
	window       time.Duration
	now          func() time.Time
}

// NewRateWindow creates a guard over the deliverable store with the
// standard window.
func NewRateWindow(repo store.DeliverableRepo) *RateWindow {
	return &RateWindow{
		deliverables: repo,
		window:       GenerationWindow,
		now:          time.Now,
	}
}

// Check returns *ErrGenerationThrottled if a generation for the pair
// completed within the window, nil otherwise.
func (w *RateWindow) Check(ctx context.Context, topic string, exerciseType ExerciseType) error {
	last, err := w.deliverables.LatestCreatedAt(ctx, topic, string(exerciseType))
	if err != nil {
		return fmt.Errorf("check rate window: %w", err)
	}
	if last.IsZero() {
		return nil
	}

	elapsed := w.now().Sub(last)
	if elapsed >= w.window {
		return nil
	}

	return &ErrGenerationThrottled{
		Topic:        topic,
		ExerciseType: exerciseType,
		RetryAfter:   w.window - elapsed,
	}
}
