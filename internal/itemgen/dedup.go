package itemgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/verbly-app/verbly/internal/store"
)

// Dedup collects previously generated question texts so the prompt can
// steer away from repeats. This is advisory only: the provider is not
// guaranteed to honor the list, and no post-generation duplicate check
// is performed.
type Dedup struct {
	deliverables store.DeliverableRepo
}

// NewDedup creates a deduplication filter over the deliverable store.
func NewDedup(repo store.DeliverableRepo) *Dedup {
	return &Dedup{deliverables: repo}
}

// PriorQuestions returns every question text previously persisted for the
// (topic, exercise type) pair.
func (d *Dedup) PriorQuestions(ctx context.Context, topic string, exerciseType ExerciseType) ([]string, error) {
	texts, err := d.deliverables.PriorQuestionTexts(ctx, topic, string(exerciseType))
	if err != nil {
		return nil, fmt.Errorf("collect prior questions: %w", err)
	}
	return texts, nil
}

// formatAvoid renders the avoid list for the prompt, keeping only the most
// recent max entries. Returns "None" if there is nothing to avoid.
func formatAvoid(texts []string, max int) string {
	if len(texts) == 0 {
		return "None"
	}

	if max > 0 && len(texts) > max {
		texts = texts[len(texts)-max:]
	}

	var b strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
