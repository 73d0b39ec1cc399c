package store

import (
	"context"
	"fmt"

	"github.com/verbly-app/verbly/ent"
	"github.com/verbly-app/verbly/ent/performancerecord"
)

type performanceRepo struct {
	client *ent.Client
}

func (r *performanceRepo) RecentByLearner(ctx context.Context, learnerID string, limit int) ([]PerformanceData, error) {
	q := r.client.PerformanceRecord.Query().
		Where(performancerecord.LearnerID(learnerID)).
		Order(ent.Desc(performancerecord.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	records, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance records: %w", err)
	}

	out := make([]PerformanceData, len(records))
	for i, rec := range records {
		out[i] = PerformanceData{
			LearnerID:        rec.LearnerID,
			Topic:            rec.Topic,
			ExerciseType:     rec.ExerciseType,
			Difficulty:       rec.Difficulty,
			Score:            rec.Score,
			QuestionsTotal:   rec.QuestionsTotal,
			QuestionsCorrect: rec.QuestionsCorrect,
			CompletedAt:      rec.CompletedAt,
		}
	}
	return out, nil
}
