package store

import (
	"context"
	"fmt"

	"github.com/verbly-app/verbly/ent"
	"github.com/verbly-app/verbly/ent/levelprogress"
)

type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Latest(ctx context.Context, learnerID string) (*LevelProgressData, error) {
	lp, err := r.client.LevelProgress.Query().
		Where(levelprogress.LearnerID(learnerID)).
		Order(ent.Desc(levelprogress.FieldUpdatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query level progress: %w", err)
	}

	return &LevelProgressData{
		LearnerID:          lp.LearnerID,
		Level:              lp.Level,
		AverageScore:       lp.AverageScore,
		ExercisesCompleted: lp.ExercisesCompleted,
		TopicScores:        lp.TopicScores,
		UpdatedAt:          lp.UpdatedAt,
	}, nil
}
