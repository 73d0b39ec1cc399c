package store

import (
	"context"
	"fmt"
	"time"

	"github.com/verbly-app/verbly/ent"
	"github.com/verbly-app/verbly/ent/deliverable"
)

type deliverableRepo struct {
	client *ent.Client
}

func (r *deliverableRepo) Insert(ctx context.Context, data DeliverableData) error {
	if data.ItemCount <= 0 {
		return fmt.Errorf("refusing to persist empty deliverable %q", data.ID)
	}

	_, err := r.client.Deliverable.Create().
		SetID(data.ID).
		SetTopic(data.Topic).
		SetExerciseType(data.ExerciseType).
		SetLevel(data.Level).
		SetDifficulty(data.Difficulty).
		SetItemCount(data.ItemCount).
		SetItems(data.Items).
		SetQuestionTexts(data.QuestionTexts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save deliverable: %w", err)
	}
	return nil
}

func (r *deliverableRepo) PriorQuestionTexts(ctx context.Context, topic, exerciseType string) ([]string, error) {
	rows, err := r.client.Deliverable.Query().
		Where(
			deliverable.Topic(topic),
			deliverable.ExerciseType(exerciseType),
		).
		Order(ent.Asc(deliverable.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query deliverables: %w", err)
	}

	var texts []string
	for _, d := range rows {
		texts = append(texts, d.QuestionTexts...)
	}
	return texts, nil
}

func (r *deliverableRepo) Purge(ctx context.Context, topic string) (int, error) {
	del := r.client.Deliverable.Delete()
	if topic != "" {
		del = del.Where(deliverable.Topic(topic))
	}
	n, err := del.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge deliverables: %w", err)
	}
	return n, nil
}

func (r *deliverableRepo) LatestCreatedAt(ctx context.Context, topic, exerciseType string) (time.Time, error) {
	d, err := r.client.Deliverable.Query().
		Where(
			deliverable.Topic(topic),
			deliverable.ExerciseType(exerciseType),
		).
		Order(ent.Desc(deliverable.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest deliverable: %w", err)
	}
	return d.CreatedAt, nil
}
