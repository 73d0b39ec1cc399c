package store

import (
	"context"
	"fmt"

	"github.com/verbly-app/verbly/ent"
	"github.com/verbly-app/verbly/ent/generationevent"
)

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	builder := r.client.GenerationEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.Topic != "" {
		builder = builder.SetTopic(data.Topic)
	}
	if data.ExerciseType != "" {
		builder = builder.SetExerciseType(data.ExerciseType)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGenerations(ctx context.Context, limit int) ([]GenerationEventRecord, error) {
	q := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldTimestamp), ent.Desc(generationevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	records := make([]GenerationEventRecord, 0, len(rows))
	for _, e := range rows {
		records = append(records, GenerationEventRecord{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			GenerationEventData: GenerationEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				Topic:        e.Topic,
				ExerciseType: e.ExerciseType,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]GenerationUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"total_input"`
		OutputTokens int     `json:"total_output"`
		AvgLatencyMs float64 `json:"avg_latency"`
	}
	err := r.client.GenerationEvent.Query().
		GroupBy(generationevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(generationevent.FieldInputTokens), "total_input"),
			ent.As(ent.Sum(generationevent.FieldOutputTokens), "total_output"),
			ent.As(ent.Mean(generationevent.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate generation events: %w", err)
	}

	usage := make([]GenerationUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, GenerationUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return usage, nil
}
