package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceRecord is one completed exercise attempt, written by the
// exercise player. This engine only reads it.
type PerformanceRecord struct {
	ent.Schema
}

func (PerformanceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable().
			Comment("Learner who completed the exercise"),
		field.String("topic").
			NotEmpty().
			Immutable().
			Comment("Topic key, e.g. present-tense"),
		field.String("exercise_type").
			NotEmpty().
			Immutable().
			Comment("multiple_choice, fill_blank, translation, conjugation, or sentence_structure"),
		field.String("difficulty").
			NotEmpty().
			Immutable().
			Comment("easy, medium, or hard"),
		field.Float("score").
			Range(0, 100).
			Immutable().
			Comment("Overall score for the attempt, 0-100"),
		field.Int("questions_total").
			Positive().
			Immutable(),
		field.Int("questions_correct").
			Min(0).
			Immutable(),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PerformanceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "completed_at"),
		index.Fields("topic"),
	}
}
