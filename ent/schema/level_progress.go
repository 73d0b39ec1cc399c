package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LevelProgress is an aggregate per-learner snapshot maintained by the
// exercise player. The proficiency analyzer falls back to it when a
// learner has no individual performance records.
type LevelProgress struct {
	ent.Schema
}

func (LevelProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique(),
		field.String("level").
			NotEmpty().
			Comment("Last known CEFR level"),
		field.Float("average_score").
			Range(0, 100).
			Default(0),
		field.Int("exercises_completed").
			Default(0),
		field.JSON("topic_scores", map[string]float64{}).
			Optional().
			Comment("Per-topic average scores at snapshot time"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LevelProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
