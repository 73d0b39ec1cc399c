package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deliverable is a persisted, user-facing group of generated items (an
// exercise). Question texts are denormalized so the deduplication filter
// can read them without decoding the item payload.
type Deliverable struct {
	ent.Schema
}

func (Deliverable) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned by the distributor"),
		field.String("topic").
			NotEmpty(),
		field.String("exercise_type").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("CEFR level the exercise targets, e.g. A1"),
		field.String("difficulty").
			NotEmpty().
			Comment("Dominant difficulty label assigned by the distributor"),
		field.Int("item_count").
			Positive().
			Comment("Number of items; a deliverable is never empty"),
		field.JSON("items", json.RawMessage{}).
			Comment("Generated items as JSON"),
		field.JSON("question_texts", []string{}).
			Comment("Flattened item prompts, read by the deduplication filter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Deliverable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "exercise_type"),
		index.Fields("topic", "exercise_type", "created_at"),
	}
}
