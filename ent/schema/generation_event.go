package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records a single AI provider call made by the
// generation pipeline, successful or not.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider name, e.g. anthropic"),
		field.String("model").
			NotEmpty().
			Comment("Model that served the request"),
		field.String("purpose").
			NotEmpty().
			Comment("What the call was for, e.g. item-gen"),
		field.String("topic").
			Optional().
			Comment("Topic being generated for, when applicable"),
		field.String("exercise_type").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("topic", "exercise_type"),
		index.Fields("success"),
	}
}
