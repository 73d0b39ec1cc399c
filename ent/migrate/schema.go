// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeliverablesColumns holds the columns for the "deliverables" table.
	DeliverablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "exercise_type", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "item_count", Type: field.TypeInt},
		{Name: "items", Type: field.TypeJSON},
		{Name: "question_texts", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeliverablesTable holds the schema information for the "deliverables" table.
	DeliverablesTable = &schema.Table{
		Name:       "deliverables",
		Columns:    DeliverablesColumns,
		PrimaryKey: []*schema.Column{DeliverablesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deliverable_topic_exercise_type",
				Unique:  false,
				Columns: []*schema.Column{DeliverablesColumns[1], DeliverablesColumns[2]},
			},
			{
				Name:    "deliverable_topic_exercise_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliverablesColumns[1], DeliverablesColumns[2], DeliverablesColumns[8]},
			},
		},
	}
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "exercise_type", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[11]},
			},
			{
				Name:    "generationevent_topic_exercise_type",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[4], GenerationEventsColumns[5]},
			},
			{
				Name:    "generationevent_success",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[9]},
			},
		},
	}
	// LevelProgressesColumns holds the columns for the "level_progresses" table.
	LevelProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "exercises_completed", Type: field.TypeInt, Default: 0},
		{Name: "topic_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LevelProgressesTable holds the schema information for the "level_progresses" table.
	LevelProgressesTable = &schema.Table{
		Name:       "level_progresses",
		Columns:    LevelProgressesColumns,
		PrimaryKey: []*schema.Column{LevelProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "levelprogress_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LevelProgressesColumns[1]},
			},
		},
	}
	// PerformanceRecordsColumns holds the columns for the "performance_records" table.
	PerformanceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "exercise_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "questions_total", Type: field.TypeInt},
		{Name: "questions_correct", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// PerformanceRecordsTable holds the schema information for the "performance_records" table.
	PerformanceRecordsTable = &schema.Table{
		Name:       "performance_records",
		Columns:    PerformanceRecordsColumns,
		PrimaryKey: []*schema.Column{PerformanceRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancerecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PerformanceRecordsColumns[1]},
			},
			{
				Name:    "performancerecord_learner_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PerformanceRecordsColumns[1], PerformanceRecordsColumns[8]},
			},
			{
				Name:    "performancerecord_topic",
				Unique:  false,
				Columns: []*schema.Column{PerformanceRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeliverablesTable,
		GenerationEventsTable,
		LevelProgressesTable,
		PerformanceRecordsTable,
	}
)

func init() {
}
