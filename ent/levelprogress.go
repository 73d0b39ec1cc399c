// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/levelprogress"
)

// LevelProgress is the model entity for the LevelProgress schema.
type LevelProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Last known CEFR level
	Level string `json:"level,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// ExercisesCompleted holds the value of the "exercises_completed" field.
	ExercisesCompleted int `json:"exercises_completed,omitempty"`
	// Per-topic average scores at snapshot time
	TopicScores map[string]float64 `json:"topic_scores,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LevelProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case levelprogress.FieldTopicScores:
			values[i] = new([]byte)
		case levelprogress.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case levelprogress.FieldID, levelprogress.FieldExercisesCompleted:
			values[i] = new(sql.NullInt64)
		case levelprogress.FieldLearnerID, levelprogress.FieldLevel:
			values[i] = new(sql.NullString)
		case levelprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LevelProgress fields.
func (_m *LevelProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case levelprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case levelprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case levelprogress.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case levelprogress.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case levelprogress.FieldExercisesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercises_completed", values[i])
			} else if value.Valid {
				_m.ExercisesCompleted = int(value.Int64)
			}
		case levelprogress.FieldTopicScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicScores); err != nil {
					return fmt.Errorf("unmarshal field topic_scores: %w", err)
				}
			}
		case levelprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LevelProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LevelProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LevelProgress.
// Note that you need to call LevelProgress.Unwrap() before calling this method if this LevelProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LevelProgress) Update() *LevelProgressUpdateOne {
	return NewLevelProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LevelProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LevelProgress) Unwrap() *LevelProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LevelProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LevelProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LevelProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("exercises_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExercisesCompleted))
	builder.WriteString(", ")
	builder.WriteString("topic_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicScores))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LevelProgresses is a parsable slice of LevelProgress.
type LevelProgresses []*LevelProgress
