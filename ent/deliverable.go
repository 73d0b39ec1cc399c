// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verbly-app/verbly/ent/deliverable"
)

// Deliverable is the model entity for the Deliverable schema.
type Deliverable struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned by the distributor
	ID string `json:"id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// ExerciseType holds the value of the "exercise_type" field.
	ExerciseType string `json:"exercise_type,omitempty"`
	// CEFR level the exercise targets, e.g. A1
	Level string `json:"level,omitempty"`
	// Dominant difficulty label assigned by the distributor
	Difficulty string `json:"difficulty,omitempty"`
	// Number of items; a deliverable is never empty
	ItemCount int `json:"item_count,omitempty"`
	// Generated items as JSON
	Items json.RawMessage `json:"items,omitempty"`
	// Flattened item prompts, read by the deduplication filter
	QuestionTexts []string `json:"question_texts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deliverable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliverable.FieldItems, deliverable.FieldQuestionTexts:
			values[i] = new([]byte)
		case deliverable.FieldItemCount:
			values[i] = new(sql.NullInt64)
		case deliverable.FieldID, deliverable.FieldTopic, deliverable.FieldExerciseType, deliverable.FieldLevel, deliverable.FieldDifficulty:
			values[i] = new(sql.NullString)
		case deliverable.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deliverable fields.
func (_m *Deliverable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliverable.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliverable.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case deliverable.FieldExerciseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_type", values[i])
			} else if value.Valid {
				_m.ExerciseType = value.String
			}
		case deliverable.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case deliverable.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case deliverable.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case deliverable.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case deliverable.FieldQuestionTexts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_texts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionTexts); err != nil {
					return fmt.Errorf("unmarshal field question_texts: %w", err)
				}
			}
		case deliverable.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deliverable.
// This includes values selected through modifiers, order, etc.
func (_m *Deliverable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Deliverable.
// Note that you need to call Deliverable.Unwrap() before calling this method if this Deliverable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deliverable) Update() *DeliverableUpdateOne {
	return NewDeliverableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deliverable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deliverable) Unwrap() *Deliverable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deliverable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deliverable) String() string {
	var builder strings.Builder
	builder.WriteString("Deliverable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("exercise_type=")
	builder.WriteString(_m.ExerciseType)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("question_texts=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionTexts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Deliverables is a parsable slice of Deliverable.
type Deliverables []*Deliverable
