// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/deliverable"
	"github.com/verbly-app/verbly/ent/predicate"
)

// DeliverableUpdate is the builder for updating Deliverable entities.
type DeliverableUpdate struct {
	config
	hooks    []Hook
	mutation *DeliverableMutation
}

// Where appends a list predicates to the DeliverableUpdate builder.
func (_u *DeliverableUpdate) Where(ps ...predicate.Deliverable) *DeliverableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DeliverableUpdate) SetTopic(v string) *DeliverableUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DeliverableUpdate) SetNillableTopic(v *string) *DeliverableUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *DeliverableUpdate) SetExerciseType(v string) *DeliverableUpdate {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *DeliverableUpdate) SetNillableExerciseType(v *string) *DeliverableUpdate {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DeliverableUpdate) SetLevel(v string) *DeliverableUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DeliverableUpdate) SetNillableLevel(v *string) *DeliverableUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DeliverableUpdate) SetDifficulty(v string) *DeliverableUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DeliverableUpdate) SetNillableDifficulty(v *string) *DeliverableUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *DeliverableUpdate) SetItemCount(v int) *DeliverableUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *DeliverableUpdate) SetNillableItemCount(v *int) *DeliverableUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *DeliverableUpdate) AddItemCount(v int) *DeliverableUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *DeliverableUpdate) SetItems(v json.RawMessage) *DeliverableUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *DeliverableUpdate) AppendItems(v json.RawMessage) *DeliverableUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetQuestionTexts sets the "question_texts" field.
func (_u *DeliverableUpdate) SetQuestionTexts(v []string) *DeliverableUpdate {
	_u.mutation.SetQuestionTexts(v)
	return _u
}

// AppendQuestionTexts appends value to the "question_texts" field.
func (_u *DeliverableUpdate) AppendQuestionTexts(v []string) *DeliverableUpdate {
	_u.mutation.AppendQuestionTexts(v)
	return _u
}

// Mutation returns the DeliverableMutation object of the builder.
func (_u *DeliverableUpdate) Mutation() *DeliverableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliverableUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliverableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliverableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliverableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliverableUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := deliverable.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Deliverable.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := deliverable.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "Deliverable.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := deliverable.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Deliverable.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := deliverable.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Deliverable.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := deliverable.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Deliverable.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliverableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliverable.Table, deliverable.Columns, sqlgraph.NewFieldSpec(deliverable.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(deliverable.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(deliverable.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(deliverable.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(deliverable.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(deliverable.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(deliverable.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(deliverable.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliverable.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.QuestionTexts(); ok {
		_spec.SetField(deliverable.FieldQuestionTexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionTexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliverable.FieldQuestionTexts, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliverableUpdateOne is the builder for updating a single Deliverable entity.
type DeliverableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliverableMutation
}

// SetTopic sets the "topic" field.
func (_u *DeliverableUpdateOne) SetTopic(v string) *DeliverableUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DeliverableUpdateOne) SetNillableTopic(v *string) *DeliverableUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *DeliverableUpdateOne) SetExerciseType(v string) *DeliverableUpdateOne {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *DeliverableUpdateOne) SetNillableExerciseType(v *string) *DeliverableUpdateOne {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DeliverableUpdateOne) SetLevel(v string) *DeliverableUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DeliverableUpdateOne) SetNillableLevel(v *string) *DeliverableUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DeliverableUpdateOne) SetDifficulty(v string) *DeliverableUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DeliverableUpdateOne) SetNillableDifficulty(v *string) *DeliverableUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *DeliverableUpdateOne) SetItemCount(v int) *DeliverableUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *DeliverableUpdateOne) SetNillableItemCount(v *int) *DeliverableUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *DeliverableUpdateOne) AddItemCount(v int) *DeliverableUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *DeliverableUpdateOne) SetItems(v json.RawMessage) *DeliverableUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *DeliverableUpdateOne) AppendItems(v json.RawMessage) *DeliverableUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetQuestionTexts sets the "question_texts" field.
func (_u *DeliverableUpdateOne) SetQuestionTexts(v []string) *DeliverableUpdateOne {
	_u.mutation.SetQuestionTexts(v)
	return _u
}

// AppendQuestionTexts appends value to the "question_texts" field.
func (_u *DeliverableUpdateOne) AppendQuestionTexts(v []string) *DeliverableUpdateOne {
	_u.mutation.AppendQuestionTexts(v)
	return _u
}

// Mutation returns the DeliverableMutation object of the builder.
func (_u *DeliverableUpdateOne) Mutation() *DeliverableMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliverableUpdate builder.
func (_u *DeliverableUpdateOne) Where(ps ...predicate.Deliverable) *DeliverableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliverableUpdateOne) Select(field string, fields ...string) *DeliverableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deliverable entity.
func (_u *DeliverableUpdateOne) Save(ctx context.Context) (*Deliverable, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliverableUpdateOne) SaveX(ctx context.Context) *Deliverable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliverableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliverableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliverableUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := deliverable.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Deliverable.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := deliverable.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "Deliverable.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := deliverable.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Deliverable.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := deliverable.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Deliverable.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := deliverable.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Deliverable.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliverableUpdateOne) sqlSave(ctx context.Context) (_node *Deliverable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliverable.Table, deliverable.Columns, sqlgraph.NewFieldSpec(deliverable.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deliverable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliverable.FieldID)
		for _, f := range fields {
			if !deliverable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliverable.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(deliverable.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(deliverable.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(deliverable.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(deliverable.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(deliverable.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(deliverable.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(deliverable.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliverable.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.QuestionTexts(); ok {
		_spec.SetField(deliverable.FieldQuestionTexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionTexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliverable.FieldQuestionTexts, value)
		})
	}
	_node = &Deliverable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
