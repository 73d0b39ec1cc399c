// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/levelprogress"
	"github.com/verbly-app/verbly/ent/predicate"
)

// LevelProgressUpdate is the builder for updating LevelProgress entities.
type LevelProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LevelProgressMutation
}

// Where appends a list predicates to the LevelProgressUpdate builder.
func (_u *LevelProgressUpdate) Where(ps ...predicate.LevelProgress) *LevelProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LevelProgressUpdate) SetLearnerID(v string) *LevelProgressUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableLearnerID(v *string) *LevelProgressUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LevelProgressUpdate) SetLevel(v string) *LevelProgressUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableLevel(v *string) *LevelProgressUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LevelProgressUpdate) SetAverageScore(v float64) *LevelProgressUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableAverageScore(v *float64) *LevelProgressUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LevelProgressUpdate) AddAverageScore(v float64) *LevelProgressUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *LevelProgressUpdate) SetExercisesCompleted(v int) *LevelProgressUpdate {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *LevelProgressUpdate) SetNillableExercisesCompleted(v *int) *LevelProgressUpdate {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *LevelProgressUpdate) AddExercisesCompleted(v int) *LevelProgressUpdate {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *LevelProgressUpdate) SetTopicScores(v map[string]float64) *LevelProgressUpdate {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *LevelProgressUpdate) ClearTopicScores() *LevelProgressUpdate {
	_u.mutation.ClearTopicScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LevelProgressUpdate) SetUpdatedAt(v time.Time) *LevelProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_u *LevelProgressUpdate) Mutation() *LevelProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LevelProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := levelprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelProgressUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := levelprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := levelprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageScore(); ok {
		if err := levelprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.average_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelprogress.Table, levelprogress.Columns, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(levelprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelprogress.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(levelprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(levelprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(levelprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(levelprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(levelprogress.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(levelprogress.FieldTopicScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(levelprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelProgressUpdateOne is the builder for updating a single LevelProgress entity.
type LevelProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelProgressMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LevelProgressUpdateOne) SetLearnerID(v string) *LevelProgressUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableLearnerID(v *string) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LevelProgressUpdateOne) SetLevel(v string) *LevelProgressUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableLevel(v *string) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LevelProgressUpdateOne) SetAverageScore(v float64) *LevelProgressUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableAverageScore(v *float64) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LevelProgressUpdateOne) AddAverageScore(v float64) *LevelProgressUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *LevelProgressUpdateOne) SetExercisesCompleted(v int) *LevelProgressUpdateOne {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *LevelProgressUpdateOne) SetNillableExercisesCompleted(v *int) *LevelProgressUpdateOne {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *LevelProgressUpdateOne) AddExercisesCompleted(v int) *LevelProgressUpdateOne {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *LevelProgressUpdateOne) SetTopicScores(v map[string]float64) *LevelProgressUpdateOne {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *LevelProgressUpdateOne) ClearTopicScores() *LevelProgressUpdateOne {
	_u.mutation.ClearTopicScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LevelProgressUpdateOne) SetUpdatedAt(v time.Time) *LevelProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_u *LevelProgressUpdateOne) Mutation() *LevelProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelProgressUpdate builder.
func (_u *LevelProgressUpdateOne) Where(ps ...predicate.LevelProgress) *LevelProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelProgressUpdateOne) Select(field string, fields ...string) *LevelProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LevelProgress entity.
func (_u *LevelProgressUpdateOne) Save(ctx context.Context) (*LevelProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelProgressUpdateOne) SaveX(ctx context.Context) *LevelProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LevelProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := levelprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := levelprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := levelprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageScore(); ok {
		if err := levelprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.average_score": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelProgressUpdateOne) sqlSave(ctx context.Context) (_node *LevelProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelprogress.Table, levelprogress.Columns, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LevelProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, levelprogress.FieldID)
		for _, f := range fields {
			if !levelprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != levelprogress.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(levelprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelprogress.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(levelprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(levelprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(levelprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(levelprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(levelprogress.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(levelprogress.FieldTopicScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(levelprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LevelProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
