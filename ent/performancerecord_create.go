// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/performancerecord"
)

// PerformanceRecordCreate is the builder for creating a PerformanceRecord entity.
type PerformanceRecordCreate struct {
	config
	mutation *PerformanceRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *PerformanceRecordCreate) SetLearnerID(v string) *PerformanceRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PerformanceRecordCreate) SetTopic(v string) *PerformanceRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *PerformanceRecordCreate) SetExerciseType(v string) *PerformanceRecordCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PerformanceRecordCreate) SetDifficulty(v string) *PerformanceRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PerformanceRecordCreate) SetScore(v float64) *PerformanceRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetQuestionsTotal sets the "questions_total" field.
func (_c *PerformanceRecordCreate) SetQuestionsTotal(v int) *PerformanceRecordCreate {
	_c.mutation.SetQuestionsTotal(v)
	return _c
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_c *PerformanceRecordCreate) SetQuestionsCorrect(v int) *PerformanceRecordCreate {
	_c.mutation.SetQuestionsCorrect(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PerformanceRecordCreate) SetCompletedAt(v time.Time) *PerformanceRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PerformanceRecordCreate) SetNillableCompletedAt(v *time.Time) *PerformanceRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the PerformanceRecordMutation object of the builder.
func (_c *PerformanceRecordCreate) Mutation() *PerformanceRecordMutation {
	return _c.mutation
}

// Save creates the PerformanceRecord in the database.
func (_c *PerformanceRecordCreate) Save(ctx context.Context) (*PerformanceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceRecordCreate) SaveX(ctx context.Context) *PerformanceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceRecordCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := performancerecord.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PerformanceRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := performancerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PerformanceRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := performancerecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		return &ValidationError{Name: "exercise_type", err: errors.New(`ent: missing required field "PerformanceRecord.exercise_type"`)}
	}
	if v, ok := _c.mutation.ExerciseType(); ok {
		if err := performancerecord.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.exercise_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PerformanceRecord.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := performancerecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PerformanceRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := performancerecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		return &ValidationError{Name: "questions_total", err: errors.New(`ent: missing required field "PerformanceRecord.questions_total"`)}
	}
	if v, ok := _c.mutation.QuestionsTotal(); ok {
		if err := performancerecord.QuestionsTotalValidator(v); err != nil {
			return &ValidationError{Name: "questions_total", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.questions_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		return &ValidationError{Name: "questions_correct", err: errors.New(`ent: missing required field "PerformanceRecord.questions_correct"`)}
	}
	if v, ok := _c.mutation.QuestionsCorrect(); ok {
		if err := performancerecord.QuestionsCorrectValidator(v); err != nil {
			return &ValidationError{Name: "questions_correct", err: fmt.Errorf(`ent: validator failed for field "PerformanceRecord.questions_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "PerformanceRecord.completed_at"`)}
	}
	return nil
}

func (_c *PerformanceRecordCreate) sqlSave(ctx context.Context) (*PerformanceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PerformanceRecordCreate) createSpec() (*PerformanceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancerecord.Table, sqlgraph.NewFieldSpec(performancerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(performancerecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(performancerecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(performancerecord.FieldExerciseType, field.TypeString, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(performancerecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(performancerecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.QuestionsTotal(); ok {
		_spec.SetField(performancerecord.FieldQuestionsTotal, field.TypeInt, value)
		_node.QuestionsTotal = value
	}
	if value, ok := _c.mutation.QuestionsCorrect(); ok {
		_spec.SetField(performancerecord.FieldQuestionsCorrect, field.TypeInt, value)
		_node.QuestionsCorrect = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(performancerecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// PerformanceRecordCreateBulk is the builder for creating many PerformanceRecord entities in bulk.
type PerformanceRecordCreateBulk struct {
	config
	err      error
	builders []*PerformanceRecordCreate
}

// Save creates the PerformanceRecord entities in the database.
func (_c *PerformanceRecordCreateBulk) Save(ctx context.Context) ([]*PerformanceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PerformanceRecordCreateBulk) SaveX(ctx context.Context) []*PerformanceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
