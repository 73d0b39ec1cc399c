// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/levelprogress"
)

// LevelProgressCreate is the builder for creating a LevelProgress entity.
type LevelProgressCreate struct {
	config
	mutation *LevelProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LevelProgressCreate) SetLearnerID(v string) *LevelProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *LevelProgressCreate) SetLevel(v string) *LevelProgressCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *LevelProgressCreate) SetAverageScore(v float64) *LevelProgressCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableAverageScore(v *float64) *LevelProgressCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_c *LevelProgressCreate) SetExercisesCompleted(v int) *LevelProgressCreate {
	_c.mutation.SetExercisesCompleted(v)
	return _c
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableExercisesCompleted(v *int) *LevelProgressCreate {
	if v != nil {
		_c.SetExercisesCompleted(*v)
	}
	return _c
}

// SetTopicScores sets the "topic_scores" field.
func (_c *LevelProgressCreate) SetTopicScores(v map[string]float64) *LevelProgressCreate {
	_c.mutation.SetTopicScores(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LevelProgressCreate) SetUpdatedAt(v time.Time) *LevelProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LevelProgressCreate) SetNillableUpdatedAt(v *time.Time) *LevelProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LevelProgressMutation object of the builder.
func (_c *LevelProgressCreate) Mutation() *LevelProgressMutation {
	return _c.mutation
}

// Save creates the LevelProgress in the database.
func (_c *LevelProgressCreate) Save(ctx context.Context) (*LevelProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelProgressCreate) SaveX(ctx context.Context) *LevelProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelProgressCreate) defaults() {
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := levelprogress.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		v := levelprogress.DefaultExercisesCompleted
		_c.mutation.SetExercisesCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := levelprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LevelProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := levelprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LevelProgress.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := levelprogress.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "LevelProgress.average_score"`)}
	}
	if v, ok := _c.mutation.AverageScore(); ok {
		if err := levelprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "LevelProgress.average_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		return &ValidationError{Name: "exercises_completed", err: errors.New(`ent: missing required field "LevelProgress.exercises_completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LevelProgress.updated_at"`)}
	}
	return nil
}

func (_c *LevelProgressCreate) sqlSave(ctx context.Context) (*LevelProgress, error) {
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

func (_c *LevelProgressCreate) createSpec() (*LevelProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LevelProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(levelprogress.Table, sqlgraph.NewFieldSpec(levelprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(levelprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(levelprogress.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(levelprogress.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.ExercisesCompleted(); ok {
		_spec.SetField(levelprogress.FieldExercisesCompleted, field.TypeInt, value)
		_node.ExercisesCompleted = value
	}
	if value, ok := _c.mutation.TopicScores(); ok {
		_spec.SetField(levelprogress.FieldTopicScores, field.TypeJSON, value)
		_node.TopicScores = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(levelprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LevelProgressCreateBulk is the builder for creating many LevelProgress entities in bulk.
type LevelProgressCreateBulk struct {
	config
	err      error
	builders []*LevelProgressCreate
}

// Save creates the LevelProgress entities in the database.
func (_c *LevelProgressCreateBulk) Save(ctx context.Context) ([]*LevelProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LevelProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelProgressMutation)
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
func (_c *LevelProgressCreateBulk) SaveX(ctx context.Context) []*LevelProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
