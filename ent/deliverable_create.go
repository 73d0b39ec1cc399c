// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/deliverable"
)

// DeliverableCreate is the builder for creating a Deliverable entity.
type DeliverableCreate struct {
	config
	mutation *DeliverableMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *DeliverableCreate) SetTopic(v string) *DeliverableCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *DeliverableCreate) SetExerciseType(v string) *DeliverableCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *DeliverableCreate) SetLevel(v string) *DeliverableCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DeliverableCreate) SetDifficulty(v string) *DeliverableCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *DeliverableCreate) SetItemCount(v int) *DeliverableCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *DeliverableCreate) SetItems(v json.RawMessage) *DeliverableCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetQuestionTexts sets the "question_texts" field.
func (_c *DeliverableCreate) SetQuestionTexts(v []string) *DeliverableCreate {
	_c.mutation.SetQuestionTexts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliverableCreate) SetCreatedAt(v time.Time) *DeliverableCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliverableCreate) SetNillableCreatedAt(v *time.Time) *DeliverableCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliverableCreate) SetID(v string) *DeliverableCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeliverableMutation object of the builder.
func (_c *DeliverableCreate) Mutation() *DeliverableMutation {
	return _c.mutation
}

// Save creates the Deliverable in the database.
func (_c *DeliverableCreate) Save(ctx context.Context) (*Deliverable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliverableCreate) SaveX(ctx context.Context) *Deliverable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliverableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliverableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliverableCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliverable.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliverableCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Deliverable.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := deliverable.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Deliverable.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		return &ValidationError{Name: "exercise_type", err: errors.New(`ent: missing required field "Deliverable.exercise_type"`)}
	}
	if v, ok := _c.mutation.ExerciseType(); ok {
		if err := deliverable.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`ent: validator failed for field "Deliverable.exercise_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Deliverable.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := deliverable.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Deliverable.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Deliverable.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := deliverable.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Deliverable.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "Deliverable.item_count"`)}
	}
	if v, ok := _c.mutation.ItemCount(); ok {
		if err := deliverable.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Deliverable.item_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "Deliverable.items"`)}
	}
	if _, ok := _c.mutation.QuestionTexts(); !ok {
		return &ValidationError{Name: "question_texts", err: errors.New(`ent: missing required field "Deliverable.question_texts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deliverable.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := deliverable.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Deliverable.id": %w`, err)}
		}
	}
	return nil
}

func (_c *DeliverableCreate) sqlSave(ctx context.Context) (*Deliverable, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Deliverable.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliverableCreate) createSpec() (*Deliverable, *sqlgraph.CreateSpec) {
	var (
		_node = &Deliverable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliverable.Table, sqlgraph.NewFieldSpec(deliverable.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(deliverable.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(deliverable.FieldExerciseType, field.TypeString, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(deliverable.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(deliverable.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(deliverable.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(deliverable.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.QuestionTexts(); ok {
		_spec.SetField(deliverable.FieldQuestionTexts, field.TypeJSON, value)
		_node.QuestionTexts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliverable.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DeliverableCreateBulk is the builder for creating many Deliverable entities in bulk.
type DeliverableCreateBulk struct {
	config
	err      error
	builders []*DeliverableCreate
}

// Save creates the Deliverable entities in the database.
func (_c *DeliverableCreateBulk) Save(ctx context.Context) ([]*Deliverable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deliverable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliverableMutation)
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
func (_c *DeliverableCreateBulk) SaveX(ctx context.Context) []*Deliverable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliverableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliverableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
