// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/performancerecord"
	"github.com/verbly-app/verbly/ent/predicate"
)

// PerformanceRecordUpdate is the builder for updating PerformanceRecord entities.
type PerformanceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceRecordMutation
}

// Where appends a list predicates to the PerformanceRecordUpdate builder.
func (_u *PerformanceRecordUpdate) Where(ps ...predicate.PerformanceRecord) *PerformanceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PerformanceRecordMutation object of the builder.
func (_u *PerformanceRecordUpdate) Mutation() *PerformanceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PerformanceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(performancerecord.Table, performancerecord.Columns, sqlgraph.NewFieldSpec(performancerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceRecordUpdateOne is the builder for updating a single PerformanceRecord entity.
type PerformanceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceRecordMutation
}

// Mutation returns the PerformanceRecordMutation object of the builder.
func (_u *PerformanceRecordUpdateOne) Mutation() *PerformanceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceRecordUpdate builder.
func (_u *PerformanceRecordUpdateOne) Where(ps ...predicate.PerformanceRecord) *PerformanceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceRecordUpdateOne) Select(field string, fields ...string) *PerformanceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceRecord entity.
func (_u *PerformanceRecordUpdateOne) Save(ctx context.Context) (*PerformanceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceRecordUpdateOne) SaveX(ctx context.Context) *PerformanceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PerformanceRecordUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(performancerecord.Table, performancerecord.Columns, sqlgraph.NewFieldSpec(performancerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancerecord.FieldID)
		for _, f := range fields {
			if !performancerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancerecord.FieldID {
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
	_node = &PerformanceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
