// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/verbly-app/verbly/ent/performancerecord"
	"github.com/verbly-app/verbly/ent/predicate"
)

// PerformanceRecordDelete is the builder for deleting a PerformanceRecord entity.
type PerformanceRecordDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceRecordMutation
}

// Where appends a list predicates to the PerformanceRecordDelete builder.
func (_d *PerformanceRecordDelete) Where(ps ...predicate.PerformanceRecord) *PerformanceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PerformanceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PerformanceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancerecord.Table, sqlgraph.NewFieldSpec(performancerecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PerformanceRecordDeleteOne is the builder for deleting a single PerformanceRecord entity.
type PerformanceRecordDeleteOne struct {
	_d *PerformanceRecordDelete
}

// Where appends a list predicates to the PerformanceRecordDelete builder.
func (_d *PerformanceRecordDeleteOne) Where(ps ...predicate.PerformanceRecord) *PerformanceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PerformanceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
