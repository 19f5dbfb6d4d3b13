// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// CeoTeachingDelete is the builder for deleting a CeoTeaching entity.
type CeoTeachingDelete struct {
	config
	hooks    []Hook
	mutation *CeoTeachingMutation
}

// Where appends a list predicates to the CeoTeachingDelete builder.
func (_d *CeoTeachingDelete) Where(ps ...predicate.CeoTeaching) *CeoTeachingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CeoTeachingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CeoTeachingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CeoTeachingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ceoteaching.Table, sqlgraph.NewFieldSpec(ceoteaching.FieldID, field.TypeString))
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

// CeoTeachingDeleteOne is the builder for deleting a single CeoTeaching entity.
type CeoTeachingDeleteOne struct {
	_d *CeoTeachingDelete
}

// Where appends a list predicates to the CeoTeachingDelete builder.
func (_d *CeoTeachingDeleteOne) Where(ps ...predicate.CeoTeaching) *CeoTeachingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CeoTeachingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ceoteaching.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CeoTeachingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
