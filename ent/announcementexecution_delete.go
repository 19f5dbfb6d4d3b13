// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// AnnouncementExecutionDelete is the builder for deleting a AnnouncementExecution entity.
type AnnouncementExecutionDelete struct {
	config
	hooks    []Hook
	mutation *AnnouncementExecutionMutation
}

// Where appends a list predicates to the AnnouncementExecutionDelete builder.
func (_d *AnnouncementExecutionDelete) Where(ps ...predicate.AnnouncementExecution) *AnnouncementExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnnouncementExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnouncementExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnnouncementExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(announcementexecution.Table, sqlgraph.NewFieldSpec(announcementexecution.FieldID, field.TypeString))
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

// AnnouncementExecutionDeleteOne is the builder for deleting a single AnnouncementExecution entity.
type AnnouncementExecutionDeleteOne struct {
	_d *AnnouncementExecutionDelete
}

// Where appends a list predicates to the AnnouncementExecutionDelete builder.
func (_d *AnnouncementExecutionDeleteOne) Where(ps ...predicate.AnnouncementExecution) *AnnouncementExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnnouncementExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{announcementexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnouncementExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
