// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// AnnouncementPatternDelete is the builder for deleting a AnnouncementPattern entity.
type AnnouncementPatternDelete struct {
	config
	hooks    []Hook
	mutation *AnnouncementPatternMutation
}

// Where appends a list predicates to the AnnouncementPatternDelete builder.
func (_d *AnnouncementPatternDelete) Where(ps ...predicate.AnnouncementPattern) *AnnouncementPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnnouncementPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnouncementPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnnouncementPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(announcementpattern.Table, sqlgraph.NewFieldSpec(announcementpattern.FieldID, field.TypeString))
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

// AnnouncementPatternDeleteOne is the builder for deleting a single AnnouncementPattern entity.
type AnnouncementPatternDeleteOne struct {
	_d *AnnouncementPatternDelete
}

// Where appends a list predicates to the AnnouncementPatternDelete builder.
func (_d *AnnouncementPatternDeleteOne) Where(ps ...predicate.AnnouncementPattern) *AnnouncementPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnnouncementPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{announcementpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnnouncementPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
