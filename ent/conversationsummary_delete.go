// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ConversationSummaryDelete is the builder for deleting a ConversationSummary entity.
type ConversationSummaryDelete struct {
	config
	hooks    []Hook
	mutation *ConversationSummaryMutation
}

// Where appends a list predicates to the ConversationSummaryDelete builder.
func (_d *ConversationSummaryDelete) Where(ps ...predicate.ConversationSummary) *ConversationSummaryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConversationSummaryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConversationSummaryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConversationSummaryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conversationsummary.Table, sqlgraph.NewFieldSpec(conversationsummary.FieldID, field.TypeString))
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

// ConversationSummaryDeleteOne is the builder for deleting a single ConversationSummary entity.
type ConversationSummaryDeleteOne struct {
	_d *ConversationSummaryDelete
}

// Where appends a list predicates to the ConversationSummaryDelete builder.
func (_d *ConversationSummaryDeleteOne) Where(ps ...predicate.ConversationSummary) *ConversationSummaryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConversationSummaryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conversationsummary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConversationSummaryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
