// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/knowledgechunk"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// KnowledgeChunkDelete is the builder for deleting a KnowledgeChunk entity.
type KnowledgeChunkDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeChunkMutation
}

// Where appends a list predicates to the KnowledgeChunkDelete builder.
func (_d *KnowledgeChunkDelete) Where(ps ...predicate.KnowledgeChunk) *KnowledgeChunkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeChunkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeChunkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeChunkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgechunk.Table, sqlgraph.NewFieldSpec(knowledgechunk.FieldID, field.TypeString))
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

// KnowledgeChunkDeleteOne is the builder for deleting a single KnowledgeChunk entity.
type KnowledgeChunkDeleteOne struct {
	_d *KnowledgeChunkDelete
}

// Where appends a list predicates to the KnowledgeChunkDelete builder.
func (_d *KnowledgeChunkDeleteOne) Where(ps ...predicate.KnowledgeChunk) *KnowledgeChunkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeChunkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgechunk.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeChunkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
