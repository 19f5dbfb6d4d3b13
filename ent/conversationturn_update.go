// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationturn"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ConversationTurnUpdate is the builder for updating ConversationTurn entities.
type ConversationTurnUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationTurnMutation
}

// Where appends a list predicates to the ConversationTurnUpdate builder.
func (_u *ConversationTurnUpdate) Where(ps ...predicate.ConversationTurn) *ConversationTurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *ConversationTurnUpdate) SetContent(v string) *ConversationTurnUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableContent(v *string) *ConversationTurnUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummarized sets the "summarized" field.
func (_u *ConversationTurnUpdate) SetSummarized(v bool) *ConversationTurnUpdate {
	_u.mutation.SetSummarized(v)
	return _u
}

// SetNillableSummarized sets the "summarized" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableSummarized(v *bool) *ConversationTurnUpdate {
	if v != nil {
		_u.SetSummarized(*v)
	}
	return _u
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_u *ConversationTurnUpdate) Mutation() *ConversationTurnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationTurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationTurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationTurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationTurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationTurnUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := conversationturn.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.content": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationTurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationturn.Table, conversationturn.Columns, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(conversationturn.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summarized(); ok {
		_spec.SetField(conversationturn.FieldSummarized, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationTurnUpdateOne is the builder for updating a single ConversationTurn entity.
type ConversationTurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationTurnMutation
}

// SetContent sets the "content" field.
func (_u *ConversationTurnUpdateOne) SetContent(v string) *ConversationTurnUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableContent(v *string) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummarized sets the "summarized" field.
func (_u *ConversationTurnUpdateOne) SetSummarized(v bool) *ConversationTurnUpdateOne {
	_u.mutation.SetSummarized(v)
	return _u
}

// SetNillableSummarized sets the "summarized" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableSummarized(v *bool) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetSummarized(*v)
	}
	return _u
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_u *ConversationTurnUpdateOne) Mutation() *ConversationTurnMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationTurnUpdate builder.
func (_u *ConversationTurnUpdateOne) Where(ps ...predicate.ConversationTurn) *ConversationTurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationTurnUpdateOne) Select(field string, fields ...string) *ConversationTurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationTurn entity.
func (_u *ConversationTurnUpdateOne) Save(ctx context.Context) (*ConversationTurn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationTurnUpdateOne) SaveX(ctx context.Context) *ConversationTurn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationTurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationTurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationTurnUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := conversationturn.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.content": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationTurnUpdateOne) sqlSave(ctx context.Context) (_node *ConversationTurn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationturn.Table, conversationturn.Columns, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationTurn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationturn.FieldID)
		for _, f := range fields {
			if !conversationturn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationturn.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(conversationturn.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summarized(); ok {
		_spec.SetField(conversationturn.FieldSummarized, field.TypeBool, value)
	}
	_node = &ConversationTurn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
