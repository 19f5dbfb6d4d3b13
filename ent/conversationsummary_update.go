// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ConversationSummaryUpdate is the builder for updating ConversationSummary entities.
type ConversationSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationSummaryMutation
}

// Where appends a list predicates to the ConversationSummaryUpdate builder.
func (_u *ConversationSummaryUpdate) Where(ps ...predicate.ConversationSummary) *ConversationSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ConversationSummaryUpdate) SetSummary(v string) *ConversationSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationSummaryUpdate) SetNillableSummary(v *string) *ConversationSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTurnsCovered sets the "turns_covered" field.
func (_u *ConversationSummaryUpdate) SetTurnsCovered(v int) *ConversationSummaryUpdate {
	_u.mutation.ResetTurnsCovered()
	_u.mutation.SetTurnsCovered(v)
	return _u
}

// SetNillableTurnsCovered sets the "turns_covered" field if the given value is not nil.
func (_u *ConversationSummaryUpdate) SetNillableTurnsCovered(v *int) *ConversationSummaryUpdate {
	if v != nil {
		_u.SetTurnsCovered(*v)
	}
	return _u
}

// AddTurnsCovered adds value to the "turns_covered" field.
func (_u *ConversationSummaryUpdate) AddTurnsCovered(v int) *ConversationSummaryUpdate {
	_u.mutation.AddTurnsCovered(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationSummaryUpdate) SetUpdatedAt(v time.Time) *ConversationSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationSummaryMutation object of the builder.
func (_u *ConversationSummaryUpdate) Mutation() *ConversationSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationSummaryUpdate) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := conversationsummary.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.summary": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationsummary.Table, conversationsummary.Columns, sqlgraph.NewFieldSpec(conversationsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversationsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnsCovered(); ok {
		_spec.SetField(conversationsummary.FieldTurnsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsCovered(); ok {
		_spec.AddField(conversationsummary.FieldTurnsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationSummaryUpdateOne is the builder for updating a single ConversationSummary entity.
type ConversationSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationSummaryMutation
}

// SetSummary sets the "summary" field.
func (_u *ConversationSummaryUpdateOne) SetSummary(v string) *ConversationSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationSummaryUpdateOne) SetNillableSummary(v *string) *ConversationSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTurnsCovered sets the "turns_covered" field.
func (_u *ConversationSummaryUpdateOne) SetTurnsCovered(v int) *ConversationSummaryUpdateOne {
	_u.mutation.ResetTurnsCovered()
	_u.mutation.SetTurnsCovered(v)
	return _u
}

// SetNillableTurnsCovered sets the "turns_covered" field if the given value is not nil.
func (_u *ConversationSummaryUpdateOne) SetNillableTurnsCovered(v *int) *ConversationSummaryUpdateOne {
	if v != nil {
		_u.SetTurnsCovered(*v)
	}
	return _u
}

// AddTurnsCovered adds value to the "turns_covered" field.
func (_u *ConversationSummaryUpdateOne) AddTurnsCovered(v int) *ConversationSummaryUpdateOne {
	_u.mutation.AddTurnsCovered(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationSummaryUpdateOne) SetUpdatedAt(v time.Time) *ConversationSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationSummaryMutation object of the builder.
func (_u *ConversationSummaryUpdateOne) Mutation() *ConversationSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationSummaryUpdate builder.
func (_u *ConversationSummaryUpdateOne) Where(ps ...predicate.ConversationSummary) *ConversationSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationSummaryUpdateOne) Select(field string, fields ...string) *ConversationSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationSummary entity.
func (_u *ConversationSummaryUpdateOne) Save(ctx context.Context) (*ConversationSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationSummaryUpdateOne) SaveX(ctx context.Context) *ConversationSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := conversationsummary.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.summary": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationSummaryUpdateOne) sqlSave(ctx context.Context) (_node *ConversationSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationsummary.Table, conversationsummary.Columns, sqlgraph.NewFieldSpec(conversationsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationsummary.FieldID)
		for _, f := range fields {
			if !conversationsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationsummary.FieldID {
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
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversationsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnsCovered(); ok {
		_spec.SetField(conversationsummary.FieldTurnsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsCovered(); ok {
		_spec.AddField(conversationsummary.FieldTurnsCovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConversationSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
