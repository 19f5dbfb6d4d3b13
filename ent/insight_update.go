// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/insight"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *InsightUpdate) SetKind(v string) *InsightUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableKind(v *string) *InsightUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InsightUpdate) SetSummary(v string) *InsightUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableSummary(v *string) *InsightUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InsightUpdate) SetPriority(v insight.Priority) *InsightUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InsightUpdate) SetNillablePriority(v *insight.Priority) *InsightUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetReferenceType sets the "reference_type" field.
func (_u *InsightUpdate) SetReferenceType(v string) *InsightUpdate {
	_u.mutation.SetReferenceType(v)
	return _u
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableReferenceType(v *string) *InsightUpdate {
	if v != nil {
		_u.SetReferenceType(*v)
	}
	return _u
}

// ClearReferenceType clears the value of the "reference_type" field.
func (_u *InsightUpdate) ClearReferenceType() *InsightUpdate {
	_u.mutation.ClearReferenceType()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *InsightUpdate) SetReferenceID(v string) *InsightUpdate {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableReferenceID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *InsightUpdate) ClearReferenceID() *InsightUpdate {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *InsightUpdate) SetResolved(v bool) *InsightUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableResolved(v *bool) *InsightUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := insight.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Insight.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := insight.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "Insight.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := insight.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Insight.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(insight.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(insight.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReferenceType(); ok {
		_spec.SetField(insight.FieldReferenceType, field.TypeString, value)
	}
	if _u.mutation.ReferenceTypeCleared() {
		_spec.ClearField(insight.FieldReferenceType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(insight.FieldReferenceID, field.TypeString, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(insight.FieldReferenceID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(insight.FieldResolved, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetKind sets the "kind" field.
func (_u *InsightUpdateOne) SetKind(v string) *InsightUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableKind(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InsightUpdateOne) SetSummary(v string) *InsightUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableSummary(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InsightUpdateOne) SetPriority(v insight.Priority) *InsightUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillablePriority(v *insight.Priority) *InsightUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetReferenceType sets the "reference_type" field.
func (_u *InsightUpdateOne) SetReferenceType(v string) *InsightUpdateOne {
	_u.mutation.SetReferenceType(v)
	return _u
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableReferenceType(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetReferenceType(*v)
	}
	return _u
}

// ClearReferenceType clears the value of the "reference_type" field.
func (_u *InsightUpdateOne) ClearReferenceType() *InsightUpdateOne {
	_u.mutation.ClearReferenceType()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *InsightUpdateOne) SetReferenceID(v string) *InsightUpdateOne {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableReferenceID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *InsightUpdateOne) ClearReferenceID() *InsightUpdateOne {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *InsightUpdateOne) SetResolved(v bool) *InsightUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableResolved(v *bool) *InsightUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := insight.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Insight.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := insight.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "Insight.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := insight.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Insight.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(insight.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(insight.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReferenceType(); ok {
		_spec.SetField(insight.FieldReferenceType, field.TypeString, value)
	}
	if _u.mutation.ReferenceTypeCleared() {
		_spec.ClearField(insight.FieldReferenceType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(insight.FieldReferenceID, field.TypeString, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(insight.FieldReferenceID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(insight.FieldResolved, field.TypeBool, value)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
