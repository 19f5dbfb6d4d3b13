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
	"github.com/wisehub-ai/wisehub/ent/conversationstate"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ConversationStateUpdate is the builder for updating ConversationState entities.
type ConversationStateUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationStateMutation
}

// Where appends a list predicates to the ConversationStateUpdate builder.
func (_u *ConversationStateUpdate) Where(ps ...predicate.ConversationState) *ConversationStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStateType sets the "state_type" field.
func (_u *ConversationStateUpdate) SetStateType(v conversationstate.StateType) *ConversationStateUpdate {
	_u.mutation.SetStateType(v)
	return _u
}

// SetNillableStateType sets the "state_type" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableStateType(v *conversationstate.StateType) *ConversationStateUpdate {
	if v != nil {
		_u.SetStateType(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ConversationStateUpdate) SetStep(v string) *ConversationStateUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableStep(v *string) *ConversationStateUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *ConversationStateUpdate) ClearStep() *ConversationStateUpdate {
	_u.mutation.ClearStep()
	return _u
}

// SetData sets the "data" field.
func (_u *ConversationStateUpdate) SetData(v map[string]interface{}) *ConversationStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ConversationStateUpdate) ClearData() *ConversationStateUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetReferenceType sets the "reference_type" field.
func (_u *ConversationStateUpdate) SetReferenceType(v string) *ConversationStateUpdate {
	_u.mutation.SetReferenceType(v)
	return _u
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableReferenceType(v *string) *ConversationStateUpdate {
	if v != nil {
		_u.SetReferenceType(*v)
	}
	return _u
}

// ClearReferenceType clears the value of the "reference_type" field.
func (_u *ConversationStateUpdate) ClearReferenceType() *ConversationStateUpdate {
	_u.mutation.ClearReferenceType()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *ConversationStateUpdate) SetReferenceID(v string) *ConversationStateUpdate {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableReferenceID(v *string) *ConversationStateUpdate {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *ConversationStateUpdate) ClearReferenceID() *ConversationStateUpdate {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationStateUpdate) SetExpiresAt(v time.Time) *ConversationStateUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableExpiresAt(v *time.Time) *ConversationStateUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationStateUpdate) SetUpdatedAt(v time.Time) *ConversationStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_u *ConversationStateUpdate) Mutation() *ConversationStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationStateUpdate) check() error {
	if v, ok := _u.mutation.StateType(); ok {
		if err := conversationstate.StateTypeValidator(v); err != nil {
			return &ValidationError{Name: "state_type", err: fmt.Errorf(`ent: validator failed for field "ConversationState.state_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationstate.Table, conversationstate.Columns, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StateType(); ok {
		_spec.SetField(conversationstate.FieldStateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(conversationstate.FieldStep, field.TypeString, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(conversationstate.FieldStep, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(conversationstate.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(conversationstate.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReferenceType(); ok {
		_spec.SetField(conversationstate.FieldReferenceType, field.TypeString, value)
	}
	if _u.mutation.ReferenceTypeCleared() {
		_spec.ClearField(conversationstate.FieldReferenceType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(conversationstate.FieldReferenceID, field.TypeString, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(conversationstate.FieldReferenceID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationStateUpdateOne is the builder for updating a single ConversationState entity.
type ConversationStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationStateMutation
}

// SetStateType sets the "state_type" field.
func (_u *ConversationStateUpdateOne) SetStateType(v conversationstate.StateType) *ConversationStateUpdateOne {
	_u.mutation.SetStateType(v)
	return _u
}

// SetNillableStateType sets the "state_type" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableStateType(v *conversationstate.StateType) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetStateType(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ConversationStateUpdateOne) SetStep(v string) *ConversationStateUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableStep(v *string) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *ConversationStateUpdateOne) ClearStep() *ConversationStateUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// SetData sets the "data" field.
func (_u *ConversationStateUpdateOne) SetData(v map[string]interface{}) *ConversationStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ConversationStateUpdateOne) ClearData() *ConversationStateUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetReferenceType sets the "reference_type" field.
func (_u *ConversationStateUpdateOne) SetReferenceType(v string) *ConversationStateUpdateOne {
	_u.mutation.SetReferenceType(v)
	return _u
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableReferenceType(v *string) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetReferenceType(*v)
	}
	return _u
}

// ClearReferenceType clears the value of the "reference_type" field.
func (_u *ConversationStateUpdateOne) ClearReferenceType() *ConversationStateUpdateOne {
	_u.mutation.ClearReferenceType()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *ConversationStateUpdateOne) SetReferenceID(v string) *ConversationStateUpdateOne {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableReferenceID(v *string) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *ConversationStateUpdateOne) ClearReferenceID() *ConversationStateUpdateOne {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationStateUpdateOne) SetExpiresAt(v time.Time) *ConversationStateUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableExpiresAt(v *time.Time) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationStateUpdateOne) SetUpdatedAt(v time.Time) *ConversationStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_u *ConversationStateUpdateOne) Mutation() *ConversationStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationStateUpdate builder.
func (_u *ConversationStateUpdateOne) Where(ps ...predicate.ConversationState) *ConversationStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationStateUpdateOne) Select(field string, fields ...string) *ConversationStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationState entity.
func (_u *ConversationStateUpdateOne) Save(ctx context.Context) (*ConversationState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationStateUpdateOne) SaveX(ctx context.Context) *ConversationState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationStateUpdateOne) check() error {
	if v, ok := _u.mutation.StateType(); ok {
		if err := conversationstate.StateTypeValidator(v); err != nil {
			return &ValidationError{Name: "state_type", err: fmt.Errorf(`ent: validator failed for field "ConversationState.state_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationStateUpdateOne) sqlSave(ctx context.Context) (_node *ConversationState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationstate.Table, conversationstate.Columns, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationstate.FieldID)
		for _, f := range fields {
			if !conversationstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationstate.FieldID {
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
	if value, ok := _u.mutation.StateType(); ok {
		_spec.SetField(conversationstate.FieldStateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(conversationstate.FieldStep, field.TypeString, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(conversationstate.FieldStep, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(conversationstate.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(conversationstate.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReferenceType(); ok {
		_spec.SetField(conversationstate.FieldReferenceType, field.TypeString, value)
	}
	if _u.mutation.ReferenceTypeCleared() {
		_spec.ClearField(conversationstate.FieldReferenceType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(conversationstate.FieldReferenceID, field.TypeString, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(conversationstate.FieldReferenceID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConversationState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
