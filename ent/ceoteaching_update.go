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
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// CeoTeachingUpdate is the builder for updating CeoTeaching entities.
type CeoTeachingUpdate struct {
	config
	hooks    []Hook
	mutation *CeoTeachingMutation
}

// Where appends a list predicates to the CeoTeachingUpdate builder.
func (_u *CeoTeachingUpdate) Where(ps ...predicate.CeoTeaching) *CeoTeachingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCeoUserID sets the "ceo_user_id" field.
func (_u *CeoTeachingUpdate) SetCeoUserID(v string) *CeoTeachingUpdate {
	_u.mutation.SetCeoUserID(v)
	return _u
}

// SetNillableCeoUserID sets the "ceo_user_id" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableCeoUserID(v *string) *CeoTeachingUpdate {
	if v != nil {
		_u.SetCeoUserID(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *CeoTeachingUpdate) SetStatement(v string) *CeoTeachingUpdate {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableStatement(v *string) *CeoTeachingUpdate {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CeoTeachingUpdate) SetReasoning(v string) *CeoTeachingUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableReasoning(v *string) *CeoTeachingUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *CeoTeachingUpdate) ClearReasoning() *CeoTeachingUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetContext sets the "context" field.
func (_u *CeoTeachingUpdate) SetContext(v string) *CeoTeachingUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableContext(v *string) *CeoTeachingUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CeoTeachingUpdate) ClearContext() *CeoTeachingUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetCategory sets the "category" field.
func (_u *CeoTeachingUpdate) SetCategory(v ceoteaching.Category) *CeoTeachingUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableCategory(v *ceoteaching.Category) *CeoTeachingUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CeoTeachingUpdate) SetPriority(v int) *CeoTeachingUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillablePriority(v *int) *CeoTeachingUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *CeoTeachingUpdate) AddPriority(v int) *CeoTeachingUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CeoTeachingUpdate) SetIsActive(v bool) *CeoTeachingUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableIsActive(v *bool) *CeoTeachingUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *CeoTeachingUpdate) SetUsageCount(v int) *CeoTeachingUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableUsageCount(v *int) *CeoTeachingUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *CeoTeachingUpdate) AddUsageCount(v int) *CeoTeachingUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *CeoTeachingUpdate) SetValidationStatus(v ceoteaching.ValidationStatus) *CeoTeachingUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableValidationStatus(v *ceoteaching.ValidationStatus) *CeoTeachingUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetSupersedesID sets the "supersedes_id" field.
func (_u *CeoTeachingUpdate) SetSupersedesID(v string) *CeoTeachingUpdate {
	_u.mutation.SetSupersedesID(v)
	return _u
}

// SetNillableSupersedesID sets the "supersedes_id" field if the given value is not nil.
func (_u *CeoTeachingUpdate) SetNillableSupersedesID(v *string) *CeoTeachingUpdate {
	if v != nil {
		_u.SetSupersedesID(*v)
	}
	return _u
}

// ClearSupersedesID clears the value of the "supersedes_id" field.
func (_u *CeoTeachingUpdate) ClearSupersedesID() *CeoTeachingUpdate {
	_u.mutation.ClearSupersedesID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CeoTeachingUpdate) SetUpdatedAt(v time.Time) *CeoTeachingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CeoTeachingMutation object of the builder.
func (_u *CeoTeachingUpdate) Mutation() *CeoTeachingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CeoTeachingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CeoTeachingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CeoTeachingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CeoTeachingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CeoTeachingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ceoteaching.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CeoTeachingUpdate) check() error {
	if v, ok := _u.mutation.CeoUserID(); ok {
		if err := ceoteaching.CeoUserIDValidator(v); err != nil {
			return &ValidationError{Name: "ceo_user_id", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.ceo_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statement(); ok {
		if err := ceoteaching.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := ceoteaching.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ceoteaching.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := ceoteaching.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CeoTeachingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ceoteaching.Table, ceoteaching.Columns, sqlgraph.NewFieldSpec(ceoteaching.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CeoUserID(); ok {
		_spec.SetField(ceoteaching.FieldCeoUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(ceoteaching.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(ceoteaching.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(ceoteaching.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(ceoteaching.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(ceoteaching.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(ceoteaching.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ceoteaching.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ceoteaching.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ceoteaching.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(ceoteaching.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(ceoteaching.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(ceoteaching.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersedesID(); ok {
		_spec.SetField(ceoteaching.FieldSupersedesID, field.TypeString, value)
	}
	if _u.mutation.SupersedesIDCleared() {
		_spec.ClearField(ceoteaching.FieldSupersedesID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ceoteaching.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ceoteaching.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CeoTeachingUpdateOne is the builder for updating a single CeoTeaching entity.
type CeoTeachingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CeoTeachingMutation
}

// SetCeoUserID sets the "ceo_user_id" field.
func (_u *CeoTeachingUpdateOne) SetCeoUserID(v string) *CeoTeachingUpdateOne {
	_u.mutation.SetCeoUserID(v)
	return _u
}

// SetNillableCeoUserID sets the "ceo_user_id" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableCeoUserID(v *string) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetCeoUserID(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *CeoTeachingUpdateOne) SetStatement(v string) *CeoTeachingUpdateOne {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableStatement(v *string) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CeoTeachingUpdateOne) SetReasoning(v string) *CeoTeachingUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableReasoning(v *string) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *CeoTeachingUpdateOne) ClearReasoning() *CeoTeachingUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetContext sets the "context" field.
func (_u *CeoTeachingUpdateOne) SetContext(v string) *CeoTeachingUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableContext(v *string) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CeoTeachingUpdateOne) ClearContext() *CeoTeachingUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetCategory sets the "category" field.
func (_u *CeoTeachingUpdateOne) SetCategory(v ceoteaching.Category) *CeoTeachingUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableCategory(v *ceoteaching.Category) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CeoTeachingUpdateOne) SetPriority(v int) *CeoTeachingUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillablePriority(v *int) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *CeoTeachingUpdateOne) AddPriority(v int) *CeoTeachingUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CeoTeachingUpdateOne) SetIsActive(v bool) *CeoTeachingUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableIsActive(v *bool) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *CeoTeachingUpdateOne) SetUsageCount(v int) *CeoTeachingUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableUsageCount(v *int) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *CeoTeachingUpdateOne) AddUsageCount(v int) *CeoTeachingUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *CeoTeachingUpdateOne) SetValidationStatus(v ceoteaching.ValidationStatus) *CeoTeachingUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableValidationStatus(v *ceoteaching.ValidationStatus) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetSupersedesID sets the "supersedes_id" field.
func (_u *CeoTeachingUpdateOne) SetSupersedesID(v string) *CeoTeachingUpdateOne {
	_u.mutation.SetSupersedesID(v)
	return _u
}

// SetNillableSupersedesID sets the "supersedes_id" field if the given value is not nil.
func (_u *CeoTeachingUpdateOne) SetNillableSupersedesID(v *string) *CeoTeachingUpdateOne {
	if v != nil {
		_u.SetSupersedesID(*v)
	}
	return _u
}

// ClearSupersedesID clears the value of the "supersedes_id" field.
func (_u *CeoTeachingUpdateOne) ClearSupersedesID() *CeoTeachingUpdateOne {
	_u.mutation.ClearSupersedesID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CeoTeachingUpdateOne) SetUpdatedAt(v time.Time) *CeoTeachingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CeoTeachingMutation object of the builder.
func (_u *CeoTeachingUpdateOne) Mutation() *CeoTeachingMutation {
	return _u.mutation
}

// Where appends a list predicates to the CeoTeachingUpdate builder.
func (_u *CeoTeachingUpdateOne) Where(ps ...predicate.CeoTeaching) *CeoTeachingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CeoTeachingUpdateOne) Select(field string, fields ...string) *CeoTeachingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CeoTeaching entity.
func (_u *CeoTeachingUpdateOne) Save(ctx context.Context) (*CeoTeaching, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CeoTeachingUpdateOne) SaveX(ctx context.Context) *CeoTeaching {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CeoTeachingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CeoTeachingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CeoTeachingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ceoteaching.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CeoTeachingUpdateOne) check() error {
	if v, ok := _u.mutation.CeoUserID(); ok {
		if err := ceoteaching.CeoUserIDValidator(v); err != nil {
			return &ValidationError{Name: "ceo_user_id", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.ceo_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statement(); ok {
		if err := ceoteaching.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := ceoteaching.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ceoteaching.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := ceoteaching.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CeoTeachingUpdateOne) sqlSave(ctx context.Context) (_node *CeoTeaching, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ceoteaching.Table, ceoteaching.Columns, sqlgraph.NewFieldSpec(ceoteaching.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CeoTeaching.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ceoteaching.FieldID)
		for _, f := range fields {
			if !ceoteaching.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ceoteaching.FieldID {
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
	if value, ok := _u.mutation.CeoUserID(); ok {
		_spec.SetField(ceoteaching.FieldCeoUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(ceoteaching.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(ceoteaching.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(ceoteaching.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(ceoteaching.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(ceoteaching.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(ceoteaching.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ceoteaching.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ceoteaching.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ceoteaching.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(ceoteaching.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(ceoteaching.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(ceoteaching.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersedesID(); ok {
		_spec.SetField(ceoteaching.FieldSupersedesID, field.TypeString, value)
	}
	if _u.mutation.SupersedesIDCleared() {
		_spec.ClearField(ceoteaching.FieldSupersedesID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ceoteaching.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CeoTeaching{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ceoteaching.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
