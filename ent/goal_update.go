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
	"github.com/wisehub-ai/wisehub/ent/goal"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// GoalUpdate is the builder for updating Goal entities.
type GoalUpdate struct {
	config
	hooks    []Hook
	mutation *GoalMutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdate) Where(ps ...predicate.Goal) *GoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GoalUpdate) SetUserID(v string) *GoalUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableUserID(v *string) *GoalUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GoalUpdate) SetTitle(v string) *GoalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTitle(v *string) *GoalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetWhy sets the "why" field.
func (_u *GoalUpdate) SetWhy(v string) *GoalUpdate {
	_u.mutation.SetWhy(v)
	return _u
}

// SetNillableWhy sets the "why" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableWhy(v *string) *GoalUpdate {
	if v != nil {
		_u.SetWhy(*v)
	}
	return _u
}

// ClearWhy clears the value of the "why" field.
func (_u *GoalUpdate) ClearWhy() *GoalUpdate {
	_u.mutation.ClearWhy()
	return _u
}

// SetFirstStep sets the "first_step" field.
func (_u *GoalUpdate) SetFirstStep(v string) *GoalUpdate {
	_u.mutation.SetFirstStep(v)
	return _u
}

// SetNillableFirstStep sets the "first_step" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableFirstStep(v *string) *GoalUpdate {
	if v != nil {
		_u.SetFirstStep(*v)
	}
	return _u
}

// ClearFirstStep clears the value of the "first_step" field.
func (_u *GoalUpdate) ClearFirstStep() *GoalUpdate {
	_u.mutation.ClearFirstStep()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdate) SetStatus(v goal.Status) *GoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStatus(v *goal.Status) *GoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *GoalUpdate) SetTargetDate(v time.Time) *GoalUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTargetDate(v *time.Time) *GoalUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// ClearTargetDate clears the value of the "target_date" field.
func (_u *GoalUpdate) ClearTargetDate() *GoalUpdate {
	_u.mutation.ClearTargetDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GoalUpdate) SetUpdatedAt(v time.Time) *GoalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdate) Mutation() *GoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GoalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := goal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := goal.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Goal.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := goal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Goal.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := goal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Goal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(goal.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(goal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Why(); ok {
		_spec.SetField(goal.FieldWhy, field.TypeString, value)
	}
	if _u.mutation.WhyCleared() {
		_spec.ClearField(goal.FieldWhy, field.TypeString)
	}
	if value, ok := _u.mutation.FirstStep(); ok {
		_spec.SetField(goal.FieldFirstStep, field.TypeString, value)
	}
	if _u.mutation.FirstStepCleared() {
		_spec.ClearField(goal.FieldFirstStep, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(goal.FieldTargetDate, field.TypeTime, value)
	}
	if _u.mutation.TargetDateCleared() {
		_spec.ClearField(goal.FieldTargetDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(goal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalUpdateOne is the builder for updating a single Goal entity.
type GoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalMutation
}

// SetUserID sets the "user_id" field.
func (_u *GoalUpdateOne) SetUserID(v string) *GoalUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableUserID(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GoalUpdateOne) SetTitle(v string) *GoalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTitle(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetWhy sets the "why" field.
func (_u *GoalUpdateOne) SetWhy(v string) *GoalUpdateOne {
	_u.mutation.SetWhy(v)
	return _u
}

// SetNillableWhy sets the "why" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableWhy(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetWhy(*v)
	}
	return _u
}

// ClearWhy clears the value of the "why" field.
func (_u *GoalUpdateOne) ClearWhy() *GoalUpdateOne {
	_u.mutation.ClearWhy()
	return _u
}

// SetFirstStep sets the "first_step" field.
func (_u *GoalUpdateOne) SetFirstStep(v string) *GoalUpdateOne {
	_u.mutation.SetFirstStep(v)
	return _u
}

// SetNillableFirstStep sets the "first_step" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableFirstStep(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetFirstStep(*v)
	}
	return _u
}

// ClearFirstStep clears the value of the "first_step" field.
func (_u *GoalUpdateOne) ClearFirstStep() *GoalUpdateOne {
	_u.mutation.ClearFirstStep()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdateOne) SetStatus(v goal.Status) *GoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStatus(v *goal.Status) *GoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *GoalUpdateOne) SetTargetDate(v time.Time) *GoalUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTargetDate(v *time.Time) *GoalUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// ClearTargetDate clears the value of the "target_date" field.
func (_u *GoalUpdateOne) ClearTargetDate() *GoalUpdateOne {
	_u.mutation.ClearTargetDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GoalUpdateOne) SetUpdatedAt(v time.Time) *GoalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdateOne) Mutation() *GoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdateOne) Where(ps ...predicate.Goal) *GoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalUpdateOne) Select(field string, fields ...string) *GoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Goal entity.
func (_u *GoalUpdateOne) Save(ctx context.Context) (*Goal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdateOne) SaveX(ctx context.Context) *Goal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GoalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := goal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := goal.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Goal.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := goal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Goal.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := goal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Goal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdateOne) sqlSave(ctx context.Context) (_node *Goal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Goal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goal.FieldID)
		for _, f := range fields {
			if !goal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goal.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(goal.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(goal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Why(); ok {
		_spec.SetField(goal.FieldWhy, field.TypeString, value)
	}
	if _u.mutation.WhyCleared() {
		_spec.ClearField(goal.FieldWhy, field.TypeString)
	}
	if value, ok := _u.mutation.FirstStep(); ok {
		_spec.SetField(goal.FieldFirstStep, field.TypeString, value)
	}
	if _u.mutation.FirstStepCleared() {
		_spec.ClearField(goal.FieldFirstStep, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(goal.FieldTargetDate, field.TypeTime, value)
	}
	if _u.mutation.TargetDateCleared() {
		_spec.ClearField(goal.FieldTargetDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(goal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Goal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
