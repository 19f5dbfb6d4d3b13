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
	"github.com/wisehub-ai/wisehub/ent/predicate"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
)

// ScheduledJobUpdate is the builder for updating ScheduledJob entities.
type ScheduledJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdate) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdate) SetKind(v string) *ScheduledJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableKind(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledJobUpdate) SetPayload(v map[string]interface{}) *ScheduledJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledJobUpdate) ClearPayload() *ScheduledJobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledJobUpdate) SetRunAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableRunAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ScheduledJobUpdate) SetCronExpression(v string) *ScheduledJobUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableCronExpression(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *ScheduledJobUpdate) ClearCronExpression() *ScheduledJobUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledJobUpdate) SetStatus(v scheduledjob.Status) *ScheduledJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ScheduledJobUpdate) SetClaimedBy(v string) *ScheduledJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableClaimedBy(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ScheduledJobUpdate) ClearClaimedBy() *ScheduledJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ScheduledJobUpdate) SetClaimedAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableClaimedAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ScheduledJobUpdate) ClearClaimedAt() *ScheduledJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ScheduledJobUpdate) SetAttempts(v int) *ScheduledJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableAttempts(v *int) *ScheduledJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ScheduledJobUpdate) AddAttempts(v int) *ScheduledJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledJobUpdate) SetLastError(v string) *ScheduledJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLastError(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledJobUpdate) ClearLastError() *ScheduledJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdate) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduledjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(scheduledjob.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(scheduledjob.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(scheduledjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(scheduledjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(scheduledjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(scheduledjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledjob.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledJobUpdateOne is the builder for updating a single ScheduledJob entity.
type ScheduledJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdateOne) SetKind(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableKind(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledJobUpdateOne) SetPayload(v map[string]interface{}) *ScheduledJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledJobUpdateOne) ClearPayload() *ScheduledJobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledJobUpdateOne) SetRunAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableRunAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ScheduledJobUpdateOne) SetCronExpression(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableCronExpression(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *ScheduledJobUpdateOne) ClearCronExpression() *ScheduledJobUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledJobUpdateOne) SetStatus(v scheduledjob.Status) *ScheduledJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ScheduledJobUpdateOne) SetClaimedBy(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableClaimedBy(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ScheduledJobUpdateOne) ClearClaimedBy() *ScheduledJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ScheduledJobUpdateOne) SetClaimedAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableClaimedAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ScheduledJobUpdateOne) ClearClaimedAt() *ScheduledJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ScheduledJobUpdateOne) SetAttempts(v int) *ScheduledJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableAttempts(v *int) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ScheduledJobUpdateOne) AddAttempts(v int) *ScheduledJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledJobUpdateOne) SetLastError(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLastError(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledJobUpdateOne) ClearLastError() *ScheduledJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdateOne) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdateOne) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledJobUpdateOne) Select(field string, fields ...string) *ScheduledJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledJob entity.
func (_u *ScheduledJobUpdateOne) Save(ctx context.Context) (*ScheduledJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) SaveX(ctx context.Context) *ScheduledJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledjob.FieldID)
		for _, f := range fields {
			if !scheduledjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledjob.FieldID {
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
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduledjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(scheduledjob.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(scheduledjob.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(scheduledjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(scheduledjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(scheduledjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(scheduledjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledjob.FieldLastError, field.TypeString)
	}
	_node = &ScheduledJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
