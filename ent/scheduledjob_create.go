// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
)

// ScheduledJobCreate is the builder for creating a ScheduledJob entity.
type ScheduledJobCreate struct {
	config
	mutation *ScheduledJobMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ScheduledJobCreate) SetTenantID(v string) *ScheduledJobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ScheduledJobCreate) SetKind(v string) *ScheduledJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ScheduledJobCreate) SetPayload(v map[string]interface{}) *ScheduledJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *ScheduledJobCreate) SetRunAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *ScheduledJobCreate) SetCronExpression(v string) *ScheduledJobCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCronExpression(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledJobCreate) SetStatus(v scheduledjob.Status) *ScheduledJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *ScheduledJobCreate) SetClaimedBy(v string) *ScheduledJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableClaimedBy(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ScheduledJobCreate) SetClaimedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableClaimedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ScheduledJobCreate) SetAttempts(v int) *ScheduledJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableAttempts(v *int) *ScheduledJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ScheduledJobCreate) SetLastError(v string) *ScheduledJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLastError(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledJobCreate) SetCreatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCreatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledJobCreate) SetID(v string) *ScheduledJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_c *ScheduledJobCreate) Mutation() *ScheduledJobMutation {
	return _c.mutation
}

// Save creates the ScheduledJob in the database.
func (_c *ScheduledJobCreate) Save(ctx context.Context) (*ScheduledJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledJobCreate) SaveX(ctx context.Context) *ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := scheduledjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledJobCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ScheduledJob.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := scheduledjob.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScheduledJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := scheduledjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "ScheduledJob.run_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ScheduledJob.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledJob.created_at"`)}
	}
	return nil
}

func (_c *ScheduledJobCreate) sqlSave(ctx context.Context) (*ScheduledJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledJobCreate) createSpec() (*ScheduledJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledjob.Table, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(scheduledjob.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(scheduledjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(scheduledjob.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(scheduledjob.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledjob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledjob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(scheduledjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(scheduledjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ScheduledJobCreateBulk is the builder for creating many ScheduledJob entities in bulk.
type ScheduledJobCreateBulk struct {
	config
	err      error
	builders []*ScheduledJobCreate
}

// Save creates the ScheduledJob entities in the database.
func (_c *ScheduledJobCreateBulk) Save(ctx context.Context) ([]*ScheduledJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) SaveX(ctx context.Context) []*ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
