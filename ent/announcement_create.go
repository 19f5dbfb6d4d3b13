// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
)

// AnnouncementCreate is the builder for creating a Announcement entity.
type AnnouncementCreate struct {
	config
	mutation *AnnouncementMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *AnnouncementCreate) SetTenantID(v string) *AnnouncementCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AnnouncementCreate) SetTitle(v string) *AnnouncementCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableTitle(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetMessageBody sets the "message_body" field.
func (_c *AnnouncementCreate) SetMessageBody(v string) *AnnouncementCreate {
	_c.mutation.SetMessageBody(v)
	return _c
}

// SetTargetRoomID sets the "target_room_id" field.
func (_c *AnnouncementCreate) SetTargetRoomID(v string) *AnnouncementCreate {
	_c.mutation.SetTargetRoomID(v)
	return _c
}

// SetNillableTargetRoomID sets the "target_room_id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableTargetRoomID(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetTargetRoomID(*v)
	}
	return _c
}

// SetCreateTasks sets the "create_tasks" field.
func (_c *AnnouncementCreate) SetCreateTasks(v bool) *AnnouncementCreate {
	_c.mutation.SetCreateTasks(v)
	return _c
}

// SetNillableCreateTasks sets the "create_tasks" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableCreateTasks(v *bool) *AnnouncementCreate {
	if v != nil {
		_c.SetCreateTasks(*v)
	}
	return _c
}

// SetTaskIncludeIds sets the "task_include_ids" field.
func (_c *AnnouncementCreate) SetTaskIncludeIds(v []string) *AnnouncementCreate {
	_c.mutation.SetTaskIncludeIds(v)
	return _c
}

// SetTaskExcludeIds sets the "task_exclude_ids" field.
func (_c *AnnouncementCreate) SetTaskExcludeIds(v []string) *AnnouncementCreate {
	_c.mutation.SetTaskExcludeIds(v)
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *AnnouncementCreate) SetScheduleType(v announcement.ScheduleType) *AnnouncementCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableScheduleType(v *announcement.ScheduleType) *AnnouncementCreate {
	if v != nil {
		_c.SetScheduleType(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *AnnouncementCreate) SetScheduledAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableScheduledAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *AnnouncementCreate) SetCronExpression(v string) *AnnouncementCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableCronExpression(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *AnnouncementCreate) SetTimezone(v string) *AnnouncementCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableTimezone(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetSkipHoliday sets the "skip_holiday" field.
func (_c *AnnouncementCreate) SetSkipHoliday(v bool) *AnnouncementCreate {
	_c.mutation.SetSkipHoliday(v)
	return _c
}

// SetNillableSkipHoliday sets the "skip_holiday" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableSkipHoliday(v *bool) *AnnouncementCreate {
	if v != nil {
		_c.SetSkipHoliday(*v)
	}
	return _c
}

// SetSkipWeekend sets the "skip_weekend" field.
func (_c *AnnouncementCreate) SetSkipWeekend(v bool) *AnnouncementCreate {
	_c.mutation.SetSkipWeekend(v)
	return _c
}

// SetNillableSkipWeekend sets the "skip_weekend" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableSkipWeekend(v *bool) *AnnouncementCreate {
	if v != nil {
		_c.SetSkipWeekend(*v)
	}
	return _c
}

// SetTaskDeadline sets the "task_deadline" field.
func (_c *AnnouncementCreate) SetTaskDeadline(v time.Time) *AnnouncementCreate {
	_c.mutation.SetTaskDeadline(v)
	return _c
}

// SetNillableTaskDeadline sets the "task_deadline" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableTaskDeadline(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetTaskDeadline(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnnouncementCreate) SetStatus(v announcement.Status) *AnnouncementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableStatus(v *announcement.Status) *AnnouncementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequesterAccountID sets the "requester_account_id" field.
func (_c *AnnouncementCreate) SetRequesterAccountID(v string) *AnnouncementCreate {
	_c.mutation.SetRequesterAccountID(v)
	return _c
}

// SetSourceRoomID sets the "source_room_id" field.
func (_c *AnnouncementCreate) SetSourceRoomID(v string) *AnnouncementCreate {
	_c.mutation.SetSourceRoomID(v)
	return _c
}

// SetConfirmationMessageID sets the "confirmation_message_id" field.
func (_c *AnnouncementCreate) SetConfirmationMessageID(v string) *AnnouncementCreate {
	_c.mutation.SetConfirmationMessageID(v)
	return _c
}

// SetNillableConfirmationMessageID sets the "confirmation_message_id" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableConfirmationMessageID(v *string) *AnnouncementCreate {
	if v != nil {
		_c.SetConfirmationMessageID(*v)
	}
	return _c
}

// SetNextExecutionAt sets the "next_execution_at" field.
func (_c *AnnouncementCreate) SetNextExecutionAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetNextExecutionAt(v)
	return _c
}

// SetNillableNextExecutionAt sets the "next_execution_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableNextExecutionAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetNextExecutionAt(*v)
	}
	return _c
}

// SetLastExecutionAt sets the "last_execution_at" field.
func (_c *AnnouncementCreate) SetLastExecutionAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetLastExecutionAt(v)
	return _c
}

// SetNillableLastExecutionAt sets the "last_execution_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableLastExecutionAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetLastExecutionAt(*v)
	}
	return _c
}

// SetExecutionCount sets the "execution_count" field.
func (_c *AnnouncementCreate) SetExecutionCount(v int) *AnnouncementCreate {
	_c.mutation.SetExecutionCount(v)
	return _c
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableExecutionCount(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetExecutionCount(*v)
	}
	return _c
}

// SetMaxExecutions sets the "max_executions" field.
func (_c *AnnouncementCreate) SetMaxExecutions(v int) *AnnouncementCreate {
	_c.mutation.SetMaxExecutions(v)
	return _c
}

// SetNillableMaxExecutions sets the "max_executions" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableMaxExecutions(v *int) *AnnouncementCreate {
	if v != nil {
		_c.SetMaxExecutions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnnouncementCreate) SetCreatedAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableCreatedAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnnouncementCreate) SetUpdatedAt(v time.Time) *AnnouncementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnnouncementCreate) SetNillableUpdatedAt(v *time.Time) *AnnouncementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnnouncementCreate) SetID(v string) *AnnouncementCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the AnnouncementExecution entity by IDs.
func (_c *AnnouncementCreate) AddExecutionIDs(ids ...string) *AnnouncementCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the AnnouncementExecution entity.
func (_c *AnnouncementCreate) AddExecutions(v ...*AnnouncementExecution) *AnnouncementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_c *AnnouncementCreate) Mutation() *AnnouncementMutation {
	return _c.mutation
}

// Save creates the Announcement in the database.
func (_c *AnnouncementCreate) Save(ctx context.Context) (*Announcement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnnouncementCreate) SaveX(ctx context.Context) *Announcement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnnouncementCreate) defaults() {
	if _, ok := _c.mutation.CreateTasks(); !ok {
		v := announcement.DefaultCreateTasks
		_c.mutation.SetCreateTasks(v)
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		v := announcement.DefaultScheduleType
		_c.mutation.SetScheduleType(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := announcement.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.SkipHoliday(); !ok {
		v := announcement.DefaultSkipHoliday
		_c.mutation.SetSkipHoliday(v)
	}
	if _, ok := _c.mutation.SkipWeekend(); !ok {
		v := announcement.DefaultSkipWeekend
		_c.mutation.SetSkipWeekend(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := announcement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		v := announcement.DefaultExecutionCount
		_c.mutation.SetExecutionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := announcement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := announcement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnnouncementCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Announcement.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := announcement.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageBody(); !ok {
		return &ValidationError{Name: "message_body", err: errors.New(`ent: missing required field "Announcement.message_body"`)}
	}
	if v, ok := _c.mutation.MessageBody(); ok {
		if err := announcement.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "Announcement.message_body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreateTasks(); !ok {
		return &ValidationError{Name: "create_tasks", err: errors.New(`ent: missing required field "Announcement.create_tasks"`)}
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		return &ValidationError{Name: "schedule_type", err: errors.New(`ent: missing required field "Announcement.schedule_type"`)}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := announcement.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Announcement.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Announcement.timezone"`)}
	}
	if _, ok := _c.mutation.SkipHoliday(); !ok {
		return &ValidationError{Name: "skip_holiday", err: errors.New(`ent: missing required field "Announcement.skip_holiday"`)}
	}
	if _, ok := _c.mutation.SkipWeekend(); !ok {
		return &ValidationError{Name: "skip_weekend", err: errors.New(`ent: missing required field "Announcement.skip_weekend"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Announcement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := announcement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Announcement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequesterAccountID(); !ok {
		return &ValidationError{Name: "requester_account_id", err: errors.New(`ent: missing required field "Announcement.requester_account_id"`)}
	}
	if v, ok := _c.mutation.RequesterAccountID(); ok {
		if err := announcement.RequesterAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "requester_account_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.requester_account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceRoomID(); !ok {
		return &ValidationError{Name: "source_room_id", err: errors.New(`ent: missing required field "Announcement.source_room_id"`)}
	}
	if v, ok := _c.mutation.SourceRoomID(); ok {
		if err := announcement.SourceRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "source_room_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.source_room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		return &ValidationError{Name: "execution_count", err: errors.New(`ent: missing required field "Announcement.execution_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Announcement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Announcement.updated_at"`)}
	}
	return nil
}

func (_c *AnnouncementCreate) sqlSave(ctx context.Context) (*Announcement, error) {
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
			return nil, fmt.Errorf("unexpected Announcement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnnouncementCreate) createSpec() (*Announcement, *sqlgraph.CreateSpec) {
	var (
		_node = &Announcement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(announcement.Table, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(announcement.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.MessageBody(); ok {
		_spec.SetField(announcement.FieldMessageBody, field.TypeString, value)
		_node.MessageBody = value
	}
	if value, ok := _c.mutation.TargetRoomID(); ok {
		_spec.SetField(announcement.FieldTargetRoomID, field.TypeString, value)
		_node.TargetRoomID = &value
	}
	if value, ok := _c.mutation.CreateTasks(); ok {
		_spec.SetField(announcement.FieldCreateTasks, field.TypeBool, value)
		_node.CreateTasks = value
	}
	if value, ok := _c.mutation.TaskIncludeIds(); ok {
		_spec.SetField(announcement.FieldTaskIncludeIds, field.TypeJSON, value)
		_node.TaskIncludeIds = value
	}
	if value, ok := _c.mutation.TaskExcludeIds(); ok {
		_spec.SetField(announcement.FieldTaskExcludeIds, field.TypeJSON, value)
		_node.TaskExcludeIds = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(announcement.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(announcement.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(announcement.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(announcement.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.SkipHoliday(); ok {
		_spec.SetField(announcement.FieldSkipHoliday, field.TypeBool, value)
		_node.SkipHoliday = value
	}
	if value, ok := _c.mutation.SkipWeekend(); ok {
		_spec.SetField(announcement.FieldSkipWeekend, field.TypeBool, value)
		_node.SkipWeekend = value
	}
	if value, ok := _c.mutation.TaskDeadline(); ok {
		_spec.SetField(announcement.FieldTaskDeadline, field.TypeTime, value)
		_node.TaskDeadline = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequesterAccountID(); ok {
		_spec.SetField(announcement.FieldRequesterAccountID, field.TypeString, value)
		_node.RequesterAccountID = value
	}
	if value, ok := _c.mutation.SourceRoomID(); ok {
		_spec.SetField(announcement.FieldSourceRoomID, field.TypeString, value)
		_node.SourceRoomID = value
	}
	if value, ok := _c.mutation.ConfirmationMessageID(); ok {
		_spec.SetField(announcement.FieldConfirmationMessageID, field.TypeString, value)
		_node.ConfirmationMessageID = &value
	}
	if value, ok := _c.mutation.NextExecutionAt(); ok {
		_spec.SetField(announcement.FieldNextExecutionAt, field.TypeTime, value)
		_node.NextExecutionAt = &value
	}
	if value, ok := _c.mutation.LastExecutionAt(); ok {
		_spec.SetField(announcement.FieldLastExecutionAt, field.TypeTime, value)
		_node.LastExecutionAt = &value
	}
	if value, ok := _c.mutation.ExecutionCount(); ok {
		_spec.SetField(announcement.FieldExecutionCount, field.TypeInt, value)
		_node.ExecutionCount = value
	}
	if value, ok := _c.mutation.MaxExecutions(); ok {
		_spec.SetField(announcement.FieldMaxExecutions, field.TypeInt, value)
		_node.MaxExecutions = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(announcement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(announcement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   announcement.ExecutionsTable,
			Columns: []string{announcement.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcementexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnnouncementCreateBulk is the builder for creating many Announcement entities in bulk.
type AnnouncementCreateBulk struct {
	config
	err      error
	builders []*AnnouncementCreate
}

// Save creates the Announcement entities in the database.
func (_c *AnnouncementCreateBulk) Save(ctx context.Context) ([]*Announcement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Announcement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnnouncementMutation)
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
func (_c *AnnouncementCreateBulk) SaveX(ctx context.Context) []*Announcement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
