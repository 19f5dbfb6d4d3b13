// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// AnnouncementUpdate is the builder for updating Announcement entities.
type AnnouncementUpdate struct {
	config
	hooks    []Hook
	mutation *AnnouncementMutation
}

// Where appends a list predicates to the AnnouncementUpdate builder.
func (_u *AnnouncementUpdate) Where(ps ...predicate.Announcement) *AnnouncementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AnnouncementUpdate) SetTitle(v string) *AnnouncementUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTitle(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AnnouncementUpdate) ClearTitle() *AnnouncementUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetMessageBody sets the "message_body" field.
func (_u *AnnouncementUpdate) SetMessageBody(v string) *AnnouncementUpdate {
	_u.mutation.SetMessageBody(v)
	return _u
}

// SetNillableMessageBody sets the "message_body" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableMessageBody(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetMessageBody(*v)
	}
	return _u
}

// SetTargetRoomID sets the "target_room_id" field.
func (_u *AnnouncementUpdate) SetTargetRoomID(v string) *AnnouncementUpdate {
	_u.mutation.SetTargetRoomID(v)
	return _u
}

// SetNillableTargetRoomID sets the "target_room_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTargetRoomID(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetTargetRoomID(*v)
	}
	return _u
}

// ClearTargetRoomID clears the value of the "target_room_id" field.
func (_u *AnnouncementUpdate) ClearTargetRoomID() *AnnouncementUpdate {
	_u.mutation.ClearTargetRoomID()
	return _u
}

// SetCreateTasks sets the "create_tasks" field.
func (_u *AnnouncementUpdate) SetCreateTasks(v bool) *AnnouncementUpdate {
	_u.mutation.SetCreateTasks(v)
	return _u
}

// SetNillableCreateTasks sets the "create_tasks" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableCreateTasks(v *bool) *AnnouncementUpdate {
	if v != nil {
		_u.SetCreateTasks(*v)
	}
	return _u
}

// SetTaskIncludeIds sets the "task_include_ids" field.
func (_u *AnnouncementUpdate) SetTaskIncludeIds(v []string) *AnnouncementUpdate {
	_u.mutation.SetTaskIncludeIds(v)
	return _u
}

// AppendTaskIncludeIds appends value to the "task_include_ids" field.
func (_u *AnnouncementUpdate) AppendTaskIncludeIds(v []string) *AnnouncementUpdate {
	_u.mutation.AppendTaskIncludeIds(v)
	return _u
}

// ClearTaskIncludeIds clears the value of the "task_include_ids" field.
func (_u *AnnouncementUpdate) ClearTaskIncludeIds() *AnnouncementUpdate {
	_u.mutation.ClearTaskIncludeIds()
	return _u
}

// SetTaskExcludeIds sets the "task_exclude_ids" field.
func (_u *AnnouncementUpdate) SetTaskExcludeIds(v []string) *AnnouncementUpdate {
	_u.mutation.SetTaskExcludeIds(v)
	return _u
}

// AppendTaskExcludeIds appends value to the "task_exclude_ids" field.
func (_u *AnnouncementUpdate) AppendTaskExcludeIds(v []string) *AnnouncementUpdate {
	_u.mutation.AppendTaskExcludeIds(v)
	return _u
}

// ClearTaskExcludeIds clears the value of the "task_exclude_ids" field.
func (_u *AnnouncementUpdate) ClearTaskExcludeIds() *AnnouncementUpdate {
	_u.mutation.ClearTaskExcludeIds()
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *AnnouncementUpdate) SetScheduleType(v announcement.ScheduleType) *AnnouncementUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableScheduleType(v *announcement.ScheduleType) *AnnouncementUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *AnnouncementUpdate) SetScheduledAt(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableScheduledAt(v *time.Time) *AnnouncementUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *AnnouncementUpdate) ClearScheduledAt() *AnnouncementUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *AnnouncementUpdate) SetCronExpression(v string) *AnnouncementUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableCronExpression(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *AnnouncementUpdate) ClearCronExpression() *AnnouncementUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AnnouncementUpdate) SetTimezone(v string) *AnnouncementUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTimezone(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSkipHoliday sets the "skip_holiday" field.
func (_u *AnnouncementUpdate) SetSkipHoliday(v bool) *AnnouncementUpdate {
	_u.mutation.SetSkipHoliday(v)
	return _u
}

// SetNillableSkipHoliday sets the "skip_holiday" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableSkipHoliday(v *bool) *AnnouncementUpdate {
	if v != nil {
		_u.SetSkipHoliday(*v)
	}
	return _u
}

// SetSkipWeekend sets the "skip_weekend" field.
func (_u *AnnouncementUpdate) SetSkipWeekend(v bool) *AnnouncementUpdate {
	_u.mutation.SetSkipWeekend(v)
	return _u
}

// SetNillableSkipWeekend sets the "skip_weekend" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableSkipWeekend(v *bool) *AnnouncementUpdate {
	if v != nil {
		_u.SetSkipWeekend(*v)
	}
	return _u
}

// SetTaskDeadline sets the "task_deadline" field.
func (_u *AnnouncementUpdate) SetTaskDeadline(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetTaskDeadline(v)
	return _u
}

// SetNillableTaskDeadline sets the "task_deadline" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableTaskDeadline(v *time.Time) *AnnouncementUpdate {
	if v != nil {
		_u.SetTaskDeadline(*v)
	}
	return _u
}

// ClearTaskDeadline clears the value of the "task_deadline" field.
func (_u *AnnouncementUpdate) ClearTaskDeadline() *AnnouncementUpdate {
	_u.mutation.ClearTaskDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementUpdate) SetStatus(v announcement.Status) *AnnouncementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableStatus(v *announcement.Status) *AnnouncementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequesterAccountID sets the "requester_account_id" field.
func (_u *AnnouncementUpdate) SetRequesterAccountID(v string) *AnnouncementUpdate {
	_u.mutation.SetRequesterAccountID(v)
	return _u
}

// SetNillableRequesterAccountID sets the "requester_account_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableRequesterAccountID(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetRequesterAccountID(*v)
	}
	return _u
}

// SetSourceRoomID sets the "source_room_id" field.
func (_u *AnnouncementUpdate) SetSourceRoomID(v string) *AnnouncementUpdate {
	_u.mutation.SetSourceRoomID(v)
	return _u
}

// SetNillableSourceRoomID sets the "source_room_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableSourceRoomID(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetSourceRoomID(*v)
	}
	return _u
}

// SetConfirmationMessageID sets the "confirmation_message_id" field.
func (_u *AnnouncementUpdate) SetConfirmationMessageID(v string) *AnnouncementUpdate {
	_u.mutation.SetConfirmationMessageID(v)
	return _u
}

// SetNillableConfirmationMessageID sets the "confirmation_message_id" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableConfirmationMessageID(v *string) *AnnouncementUpdate {
	if v != nil {
		_u.SetConfirmationMessageID(*v)
	}
	return _u
}

// ClearConfirmationMessageID clears the value of the "confirmation_message_id" field.
func (_u *AnnouncementUpdate) ClearConfirmationMessageID() *AnnouncementUpdate {
	_u.mutation.ClearConfirmationMessageID()
	return _u
}

// SetNextExecutionAt sets the "next_execution_at" field.
func (_u *AnnouncementUpdate) SetNextExecutionAt(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetNextExecutionAt(v)
	return _u
}

// SetNillableNextExecutionAt sets the "next_execution_at" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableNextExecutionAt(v *time.Time) *AnnouncementUpdate {
	if v != nil {
		_u.SetNextExecutionAt(*v)
	}
	return _u
}

// ClearNextExecutionAt clears the value of the "next_execution_at" field.
func (_u *AnnouncementUpdate) ClearNextExecutionAt() *AnnouncementUpdate {
	_u.mutation.ClearNextExecutionAt()
	return _u
}

// SetLastExecutionAt sets the "last_execution_at" field.
func (_u *AnnouncementUpdate) SetLastExecutionAt(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetLastExecutionAt(v)
	return _u
}

// SetNillableLastExecutionAt sets the "last_execution_at" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableLastExecutionAt(v *time.Time) *AnnouncementUpdate {
	if v != nil {
		_u.SetLastExecutionAt(*v)
	}
	return _u
}

// ClearLastExecutionAt clears the value of the "last_execution_at" field.
func (_u *AnnouncementUpdate) ClearLastExecutionAt() *AnnouncementUpdate {
	_u.mutation.ClearLastExecutionAt()
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *AnnouncementUpdate) SetExecutionCount(v int) *AnnouncementUpdate {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableExecutionCount(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *AnnouncementUpdate) AddExecutionCount(v int) *AnnouncementUpdate {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetMaxExecutions sets the "max_executions" field.
func (_u *AnnouncementUpdate) SetMaxExecutions(v int) *AnnouncementUpdate {
	_u.mutation.ResetMaxExecutions()
	_u.mutation.SetMaxExecutions(v)
	return _u
}

// SetNillableMaxExecutions sets the "max_executions" field if the given value is not nil.
func (_u *AnnouncementUpdate) SetNillableMaxExecutions(v *int) *AnnouncementUpdate {
	if v != nil {
		_u.SetMaxExecutions(*v)
	}
	return _u
}

// AddMaxExecutions adds value to the "max_executions" field.
func (_u *AnnouncementUpdate) AddMaxExecutions(v int) *AnnouncementUpdate {
	_u.mutation.AddMaxExecutions(v)
	return _u
}

// ClearMaxExecutions clears the value of the "max_executions" field.
func (_u *AnnouncementUpdate) ClearMaxExecutions() *AnnouncementUpdate {
	_u.mutation.ClearMaxExecutions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnnouncementUpdate) SetUpdatedAt(v time.Time) *AnnouncementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the AnnouncementExecution entity by IDs.
func (_u *AnnouncementUpdate) AddExecutionIDs(ids ...string) *AnnouncementUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the AnnouncementExecution entity.
func (_u *AnnouncementUpdate) AddExecutions(v ...*AnnouncementExecution) *AnnouncementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_u *AnnouncementUpdate) Mutation() *AnnouncementMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the AnnouncementExecution entity.
func (_u *AnnouncementUpdate) ClearExecutions() *AnnouncementUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to AnnouncementExecution entities by IDs.
func (_u *AnnouncementUpdate) RemoveExecutionIDs(ids ...string) *AnnouncementUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to AnnouncementExecution entities.
func (_u *AnnouncementUpdate) RemoveExecutions(v ...*AnnouncementExecution) *AnnouncementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnouncementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnouncementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnnouncementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := announcement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementUpdate) check() error {
	if v, ok := _u.mutation.MessageBody(); ok {
		if err := announcement.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "Announcement.message_body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := announcement.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Announcement.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := announcement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Announcement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterAccountID(); ok {
		if err := announcement.RequesterAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "requester_account_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.requester_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceRoomID(); ok {
		if err := announcement.SourceRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "source_room_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.source_room_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcement.Table, announcement.Columns, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(announcement.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MessageBody(); ok {
		_spec.SetField(announcement.FieldMessageBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRoomID(); ok {
		_spec.SetField(announcement.FieldTargetRoomID, field.TypeString, value)
	}
	if _u.mutation.TargetRoomIDCleared() {
		_spec.ClearField(announcement.FieldTargetRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.CreateTasks(); ok {
		_spec.SetField(announcement.FieldCreateTasks, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskIncludeIds(); ok {
		_spec.SetField(announcement.FieldTaskIncludeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskIncludeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcement.FieldTaskIncludeIds, value)
		})
	}
	if _u.mutation.TaskIncludeIdsCleared() {
		_spec.ClearField(announcement.FieldTaskIncludeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskExcludeIds(); ok {
		_spec.SetField(announcement.FieldTaskExcludeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskExcludeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcement.FieldTaskExcludeIds, value)
		})
	}
	if _u.mutation.TaskExcludeIdsCleared() {
		_spec.ClearField(announcement.FieldTaskExcludeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(announcement.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(announcement.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(announcement.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(announcement.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(announcement.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(announcement.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipHoliday(); ok {
		_spec.SetField(announcement.FieldSkipHoliday, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipWeekend(); ok {
		_spec.SetField(announcement.FieldSkipWeekend, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskDeadline(); ok {
		_spec.SetField(announcement.FieldTaskDeadline, field.TypeTime, value)
	}
	if _u.mutation.TaskDeadlineCleared() {
		_spec.ClearField(announcement.FieldTaskDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequesterAccountID(); ok {
		_spec.SetField(announcement.FieldRequesterAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceRoomID(); ok {
		_spec.SetField(announcement.FieldSourceRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfirmationMessageID(); ok {
		_spec.SetField(announcement.FieldConfirmationMessageID, field.TypeString, value)
	}
	if _u.mutation.ConfirmationMessageIDCleared() {
		_spec.ClearField(announcement.FieldConfirmationMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.NextExecutionAt(); ok {
		_spec.SetField(announcement.FieldNextExecutionAt, field.TypeTime, value)
	}
	if _u.mutation.NextExecutionAtCleared() {
		_spec.ClearField(announcement.FieldNextExecutionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastExecutionAt(); ok {
		_spec.SetField(announcement.FieldLastExecutionAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutionAtCleared() {
		_spec.ClearField(announcement.FieldLastExecutionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(announcement.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(announcement.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxExecutions(); ok {
		_spec.SetField(announcement.FieldMaxExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutions(); ok {
		_spec.AddField(announcement.FieldMaxExecutions, field.TypeInt, value)
	}
	if _u.mutation.MaxExecutionsCleared() {
		_spec.ClearField(announcement.FieldMaxExecutions, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(announcement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnouncementUpdateOne is the builder for updating a single Announcement entity.
type AnnouncementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnouncementMutation
}

// SetTitle sets the "title" field.
func (_u *AnnouncementUpdateOne) SetTitle(v string) *AnnouncementUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTitle(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AnnouncementUpdateOne) ClearTitle() *AnnouncementUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetMessageBody sets the "message_body" field.
func (_u *AnnouncementUpdateOne) SetMessageBody(v string) *AnnouncementUpdateOne {
	_u.mutation.SetMessageBody(v)
	return _u
}

// SetNillableMessageBody sets the "message_body" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableMessageBody(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetMessageBody(*v)
	}
	return _u
}

// SetTargetRoomID sets the "target_room_id" field.
func (_u *AnnouncementUpdateOne) SetTargetRoomID(v string) *AnnouncementUpdateOne {
	_u.mutation.SetTargetRoomID(v)
	return _u
}

// SetNillableTargetRoomID sets the "target_room_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTargetRoomID(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTargetRoomID(*v)
	}
	return _u
}

// ClearTargetRoomID clears the value of the "target_room_id" field.
func (_u *AnnouncementUpdateOne) ClearTargetRoomID() *AnnouncementUpdateOne {
	_u.mutation.ClearTargetRoomID()
	return _u
}

// SetCreateTasks sets the "create_tasks" field.
func (_u *AnnouncementUpdateOne) SetCreateTasks(v bool) *AnnouncementUpdateOne {
	_u.mutation.SetCreateTasks(v)
	return _u
}

// SetNillableCreateTasks sets the "create_tasks" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableCreateTasks(v *bool) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetCreateTasks(*v)
	}
	return _u
}

// SetTaskIncludeIds sets the "task_include_ids" field.
func (_u *AnnouncementUpdateOne) SetTaskIncludeIds(v []string) *AnnouncementUpdateOne {
	_u.mutation.SetTaskIncludeIds(v)
	return _u
}

// AppendTaskIncludeIds appends value to the "task_include_ids" field.
func (_u *AnnouncementUpdateOne) AppendTaskIncludeIds(v []string) *AnnouncementUpdateOne {
	_u.mutation.AppendTaskIncludeIds(v)
	return _u
}

// ClearTaskIncludeIds clears the value of the "task_include_ids" field.
func (_u *AnnouncementUpdateOne) ClearTaskIncludeIds() *AnnouncementUpdateOne {
	_u.mutation.ClearTaskIncludeIds()
	return _u
}

// SetTaskExcludeIds sets the "task_exclude_ids" field.
func (_u *AnnouncementUpdateOne) SetTaskExcludeIds(v []string) *AnnouncementUpdateOne {
	_u.mutation.SetTaskExcludeIds(v)
	return _u
}

// AppendTaskExcludeIds appends value to the "task_exclude_ids" field.
func (_u *AnnouncementUpdateOne) AppendTaskExcludeIds(v []string) *AnnouncementUpdateOne {
	_u.mutation.AppendTaskExcludeIds(v)
	return _u
}

// ClearTaskExcludeIds clears the value of the "task_exclude_ids" field.
func (_u *AnnouncementUpdateOne) ClearTaskExcludeIds() *AnnouncementUpdateOne {
	_u.mutation.ClearTaskExcludeIds()
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *AnnouncementUpdateOne) SetScheduleType(v announcement.ScheduleType) *AnnouncementUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableScheduleType(v *announcement.ScheduleType) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *AnnouncementUpdateOne) SetScheduledAt(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableScheduledAt(v *time.Time) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *AnnouncementUpdateOne) ClearScheduledAt() *AnnouncementUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *AnnouncementUpdateOne) SetCronExpression(v string) *AnnouncementUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableCronExpression(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *AnnouncementUpdateOne) ClearCronExpression() *AnnouncementUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AnnouncementUpdateOne) SetTimezone(v string) *AnnouncementUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTimezone(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSkipHoliday sets the "skip_holiday" field.
func (_u *AnnouncementUpdateOne) SetSkipHoliday(v bool) *AnnouncementUpdateOne {
	_u.mutation.SetSkipHoliday(v)
	return _u
}

// SetNillableSkipHoliday sets the "skip_holiday" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableSkipHoliday(v *bool) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetSkipHoliday(*v)
	}
	return _u
}

// SetSkipWeekend sets the "skip_weekend" field.
func (_u *AnnouncementUpdateOne) SetSkipWeekend(v bool) *AnnouncementUpdateOne {
	_u.mutation.SetSkipWeekend(v)
	return _u
}

// SetNillableSkipWeekend sets the "skip_weekend" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableSkipWeekend(v *bool) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetSkipWeekend(*v)
	}
	return _u
}

// SetTaskDeadline sets the "task_deadline" field.
func (_u *AnnouncementUpdateOne) SetTaskDeadline(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetTaskDeadline(v)
	return _u
}

// SetNillableTaskDeadline sets the "task_deadline" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableTaskDeadline(v *time.Time) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetTaskDeadline(*v)
	}
	return _u
}

// ClearTaskDeadline clears the value of the "task_deadline" field.
func (_u *AnnouncementUpdateOne) ClearTaskDeadline() *AnnouncementUpdateOne {
	_u.mutation.ClearTaskDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementUpdateOne) SetStatus(v announcement.Status) *AnnouncementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableStatus(v *announcement.Status) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequesterAccountID sets the "requester_account_id" field.
func (_u *AnnouncementUpdateOne) SetRequesterAccountID(v string) *AnnouncementUpdateOne {
	_u.mutation.SetRequesterAccountID(v)
	return _u
}

// SetNillableRequesterAccountID sets the "requester_account_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableRequesterAccountID(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetRequesterAccountID(*v)
	}
	return _u
}

// SetSourceRoomID sets the "source_room_id" field.
func (_u *AnnouncementUpdateOne) SetSourceRoomID(v string) *AnnouncementUpdateOne {
	_u.mutation.SetSourceRoomID(v)
	return _u
}

// SetNillableSourceRoomID sets the "source_room_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableSourceRoomID(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetSourceRoomID(*v)
	}
	return _u
}

// SetConfirmationMessageID sets the "confirmation_message_id" field.
func (_u *AnnouncementUpdateOne) SetConfirmationMessageID(v string) *AnnouncementUpdateOne {
	_u.mutation.SetConfirmationMessageID(v)
	return _u
}

// SetNillableConfirmationMessageID sets the "confirmation_message_id" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableConfirmationMessageID(v *string) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetConfirmationMessageID(*v)
	}
	return _u
}

// ClearConfirmationMessageID clears the value of the "confirmation_message_id" field.
func (_u *AnnouncementUpdateOne) ClearConfirmationMessageID() *AnnouncementUpdateOne {
	_u.mutation.ClearConfirmationMessageID()
	return _u
}

// SetNextExecutionAt sets the "next_execution_at" field.
func (_u *AnnouncementUpdateOne) SetNextExecutionAt(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetNextExecutionAt(v)
	return _u
}

// SetNillableNextExecutionAt sets the "next_execution_at" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableNextExecutionAt(v *time.Time) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetNextExecutionAt(*v)
	}
	return _u
}

// ClearNextExecutionAt clears the value of the "next_execution_at" field.
func (_u *AnnouncementUpdateOne) ClearNextExecutionAt() *AnnouncementUpdateOne {
	_u.mutation.ClearNextExecutionAt()
	return _u
}

// SetLastExecutionAt sets the "last_execution_at" field.
func (_u *AnnouncementUpdateOne) SetLastExecutionAt(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetLastExecutionAt(v)
	return _u
}

// SetNillableLastExecutionAt sets the "last_execution_at" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableLastExecutionAt(v *time.Time) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetLastExecutionAt(*v)
	}
	return _u
}

// ClearLastExecutionAt clears the value of the "last_execution_at" field.
func (_u *AnnouncementUpdateOne) ClearLastExecutionAt() *AnnouncementUpdateOne {
	_u.mutation.ClearLastExecutionAt()
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *AnnouncementUpdateOne) SetExecutionCount(v int) *AnnouncementUpdateOne {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableExecutionCount(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *AnnouncementUpdateOne) AddExecutionCount(v int) *AnnouncementUpdateOne {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetMaxExecutions sets the "max_executions" field.
func (_u *AnnouncementUpdateOne) SetMaxExecutions(v int) *AnnouncementUpdateOne {
	_u.mutation.ResetMaxExecutions()
	_u.mutation.SetMaxExecutions(v)
	return _u
}

// SetNillableMaxExecutions sets the "max_executions" field if the given value is not nil.
func (_u *AnnouncementUpdateOne) SetNillableMaxExecutions(v *int) *AnnouncementUpdateOne {
	if v != nil {
		_u.SetMaxExecutions(*v)
	}
	return _u
}

// AddMaxExecutions adds value to the "max_executions" field.
func (_u *AnnouncementUpdateOne) AddMaxExecutions(v int) *AnnouncementUpdateOne {
	_u.mutation.AddMaxExecutions(v)
	return _u
}

// ClearMaxExecutions clears the value of the "max_executions" field.
func (_u *AnnouncementUpdateOne) ClearMaxExecutions() *AnnouncementUpdateOne {
	_u.mutation.ClearMaxExecutions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnnouncementUpdateOne) SetUpdatedAt(v time.Time) *AnnouncementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the AnnouncementExecution entity by IDs.
func (_u *AnnouncementUpdateOne) AddExecutionIDs(ids ...string) *AnnouncementUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the AnnouncementExecution entity.
func (_u *AnnouncementUpdateOne) AddExecutions(v ...*AnnouncementExecution) *AnnouncementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the AnnouncementMutation object of the builder.
func (_u *AnnouncementUpdateOne) Mutation() *AnnouncementMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the AnnouncementExecution entity.
func (_u *AnnouncementUpdateOne) ClearExecutions() *AnnouncementUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to AnnouncementExecution entities by IDs.
func (_u *AnnouncementUpdateOne) RemoveExecutionIDs(ids ...string) *AnnouncementUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to AnnouncementExecution entities.
func (_u *AnnouncementUpdateOne) RemoveExecutions(v ...*AnnouncementExecution) *AnnouncementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the AnnouncementUpdate builder.
func (_u *AnnouncementUpdateOne) Where(ps ...predicate.Announcement) *AnnouncementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnouncementUpdateOne) Select(field string, fields ...string) *AnnouncementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Announcement entity.
func (_u *AnnouncementUpdateOne) Save(ctx context.Context) (*Announcement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementUpdateOne) SaveX(ctx context.Context) *Announcement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnouncementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnnouncementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := announcement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementUpdateOne) check() error {
	if v, ok := _u.mutation.MessageBody(); ok {
		if err := announcement.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "Announcement.message_body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := announcement.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Announcement.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := announcement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Announcement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequesterAccountID(); ok {
		if err := announcement.RequesterAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "requester_account_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.requester_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceRoomID(); ok {
		if err := announcement.SourceRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "source_room_id", err: fmt.Errorf(`ent: validator failed for field "Announcement.source_room_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementUpdateOne) sqlSave(ctx context.Context) (_node *Announcement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcement.Table, announcement.Columns, sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Announcement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, announcement.FieldID)
		for _, f := range fields {
			if !announcement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != announcement.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(announcement.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(announcement.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MessageBody(); ok {
		_spec.SetField(announcement.FieldMessageBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRoomID(); ok {
		_spec.SetField(announcement.FieldTargetRoomID, field.TypeString, value)
	}
	if _u.mutation.TargetRoomIDCleared() {
		_spec.ClearField(announcement.FieldTargetRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.CreateTasks(); ok {
		_spec.SetField(announcement.FieldCreateTasks, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskIncludeIds(); ok {
		_spec.SetField(announcement.FieldTaskIncludeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskIncludeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcement.FieldTaskIncludeIds, value)
		})
	}
	if _u.mutation.TaskIncludeIdsCleared() {
		_spec.ClearField(announcement.FieldTaskIncludeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskExcludeIds(); ok {
		_spec.SetField(announcement.FieldTaskExcludeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskExcludeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcement.FieldTaskExcludeIds, value)
		})
	}
	if _u.mutation.TaskExcludeIdsCleared() {
		_spec.ClearField(announcement.FieldTaskExcludeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(announcement.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(announcement.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(announcement.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(announcement.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(announcement.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(announcement.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipHoliday(); ok {
		_spec.SetField(announcement.FieldSkipHoliday, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipWeekend(); ok {
		_spec.SetField(announcement.FieldSkipWeekend, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskDeadline(); ok {
		_spec.SetField(announcement.FieldTaskDeadline, field.TypeTime, value)
	}
	if _u.mutation.TaskDeadlineCleared() {
		_spec.ClearField(announcement.FieldTaskDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequesterAccountID(); ok {
		_spec.SetField(announcement.FieldRequesterAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceRoomID(); ok {
		_spec.SetField(announcement.FieldSourceRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfirmationMessageID(); ok {
		_spec.SetField(announcement.FieldConfirmationMessageID, field.TypeString, value)
	}
	if _u.mutation.ConfirmationMessageIDCleared() {
		_spec.ClearField(announcement.FieldConfirmationMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.NextExecutionAt(); ok {
		_spec.SetField(announcement.FieldNextExecutionAt, field.TypeTime, value)
	}
	if _u.mutation.NextExecutionAtCleared() {
		_spec.ClearField(announcement.FieldNextExecutionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastExecutionAt(); ok {
		_spec.SetField(announcement.FieldLastExecutionAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutionAtCleared() {
		_spec.ClearField(announcement.FieldLastExecutionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(announcement.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(announcement.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxExecutions(); ok {
		_spec.SetField(announcement.FieldMaxExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutions(); ok {
		_spec.AddField(announcement.FieldMaxExecutions, field.TypeInt, value)
	}
	if _u.mutation.MaxExecutionsCleared() {
		_spec.ClearField(announcement.FieldMaxExecutions, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(announcement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Announcement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
