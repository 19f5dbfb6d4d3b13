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
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// AnnouncementExecutionUpdate is the builder for updating AnnouncementExecution entities.
type AnnouncementExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AnnouncementExecutionMutation
}

// Where appends a list predicates to the AnnouncementExecutionUpdate builder.
func (_u *AnnouncementExecutionUpdate) Where(ps ...predicate.AnnouncementExecution) *AnnouncementExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageSent sets the "message_sent" field.
func (_u *AnnouncementExecutionUpdate) SetMessageSent(v bool) *AnnouncementExecutionUpdate {
	_u.mutation.SetMessageSent(v)
	return _u
}

// SetNillableMessageSent sets the "message_sent" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableMessageSent(v *bool) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetMessageSent(*v)
	}
	return _u
}

// SetSentMessageID sets the "sent_message_id" field.
func (_u *AnnouncementExecutionUpdate) SetSentMessageID(v string) *AnnouncementExecutionUpdate {
	_u.mutation.SetSentMessageID(v)
	return _u
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableSentMessageID(v *string) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetSentMessageID(*v)
	}
	return _u
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (_u *AnnouncementExecutionUpdate) ClearSentMessageID() *AnnouncementExecutionUpdate {
	_u.mutation.ClearSentMessageID()
	return _u
}

// SetTasksCreated sets the "tasks_created" field.
func (_u *AnnouncementExecutionUpdate) SetTasksCreated(v int) *AnnouncementExecutionUpdate {
	_u.mutation.ResetTasksCreated()
	_u.mutation.SetTasksCreated(v)
	return _u
}

// SetNillableTasksCreated sets the "tasks_created" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableTasksCreated(v *int) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetTasksCreated(*v)
	}
	return _u
}

// AddTasksCreated adds value to the "tasks_created" field.
func (_u *AnnouncementExecutionUpdate) AddTasksCreated(v int) *AnnouncementExecutionUpdate {
	_u.mutation.AddTasksCreated(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AnnouncementExecutionUpdate) SetTasksFailed(v int) *AnnouncementExecutionUpdate {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableTasksFailed(v *int) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AnnouncementExecutionUpdate) AddTasksFailed(v int) *AnnouncementExecutionUpdate {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetMembersSnapshot sets the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdate) SetMembersSnapshot(v []string) *AnnouncementExecutionUpdate {
	_u.mutation.SetMembersSnapshot(v)
	return _u
}

// AppendMembersSnapshot appends value to the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdate) AppendMembersSnapshot(v []string) *AnnouncementExecutionUpdate {
	_u.mutation.AppendMembersSnapshot(v)
	return _u
}

// ClearMembersSnapshot clears the value of the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdate) ClearMembersSnapshot() *AnnouncementExecutionUpdate {
	_u.mutation.ClearMembersSnapshot()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementExecutionUpdate) SetStatus(v announcementexecution.Status) *AnnouncementExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableStatus(v *announcementexecution.Status) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *AnnouncementExecutionUpdate) SetSkipReason(v string) *AnnouncementExecutionUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableSkipReason(v *string) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *AnnouncementExecutionUpdate) ClearSkipReason() *AnnouncementExecutionUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnnouncementExecutionUpdate) SetErrorMessage(v string) *AnnouncementExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableErrorMessage(v *string) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnnouncementExecutionUpdate) ClearErrorMessage() *AnnouncementExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnnouncementExecutionUpdate) SetStartedAt(v time.Time) *AnnouncementExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableStartedAt(v *time.Time) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnnouncementExecutionUpdate) SetFinishedAt(v time.Time) *AnnouncementExecutionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdate) SetNillableFinishedAt(v *time.Time) *AnnouncementExecutionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnnouncementExecutionUpdate) ClearFinishedAt() *AnnouncementExecutionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the AnnouncementExecutionMutation object of the builder.
func (_u *AnnouncementExecutionUpdate) Mutation() *AnnouncementExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnouncementExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnouncementExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := announcementexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AnnouncementCleared() && len(_u.mutation.AnnouncementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnnouncementExecution.announcement"`)
	}
	return nil
}

func (_u *AnnouncementExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementexecution.Table, announcementexecution.Columns, sqlgraph.NewFieldSpec(announcementexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageSent(); ok {
		_spec.SetField(announcementexecution.FieldMessageSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentMessageID(); ok {
		_spec.SetField(announcementexecution.FieldSentMessageID, field.TypeString, value)
	}
	if _u.mutation.SentMessageIDCleared() {
		_spec.ClearField(announcementexecution.FieldSentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCreated(); ok {
		_spec.SetField(announcementexecution.FieldTasksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCreated(); ok {
		_spec.AddField(announcementexecution.FieldTasksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(announcementexecution.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(announcementexecution.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MembersSnapshot(); ok {
		_spec.SetField(announcementexecution.FieldMembersSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembersSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcementexecution.FieldMembersSnapshot, value)
		})
	}
	if _u.mutation.MembersSnapshotCleared() {
		_spec.ClearField(announcementexecution.FieldMembersSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcementexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(announcementexecution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(announcementexecution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(announcementexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(announcementexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(announcementexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(announcementexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(announcementexecution.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcementexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnouncementExecutionUpdateOne is the builder for updating a single AnnouncementExecution entity.
type AnnouncementExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnouncementExecutionMutation
}

// SetMessageSent sets the "message_sent" field.
func (_u *AnnouncementExecutionUpdateOne) SetMessageSent(v bool) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetMessageSent(v)
	return _u
}

// SetNillableMessageSent sets the "message_sent" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableMessageSent(v *bool) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetMessageSent(*v)
	}
	return _u
}

// SetSentMessageID sets the "sent_message_id" field.
func (_u *AnnouncementExecutionUpdateOne) SetSentMessageID(v string) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetSentMessageID(v)
	return _u
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableSentMessageID(v *string) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetSentMessageID(*v)
	}
	return _u
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (_u *AnnouncementExecutionUpdateOne) ClearSentMessageID() *AnnouncementExecutionUpdateOne {
	_u.mutation.ClearSentMessageID()
	return _u
}

// SetTasksCreated sets the "tasks_created" field.
func (_u *AnnouncementExecutionUpdateOne) SetTasksCreated(v int) *AnnouncementExecutionUpdateOne {
	_u.mutation.ResetTasksCreated()
	_u.mutation.SetTasksCreated(v)
	return _u
}

// SetNillableTasksCreated sets the "tasks_created" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableTasksCreated(v *int) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetTasksCreated(*v)
	}
	return _u
}

// AddTasksCreated adds value to the "tasks_created" field.
func (_u *AnnouncementExecutionUpdateOne) AddTasksCreated(v int) *AnnouncementExecutionUpdateOne {
	_u.mutation.AddTasksCreated(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AnnouncementExecutionUpdateOne) SetTasksFailed(v int) *AnnouncementExecutionUpdateOne {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableTasksFailed(v *int) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AnnouncementExecutionUpdateOne) AddTasksFailed(v int) *AnnouncementExecutionUpdateOne {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetMembersSnapshot sets the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdateOne) SetMembersSnapshot(v []string) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetMembersSnapshot(v)
	return _u
}

// AppendMembersSnapshot appends value to the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdateOne) AppendMembersSnapshot(v []string) *AnnouncementExecutionUpdateOne {
	_u.mutation.AppendMembersSnapshot(v)
	return _u
}

// ClearMembersSnapshot clears the value of the "members_snapshot" field.
func (_u *AnnouncementExecutionUpdateOne) ClearMembersSnapshot() *AnnouncementExecutionUpdateOne {
	_u.mutation.ClearMembersSnapshot()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementExecutionUpdateOne) SetStatus(v announcementexecution.Status) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableStatus(v *announcementexecution.Status) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *AnnouncementExecutionUpdateOne) SetSkipReason(v string) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableSkipReason(v *string) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *AnnouncementExecutionUpdateOne) ClearSkipReason() *AnnouncementExecutionUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnnouncementExecutionUpdateOne) SetErrorMessage(v string) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableErrorMessage(v *string) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnnouncementExecutionUpdateOne) ClearErrorMessage() *AnnouncementExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnnouncementExecutionUpdateOne) SetStartedAt(v time.Time) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnnouncementExecutionUpdateOne) SetFinishedAt(v time.Time) *AnnouncementExecutionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnnouncementExecutionUpdateOne) SetNillableFinishedAt(v *time.Time) *AnnouncementExecutionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnnouncementExecutionUpdateOne) ClearFinishedAt() *AnnouncementExecutionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the AnnouncementExecutionMutation object of the builder.
func (_u *AnnouncementExecutionUpdateOne) Mutation() *AnnouncementExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnnouncementExecutionUpdate builder.
func (_u *AnnouncementExecutionUpdateOne) Where(ps ...predicate.AnnouncementExecution) *AnnouncementExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnouncementExecutionUpdateOne) Select(field string, fields ...string) *AnnouncementExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnnouncementExecution entity.
func (_u *AnnouncementExecutionUpdateOne) Save(ctx context.Context) (*AnnouncementExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementExecutionUpdateOne) SaveX(ctx context.Context) *AnnouncementExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnouncementExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := announcementexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AnnouncementCleared() && len(_u.mutation.AnnouncementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnnouncementExecution.announcement"`)
	}
	return nil
}

func (_u *AnnouncementExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AnnouncementExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementexecution.Table, announcementexecution.Columns, sqlgraph.NewFieldSpec(announcementexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnnouncementExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, announcementexecution.FieldID)
		for _, f := range fields {
			if !announcementexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != announcementexecution.FieldID {
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
	if value, ok := _u.mutation.MessageSent(); ok {
		_spec.SetField(announcementexecution.FieldMessageSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentMessageID(); ok {
		_spec.SetField(announcementexecution.FieldSentMessageID, field.TypeString, value)
	}
	if _u.mutation.SentMessageIDCleared() {
		_spec.ClearField(announcementexecution.FieldSentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCreated(); ok {
		_spec.SetField(announcementexecution.FieldTasksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCreated(); ok {
		_spec.AddField(announcementexecution.FieldTasksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(announcementexecution.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(announcementexecution.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MembersSnapshot(); ok {
		_spec.SetField(announcementexecution.FieldMembersSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembersSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcementexecution.FieldMembersSnapshot, value)
		})
	}
	if _u.mutation.MembersSnapshotCleared() {
		_spec.ClearField(announcementexecution.FieldMembersSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcementexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(announcementexecution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(announcementexecution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(announcementexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(announcementexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(announcementexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(announcementexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(announcementexecution.FieldFinishedAt, field.TypeTime)
	}
	_node = &AnnouncementExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcementexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
