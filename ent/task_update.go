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
	"github.com/wisehub-ai/wisehub/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatTaskID sets the "chat_task_id" field.
func (_u *TaskUpdate) SetChatTaskID(v string) *TaskUpdate {
	_u.mutation.SetChatTaskID(v)
	return _u
}

// SetNillableChatTaskID sets the "chat_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableChatTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetChatTaskID(*v)
	}
	return _u
}

// ClearChatTaskID clears the value of the "chat_task_id" field.
func (_u *TaskUpdate) ClearChatTaskID() *TaskUpdate {
	_u.mutation.ClearChatTaskID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TaskUpdate) SetRoomID(v string) *TaskUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRoomID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (_u *TaskUpdate) SetAssigneeUserID(v string) *TaskUpdate {
	_u.mutation.SetAssigneeUserID(v)
	return _u
}

// SetNillableAssigneeUserID sets the "assignee_user_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssigneeUserID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssigneeUserID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TaskUpdate) SetBody(v string) *TaskUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBody(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdate) SetDeadline(v time.Time) *TaskUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeadline(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdate) ClearDeadline() *TaskUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.RoomID(); ok {
		if err := task.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "Task.room_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeUserID(); ok {
		if err := task.AssigneeUserIDValidator(v); err != nil {
			return &ValidationError{Name: "assignee_user_id", err: fmt.Errorf(`ent: validator failed for field "Task.assignee_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := task.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Task.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatTaskID(); ok {
		_spec.SetField(task.FieldChatTaskID, field.TypeString, value)
	}
	if _u.mutation.ChatTaskIDCleared() {
		_spec.ClearField(task.FieldChatTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(task.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeUserID(); ok {
		_spec.SetField(task.FieldAssigneeUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(task.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetChatTaskID sets the "chat_task_id" field.
func (_u *TaskUpdateOne) SetChatTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetChatTaskID(v)
	return _u
}

// SetNillableChatTaskID sets the "chat_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableChatTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetChatTaskID(*v)
	}
	return _u
}

// ClearChatTaskID clears the value of the "chat_task_id" field.
func (_u *TaskUpdateOne) ClearChatTaskID() *TaskUpdateOne {
	_u.mutation.ClearChatTaskID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TaskUpdateOne) SetRoomID(v string) *TaskUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRoomID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (_u *TaskUpdateOne) SetAssigneeUserID(v string) *TaskUpdateOne {
	_u.mutation.SetAssigneeUserID(v)
	return _u
}

// SetNillableAssigneeUserID sets the "assignee_user_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssigneeUserID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssigneeUserID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TaskUpdateOne) SetBody(v string) *TaskUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBody(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdateOne) SetDeadline(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeadline(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdateOne) ClearDeadline() *TaskUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.RoomID(); ok {
		if err := task.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "Task.room_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeUserID(); ok {
		if err := task.AssigneeUserIDValidator(v); err != nil {
			return &ValidationError{Name: "assignee_user_id", err: fmt.Errorf(`ent: validator failed for field "Task.assignee_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := task.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Task.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.ChatTaskID(); ok {
		_spec.SetField(task.FieldChatTaskID, field.TypeString, value)
	}
	if _u.mutation.ChatTaskIDCleared() {
		_spec.ClearField(task.FieldChatTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(task.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeUserID(); ok {
		_spec.SetField(task.FieldAssigneeUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(task.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
