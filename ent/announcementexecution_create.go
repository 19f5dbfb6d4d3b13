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

// AnnouncementExecutionCreate is the builder for creating a AnnouncementExecution entity.
type AnnouncementExecutionCreate struct {
	config
	mutation *AnnouncementExecutionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *AnnouncementExecutionCreate) SetTenantID(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAnnouncementID sets the "announcement_id" field.
func (_c *AnnouncementExecutionCreate) SetAnnouncementID(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetAnnouncementID(v)
	return _c
}

// SetExecutionNumber sets the "execution_number" field.
func (_c *AnnouncementExecutionCreate) SetExecutionNumber(v int) *AnnouncementExecutionCreate {
	_c.mutation.SetExecutionNumber(v)
	return _c
}

// SetMessageSent sets the "message_sent" field.
func (_c *AnnouncementExecutionCreate) SetMessageSent(v bool) *AnnouncementExecutionCreate {
	_c.mutation.SetMessageSent(v)
	return _c
}

// SetNillableMessageSent sets the "message_sent" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableMessageSent(v *bool) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetMessageSent(*v)
	}
	return _c
}

// SetSentMessageID sets the "sent_message_id" field.
func (_c *AnnouncementExecutionCreate) SetSentMessageID(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetSentMessageID(v)
	return _c
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableSentMessageID(v *string) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetSentMessageID(*v)
	}
	return _c
}

// SetTasksCreated sets the "tasks_created" field.
func (_c *AnnouncementExecutionCreate) SetTasksCreated(v int) *AnnouncementExecutionCreate {
	_c.mutation.SetTasksCreated(v)
	return _c
}

// SetNillableTasksCreated sets the "tasks_created" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableTasksCreated(v *int) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetTasksCreated(*v)
	}
	return _c
}

// SetTasksFailed sets the "tasks_failed" field.
func (_c *AnnouncementExecutionCreate) SetTasksFailed(v int) *AnnouncementExecutionCreate {
	_c.mutation.SetTasksFailed(v)
	return _c
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableTasksFailed(v *int) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetTasksFailed(*v)
	}
	return _c
}

// SetMembersSnapshot sets the "members_snapshot" field.
func (_c *AnnouncementExecutionCreate) SetMembersSnapshot(v []string) *AnnouncementExecutionCreate {
	_c.mutation.SetMembersSnapshot(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnnouncementExecutionCreate) SetStatus(v announcementexecution.Status) *AnnouncementExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableStatus(v *announcementexecution.Status) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *AnnouncementExecutionCreate) SetSkipReason(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableSkipReason(v *string) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnnouncementExecutionCreate) SetErrorMessage(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableErrorMessage(v *string) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnnouncementExecutionCreate) SetStartedAt(v time.Time) *AnnouncementExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableStartedAt(v *time.Time) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AnnouncementExecutionCreate) SetFinishedAt(v time.Time) *AnnouncementExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AnnouncementExecutionCreate) SetNillableFinishedAt(v *time.Time) *AnnouncementExecutionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnnouncementExecutionCreate) SetID(v string) *AnnouncementExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnnouncement sets the "announcement" edge to the Announcement entity.
func (_c *AnnouncementExecutionCreate) SetAnnouncement(v *Announcement) *AnnouncementExecutionCreate {
	return _c.SetAnnouncementID(v.ID)
}

// Mutation returns the AnnouncementExecutionMutation object of the builder.
func (_c *AnnouncementExecutionCreate) Mutation() *AnnouncementExecutionMutation {
	return _c.mutation
}

// Save creates the AnnouncementExecution in the database.
func (_c *AnnouncementExecutionCreate) Save(ctx context.Context) (*AnnouncementExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnnouncementExecutionCreate) SaveX(ctx context.Context) *AnnouncementExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnnouncementExecutionCreate) defaults() {
	if _, ok := _c.mutation.MessageSent(); !ok {
		v := announcementexecution.DefaultMessageSent
		_c.mutation.SetMessageSent(v)
	}
	if _, ok := _c.mutation.TasksCreated(); !ok {
		v := announcementexecution.DefaultTasksCreated
		_c.mutation.SetTasksCreated(v)
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		v := announcementexecution.DefaultTasksFailed
		_c.mutation.SetTasksFailed(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := announcementexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := announcementexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnnouncementExecutionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AnnouncementExecution.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := announcementexecution.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "AnnouncementExecution.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnnouncementID(); !ok {
		return &ValidationError{Name: "announcement_id", err: errors.New(`ent: missing required field "AnnouncementExecution.announcement_id"`)}
	}
	if v, ok := _c.mutation.AnnouncementID(); ok {
		if err := announcementexecution.AnnouncementIDValidator(v); err != nil {
			return &ValidationError{Name: "announcement_id", err: fmt.Errorf(`ent: validator failed for field "AnnouncementExecution.announcement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionNumber(); !ok {
		return &ValidationError{Name: "execution_number", err: errors.New(`ent: missing required field "AnnouncementExecution.execution_number"`)}
	}
	if _, ok := _c.mutation.MessageSent(); !ok {
		return &ValidationError{Name: "message_sent", err: errors.New(`ent: missing required field "AnnouncementExecution.message_sent"`)}
	}
	if _, ok := _c.mutation.TasksCreated(); !ok {
		return &ValidationError{Name: "tasks_created", err: errors.New(`ent: missing required field "AnnouncementExecution.tasks_created"`)}
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		return &ValidationError{Name: "tasks_failed", err: errors.New(`ent: missing required field "AnnouncementExecution.tasks_failed"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnnouncementExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := announcementexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AnnouncementExecution.started_at"`)}
	}
	if len(_c.mutation.AnnouncementIDs()) == 0 {
		return &ValidationError{Name: "announcement", err: errors.New(`ent: missing required edge "AnnouncementExecution.announcement"`)}
	}
	return nil
}

func (_c *AnnouncementExecutionCreate) sqlSave(ctx context.Context) (*AnnouncementExecution, error) {
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
			return nil, fmt.Errorf("unexpected AnnouncementExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnnouncementExecutionCreate) createSpec() (*AnnouncementExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &AnnouncementExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(announcementexecution.Table, sqlgraph.NewFieldSpec(announcementexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(announcementexecution.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ExecutionNumber(); ok {
		_spec.SetField(announcementexecution.FieldExecutionNumber, field.TypeInt, value)
		_node.ExecutionNumber = value
	}
	if value, ok := _c.mutation.MessageSent(); ok {
		_spec.SetField(announcementexecution.FieldMessageSent, field.TypeBool, value)
		_node.MessageSent = value
	}
	if value, ok := _c.mutation.SentMessageID(); ok {
		_spec.SetField(announcementexecution.FieldSentMessageID, field.TypeString, value)
		_node.SentMessageID = &value
	}
	if value, ok := _c.mutation.TasksCreated(); ok {
		_spec.SetField(announcementexecution.FieldTasksCreated, field.TypeInt, value)
		_node.TasksCreated = value
	}
	if value, ok := _c.mutation.TasksFailed(); ok {
		_spec.SetField(announcementexecution.FieldTasksFailed, field.TypeInt, value)
		_node.TasksFailed = value
	}
	if value, ok := _c.mutation.MembersSnapshot(); ok {
		_spec.SetField(announcementexecution.FieldMembersSnapshot, field.TypeJSON, value)
		_node.MembersSnapshot = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(announcementexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(announcementexecution.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(announcementexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(announcementexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(announcementexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.AnnouncementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   announcementexecution.AnnouncementTable,
			Columns: []string{announcementexecution.AnnouncementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(announcement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnnouncementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnnouncementExecutionCreateBulk is the builder for creating many AnnouncementExecution entities in bulk.
type AnnouncementExecutionCreateBulk struct {
	config
	err      error
	builders []*AnnouncementExecutionCreate
}

// Save creates the AnnouncementExecution entities in the database.
func (_c *AnnouncementExecutionCreateBulk) Save(ctx context.Context) ([]*AnnouncementExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnnouncementExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnnouncementExecutionMutation)
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
func (_c *AnnouncementExecutionCreateBulk) SaveX(ctx context.Context) []*AnnouncementExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
