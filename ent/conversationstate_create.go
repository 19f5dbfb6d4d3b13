// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationstate"
)

// ConversationStateCreate is the builder for creating a ConversationState entity.
type ConversationStateCreate struct {
	config
	mutation *ConversationStateMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ConversationStateCreate) SetTenantID(v string) *ConversationStateCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ConversationStateCreate) SetRoomID(v string) *ConversationStateCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationStateCreate) SetUserID(v string) *ConversationStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStateType sets the "state_type" field.
func (_c *ConversationStateCreate) SetStateType(v conversationstate.StateType) *ConversationStateCreate {
	_c.mutation.SetStateType(v)
	return _c
}

// SetNillableStateType sets the "state_type" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableStateType(v *conversationstate.StateType) *ConversationStateCreate {
	if v != nil {
		_c.SetStateType(*v)
	}
	return _c
}

// SetStep sets the "step" field.
func (_c *ConversationStateCreate) SetStep(v string) *ConversationStateCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableStep(v *string) *ConversationStateCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ConversationStateCreate) SetData(v map[string]interface{}) *ConversationStateCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetReferenceType sets the "reference_type" field.
func (_c *ConversationStateCreate) SetReferenceType(v string) *ConversationStateCreate {
	_c.mutation.SetReferenceType(v)
	return _c
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableReferenceType(v *string) *ConversationStateCreate {
	if v != nil {
		_c.SetReferenceType(*v)
	}
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *ConversationStateCreate) SetReferenceID(v string) *ConversationStateCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableReferenceID(v *string) *ConversationStateCreate {
	if v != nil {
		_c.SetReferenceID(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ConversationStateCreate) SetExpiresAt(v time.Time) *ConversationStateCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationStateCreate) SetCreatedAt(v time.Time) *ConversationStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableCreatedAt(v *time.Time) *ConversationStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationStateCreate) SetUpdatedAt(v time.Time) *ConversationStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableUpdatedAt(v *time.Time) *ConversationStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationStateCreate) SetID(v string) *ConversationStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_c *ConversationStateCreate) Mutation() *ConversationStateMutation {
	return _c.mutation
}

// Save creates the ConversationState in the database.
func (_c *ConversationStateCreate) Save(ctx context.Context) (*ConversationState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationStateCreate) SaveX(ctx context.Context) *ConversationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationStateCreate) defaults() {
	if _, ok := _c.mutation.StateType(); !ok {
		v := conversationstate.DefaultStateType
		_c.mutation.SetStateType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversationstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationStateCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ConversationState.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := conversationstate.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ConversationState.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "ConversationState.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := conversationstate.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "ConversationState.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConversationState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conversationstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConversationState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateType(); !ok {
		return &ValidationError{Name: "state_type", err: errors.New(`ent: missing required field "ConversationState.state_type"`)}
	}
	if v, ok := _c.mutation.StateType(); ok {
		if err := conversationstate.StateTypeValidator(v); err != nil {
			return &ValidationError{Name: "state_type", err: fmt.Errorf(`ent: validator failed for field "ConversationState.state_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ConversationState.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversationState.updated_at"`)}
	}
	return nil
}

func (_c *ConversationStateCreate) sqlSave(ctx context.Context) (*ConversationState, error) {
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
			return nil, fmt.Errorf("unexpected ConversationState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationStateCreate) createSpec() (*ConversationState, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationstate.Table, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(conversationstate.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(conversationstate.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversationstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StateType(); ok {
		_spec.SetField(conversationstate.FieldStateType, field.TypeEnum, value)
		_node.StateType = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(conversationstate.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(conversationstate.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.ReferenceType(); ok {
		_spec.SetField(conversationstate.FieldReferenceType, field.TypeString, value)
		_node.ReferenceType = &value
	}
	if value, ok := _c.mutation.ReferenceID(); ok {
		_spec.SetField(conversationstate.FieldReferenceID, field.TypeString, value)
		_node.ReferenceID = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConversationStateCreateBulk is the builder for creating many ConversationState entities in bulk.
type ConversationStateCreateBulk struct {
	config
	err      error
	builders []*ConversationStateCreate
}

// Save creates the ConversationState entities in the database.
func (_c *ConversationStateCreateBulk) Save(ctx context.Context) ([]*ConversationState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationStateMutation)
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
func (_c *ConversationStateCreateBulk) SaveX(ctx context.Context) []*ConversationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
