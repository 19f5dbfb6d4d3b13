// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationturn"
)

// ConversationTurnCreate is the builder for creating a ConversationTurn entity.
type ConversationTurnCreate struct {
	config
	mutation *ConversationTurnMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ConversationTurnCreate) SetTenantID(v string) *ConversationTurnCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ConversationTurnCreate) SetRoomID(v string) *ConversationTurnCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationTurnCreate) SetUserID(v string) *ConversationTurnCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ConversationTurnCreate) SetRole(v conversationturn.Role) *ConversationTurnCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ConversationTurnCreate) SetContent(v string) *ConversationTurnCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSummarized sets the "summarized" field.
func (_c *ConversationTurnCreate) SetSummarized(v bool) *ConversationTurnCreate {
	_c.mutation.SetSummarized(v)
	return _c
}

// SetNillableSummarized sets the "summarized" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableSummarized(v *bool) *ConversationTurnCreate {
	if v != nil {
		_c.SetSummarized(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationTurnCreate) SetCreatedAt(v time.Time) *ConversationTurnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableCreatedAt(v *time.Time) *ConversationTurnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationTurnCreate) SetID(v string) *ConversationTurnCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_c *ConversationTurnCreate) Mutation() *ConversationTurnMutation {
	return _c.mutation
}

// Save creates the ConversationTurn in the database.
func (_c *ConversationTurnCreate) Save(ctx context.Context) (*ConversationTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationTurnCreate) SaveX(ctx context.Context) *ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationTurnCreate) defaults() {
	if _, ok := _c.mutation.Summarized(); !ok {
		v := conversationturn.DefaultSummarized
		_c.mutation.SetSummarized(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationturn.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationTurnCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ConversationTurn.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := conversationturn.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "ConversationTurn.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := conversationturn.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConversationTurn.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conversationturn.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ConversationTurn.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := conversationturn.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ConversationTurn.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := conversationturn.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summarized(); !ok {
		return &ValidationError{Name: "summarized", err: errors.New(`ent: missing required field "ConversationTurn.summarized"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationTurn.created_at"`)}
	}
	return nil
}

func (_c *ConversationTurnCreate) sqlSave(ctx context.Context) (*ConversationTurn, error) {
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
			return nil, fmt.Errorf("unexpected ConversationTurn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationTurnCreate) createSpec() (*ConversationTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationturn.Table, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(conversationturn.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(conversationturn.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversationturn.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(conversationturn.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(conversationturn.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summarized(); ok {
		_spec.SetField(conversationturn.FieldSummarized, field.TypeBool, value)
		_node.Summarized = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationturn.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ConversationTurnCreateBulk is the builder for creating many ConversationTurn entities in bulk.
type ConversationTurnCreateBulk struct {
	config
	err      error
	builders []*ConversationTurnCreate
}

// Save creates the ConversationTurn entities in the database.
func (_c *ConversationTurnCreateBulk) Save(ctx context.Context) ([]*ConversationTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationTurnMutation)
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
func (_c *ConversationTurnCreateBulk) SaveX(ctx context.Context) []*ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
