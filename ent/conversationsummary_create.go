// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
)

// ConversationSummaryCreate is the builder for creating a ConversationSummary entity.
type ConversationSummaryCreate struct {
	config
	mutation *ConversationSummaryMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ConversationSummaryCreate) SetTenantID(v string) *ConversationSummaryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ConversationSummaryCreate) SetRoomID(v string) *ConversationSummaryCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationSummaryCreate) SetUserID(v string) *ConversationSummaryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ConversationSummaryCreate) SetSummary(v string) *ConversationSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetTurnsCovered sets the "turns_covered" field.
func (_c *ConversationSummaryCreate) SetTurnsCovered(v int) *ConversationSummaryCreate {
	_c.mutation.SetTurnsCovered(v)
	return _c
}

// SetNillableTurnsCovered sets the "turns_covered" field if the given value is not nil.
func (_c *ConversationSummaryCreate) SetNillableTurnsCovered(v *int) *ConversationSummaryCreate {
	if v != nil {
		_c.SetTurnsCovered(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationSummaryCreate) SetUpdatedAt(v time.Time) *ConversationSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationSummaryCreate) SetNillableUpdatedAt(v *time.Time) *ConversationSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationSummaryCreate) SetID(v string) *ConversationSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationSummaryMutation object of the builder.
func (_c *ConversationSummaryCreate) Mutation() *ConversationSummaryMutation {
	return _c.mutation
}

// Save creates the ConversationSummary in the database.
func (_c *ConversationSummaryCreate) Save(ctx context.Context) (*ConversationSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationSummaryCreate) SaveX(ctx context.Context) *ConversationSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationSummaryCreate) defaults() {
	if _, ok := _c.mutation.TurnsCovered(); !ok {
		v := conversationsummary.DefaultTurnsCovered
		_c.mutation.SetTurnsCovered(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversationsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationSummaryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ConversationSummary.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := conversationsummary.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "ConversationSummary.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := conversationsummary.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConversationSummary.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conversationsummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ConversationSummary.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := conversationsummary.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ConversationSummary.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnsCovered(); !ok {
		return &ValidationError{Name: "turns_covered", err: errors.New(`ent: missing required field "ConversationSummary.turns_covered"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversationSummary.updated_at"`)}
	}
	return nil
}

func (_c *ConversationSummaryCreate) sqlSave(ctx context.Context) (*ConversationSummary, error) {
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
			return nil, fmt.Errorf("unexpected ConversationSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationSummaryCreate) createSpec() (*ConversationSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationsummary.Table, sqlgraph.NewFieldSpec(conversationsummary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(conversationsummary.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(conversationsummary.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversationsummary.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(conversationsummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.TurnsCovered(); ok {
		_spec.SetField(conversationsummary.FieldTurnsCovered, field.TypeInt, value)
		_node.TurnsCovered = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConversationSummaryCreateBulk is the builder for creating many ConversationSummary entities in bulk.
type ConversationSummaryCreateBulk struct {
	config
	err      error
	builders []*ConversationSummaryCreate
}

// Save creates the ConversationSummary entities in the database.
func (_c *ConversationSummaryCreateBulk) Save(ctx context.Context) ([]*ConversationSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationSummaryMutation)
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
func (_c *ConversationSummaryCreateBulk) SaveX(ctx context.Context) []*ConversationSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
