// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
)

// TenantConfigCreate is the builder for creating a TenantConfig entity.
type TenantConfigCreate struct {
	config
	mutation *TenantConfigMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantConfigCreate) SetTenantID(v string) *TenantConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOperatorAccountID sets the "operator_account_id" field.
func (_c *TenantConfigCreate) SetOperatorAccountID(v string) *TenantConfigCreate {
	_c.mutation.SetOperatorAccountID(v)
	return _c
}

// SetAdminRoomID sets the "admin_room_id" field.
func (_c *TenantConfigCreate) SetAdminRoomID(v string) *TenantConfigCreate {
	_c.mutation.SetAdminRoomID(v)
	return _c
}

// SetAdminDmRoomID sets the "admin_dm_room_id" field.
func (_c *TenantConfigCreate) SetAdminDmRoomID(v string) *TenantConfigCreate {
	_c.mutation.SetAdminDmRoomID(v)
	return _c
}

// SetNillableAdminDmRoomID sets the "admin_dm_room_id" field if the given value is not nil.
func (_c *TenantConfigCreate) SetNillableAdminDmRoomID(v *string) *TenantConfigCreate {
	if v != nil {
		_c.SetAdminDmRoomID(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *TenantConfigCreate) SetTimezone(v string) *TenantConfigCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *TenantConfigCreate) SetNillableTimezone(v *string) *TenantConfigCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetRoomMatchThreshold sets the "room_match_threshold" field.
func (_c *TenantConfigCreate) SetRoomMatchThreshold(v float64) *TenantConfigCreate {
	_c.mutation.SetRoomMatchThreshold(v)
	return _c
}

// SetNillableRoomMatchThreshold sets the "room_match_threshold" field if the given value is not nil.
func (_c *TenantConfigCreate) SetNillableRoomMatchThreshold(v *float64) *TenantConfigCreate {
	if v != nil {
		_c.SetRoomMatchThreshold(*v)
	}
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *TenantConfigCreate) SetWebhookSecret(v string) *TenantConfigCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetChatAPIToken sets the "chat_api_token" field.
func (_c *TenantConfigCreate) SetChatAPIToken(v string) *TenantConfigCreate {
	_c.mutation.SetChatAPIToken(v)
	return _c
}

// SetMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field.
func (_c *TenantConfigCreate) SetMonetaryConfirmThreshold(v float64) *TenantConfigCreate {
	_c.mutation.SetMonetaryConfirmThreshold(v)
	return _c
}

// SetNillableMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field if the given value is not nil.
func (_c *TenantConfigCreate) SetNillableMonetaryConfirmThreshold(v *float64) *TenantConfigCreate {
	if v != nil {
		_c.SetMonetaryConfirmThreshold(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantConfigCreate) SetUpdatedAt(v time.Time) *TenantConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantConfigCreate) SetNillableUpdatedAt(v *time.Time) *TenantConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantConfigCreate) SetID(v string) *TenantConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TenantConfigMutation object of the builder.
func (_c *TenantConfigCreate) Mutation() *TenantConfigMutation {
	return _c.mutation
}

// Save creates the TenantConfig in the database.
func (_c *TenantConfigCreate) Save(ctx context.Context) (*TenantConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantConfigCreate) SaveX(ctx context.Context) *TenantConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantConfigCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := tenantconfig.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.RoomMatchThreshold(); !ok {
		v := tenantconfig.DefaultRoomMatchThreshold
		_c.mutation.SetRoomMatchThreshold(v)
	}
	if _, ok := _c.mutation.MonetaryConfirmThreshold(); !ok {
		v := tenantconfig.DefaultMonetaryConfirmThreshold
		_c.mutation.SetMonetaryConfirmThreshold(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantConfigCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantConfig.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := tenantconfig.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperatorAccountID(); !ok {
		return &ValidationError{Name: "operator_account_id", err: errors.New(`ent: missing required field "TenantConfig.operator_account_id"`)}
	}
	if v, ok := _c.mutation.OperatorAccountID(); ok {
		if err := tenantconfig.OperatorAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "operator_account_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.operator_account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdminRoomID(); !ok {
		return &ValidationError{Name: "admin_room_id", err: errors.New(`ent: missing required field "TenantConfig.admin_room_id"`)}
	}
	if v, ok := _c.mutation.AdminRoomID(); ok {
		if err := tenantconfig.AdminRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_room_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.admin_room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "TenantConfig.timezone"`)}
	}
	if _, ok := _c.mutation.RoomMatchThreshold(); !ok {
		return &ValidationError{Name: "room_match_threshold", err: errors.New(`ent: missing required field "TenantConfig.room_match_threshold"`)}
	}
	if _, ok := _c.mutation.WebhookSecret(); !ok {
		return &ValidationError{Name: "webhook_secret", err: errors.New(`ent: missing required field "TenantConfig.webhook_secret"`)}
	}
	if v, ok := _c.mutation.WebhookSecret(); ok {
		if err := tenantconfig.WebhookSecretValidator(v); err != nil {
			return &ValidationError{Name: "webhook_secret", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.webhook_secret": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChatAPIToken(); !ok {
		return &ValidationError{Name: "chat_api_token", err: errors.New(`ent: missing required field "TenantConfig.chat_api_token"`)}
	}
	if v, ok := _c.mutation.ChatAPIToken(); ok {
		if err := tenantconfig.ChatAPITokenValidator(v); err != nil {
			return &ValidationError{Name: "chat_api_token", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.chat_api_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonetaryConfirmThreshold(); !ok {
		return &ValidationError{Name: "monetary_confirm_threshold", err: errors.New(`ent: missing required field "TenantConfig.monetary_confirm_threshold"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantConfig.updated_at"`)}
	}
	return nil
}

func (_c *TenantConfigCreate) sqlSave(ctx context.Context) (*TenantConfig, error) {
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
			return nil, fmt.Errorf("unexpected TenantConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantConfigCreate) createSpec() (*TenantConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantconfig.Table, sqlgraph.NewFieldSpec(tenantconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(tenantconfig.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OperatorAccountID(); ok {
		_spec.SetField(tenantconfig.FieldOperatorAccountID, field.TypeString, value)
		_node.OperatorAccountID = value
	}
	if value, ok := _c.mutation.AdminRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminRoomID, field.TypeString, value)
		_node.AdminRoomID = value
	}
	if value, ok := _c.mutation.AdminDmRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminDmRoomID, field.TypeString, value)
		_node.AdminDmRoomID = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(tenantconfig.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.RoomMatchThreshold(); ok {
		_spec.SetField(tenantconfig.FieldRoomMatchThreshold, field.TypeFloat64, value)
		_node.RoomMatchThreshold = value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(tenantconfig.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = value
	}
	if value, ok := _c.mutation.ChatAPIToken(); ok {
		_spec.SetField(tenantconfig.FieldChatAPIToken, field.TypeString, value)
		_node.ChatAPIToken = value
	}
	if value, ok := _c.mutation.MonetaryConfirmThreshold(); ok {
		_spec.SetField(tenantconfig.FieldMonetaryConfirmThreshold, field.TypeFloat64, value)
		_node.MonetaryConfirmThreshold = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TenantConfigCreateBulk is the builder for creating many TenantConfig entities in bulk.
type TenantConfigCreateBulk struct {
	config
	err      error
	builders []*TenantConfigCreate
}

// Save creates the TenantConfig entities in the database.
func (_c *TenantConfigCreateBulk) Save(ctx context.Context) ([]*TenantConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantConfigMutation)
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
func (_c *TenantConfigCreateBulk) SaveX(ctx context.Context) []*TenantConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
