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
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
)

// TenantConfigUpdate is the builder for updating TenantConfig entities.
type TenantConfigUpdate struct {
	config
	hooks    []Hook
	mutation *TenantConfigMutation
}

// Where appends a list predicates to the TenantConfigUpdate builder.
func (_u *TenantConfigUpdate) Where(ps ...predicate.TenantConfig) *TenantConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperatorAccountID sets the "operator_account_id" field.
func (_u *TenantConfigUpdate) SetOperatorAccountID(v string) *TenantConfigUpdate {
	_u.mutation.SetOperatorAccountID(v)
	return _u
}

// SetNillableOperatorAccountID sets the "operator_account_id" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableOperatorAccountID(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetOperatorAccountID(*v)
	}
	return _u
}

// SetAdminRoomID sets the "admin_room_id" field.
func (_u *TenantConfigUpdate) SetAdminRoomID(v string) *TenantConfigUpdate {
	_u.mutation.SetAdminRoomID(v)
	return _u
}

// SetNillableAdminRoomID sets the "admin_room_id" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableAdminRoomID(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetAdminRoomID(*v)
	}
	return _u
}

// SetAdminDmRoomID sets the "admin_dm_room_id" field.
func (_u *TenantConfigUpdate) SetAdminDmRoomID(v string) *TenantConfigUpdate {
	_u.mutation.SetAdminDmRoomID(v)
	return _u
}

// SetNillableAdminDmRoomID sets the "admin_dm_room_id" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableAdminDmRoomID(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetAdminDmRoomID(*v)
	}
	return _u
}

// ClearAdminDmRoomID clears the value of the "admin_dm_room_id" field.
func (_u *TenantConfigUpdate) ClearAdminDmRoomID() *TenantConfigUpdate {
	_u.mutation.ClearAdminDmRoomID()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *TenantConfigUpdate) SetTimezone(v string) *TenantConfigUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableTimezone(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetRoomMatchThreshold sets the "room_match_threshold" field.
func (_u *TenantConfigUpdate) SetRoomMatchThreshold(v float64) *TenantConfigUpdate {
	_u.mutation.ResetRoomMatchThreshold()
	_u.mutation.SetRoomMatchThreshold(v)
	return _u
}

// SetNillableRoomMatchThreshold sets the "room_match_threshold" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableRoomMatchThreshold(v *float64) *TenantConfigUpdate {
	if v != nil {
		_u.SetRoomMatchThreshold(*v)
	}
	return _u
}

// AddRoomMatchThreshold adds value to the "room_match_threshold" field.
func (_u *TenantConfigUpdate) AddRoomMatchThreshold(v float64) *TenantConfigUpdate {
	_u.mutation.AddRoomMatchThreshold(v)
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *TenantConfigUpdate) SetWebhookSecret(v string) *TenantConfigUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableWebhookSecret(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetChatAPIToken sets the "chat_api_token" field.
func (_u *TenantConfigUpdate) SetChatAPIToken(v string) *TenantConfigUpdate {
	_u.mutation.SetChatAPIToken(v)
	return _u
}

// SetNillableChatAPIToken sets the "chat_api_token" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableChatAPIToken(v *string) *TenantConfigUpdate {
	if v != nil {
		_u.SetChatAPIToken(*v)
	}
	return _u
}

// SetMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field.
func (_u *TenantConfigUpdate) SetMonetaryConfirmThreshold(v float64) *TenantConfigUpdate {
	_u.mutation.ResetMonetaryConfirmThreshold()
	_u.mutation.SetMonetaryConfirmThreshold(v)
	return _u
}

// SetNillableMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field if the given value is not nil.
func (_u *TenantConfigUpdate) SetNillableMonetaryConfirmThreshold(v *float64) *TenantConfigUpdate {
	if v != nil {
		_u.SetMonetaryConfirmThreshold(*v)
	}
	return _u
}

// AddMonetaryConfirmThreshold adds value to the "monetary_confirm_threshold" field.
func (_u *TenantConfigUpdate) AddMonetaryConfirmThreshold(v float64) *TenantConfigUpdate {
	_u.mutation.AddMonetaryConfirmThreshold(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantConfigUpdate) SetUpdatedAt(v time.Time) *TenantConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantConfigMutation object of the builder.
func (_u *TenantConfigUpdate) Mutation() *TenantConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantConfigUpdate) check() error {
	if v, ok := _u.mutation.OperatorAccountID(); ok {
		if err := tenantconfig.OperatorAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "operator_account_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.operator_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdminRoomID(); ok {
		if err := tenantconfig.AdminRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_room_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.admin_room_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebhookSecret(); ok {
		if err := tenantconfig.WebhookSecretValidator(v); err != nil {
			return &ValidationError{Name: "webhook_secret", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.webhook_secret": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChatAPIToken(); ok {
		if err := tenantconfig.ChatAPITokenValidator(v); err != nil {
			return &ValidationError{Name: "chat_api_token", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.chat_api_token": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantconfig.Table, tenantconfig.Columns, sqlgraph.NewFieldSpec(tenantconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OperatorAccountID(); ok {
		_spec.SetField(tenantconfig.FieldOperatorAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminDmRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminDmRoomID, field.TypeString, value)
	}
	if _u.mutation.AdminDmRoomIDCleared() {
		_spec.ClearField(tenantconfig.FieldAdminDmRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(tenantconfig.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomMatchThreshold(); ok {
		_spec.SetField(tenantconfig.FieldRoomMatchThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRoomMatchThreshold(); ok {
		_spec.AddField(tenantconfig.FieldRoomMatchThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(tenantconfig.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatAPIToken(); ok {
		_spec.SetField(tenantconfig.FieldChatAPIToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonetaryConfirmThreshold(); ok {
		_spec.SetField(tenantconfig.FieldMonetaryConfirmThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonetaryConfirmThreshold(); ok {
		_spec.AddField(tenantconfig.FieldMonetaryConfirmThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantConfigUpdateOne is the builder for updating a single TenantConfig entity.
type TenantConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantConfigMutation
}

// SetOperatorAccountID sets the "operator_account_id" field.
func (_u *TenantConfigUpdateOne) SetOperatorAccountID(v string) *TenantConfigUpdateOne {
	_u.mutation.SetOperatorAccountID(v)
	return _u
}

// SetNillableOperatorAccountID sets the "operator_account_id" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableOperatorAccountID(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetOperatorAccountID(*v)
	}
	return _u
}

// SetAdminRoomID sets the "admin_room_id" field.
func (_u *TenantConfigUpdateOne) SetAdminRoomID(v string) *TenantConfigUpdateOne {
	_u.mutation.SetAdminRoomID(v)
	return _u
}

// SetNillableAdminRoomID sets the "admin_room_id" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableAdminRoomID(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetAdminRoomID(*v)
	}
	return _u
}

// SetAdminDmRoomID sets the "admin_dm_room_id" field.
func (_u *TenantConfigUpdateOne) SetAdminDmRoomID(v string) *TenantConfigUpdateOne {
	_u.mutation.SetAdminDmRoomID(v)
	return _u
}

// SetNillableAdminDmRoomID sets the "admin_dm_room_id" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableAdminDmRoomID(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetAdminDmRoomID(*v)
	}
	return _u
}

// ClearAdminDmRoomID clears the value of the "admin_dm_room_id" field.
func (_u *TenantConfigUpdateOne) ClearAdminDmRoomID() *TenantConfigUpdateOne {
	_u.mutation.ClearAdminDmRoomID()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *TenantConfigUpdateOne) SetTimezone(v string) *TenantConfigUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableTimezone(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetRoomMatchThreshold sets the "room_match_threshold" field.
func (_u *TenantConfigUpdateOne) SetRoomMatchThreshold(v float64) *TenantConfigUpdateOne {
	_u.mutation.ResetRoomMatchThreshold()
	_u.mutation.SetRoomMatchThreshold(v)
	return _u
}

// SetNillableRoomMatchThreshold sets the "room_match_threshold" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableRoomMatchThreshold(v *float64) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetRoomMatchThreshold(*v)
	}
	return _u
}

// AddRoomMatchThreshold adds value to the "room_match_threshold" field.
func (_u *TenantConfigUpdateOne) AddRoomMatchThreshold(v float64) *TenantConfigUpdateOne {
	_u.mutation.AddRoomMatchThreshold(v)
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *TenantConfigUpdateOne) SetWebhookSecret(v string) *TenantConfigUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableWebhookSecret(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetChatAPIToken sets the "chat_api_token" field.
func (_u *TenantConfigUpdateOne) SetChatAPIToken(v string) *TenantConfigUpdateOne {
	_u.mutation.SetChatAPIToken(v)
	return _u
}

// SetNillableChatAPIToken sets the "chat_api_token" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableChatAPIToken(v *string) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetChatAPIToken(*v)
	}
	return _u
}

// SetMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field.
func (_u *TenantConfigUpdateOne) SetMonetaryConfirmThreshold(v float64) *TenantConfigUpdateOne {
	_u.mutation.ResetMonetaryConfirmThreshold()
	_u.mutation.SetMonetaryConfirmThreshold(v)
	return _u
}

// SetNillableMonetaryConfirmThreshold sets the "monetary_confirm_threshold" field if the given value is not nil.
func (_u *TenantConfigUpdateOne) SetNillableMonetaryConfirmThreshold(v *float64) *TenantConfigUpdateOne {
	if v != nil {
		_u.SetMonetaryConfirmThreshold(*v)
	}
	return _u
}

// AddMonetaryConfirmThreshold adds value to the "monetary_confirm_threshold" field.
func (_u *TenantConfigUpdateOne) AddMonetaryConfirmThreshold(v float64) *TenantConfigUpdateOne {
	_u.mutation.AddMonetaryConfirmThreshold(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantConfigUpdateOne) SetUpdatedAt(v time.Time) *TenantConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantConfigMutation object of the builder.
func (_u *TenantConfigUpdateOne) Mutation() *TenantConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantConfigUpdate builder.
func (_u *TenantConfigUpdateOne) Where(ps ...predicate.TenantConfig) *TenantConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantConfigUpdateOne) Select(field string, fields ...string) *TenantConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantConfig entity.
func (_u *TenantConfigUpdateOne) Save(ctx context.Context) (*TenantConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantConfigUpdateOne) SaveX(ctx context.Context) *TenantConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantConfigUpdateOne) check() error {
	if v, ok := _u.mutation.OperatorAccountID(); ok {
		if err := tenantconfig.OperatorAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "operator_account_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.operator_account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdminRoomID(); ok {
		if err := tenantconfig.AdminRoomIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_room_id", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.admin_room_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebhookSecret(); ok {
		if err := tenantconfig.WebhookSecretValidator(v); err != nil {
			return &ValidationError{Name: "webhook_secret", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.webhook_secret": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChatAPIToken(); ok {
		if err := tenantconfig.ChatAPITokenValidator(v); err != nil {
			return &ValidationError{Name: "chat_api_token", err: fmt.Errorf(`ent: validator failed for field "TenantConfig.chat_api_token": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantConfigUpdateOne) sqlSave(ctx context.Context) (_node *TenantConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantconfig.Table, tenantconfig.Columns, sqlgraph.NewFieldSpec(tenantconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantconfig.FieldID)
		for _, f := range fields {
			if !tenantconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantconfig.FieldID {
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
	if value, ok := _u.mutation.OperatorAccountID(); ok {
		_spec.SetField(tenantconfig.FieldOperatorAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminDmRoomID(); ok {
		_spec.SetField(tenantconfig.FieldAdminDmRoomID, field.TypeString, value)
	}
	if _u.mutation.AdminDmRoomIDCleared() {
		_spec.ClearField(tenantconfig.FieldAdminDmRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(tenantconfig.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomMatchThreshold(); ok {
		_spec.SetField(tenantconfig.FieldRoomMatchThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRoomMatchThreshold(); ok {
		_spec.AddField(tenantconfig.FieldRoomMatchThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(tenantconfig.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatAPIToken(); ok {
		_spec.SetField(tenantconfig.FieldChatAPIToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonetaryConfirmThreshold(); ok {
		_spec.SetField(tenantconfig.FieldMonetaryConfirmThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonetaryConfirmThreshold(); ok {
		_spec.AddField(tenantconfig.FieldMonetaryConfirmThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
