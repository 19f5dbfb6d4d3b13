// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/tenantconfig"
)

// TenantConfig is the model entity for the TenantConfig schema.
type TenantConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// OperatorAccountID holds the value of the "operator_account_id" field.
	OperatorAccountID string `json:"operator_account_id,omitempty"`
	// AdminRoomID holds the value of the "admin_room_id" field.
	AdminRoomID string `json:"admin_room_id,omitempty"`
	// AdminDmRoomID holds the value of the "admin_dm_room_id" field.
	AdminDmRoomID string `json:"admin_dm_room_id,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Auto-pick threshold for announcement room resolution
	RoomMatchThreshold float64 `json:"room_match_threshold,omitempty"`
	// Base64 HMAC secret for inbound webhook signatures
	WebhookSecret string `json:"-"`
	// ChatAPIToken holds the value of the "chat_api_token" field.
	ChatAPIToken string `json:"-"`
	// Amounts at or above this always require confirmation
	MonetaryConfirmThreshold float64 `json:"monetary_confirm_threshold,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantconfig.FieldRoomMatchThreshold, tenantconfig.FieldMonetaryConfirmThreshold:
			values[i] = new(sql.NullFloat64)
		case tenantconfig.FieldID, tenantconfig.FieldTenantID, tenantconfig.FieldOperatorAccountID, tenantconfig.FieldAdminRoomID, tenantconfig.FieldAdminDmRoomID, tenantconfig.FieldTimezone, tenantconfig.FieldWebhookSecret, tenantconfig.FieldChatAPIToken:
			values[i] = new(sql.NullString)
		case tenantconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantConfig fields.
func (_m *TenantConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenantconfig.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case tenantconfig.FieldOperatorAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator_account_id", values[i])
			} else if value.Valid {
				_m.OperatorAccountID = value.String
			}
		case tenantconfig.FieldAdminRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_room_id", values[i])
			} else if value.Valid {
				_m.AdminRoomID = value.String
			}
		case tenantconfig.FieldAdminDmRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_dm_room_id", values[i])
			} else if value.Valid {
				_m.AdminDmRoomID = value.String
			}
		case tenantconfig.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case tenantconfig.FieldRoomMatchThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field room_match_threshold", values[i])
			} else if value.Valid {
				_m.RoomMatchThreshold = value.Float64
			}
		case tenantconfig.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = value.String
			}
		case tenantconfig.FieldChatAPIToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_api_token", values[i])
			} else if value.Valid {
				_m.ChatAPIToken = value.String
			}
		case tenantconfig.FieldMonetaryConfirmThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monetary_confirm_threshold", values[i])
			} else if value.Valid {
				_m.MonetaryConfirmThreshold = value.Float64
			}
		case tenantconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TenantConfig.
// This includes values selected through modifiers, order, etc.
func (_m *TenantConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TenantConfig.
// Note that you need to call TenantConfig.Unwrap() before calling this method if this TenantConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantConfig) Update() *TenantConfigUpdateOne {
	return NewTenantConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantConfig) Unwrap() *TenantConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantConfig) String() string {
	var builder strings.Builder
	builder.WriteString("TenantConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("operator_account_id=")
	builder.WriteString(_m.OperatorAccountID)
	builder.WriteString(", ")
	builder.WriteString("admin_room_id=")
	builder.WriteString(_m.AdminRoomID)
	builder.WriteString(", ")
	builder.WriteString("admin_dm_room_id=")
	builder.WriteString(_m.AdminDmRoomID)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("room_match_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoomMatchThreshold))
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("chat_api_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("monetary_confirm_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonetaryConfirmThreshold))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantConfigs is a parsable slice of TenantConfig.
type TenantConfigs []*TenantConfig
