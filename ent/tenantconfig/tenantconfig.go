// Code generated by ent, DO NOT EDIT.

package tenantconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tenantconfig type in the database.
	Label = "tenant_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "config_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldOperatorAccountID holds the string denoting the operator_account_id field in the database.
	FieldOperatorAccountID = "operator_account_id"
	// FieldAdminRoomID holds the string denoting the admin_room_id field in the database.
	FieldAdminRoomID = "admin_room_id"
	// FieldAdminDmRoomID holds the string denoting the admin_dm_room_id field in the database.
	FieldAdminDmRoomID = "admin_dm_room_id"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldRoomMatchThreshold holds the string denoting the room_match_threshold field in the database.
	FieldRoomMatchThreshold = "room_match_threshold"
	// FieldWebhookSecret holds the string denoting the webhook_secret field in the database.
	FieldWebhookSecret = "webhook_secret"
	// FieldChatAPIToken holds the string denoting the chat_api_token field in the database.
	FieldChatAPIToken = "chat_api_token"
	// FieldMonetaryConfirmThreshold holds the string denoting the monetary_confirm_threshold field in the database.
	FieldMonetaryConfirmThreshold = "monetary_confirm_threshold"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenantconfig in the database.
	Table = "tenant_configs"
)

// Columns holds all SQL columns for tenantconfig fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldOperatorAccountID,
	FieldAdminRoomID,
	FieldAdminDmRoomID,
	FieldTimezone,
	FieldRoomMatchThreshold,
	FieldWebhookSecret,
	FieldChatAPIToken,
	FieldMonetaryConfirmThreshold,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// OperatorAccountIDValidator is a validator for the "operator_account_id" field. It is called by the builders before save.
	OperatorAccountIDValidator func(string) error
	// AdminRoomIDValidator is a validator for the "admin_room_id" field. It is called by the builders before save.
	AdminRoomIDValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultRoomMatchThreshold holds the default value on creation for the "room_match_threshold" field.
	DefaultRoomMatchThreshold float64
	// WebhookSecretValidator is a validator for the "webhook_secret" field. It is called by the builders before save.
	WebhookSecretValidator func(string) error
	// ChatAPITokenValidator is a validator for the "chat_api_token" field. It is called by the builders before save.
	ChatAPITokenValidator func(string) error
	// DefaultMonetaryConfirmThreshold holds the default value on creation for the "monetary_confirm_threshold" field.
	DefaultMonetaryConfirmThreshold float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TenantConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByOperatorAccountID orders the results by the operator_account_id field.
func ByOperatorAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatorAccountID, opts...).ToFunc()
}

// ByAdminRoomID orders the results by the admin_room_id field.
func ByAdminRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminRoomID, opts...).ToFunc()
}

// ByAdminDmRoomID orders the results by the admin_dm_room_id field.
func ByAdminDmRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminDmRoomID, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByRoomMatchThreshold orders the results by the room_match_threshold field.
func ByRoomMatchThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomMatchThreshold, opts...).ToFunc()
}

// ByWebhookSecret orders the results by the webhook_secret field.
func ByWebhookSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookSecret, opts...).ToFunc()
}

// ByChatAPIToken orders the results by the chat_api_token field.
func ByChatAPIToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatAPIToken, opts...).ToFunc()
}

// ByMonetaryConfirmThreshold orders the results by the monetary_confirm_threshold field.
func ByMonetaryConfirmThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonetaryConfirmThreshold, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
