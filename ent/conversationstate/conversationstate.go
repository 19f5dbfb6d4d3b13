// Code generated by ent, DO NOT EDIT.

package conversationstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conversationstate type in the database.
	Label = "conversation_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "state_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStateType holds the string denoting the state_type field in the database.
	FieldStateType = "state_type"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldReferenceType holds the string denoting the reference_type field in the database.
	FieldReferenceType = "reference_type"
	// FieldReferenceID holds the string denoting the reference_id field in the database.
	FieldReferenceID = "reference_id"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the conversationstate in the database.
	Table = "conversation_states"
)

// Columns holds all SQL columns for conversationstate fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldRoomID,
	FieldUserID,
	FieldStateType,
	FieldStep,
	FieldData,
	FieldReferenceType,
	FieldReferenceID,
	FieldExpiresAt,
	FieldCreatedAt,
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
	// RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	RoomIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// StateType defines the type for the "state_type" enum field.
type StateType string

// StateTypeNormal is the default value of the StateType enum.
const DefaultStateType = StateTypeNormal

// StateType values.
const (
	StateTypeNormal       StateType = "normal"
	StateTypeGoalSetting  StateType = "goal_setting"
	StateTypeAnnouncement StateType = "announcement"
	StateTypeConfirmation StateType = "confirmation"
	StateTypeTaskPending  StateType = "task_pending"
	StateTypeMultiAction  StateType = "multi_action"
)

func (st StateType) String() string {
	return string(st)
}

// StateTypeValidator is a validator for the "state_type" field enum values. It is called by the builders before save.
func StateTypeValidator(st StateType) error {
	switch st {
	case StateTypeNormal, StateTypeGoalSetting, StateTypeAnnouncement, StateTypeConfirmation, StateTypeTaskPending, StateTypeMultiAction:
		return nil
	default:
		return fmt.Errorf("conversationstate: invalid enum value for state_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the ConversationState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStateType orders the results by the state_type field.
func ByStateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateType, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByReferenceType orders the results by the reference_type field.
func ByReferenceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceType, opts...).ToFunc()
}

// ByReferenceID orders the results by the reference_id field.
func ByReferenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceID, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
