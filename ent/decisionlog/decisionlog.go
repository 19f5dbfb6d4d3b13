// Code generated by ent, DO NOT EDIT.

package decisionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionlog type in the database.
	Label = "decision_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldMessageExcerpt holds the string denoting the message_excerpt field in the database.
	FieldMessageExcerpt = "message_excerpt"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldCapabilityKey holds the string denoting the capability_key field in the database.
	FieldCapabilityKey = "capability_key"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldIntentConfidence holds the string denoting the intent_confidence field in the database.
	FieldIntentConfidence = "intent_confidence"
	// FieldParameterConfidence holds the string denoting the parameter_confidence field in the database.
	FieldParameterConfidence = "parameter_confidence"
	// FieldGuardrailAction holds the string denoting the guardrail_action field in the database.
	FieldGuardrailAction = "guardrail_action"
	// FieldPolicyReason holds the string denoting the policy_reason field in the database.
	FieldPolicyReason = "policy_reason"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldTimingsMs holds the string denoting the timings_ms field in the database.
	FieldTimingsMs = "timings_ms"
	// FieldConfirmationNeeded holds the string denoting the confirmation_needed field in the database.
	FieldConfirmationNeeded = "confirmation_needed"
	// FieldConfirmationQuestion holds the string denoting the confirmation_question field in the database.
	FieldConfirmationQuestion = "confirmation_question"
	// FieldConfirmationResolution holds the string denoting the confirmation_resolution field in the database.
	FieldConfirmationResolution = "confirmation_resolution"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the decisionlog in the database.
	Table = "decision_logs"
)

// Columns holds all SQL columns for decisionlog fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldUserID,
	FieldRoomID,
	FieldMessageExcerpt,
	FieldIntent,
	FieldCapabilityKey,
	FieldParameters,
	FieldConfidence,
	FieldIntentConfidence,
	FieldParameterConfidence,
	FieldGuardrailAction,
	FieldPolicyReason,
	FieldSuccess,
	FieldErrorCode,
	FieldTokensIn,
	FieldTokensOut,
	FieldModelID,
	FieldTimingsMs,
	FieldConfirmationNeeded,
	FieldConfirmationQuestion,
	FieldConfirmationResolution,
	FieldWarnings,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	RoomIDValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultIntentConfidence holds the default value on creation for the "intent_confidence" field.
	DefaultIntentConfidence float64
	// DefaultParameterConfidence holds the default value on creation for the "parameter_confidence" field.
	DefaultParameterConfidence float64
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultConfirmationNeeded holds the default value on creation for the "confirmation_needed" field.
	DefaultConfirmationNeeded bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DecisionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByMessageExcerpt orders the results by the message_excerpt field.
func ByMessageExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageExcerpt, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByCapabilityKey orders the results by the capability_key field.
func ByCapabilityKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapabilityKey, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByIntentConfidence orders the results by the intent_confidence field.
func ByIntentConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentConfidence, opts...).ToFunc()
}

// ByParameterConfidence orders the results by the parameter_confidence field.
func ByParameterConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameterConfidence, opts...).ToFunc()
}

// ByGuardrailAction orders the results by the guardrail_action field.
func ByGuardrailAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardrailAction, opts...).ToFunc()
}

// ByPolicyReason orders the results by the policy_reason field.
func ByPolicyReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyReason, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByConfirmationNeeded orders the results by the confirmation_needed field.
func ByConfirmationNeeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationNeeded, opts...).ToFunc()
}

// ByConfirmationQuestion orders the results by the confirmation_question field.
func ByConfirmationQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationQuestion, opts...).ToFunc()
}

// ByConfirmationResolution orders the results by the confirmation_resolution field.
func ByConfirmationResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationResolution, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
