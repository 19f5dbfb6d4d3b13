// Code generated by ent, DO NOT EDIT.

package decisionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTenantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldUserID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldRoomID, v))
}

// MessageExcerpt applies equality check predicate on the "message_excerpt" field. It's identical to MessageExcerptEQ.
func MessageExcerpt(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldMessageExcerpt, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldIntent, v))
}

// CapabilityKey applies equality check predicate on the "capability_key" field. It's identical to CapabilityKeyEQ.
func CapabilityKey(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldCapabilityKey, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfidence, v))
}

// IntentConfidence applies equality check predicate on the "intent_confidence" field. It's identical to IntentConfidenceEQ.
func IntentConfidence(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldIntentConfidence, v))
}

// ParameterConfidence applies equality check predicate on the "parameter_confidence" field. It's identical to ParameterConfidenceEQ.
func ParameterConfidence(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldParameterConfidence, v))
}

// GuardrailAction applies equality check predicate on the "guardrail_action" field. It's identical to GuardrailActionEQ.
func GuardrailAction(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldGuardrailAction, v))
}

// PolicyReason applies equality check predicate on the "policy_reason" field. It's identical to PolicyReasonEQ.
func PolicyReason(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldPolicyReason, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldSuccess, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldErrorCode, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTokensOut, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldModelID, v))
}

// ConfirmationNeeded applies equality check predicate on the "confirmation_needed" field. It's identical to ConfirmationNeededEQ.
func ConfirmationNeeded(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationNeeded, v))
}

// ConfirmationQuestion applies equality check predicate on the "confirmation_question" field. It's identical to ConfirmationQuestionEQ.
func ConfirmationQuestion(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationQuestion, v))
}

// ConfirmationResolution applies equality check predicate on the "confirmation_resolution" field. It's identical to ConfirmationResolutionEQ.
func ConfirmationResolution(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationResolution, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldTenantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldUserID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldRoomID, v))
}

// MessageExcerptEQ applies the EQ predicate on the "message_excerpt" field.
func MessageExcerptEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldMessageExcerpt, v))
}

// MessageExcerptNEQ applies the NEQ predicate on the "message_excerpt" field.
func MessageExcerptNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldMessageExcerpt, v))
}

// MessageExcerptIn applies the In predicate on the "message_excerpt" field.
func MessageExcerptIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldMessageExcerpt, vs...))
}

// MessageExcerptNotIn applies the NotIn predicate on the "message_excerpt" field.
func MessageExcerptNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldMessageExcerpt, vs...))
}

// MessageExcerptGT applies the GT predicate on the "message_excerpt" field.
func MessageExcerptGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldMessageExcerpt, v))
}

// MessageExcerptGTE applies the GTE predicate on the "message_excerpt" field.
func MessageExcerptGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldMessageExcerpt, v))
}

// MessageExcerptLT applies the LT predicate on the "message_excerpt" field.
func MessageExcerptLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldMessageExcerpt, v))
}

// MessageExcerptLTE applies the LTE predicate on the "message_excerpt" field.
func MessageExcerptLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldMessageExcerpt, v))
}

// MessageExcerptContains applies the Contains predicate on the "message_excerpt" field.
func MessageExcerptContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldMessageExcerpt, v))
}

// MessageExcerptHasPrefix applies the HasPrefix predicate on the "message_excerpt" field.
func MessageExcerptHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldMessageExcerpt, v))
}

// MessageExcerptHasSuffix applies the HasSuffix predicate on the "message_excerpt" field.
func MessageExcerptHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldMessageExcerpt, v))
}

// MessageExcerptEqualFold applies the EqualFold predicate on the "message_excerpt" field.
func MessageExcerptEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldMessageExcerpt, v))
}

// MessageExcerptContainsFold applies the ContainsFold predicate on the "message_excerpt" field.
func MessageExcerptContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldMessageExcerpt, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldIntent, v))
}

// CapabilityKeyEQ applies the EQ predicate on the "capability_key" field.
func CapabilityKeyEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldCapabilityKey, v))
}

// CapabilityKeyNEQ applies the NEQ predicate on the "capability_key" field.
func CapabilityKeyNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldCapabilityKey, v))
}

// CapabilityKeyIn applies the In predicate on the "capability_key" field.
func CapabilityKeyIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldCapabilityKey, vs...))
}

// CapabilityKeyNotIn applies the NotIn predicate on the "capability_key" field.
func CapabilityKeyNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldCapabilityKey, vs...))
}

// CapabilityKeyGT applies the GT predicate on the "capability_key" field.
func CapabilityKeyGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldCapabilityKey, v))
}

// CapabilityKeyGTE applies the GTE predicate on the "capability_key" field.
func CapabilityKeyGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldCapabilityKey, v))
}

// CapabilityKeyLT applies the LT predicate on the "capability_key" field.
func CapabilityKeyLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldCapabilityKey, v))
}

// CapabilityKeyLTE applies the LTE predicate on the "capability_key" field.
func CapabilityKeyLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldCapabilityKey, v))
}

// CapabilityKeyContains applies the Contains predicate on the "capability_key" field.
func CapabilityKeyContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldCapabilityKey, v))
}

// CapabilityKeyHasPrefix applies the HasPrefix predicate on the "capability_key" field.
func CapabilityKeyHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldCapabilityKey, v))
}

// CapabilityKeyHasSuffix applies the HasSuffix predicate on the "capability_key" field.
func CapabilityKeyHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldCapabilityKey, v))
}

// CapabilityKeyIsNil applies the IsNil predicate on the "capability_key" field.
func CapabilityKeyIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldCapabilityKey))
}

// CapabilityKeyNotNil applies the NotNil predicate on the "capability_key" field.
func CapabilityKeyNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldCapabilityKey))
}

// CapabilityKeyEqualFold applies the EqualFold predicate on the "capability_key" field.
func CapabilityKeyEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldCapabilityKey, v))
}

// CapabilityKeyContainsFold applies the ContainsFold predicate on the "capability_key" field.
func CapabilityKeyContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldCapabilityKey, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldParameters))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldConfidence, v))
}

// IntentConfidenceEQ applies the EQ predicate on the "intent_confidence" field.
func IntentConfidenceEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldIntentConfidence, v))
}

// IntentConfidenceNEQ applies the NEQ predicate on the "intent_confidence" field.
func IntentConfidenceNEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldIntentConfidence, v))
}

// IntentConfidenceIn applies the In predicate on the "intent_confidence" field.
func IntentConfidenceIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceNotIn applies the NotIn predicate on the "intent_confidence" field.
func IntentConfidenceNotIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceGT applies the GT predicate on the "intent_confidence" field.
func IntentConfidenceGT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldIntentConfidence, v))
}

// IntentConfidenceGTE applies the GTE predicate on the "intent_confidence" field.
func IntentConfidenceGTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldIntentConfidence, v))
}

// IntentConfidenceLT applies the LT predicate on the "intent_confidence" field.
func IntentConfidenceLT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldIntentConfidence, v))
}

// IntentConfidenceLTE applies the LTE predicate on the "intent_confidence" field.
func IntentConfidenceLTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldIntentConfidence, v))
}

// ParameterConfidenceEQ applies the EQ predicate on the "parameter_confidence" field.
func ParameterConfidenceEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldParameterConfidence, v))
}

// ParameterConfidenceNEQ applies the NEQ predicate on the "parameter_confidence" field.
func ParameterConfidenceNEQ(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldParameterConfidence, v))
}

// ParameterConfidenceIn applies the In predicate on the "parameter_confidence" field.
func ParameterConfidenceIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldParameterConfidence, vs...))
}

// ParameterConfidenceNotIn applies the NotIn predicate on the "parameter_confidence" field.
func ParameterConfidenceNotIn(vs ...float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldParameterConfidence, vs...))
}

// ParameterConfidenceGT applies the GT predicate on the "parameter_confidence" field.
func ParameterConfidenceGT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldParameterConfidence, v))
}

// ParameterConfidenceGTE applies the GTE predicate on the "parameter_confidence" field.
func ParameterConfidenceGTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldParameterConfidence, v))
}

// ParameterConfidenceLT applies the LT predicate on the "parameter_confidence" field.
func ParameterConfidenceLT(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldParameterConfidence, v))
}

// ParameterConfidenceLTE applies the LTE predicate on the "parameter_confidence" field.
func ParameterConfidenceLTE(v float64) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldParameterConfidence, v))
}

// GuardrailActionEQ applies the EQ predicate on the "guardrail_action" field.
func GuardrailActionEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldGuardrailAction, v))
}

// GuardrailActionNEQ applies the NEQ predicate on the "guardrail_action" field.
func GuardrailActionNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldGuardrailAction, v))
}

// GuardrailActionIn applies the In predicate on the "guardrail_action" field.
func GuardrailActionIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldGuardrailAction, vs...))
}

// GuardrailActionNotIn applies the NotIn predicate on the "guardrail_action" field.
func GuardrailActionNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldGuardrailAction, vs...))
}

// GuardrailActionGT applies the GT predicate on the "guardrail_action" field.
func GuardrailActionGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldGuardrailAction, v))
}

// GuardrailActionGTE applies the GTE predicate on the "guardrail_action" field.
func GuardrailActionGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldGuardrailAction, v))
}

// GuardrailActionLT applies the LT predicate on the "guardrail_action" field.
func GuardrailActionLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldGuardrailAction, v))
}

// GuardrailActionLTE applies the LTE predicate on the "guardrail_action" field.
func GuardrailActionLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldGuardrailAction, v))
}

// GuardrailActionContains applies the Contains predicate on the "guardrail_action" field.
func GuardrailActionContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldGuardrailAction, v))
}

// GuardrailActionHasPrefix applies the HasPrefix predicate on the "guardrail_action" field.
func GuardrailActionHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldGuardrailAction, v))
}

// GuardrailActionHasSuffix applies the HasSuffix predicate on the "guardrail_action" field.
func GuardrailActionHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldGuardrailAction, v))
}

// GuardrailActionIsNil applies the IsNil predicate on the "guardrail_action" field.
func GuardrailActionIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldGuardrailAction))
}

// GuardrailActionNotNil applies the NotNil predicate on the "guardrail_action" field.
func GuardrailActionNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldGuardrailAction))
}

// GuardrailActionEqualFold applies the EqualFold predicate on the "guardrail_action" field.
func GuardrailActionEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldGuardrailAction, v))
}

// GuardrailActionContainsFold applies the ContainsFold predicate on the "guardrail_action" field.
func GuardrailActionContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldGuardrailAction, v))
}

// PolicyReasonEQ applies the EQ predicate on the "policy_reason" field.
func PolicyReasonEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldPolicyReason, v))
}

// PolicyReasonNEQ applies the NEQ predicate on the "policy_reason" field.
func PolicyReasonNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldPolicyReason, v))
}

// PolicyReasonIn applies the In predicate on the "policy_reason" field.
func PolicyReasonIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldPolicyReason, vs...))
}

// PolicyReasonNotIn applies the NotIn predicate on the "policy_reason" field.
func PolicyReasonNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldPolicyReason, vs...))
}

// PolicyReasonGT applies the GT predicate on the "policy_reason" field.
func PolicyReasonGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldPolicyReason, v))
}

// PolicyReasonGTE applies the GTE predicate on the "policy_reason" field.
func PolicyReasonGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldPolicyReason, v))
}

// PolicyReasonLT applies the LT predicate on the "policy_reason" field.
func PolicyReasonLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldPolicyReason, v))
}

// PolicyReasonLTE applies the LTE predicate on the "policy_reason" field.
func PolicyReasonLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldPolicyReason, v))
}

// PolicyReasonContains applies the Contains predicate on the "policy_reason" field.
func PolicyReasonContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldPolicyReason, v))
}

// PolicyReasonHasPrefix applies the HasPrefix predicate on the "policy_reason" field.
func PolicyReasonHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldPolicyReason, v))
}

// PolicyReasonHasSuffix applies the HasSuffix predicate on the "policy_reason" field.
func PolicyReasonHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldPolicyReason, v))
}

// PolicyReasonIsNil applies the IsNil predicate on the "policy_reason" field.
func PolicyReasonIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldPolicyReason))
}

// PolicyReasonNotNil applies the NotNil predicate on the "policy_reason" field.
func PolicyReasonNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldPolicyReason))
}

// PolicyReasonEqualFold applies the EqualFold predicate on the "policy_reason" field.
func PolicyReasonEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldPolicyReason, v))
}

// PolicyReasonContainsFold applies the ContainsFold predicate on the "policy_reason" field.
func PolicyReasonContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldPolicyReason, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldErrorCode, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldTokensOut, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldModelID, v))
}

// TimingsMsIsNil applies the IsNil predicate on the "timings_ms" field.
func TimingsMsIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldTimingsMs))
}

// TimingsMsNotNil applies the NotNil predicate on the "timings_ms" field.
func TimingsMsNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldTimingsMs))
}

// ConfirmationNeededEQ applies the EQ predicate on the "confirmation_needed" field.
func ConfirmationNeededEQ(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationNeeded, v))
}

// ConfirmationNeededNEQ applies the NEQ predicate on the "confirmation_needed" field.
func ConfirmationNeededNEQ(v bool) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldConfirmationNeeded, v))
}

// ConfirmationQuestionEQ applies the EQ predicate on the "confirmation_question" field.
func ConfirmationQuestionEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionNEQ applies the NEQ predicate on the "confirmation_question" field.
func ConfirmationQuestionNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionIn applies the In predicate on the "confirmation_question" field.
func ConfirmationQuestionIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldConfirmationQuestion, vs...))
}

// ConfirmationQuestionNotIn applies the NotIn predicate on the "confirmation_question" field.
func ConfirmationQuestionNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldConfirmationQuestion, vs...))
}

// ConfirmationQuestionGT applies the GT predicate on the "confirmation_question" field.
func ConfirmationQuestionGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionGTE applies the GTE predicate on the "confirmation_question" field.
func ConfirmationQuestionGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionLT applies the LT predicate on the "confirmation_question" field.
func ConfirmationQuestionLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionLTE applies the LTE predicate on the "confirmation_question" field.
func ConfirmationQuestionLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionContains applies the Contains predicate on the "confirmation_question" field.
func ConfirmationQuestionContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionHasPrefix applies the HasPrefix predicate on the "confirmation_question" field.
func ConfirmationQuestionHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionHasSuffix applies the HasSuffix predicate on the "confirmation_question" field.
func ConfirmationQuestionHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionIsNil applies the IsNil predicate on the "confirmation_question" field.
func ConfirmationQuestionIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldConfirmationQuestion))
}

// ConfirmationQuestionNotNil applies the NotNil predicate on the "confirmation_question" field.
func ConfirmationQuestionNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldConfirmationQuestion))
}

// ConfirmationQuestionEqualFold applies the EqualFold predicate on the "confirmation_question" field.
func ConfirmationQuestionEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldConfirmationQuestion, v))
}

// ConfirmationQuestionContainsFold applies the ContainsFold predicate on the "confirmation_question" field.
func ConfirmationQuestionContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldConfirmationQuestion, v))
}

// ConfirmationResolutionEQ applies the EQ predicate on the "confirmation_resolution" field.
func ConfirmationResolutionEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldConfirmationResolution, v))
}

// ConfirmationResolutionNEQ applies the NEQ predicate on the "confirmation_resolution" field.
func ConfirmationResolutionNEQ(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldConfirmationResolution, v))
}

// ConfirmationResolutionIn applies the In predicate on the "confirmation_resolution" field.
func ConfirmationResolutionIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldConfirmationResolution, vs...))
}

// ConfirmationResolutionNotIn applies the NotIn predicate on the "confirmation_resolution" field.
func ConfirmationResolutionNotIn(vs ...string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldConfirmationResolution, vs...))
}

// ConfirmationResolutionGT applies the GT predicate on the "confirmation_resolution" field.
func ConfirmationResolutionGT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldConfirmationResolution, v))
}

// ConfirmationResolutionGTE applies the GTE predicate on the "confirmation_resolution" field.
func ConfirmationResolutionGTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldConfirmationResolution, v))
}

// ConfirmationResolutionLT applies the LT predicate on the "confirmation_resolution" field.
func ConfirmationResolutionLT(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldConfirmationResolution, v))
}

// ConfirmationResolutionLTE applies the LTE predicate on the "confirmation_resolution" field.
func ConfirmationResolutionLTE(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldConfirmationResolution, v))
}

// ConfirmationResolutionContains applies the Contains predicate on the "confirmation_resolution" field.
func ConfirmationResolutionContains(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContains(FieldConfirmationResolution, v))
}

// ConfirmationResolutionHasPrefix applies the HasPrefix predicate on the "confirmation_resolution" field.
func ConfirmationResolutionHasPrefix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasPrefix(FieldConfirmationResolution, v))
}

// ConfirmationResolutionHasSuffix applies the HasSuffix predicate on the "confirmation_resolution" field.
func ConfirmationResolutionHasSuffix(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldHasSuffix(FieldConfirmationResolution, v))
}

// ConfirmationResolutionIsNil applies the IsNil predicate on the "confirmation_resolution" field.
func ConfirmationResolutionIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldConfirmationResolution))
}

// ConfirmationResolutionNotNil applies the NotNil predicate on the "confirmation_resolution" field.
func ConfirmationResolutionNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldConfirmationResolution))
}

// ConfirmationResolutionEqualFold applies the EqualFold predicate on the "confirmation_resolution" field.
func ConfirmationResolutionEqualFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEqualFold(FieldConfirmationResolution, v))
}

// ConfirmationResolutionContainsFold applies the ContainsFold predicate on the "confirmation_resolution" field.
func ConfirmationResolutionContainsFold(v string) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldContainsFold(FieldConfirmationResolution, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DecisionLog {
	return predicate.DecisionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionLog) predicate.DecisionLog {
	return predicate.DecisionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionLog) predicate.DecisionLog {
	return predicate.DecisionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionLog) predicate.DecisionLog {
	return predicate.DecisionLog(sql.NotPredicates(p))
}
