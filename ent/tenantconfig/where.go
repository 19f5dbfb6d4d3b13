// Code generated by ent, DO NOT EDIT.

package tenantconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldTenantID, v))
}

// OperatorAccountID applies equality check predicate on the "operator_account_id" field. It's identical to OperatorAccountIDEQ.
func OperatorAccountID(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldOperatorAccountID, v))
}

// AdminRoomID applies equality check predicate on the "admin_room_id" field. It's identical to AdminRoomIDEQ.
func AdminRoomID(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldAdminRoomID, v))
}

// AdminDmRoomID applies equality check predicate on the "admin_dm_room_id" field. It's identical to AdminDmRoomIDEQ.
func AdminDmRoomID(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldAdminDmRoomID, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldTimezone, v))
}

// RoomMatchThreshold applies equality check predicate on the "room_match_threshold" field. It's identical to RoomMatchThresholdEQ.
func RoomMatchThreshold(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldRoomMatchThreshold, v))
}

// WebhookSecret applies equality check predicate on the "webhook_secret" field. It's identical to WebhookSecretEQ.
func WebhookSecret(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldWebhookSecret, v))
}

// ChatAPIToken applies equality check predicate on the "chat_api_token" field. It's identical to ChatAPITokenEQ.
func ChatAPIToken(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldChatAPIToken, v))
}

// MonetaryConfirmThreshold applies equality check predicate on the "monetary_confirm_threshold" field. It's identical to MonetaryConfirmThresholdEQ.
func MonetaryConfirmThreshold(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldMonetaryConfirmThreshold, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldTenantID, v))
}

// OperatorAccountIDEQ applies the EQ predicate on the "operator_account_id" field.
func OperatorAccountIDEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldOperatorAccountID, v))
}

// OperatorAccountIDNEQ applies the NEQ predicate on the "operator_account_id" field.
func OperatorAccountIDNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldOperatorAccountID, v))
}

// OperatorAccountIDIn applies the In predicate on the "operator_account_id" field.
func OperatorAccountIDIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldOperatorAccountID, vs...))
}

// OperatorAccountIDNotIn applies the NotIn predicate on the "operator_account_id" field.
func OperatorAccountIDNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldOperatorAccountID, vs...))
}

// OperatorAccountIDGT applies the GT predicate on the "operator_account_id" field.
func OperatorAccountIDGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldOperatorAccountID, v))
}

// OperatorAccountIDGTE applies the GTE predicate on the "operator_account_id" field.
func OperatorAccountIDGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldOperatorAccountID, v))
}

// OperatorAccountIDLT applies the LT predicate on the "operator_account_id" field.
func OperatorAccountIDLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldOperatorAccountID, v))
}

// OperatorAccountIDLTE applies the LTE predicate on the "operator_account_id" field.
func OperatorAccountIDLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldOperatorAccountID, v))
}

// OperatorAccountIDContains applies the Contains predicate on the "operator_account_id" field.
func OperatorAccountIDContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldOperatorAccountID, v))
}

// OperatorAccountIDHasPrefix applies the HasPrefix predicate on the "operator_account_id" field.
func OperatorAccountIDHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldOperatorAccountID, v))
}

// OperatorAccountIDHasSuffix applies the HasSuffix predicate on the "operator_account_id" field.
func OperatorAccountIDHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldOperatorAccountID, v))
}

// OperatorAccountIDEqualFold applies the EqualFold predicate on the "operator_account_id" field.
func OperatorAccountIDEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldOperatorAccountID, v))
}

// OperatorAccountIDContainsFold applies the ContainsFold predicate on the "operator_account_id" field.
func OperatorAccountIDContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldOperatorAccountID, v))
}

// AdminRoomIDEQ applies the EQ predicate on the "admin_room_id" field.
func AdminRoomIDEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldAdminRoomID, v))
}

// AdminRoomIDNEQ applies the NEQ predicate on the "admin_room_id" field.
func AdminRoomIDNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldAdminRoomID, v))
}

// AdminRoomIDIn applies the In predicate on the "admin_room_id" field.
func AdminRoomIDIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldAdminRoomID, vs...))
}

// AdminRoomIDNotIn applies the NotIn predicate on the "admin_room_id" field.
func AdminRoomIDNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldAdminRoomID, vs...))
}

// AdminRoomIDGT applies the GT predicate on the "admin_room_id" field.
func AdminRoomIDGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldAdminRoomID, v))
}

// AdminRoomIDGTE applies the GTE predicate on the "admin_room_id" field.
func AdminRoomIDGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldAdminRoomID, v))
}

// AdminRoomIDLT applies the LT predicate on the "admin_room_id" field.
func AdminRoomIDLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldAdminRoomID, v))
}

// AdminRoomIDLTE applies the LTE predicate on the "admin_room_id" field.
func AdminRoomIDLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldAdminRoomID, v))
}

// AdminRoomIDContains applies the Contains predicate on the "admin_room_id" field.
func AdminRoomIDContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldAdminRoomID, v))
}

// AdminRoomIDHasPrefix applies the HasPrefix predicate on the "admin_room_id" field.
func AdminRoomIDHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldAdminRoomID, v))
}

// AdminRoomIDHasSuffix applies the HasSuffix predicate on the "admin_room_id" field.
func AdminRoomIDHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldAdminRoomID, v))
}

// AdminRoomIDEqualFold applies the EqualFold predicate on the "admin_room_id" field.
func AdminRoomIDEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldAdminRoomID, v))
}

// AdminRoomIDContainsFold applies the ContainsFold predicate on the "admin_room_id" field.
func AdminRoomIDContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldAdminRoomID, v))
}

// AdminDmRoomIDEQ applies the EQ predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDNEQ applies the NEQ predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDIn applies the In predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldAdminDmRoomID, vs...))
}

// AdminDmRoomIDNotIn applies the NotIn predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldAdminDmRoomID, vs...))
}

// AdminDmRoomIDGT applies the GT predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDGTE applies the GTE predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDLT applies the LT predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDLTE applies the LTE predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDContains applies the Contains predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDHasPrefix applies the HasPrefix predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDHasSuffix applies the HasSuffix predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDIsNil applies the IsNil predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDIsNil() predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIsNull(FieldAdminDmRoomID))
}

// AdminDmRoomIDNotNil applies the NotNil predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDNotNil() predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotNull(FieldAdminDmRoomID))
}

// AdminDmRoomIDEqualFold applies the EqualFold predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldAdminDmRoomID, v))
}

// AdminDmRoomIDContainsFold applies the ContainsFold predicate on the "admin_dm_room_id" field.
func AdminDmRoomIDContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldAdminDmRoomID, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldTimezone, v))
}

// RoomMatchThresholdEQ applies the EQ predicate on the "room_match_threshold" field.
func RoomMatchThresholdEQ(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldRoomMatchThreshold, v))
}

// RoomMatchThresholdNEQ applies the NEQ predicate on the "room_match_threshold" field.
func RoomMatchThresholdNEQ(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldRoomMatchThreshold, v))
}

// RoomMatchThresholdIn applies the In predicate on the "room_match_threshold" field.
func RoomMatchThresholdIn(vs ...float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldRoomMatchThreshold, vs...))
}

// RoomMatchThresholdNotIn applies the NotIn predicate on the "room_match_threshold" field.
func RoomMatchThresholdNotIn(vs ...float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldRoomMatchThreshold, vs...))
}

// RoomMatchThresholdGT applies the GT predicate on the "room_match_threshold" field.
func RoomMatchThresholdGT(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldRoomMatchThreshold, v))
}

// RoomMatchThresholdGTE applies the GTE predicate on the "room_match_threshold" field.
func RoomMatchThresholdGTE(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldRoomMatchThreshold, v))
}

// RoomMatchThresholdLT applies the LT predicate on the "room_match_threshold" field.
func RoomMatchThresholdLT(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldRoomMatchThreshold, v))
}

// RoomMatchThresholdLTE applies the LTE predicate on the "room_match_threshold" field.
func RoomMatchThresholdLTE(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldRoomMatchThreshold, v))
}

// WebhookSecretEQ applies the EQ predicate on the "webhook_secret" field.
func WebhookSecretEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookSecretNEQ applies the NEQ predicate on the "webhook_secret" field.
func WebhookSecretNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldWebhookSecret, v))
}

// WebhookSecretIn applies the In predicate on the "webhook_secret" field.
func WebhookSecretIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldWebhookSecret, vs...))
}

// WebhookSecretNotIn applies the NotIn predicate on the "webhook_secret" field.
func WebhookSecretNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldWebhookSecret, vs...))
}

// WebhookSecretGT applies the GT predicate on the "webhook_secret" field.
func WebhookSecretGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldWebhookSecret, v))
}

// WebhookSecretGTE applies the GTE predicate on the "webhook_secret" field.
func WebhookSecretGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldWebhookSecret, v))
}

// WebhookSecretLT applies the LT predicate on the "webhook_secret" field.
func WebhookSecretLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldWebhookSecret, v))
}

// WebhookSecretLTE applies the LTE predicate on the "webhook_secret" field.
func WebhookSecretLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldWebhookSecret, v))
}

// WebhookSecretContains applies the Contains predicate on the "webhook_secret" field.
func WebhookSecretContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldWebhookSecret, v))
}

// WebhookSecretHasPrefix applies the HasPrefix predicate on the "webhook_secret" field.
func WebhookSecretHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldWebhookSecret, v))
}

// WebhookSecretHasSuffix applies the HasSuffix predicate on the "webhook_secret" field.
func WebhookSecretHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldWebhookSecret, v))
}

// WebhookSecretEqualFold applies the EqualFold predicate on the "webhook_secret" field.
func WebhookSecretEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldWebhookSecret, v))
}

// WebhookSecretContainsFold applies the ContainsFold predicate on the "webhook_secret" field.
func WebhookSecretContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldWebhookSecret, v))
}

// ChatAPITokenEQ applies the EQ predicate on the "chat_api_token" field.
func ChatAPITokenEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldChatAPIToken, v))
}

// ChatAPITokenNEQ applies the NEQ predicate on the "chat_api_token" field.
func ChatAPITokenNEQ(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldChatAPIToken, v))
}

// ChatAPITokenIn applies the In predicate on the "chat_api_token" field.
func ChatAPITokenIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldChatAPIToken, vs...))
}

// ChatAPITokenNotIn applies the NotIn predicate on the "chat_api_token" field.
func ChatAPITokenNotIn(vs ...string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldChatAPIToken, vs...))
}

// ChatAPITokenGT applies the GT predicate on the "chat_api_token" field.
func ChatAPITokenGT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldChatAPIToken, v))
}

// ChatAPITokenGTE applies the GTE predicate on the "chat_api_token" field.
func ChatAPITokenGTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldChatAPIToken, v))
}

// ChatAPITokenLT applies the LT predicate on the "chat_api_token" field.
func ChatAPITokenLT(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldChatAPIToken, v))
}

// ChatAPITokenLTE applies the LTE predicate on the "chat_api_token" field.
func ChatAPITokenLTE(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldChatAPIToken, v))
}

// ChatAPITokenContains applies the Contains predicate on the "chat_api_token" field.
func ChatAPITokenContains(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContains(FieldChatAPIToken, v))
}

// ChatAPITokenHasPrefix applies the HasPrefix predicate on the "chat_api_token" field.
func ChatAPITokenHasPrefix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasPrefix(FieldChatAPIToken, v))
}

// ChatAPITokenHasSuffix applies the HasSuffix predicate on the "chat_api_token" field.
func ChatAPITokenHasSuffix(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldHasSuffix(FieldChatAPIToken, v))
}

// ChatAPITokenEqualFold applies the EqualFold predicate on the "chat_api_token" field.
func ChatAPITokenEqualFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEqualFold(FieldChatAPIToken, v))
}

// ChatAPITokenContainsFold applies the ContainsFold predicate on the "chat_api_token" field.
func ChatAPITokenContainsFold(v string) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldContainsFold(FieldChatAPIToken, v))
}

// MonetaryConfirmThresholdEQ applies the EQ predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdEQ(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldMonetaryConfirmThreshold, v))
}

// MonetaryConfirmThresholdNEQ applies the NEQ predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdNEQ(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldMonetaryConfirmThreshold, v))
}

// MonetaryConfirmThresholdIn applies the In predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdIn(vs ...float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldMonetaryConfirmThreshold, vs...))
}

// MonetaryConfirmThresholdNotIn applies the NotIn predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdNotIn(vs ...float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldMonetaryConfirmThreshold, vs...))
}

// MonetaryConfirmThresholdGT applies the GT predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdGT(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldMonetaryConfirmThreshold, v))
}

// MonetaryConfirmThresholdGTE applies the GTE predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdGTE(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldMonetaryConfirmThreshold, v))
}

// MonetaryConfirmThresholdLT applies the LT predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdLT(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldMonetaryConfirmThreshold, v))
}

// MonetaryConfirmThresholdLTE applies the LTE predicate on the "monetary_confirm_threshold" field.
func MonetaryConfirmThresholdLTE(v float64) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldMonetaryConfirmThreshold, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantConfig {
	return predicate.TenantConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantConfig) predicate.TenantConfig {
	return predicate.TenantConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantConfig) predicate.TenantConfig {
	return predicate.TenantConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantConfig) predicate.TenantConfig {
	return predicate.TenantConfig(sql.NotPredicates(p))
}
