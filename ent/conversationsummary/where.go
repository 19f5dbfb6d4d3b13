// Code generated by ent, DO NOT EDIT.

package conversationsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldTenantID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldRoomID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldUserID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldSummary, v))
}

// TurnsCovered applies equality check predicate on the "turns_covered" field. It's identical to TurnsCoveredEQ.
func TurnsCovered(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldTurnsCovered, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContainsFold(FieldTenantID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContainsFold(FieldRoomID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContainsFold(FieldUserID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldContainsFold(FieldSummary, v))
}

// TurnsCoveredEQ applies the EQ predicate on the "turns_covered" field.
func TurnsCoveredEQ(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldTurnsCovered, v))
}

// TurnsCoveredNEQ applies the NEQ predicate on the "turns_covered" field.
func TurnsCoveredNEQ(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldTurnsCovered, v))
}

// TurnsCoveredIn applies the In predicate on the "turns_covered" field.
func TurnsCoveredIn(vs ...int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldTurnsCovered, vs...))
}

// TurnsCoveredNotIn applies the NotIn predicate on the "turns_covered" field.
func TurnsCoveredNotIn(vs ...int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldTurnsCovered, vs...))
}

// TurnsCoveredGT applies the GT predicate on the "turns_covered" field.
func TurnsCoveredGT(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldTurnsCovered, v))
}

// TurnsCoveredGTE applies the GTE predicate on the "turns_covered" field.
func TurnsCoveredGTE(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldTurnsCovered, v))
}

// TurnsCoveredLT applies the LT predicate on the "turns_covered" field.
func TurnsCoveredLT(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldTurnsCovered, v))
}

// TurnsCoveredLTE applies the LTE predicate on the "turns_covered" field.
func TurnsCoveredLTE(v int) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldTurnsCovered, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationSummary) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationSummary) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationSummary) predicate.ConversationSummary {
	return predicate.ConversationSummary(sql.NotPredicates(p))
}
