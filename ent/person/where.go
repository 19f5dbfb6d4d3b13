// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldName, v))
}

// Kana applies equality check predicate on the "kana" field. It's identical to KanaEQ.
func Kana(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldKana, v))
}

// Relation applies equality check predicate on the "relation" field. It's identical to RelationEQ.
func Relation(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldRelation, v))
}

// ChatAccountID applies equality check predicate on the "chat_account_id" field. It's identical to ChatAccountIDEQ.
func ChatAccountID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldChatAccountID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNotes, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldName, v))
}

// KanaEQ applies the EQ predicate on the "kana" field.
func KanaEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldKana, v))
}

// KanaNEQ applies the NEQ predicate on the "kana" field.
func KanaNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldKana, v))
}

// KanaIn applies the In predicate on the "kana" field.
func KanaIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldKana, vs...))
}

// KanaNotIn applies the NotIn predicate on the "kana" field.
func KanaNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldKana, vs...))
}

// KanaGT applies the GT predicate on the "kana" field.
func KanaGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldKana, v))
}

// KanaGTE applies the GTE predicate on the "kana" field.
func KanaGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldKana, v))
}

// KanaLT applies the LT predicate on the "kana" field.
func KanaLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldKana, v))
}

// KanaLTE applies the LTE predicate on the "kana" field.
func KanaLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldKana, v))
}

// KanaContains applies the Contains predicate on the "kana" field.
func KanaContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldKana, v))
}

// KanaHasPrefix applies the HasPrefix predicate on the "kana" field.
func KanaHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldKana, v))
}

// KanaHasSuffix applies the HasSuffix predicate on the "kana" field.
func KanaHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldKana, v))
}

// KanaIsNil applies the IsNil predicate on the "kana" field.
func KanaIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldKana))
}

// KanaNotNil applies the NotNil predicate on the "kana" field.
func KanaNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldKana))
}

// KanaEqualFold applies the EqualFold predicate on the "kana" field.
func KanaEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldKana, v))
}

// KanaContainsFold applies the ContainsFold predicate on the "kana" field.
func KanaContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldKana, v))
}

// RelationEQ applies the EQ predicate on the "relation" field.
func RelationEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldRelation, v))
}

// RelationNEQ applies the NEQ predicate on the "relation" field.
func RelationNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldRelation, v))
}

// RelationIn applies the In predicate on the "relation" field.
func RelationIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldRelation, vs...))
}

// RelationNotIn applies the NotIn predicate on the "relation" field.
func RelationNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldRelation, vs...))
}

// RelationGT applies the GT predicate on the "relation" field.
func RelationGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldRelation, v))
}

// RelationGTE applies the GTE predicate on the "relation" field.
func RelationGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldRelation, v))
}

// RelationLT applies the LT predicate on the "relation" field.
func RelationLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldRelation, v))
}

// RelationLTE applies the LTE predicate on the "relation" field.
func RelationLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldRelation, v))
}

// RelationContains applies the Contains predicate on the "relation" field.
func RelationContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldRelation, v))
}

// RelationHasPrefix applies the HasPrefix predicate on the "relation" field.
func RelationHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldRelation, v))
}

// RelationHasSuffix applies the HasSuffix predicate on the "relation" field.
func RelationHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldRelation, v))
}

// RelationIsNil applies the IsNil predicate on the "relation" field.
func RelationIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldRelation))
}

// RelationNotNil applies the NotNil predicate on the "relation" field.
func RelationNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldRelation))
}

// RelationEqualFold applies the EqualFold predicate on the "relation" field.
func RelationEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldRelation, v))
}

// RelationContainsFold applies the ContainsFold predicate on the "relation" field.
func RelationContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldRelation, v))
}

// ChatAccountIDEQ applies the EQ predicate on the "chat_account_id" field.
func ChatAccountIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldChatAccountID, v))
}

// ChatAccountIDNEQ applies the NEQ predicate on the "chat_account_id" field.
func ChatAccountIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldChatAccountID, v))
}

// ChatAccountIDIn applies the In predicate on the "chat_account_id" field.
func ChatAccountIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldChatAccountID, vs...))
}

// ChatAccountIDNotIn applies the NotIn predicate on the "chat_account_id" field.
func ChatAccountIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldChatAccountID, vs...))
}

// ChatAccountIDGT applies the GT predicate on the "chat_account_id" field.
func ChatAccountIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldChatAccountID, v))
}

// ChatAccountIDGTE applies the GTE predicate on the "chat_account_id" field.
func ChatAccountIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldChatAccountID, v))
}

// ChatAccountIDLT applies the LT predicate on the "chat_account_id" field.
func ChatAccountIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldChatAccountID, v))
}

// ChatAccountIDLTE applies the LTE predicate on the "chat_account_id" field.
func ChatAccountIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldChatAccountID, v))
}

// ChatAccountIDContains applies the Contains predicate on the "chat_account_id" field.
func ChatAccountIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldChatAccountID, v))
}

// ChatAccountIDHasPrefix applies the HasPrefix predicate on the "chat_account_id" field.
func ChatAccountIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldChatAccountID, v))
}

// ChatAccountIDHasSuffix applies the HasSuffix predicate on the "chat_account_id" field.
func ChatAccountIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldChatAccountID, v))
}

// ChatAccountIDIsNil applies the IsNil predicate on the "chat_account_id" field.
func ChatAccountIDIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldChatAccountID))
}

// ChatAccountIDNotNil applies the NotNil predicate on the "chat_account_id" field.
func ChatAccountIDNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldChatAccountID))
}

// ChatAccountIDEqualFold applies the EqualFold predicate on the "chat_account_id" field.
func ChatAccountIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldChatAccountID, v))
}

// ChatAccountIDContainsFold applies the ContainsFold predicate on the "chat_account_id" field.
func ChatAccountIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldChatAccountID, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldNotes, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
