// Code generated by ent, DO NOT EDIT.

package userpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldTenantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUserID, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldTone, v))
}

// Locale applies equality check predicate on the "locale" field. It's identical to LocaleEQ.
func Locale(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldLocale, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldTenantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldUserID, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldTone, v))
}

// ToneIsNil applies the IsNil predicate on the "tone" field.
func ToneIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldTone))
}

// ToneNotNil applies the NotNil predicate on the "tone" field.
func ToneNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldTone))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldTone, v))
}

// LocaleEQ applies the EQ predicate on the "locale" field.
func LocaleEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldLocale, v))
}

// LocaleNEQ applies the NEQ predicate on the "locale" field.
func LocaleNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldLocale, v))
}

// LocaleIn applies the In predicate on the "locale" field.
func LocaleIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldLocale, vs...))
}

// LocaleNotIn applies the NotIn predicate on the "locale" field.
func LocaleNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldLocale, vs...))
}

// LocaleGT applies the GT predicate on the "locale" field.
func LocaleGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldLocale, v))
}

// LocaleGTE applies the GTE predicate on the "locale" field.
func LocaleGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldLocale, v))
}

// LocaleLT applies the LT predicate on the "locale" field.
func LocaleLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldLocale, v))
}

// LocaleLTE applies the LTE predicate on the "locale" field.
func LocaleLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldLocale, v))
}

// LocaleContains applies the Contains predicate on the "locale" field.
func LocaleContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldLocale, v))
}

// LocaleHasPrefix applies the HasPrefix predicate on the "locale" field.
func LocaleHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldLocale, v))
}

// LocaleHasSuffix applies the HasSuffix predicate on the "locale" field.
func LocaleHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldLocale, v))
}

// LocaleEqualFold applies the EqualFold predicate on the "locale" field.
func LocaleEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldLocale, v))
}

// LocaleContainsFold applies the ContainsFold predicate on the "locale" field.
func LocaleContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldLocale, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldSettings))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.NotPredicates(p))
}
