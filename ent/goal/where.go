// Code generated by ent, DO NOT EDIT.

package goal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTenantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTitle, v))
}

// Why applies equality check predicate on the "why" field. It's identical to WhyEQ.
func Why(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldWhy, v))
}

// FirstStep applies equality check predicate on the "first_step" field. It's identical to FirstStepEQ.
func FirstStep(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldFirstStep, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTargetDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldTenantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldTitle, v))
}

// WhyEQ applies the EQ predicate on the "why" field.
func WhyEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldWhy, v))
}

// WhyNEQ applies the NEQ predicate on the "why" field.
func WhyNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldWhy, v))
}

// WhyIn applies the In predicate on the "why" field.
func WhyIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldWhy, vs...))
}

// WhyNotIn applies the NotIn predicate on the "why" field.
func WhyNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldWhy, vs...))
}

// WhyGT applies the GT predicate on the "why" field.
func WhyGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldWhy, v))
}

// WhyGTE applies the GTE predicate on the "why" field.
func WhyGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldWhy, v))
}

// WhyLT applies the LT predicate on the "why" field.
func WhyLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldWhy, v))
}

// WhyLTE applies the LTE predicate on the "why" field.
func WhyLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldWhy, v))
}

// WhyContains applies the Contains predicate on the "why" field.
func WhyContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldWhy, v))
}

// WhyHasPrefix applies the HasPrefix predicate on the "why" field.
func WhyHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldWhy, v))
}

// WhyHasSuffix applies the HasSuffix predicate on the "why" field.
func WhyHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldWhy, v))
}

// WhyIsNil applies the IsNil predicate on the "why" field.
func WhyIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldWhy))
}

// WhyNotNil applies the NotNil predicate on the "why" field.
func WhyNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldWhy))
}

// WhyEqualFold applies the EqualFold predicate on the "why" field.
func WhyEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldWhy, v))
}

// WhyContainsFold applies the ContainsFold predicate on the "why" field.
func WhyContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldWhy, v))
}

// FirstStepEQ applies the EQ predicate on the "first_step" field.
func FirstStepEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldFirstStep, v))
}

// FirstStepNEQ applies the NEQ predicate on the "first_step" field.
func FirstStepNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldFirstStep, v))
}

// FirstStepIn applies the In predicate on the "first_step" field.
func FirstStepIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldFirstStep, vs...))
}

// FirstStepNotIn applies the NotIn predicate on the "first_step" field.
func FirstStepNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldFirstStep, vs...))
}

// FirstStepGT applies the GT predicate on the "first_step" field.
func FirstStepGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldFirstStep, v))
}

// FirstStepGTE applies the GTE predicate on the "first_step" field.
func FirstStepGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldFirstStep, v))
}

// FirstStepLT applies the LT predicate on the "first_step" field.
func FirstStepLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldFirstStep, v))
}

// FirstStepLTE applies the LTE predicate on the "first_step" field.
func FirstStepLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldFirstStep, v))
}

// FirstStepContains applies the Contains predicate on the "first_step" field.
func FirstStepContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldFirstStep, v))
}

// FirstStepHasPrefix applies the HasPrefix predicate on the "first_step" field.
func FirstStepHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldFirstStep, v))
}

// FirstStepHasSuffix applies the HasSuffix predicate on the "first_step" field.
func FirstStepHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldFirstStep, v))
}

// FirstStepIsNil applies the IsNil predicate on the "first_step" field.
func FirstStepIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldFirstStep))
}

// FirstStepNotNil applies the NotNil predicate on the "first_step" field.
func FirstStepNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldFirstStep))
}

// FirstStepEqualFold applies the EqualFold predicate on the "first_step" field.
func FirstStepEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldFirstStep, v))
}

// FirstStepContainsFold applies the ContainsFold predicate on the "first_step" field.
func FirstStepContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldFirstStep, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldStatus, vs...))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldTargetDate, v))
}

// TargetDateIsNil applies the IsNil predicate on the "target_date" field.
func TargetDateIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldTargetDate))
}

// TargetDateNotNil applies the NotNil predicate on the "target_date" field.
func TargetDateNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldTargetDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.NotPredicates(p))
}
