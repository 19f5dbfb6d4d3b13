// Code generated by ent, DO NOT EDIT.

package ceoteaching

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldTenantID, v))
}

// CeoUserID applies equality check predicate on the "ceo_user_id" field. It's identical to CeoUserIDEQ.
func CeoUserID(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldCeoUserID, v))
}

// Statement applies equality check predicate on the "statement" field. It's identical to StatementEQ.
func Statement(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldStatement, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldReasoning, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldContext, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldPriority, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldIsActive, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldUsageCount, v))
}

// SupersedesID applies equality check predicate on the "supersedes_id" field. It's identical to SupersedesIDEQ.
func SupersedesID(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldSupersedesID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldTenantID, v))
}

// CeoUserIDEQ applies the EQ predicate on the "ceo_user_id" field.
func CeoUserIDEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldCeoUserID, v))
}

// CeoUserIDNEQ applies the NEQ predicate on the "ceo_user_id" field.
func CeoUserIDNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldCeoUserID, v))
}

// CeoUserIDIn applies the In predicate on the "ceo_user_id" field.
func CeoUserIDIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldCeoUserID, vs...))
}

// CeoUserIDNotIn applies the NotIn predicate on the "ceo_user_id" field.
func CeoUserIDNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldCeoUserID, vs...))
}

// CeoUserIDGT applies the GT predicate on the "ceo_user_id" field.
func CeoUserIDGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldCeoUserID, v))
}

// CeoUserIDGTE applies the GTE predicate on the "ceo_user_id" field.
func CeoUserIDGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldCeoUserID, v))
}

// CeoUserIDLT applies the LT predicate on the "ceo_user_id" field.
func CeoUserIDLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldCeoUserID, v))
}

// CeoUserIDLTE applies the LTE predicate on the "ceo_user_id" field.
func CeoUserIDLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldCeoUserID, v))
}

// CeoUserIDContains applies the Contains predicate on the "ceo_user_id" field.
func CeoUserIDContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldCeoUserID, v))
}

// CeoUserIDHasPrefix applies the HasPrefix predicate on the "ceo_user_id" field.
func CeoUserIDHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldCeoUserID, v))
}

// CeoUserIDHasSuffix applies the HasSuffix predicate on the "ceo_user_id" field.
func CeoUserIDHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldCeoUserID, v))
}

// CeoUserIDEqualFold applies the EqualFold predicate on the "ceo_user_id" field.
func CeoUserIDEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldCeoUserID, v))
}

// CeoUserIDContainsFold applies the ContainsFold predicate on the "ceo_user_id" field.
func CeoUserIDContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldCeoUserID, v))
}

// StatementEQ applies the EQ predicate on the "statement" field.
func StatementEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldStatement, v))
}

// StatementNEQ applies the NEQ predicate on the "statement" field.
func StatementNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldStatement, v))
}

// StatementIn applies the In predicate on the "statement" field.
func StatementIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldStatement, vs...))
}

// StatementNotIn applies the NotIn predicate on the "statement" field.
func StatementNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldStatement, vs...))
}

// StatementGT applies the GT predicate on the "statement" field.
func StatementGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldStatement, v))
}

// StatementGTE applies the GTE predicate on the "statement" field.
func StatementGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldStatement, v))
}

// StatementLT applies the LT predicate on the "statement" field.
func StatementLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldStatement, v))
}

// StatementLTE applies the LTE predicate on the "statement" field.
func StatementLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldStatement, v))
}

// StatementContains applies the Contains predicate on the "statement" field.
func StatementContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldStatement, v))
}

// StatementHasPrefix applies the HasPrefix predicate on the "statement" field.
func StatementHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldStatement, v))
}

// StatementHasSuffix applies the HasSuffix predicate on the "statement" field.
func StatementHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldStatement, v))
}

// StatementEqualFold applies the EqualFold predicate on the "statement" field.
func StatementEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldStatement, v))
}

// StatementContainsFold applies the ContainsFold predicate on the "statement" field.
func StatementContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldStatement, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldReasoning, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldContext, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldCategory, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldPriority, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldIsActive, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldUsageCount, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// SupersedesIDEQ applies the EQ predicate on the "supersedes_id" field.
func SupersedesIDEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldSupersedesID, v))
}

// SupersedesIDNEQ applies the NEQ predicate on the "supersedes_id" field.
func SupersedesIDNEQ(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldSupersedesID, v))
}

// SupersedesIDIn applies the In predicate on the "supersedes_id" field.
func SupersedesIDIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldSupersedesID, vs...))
}

// SupersedesIDNotIn applies the NotIn predicate on the "supersedes_id" field.
func SupersedesIDNotIn(vs ...string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldSupersedesID, vs...))
}

// SupersedesIDGT applies the GT predicate on the "supersedes_id" field.
func SupersedesIDGT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldSupersedesID, v))
}

// SupersedesIDGTE applies the GTE predicate on the "supersedes_id" field.
func SupersedesIDGTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldSupersedesID, v))
}

// SupersedesIDLT applies the LT predicate on the "supersedes_id" field.
func SupersedesIDLT(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldSupersedesID, v))
}

// SupersedesIDLTE applies the LTE predicate on the "supersedes_id" field.
func SupersedesIDLTE(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldSupersedesID, v))
}

// SupersedesIDContains applies the Contains predicate on the "supersedes_id" field.
func SupersedesIDContains(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContains(FieldSupersedesID, v))
}

// SupersedesIDHasPrefix applies the HasPrefix predicate on the "supersedes_id" field.
func SupersedesIDHasPrefix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasPrefix(FieldSupersedesID, v))
}

// SupersedesIDHasSuffix applies the HasSuffix predicate on the "supersedes_id" field.
func SupersedesIDHasSuffix(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldHasSuffix(FieldSupersedesID, v))
}

// SupersedesIDIsNil applies the IsNil predicate on the "supersedes_id" field.
func SupersedesIDIsNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIsNull(FieldSupersedesID))
}

// SupersedesIDNotNil applies the NotNil predicate on the "supersedes_id" field.
func SupersedesIDNotNil() predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotNull(FieldSupersedesID))
}

// SupersedesIDEqualFold applies the EqualFold predicate on the "supersedes_id" field.
func SupersedesIDEqualFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEqualFold(FieldSupersedesID, v))
}

// SupersedesIDContainsFold applies the ContainsFold predicate on the "supersedes_id" field.
func SupersedesIDContainsFold(v string) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldContainsFold(FieldSupersedesID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CeoTeaching) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CeoTeaching) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CeoTeaching) predicate.CeoTeaching {
	return predicate.CeoTeaching(sql.NotPredicates(p))
}
