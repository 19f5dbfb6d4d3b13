// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTenantID, v))
}

// ChatAccountID applies equality check predicate on the "chat_account_id" field. It's identical to ChatAccountIDEQ.
func ChatAccountID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldChatAccountID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// RoleLevel applies equality check predicate on the "role_level" field. It's identical to RoleLevelEQ.
func RoleLevel(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRoleLevel, v))
}

// DepartmentID applies equality check predicate on the "department_id" field. It's identical to DepartmentIDEQ.
func DepartmentID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDepartmentID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldTenantID, v))
}

// ChatAccountIDEQ applies the EQ predicate on the "chat_account_id" field.
func ChatAccountIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldChatAccountID, v))
}

// ChatAccountIDNEQ applies the NEQ predicate on the "chat_account_id" field.
func ChatAccountIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldChatAccountID, v))
}

// ChatAccountIDIn applies the In predicate on the "chat_account_id" field.
func ChatAccountIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldChatAccountID, vs...))
}

// ChatAccountIDNotIn applies the NotIn predicate on the "chat_account_id" field.
func ChatAccountIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldChatAccountID, vs...))
}

// ChatAccountIDGT applies the GT predicate on the "chat_account_id" field.
func ChatAccountIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldChatAccountID, v))
}

// ChatAccountIDGTE applies the GTE predicate on the "chat_account_id" field.
func ChatAccountIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldChatAccountID, v))
}

// ChatAccountIDLT applies the LT predicate on the "chat_account_id" field.
func ChatAccountIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldChatAccountID, v))
}

// ChatAccountIDLTE applies the LTE predicate on the "chat_account_id" field.
func ChatAccountIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldChatAccountID, v))
}

// ChatAccountIDContains applies the Contains predicate on the "chat_account_id" field.
func ChatAccountIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldChatAccountID, v))
}

// ChatAccountIDHasPrefix applies the HasPrefix predicate on the "chat_account_id" field.
func ChatAccountIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldChatAccountID, v))
}

// ChatAccountIDHasSuffix applies the HasSuffix predicate on the "chat_account_id" field.
func ChatAccountIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldChatAccountID, v))
}

// ChatAccountIDEqualFold applies the EqualFold predicate on the "chat_account_id" field.
func ChatAccountIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldChatAccountID, v))
}

// ChatAccountIDContainsFold applies the ContainsFold predicate on the "chat_account_id" field.
func ChatAccountIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldChatAccountID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDisplayName, v))
}

// RoleLevelEQ applies the EQ predicate on the "role_level" field.
func RoleLevelEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRoleLevel, v))
}

// RoleLevelNEQ applies the NEQ predicate on the "role_level" field.
func RoleLevelNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRoleLevel, v))
}

// RoleLevelIn applies the In predicate on the "role_level" field.
func RoleLevelIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldRoleLevel, vs...))
}

// RoleLevelNotIn applies the NotIn predicate on the "role_level" field.
func RoleLevelNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRoleLevel, vs...))
}

// RoleLevelGT applies the GT predicate on the "role_level" field.
func RoleLevelGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldRoleLevel, v))
}

// RoleLevelGTE applies the GTE predicate on the "role_level" field.
func RoleLevelGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldRoleLevel, v))
}

// RoleLevelLT applies the LT predicate on the "role_level" field.
func RoleLevelLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldRoleLevel, v))
}

// RoleLevelLTE applies the LTE predicate on the "role_level" field.
func RoleLevelLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldRoleLevel, v))
}

// DepartmentIDEQ applies the EQ predicate on the "department_id" field.
func DepartmentIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDepartmentID, v))
}

// DepartmentIDNEQ applies the NEQ predicate on the "department_id" field.
func DepartmentIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDepartmentID, v))
}

// DepartmentIDIn applies the In predicate on the "department_id" field.
func DepartmentIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDepartmentID, vs...))
}

// DepartmentIDNotIn applies the NotIn predicate on the "department_id" field.
func DepartmentIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDepartmentID, vs...))
}

// DepartmentIDGT applies the GT predicate on the "department_id" field.
func DepartmentIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDepartmentID, v))
}

// DepartmentIDGTE applies the GTE predicate on the "department_id" field.
func DepartmentIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDepartmentID, v))
}

// DepartmentIDLT applies the LT predicate on the "department_id" field.
func DepartmentIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDepartmentID, v))
}

// DepartmentIDLTE applies the LTE predicate on the "department_id" field.
func DepartmentIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDepartmentID, v))
}

// DepartmentIDContains applies the Contains predicate on the "department_id" field.
func DepartmentIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDepartmentID, v))
}

// DepartmentIDHasPrefix applies the HasPrefix predicate on the "department_id" field.
func DepartmentIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDepartmentID, v))
}

// DepartmentIDHasSuffix applies the HasSuffix predicate on the "department_id" field.
func DepartmentIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDepartmentID, v))
}

// DepartmentIDIsNil applies the IsNil predicate on the "department_id" field.
func DepartmentIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDepartmentID))
}

// DepartmentIDNotNil applies the NotNil predicate on the "department_id" field.
func DepartmentIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDepartmentID))
}

// DepartmentIDEqualFold applies the EqualFold predicate on the "department_id" field.
func DepartmentIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDepartmentID, v))
}

// DepartmentIDContainsFold applies the ContainsFold predicate on the "department_id" field.
func DepartmentIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDepartmentID, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
