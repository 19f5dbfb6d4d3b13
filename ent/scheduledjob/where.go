// Code generated by ent, DO NOT EDIT.

package scheduledjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldTenantID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldKind, v))
}

// RunAt applies equality check predicate on the "run_at" field. It's identical to RunAtEQ.
func RunAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldRunAt, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpression, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldClaimedAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldTenantID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldKind, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldPayload))
}

// RunAtEQ applies the EQ predicate on the "run_at" field.
func RunAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldRunAt, v))
}

// RunAtNEQ applies the NEQ predicate on the "run_at" field.
func RunAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldRunAt, v))
}

// RunAtIn applies the In predicate on the "run_at" field.
func RunAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldRunAt, vs...))
}

// RunAtNotIn applies the NotIn predicate on the "run_at" field.
func RunAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldRunAt, vs...))
}

// RunAtGT applies the GT predicate on the "run_at" field.
func RunAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldRunAt, v))
}

// RunAtGTE applies the GTE predicate on the "run_at" field.
func RunAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldRunAt, v))
}

// RunAtLT applies the LT predicate on the "run_at" field.
func RunAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldRunAt, v))
}

// RunAtLTE applies the LTE predicate on the "run_at" field.
func RunAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldRunAt, v))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionIsNil applies the IsNil predicate on the "cron_expression" field.
func CronExpressionIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldCronExpression))
}

// CronExpressionNotNil applies the NotNil predicate on the "cron_expression" field.
func CronExpressionNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldCronExpression))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldCronExpression, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldStatus, vs...))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldClaimedAt))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledJob) predicate.ScheduledJob {
	return predicate.ScheduledJob(sql.NotPredicates(p))
}
