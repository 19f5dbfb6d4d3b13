// Code generated by ent, DO NOT EDIT.

package announcementexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTenantID, v))
}

// AnnouncementID applies equality check predicate on the "announcement_id" field. It's identical to AnnouncementIDEQ.
func AnnouncementID(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldAnnouncementID, v))
}

// ExecutionNumber applies equality check predicate on the "execution_number" field. It's identical to ExecutionNumberEQ.
func ExecutionNumber(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldExecutionNumber, v))
}

// MessageSent applies equality check predicate on the "message_sent" field. It's identical to MessageSentEQ.
func MessageSent(v bool) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldMessageSent, v))
}

// SentMessageID applies equality check predicate on the "sent_message_id" field. It's identical to SentMessageIDEQ.
func SentMessageID(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldSentMessageID, v))
}

// TasksCreated applies equality check predicate on the "tasks_created" field. It's identical to TasksCreatedEQ.
func TasksCreated(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTasksCreated, v))
}

// TasksFailed applies equality check predicate on the "tasks_failed" field. It's identical to TasksFailedEQ.
func TasksFailed(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTasksFailed, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldSkipReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldTenantID, v))
}

// AnnouncementIDEQ applies the EQ predicate on the "announcement_id" field.
func AnnouncementIDEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldAnnouncementID, v))
}

// AnnouncementIDNEQ applies the NEQ predicate on the "announcement_id" field.
func AnnouncementIDNEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldAnnouncementID, v))
}

// AnnouncementIDIn applies the In predicate on the "announcement_id" field.
func AnnouncementIDIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldAnnouncementID, vs...))
}

// AnnouncementIDNotIn applies the NotIn predicate on the "announcement_id" field.
func AnnouncementIDNotIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldAnnouncementID, vs...))
}

// AnnouncementIDGT applies the GT predicate on the "announcement_id" field.
func AnnouncementIDGT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldAnnouncementID, v))
}

// AnnouncementIDGTE applies the GTE predicate on the "announcement_id" field.
func AnnouncementIDGTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldAnnouncementID, v))
}

// AnnouncementIDLT applies the LT predicate on the "announcement_id" field.
func AnnouncementIDLT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldAnnouncementID, v))
}

// AnnouncementIDLTE applies the LTE predicate on the "announcement_id" field.
func AnnouncementIDLTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldAnnouncementID, v))
}

// AnnouncementIDContains applies the Contains predicate on the "announcement_id" field.
func AnnouncementIDContains(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContains(FieldAnnouncementID, v))
}

// AnnouncementIDHasPrefix applies the HasPrefix predicate on the "announcement_id" field.
func AnnouncementIDHasPrefix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasPrefix(FieldAnnouncementID, v))
}

// AnnouncementIDHasSuffix applies the HasSuffix predicate on the "announcement_id" field.
func AnnouncementIDHasSuffix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasSuffix(FieldAnnouncementID, v))
}

// AnnouncementIDEqualFold applies the EqualFold predicate on the "announcement_id" field.
func AnnouncementIDEqualFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldAnnouncementID, v))
}

// AnnouncementIDContainsFold applies the ContainsFold predicate on the "announcement_id" field.
func AnnouncementIDContainsFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldAnnouncementID, v))
}

// ExecutionNumberEQ applies the EQ predicate on the "execution_number" field.
func ExecutionNumberEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldExecutionNumber, v))
}

// ExecutionNumberNEQ applies the NEQ predicate on the "execution_number" field.
func ExecutionNumberNEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldExecutionNumber, v))
}

// ExecutionNumberIn applies the In predicate on the "execution_number" field.
func ExecutionNumberIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldExecutionNumber, vs...))
}

// ExecutionNumberNotIn applies the NotIn predicate on the "execution_number" field.
func ExecutionNumberNotIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldExecutionNumber, vs...))
}

// ExecutionNumberGT applies the GT predicate on the "execution_number" field.
func ExecutionNumberGT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldExecutionNumber, v))
}

// ExecutionNumberGTE applies the GTE predicate on the "execution_number" field.
func ExecutionNumberGTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldExecutionNumber, v))
}

// ExecutionNumberLT applies the LT predicate on the "execution_number" field.
func ExecutionNumberLT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldExecutionNumber, v))
}

// ExecutionNumberLTE applies the LTE predicate on the "execution_number" field.
func ExecutionNumberLTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldExecutionNumber, v))
}

// MessageSentEQ applies the EQ predicate on the "message_sent" field.
func MessageSentEQ(v bool) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldMessageSent, v))
}

// MessageSentNEQ applies the NEQ predicate on the "message_sent" field.
func MessageSentNEQ(v bool) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldMessageSent, v))
}

// SentMessageIDEQ applies the EQ predicate on the "sent_message_id" field.
func SentMessageIDEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldSentMessageID, v))
}

// SentMessageIDNEQ applies the NEQ predicate on the "sent_message_id" field.
func SentMessageIDNEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldSentMessageID, v))
}

// SentMessageIDIn applies the In predicate on the "sent_message_id" field.
func SentMessageIDIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldSentMessageID, vs...))
}

// SentMessageIDNotIn applies the NotIn predicate on the "sent_message_id" field.
func SentMessageIDNotIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldSentMessageID, vs...))
}

// SentMessageIDGT applies the GT predicate on the "sent_message_id" field.
func SentMessageIDGT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldSentMessageID, v))
}

// SentMessageIDGTE applies the GTE predicate on the "sent_message_id" field.
func SentMessageIDGTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldSentMessageID, v))
}

// SentMessageIDLT applies the LT predicate on the "sent_message_id" field.
func SentMessageIDLT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldSentMessageID, v))
}

// SentMessageIDLTE applies the LTE predicate on the "sent_message_id" field.
func SentMessageIDLTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldSentMessageID, v))
}

// SentMessageIDContains applies the Contains predicate on the "sent_message_id" field.
func SentMessageIDContains(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContains(FieldSentMessageID, v))
}

// SentMessageIDHasPrefix applies the HasPrefix predicate on the "sent_message_id" field.
func SentMessageIDHasPrefix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasPrefix(FieldSentMessageID, v))
}

// SentMessageIDHasSuffix applies the HasSuffix predicate on the "sent_message_id" field.
func SentMessageIDHasSuffix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasSuffix(FieldSentMessageID, v))
}

// SentMessageIDIsNil applies the IsNil predicate on the "sent_message_id" field.
func SentMessageIDIsNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIsNull(FieldSentMessageID))
}

// SentMessageIDNotNil applies the NotNil predicate on the "sent_message_id" field.
func SentMessageIDNotNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotNull(FieldSentMessageID))
}

// SentMessageIDEqualFold applies the EqualFold predicate on the "sent_message_id" field.
func SentMessageIDEqualFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldSentMessageID, v))
}

// SentMessageIDContainsFold applies the ContainsFold predicate on the "sent_message_id" field.
func SentMessageIDContainsFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldSentMessageID, v))
}

// TasksCreatedEQ applies the EQ predicate on the "tasks_created" field.
func TasksCreatedEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTasksCreated, v))
}

// TasksCreatedNEQ applies the NEQ predicate on the "tasks_created" field.
func TasksCreatedNEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldTasksCreated, v))
}

// TasksCreatedIn applies the In predicate on the "tasks_created" field.
func TasksCreatedIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldTasksCreated, vs...))
}

// TasksCreatedNotIn applies the NotIn predicate on the "tasks_created" field.
func TasksCreatedNotIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldTasksCreated, vs...))
}

// TasksCreatedGT applies the GT predicate on the "tasks_created" field.
func TasksCreatedGT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldTasksCreated, v))
}

// TasksCreatedGTE applies the GTE predicate on the "tasks_created" field.
func TasksCreatedGTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldTasksCreated, v))
}

// TasksCreatedLT applies the LT predicate on the "tasks_created" field.
func TasksCreatedLT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldTasksCreated, v))
}

// TasksCreatedLTE applies the LTE predicate on the "tasks_created" field.
func TasksCreatedLTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldTasksCreated, v))
}

// TasksFailedEQ applies the EQ predicate on the "tasks_failed" field.
func TasksFailedEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldTasksFailed, v))
}

// TasksFailedNEQ applies the NEQ predicate on the "tasks_failed" field.
func TasksFailedNEQ(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldTasksFailed, v))
}

// TasksFailedIn applies the In predicate on the "tasks_failed" field.
func TasksFailedIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldTasksFailed, vs...))
}

// TasksFailedNotIn applies the NotIn predicate on the "tasks_failed" field.
func TasksFailedNotIn(vs ...int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldTasksFailed, vs...))
}

// TasksFailedGT applies the GT predicate on the "tasks_failed" field.
func TasksFailedGT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldTasksFailed, v))
}

// TasksFailedGTE applies the GTE predicate on the "tasks_failed" field.
func TasksFailedGTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldTasksFailed, v))
}

// TasksFailedLT applies the LT predicate on the "tasks_failed" field.
func TasksFailedLT(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldTasksFailed, v))
}

// TasksFailedLTE applies the LTE predicate on the "tasks_failed" field.
func TasksFailedLTE(v int) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldTasksFailed, v))
}

// MembersSnapshotIsNil applies the IsNil predicate on the "members_snapshot" field.
func MembersSnapshotIsNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIsNull(FieldMembersSnapshot))
}

// MembersSnapshotNotNil applies the NotNil predicate on the "members_snapshot" field.
func MembersSnapshotNotNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotNull(FieldMembersSnapshot))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldSkipReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.FieldNotNull(FieldFinishedAt))
}

// HasAnnouncement applies the HasEdge predicate on the "announcement" edge.
func HasAnnouncement() predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnnouncementTable, AnnouncementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnnouncementWith applies the HasEdge predicate on the "announcement" edge with a given conditions (other predicates).
func HasAnnouncementWith(preds ...predicate.Announcement) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(func(s *sql.Selector) {
		step := newAnnouncementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnnouncementExecution) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnnouncementExecution) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnnouncementExecution) predicate.AnnouncementExecution {
	return predicate.AnnouncementExecution(sql.NotPredicates(p))
}
