// Code generated by ent, DO NOT EDIT.

package announcement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTenantID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTitle, v))
}

// MessageBody applies equality check predicate on the "message_body" field. It's identical to MessageBodyEQ.
func MessageBody(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldMessageBody, v))
}

// TargetRoomID applies equality check predicate on the "target_room_id" field. It's identical to TargetRoomIDEQ.
func TargetRoomID(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTargetRoomID, v))
}

// CreateTasks applies equality check predicate on the "create_tasks" field. It's identical to CreateTasksEQ.
func CreateTasks(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreateTasks, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldScheduledAt, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCronExpression, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTimezone, v))
}

// SkipHoliday applies equality check predicate on the "skip_holiday" field. It's identical to SkipHolidayEQ.
func SkipHoliday(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSkipHoliday, v))
}

// SkipWeekend applies equality check predicate on the "skip_weekend" field. It's identical to SkipWeekendEQ.
func SkipWeekend(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSkipWeekend, v))
}

// TaskDeadline applies equality check predicate on the "task_deadline" field. It's identical to TaskDeadlineEQ.
func TaskDeadline(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTaskDeadline, v))
}

// RequesterAccountID applies equality check predicate on the "requester_account_id" field. It's identical to RequesterAccountIDEQ.
func RequesterAccountID(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldRequesterAccountID, v))
}

// SourceRoomID applies equality check predicate on the "source_room_id" field. It's identical to SourceRoomIDEQ.
func SourceRoomID(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourceRoomID, v))
}

// ConfirmationMessageID applies equality check predicate on the "confirmation_message_id" field. It's identical to ConfirmationMessageIDEQ.
func ConfirmationMessageID(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldConfirmationMessageID, v))
}

// NextExecutionAt applies equality check predicate on the "next_execution_at" field. It's identical to NextExecutionAtEQ.
func NextExecutionAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldNextExecutionAt, v))
}

// LastExecutionAt applies equality check predicate on the "last_execution_at" field. It's identical to LastExecutionAtEQ.
func LastExecutionAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldLastExecutionAt, v))
}

// ExecutionCount applies equality check predicate on the "execution_count" field. It's identical to ExecutionCountEQ.
func ExecutionCount(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldExecutionCount, v))
}

// MaxExecutions applies equality check predicate on the "max_executions" field. It's identical to MaxExecutionsEQ.
func MaxExecutions(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldMaxExecutions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTenantID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTitle, v))
}

// MessageBodyEQ applies the EQ predicate on the "message_body" field.
func MessageBodyEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldMessageBody, v))
}

// MessageBodyNEQ applies the NEQ predicate on the "message_body" field.
func MessageBodyNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldMessageBody, v))
}

// MessageBodyIn applies the In predicate on the "message_body" field.
func MessageBodyIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldMessageBody, vs...))
}

// MessageBodyNotIn applies the NotIn predicate on the "message_body" field.
func MessageBodyNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldMessageBody, vs...))
}

// MessageBodyGT applies the GT predicate on the "message_body" field.
func MessageBodyGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldMessageBody, v))
}

// MessageBodyGTE applies the GTE predicate on the "message_body" field.
func MessageBodyGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldMessageBody, v))
}

// MessageBodyLT applies the LT predicate on the "message_body" field.
func MessageBodyLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldMessageBody, v))
}

// MessageBodyLTE applies the LTE predicate on the "message_body" field.
func MessageBodyLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldMessageBody, v))
}

// MessageBodyContains applies the Contains predicate on the "message_body" field.
func MessageBodyContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldMessageBody, v))
}

// MessageBodyHasPrefix applies the HasPrefix predicate on the "message_body" field.
func MessageBodyHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldMessageBody, v))
}

// MessageBodyHasSuffix applies the HasSuffix predicate on the "message_body" field.
func MessageBodyHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldMessageBody, v))
}

// MessageBodyEqualFold applies the EqualFold predicate on the "message_body" field.
func MessageBodyEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldMessageBody, v))
}

// MessageBodyContainsFold applies the ContainsFold predicate on the "message_body" field.
func MessageBodyContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldMessageBody, v))
}

// TargetRoomIDEQ applies the EQ predicate on the "target_room_id" field.
func TargetRoomIDEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTargetRoomID, v))
}

// TargetRoomIDNEQ applies the NEQ predicate on the "target_room_id" field.
func TargetRoomIDNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTargetRoomID, v))
}

// TargetRoomIDIn applies the In predicate on the "target_room_id" field.
func TargetRoomIDIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTargetRoomID, vs...))
}

// TargetRoomIDNotIn applies the NotIn predicate on the "target_room_id" field.
func TargetRoomIDNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTargetRoomID, vs...))
}

// TargetRoomIDGT applies the GT predicate on the "target_room_id" field.
func TargetRoomIDGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTargetRoomID, v))
}

// TargetRoomIDGTE applies the GTE predicate on the "target_room_id" field.
func TargetRoomIDGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTargetRoomID, v))
}

// TargetRoomIDLT applies the LT predicate on the "target_room_id" field.
func TargetRoomIDLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTargetRoomID, v))
}

// TargetRoomIDLTE applies the LTE predicate on the "target_room_id" field.
func TargetRoomIDLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTargetRoomID, v))
}

// TargetRoomIDContains applies the Contains predicate on the "target_room_id" field.
func TargetRoomIDContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTargetRoomID, v))
}

// TargetRoomIDHasPrefix applies the HasPrefix predicate on the "target_room_id" field.
func TargetRoomIDHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTargetRoomID, v))
}

// TargetRoomIDHasSuffix applies the HasSuffix predicate on the "target_room_id" field.
func TargetRoomIDHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTargetRoomID, v))
}

// TargetRoomIDIsNil applies the IsNil predicate on the "target_room_id" field.
func TargetRoomIDIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTargetRoomID))
}

// TargetRoomIDNotNil applies the NotNil predicate on the "target_room_id" field.
func TargetRoomIDNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTargetRoomID))
}

// TargetRoomIDEqualFold applies the EqualFold predicate on the "target_room_id" field.
func TargetRoomIDEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTargetRoomID, v))
}

// TargetRoomIDContainsFold applies the ContainsFold predicate on the "target_room_id" field.
func TargetRoomIDContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTargetRoomID, v))
}

// CreateTasksEQ applies the EQ predicate on the "create_tasks" field.
func CreateTasksEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreateTasks, v))
}

// CreateTasksNEQ applies the NEQ predicate on the "create_tasks" field.
func CreateTasksNEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldCreateTasks, v))
}

// TaskIncludeIdsIsNil applies the IsNil predicate on the "task_include_ids" field.
func TaskIncludeIdsIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTaskIncludeIds))
}

// TaskIncludeIdsNotNil applies the NotNil predicate on the "task_include_ids" field.
func TaskIncludeIdsNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTaskIncludeIds))
}

// TaskExcludeIdsIsNil applies the IsNil predicate on the "task_exclude_ids" field.
func TaskExcludeIdsIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTaskExcludeIds))
}

// TaskExcludeIdsNotNil applies the NotNil predicate on the "task_exclude_ids" field.
func TaskExcludeIdsNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTaskExcludeIds))
}

// ScheduleTypeEQ applies the EQ predicate on the "schedule_type" field.
func ScheduleTypeEQ(v ScheduleType) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldScheduleType, v))
}

// ScheduleTypeNEQ applies the NEQ predicate on the "schedule_type" field.
func ScheduleTypeNEQ(v ScheduleType) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldScheduleType, v))
}

// ScheduleTypeIn applies the In predicate on the "schedule_type" field.
func ScheduleTypeIn(vs ...ScheduleType) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldScheduleType, vs...))
}

// ScheduleTypeNotIn applies the NotIn predicate on the "schedule_type" field.
func ScheduleTypeNotIn(vs ...ScheduleType) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldScheduleType, vs...))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldScheduledAt))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionIsNil applies the IsNil predicate on the "cron_expression" field.
func CronExpressionIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldCronExpression))
}

// CronExpressionNotNil applies the NotNil predicate on the "cron_expression" field.
func CronExpressionNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldCronExpression))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldCronExpression, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTimezone, v))
}

// SkipHolidayEQ applies the EQ predicate on the "skip_holiday" field.
func SkipHolidayEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSkipHoliday, v))
}

// SkipHolidayNEQ applies the NEQ predicate on the "skip_holiday" field.
func SkipHolidayNEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldSkipHoliday, v))
}

// SkipWeekendEQ applies the EQ predicate on the "skip_weekend" field.
func SkipWeekendEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSkipWeekend, v))
}

// SkipWeekendNEQ applies the NEQ predicate on the "skip_weekend" field.
func SkipWeekendNEQ(v bool) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldSkipWeekend, v))
}

// TaskDeadlineEQ applies the EQ predicate on the "task_deadline" field.
func TaskDeadlineEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTaskDeadline, v))
}

// TaskDeadlineNEQ applies the NEQ predicate on the "task_deadline" field.
func TaskDeadlineNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTaskDeadline, v))
}

// TaskDeadlineIn applies the In predicate on the "task_deadline" field.
func TaskDeadlineIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTaskDeadline, vs...))
}

// TaskDeadlineNotIn applies the NotIn predicate on the "task_deadline" field.
func TaskDeadlineNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTaskDeadline, vs...))
}

// TaskDeadlineGT applies the GT predicate on the "task_deadline" field.
func TaskDeadlineGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTaskDeadline, v))
}

// TaskDeadlineGTE applies the GTE predicate on the "task_deadline" field.
func TaskDeadlineGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTaskDeadline, v))
}

// TaskDeadlineLT applies the LT predicate on the "task_deadline" field.
func TaskDeadlineLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTaskDeadline, v))
}

// TaskDeadlineLTE applies the LTE predicate on the "task_deadline" field.
func TaskDeadlineLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTaskDeadline, v))
}

// TaskDeadlineIsNil applies the IsNil predicate on the "task_deadline" field.
func TaskDeadlineIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTaskDeadline))
}

// TaskDeadlineNotNil applies the NotNil predicate on the "task_deadline" field.
func TaskDeadlineNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTaskDeadline))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldStatus, vs...))
}

// RequesterAccountIDEQ applies the EQ predicate on the "requester_account_id" field.
func RequesterAccountIDEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldRequesterAccountID, v))
}

// RequesterAccountIDNEQ applies the NEQ predicate on the "requester_account_id" field.
func RequesterAccountIDNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldRequesterAccountID, v))
}

// RequesterAccountIDIn applies the In predicate on the "requester_account_id" field.
func RequesterAccountIDIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldRequesterAccountID, vs...))
}

// RequesterAccountIDNotIn applies the NotIn predicate on the "requester_account_id" field.
func RequesterAccountIDNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldRequesterAccountID, vs...))
}

// RequesterAccountIDGT applies the GT predicate on the "requester_account_id" field.
func RequesterAccountIDGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldRequesterAccountID, v))
}

// RequesterAccountIDGTE applies the GTE predicate on the "requester_account_id" field.
func RequesterAccountIDGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldRequesterAccountID, v))
}

// RequesterAccountIDLT applies the LT predicate on the "requester_account_id" field.
func RequesterAccountIDLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldRequesterAccountID, v))
}

// RequesterAccountIDLTE applies the LTE predicate on the "requester_account_id" field.
func RequesterAccountIDLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldRequesterAccountID, v))
}

// RequesterAccountIDContains applies the Contains predicate on the "requester_account_id" field.
func RequesterAccountIDContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldRequesterAccountID, v))
}

// RequesterAccountIDHasPrefix applies the HasPrefix predicate on the "requester_account_id" field.
func RequesterAccountIDHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldRequesterAccountID, v))
}

// RequesterAccountIDHasSuffix applies the HasSuffix predicate on the "requester_account_id" field.
func RequesterAccountIDHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldRequesterAccountID, v))
}

// RequesterAccountIDEqualFold applies the EqualFold predicate on the "requester_account_id" field.
func RequesterAccountIDEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldRequesterAccountID, v))
}

// RequesterAccountIDContainsFold applies the ContainsFold predicate on the "requester_account_id" field.
func RequesterAccountIDContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldRequesterAccountID, v))
}

// SourceRoomIDEQ applies the EQ predicate on the "source_room_id" field.
func SourceRoomIDEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourceRoomID, v))
}

// SourceRoomIDNEQ applies the NEQ predicate on the "source_room_id" field.
func SourceRoomIDNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldSourceRoomID, v))
}

// SourceRoomIDIn applies the In predicate on the "source_room_id" field.
func SourceRoomIDIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldSourceRoomID, vs...))
}

// SourceRoomIDNotIn applies the NotIn predicate on the "source_room_id" field.
func SourceRoomIDNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldSourceRoomID, vs...))
}

// SourceRoomIDGT applies the GT predicate on the "source_room_id" field.
func SourceRoomIDGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldSourceRoomID, v))
}

// SourceRoomIDGTE applies the GTE predicate on the "source_room_id" field.
func SourceRoomIDGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldSourceRoomID, v))
}

// SourceRoomIDLT applies the LT predicate on the "source_room_id" field.
func SourceRoomIDLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldSourceRoomID, v))
}

// SourceRoomIDLTE applies the LTE predicate on the "source_room_id" field.
func SourceRoomIDLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldSourceRoomID, v))
}

// SourceRoomIDContains applies the Contains predicate on the "source_room_id" field.
func SourceRoomIDContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldSourceRoomID, v))
}

// SourceRoomIDHasPrefix applies the HasPrefix predicate on the "source_room_id" field.
func SourceRoomIDHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldSourceRoomID, v))
}

// SourceRoomIDHasSuffix applies the HasSuffix predicate on the "source_room_id" field.
func SourceRoomIDHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldSourceRoomID, v))
}

// SourceRoomIDEqualFold applies the EqualFold predicate on the "source_room_id" field.
func SourceRoomIDEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldSourceRoomID, v))
}

// SourceRoomIDContainsFold applies the ContainsFold predicate on the "source_room_id" field.
func SourceRoomIDContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldSourceRoomID, v))
}

// ConfirmationMessageIDEQ applies the EQ predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDNEQ applies the NEQ predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDIn applies the In predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldConfirmationMessageID, vs...))
}

// ConfirmationMessageIDNotIn applies the NotIn predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldConfirmationMessageID, vs...))
}

// ConfirmationMessageIDGT applies the GT predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDGTE applies the GTE predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDLT applies the LT predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDLTE applies the LTE predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDContains applies the Contains predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDHasPrefix applies the HasPrefix predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDHasSuffix applies the HasSuffix predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDIsNil applies the IsNil predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldConfirmationMessageID))
}

// ConfirmationMessageIDNotNil applies the NotNil predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldConfirmationMessageID))
}

// ConfirmationMessageIDEqualFold applies the EqualFold predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldConfirmationMessageID, v))
}

// ConfirmationMessageIDContainsFold applies the ContainsFold predicate on the "confirmation_message_id" field.
func ConfirmationMessageIDContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldConfirmationMessageID, v))
}

// NextExecutionAtEQ applies the EQ predicate on the "next_execution_at" field.
func NextExecutionAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldNextExecutionAt, v))
}

// NextExecutionAtNEQ applies the NEQ predicate on the "next_execution_at" field.
func NextExecutionAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldNextExecutionAt, v))
}

// NextExecutionAtIn applies the In predicate on the "next_execution_at" field.
func NextExecutionAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldNextExecutionAt, vs...))
}

// NextExecutionAtNotIn applies the NotIn predicate on the "next_execution_at" field.
func NextExecutionAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldNextExecutionAt, vs...))
}

// NextExecutionAtGT applies the GT predicate on the "next_execution_at" field.
func NextExecutionAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldNextExecutionAt, v))
}

// NextExecutionAtGTE applies the GTE predicate on the "next_execution_at" field.
func NextExecutionAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldNextExecutionAt, v))
}

// NextExecutionAtLT applies the LT predicate on the "next_execution_at" field.
func NextExecutionAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldNextExecutionAt, v))
}

// NextExecutionAtLTE applies the LTE predicate on the "next_execution_at" field.
func NextExecutionAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldNextExecutionAt, v))
}

// NextExecutionAtIsNil applies the IsNil predicate on the "next_execution_at" field.
func NextExecutionAtIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldNextExecutionAt))
}

// NextExecutionAtNotNil applies the NotNil predicate on the "next_execution_at" field.
func NextExecutionAtNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldNextExecutionAt))
}

// LastExecutionAtEQ applies the EQ predicate on the "last_execution_at" field.
func LastExecutionAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldLastExecutionAt, v))
}

// LastExecutionAtNEQ applies the NEQ predicate on the "last_execution_at" field.
func LastExecutionAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldLastExecutionAt, v))
}

// LastExecutionAtIn applies the In predicate on the "last_execution_at" field.
func LastExecutionAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldLastExecutionAt, vs...))
}

// LastExecutionAtNotIn applies the NotIn predicate on the "last_execution_at" field.
func LastExecutionAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldLastExecutionAt, vs...))
}

// LastExecutionAtGT applies the GT predicate on the "last_execution_at" field.
func LastExecutionAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldLastExecutionAt, v))
}

// LastExecutionAtGTE applies the GTE predicate on the "last_execution_at" field.
func LastExecutionAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldLastExecutionAt, v))
}

// LastExecutionAtLT applies the LT predicate on the "last_execution_at" field.
func LastExecutionAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldLastExecutionAt, v))
}

// LastExecutionAtLTE applies the LTE predicate on the "last_execution_at" field.
func LastExecutionAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldLastExecutionAt, v))
}

// LastExecutionAtIsNil applies the IsNil predicate on the "last_execution_at" field.
func LastExecutionAtIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldLastExecutionAt))
}

// LastExecutionAtNotNil applies the NotNil predicate on the "last_execution_at" field.
func LastExecutionAtNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldLastExecutionAt))
}

// ExecutionCountEQ applies the EQ predicate on the "execution_count" field.
func ExecutionCountEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldExecutionCount, v))
}

// ExecutionCountNEQ applies the NEQ predicate on the "execution_count" field.
func ExecutionCountNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldExecutionCount, v))
}

// ExecutionCountIn applies the In predicate on the "execution_count" field.
func ExecutionCountIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldExecutionCount, vs...))
}

// ExecutionCountNotIn applies the NotIn predicate on the "execution_count" field.
func ExecutionCountNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldExecutionCount, vs...))
}

// ExecutionCountGT applies the GT predicate on the "execution_count" field.
func ExecutionCountGT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldExecutionCount, v))
}

// ExecutionCountGTE applies the GTE predicate on the "execution_count" field.
func ExecutionCountGTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldExecutionCount, v))
}

// ExecutionCountLT applies the LT predicate on the "execution_count" field.
func ExecutionCountLT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldExecutionCount, v))
}

// ExecutionCountLTE applies the LTE predicate on the "execution_count" field.
func ExecutionCountLTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldExecutionCount, v))
}

// MaxExecutionsEQ applies the EQ predicate on the "max_executions" field.
func MaxExecutionsEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldMaxExecutions, v))
}

// MaxExecutionsNEQ applies the NEQ predicate on the "max_executions" field.
func MaxExecutionsNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldMaxExecutions, v))
}

// MaxExecutionsIn applies the In predicate on the "max_executions" field.
func MaxExecutionsIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldMaxExecutions, vs...))
}

// MaxExecutionsNotIn applies the NotIn predicate on the "max_executions" field.
func MaxExecutionsNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldMaxExecutions, vs...))
}

// MaxExecutionsGT applies the GT predicate on the "max_executions" field.
func MaxExecutionsGT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldMaxExecutions, v))
}

// MaxExecutionsGTE applies the GTE predicate on the "max_executions" field.
func MaxExecutionsGTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldMaxExecutions, v))
}

// MaxExecutionsLT applies the LT predicate on the "max_executions" field.
func MaxExecutionsLT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldMaxExecutions, v))
}

// MaxExecutionsLTE applies the LTE predicate on the "max_executions" field.
func MaxExecutionsLTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldMaxExecutions, v))
}

// MaxExecutionsIsNil applies the IsNil predicate on the "max_executions" field.
func MaxExecutionsIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldMaxExecutions))
}

// MaxExecutionsNotNil applies the NotNil predicate on the "max_executions" field.
func MaxExecutionsNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldMaxExecutions))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.AnnouncementExecution) predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.NotPredicates(p))
}
