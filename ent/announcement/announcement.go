// Code generated by ent, DO NOT EDIT.

package announcement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the announcement type in the database.
	Label = "announcement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "announcement_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessageBody holds the string denoting the message_body field in the database.
	FieldMessageBody = "message_body"
	// FieldTargetRoomID holds the string denoting the target_room_id field in the database.
	FieldTargetRoomID = "target_room_id"
	// FieldCreateTasks holds the string denoting the create_tasks field in the database.
	FieldCreateTasks = "create_tasks"
	// FieldTaskIncludeIds holds the string denoting the task_include_ids field in the database.
	FieldTaskIncludeIds = "task_include_ids"
	// FieldTaskExcludeIds holds the string denoting the task_exclude_ids field in the database.
	FieldTaskExcludeIds = "task_exclude_ids"
	// FieldScheduleType holds the string denoting the schedule_type field in the database.
	FieldScheduleType = "schedule_type"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldCronExpression holds the string denoting the cron_expression field in the database.
	FieldCronExpression = "cron_expression"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSkipHoliday holds the string denoting the skip_holiday field in the database.
	FieldSkipHoliday = "skip_holiday"
	// FieldSkipWeekend holds the string denoting the skip_weekend field in the database.
	FieldSkipWeekend = "skip_weekend"
	// FieldTaskDeadline holds the string denoting the task_deadline field in the database.
	FieldTaskDeadline = "task_deadline"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequesterAccountID holds the string denoting the requester_account_id field in the database.
	FieldRequesterAccountID = "requester_account_id"
	// FieldSourceRoomID holds the string denoting the source_room_id field in the database.
	FieldSourceRoomID = "source_room_id"
	// FieldConfirmationMessageID holds the string denoting the confirmation_message_id field in the database.
	FieldConfirmationMessageID = "confirmation_message_id"
	// FieldNextExecutionAt holds the string denoting the next_execution_at field in the database.
	FieldNextExecutionAt = "next_execution_at"
	// FieldLastExecutionAt holds the string denoting the last_execution_at field in the database.
	FieldLastExecutionAt = "last_execution_at"
	// FieldExecutionCount holds the string denoting the execution_count field in the database.
	FieldExecutionCount = "execution_count"
	// FieldMaxExecutions holds the string denoting the max_executions field in the database.
	FieldMaxExecutions = "max_executions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// AnnouncementExecutionFieldID holds the string denoting the ID field of the AnnouncementExecution.
	AnnouncementExecutionFieldID = "execution_id"
	// Table holds the table name of the announcement in the database.
	Table = "announcements"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "announcement_executions"
	// ExecutionsInverseTable is the table name for the AnnouncementExecution entity.
	// It exists in this package in order to avoid circular dependency with the "announcementexecution" package.
	ExecutionsInverseTable = "announcement_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "announcement_id"
)

// Columns holds all SQL columns for announcement fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldTitle,
	FieldMessageBody,
	FieldTargetRoomID,
	FieldCreateTasks,
	FieldTaskIncludeIds,
	FieldTaskExcludeIds,
	FieldScheduleType,
	FieldScheduledAt,
	FieldCronExpression,
	FieldTimezone,
	FieldSkipHoliday,
	FieldSkipWeekend,
	FieldTaskDeadline,
	FieldStatus,
	FieldRequesterAccountID,
	FieldSourceRoomID,
	FieldConfirmationMessageID,
	FieldNextExecutionAt,
	FieldLastExecutionAt,
	FieldExecutionCount,
	FieldMaxExecutions,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// MessageBodyValidator is a validator for the "message_body" field. It is called by the builders before save.
	MessageBodyValidator func(string) error
	// DefaultCreateTasks holds the default value on creation for the "create_tasks" field.
	DefaultCreateTasks bool
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultSkipHoliday holds the default value on creation for the "skip_holiday" field.
	DefaultSkipHoliday bool
	// DefaultSkipWeekend holds the default value on creation for the "skip_weekend" field.
	DefaultSkipWeekend bool
	// RequesterAccountIDValidator is a validator for the "requester_account_id" field. It is called by the builders before save.
	RequesterAccountIDValidator func(string) error
	// SourceRoomIDValidator is a validator for the "source_room_id" field. It is called by the builders before save.
	SourceRoomIDValidator func(string) error
	// DefaultExecutionCount holds the default value on creation for the "execution_count" field.
	DefaultExecutionCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ScheduleType defines the type for the "schedule_type" enum field.
type ScheduleType string

// ScheduleTypeImmediate is the default value of the ScheduleType enum.
const DefaultScheduleType = ScheduleTypeImmediate

// ScheduleType values.
const (
	ScheduleTypeImmediate ScheduleType = "immediate"
	ScheduleTypeOneTime   ScheduleType = "one_time"
	ScheduleTypeRecurring ScheduleType = "recurring"
)

func (st ScheduleType) String() string {
	return string(st)
}

// ScheduleTypeValidator is a validator for the "schedule_type" field enum values. It is called by the builders before save.
func ScheduleTypeValidator(st ScheduleType) error {
	switch st {
	case ScheduleTypeImmediate, ScheduleTypeOneTime, ScheduleTypeRecurring:
		return nil
	default:
		return fmt.Errorf("announcement: invalid enum value for schedule_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusPendingRoom Status = "pending_room"
	StatusConfirmed   Status = "confirmed"
	StatusScheduled   Status = "scheduled"
	StatusExecuting   Status = "executing"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusCancelled   Status = "cancelled"
	StatusPaused      Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPendingRoom, StatusConfirmed, StatusScheduled, StatusExecuting, StatusCompleted, StatusFailed, StatusCancelled, StatusPaused:
		return nil
	default:
		return fmt.Errorf("announcement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Announcement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessageBody orders the results by the message_body field.
func ByMessageBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageBody, opts...).ToFunc()
}

// ByTargetRoomID orders the results by the target_room_id field.
func ByTargetRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRoomID, opts...).ToFunc()
}

// ByCreateTasks orders the results by the create_tasks field.
func ByCreateTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTasks, opts...).ToFunc()
}

// ByScheduleType orders the results by the schedule_type field.
func ByScheduleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleType, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByCronExpression orders the results by the cron_expression field.
func ByCronExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpression, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// BySkipHoliday orders the results by the skip_holiday field.
func BySkipHoliday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipHoliday, opts...).ToFunc()
}

// BySkipWeekend orders the results by the skip_weekend field.
func BySkipWeekend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipWeekend, opts...).ToFunc()
}

// ByTaskDeadline orders the results by the task_deadline field.
func ByTaskDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDeadline, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequesterAccountID orders the results by the requester_account_id field.
func ByRequesterAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterAccountID, opts...).ToFunc()
}

// BySourceRoomID orders the results by the source_room_id field.
func BySourceRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceRoomID, opts...).ToFunc()
}

// ByConfirmationMessageID orders the results by the confirmation_message_id field.
func ByConfirmationMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationMessageID, opts...).ToFunc()
}

// ByNextExecutionAt orders the results by the next_execution_at field.
func ByNextExecutionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextExecutionAt, opts...).ToFunc()
}

// ByLastExecutionAt orders the results by the last_execution_at field.
func ByLastExecutionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecutionAt, opts...).ToFunc()
}

// ByExecutionCount orders the results by the execution_count field.
func ByExecutionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionCount, opts...).ToFunc()
}

// ByMaxExecutions orders the results by the max_executions field.
func ByMaxExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxExecutions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, AnnouncementExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
