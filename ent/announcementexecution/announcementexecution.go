// Code generated by ent, DO NOT EDIT.

package announcementexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the announcementexecution type in the database.
	Label = "announcement_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAnnouncementID holds the string denoting the announcement_id field in the database.
	FieldAnnouncementID = "announcement_id"
	// FieldExecutionNumber holds the string denoting the execution_number field in the database.
	FieldExecutionNumber = "execution_number"
	// FieldMessageSent holds the string denoting the message_sent field in the database.
	FieldMessageSent = "message_sent"
	// FieldSentMessageID holds the string denoting the sent_message_id field in the database.
	FieldSentMessageID = "sent_message_id"
	// FieldTasksCreated holds the string denoting the tasks_created field in the database.
	FieldTasksCreated = "tasks_created"
	// FieldTasksFailed holds the string denoting the tasks_failed field in the database.
	FieldTasksFailed = "tasks_failed"
	// FieldMembersSnapshot holds the string denoting the members_snapshot field in the database.
	FieldMembersSnapshot = "members_snapshot"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeAnnouncement holds the string denoting the announcement edge name in mutations.
	EdgeAnnouncement = "announcement"
	// AnnouncementFieldID holds the string denoting the ID field of the Announcement.
	AnnouncementFieldID = "announcement_id"
	// Table holds the table name of the announcementexecution in the database.
	Table = "announcement_executions"
	// AnnouncementTable is the table that holds the announcement relation/edge.
	AnnouncementTable = "announcement_executions"
	// AnnouncementInverseTable is the table name for the Announcement entity.
	// It exists in this package in order to avoid circular dependency with the "announcement" package.
	AnnouncementInverseTable = "announcements"
	// AnnouncementColumn is the table column denoting the announcement relation/edge.
	AnnouncementColumn = "announcement_id"
)

// Columns holds all SQL columns for announcementexecution fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAnnouncementID,
	FieldExecutionNumber,
	FieldMessageSent,
	FieldSentMessageID,
	FieldTasksCreated,
	FieldTasksFailed,
	FieldMembersSnapshot,
	FieldStatus,
	FieldSkipReason,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
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
	// AnnouncementIDValidator is a validator for the "announcement_id" field. It is called by the builders before save.
	AnnouncementIDValidator func(string) error
	// DefaultMessageSent holds the default value on creation for the "message_sent" field.
	DefaultMessageSent bool
	// DefaultTasksCreated holds the default value on creation for the "tasks_created" field.
	DefaultTasksCreated int
	// DefaultTasksFailed holds the default value on creation for the "tasks_failed" field.
	DefaultTasksFailed int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending        Status = "pending"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusPartialFailure Status = "partial_failure"
	StatusFailed         Status = "failed"
	StatusSkipped        Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusPartialFailure, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("announcementexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnnouncementExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAnnouncementID orders the results by the announcement_id field.
func ByAnnouncementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnouncementID, opts...).ToFunc()
}

// ByExecutionNumber orders the results by the execution_number field.
func ByExecutionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionNumber, opts...).ToFunc()
}

// ByMessageSent orders the results by the message_sent field.
func ByMessageSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageSent, opts...).ToFunc()
}

// BySentMessageID orders the results by the sent_message_id field.
func BySentMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentMessageID, opts...).ToFunc()
}

// ByTasksCreated orders the results by the tasks_created field.
func ByTasksCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCreated, opts...).ToFunc()
}

// ByTasksFailed orders the results by the tasks_failed field.
func ByTasksFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksFailed, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByAnnouncementField orders the results by announcement field.
func ByAnnouncementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnnouncementStep(), sql.OrderByField(field, opts...))
	}
}
func newAnnouncementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnnouncementInverseTable, AnnouncementFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnnouncementTable, AnnouncementColumn),
	)
}
