// Code generated by ent, DO NOT EDIT.

package announcementpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the announcementpattern type in the database.
	Label = "announcement_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldNormalizedRequest holds the string denoting the normalized_request field in the database.
	FieldNormalizedRequest = "normalized_request"
	// FieldRequestHash holds the string denoting the request_hash field in the database.
	FieldRequestHash = "request_hash"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldRequesterIds holds the string denoting the requester_ids field in the database.
	FieldRequesterIds = "requester_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// Table holds the table name of the announcementpattern in the database.
	Table = "announcement_patterns"
)

// Columns holds all SQL columns for announcementpattern fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldNormalizedRequest,
	FieldRequestHash,
	FieldOccurrenceCount,
	FieldRequesterIds,
	FieldStatus,
	FieldFirstSeenAt,
	FieldLastSeenAt,
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
	// NormalizedRequestValidator is a validator for the "normalized_request" field. It is called by the builders before save.
	NormalizedRequestValidator func(string) error
	// RequestHashValidator is a validator for the "request_hash" field. It is called by the builders before save.
	RequestHashValidator func(string) error
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusAddressed Status = "addressed"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusAddressed, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("announcementpattern: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnnouncementPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByNormalizedRequest orders the results by the normalized_request field.
func ByNormalizedRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedRequest, opts...).ToFunc()
}

// ByRequestHash orders the results by the request_hash field.
func ByRequestHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestHash, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}
