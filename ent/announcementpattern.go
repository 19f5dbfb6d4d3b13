// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
)

// AnnouncementPattern is the model entity for the AnnouncementPattern schema.
type AnnouncementPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// NormalizedRequest holds the value of the "normalized_request" field.
	NormalizedRequest string `json:"normalized_request,omitempty"`
	// RequestHash holds the value of the "request_hash" field.
	RequestHash string `json:"request_hash,omitempty"`
	// OccurrenceCount holds the value of the "occurrence_count" field.
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// RequesterIds holds the value of the "requester_ids" field.
	RequesterIds []string `json:"requester_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status announcementpattern.Status `json:"status,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt   time.Time `json:"last_seen_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnnouncementPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case announcementpattern.FieldRequesterIds:
			values[i] = new([]byte)
		case announcementpattern.FieldOccurrenceCount:
			values[i] = new(sql.NullInt64)
		case announcementpattern.FieldID, announcementpattern.FieldTenantID, announcementpattern.FieldNormalizedRequest, announcementpattern.FieldRequestHash, announcementpattern.FieldStatus:
			values[i] = new(sql.NullString)
		case announcementpattern.FieldFirstSeenAt, announcementpattern.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnnouncementPattern fields.
func (_m *AnnouncementPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case announcementpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case announcementpattern.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case announcementpattern.FieldNormalizedRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_request", values[i])
			} else if value.Valid {
				_m.NormalizedRequest = value.String
			}
		case announcementpattern.FieldRequestHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_hash", values[i])
			} else if value.Valid {
				_m.RequestHash = value.String
			}
		case announcementpattern.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case announcementpattern.FieldRequesterIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requester_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequesterIds); err != nil {
					return fmt.Errorf("unmarshal field requester_ids: %w", err)
				}
			}
		case announcementpattern.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = announcementpattern.Status(value.String)
			}
		case announcementpattern.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case announcementpattern.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnnouncementPattern.
// This includes values selected through modifiers, order, etc.
func (_m *AnnouncementPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnnouncementPattern.
// Note that you need to call AnnouncementPattern.Unwrap() before calling this method if this AnnouncementPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnnouncementPattern) Update() *AnnouncementPatternUpdateOne {
	return NewAnnouncementPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnnouncementPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnnouncementPattern) Unwrap() *AnnouncementPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnnouncementPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnnouncementPattern) String() string {
	var builder strings.Builder
	builder.WriteString("AnnouncementPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("normalized_request=")
	builder.WriteString(_m.NormalizedRequest)
	builder.WriteString(", ")
	builder.WriteString("request_hash=")
	builder.WriteString(_m.RequestHash)
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("requester_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequesterIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnnouncementPatterns is a parsable slice of AnnouncementPattern.
type AnnouncementPatterns []*AnnouncementPattern
