// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
)

// AnnouncementExecution is the model entity for the AnnouncementExecution schema.
type AnnouncementExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// AnnouncementID holds the value of the "announcement_id" field.
	AnnouncementID string `json:"announcement_id,omitempty"`
	// ExecutionNumber holds the value of the "execution_number" field.
	ExecutionNumber int `json:"execution_number,omitempty"`
	// MessageSent holds the value of the "message_sent" field.
	MessageSent bool `json:"message_sent,omitempty"`
	// SentMessageID holds the value of the "sent_message_id" field.
	SentMessageID *string `json:"sent_message_id,omitempty"`
	// TasksCreated holds the value of the "tasks_created" field.
	TasksCreated int `json:"tasks_created,omitempty"`
	// TasksFailed holds the value of the "tasks_failed" field.
	TasksFailed int `json:"tasks_failed,omitempty"`
	// Room member account ids at execution time
	MembersSnapshot []string `json:"members_snapshot,omitempty"`
	// Status holds the value of the "status" field.
	Status announcementexecution.Status `json:"status,omitempty"`
	// weekend | holiday
	SkipReason string `json:"skip_reason,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnnouncementExecutionQuery when eager-loading is set.
	Edges        AnnouncementExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnnouncementExecutionEdges holds the relations/edges for other nodes in the graph.
type AnnouncementExecutionEdges struct {
	// Announcement holds the value of the announcement edge.
	Announcement *Announcement `json:"announcement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnnouncementOrErr returns the Announcement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnnouncementExecutionEdges) AnnouncementOrErr() (*Announcement, error) {
	if e.Announcement != nil {
		return e.Announcement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: announcement.Label}
	}
	return nil, &NotLoadedError{edge: "announcement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnnouncementExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case announcementexecution.FieldMembersSnapshot:
			values[i] = new([]byte)
		case announcementexecution.FieldMessageSent:
			values[i] = new(sql.NullBool)
		case announcementexecution.FieldExecutionNumber, announcementexecution.FieldTasksCreated, announcementexecution.FieldTasksFailed:
			values[i] = new(sql.NullInt64)
		case announcementexecution.FieldID, announcementexecution.FieldTenantID, announcementexecution.FieldAnnouncementID, announcementexecution.FieldSentMessageID, announcementexecution.FieldStatus, announcementexecution.FieldSkipReason, announcementexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case announcementexecution.FieldStartedAt, announcementexecution.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnnouncementExecution fields.
func (_m *AnnouncementExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case announcementexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case announcementexecution.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case announcementexecution.FieldAnnouncementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field announcement_id", values[i])
			} else if value.Valid {
				_m.AnnouncementID = value.String
			}
		case announcementexecution.FieldExecutionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_number", values[i])
			} else if value.Valid {
				_m.ExecutionNumber = int(value.Int64)
			}
		case announcementexecution.FieldMessageSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field message_sent", values[i])
			} else if value.Valid {
				_m.MessageSent = value.Bool
			}
		case announcementexecution.FieldSentMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sent_message_id", values[i])
			} else if value.Valid {
				_m.SentMessageID = new(string)
				*_m.SentMessageID = value.String
			}
		case announcementexecution.FieldTasksCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_created", values[i])
			} else if value.Valid {
				_m.TasksCreated = int(value.Int64)
			}
		case announcementexecution.FieldTasksFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_failed", values[i])
			} else if value.Valid {
				_m.TasksFailed = int(value.Int64)
			}
		case announcementexecution.FieldMembersSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field members_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MembersSnapshot); err != nil {
					return fmt.Errorf("unmarshal field members_snapshot: %w", err)
				}
			}
		case announcementexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = announcementexecution.Status(value.String)
			}
		case announcementexecution.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = value.String
			}
		case announcementexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case announcementexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case announcementexecution.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnnouncementExecution.
// This includes values selected through modifiers, order, etc.
func (_m *AnnouncementExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnnouncement queries the "announcement" edge of the AnnouncementExecution entity.
func (_m *AnnouncementExecution) QueryAnnouncement() *AnnouncementQuery {
	return NewAnnouncementExecutionClient(_m.config).QueryAnnouncement(_m)
}

// Update returns a builder for updating this AnnouncementExecution.
// Note that you need to call AnnouncementExecution.Unwrap() before calling this method if this AnnouncementExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnnouncementExecution) Update() *AnnouncementExecutionUpdateOne {
	return NewAnnouncementExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnnouncementExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnnouncementExecution) Unwrap() *AnnouncementExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnnouncementExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnnouncementExecution) String() string {
	var builder strings.Builder
	builder.WriteString("AnnouncementExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("announcement_id=")
	builder.WriteString(_m.AnnouncementID)
	builder.WriteString(", ")
	builder.WriteString("execution_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionNumber))
	builder.WriteString(", ")
	builder.WriteString("message_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageSent))
	builder.WriteString(", ")
	if v := _m.SentMessageID; v != nil {
		builder.WriteString("sent_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tasks_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCreated))
	builder.WriteString(", ")
	builder.WriteString("tasks_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksFailed))
	builder.WriteString(", ")
	builder.WriteString("members_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.MembersSnapshot))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("skip_reason=")
	builder.WriteString(_m.SkipReason)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnnouncementExecutions is a parsable slice of AnnouncementExecution.
type AnnouncementExecutions []*AnnouncementExecution
