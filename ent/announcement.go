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
)

// Announcement is the model entity for the Announcement schema.
type Announcement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// MessageBody holds the value of the "message_body" field.
	MessageBody string `json:"message_body,omitempty"`
	// Nil while room resolution is pending
	TargetRoomID *string `json:"target_room_id,omitempty"`
	// CreateTasks holds the value of the "create_tasks" field.
	CreateTasks bool `json:"create_tasks,omitempty"`
	// TaskIncludeIds holds the value of the "task_include_ids" field.
	TaskIncludeIds []string `json:"task_include_ids,omitempty"`
	// TaskExcludeIds holds the value of the "task_exclude_ids" field.
	TaskExcludeIds []string `json:"task_exclude_ids,omitempty"`
	// ScheduleType holds the value of the "schedule_type" field.
	ScheduleType announcement.ScheduleType `json:"schedule_type,omitempty"`
	// Set for one_time schedules
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	// Set for recurring schedules
	CronExpression *string `json:"cron_expression,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// SkipHoliday holds the value of the "skip_holiday" field.
	SkipHoliday bool `json:"skip_holiday,omitempty"`
	// SkipWeekend holds the value of the "skip_weekend" field.
	SkipWeekend bool `json:"skip_weekend,omitempty"`
	// TaskDeadline holds the value of the "task_deadline" field.
	TaskDeadline *time.Time `json:"task_deadline,omitempty"`
	// Status holds the value of the "status" field.
	Status announcement.Status `json:"status,omitempty"`
	// RequesterAccountID holds the value of the "requester_account_id" field.
	RequesterAccountID string `json:"requester_account_id,omitempty"`
	// SourceRoomID holds the value of the "source_room_id" field.
	SourceRoomID string `json:"source_room_id,omitempty"`
	// ConfirmationMessageID holds the value of the "confirmation_message_id" field.
	ConfirmationMessageID *string `json:"confirmation_message_id,omitempty"`
	// NextExecutionAt holds the value of the "next_execution_at" field.
	NextExecutionAt *time.Time `json:"next_execution_at,omitempty"`
	// LastExecutionAt holds the value of the "last_execution_at" field.
	LastExecutionAt *time.Time `json:"last_execution_at,omitempty"`
	// ExecutionCount holds the value of the "execution_count" field.
	ExecutionCount int `json:"execution_count,omitempty"`
	// MaxExecutions holds the value of the "max_executions" field.
	MaxExecutions *int `json:"max_executions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnnouncementQuery when eager-loading is set.
	Edges        AnnouncementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnnouncementEdges holds the relations/edges for other nodes in the graph.
type AnnouncementEdges struct {
	// Executions holds the value of the executions edge.
	Executions []*AnnouncementExecution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e AnnouncementEdges) ExecutionsOrErr() ([]*AnnouncementExecution, error) {
	if e.loadedTypes[0] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Announcement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case announcement.FieldTaskIncludeIds, announcement.FieldTaskExcludeIds:
			values[i] = new([]byte)
		case announcement.FieldCreateTasks, announcement.FieldSkipHoliday, announcement.FieldSkipWeekend:
			values[i] = new(sql.NullBool)
		case announcement.FieldExecutionCount, announcement.FieldMaxExecutions:
			values[i] = new(sql.NullInt64)
		case announcement.FieldID, announcement.FieldTenantID, announcement.FieldTitle, announcement.FieldMessageBody, announcement.FieldTargetRoomID, announcement.FieldScheduleType, announcement.FieldCronExpression, announcement.FieldTimezone, announcement.FieldStatus, announcement.FieldRequesterAccountID, announcement.FieldSourceRoomID, announcement.FieldConfirmationMessageID:
			values[i] = new(sql.NullString)
		case announcement.FieldScheduledAt, announcement.FieldTaskDeadline, announcement.FieldNextExecutionAt, announcement.FieldLastExecutionAt, announcement.FieldCreatedAt, announcement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Announcement fields.
func (_m *Announcement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case announcement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case announcement.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case announcement.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case announcement.FieldMessageBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_body", values[i])
			} else if value.Valid {
				_m.MessageBody = value.String
			}
		case announcement.FieldTargetRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_room_id", values[i])
			} else if value.Valid {
				_m.TargetRoomID = new(string)
				*_m.TargetRoomID = value.String
			}
		case announcement.FieldCreateTasks:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field create_tasks", values[i])
			} else if value.Valid {
				_m.CreateTasks = value.Bool
			}
		case announcement.FieldTaskIncludeIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_include_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskIncludeIds); err != nil {
					return fmt.Errorf("unmarshal field task_include_ids: %w", err)
				}
			}
		case announcement.FieldTaskExcludeIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_exclude_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskExcludeIds); err != nil {
					return fmt.Errorf("unmarshal field task_exclude_ids: %w", err)
				}
			}
		case announcement.FieldScheduleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_type", values[i])
			} else if value.Valid {
				_m.ScheduleType = announcement.ScheduleType(value.String)
			}
		case announcement.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = new(time.Time)
				*_m.ScheduledAt = value.Time
			}
		case announcement.FieldCronExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expression", values[i])
			} else if value.Valid {
				_m.CronExpression = new(string)
				*_m.CronExpression = value.String
			}
		case announcement.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case announcement.FieldSkipHoliday:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_holiday", values[i])
			} else if value.Valid {
				_m.SkipHoliday = value.Bool
			}
		case announcement.FieldSkipWeekend:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_weekend", values[i])
			} else if value.Valid {
				_m.SkipWeekend = value.Bool
			}
		case announcement.FieldTaskDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field task_deadline", values[i])
			} else if value.Valid {
				_m.TaskDeadline = new(time.Time)
				*_m.TaskDeadline = value.Time
			}
		case announcement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = announcement.Status(value.String)
			}
		case announcement.FieldRequesterAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_account_id", values[i])
			} else if value.Valid {
				_m.RequesterAccountID = value.String
			}
		case announcement.FieldSourceRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_room_id", values[i])
			} else if value.Valid {
				_m.SourceRoomID = value.String
			}
		case announcement.FieldConfirmationMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_message_id", values[i])
			} else if value.Valid {
				_m.ConfirmationMessageID = new(string)
				*_m.ConfirmationMessageID = value.String
			}
		case announcement.FieldNextExecutionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_execution_at", values[i])
			} else if value.Valid {
				_m.NextExecutionAt = new(time.Time)
				*_m.NextExecutionAt = value.Time
			}
		case announcement.FieldLastExecutionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_execution_at", values[i])
			} else if value.Valid {
				_m.LastExecutionAt = new(time.Time)
				*_m.LastExecutionAt = value.Time
			}
		case announcement.FieldExecutionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_count", values[i])
			} else if value.Valid {
				_m.ExecutionCount = int(value.Int64)
			}
		case announcement.FieldMaxExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_executions", values[i])
			} else if value.Valid {
				_m.MaxExecutions = new(int)
				*_m.MaxExecutions = int(value.Int64)
			}
		case announcement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case announcement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Announcement.
// This includes values selected through modifiers, order, etc.
func (_m *Announcement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutions queries the "executions" edge of the Announcement entity.
func (_m *Announcement) QueryExecutions() *AnnouncementExecutionQuery {
	return NewAnnouncementClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this Announcement.
// Note that you need to call Announcement.Unwrap() before calling this method if this Announcement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Announcement) Update() *AnnouncementUpdateOne {
	return NewAnnouncementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Announcement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Announcement) Unwrap() *Announcement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Announcement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Announcement) String() string {
	var builder strings.Builder
	builder.WriteString("Announcement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("message_body=")
	builder.WriteString(_m.MessageBody)
	builder.WriteString(", ")
	if v := _m.TargetRoomID; v != nil {
		builder.WriteString("target_room_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("create_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreateTasks))
	builder.WriteString(", ")
	builder.WriteString("task_include_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskIncludeIds))
	builder.WriteString(", ")
	builder.WriteString("task_exclude_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskExcludeIds))
	builder.WriteString(", ")
	builder.WriteString("schedule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleType))
	builder.WriteString(", ")
	if v := _m.ScheduledAt; v != nil {
		builder.WriteString("scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CronExpression; v != nil {
		builder.WriteString("cron_expression=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("skip_holiday=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipHoliday))
	builder.WriteString(", ")
	builder.WriteString("skip_weekend=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipWeekend))
	builder.WriteString(", ")
	if v := _m.TaskDeadline; v != nil {
		builder.WriteString("task_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("requester_account_id=")
	builder.WriteString(_m.RequesterAccountID)
	builder.WriteString(", ")
	builder.WriteString("source_room_id=")
	builder.WriteString(_m.SourceRoomID)
	builder.WriteString(", ")
	if v := _m.ConfirmationMessageID; v != nil {
		builder.WriteString("confirmation_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NextExecutionAt; v != nil {
		builder.WriteString("next_execution_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastExecutionAt; v != nil {
		builder.WriteString("last_execution_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("execution_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionCount))
	builder.WriteString(", ")
	if v := _m.MaxExecutions; v != nil {
		builder.WriteString("max_executions=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Announcements is a parsable slice of Announcement.
type Announcements []*Announcement
