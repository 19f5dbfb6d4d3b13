// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
)

// CeoTeaching is the model entity for the CeoTeaching schema.
type CeoTeaching struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CeoUserID holds the value of the "ceo_user_id" field.
	CeoUserID string `json:"ceo_user_id,omitempty"`
	// Statement holds the value of the "statement" field.
	Statement string `json:"statement,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// Category holds the value of the "category" field.
	Category ceoteaching.Category `json:"category,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus ceoteaching.ValidationStatus `json:"validation_status,omitempty"`
	// SupersedesID holds the value of the "supersedes_id" field.
	SupersedesID *string `json:"supersedes_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CeoTeaching) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ceoteaching.FieldIsActive:
			values[i] = new(sql.NullBool)
		case ceoteaching.FieldPriority, ceoteaching.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case ceoteaching.FieldID, ceoteaching.FieldTenantID, ceoteaching.FieldCeoUserID, ceoteaching.FieldStatement, ceoteaching.FieldReasoning, ceoteaching.FieldContext, ceoteaching.FieldCategory, ceoteaching.FieldValidationStatus, ceoteaching.FieldSupersedesID:
			values[i] = new(sql.NullString)
		case ceoteaching.FieldCreatedAt, ceoteaching.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CeoTeaching fields.
func (_m *CeoTeaching) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ceoteaching.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ceoteaching.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case ceoteaching.FieldCeoUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ceo_user_id", values[i])
			} else if value.Valid {
				_m.CeoUserID = value.String
			}
		case ceoteaching.FieldStatement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field statement", values[i])
			} else if value.Valid {
				_m.Statement = value.String
			}
		case ceoteaching.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case ceoteaching.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case ceoteaching.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = ceoteaching.Category(value.String)
			}
		case ceoteaching.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case ceoteaching.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case ceoteaching.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case ceoteaching.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = ceoteaching.ValidationStatus(value.String)
			}
		case ceoteaching.FieldSupersedesID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supersedes_id", values[i])
			} else if value.Valid {
				_m.SupersedesID = new(string)
				*_m.SupersedesID = value.String
			}
		case ceoteaching.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ceoteaching.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CeoTeaching.
// This includes values selected through modifiers, order, etc.
func (_m *CeoTeaching) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CeoTeaching.
// Note that you need to call CeoTeaching.Unwrap() before calling this method if this CeoTeaching
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CeoTeaching) Update() *CeoTeachingUpdateOne {
	return NewCeoTeachingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CeoTeaching entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CeoTeaching) Unwrap() *CeoTeaching {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CeoTeaching is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CeoTeaching) String() string {
	var builder strings.Builder
	builder.WriteString("CeoTeaching(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("ceo_user_id=")
	builder.WriteString(_m.CeoUserID)
	builder.WriteString(", ")
	builder.WriteString("statement=")
	builder.WriteString(_m.Statement)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationStatus))
	builder.WriteString(", ")
	if v := _m.SupersedesID; v != nil {
		builder.WriteString("supersedes_id=")
		builder.WriteString(*v)
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

// CeoTeachings is a parsable slice of CeoTeaching.
type CeoTeachings []*CeoTeaching
