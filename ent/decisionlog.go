// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
)

// DecisionLog is the model entity for the DecisionLog schema.
type DecisionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// Scrubbed, truncated; never the full message
	MessageExcerpt string `json:"message_excerpt,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent string `json:"intent,omitempty"`
	// CapabilityKey holds the value of the "capability_key" field.
	CapabilityKey string `json:"capability_key,omitempty"`
	// Capability-specific, scrubbed before write
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// IntentConfidence holds the value of the "intent_confidence" field.
	IntentConfidence float64 `json:"intent_confidence,omitempty"`
	// ParameterConfidence holds the value of the "parameter_confidence" field.
	ParameterConfidence float64 `json:"parameter_confidence,omitempty"`
	// none | confirm | block
	GuardrailAction string `json:"guardrail_action,omitempty"`
	// PolicyReason holds the value of the "policy_reason" field.
	PolicyReason string `json:"policy_reason,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Error-kind name only, never raw error strings
	ErrorCode string `json:"error_code,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// Per-layer timing breakdown
	TimingsMs map[string]int64 `json:"timings_ms,omitempty"`
	// ConfirmationNeeded holds the value of the "confirmation_needed" field.
	ConfirmationNeeded bool `json:"confirmation_needed,omitempty"`
	// ConfirmationQuestion holds the value of the "confirmation_question" field.
	ConfirmationQuestion string `json:"confirmation_question,omitempty"`
	// accepted | rejected | choice:N
	ConfirmationResolution string `json:"confirmation_resolution,omitempty"`
	// e.g. partial_memory, llm_fallback
	Warnings []string `json:"warnings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionlog.FieldParameters, decisionlog.FieldTimingsMs, decisionlog.FieldWarnings:
			values[i] = new([]byte)
		case decisionlog.FieldSuccess, decisionlog.FieldConfirmationNeeded:
			values[i] = new(sql.NullBool)
		case decisionlog.FieldConfidence, decisionlog.FieldIntentConfidence, decisionlog.FieldParameterConfidence:
			values[i] = new(sql.NullFloat64)
		case decisionlog.FieldTokensIn, decisionlog.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case decisionlog.FieldID, decisionlog.FieldTenantID, decisionlog.FieldUserID, decisionlog.FieldRoomID, decisionlog.FieldMessageExcerpt, decisionlog.FieldIntent, decisionlog.FieldCapabilityKey, decisionlog.FieldGuardrailAction, decisionlog.FieldPolicyReason, decisionlog.FieldErrorCode, decisionlog.FieldModelID, decisionlog.FieldConfirmationQuestion, decisionlog.FieldConfirmationResolution:
			values[i] = new(sql.NullString)
		case decisionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionLog fields.
func (_m *DecisionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case decisionlog.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case decisionlog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case decisionlog.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case decisionlog.FieldMessageExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_excerpt", values[i])
			} else if value.Valid {
				_m.MessageExcerpt = value.String
			}
		case decisionlog.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case decisionlog.FieldCapabilityKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capability_key", values[i])
			} else if value.Valid {
				_m.CapabilityKey = value.String
			}
		case decisionlog.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case decisionlog.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case decisionlog.FieldIntentConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field intent_confidence", values[i])
			} else if value.Valid {
				_m.IntentConfidence = value.Float64
			}
		case decisionlog.FieldParameterConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_confidence", values[i])
			} else if value.Valid {
				_m.ParameterConfidence = value.Float64
			}
		case decisionlog.FieldGuardrailAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guardrail_action", values[i])
			} else if value.Valid {
				_m.GuardrailAction = value.String
			}
		case decisionlog.FieldPolicyReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_reason", values[i])
			} else if value.Valid {
				_m.PolicyReason = value.String
			}
		case decisionlog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case decisionlog.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = value.String
			}
		case decisionlog.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case decisionlog.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case decisionlog.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case decisionlog.FieldTimingsMs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timings_ms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimingsMs); err != nil {
					return fmt.Errorf("unmarshal field timings_ms: %w", err)
				}
			}
		case decisionlog.FieldConfirmationNeeded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_needed", values[i])
			} else if value.Valid {
				_m.ConfirmationNeeded = value.Bool
			}
		case decisionlog.FieldConfirmationQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_question", values[i])
			} else if value.Valid {
				_m.ConfirmationQuestion = value.String
			}
		case decisionlog.FieldConfirmationResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_resolution", values[i])
			} else if value.Valid {
				_m.ConfirmationResolution = value.String
			}
		case decisionlog.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case decisionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionLog.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionLog.
// Note that you need to call DecisionLog.Unwrap() before calling this method if this DecisionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionLog) Update() *DecisionLogUpdateOne {
	return NewDecisionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionLog) Unwrap() *DecisionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionLog) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("message_excerpt=")
	builder.WriteString(_m.MessageExcerpt)
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("capability_key=")
	builder.WriteString(_m.CapabilityKey)
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("intent_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentConfidence))
	builder.WriteString(", ")
	builder.WriteString("parameter_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParameterConfidence))
	builder.WriteString(", ")
	builder.WriteString("guardrail_action=")
	builder.WriteString(_m.GuardrailAction)
	builder.WriteString(", ")
	builder.WriteString("policy_reason=")
	builder.WriteString(_m.PolicyReason)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_code=")
	builder.WriteString(_m.ErrorCode)
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("timings_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimingsMs))
	builder.WriteString(", ")
	builder.WriteString("confirmation_needed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfirmationNeeded))
	builder.WriteString(", ")
	builder.WriteString("confirmation_question=")
	builder.WriteString(_m.ConfirmationQuestion)
	builder.WriteString(", ")
	builder.WriteString("confirmation_resolution=")
	builder.WriteString(_m.ConfirmationResolution)
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionLogs is a parsable slice of DecisionLog.
type DecisionLogs []*DecisionLog
