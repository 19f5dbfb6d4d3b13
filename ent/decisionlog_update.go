// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// DecisionLogUpdate is the builder for updating DecisionLog entities.
type DecisionLogUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionLogMutation
}

// Where appends a list predicates to the DecisionLogUpdate builder.
func (_u *DecisionLogUpdate) Where(ps ...predicate.DecisionLog) *DecisionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DecisionLogUpdate) SetUserID(v string) *DecisionLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableUserID(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *DecisionLogUpdate) SetRoomID(v string) *DecisionLogUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableRoomID(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetMessageExcerpt sets the "message_excerpt" field.
func (_u *DecisionLogUpdate) SetMessageExcerpt(v string) *DecisionLogUpdate {
	_u.mutation.SetMessageExcerpt(v)
	return _u
}

// SetNillableMessageExcerpt sets the "message_excerpt" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableMessageExcerpt(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetMessageExcerpt(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *DecisionLogUpdate) SetIntent(v string) *DecisionLogUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableIntent(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *DecisionLogUpdate) ClearIntent() *DecisionLogUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetCapabilityKey sets the "capability_key" field.
func (_u *DecisionLogUpdate) SetCapabilityKey(v string) *DecisionLogUpdate {
	_u.mutation.SetCapabilityKey(v)
	return _u
}

// SetNillableCapabilityKey sets the "capability_key" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableCapabilityKey(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetCapabilityKey(*v)
	}
	return _u
}

// ClearCapabilityKey clears the value of the "capability_key" field.
func (_u *DecisionLogUpdate) ClearCapabilityKey() *DecisionLogUpdate {
	_u.mutation.ClearCapabilityKey()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *DecisionLogUpdate) SetParameters(v map[string]interface{}) *DecisionLogUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *DecisionLogUpdate) ClearParameters() *DecisionLogUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DecisionLogUpdate) SetConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableConfidence(v *float64) *DecisionLogUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DecisionLogUpdate) AddConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *DecisionLogUpdate) SetIntentConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableIntentConfidence(v *float64) *DecisionLogUpdate {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *DecisionLogUpdate) AddIntentConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// SetParameterConfidence sets the "parameter_confidence" field.
func (_u *DecisionLogUpdate) SetParameterConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.ResetParameterConfidence()
	_u.mutation.SetParameterConfidence(v)
	return _u
}

// SetNillableParameterConfidence sets the "parameter_confidence" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableParameterConfidence(v *float64) *DecisionLogUpdate {
	if v != nil {
		_u.SetParameterConfidence(*v)
	}
	return _u
}

// AddParameterConfidence adds value to the "parameter_confidence" field.
func (_u *DecisionLogUpdate) AddParameterConfidence(v float64) *DecisionLogUpdate {
	_u.mutation.AddParameterConfidence(v)
	return _u
}

// SetGuardrailAction sets the "guardrail_action" field.
func (_u *DecisionLogUpdate) SetGuardrailAction(v string) *DecisionLogUpdate {
	_u.mutation.SetGuardrailAction(v)
	return _u
}

// SetNillableGuardrailAction sets the "guardrail_action" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableGuardrailAction(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetGuardrailAction(*v)
	}
	return _u
}

// ClearGuardrailAction clears the value of the "guardrail_action" field.
func (_u *DecisionLogUpdate) ClearGuardrailAction() *DecisionLogUpdate {
	_u.mutation.ClearGuardrailAction()
	return _u
}

// SetPolicyReason sets the "policy_reason" field.
func (_u *DecisionLogUpdate) SetPolicyReason(v string) *DecisionLogUpdate {
	_u.mutation.SetPolicyReason(v)
	return _u
}

// SetNillablePolicyReason sets the "policy_reason" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillablePolicyReason(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetPolicyReason(*v)
	}
	return _u
}

// ClearPolicyReason clears the value of the "policy_reason" field.
func (_u *DecisionLogUpdate) ClearPolicyReason() *DecisionLogUpdate {
	_u.mutation.ClearPolicyReason()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *DecisionLogUpdate) SetSuccess(v bool) *DecisionLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableSuccess(v *bool) *DecisionLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DecisionLogUpdate) SetErrorCode(v string) *DecisionLogUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableErrorCode(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *DecisionLogUpdate) ClearErrorCode() *DecisionLogUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *DecisionLogUpdate) SetTokensIn(v int) *DecisionLogUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableTokensIn(v *int) *DecisionLogUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *DecisionLogUpdate) AddTokensIn(v int) *DecisionLogUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *DecisionLogUpdate) SetTokensOut(v int) *DecisionLogUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableTokensOut(v *int) *DecisionLogUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *DecisionLogUpdate) AddTokensOut(v int) *DecisionLogUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *DecisionLogUpdate) SetModelID(v string) *DecisionLogUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableModelID(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *DecisionLogUpdate) ClearModelID() *DecisionLogUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetTimingsMs sets the "timings_ms" field.
func (_u *DecisionLogUpdate) SetTimingsMs(v map[string]int64) *DecisionLogUpdate {
	_u.mutation.SetTimingsMs(v)
	return _u
}

// ClearTimingsMs clears the value of the "timings_ms" field.
func (_u *DecisionLogUpdate) ClearTimingsMs() *DecisionLogUpdate {
	_u.mutation.ClearTimingsMs()
	return _u
}

// SetConfirmationNeeded sets the "confirmation_needed" field.
func (_u *DecisionLogUpdate) SetConfirmationNeeded(v bool) *DecisionLogUpdate {
	_u.mutation.SetConfirmationNeeded(v)
	return _u
}

// SetNillableConfirmationNeeded sets the "confirmation_needed" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableConfirmationNeeded(v *bool) *DecisionLogUpdate {
	if v != nil {
		_u.SetConfirmationNeeded(*v)
	}
	return _u
}

// SetConfirmationQuestion sets the "confirmation_question" field.
func (_u *DecisionLogUpdate) SetConfirmationQuestion(v string) *DecisionLogUpdate {
	_u.mutation.SetConfirmationQuestion(v)
	return _u
}

// SetNillableConfirmationQuestion sets the "confirmation_question" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableConfirmationQuestion(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetConfirmationQuestion(*v)
	}
	return _u
}

// ClearConfirmationQuestion clears the value of the "confirmation_question" field.
func (_u *DecisionLogUpdate) ClearConfirmationQuestion() *DecisionLogUpdate {
	_u.mutation.ClearConfirmationQuestion()
	return _u
}

// SetConfirmationResolution sets the "confirmation_resolution" field.
func (_u *DecisionLogUpdate) SetConfirmationResolution(v string) *DecisionLogUpdate {
	_u.mutation.SetConfirmationResolution(v)
	return _u
}

// SetNillableConfirmationResolution sets the "confirmation_resolution" field if the given value is not nil.
func (_u *DecisionLogUpdate) SetNillableConfirmationResolution(v *string) *DecisionLogUpdate {
	if v != nil {
		_u.SetConfirmationResolution(*v)
	}
	return _u
}

// ClearConfirmationResolution clears the value of the "confirmation_resolution" field.
func (_u *DecisionLogUpdate) ClearConfirmationResolution() *DecisionLogUpdate {
	_u.mutation.ClearConfirmationResolution()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *DecisionLogUpdate) SetWarnings(v []string) *DecisionLogUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *DecisionLogUpdate) AppendWarnings(v []string) *DecisionLogUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *DecisionLogUpdate) ClearWarnings() *DecisionLogUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the DecisionLogMutation object of the builder.
func (_u *DecisionLogUpdate) Mutation() *DecisionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionLogUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := decisionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomID(); ok {
		if err := decisionlog.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.room_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionlog.Table, decisionlog.Columns, sqlgraph.NewFieldSpec(decisionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(decisionlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(decisionlog.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageExcerpt(); ok {
		_spec.SetField(decisionlog.FieldMessageExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(decisionlog.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(decisionlog.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.CapabilityKey(); ok {
		_spec.SetField(decisionlog.FieldCapabilityKey, field.TypeString, value)
	}
	if _u.mutation.CapabilityKeyCleared() {
		_spec.ClearField(decisionlog.FieldCapabilityKey, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(decisionlog.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(decisionlog.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(decisionlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(decisionlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(decisionlog.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(decisionlog.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ParameterConfidence(); ok {
		_spec.SetField(decisionlog.FieldParameterConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParameterConfidence(); ok {
		_spec.AddField(decisionlog.FieldParameterConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GuardrailAction(); ok {
		_spec.SetField(decisionlog.FieldGuardrailAction, field.TypeString, value)
	}
	if _u.mutation.GuardrailActionCleared() {
		_spec.ClearField(decisionlog.FieldGuardrailAction, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyReason(); ok {
		_spec.SetField(decisionlog.FieldPolicyReason, field.TypeString, value)
	}
	if _u.mutation.PolicyReasonCleared() {
		_spec.ClearField(decisionlog.FieldPolicyReason, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(decisionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(decisionlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(decisionlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(decisionlog.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(decisionlog.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(decisionlog.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(decisionlog.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(decisionlog.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(decisionlog.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.TimingsMs(); ok {
		_spec.SetField(decisionlog.FieldTimingsMs, field.TypeJSON, value)
	}
	if _u.mutation.TimingsMsCleared() {
		_spec.ClearField(decisionlog.FieldTimingsMs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfirmationNeeded(); ok {
		_spec.SetField(decisionlog.FieldConfirmationNeeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationQuestion(); ok {
		_spec.SetField(decisionlog.FieldConfirmationQuestion, field.TypeString, value)
	}
	if _u.mutation.ConfirmationQuestionCleared() {
		_spec.ClearField(decisionlog.FieldConfirmationQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmationResolution(); ok {
		_spec.SetField(decisionlog.FieldConfirmationResolution, field.TypeString, value)
	}
	if _u.mutation.ConfirmationResolutionCleared() {
		_spec.ClearField(decisionlog.FieldConfirmationResolution, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(decisionlog.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionlog.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(decisionlog.FieldWarnings, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionLogUpdateOne is the builder for updating a single DecisionLog entity.
type DecisionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *DecisionLogUpdateOne) SetUserID(v string) *DecisionLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableUserID(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *DecisionLogUpdateOne) SetRoomID(v string) *DecisionLogUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableRoomID(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetMessageExcerpt sets the "message_excerpt" field.
func (_u *DecisionLogUpdateOne) SetMessageExcerpt(v string) *DecisionLogUpdateOne {
	_u.mutation.SetMessageExcerpt(v)
	return _u
}

// SetNillableMessageExcerpt sets the "message_excerpt" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableMessageExcerpt(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetMessageExcerpt(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *DecisionLogUpdateOne) SetIntent(v string) *DecisionLogUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableIntent(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *DecisionLogUpdateOne) ClearIntent() *DecisionLogUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetCapabilityKey sets the "capability_key" field.
func (_u *DecisionLogUpdateOne) SetCapabilityKey(v string) *DecisionLogUpdateOne {
	_u.mutation.SetCapabilityKey(v)
	return _u
}

// SetNillableCapabilityKey sets the "capability_key" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableCapabilityKey(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetCapabilityKey(*v)
	}
	return _u
}

// ClearCapabilityKey clears the value of the "capability_key" field.
func (_u *DecisionLogUpdateOne) ClearCapabilityKey() *DecisionLogUpdateOne {
	_u.mutation.ClearCapabilityKey()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *DecisionLogUpdateOne) SetParameters(v map[string]interface{}) *DecisionLogUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *DecisionLogUpdateOne) ClearParameters() *DecisionLogUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DecisionLogUpdateOne) SetConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableConfidence(v *float64) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DecisionLogUpdateOne) AddConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *DecisionLogUpdateOne) SetIntentConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableIntentConfidence(v *float64) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *DecisionLogUpdateOne) AddIntentConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// SetParameterConfidence sets the "parameter_confidence" field.
func (_u *DecisionLogUpdateOne) SetParameterConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.ResetParameterConfidence()
	_u.mutation.SetParameterConfidence(v)
	return _u
}

// SetNillableParameterConfidence sets the "parameter_confidence" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableParameterConfidence(v *float64) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetParameterConfidence(*v)
	}
	return _u
}

// AddParameterConfidence adds value to the "parameter_confidence" field.
func (_u *DecisionLogUpdateOne) AddParameterConfidence(v float64) *DecisionLogUpdateOne {
	_u.mutation.AddParameterConfidence(v)
	return _u
}

// SetGuardrailAction sets the "guardrail_action" field.
func (_u *DecisionLogUpdateOne) SetGuardrailAction(v string) *DecisionLogUpdateOne {
	_u.mutation.SetGuardrailAction(v)
	return _u
}

// SetNillableGuardrailAction sets the "guardrail_action" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableGuardrailAction(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetGuardrailAction(*v)
	}
	return _u
}

// ClearGuardrailAction clears the value of the "guardrail_action" field.
func (_u *DecisionLogUpdateOne) ClearGuardrailAction() *DecisionLogUpdateOne {
	_u.mutation.ClearGuardrailAction()
	return _u
}

// SetPolicyReason sets the "policy_reason" field.
func (_u *DecisionLogUpdateOne) SetPolicyReason(v string) *DecisionLogUpdateOne {
	_u.mutation.SetPolicyReason(v)
	return _u
}

// SetNillablePolicyReason sets the "policy_reason" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillablePolicyReason(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetPolicyReason(*v)
	}
	return _u
}

// ClearPolicyReason clears the value of the "policy_reason" field.
func (_u *DecisionLogUpdateOne) ClearPolicyReason() *DecisionLogUpdateOne {
	_u.mutation.ClearPolicyReason()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *DecisionLogUpdateOne) SetSuccess(v bool) *DecisionLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableSuccess(v *bool) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DecisionLogUpdateOne) SetErrorCode(v string) *DecisionLogUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableErrorCode(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *DecisionLogUpdateOne) ClearErrorCode() *DecisionLogUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *DecisionLogUpdateOne) SetTokensIn(v int) *DecisionLogUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableTokensIn(v *int) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *DecisionLogUpdateOne) AddTokensIn(v int) *DecisionLogUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *DecisionLogUpdateOne) SetTokensOut(v int) *DecisionLogUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableTokensOut(v *int) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *DecisionLogUpdateOne) AddTokensOut(v int) *DecisionLogUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *DecisionLogUpdateOne) SetModelID(v string) *DecisionLogUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableModelID(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *DecisionLogUpdateOne) ClearModelID() *DecisionLogUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetTimingsMs sets the "timings_ms" field.
func (_u *DecisionLogUpdateOne) SetTimingsMs(v map[string]int64) *DecisionLogUpdateOne {
	_u.mutation.SetTimingsMs(v)
	return _u
}

// ClearTimingsMs clears the value of the "timings_ms" field.
func (_u *DecisionLogUpdateOne) ClearTimingsMs() *DecisionLogUpdateOne {
	_u.mutation.ClearTimingsMs()
	return _u
}

// SetConfirmationNeeded sets the "confirmation_needed" field.
func (_u *DecisionLogUpdateOne) SetConfirmationNeeded(v bool) *DecisionLogUpdateOne {
	_u.mutation.SetConfirmationNeeded(v)
	return _u
}

// SetNillableConfirmationNeeded sets the "confirmation_needed" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableConfirmationNeeded(v *bool) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetConfirmationNeeded(*v)
	}
	return _u
}

// SetConfirmationQuestion sets the "confirmation_question" field.
func (_u *DecisionLogUpdateOne) SetConfirmationQuestion(v string) *DecisionLogUpdateOne {
	_u.mutation.SetConfirmationQuestion(v)
	return _u
}

// SetNillableConfirmationQuestion sets the "confirmation_question" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableConfirmationQuestion(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetConfirmationQuestion(*v)
	}
	return _u
}

// ClearConfirmationQuestion clears the value of the "confirmation_question" field.
func (_u *DecisionLogUpdateOne) ClearConfirmationQuestion() *DecisionLogUpdateOne {
	_u.mutation.ClearConfirmationQuestion()
	return _u
}

// SetConfirmationResolution sets the "confirmation_resolution" field.
func (_u *DecisionLogUpdateOne) SetConfirmationResolution(v string) *DecisionLogUpdateOne {
	_u.mutation.SetConfirmationResolution(v)
	return _u
}

// SetNillableConfirmationResolution sets the "confirmation_resolution" field if the given value is not nil.
func (_u *DecisionLogUpdateOne) SetNillableConfirmationResolution(v *string) *DecisionLogUpdateOne {
	if v != nil {
		_u.SetConfirmationResolution(*v)
	}
	return _u
}

// ClearConfirmationResolution clears the value of the "confirmation_resolution" field.
func (_u *DecisionLogUpdateOne) ClearConfirmationResolution() *DecisionLogUpdateOne {
	_u.mutation.ClearConfirmationResolution()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *DecisionLogUpdateOne) SetWarnings(v []string) *DecisionLogUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *DecisionLogUpdateOne) AppendWarnings(v []string) *DecisionLogUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *DecisionLogUpdateOne) ClearWarnings() *DecisionLogUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the DecisionLogMutation object of the builder.
func (_u *DecisionLogUpdateOne) Mutation() *DecisionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionLogUpdate builder.
func (_u *DecisionLogUpdateOne) Where(ps ...predicate.DecisionLog) *DecisionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionLogUpdateOne) Select(field string, fields ...string) *DecisionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionLog entity.
func (_u *DecisionLogUpdateOne) Save(ctx context.Context) (*DecisionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionLogUpdateOne) SaveX(ctx context.Context) *DecisionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionLogUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := decisionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomID(); ok {
		if err := decisionlog.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.room_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionLogUpdateOne) sqlSave(ctx context.Context) (_node *DecisionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionlog.Table, decisionlog.Columns, sqlgraph.NewFieldSpec(decisionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionlog.FieldID)
		for _, f := range fields {
			if !decisionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(decisionlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(decisionlog.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageExcerpt(); ok {
		_spec.SetField(decisionlog.FieldMessageExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(decisionlog.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(decisionlog.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.CapabilityKey(); ok {
		_spec.SetField(decisionlog.FieldCapabilityKey, field.TypeString, value)
	}
	if _u.mutation.CapabilityKeyCleared() {
		_spec.ClearField(decisionlog.FieldCapabilityKey, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(decisionlog.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(decisionlog.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(decisionlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(decisionlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(decisionlog.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(decisionlog.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ParameterConfidence(); ok {
		_spec.SetField(decisionlog.FieldParameterConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParameterConfidence(); ok {
		_spec.AddField(decisionlog.FieldParameterConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GuardrailAction(); ok {
		_spec.SetField(decisionlog.FieldGuardrailAction, field.TypeString, value)
	}
	if _u.mutation.GuardrailActionCleared() {
		_spec.ClearField(decisionlog.FieldGuardrailAction, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyReason(); ok {
		_spec.SetField(decisionlog.FieldPolicyReason, field.TypeString, value)
	}
	if _u.mutation.PolicyReasonCleared() {
		_spec.ClearField(decisionlog.FieldPolicyReason, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(decisionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(decisionlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(decisionlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(decisionlog.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(decisionlog.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(decisionlog.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(decisionlog.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(decisionlog.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(decisionlog.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.TimingsMs(); ok {
		_spec.SetField(decisionlog.FieldTimingsMs, field.TypeJSON, value)
	}
	if _u.mutation.TimingsMsCleared() {
		_spec.ClearField(decisionlog.FieldTimingsMs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfirmationNeeded(); ok {
		_spec.SetField(decisionlog.FieldConfirmationNeeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationQuestion(); ok {
		_spec.SetField(decisionlog.FieldConfirmationQuestion, field.TypeString, value)
	}
	if _u.mutation.ConfirmationQuestionCleared() {
		_spec.ClearField(decisionlog.FieldConfirmationQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmationResolution(); ok {
		_spec.SetField(decisionlog.FieldConfirmationResolution, field.TypeString, value)
	}
	if _u.mutation.ConfirmationResolutionCleared() {
		_spec.ClearField(decisionlog.FieldConfirmationResolution, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(decisionlog.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionlog.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(decisionlog.FieldWarnings, field.TypeJSON)
	}
	_node = &DecisionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
