// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
)

// DecisionLogCreate is the builder for creating a DecisionLog entity.
type DecisionLogCreate struct {
	config
	mutation *DecisionLogMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *DecisionLogCreate) SetTenantID(v string) *DecisionLogCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DecisionLogCreate) SetUserID(v string) *DecisionLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *DecisionLogCreate) SetRoomID(v string) *DecisionLogCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetMessageExcerpt sets the "message_excerpt" field.
func (_c *DecisionLogCreate) SetMessageExcerpt(v string) *DecisionLogCreate {
	_c.mutation.SetMessageExcerpt(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *DecisionLogCreate) SetIntent(v string) *DecisionLogCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableIntent(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetCapabilityKey sets the "capability_key" field.
func (_c *DecisionLogCreate) SetCapabilityKey(v string) *DecisionLogCreate {
	_c.mutation.SetCapabilityKey(v)
	return _c
}

// SetNillableCapabilityKey sets the "capability_key" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableCapabilityKey(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetCapabilityKey(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *DecisionLogCreate) SetParameters(v map[string]interface{}) *DecisionLogCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DecisionLogCreate) SetConfidence(v float64) *DecisionLogCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableConfidence(v *float64) *DecisionLogCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_c *DecisionLogCreate) SetIntentConfidence(v float64) *DecisionLogCreate {
	_c.mutation.SetIntentConfidence(v)
	return _c
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableIntentConfidence(v *float64) *DecisionLogCreate {
	if v != nil {
		_c.SetIntentConfidence(*v)
	}
	return _c
}

// SetParameterConfidence sets the "parameter_confidence" field.
func (_c *DecisionLogCreate) SetParameterConfidence(v float64) *DecisionLogCreate {
	_c.mutation.SetParameterConfidence(v)
	return _c
}

// SetNillableParameterConfidence sets the "parameter_confidence" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableParameterConfidence(v *float64) *DecisionLogCreate {
	if v != nil {
		_c.SetParameterConfidence(*v)
	}
	return _c
}

// SetGuardrailAction sets the "guardrail_action" field.
func (_c *DecisionLogCreate) SetGuardrailAction(v string) *DecisionLogCreate {
	_c.mutation.SetGuardrailAction(v)
	return _c
}

// SetNillableGuardrailAction sets the "guardrail_action" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableGuardrailAction(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetGuardrailAction(*v)
	}
	return _c
}

// SetPolicyReason sets the "policy_reason" field.
func (_c *DecisionLogCreate) SetPolicyReason(v string) *DecisionLogCreate {
	_c.mutation.SetPolicyReason(v)
	return _c
}

// SetNillablePolicyReason sets the "policy_reason" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillablePolicyReason(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetPolicyReason(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *DecisionLogCreate) SetSuccess(v bool) *DecisionLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableSuccess(v *bool) *DecisionLogCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *DecisionLogCreate) SetErrorCode(v string) *DecisionLogCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableErrorCode(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *DecisionLogCreate) SetTokensIn(v int) *DecisionLogCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableTokensIn(v *int) *DecisionLogCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *DecisionLogCreate) SetTokensOut(v int) *DecisionLogCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableTokensOut(v *int) *DecisionLogCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *DecisionLogCreate) SetModelID(v string) *DecisionLogCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableModelID(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetTimingsMs sets the "timings_ms" field.
func (_c *DecisionLogCreate) SetTimingsMs(v map[string]int64) *DecisionLogCreate {
	_c.mutation.SetTimingsMs(v)
	return _c
}

// SetConfirmationNeeded sets the "confirmation_needed" field.
func (_c *DecisionLogCreate) SetConfirmationNeeded(v bool) *DecisionLogCreate {
	_c.mutation.SetConfirmationNeeded(v)
	return _c
}

// SetNillableConfirmationNeeded sets the "confirmation_needed" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableConfirmationNeeded(v *bool) *DecisionLogCreate {
	if v != nil {
		_c.SetConfirmationNeeded(*v)
	}
	return _c
}

// SetConfirmationQuestion sets the "confirmation_question" field.
func (_c *DecisionLogCreate) SetConfirmationQuestion(v string) *DecisionLogCreate {
	_c.mutation.SetConfirmationQuestion(v)
	return _c
}

// SetNillableConfirmationQuestion sets the "confirmation_question" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableConfirmationQuestion(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetConfirmationQuestion(*v)
	}
	return _c
}

// SetConfirmationResolution sets the "confirmation_resolution" field.
func (_c *DecisionLogCreate) SetConfirmationResolution(v string) *DecisionLogCreate {
	_c.mutation.SetConfirmationResolution(v)
	return _c
}

// SetNillableConfirmationResolution sets the "confirmation_resolution" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableConfirmationResolution(v *string) *DecisionLogCreate {
	if v != nil {
		_c.SetConfirmationResolution(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *DecisionLogCreate) SetWarnings(v []string) *DecisionLogCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DecisionLogCreate) SetCreatedAt(v time.Time) *DecisionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DecisionLogCreate) SetNillableCreatedAt(v *time.Time) *DecisionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionLogCreate) SetID(v string) *DecisionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DecisionLogMutation object of the builder.
func (_c *DecisionLogCreate) Mutation() *DecisionLogMutation {
	return _c.mutation
}

// Save creates the DecisionLog in the database.
func (_c *DecisionLogCreate) Save(ctx context.Context) (*DecisionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionLogCreate) SaveX(ctx context.Context) *DecisionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionLogCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := decisionlog.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.IntentConfidence(); !ok {
		v := decisionlog.DefaultIntentConfidence
		_c.mutation.SetIntentConfidence(v)
	}
	if _, ok := _c.mutation.ParameterConfidence(); !ok {
		v := decisionlog.DefaultParameterConfidence
		_c.mutation.SetParameterConfidence(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := decisionlog.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := decisionlog.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := decisionlog.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.ConfirmationNeeded(); !ok {
		v := decisionlog.DefaultConfirmationNeeded
		_c.mutation.SetConfirmationNeeded(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := decisionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionLogCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DecisionLog.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := decisionlog.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DecisionLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := decisionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "DecisionLog.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := decisionlog.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "DecisionLog.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageExcerpt(); !ok {
		return &ValidationError{Name: "message_excerpt", err: errors.New(`ent: missing required field "DecisionLog.message_excerpt"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DecisionLog.confidence"`)}
	}
	if _, ok := _c.mutation.IntentConfidence(); !ok {
		return &ValidationError{Name: "intent_confidence", err: errors.New(`ent: missing required field "DecisionLog.intent_confidence"`)}
	}
	if _, ok := _c.mutation.ParameterConfidence(); !ok {
		return &ValidationError{Name: "parameter_confidence", err: errors.New(`ent: missing required field "DecisionLog.parameter_confidence"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "DecisionLog.success"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "DecisionLog.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "DecisionLog.tokens_out"`)}
	}
	if _, ok := _c.mutation.ConfirmationNeeded(); !ok {
		return &ValidationError{Name: "confirmation_needed", err: errors.New(`ent: missing required field "DecisionLog.confirmation_needed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DecisionLog.created_at"`)}
	}
	return nil
}

func (_c *DecisionLogCreate) sqlSave(ctx context.Context) (*DecisionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DecisionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionLogCreate) createSpec() (*DecisionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionlog.Table, sqlgraph.NewFieldSpec(decisionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(decisionlog.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(decisionlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(decisionlog.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.MessageExcerpt(); ok {
		_spec.SetField(decisionlog.FieldMessageExcerpt, field.TypeString, value)
		_node.MessageExcerpt = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(decisionlog.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.CapabilityKey(); ok {
		_spec.SetField(decisionlog.FieldCapabilityKey, field.TypeString, value)
		_node.CapabilityKey = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(decisionlog.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(decisionlog.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.IntentConfidence(); ok {
		_spec.SetField(decisionlog.FieldIntentConfidence, field.TypeFloat64, value)
		_node.IntentConfidence = value
	}
	if value, ok := _c.mutation.ParameterConfidence(); ok {
		_spec.SetField(decisionlog.FieldParameterConfidence, field.TypeFloat64, value)
		_node.ParameterConfidence = value
	}
	if value, ok := _c.mutation.GuardrailAction(); ok {
		_spec.SetField(decisionlog.FieldGuardrailAction, field.TypeString, value)
		_node.GuardrailAction = value
	}
	if value, ok := _c.mutation.PolicyReason(); ok {
		_spec.SetField(decisionlog.FieldPolicyReason, field.TypeString, value)
		_node.PolicyReason = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(decisionlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(decisionlog.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(decisionlog.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(decisionlog.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(decisionlog.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.TimingsMs(); ok {
		_spec.SetField(decisionlog.FieldTimingsMs, field.TypeJSON, value)
		_node.TimingsMs = value
	}
	if value, ok := _c.mutation.ConfirmationNeeded(); ok {
		_spec.SetField(decisionlog.FieldConfirmationNeeded, field.TypeBool, value)
		_node.ConfirmationNeeded = value
	}
	if value, ok := _c.mutation.ConfirmationQuestion(); ok {
		_spec.SetField(decisionlog.FieldConfirmationQuestion, field.TypeString, value)
		_node.ConfirmationQuestion = value
	}
	if value, ok := _c.mutation.ConfirmationResolution(); ok {
		_spec.SetField(decisionlog.FieldConfirmationResolution, field.TypeString, value)
		_node.ConfirmationResolution = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(decisionlog.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(decisionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DecisionLogCreateBulk is the builder for creating many DecisionLog entities in bulk.
type DecisionLogCreateBulk struct {
	config
	err      error
	builders []*DecisionLogCreate
}

// Save creates the DecisionLog entities in the database.
func (_c *DecisionLogCreateBulk) Save(ctx context.Context) ([]*DecisionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionLogCreateBulk) SaveX(ctx context.Context) []*DecisionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
