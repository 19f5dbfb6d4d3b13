package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionLog holds the schema definition for the DecisionLog entity.
// Exactly one row is written per Brain invocation (success, refusal or error).
// Retained for 90 days; see pkg/cleanup.
type DecisionLog struct {
	ent.Schema
}

// Mixin of the DecisionLog.
func (DecisionLog) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the DecisionLog.
func (DecisionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("room_id").
			NotEmpty(),
		field.String("message_excerpt").
			Comment("Scrubbed, truncated; never the full message"),
		field.String("intent").
			Optional(),
		field.String("capability_key").
			Optional(),
		field.JSON("parameters", map[string]interface{}{}).
			Optional().
			Comment("Capability-specific, scrubbed before write"),
		field.Float("confidence").
			Default(0),
		field.Float("intent_confidence").
			Default(0),
		field.Float("parameter_confidence").
			Default(0),
		field.String("guardrail_action").
			Optional().
			Comment("none | confirm | block"),
		field.String("policy_reason").
			Optional(),
		field.Bool("success").
			Default(false),
		field.String("error_code").
			Optional().
			Comment("Error-kind name only, never raw error strings"),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.String("model_id").
			Optional(),
		field.JSON("timings_ms", map[string]int64{}).
			Optional().
			Comment("Per-layer timing breakdown"),
		field.Bool("confirmation_needed").
			Default(false),
		field.String("confirmation_question").
			Optional(),
		field.String("confirmation_resolution").
			Optional().
			Comment("accepted | rejected | choice:N"),
		field.Strings("warnings").
			Optional().
			Comment("e.g. partial_memory, llm_fallback"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DecisionLog.
func (DecisionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "user_id", "created_at"),
	}
}
