package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationState holds the schema definition for the ConversationState
// entity: the single authoritative per-(tenant, room, user) dialogue state.
type ConversationState struct {
	ent.Schema
}

// Mixin of the ConversationState.
func (ConversationState) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the ConversationState.
func (ConversationState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("state_id").
			Unique().
			Immutable(),
		field.String("room_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("state_type").
			Values("normal", "goal_setting", "announcement", "confirmation", "task_pending", "multi_action").
			Default("normal"),
		field.String("step").
			Optional().
			Comment("Free-form step within the flow"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Comment("Flow scratch memory; confirmation states store the pending plan here"),
		field.String("reference_type").
			Optional().
			Nillable().
			Comment("Link to an external flow entity, e.g. 'announcement'"),
		field.String("reference_id").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Comment("Hard timeout; a read past this deletes the row and reports normal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConversationState.
func (ConversationState) Indexes() []ent.Index {
	return []ent.Index{
		// At most one active state per key
		index.Fields("tenant_id", "room_id", "user_id").
			Unique(),
		// Expiry sweeps
		index.Fields("expires_at"),
	}
}
