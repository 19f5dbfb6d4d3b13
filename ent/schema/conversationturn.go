package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationTurn holds the schema definition for the ConversationTurn
// entity: append-only dialogue history per (tenant, room, user).
type ConversationTurn struct {
	ent.Schema
}

// Mixin of the ConversationTurn.
func (ConversationTurn) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the ConversationTurn.
func (ConversationTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("turn_id").
			Unique().
			Immutable(),
		field.String("room_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			NotEmpty(),
		field.Bool("summarized").
			Default(false).
			Comment("Folded into the rolling summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ConversationTurn.
func (ConversationTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "room_id", "user_id", "created_at"),
		index.Fields("tenant_id", "summarized"),
	}
}
