package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationSummary holds the schema definition for the ConversationSummary
// entity: the rolling summary of turns older than the recent window.
type ConversationSummary struct {
	ent.Schema
}

// Mixin of the ConversationSummary.
func (ConversationSummary) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the ConversationSummary.
func (ConversationSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("room_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Text("summary").
			NotEmpty(),
		field.Int("turns_covered").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConversationSummary.
func (ConversationSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "room_id", "user_id").
			Unique(),
	}
}
