package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal holds the schema definition for the Goal entity: personal goals
// captured by the goal-setting flow.
type Goal struct {
	ent.Schema
}

// Mixin of the Goal.
func (Goal) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Goal.
func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("goal_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.Text("title").
			NotEmpty(),
		field.Text("why").
			Optional().
			Comment("Motivation captured during goal setting"),
		field.Text("first_step").
			Optional(),
		field.Enum("status").
			Values("active", "achieved", "abandoned").
			Default("active"),
		field.Time("target_date").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Goal.
func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_id", "status"),
	}
}
