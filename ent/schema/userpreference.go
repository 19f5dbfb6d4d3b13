package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserPreference holds the schema definition for the UserPreference entity:
// one row per user with learned interaction preferences.
type UserPreference struct {
	ent.Schema
}

// Mixin of the UserPreference.
func (UserPreference) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the UserPreference.
func (UserPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("preference_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("tone").
			Optional().
			Comment("formal | casual"),
		field.String("locale").
			Default("ja"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Free-form learned preferences"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserPreference.
func (UserPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_id").
			Unique(),
	}
}
