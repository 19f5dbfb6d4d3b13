package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeatureFlag holds the schema definition for the FeatureFlag entity.
// A row with an empty tenant_id is the global default; a tenant-scoped row
// overrides it.
type FeatureFlag struct {
	ent.Schema
}

// Fields of the FeatureFlag.
func (FeatureFlag) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("flag_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Optional().
			Immutable().
			Comment("Empty for the global default row"),
		field.String("name").
			NotEmpty(),
		field.Bool("enabled").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FeatureFlag.
func (FeatureFlag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").
			Unique(),
	}
}
