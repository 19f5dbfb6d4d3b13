package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CeoTeaching holds the schema definition for the CeoTeaching entity:
// canonical value statements extracted from a principal's utterances,
// consulted at highest precedence by Understanding and Decision.
type CeoTeaching struct {
	ent.Schema
}

// Mixin of the CeoTeaching.
func (CeoTeaching) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the CeoTeaching.
func (CeoTeaching) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("teaching_id").
			Unique().
			Immutable(),
		field.String("ceo_user_id").
			NotEmpty(),
		field.Text("statement").
			NotEmpty(),
		field.Text("reasoning").
			Optional(),
		field.Text("context").
			Optional(),
		field.Enum("category").
			Values("mission", "vision", "values", "choice_theory", "sdt", "servant",
				"psych_safety", "sales", "hr", "accounting", "general", "culture",
				"communication", "staff_guidance", "other").
			Default("general"),
		field.Int("priority").
			Default(5).
			Min(1).
			Max(10),
		field.Bool("is_active").
			Default(true),
		field.Int("usage_count").
			Default(0),
		field.Enum("validation_status").
			Values("pending", "verified", "alert_pending", "overridden").
			Default("pending"),
		field.String("supersedes_id").
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

// Indexes of the CeoTeaching.
func (CeoTeaching) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "is_active", "validation_status"),
		index.Fields("tenant_id", "category"),
	}
}
