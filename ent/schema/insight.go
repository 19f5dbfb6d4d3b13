package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity: findings from
// the pattern/insight detection jobs, including announcement recurrence
// proposals raised by the Brain.
type Insight struct {
	ent.Schema
}

// Mixin of the Insight.
func (Insight) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Comment("announcement_recurrence, workload, ..."),
		field.Text("summary").
			NotEmpty(),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("reference_type").
			Optional(),
		field.String("reference_id").
			Optional(),
		field.Bool("resolved").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "priority", "created_at"),
		index.Fields("tenant_id", "resolved"),
	}
}
