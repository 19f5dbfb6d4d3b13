package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledJob holds the schema definition for the ScheduledJob entity: the
// DB-backed job store consumed by the schedule worker pool. Delivery is
// at-least-once; job bodies are idempotent via their payload keys.
type ScheduledJob struct {
	ent.Schema
}

// Mixin of the ScheduledJob.
func (ScheduledJob) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the ScheduledJob.
func (ScheduledJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Comment("announcement_execute, summary_regen, ..."),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("run_at").
			Comment("Next due time"),
		field.String("cron_expression").
			Optional().
			Nillable().
			Comment("Non-nil for recurring jobs; run_at is advanced after each run"),
		field.Enum("status").
			Values("pending", "claimed", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id, for orphan recovery"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledJob.
func (ScheduledJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "run_at"),
		index.Fields("tenant_id", "kind"),
	}
}
