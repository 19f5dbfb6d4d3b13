package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Announcement holds the schema definition for the Announcement entity.
// Lifecycle: pending → (pending_room) → confirmed → scheduled|executing →
// completed|failed; cancelled is reachable from any non-terminal status.
type Announcement struct {
	ent.Schema
}

// Mixin of the Announcement.
func (Announcement) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Announcement.
func (Announcement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("announcement_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional(),
		field.Text("message_body").
			NotEmpty(),
		field.String("target_room_id").
			Optional().
			Nillable().
			Comment("Nil while room resolution is pending"),
		field.Bool("create_tasks").
			Default(false),
		field.Strings("task_include_ids").
			Optional(),
		field.Strings("task_exclude_ids").
			Optional(),
		field.Enum("schedule_type").
			Values("immediate", "one_time", "recurring").
			Default("immediate"),
		field.Time("scheduled_at").
			Optional().
			Nillable().
			Comment("Set for one_time schedules"),
		field.String("cron_expression").
			Optional().
			Nillable().
			Comment("Set for recurring schedules"),
		field.String("timezone").
			Default("Asia/Tokyo"),
		field.Bool("skip_holiday").
			Default(false),
		field.Bool("skip_weekend").
			Default(false),
		field.Time("task_deadline").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "pending_room", "confirmed", "scheduled", "executing",
				"completed", "failed", "cancelled", "paused").
			Default("pending"),
		field.String("requester_account_id").
			NotEmpty(),
		field.String("source_room_id").
			NotEmpty(),
		field.String("confirmation_message_id").
			Optional().
			Nillable(),
		field.Time("next_execution_at").
			Optional().
			Nillable(),
		field.Time("last_execution_at").
			Optional().
			Nillable(),
		field.Int("execution_count").
			Default(0),
		field.Int("max_executions").
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

// Edges of the Announcement.
func (Announcement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", AnnouncementExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Announcement.
func (Announcement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		// Pending-confirmation lookup for auto-cancel of stale requests
		index.Fields("tenant_id", "requester_account_id", "status"),
		index.Fields("tenant_id", "next_execution_at"),
	}
}
