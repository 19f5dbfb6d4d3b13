package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnnouncementExecution holds the schema definition for the
// AnnouncementExecution entity: one row per announcement run. The
// (announcement, execution_number) pair is unique so at-least-once job
// delivery stays idempotent.
type AnnouncementExecution struct {
	ent.Schema
}

// Mixin of the AnnouncementExecution.
func (AnnouncementExecution) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the AnnouncementExecution.
func (AnnouncementExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("announcement_id").
			NotEmpty().
			Immutable(),
		field.Int("execution_number").
			Immutable(),
		field.Bool("message_sent").
			Default(false),
		field.String("sent_message_id").
			Optional().
			Nillable(),
		field.Int("tasks_created").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.JSON("members_snapshot", []string{}).
			Optional().
			Comment("Room member account ids at execution time"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "partial_failure", "failed", "skipped").
			Default("pending"),
		field.String("skip_reason").
			Optional().
			Comment("weekend | holiday"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AnnouncementExecution.
func (AnnouncementExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("announcement", Announcement.Type).
			Ref("executions").
			Field("announcement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnnouncementExecution.
func (AnnouncementExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("announcement_id", "execution_number").
			Unique(),
		index.Fields("tenant_id", "started_at"),
	}
}
