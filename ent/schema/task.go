package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: the local mirror of
// chat-service tasks, owned by the task-sync subsystem.
type Task struct {
	ent.Schema
}

// Mixin of the Task.
func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("chat_task_id").
			Optional().
			Comment("Id on the chat service, when mirrored"),
		field.String("room_id").
			NotEmpty(),
		field.String("assignee_user_id").
			NotEmpty(),
		field.Text("body").
			NotEmpty(),
		field.Enum("status").
			Values("open", "done", "cancelled").
			Default("open"),
		field.Time("deadline").
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

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "assignee_user_id", "status"),
		index.Fields("tenant_id", "room_id", "status"),
	}
}
