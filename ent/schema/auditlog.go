package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity, a separate
// append-only evidence stream.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("actor").
			NotEmpty().
			Comment("Internal user id, or 'system'"),
		field.String("action").
			NotEmpty(),
		field.String("resource_type").
			NotEmpty(),
		field.String("resource_id").
			Optional(),
		field.Enum("classification").
			Values("public", "internal", "confidential", "restricted").
			Default("internal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "resource_type", "resource_id"),
	}
}
