package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Department holds the schema definition for the Department entity.
// Parent links form an id graph in the database; readers walk it as a
// depth-bounded tree, never as in-memory cycles.
type Department struct {
	ent.Schema
}

// Mixin of the Department.
func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Department.
func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("department_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("parent_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the Department.
func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name"),
	}
}
