package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Person holds the schema definition for the Person entity: people known to
// the organization (colleagues, clients) referenced in conversation. Owned by
// the person-extraction subsystem; read-only for the Brain.
type Person struct {
	ent.Schema
}

// Mixin of the Person.
func (Person) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the Person.
func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("person_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("kana").
			Optional().
			Comment("Reading for name matching"),
		field.String("relation").
			Optional().
			Comment("colleague | client | vendor | other"),
		field.String("chat_account_id").
			Optional().
			Nillable().
			Comment("Set when the person is also a chat user"),
		field.Text("notes").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Person.
func (Person) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name"),
	}
}
