package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnnouncementPattern holds the schema definition for the AnnouncementPattern
// entity: a normalized announcement request seen repeatedly. Three or more
// occurrences raise a recurrence proposal.
type AnnouncementPattern struct {
	ent.Schema
}

// Mixin of the AnnouncementPattern.
func (AnnouncementPattern) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the AnnouncementPattern.
func (AnnouncementPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.Text("normalized_request").
			NotEmpty(),
		field.String("request_hash").
			NotEmpty().
			Immutable(),
		field.Int("occurrence_count").
			Default(1),
		field.Strings("requester_ids").
			Optional(),
		field.Enum("status").
			Values("active", "addressed", "dismissed").
			Default("active"),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
	}
}

// Indexes of the AnnouncementPattern.
func (AnnouncementPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "request_hash").
			Unique(),
		index.Fields("tenant_id", "status", "occurrence_count"),
	}
}
