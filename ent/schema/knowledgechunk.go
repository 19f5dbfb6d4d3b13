package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeChunk holds the schema definition for the KnowledgeChunk entity:
// the metadata row for an ingested document chunk. The embedding itself
// lives in the vector store keyed by this id; the ingestion pipeline owns
// both.
type KnowledgeChunk struct {
	ent.Schema
}

// Mixin of the KnowledgeChunk.
func (KnowledgeChunk) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the KnowledgeChunk.
func (KnowledgeChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.String("document_id").
			NotEmpty(),
		field.String("title").
			Optional(),
		field.Text("content").
			NotEmpty(),
		field.Enum("classification").
			Values("public", "internal", "confidential", "restricted").
			Default("internal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the KnowledgeChunk.
func (KnowledgeChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "document_id"),
	}
}
