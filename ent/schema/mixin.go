package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// TenantMixin adds the tenant_id column carried by every persisted entity.
// Row-level security policies in the migrations match this column against
// the per-transaction app.tenant_id setting; application queries must still
// include an explicit tenant predicate.
type TenantMixin struct {
	mixin.Schema
}

// Fields of the TenantMixin.
func (TenantMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
	}
}
