package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TenantConfig holds the schema definition for the TenantConfig entity:
// per-tenant operator settings read by the Brain through a 1h TTL cache.
type TenantConfig struct {
	ent.Schema
}

// Mixin of the TenantConfig.
func (TenantConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{TenantMixin{}}
}

// Fields of the TenantConfig.
func (TenantConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.String("operator_account_id").
			NotEmpty(),
		field.String("admin_room_id").
			NotEmpty(),
		field.String("admin_dm_room_id").
			Optional(),
		field.String("timezone").
			Default("Asia/Tokyo"),
		field.Float("room_match_threshold").
			Default(0.8).
			Comment("Auto-pick threshold for announcement room resolution"),
		field.String("webhook_secret").
			NotEmpty().
			Sensitive().
			Comment("Base64 HMAC secret for inbound webhook signatures"),
		field.String("chat_api_token").
			NotEmpty().
			Sensitive(),
		field.Float("monetary_confirm_threshold").
			Default(100000).
			Comment("Amounts at or above this always require confirmation"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TenantConfig.
func (TenantConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id").
			Unique(),
	}
}
