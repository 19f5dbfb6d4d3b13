package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/userpreference"
	"github.com/wisehub-ai/wisehub/pkg/database"
)

// RecordPreference upserts learned interaction preferences for a user.
// settings entries merge over existing ones; tone replaces only when set.
func (l *Loader) RecordPreference(ctx context.Context, tenantID, userID, tone string, settings map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return database.TenantTx(ctx, l.client, tenantID, func(tx *ent.Tx) error {
		existing, err := tx.UserPreference.Query().
			Where(
				userpreference.TenantID(tenantID),
				userpreference.UserID(userID),
			).
			Only(ctx)
		switch {
		case err == nil:
			merged := existing.Settings
			if merged == nil {
				merged = map[string]any{}
			}
			for k, v := range settings {
				merged[k] = v
			}
			upd := tx.UserPreference.UpdateOne(existing).SetSettings(merged)
			if tone != "" {
				upd.SetTone(tone)
			}
			_, err = upd.Save(ctx)
		case ent.IsNotFound(err):
			create := tx.UserPreference.Create().
				SetID(uuid.New().String()).
				SetTenantID(tenantID).
				SetUserID(userID).
				SetSettings(settings)
			if tone != "" {
				create.SetTone(tone)
			}
			_, err = create.Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert user preference: %w", err)
		}
		return nil
	})
}
