package handlers

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// TeachingRecord stores a principal's value statement. New teachings start
// pending; one that contradicts a verified statement is flagged for operator
// review instead of silently superseding it.
func (s *Set) TeachingRecord(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	statement, _ := params["statement"].(string)
	categoryName, _ := params["category"].(string)
	category := ceoteaching.CategoryGeneral
	if categoryName != "" {
		if c := ceoteaching.Category(categoryName); validCategory(c) {
			category = c
		}
	}

	status := ceoteaching.ValidationStatusPending
	conflictID := s.findContradiction(ctx, env.TenantID, statement)
	if conflictID != "" {
		status = ceoteaching.ValidationStatusAlertPending
	}

	var row *ent.CeoTeaching
	err := database.TenantTx(ctx, s.deps.Client, env.TenantID, func(tx *ent.Tx) error {
		var err error
		row, err = tx.CeoTeaching.Create().
			SetID(uuid.New().String()).
			SetTenantID(env.TenantID).
			SetCeoUserID(env.UserID).
			SetStatement(statement).
			SetCategory(category).
			SetValidationStatus(status).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, execerr.New(execerr.KindInternal, err)
	}

	if conflictID != "" {
		s.deps.Alerts.TeachingAlert(ctx, env.TenantID, row.ID)
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "承知しました。ただ、以前の方針と異なる可能性があるため、確認のうえ反映します。",
			Data:        map[string]any{"teaching_id": row.ID, "conflicts_with": conflictID},
		}, nil
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: "承知しました。「" + statement + "」を方針として記録しました。",
		Data:        map[string]any{"teaching_id": row.ID},
	}, nil
}

// findContradiction looks for a verified teaching whose statement is the
// negation of the new one (crude: one contains the other plus a negation
// marker). Returns the conflicting teaching id or empty.
func (s *Set) findContradiction(ctx context.Context, tenantID, statement string) string {
	rows, err := s.deps.Client.CeoTeaching.Query().
		Where(
			ceoteaching.TenantID(tenantID),
			ceoteaching.IsActive(true),
			ceoteaching.ValidationStatusEQ(ceoteaching.ValidationStatusVerified),
		).
		All(ctx)
	if err != nil {
		return ""
	}
	core := stripNegation(statement)
	negated := core != statement
	for _, row := range rows {
		existingCore := stripNegation(row.Statement)
		existingNegated := existingCore != row.Statement
		if core == "" || existingCore == "" {
			continue
		}
		if negated != existingNegated &&
			(strings.Contains(core, existingCore) || strings.Contains(existingCore, core)) {
			return row.ID
		}
	}
	return ""
}

var negationMarkers = []string{"しない", "禁止", "やめる", "never", "not ", "don't"}

func stripNegation(s string) string {
	folded := strings.ToLower(strings.TrimSpace(s))
	for _, m := range negationMarkers {
		folded = strings.ReplaceAll(folded, m, "")
	}
	return strings.TrimSpace(folded)
}

func validCategory(c ceoteaching.Category) bool {
	return ceoteaching.CategoryValidator(c) == nil
}
