package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
	"github.com/wisehub-ai/wisehub/ent/conversationturn"
	"github.com/wisehub-ai/wisehub/pkg/database"
)

// AppendTurn persists one dialogue turn. role is "user" or "assistant".
func (l *Loader) AppendTurn(ctx context.Context, tenantID, roomID, userID, role, content string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return database.TenantTx(ctx, l.client, tenantID, func(tx *ent.Tx) error {
		_, err := tx.ConversationTurn.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetRoomID(roomID).
			SetUserID(userID).
			SetRole(conversationturn.Role(role)).
			SetContent(content).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to append conversation turn: %w", err)
		}
		return nil
	})
}

// UnsummarizedCount returns how many turns are not yet folded into the
// rolling summary. The post layer triggers summarization past a threshold.
func (l *Loader) UnsummarizedCount(ctx context.Context, tenantID, roomID, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := l.client.ConversationTurn.Query().
		Where(
			conversationturn.TenantID(tenantID),
			conversationturn.RoomID(roomID),
			conversationturn.UserID(userID),
			conversationturn.Summarized(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsummarized turns: %w", err)
	}
	return n, nil
}

// UnsummarizedTurns loads the unsummarized turns oldest-first, capped.
func (l *Loader) UnsummarizedTurns(ctx context.Context, tenantID, roomID, userID string, limit int) ([]*ent.ConversationTurn, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := l.client.ConversationTurn.Query().
		Where(
			conversationturn.TenantID(tenantID),
			conversationturn.RoomID(roomID),
			conversationturn.UserID(userID),
			conversationturn.Summarized(false),
		).
		Order(ent.Asc(conversationturn.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unsummarized turns: %w", err)
	}
	return rows, nil
}

// ReplaceSummary upserts the rolling summary and marks the given turns as
// summarized, in one tenant-scoped transaction.
func (l *Loader) ReplaceSummary(ctx context.Context, tenantID, roomID, userID, summary string, turnIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return database.TenantTx(ctx, l.client, tenantID, func(tx *ent.Tx) error {
		existing, err := tx.ConversationSummary.Query().
			Where(
				conversationsummary.TenantID(tenantID),
				conversationsummary.RoomID(roomID),
				conversationsummary.UserID(userID),
			).
			Only(ctx)
		switch {
		case err == nil:
			_, err = tx.ConversationSummary.UpdateOne(existing).
				SetSummary(summary).
				AddTurnsCovered(len(turnIDs)).
				Save(ctx)
		case ent.IsNotFound(err):
			_, err = tx.ConversationSummary.Create().
				SetID(uuid.New().String()).
				SetTenantID(tenantID).
				SetRoomID(roomID).
				SetUserID(userID).
				SetSummary(summary).
				SetTurnsCovered(len(turnIDs)).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert conversation summary: %w", err)
		}

		if _, err := tx.ConversationTurn.Update().
			Where(conversationturn.IDIn(turnIDs...)).
			SetSummarized(true).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark turns summarized: %w", err)
		}
		return nil
	})
}
