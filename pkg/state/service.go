// Package state manages per-(tenant, room, user) conversation state: the
// single row that tells the Brain whether a user is mid-flow (setting a goal,
// confirming an action, building an announcement) or in normal dialogue.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/conversationstate"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/opsalert"
)

// State types. A missing or expired row reads as TypeNormal.
const (
	TypeNormal       = "normal"
	TypeGoalSetting  = "goal_setting"
	TypeAnnouncement = "announcement"
	TypeConfirmation = "confirmation"
	TypeTaskPending  = "task_pending"
	TypeMultiAction  = "multi_action"
)

// Clear reasons recorded in logs.
const (
	ClearCompleted  = "completed"
	ClearCancelled  = "cancelled"
	ClearExpired    = "expired"
	ClearSuperseded = "superseded"
)

// cancelKeywords end any active flow regardless of state type. Matched after
// lowering and width folding, against the whole trimmed message.
var cancelKeywords = []string{
	"キャンセル",
	"やめる",
	"やめて",
	"中止",
	"取り消し",
	"取消",
	"cancel",
	"stop",
	"quit",
	"abort",
	"nevermind",
	"never mind",
}

// IsCancelMessage reports whether the message is a bare cancel request.
func IsCancelMessage(text string) bool {
	t := foldWidth(strings.ToLower(strings.TrimSpace(text)))
	for _, kw := range cancelKeywords {
		if t == kw {
			return true
		}
	}
	return false
}

// foldWidth maps full-width ASCII letters and digits to half-width so
// "ｃａｎｃｅｌ" matches "cancel".
func foldWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'Ａ' && r <= 'Ｚ':
			r = r - 'Ａ' + 'a'
		case r >= 'ａ' && r <= 'ｚ':
			r = r - 'ａ' + 'a'
		case r >= '０' && r <= '９':
			r = r - '０' + '0'
		case r == '　':
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Snapshot is the read model for a conversation state.
type Snapshot struct {
	ID            string
	Type          string
	Step          string
	Data          map[string]any
	ReferenceType string
	ReferenceID   string
	ExpiresAt     time.Time
}

// Service owns conversation state rows.
type Service struct {
	client  *ent.Client
	timeout time.Duration
	alerts  *opsalert.Service
	logger  *slog.Logger
}

// NewService creates a state service. stateTimeout is how long a flow may sit
// idle before a read treats it as abandoned. alerts may be nil.
func NewService(client *ent.Client, stateTimeout time.Duration, alerts *opsalert.Service) *Service {
	if client == nil {
		panic("state.NewService: client must not be nil")
	}
	return &Service{
		client:  client,
		timeout: stateTimeout,
		alerts:  alerts,
		logger:  slog.Default().With("component", "state"),
	}
}

// Current returns the active state for the key, or a TypeNormal snapshot when
// none exists. An expired row is deleted on read and reported as normal with
// expired=true so the caller can tell the user the flow timed out.
func (s *Service) Current(ctx context.Context, tenantID, roomID, userID string) (snap *Snapshot, expired bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row, err := s.client.ConversationState.Query().
		Where(
			conversationstate.TenantID(tenantID),
			conversationstate.RoomID(roomID),
			conversationstate.UserID(userID),
		).
		Only(ctx)
	switch {
	case err == nil:
	case ent.IsNotFound(err):
		return normalSnapshot(), false, nil
	case ent.IsNotSingular(err):
		if row, err = s.resolveConflict(ctx, tenantID, roomID, userID); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("failed to load conversation state: %w", err)
	}

	if now := time.Now(); now.After(row.ExpiresAt) {
		// Conditional on expires_at so a concurrent request that already
		// replaced the row never has its fresh state deleted.
		n, derr := s.client.ConversationState.Delete().
			Where(
				conversationstate.ID(row.ID),
				conversationstate.ExpiresAtLT(now),
			).
			Exec(ctx)
		if derr != nil {
			s.logger.Warn("Failed to delete expired state", "state_id", row.ID, "error", derr)
		} else if n > 0 {
			s.logger.Info("Conversation state expired",
				"tenant_id", tenantID, "room_id", roomID, "user_id", userID,
				"state_type", row.StateType)
		}
		return normalSnapshot(), true, nil
	}

	return snapshotOf(row), false, nil
}

// resolveConflict handles multiple state rows for one key, which the unique
// index should make impossible. Keeps the most recently updated row, drops
// the rest, and notifies the operators.
func (s *Service) resolveConflict(ctx context.Context, tenantID, roomID, userID string) (*ent.ConversationState, error) {
	rows, err := s.client.ConversationState.Query().
		Where(
			conversationstate.TenantID(tenantID),
			conversationstate.RoomID(roomID),
			conversationstate.UserID(userID),
		).
		Order(ent.Desc(conversationstate.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicting states: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("conversation state conflict vanished during resolution")
	}

	stale := make([]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		stale = append(stale, r.ID)
	}
	if _, err := s.client.ConversationState.Delete().
		Where(conversationstate.IDIn(stale...)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to drop conflicting states: %w", err)
	}

	s.logger.Error("Conversation state conflict resolved to newest row",
		"tenant_id", tenantID, "room_id", roomID, "user_id", userID, "dropped", len(stale))
	s.alerts.StateConflict(ctx, tenantID, roomID, userID)
	return rows[0], nil
}

// Delta describes a state transition.
type Delta struct {
	Type          string
	Step          string
	Data          map[string]any
	ReferenceType string
	ReferenceID   string
}

// TransitionTo upserts the state row for the key. The previous state, if any,
// is superseded; flows never stack. The write runs inside a tenant-scoped
// transaction so the row-level security backstop applies.
func (s *Service) TransitionTo(ctx context.Context, tenantID, roomID, userID string, d Delta) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	expires := time.Now().Add(s.timeout)
	return database.TenantTx(ctx, s.client, tenantID, func(tx *ent.Tx) error {
		existing, err := tx.ConversationState.Query().
			Where(
				conversationstate.TenantID(tenantID),
				conversationstate.RoomID(roomID),
				conversationstate.UserID(userID),
			).
			Only(ctx)
		switch {
		case err == nil:
			update := tx.ConversationState.UpdateOne(existing).
				SetStateType(conversationstate.StateType(d.Type)).
				SetStep(d.Step).
				SetExpiresAt(expires)
			if d.Data != nil {
				update.SetData(d.Data)
			} else {
				update.ClearData()
			}
			if d.ReferenceType != "" {
				update.SetReferenceType(d.ReferenceType).SetReferenceID(d.ReferenceID)
			} else {
				update.ClearReferenceType().ClearReferenceID()
			}
			if _, err := update.Save(ctx); err != nil {
				return fmt.Errorf("failed to update conversation state: %w", err)
			}
			return nil
		case ent.IsNotFound(err):
			return createState(ctx, tx, tenantID, roomID, userID, d, expires)
		case ent.IsNotSingular(err):
			// Conflicting rows for one key: the new flow supersedes them all.
			if _, err := tx.ConversationState.Delete().
				Where(
					conversationstate.TenantID(tenantID),
					conversationstate.RoomID(roomID),
					conversationstate.UserID(userID),
				).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop conflicting states: %w", err)
			}
			s.alerts.StateConflict(ctx, tenantID, roomID, userID)
			return createState(ctx, tx, tenantID, roomID, userID, d, expires)
		default:
			return fmt.Errorf("failed to query conversation state: %w", err)
		}
	})
}

// Clear removes the state row for the key. Missing rows are fine.
func (s *Service) Clear(ctx context.Context, tenantID, roomID, userID, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.client.ConversationState.Delete().
		Where(
			conversationstate.TenantID(tenantID),
			conversationstate.RoomID(roomID),
			conversationstate.UserID(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}
	if n > 0 {
		s.logger.Info("Conversation state cleared",
			"tenant_id", tenantID, "room_id", roomID, "user_id", userID, "reason", reason)
	}
	return nil
}

// DeleteExpired removes all rows past their deadline (retention sweep).
func (s *Service) DeleteExpired(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := s.client.ConversationState.Delete().
		Where(conversationstate.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired states: %w", err)
	}
	return n, nil
}

func createState(ctx context.Context, tx *ent.Tx, tenantID, roomID, userID string, d Delta, expires time.Time) error {
	create := tx.ConversationState.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetRoomID(roomID).
		SetUserID(userID).
		SetStateType(conversationstate.StateType(d.Type)).
		SetStep(d.Step).
		SetExpiresAt(expires)
	if d.Data != nil {
		create.SetData(d.Data)
	}
	if d.ReferenceType != "" {
		create.SetReferenceType(d.ReferenceType).SetReferenceID(d.ReferenceID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create conversation state: %w", err)
	}
	return nil
}

func normalSnapshot() *Snapshot {
	return &Snapshot{Type: TypeNormal}
}

func snapshotOf(row *ent.ConversationState) *Snapshot {
	snap := &Snapshot{
		ID:        row.ID,
		Type:      string(row.StateType),
		Step:      row.Step,
		Data:      row.Data,
		ExpiresAt: row.ExpiresAt,
	}
	if row.ReferenceType != nil {
		snap.ReferenceType = *row.ReferenceType
	}
	if row.ReferenceID != nil {
		snap.ReferenceID = *row.ReferenceID
	}
	return snap
}
