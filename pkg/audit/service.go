// Package audit writes the decision-log and audit-log evidence streams.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/auditlog"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/scrub"
)

// Classification levels for audit entries.
const (
	ClassPublic       = "public"
	ClassInternal     = "internal"
	ClassConfidential = "confidential"
	ClassRestricted   = "restricted"
)

// Service writes audit evidence. Writes are small and fast; they run either
// inline (decision logs, which must never be lost) or on the background
// tracker (plain audit rows, which tolerate seconds of latency).
type Service struct {
	client   *ent.Client
	scrubber *scrub.Scrubber
}

// NewService creates an audit service.
func NewService(client *ent.Client, scrubber *scrub.Scrubber) *Service {
	if client == nil {
		panic("audit.NewService: client must not be nil")
	}
	if scrubber == nil {
		panic("audit.NewService: scrubber must not be nil")
	}
	return &Service{client: client, scrubber: scrubber}
}

// DecisionRecord carries everything the decision log stores for one Brain
// invocation.
type DecisionRecord struct {
	TenantID             string
	UserID               string
	RoomID               string
	Message              string // Raw; scrubbed and truncated here
	Intent               string
	CapabilityKey        string
	Parameters           map[string]any
	Confidence           float64
	IntentConfidence     float64
	ParameterConfidence  float64
	GuardrailAction      string
	PolicyReason         string
	Success              bool
	ErrorCode            string
	TokensIn             int
	TokensOut            int
	ModelID              string
	TimingsMS            map[string]int64
	ConfirmationNeeded   bool
	ConfirmationQuestion string
	ConfirmationResolved string
	Warnings             []string
}

// WriteDecision persists exactly one decision log row. The caller invokes
// this once per Brain invocation, on every outcome. The write runs inside a
// tenant-scoped transaction so the row-level security backstop applies.
func (s *Service) WriteDecision(ctx context.Context, rec *DecisionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return database.TenantTx(ctx, s.client, rec.TenantID, func(tx *ent.Tx) error {
		return s.writeDecision(ctx, tx, rec)
	})
}

func (s *Service) writeDecision(ctx context.Context, tx *ent.Tx, rec *DecisionRecord) error {
	create := tx.DecisionLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(rec.TenantID).
		SetUserID(rec.UserID).
		SetRoomID(rec.RoomID).
		SetMessageExcerpt(s.scrubber.Excerpt(rec.Message, 120)).
		SetIntent(rec.Intent).
		SetCapabilityKey(rec.CapabilityKey).
		SetConfidence(rec.Confidence).
		SetIntentConfidence(rec.IntentConfidence).
		SetParameterConfidence(rec.ParameterConfidence).
		SetGuardrailAction(rec.GuardrailAction).
		SetPolicyReason(rec.PolicyReason).
		SetSuccess(rec.Success).
		SetErrorCode(rec.ErrorCode).
		SetTokensIn(rec.TokensIn).
		SetTokensOut(rec.TokensOut).
		SetModelID(rec.ModelID).
		SetConfirmationNeeded(rec.ConfirmationNeeded).
		SetConfirmationQuestion(rec.ConfirmationQuestion).
		SetConfirmationResolution(rec.ConfirmationResolved)

	if rec.Parameters != nil {
		create.SetParameters(s.scrubber.Params(rec.Parameters))
	}
	if rec.TimingsMS != nil {
		create.SetTimingsMs(rec.TimingsMS)
	}
	if len(rec.Warnings) > 0 {
		create.SetWarnings(rec.Warnings)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to write decision log: %w", err)
	}
	return nil
}

// RecentDecisions returns this user's decision rows inside the window, newest
// first. Used for the recency-affinity term of capability ranking.
func (s *Service) RecentDecisions(ctx context.Context, tenantID, userID string, window time.Duration) ([]*ent.DecisionLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.client.DecisionLog.Query().
		Where(
			decisionlog.TenantID(tenantID),
			decisionlog.UserID(userID),
			decisionlog.CreatedAtGTE(time.Now().Add(-window)),
		).
		Order(ent.Desc(decisionlog.FieldCreatedAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent decisions: %w", err)
	}
	return rows, nil
}

// Write appends one audit row inside a tenant-scoped transaction.
func (s *Service) Write(ctx context.Context, tenantID, actor, action, resourceType, resourceID, classification string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if classification == "" {
		classification = ClassInternal
	}
	return database.TenantTx(ctx, s.client, tenantID, func(tx *ent.Tx) error {
		_, err := tx.AuditLog.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetActor(actor).
			SetAction(action).
			SetResourceType(resourceType).
			SetResourceID(resourceID).
			SetClassification(auditlog.Classification(classification)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
}
