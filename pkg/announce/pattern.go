package announce

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
	"github.com/wisehub-ai/wisehub/ent/insight"
)

// recurrenceThreshold is how many occurrences of the same normalized request
// raise a recurrence proposal.
const recurrenceThreshold = 3

var (
	digitRun   = regexp.MustCompile(`\d+`)
	spaceRun   = regexp.MustCompile(`\s+`)
	dateTokens = regexp.MustCompile(`(今日|明日|明後日|本日|来週|today|tomorrow|next week)`)
)

// normalizeRequest canonicalizes an announcement request for pattern
// detection: dates and numbers are collapsed so "毎週月曜の朝会" hashes the
// same across weeks.
func normalizeRequest(message string) string {
	s := strings.ToLower(strings.TrimSpace(message))
	s = dateTokens.ReplaceAllString(s, "<date>")
	s = digitRun.ReplaceAllString(s, "<n>")
	s = spaceRun.ReplaceAllString(s, " ")
	return s
}

// requestHash is the sha256 of the normalized request.
func requestHash(message string) string {
	sum := sha256.Sum256([]byte(normalizeRequest(message)))
	return hex.EncodeToString(sum[:])
}

// recordPattern upserts the pattern row for this request and raises a
// recurrence-proposal insight once the occurrence count reaches the
// threshold. Pattern bookkeeping failures are returned for logging but never
// block the announcement itself.
func (s *Service) recordPattern(ctx context.Context, tenantID, requesterID, message string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	hash := requestHash(message)
	row, err := s.client.AnnouncementPattern.Query().
		Where(
			announcementpattern.TenantID(tenantID),
			announcementpattern.RequestHash(hash),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.AnnouncementPattern.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetNormalizedRequest(normalizeRequest(message)).
			SetRequestHash(hash).
			SetOccurrenceCount(1).
			SetRequesterIds([]string{requesterID}).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create announcement pattern: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to query announcement pattern: %w", err)
	}

	if row.Status != announcementpattern.StatusActive {
		return nil
	}

	requesters := row.RequesterIds
	if !contains(requesters, requesterID) {
		requesters = append(requesters, requesterID)
	}
	updated, err := s.client.AnnouncementPattern.UpdateOne(row).
		AddOccurrenceCount(1).
		SetRequesterIds(requesters).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update announcement pattern: %w", err)
	}

	if updated.OccurrenceCount == recurrenceThreshold {
		return s.raiseRecurrenceInsight(ctx, tenantID, updated)
	}
	return nil
}

func (s *Service) raiseRecurrenceInsight(ctx context.Context, tenantID string, pattern *ent.AnnouncementPattern) error {
	_, err := s.client.Insight.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetKind("announcement_recurrence").
		SetSummary(fmt.Sprintf("同じ内容のアナウンス依頼が%d回ありました。定期配信にしますか？「%s」",
			pattern.OccurrenceCount, pattern.NormalizedRequest)).
		SetPriority(insight.PriorityMedium).
		SetReferenceType("announcement_pattern").
		SetReferenceID(pattern.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to raise recurrence insight: %w", err)
	}
	s.logger.Info("Recurrence proposal raised",
		"tenant_id", tenantID, "pattern_id", pattern.ID,
		"occurrences", pattern.OccurrenceCount)
	return nil
}

// MarkPatternAddressed transitions an accepted recurrence proposal.
func (s *Service) MarkPatternAddressed(ctx context.Context, tenantID, patternID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.client.AnnouncementPattern.Update().
		Where(
			announcementpattern.TenantID(tenantID),
			announcementpattern.ID(patternID),
		).
		SetStatus(announcementpattern.StatusAddressed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark pattern addressed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("announcement pattern %s not found", patternID)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
