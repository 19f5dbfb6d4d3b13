// Package opsalert delivers operator notifications to Slack. These are for
// the humans running the platform (state conflicts, announcement failures),
// never for end users.
package opsalert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Service sends operator alerts.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	api     *goslack.Client
	channel string
	logger  *slog.Logger
}

// NewService creates an alert service. Returns nil when token or channel is
// empty, disabling alerting.
func NewService(token, channel string) *Service {
	if token == "" || channel == "" {
		return nil
	}
	return &Service{
		api:     goslack.New(token),
		channel: channel,
		logger:  slog.Default().With("component", "opsalert"),
	}
}

// NewServiceWithAPIURL targets a mock Slack server (tests).
func NewServiceWithAPIURL(token, channel, apiURL string) *Service {
	return &Service{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channel: channel,
		logger:  slog.Default().With("component", "opsalert"),
	}
}

// StateConflict reports two conversation states observed for one key.
// Fail-open: errors are logged, never returned.
func (s *Service) StateConflict(ctx context.Context, tenantID, roomID, userID string) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":warning: *Conversation state conflict*\ntenant `%s` room `%s` user `%s` — resolved by keeping the newest row.",
		tenantID, roomID, userID)
	s.post(ctx, text)
}

// AnnouncementFailed reports a failed announcement execution.
func (s *Service) AnnouncementFailed(ctx context.Context, tenantID, announcementID string, executionNumber int, reason string) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":x: *Announcement execution failed*\ntenant `%s` announcement `%s` run %d\n%s",
		tenantID, announcementID, executionNumber, reason)
	s.post(ctx, text)
}

// TeachingAlert reports a teaching that contradicts an existing verified one
// and needs operator review.
func (s *Service) TeachingAlert(ctx context.Context, tenantID, teachingID string) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":thinking_face: *Teaching needs review*\ntenant `%s` teaching `%s` conflicts with a verified statement.",
		tenantID, teachingID)
	s.post(ctx, text)
}

func (s *Service) post(ctx context.Context, text string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, _, err := s.api.PostMessageContext(ctx, s.channel,
		goslack.MsgOptionText(text, false))
	if err != nil {
		s.logger.Error("Failed to send operator alert", "error", err)
	}
}
