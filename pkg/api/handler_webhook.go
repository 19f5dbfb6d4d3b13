package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
)

const maxWebhookBody = 1 << 20

const signatureHeader = "X-ChatWorkWebhookSignature"

// webhookHandler handles POST /webhook/:tenant_id.
// Signature failures are 401; an unknown tenant is 404 (fail closed). Every
// semantic failure past authentication is 200 so the chat service does not
// retry: redelivery would re-run the pipeline for nothing.
func (s *Server) webhookHandler(c *echo.Context) error {
	tenantID := c.Param("tenant_id")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusNotFound, "unknown tenant")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	cfg, err := s.adminCfg.Get(c.Request().Context(), tenantID)
	if err != nil {
		if errors.Is(err, adminconfig.ErrTenantNotConfigured) {
			return echo.NewHTTPError(http.StatusNotFound, "unknown tenant")
		}
		return mapServiceError(err)
	}

	sig := c.Request().Header.Get(signatureHeader)
	if sig == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing signature")
	}
	if err := chatwork.VerifySignature(cfg.WebhookSecret, body, sig); err != nil {
		s.logger.Warn("Webhook signature rejected", "tenant_id", tenantID)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
	}

	var event chatwork.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.logger.Warn("Webhook body is not valid JSON", "tenant_id", tenantID)
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	switch event.WebhookEventType {
	case "mention_to_me", "message_created":
	default:
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	// The pipeline runs on the tracker so the webhook can be acknowledged
	// immediately; the chat service times out slow webhook endpoints.
	s.tracker.Go("webhook:"+event.WebhookEvent.MessageID, func(ctx context.Context) error {
		return s.brain.HandleWebhook(ctx, tenantID, &event)
	})

	return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}
