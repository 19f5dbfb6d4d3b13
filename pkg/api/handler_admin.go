package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
	"github.com/wisehub-ai/wisehub/pkg/flags"
)

// DecisionLogItem is one decision-log row in the admin response. The message
// excerpt is already scrubbed at write time.
type DecisionLogItem struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UserID          string    `json:"user_id"`
	RoomID          string    `json:"room_id"`
	MessageExcerpt  string    `json:"message_excerpt"`
	Intent          string    `json:"intent"`
	CapabilityKey   string    `json:"capability_key"`
	Confidence      float64   `json:"confidence"`
	GuardrailAction string    `json:"guardrail_action"`
	Success         bool      `json:"success"`
	ErrorCode       string    `json:"error_code,omitempty"`
}

// listDecisionsHandler handles GET /api/v1/tenants/:tenant_id/decisions.
func (s *Server) listDecisionsHandler(c *echo.Context) error {
	tenantID := c.Param("tenant_id")
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	rows, err := s.client.DecisionLog.Query().
		Where(decisionlog.TenantID(tenantID)).
		Order(ent.Desc(decisionlog.FieldCreatedAt)).
		Limit(limit).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]DecisionLogItem, len(rows))
	for i, row := range rows {
		items[i] = DecisionLogItem{
			ID:              row.ID,
			CreatedAt:       row.CreatedAt,
			UserID:          row.UserID,
			RoomID:          row.RoomID,
			MessageExcerpt:  row.MessageExcerpt,
			Intent:          row.Intent,
			CapabilityKey:   row.CapabilityKey,
			Confidence:      row.Confidence,
			GuardrailAction: row.GuardrailAction,
			Success:         row.Success,
			ErrorCode:       row.ErrorCode,
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"decisions": items})
}

// AnnouncementItem is one announcement in the admin response.
type AnnouncementItem struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	TargetRoomID    string     `json:"target_room_id"`
	ScheduleType    string     `json:"schedule_type"`
	NextExecutionAt *time.Time `json:"next_execution_at,omitempty"`
	ExecutionCount  int        `json:"execution_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

// listAnnouncementsHandler handles GET /api/v1/tenants/:tenant_id/announcements.
func (s *Server) listAnnouncementsHandler(c *echo.Context) error {
	tenantID := c.Param("tenant_id")

	query := s.client.Announcement.Query().
		Where(announcement.TenantID(tenantID))
	if v := c.QueryParam("status"); v != "" {
		query = query.Where(announcement.StatusEQ(announcement.Status(v)))
	}
	rows, err := query.
		Order(ent.Desc(announcement.FieldCreatedAt)).
		Limit(100).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]AnnouncementItem, len(rows))
	for i, row := range rows {
		item := AnnouncementItem{
			ID:              row.ID,
			Status:          string(row.Status),
			ScheduleType:    string(row.ScheduleType),
			NextExecutionAt: row.NextExecutionAt,
			ExecutionCount:  row.ExecutionCount,
			CreatedAt:       row.CreatedAt,
		}
		if row.TargetRoomID != nil {
			item.TargetRoomID = *row.TargetRoomID
		}
		items[i] = item
	}
	return c.JSON(http.StatusOK, map[string]any{"announcements": items})
}

// cancelAnnouncementHandler handles POST /api/v1/tenants/:tenant_id/announcements/:id/cancel.
func (s *Server) cancelAnnouncementHandler(c *echo.Context) error {
	tenantID := c.Param("tenant_id")
	id := c.Param("id")
	if err := s.announce.Cancel(c.Request().Context(), tenantID, id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}

// invalidateCacheHandler handles POST /api/v1/tenants/:tenant_id/cache/invalidate.
// Drops the tenant's admin-config and feature-flag caches so operator edits
// apply without waiting out the TTL.
func (s *Server) invalidateCacheHandler(c *echo.Context) error {
	tenantID := c.Param("tenant_id")
	s.adminCfg.Invalidate(tenantID)
	if name := c.QueryParam("flag"); name != "" {
		s.flags.Invalidate(tenantID, name)
	} else {
		for _, name := range flags.Known() {
			s.flags.Invalidate(tenantID, name)
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "invalidated"})
}
