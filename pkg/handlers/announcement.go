package handlers

import (
	"context"
	"time"

	"github.com/wisehub-ai/wisehub/pkg/announce"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// AnnouncementCreate opens the announcement flow: the announce service
// captures the request, resolves the room, and returns the confirmation text
// plus the state delta the Brain applies.
func (s *Set) AnnouncementCreate(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	req := announce.Request{}
	req.Message, _ = params["message"].(string)
	req.RoomName, _ = params["room"].(string)
	req.CreateTasks, _ = params["create_tasks"].(bool)
	if d, ok := params["deadline"].(time.Time); ok {
		req.Deadline = &d
	}
	if at, ok := params["schedule_at"].(time.Time); ok {
		req.ScheduleAt = &at
	}
	if cronExpr, ok := params["cron"].(string); ok {
		req.CronExpr = cronExpr
	}

	result, err := s.deps.Announce.Start(ctx, env, req)
	if err != nil {
		return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
	}
	return result, nil
}
