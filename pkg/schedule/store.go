// Package schedule is the DB-backed job store and its polling worker pool.
// Delivery is at-least-once; job handlers are idempotent.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
)

// Store enqueues and cancels scheduled jobs.
type Store struct {
	client *ent.Client
}

// NewStore creates a job store.
func NewStore(client *ent.Client) *Store {
	if client == nil {
		panic("schedule.NewStore: client must not be nil")
	}
	return &Store{client: client}
}

// EnqueueOnce schedules a single run at runAt and returns the job id.
func (s *Store) EnqueueOnce(ctx context.Context, tenantID, kind string, payload map[string]any, runAt time.Time) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	job, err := s.client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetKind(kind).
		SetPayload(payload).
		SetRunAt(runAt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}
	return job.ID, nil
}

// EnqueueRecurring schedules a cron-driven job; run_at advances after each
// completed run.
func (s *Store) EnqueueRecurring(ctx context.Context, tenantID, kind string, payload map[string]any, cronExpr string, firstRun time.Time) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := cron.ParseStandard(cronExpr); err != nil {
		return "", fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	job, err := s.client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetKind(kind).
		SetPayload(payload).
		SetRunAt(firstRun).
		SetCronExpression(cronExpr).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue recurring job: %w", err)
	}
	return job.ID, nil
}

// Cancel marks a pending job cancelled. Claimed jobs finish their current
// run; recurring jobs stop recurring.
func (s *Store) Cancel(ctx context.Context, tenantID, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.TenantID(tenantID),
			scheduledjob.ID(jobID),
			scheduledjob.StatusIn(scheduledjob.StatusPending, scheduledjob.StatusClaimed),
		).
		SetStatus(scheduledjob.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s is not cancellable", jobID)
	}
	return nil
}
