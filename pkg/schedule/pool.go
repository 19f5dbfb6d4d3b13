package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/robfig/cron/v3"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/scheduledjob"
)

// errNoJobsDue is an internal signal that the poll found nothing.
var errNoJobsDue = errors.New("no jobs due")

const maxAttempts = 3

// JobHandler runs one job. Handlers are idempotent: a redelivered job must
// not duplicate side effects.
type JobHandler func(ctx context.Context, tenantID string, payload map[string]any) error

// Config holds worker pool settings.
type Config struct {
	WorkerCount     int
	PollInterval    time.Duration
	JobTimeout      time.Duration
	OrphanThreshold time.Duration
}

// WorkerPool polls the job store and dispatches due jobs to registered
// handlers by kind.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	cfg      Config
	handlers map[string]JobHandler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
	logger   *slog.Logger
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg Config) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		cfg:      cfg,
		handlers: make(map[string]JobHandler),
		stopCh:   make(chan struct{}),
		logger:   slog.Default().With("component", "schedule", "pod_id", podID),
	}
}

// RegisterHandler binds a handler to a job kind. Must be called before Start.
func (p *WorkerPool) RegisterHandler(kind string, h JobHandler) {
	p.handlers[kind] = h
}

// Start spawns the worker goroutines and the orphan recovery loop. Safe to
// call once; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		p.logger.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.logger.Info("Starting schedule workers", "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		p.wg.Add(1)
		go p.runWorker(ctx, workerID)
	}
	p.wg.Add(1)
	go p.runOrphanRecovery(ctx)
}

// Stop signals workers to stop and waits; in-flight jobs finish first.
func (p *WorkerPool) Stop() {
	p.logger.Info("Stopping schedule workers")
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.logger.Info("Schedule workers stopped")
}

func (p *WorkerPool) runWorker(ctx context.Context, workerID string) {
	defer p.wg.Done()
	log := p.logger.With("worker_id", workerID)
	log.Info("Worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			return
		default:
			if err := p.pollAndProcess(ctx); err != nil {
				if errors.Is(err, errNoJobsDue) {
					p.sleep(p.cfg.PollInterval)
					continue
				}
				log.Error("Job processing error", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

func (p *WorkerPool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one due job with FOR UPDATE SKIP LOCKED and runs it.
func (p *WorkerPool) pollAndProcess(ctx context.Context) error {
	job, err := p.claimNextJob(ctx)
	if err != nil {
		return err
	}
	log := p.logger.With("job_id", job.ID, "kind", job.Kind)
	log.Info("Job claimed")

	handler, ok := p.handlers[job.Kind]
	if !ok {
		log.Error("No handler for job kind")
		return p.finishJob(ctx, job, fmt.Errorf("no handler for kind %q", job.Kind))
	}

	jobCtx, cancel := context.WithTimeout(ctx, p.cfg.JobTimeout)
	defer cancel()

	hbCtx, cancelHB := context.WithCancel(jobCtx)
	go p.runHeartbeat(hbCtx, job.ID)

	err = handler(jobCtx, job.TenantID, job.Payload)
	cancelHB()

	// Terminal update on background context: jobCtx may be done.
	return p.finishJob(context.Background(), job, err)
}

func (p *WorkerPool) claimNextJob(ctx context.Context) (*ent.ScheduledJob, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.ScheduledJob.Query().
		Where(
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
			scheduledjob.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(scheduledjob.FieldRunAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errNoJobsDue
		}
		return nil, fmt.Errorf("failed to query due jobs: %w", err)
	}

	job, err = job.Update().
		SetStatus(scheduledjob.StatusClaimed).
		SetClaimedBy(p.podID).
		SetClaimedAt(time.Now()).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// runHeartbeat refreshes claimed_at so the orphan scan leaves live jobs
// alone.
func (p *WorkerPool) runHeartbeat(ctx context.Context, jobID string) {
	interval := p.cfg.OrphanThreshold / 3
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.client.ScheduledJob.UpdateOneID(jobID).
				SetClaimedAt(time.Now()).
				Exec(ctx); err != nil {
				p.logger.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finishJob records the terminal state. Recurring jobs advance run_at and
// return to pending; failed one-shot jobs retry until maxAttempts.
func (p *WorkerPool) finishJob(ctx context.Context, job *ent.ScheduledJob, jobErr error) error {
	if jobErr != nil {
		p.logger.Error("Job failed", "job_id", job.ID, "kind", job.Kind,
			"attempts", job.Attempts, "error", jobErr)
		update := p.client.ScheduledJob.UpdateOneID(job.ID).
			SetLastError(jobErr.Error()).
			ClearClaimedBy()
		if job.Attempts >= maxAttempts {
			update.SetStatus(scheduledjob.StatusFailed)
		} else {
			update.SetStatus(scheduledjob.StatusPending).
				SetRunAt(time.Now().Add(time.Duration(job.Attempts) * 30 * time.Second))
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to record job failure: %w", err)
		}
		return nil
	}

	if job.CronExpression != nil {
		sched, err := cron.ParseStandard(*job.CronExpression)
		if err != nil {
			return fmt.Errorf("recurring job %s has invalid cron: %w", job.ID, err)
		}
		if err := p.client.ScheduledJob.UpdateOneID(job.ID).
			SetStatus(scheduledjob.StatusPending).
			SetRunAt(sched.Next(time.Now())).
			SetAttempts(0).
			ClearClaimedBy().
			ClearLastError().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to reschedule recurring job: %w", err)
		}
		return nil
	}

	if err := p.client.ScheduledJob.UpdateOneID(job.ID).
		SetStatus(scheduledjob.StatusCompleted).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	p.logger.Info("Job completed", "job_id", job.ID, "kind", job.Kind)
	return nil
}

// runOrphanRecovery periodically returns jobs whose claimant stopped
// heartbeating to the pending pool.
func (p *WorkerPool) runOrphanRecovery(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.OrphanThreshold)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.client.ScheduledJob.Update().
				Where(
					scheduledjob.StatusEQ(scheduledjob.StatusClaimed),
					scheduledjob.ClaimedAtLT(time.Now().Add(-p.cfg.OrphanThreshold)),
				).
				SetStatus(scheduledjob.StatusPending).
				ClearClaimedBy().
				ClearClaimedAt().
				Save(ctx)
			if err != nil {
				p.logger.Error("Orphan recovery scan failed", "error", err)
				continue
			}
			if n > 0 {
				p.logger.Warn("Recovered orphaned jobs", "count", n)
			}
		}
	}
}
