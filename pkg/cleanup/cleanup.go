// Package cleanup runs the retention loop: expired conversation states and
// aged evidence rows are deleted on a fixed interval.
package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
	"github.com/wisehub-ai/wisehub/ent/decisionlog"
	"github.com/wisehub-ai/wisehub/pkg/config"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// Runner owns the periodic retention sweep.
type Runner struct {
	client *ent.Client
	states *state.Service
	cfg    config.RetentionConfig
	logger *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner creates the retention runner.
func NewRunner(client *ent.Client, states *state.Service, cfg config.RetentionConfig) *Runner {
	return &Runner{
		client: client,
		states: states,
		cfg:    cfg,
		logger: slog.Default().With("component", "cleanup"),
		stopCh: make(chan struct{}),
	}
}

// Start launches the sweep loop. One sweep runs immediately so a restart
// never postpones overdue deletion by a full interval.
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.sweep(ctx)
		ticker := time.NewTicker(r.cfg.CleanupInterval.Std())
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.sweep(ctx)
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	r.logger.Info("Retention runner started", "interval", r.cfg.CleanupInterval.Std())
}

// Stop halts the loop and waits for an in-flight sweep.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Runner) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if n, err := r.states.DeleteExpired(ctx); err != nil {
		r.logger.Error("Failed to delete expired states", "error", err)
	} else if n > 0 {
		r.logger.Info("Deleted expired conversation states", "count", n)
	}

	cutoff := time.Now().AddDate(0, 0, -r.cfg.DecisionLogDays)
	if n, err := r.client.DecisionLog.Delete().
		Where(decisionlog.CreatedAtLT(cutoff)).
		Exec(ctx); err != nil {
		r.logger.Error("Failed to delete aged decision logs", "error", err)
	} else if n > 0 {
		r.logger.Info("Deleted aged decision logs", "count", n, "older_than_days", r.cfg.DecisionLogDays)
	}

	cutoff = time.Now().AddDate(0, 0, -r.cfg.PatternDays)
	if n, err := r.client.AnnouncementPattern.Delete().
		Where(announcementpattern.LastSeenAtLT(cutoff)).
		Exec(ctx); err != nil {
		r.logger.Error("Failed to delete stale announcement patterns", "error", err)
	} else if n > 0 {
		r.logger.Info("Deleted stale announcement patterns", "count", n)
	}

	cutoff = time.Now().AddDate(0, 0, -r.cfg.AnnouncementLogDays)
	if n, err := r.client.AnnouncementExecution.Delete().
		Where(announcementexecution.StartedAtLT(cutoff)).
		Exec(ctx); err != nil {
		r.logger.Error("Failed to delete aged announcement executions", "error", err)
	} else if n > 0 {
		r.logger.Info("Deleted aged announcement executions", "count", n)
	}
}
