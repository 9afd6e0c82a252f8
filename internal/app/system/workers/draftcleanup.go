// internal/app/system/workers/draftcleanup.go
package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCleanupSchedule runs the cleanup at the top of every hour.
const DefaultCleanupSchedule = "@hourly"

// StaleDeleter removes drafts last updated before a cutoff.
type StaleDeleter interface {
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

// DraftCleanup is a cron-driven background worker that deletes drafts
// nobody has touched for longer than the TTL.
type DraftCleanup struct {
	drafts   StaleDeleter
	log      *zap.Logger
	schedule string
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// NewDraftCleanup creates the worker.
//
// Parameters:
//   - drafts: the drafts store
//   - logger: zap logger
//   - schedule: standard cron spec or descriptor, e.g. "@hourly", "0 */6 * * *"
//   - ttl: how long a draft may sit untouched before it is removed
func NewDraftCleanup(drafts StaleDeleter, logger *zap.Logger, schedule string, ttl time.Duration) *DraftCleanup {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	return &DraftCleanup{
		drafts:   drafts,
		log:      logger,
		schedule: schedule,
		ttl:      ttl,
		timeout:  30 * time.Second,
		now:      time.Now,
	}
}

// Start registers the job and starts the scheduler. It fails on an invalid
// schedule.
func (w *DraftCleanup) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cron != nil {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(w.schedule, func() { w.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("draft cleanup schedule %q: %w", w.schedule, err)
	}
	c.Start()
	w.cron = c

	w.log.Info("draft cleanup worker started",
		zap.String("schedule", w.schedule),
		zap.Duration("ttl", w.ttl))
	return nil
}

// Stop stops the scheduler and waits for a running cleanup to finish.
func (w *DraftCleanup) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	w.log.Info("draft cleanup worker stopped")
}

// RunOnce deletes stale drafts now and returns how many were removed.
func (w *DraftCleanup) RunOnce(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	cutoff := w.now().UTC().Add(-w.ttl)
	count, err := w.drafts.DeleteStale(ctx, cutoff)
	if err != nil {
		w.log.Error("failed to delete stale drafts", zap.Error(err))
		return 0
	}
	if count > 0 {
		w.log.Info("deleted stale drafts",
			zap.Int64("count", count),
			zap.Time("cutoff", cutoff))
	}
	return count
}
