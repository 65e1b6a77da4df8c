// Package scheduler runs the periodic maintenance jobs on robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GraziArcH/domain-sales/internal/shared/biztime"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// ExpiryJob expires subscriptions that ended before now and returns how
// many changed.
type ExpiryJob interface {
	Execute(ctx context.Context, now time.Time) (int, error)
}

const jobTimeout = 10 * time.Minute

// SchedulerManager owns one cron instance whose expressions are read in the
// business timezone.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface
	now    func() time.Time

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(biztime.Location()),
			cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
		),
		logger: log,
		now:    biztime.NowUTC,
	}
}

// RegisterExpiryJob schedules job with a standard five-field cron spec.
func (m *SchedulerManager) RegisterExpiryJob(spec string, job ExpiryJob) error {
	_, err := m.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		m.runExpiry(ctx, job)
	})
	if err != nil {
		return fmt.Errorf("failed to register expiry job %q: %w", spec, err)
	}

	m.logger.Infow("registered subscription expiry job", "spec", spec, "timezone", biztime.Location().String())
	return nil
}

func (m *SchedulerManager) runExpiry(ctx context.Context, job ExpiryJob) {
	m.logger.Debugw("processing expired subscriptions task started")
	startTime := time.Now()

	count, err := job.Execute(ctx, m.now())
	if err != nil {
		m.logger.Errorw("failed to process expired subscriptions",
			"error", err,
			"expired", count,
			"duration", time.Since(startTime),
		)
		return
	}
	if count > 0 {
		m.logger.Infow("expired subscriptions processed",
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop waits for running jobs or for ctx, whichever ends first.
func (m *SchedulerManager) Stop(ctx context.Context) {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return
	}
	m.started = false

	select {
	case <-m.cron.Stop().Done():
		m.logger.Infow("scheduler stopped")
	case <-ctx.Done():
		m.logger.Warnw("scheduler stop timed out", "error", ctx.Err())
	}
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	logger logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
