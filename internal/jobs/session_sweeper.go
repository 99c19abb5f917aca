package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hirehub/assessment/internal/mocktest"
)

// SessionSweeperJob periodically purges abandoned mock-test sessions from
// the in-process store. The Redis store expires keys on its own and does
// not need this job.
type SessionSweeperJob struct {
	store    mocktest.Sweeper
	schedule string
	maxAge   time.Duration
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewSessionSweeperJob(store mocktest.Sweeper, schedule string, maxAge time.Duration, logger *zap.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:    store,
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the sweep.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.RunSweep)
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	j.cron.Start()
	j.logger.Info("mock test session sweeper started",
		zap.String("schedule", j.schedule),
		zap.Duration("max_age", j.maxAge))
	return nil
}

// Stop stops the scheduled sweep.
func (j *SessionSweeperJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
		j.logger.Info("mock test session sweeper stopped")
	}
}

// RunSweep performs a single sweep pass.
func (j *SessionSweeperJob) RunSweep() {
	purged := j.store.PurgeExpired(j.maxAge)
	if purged > 0 {
		j.logger.Info("purged expired mock test sessions", zap.Int("count", purged))
	}
}
