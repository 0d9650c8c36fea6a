package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops every scheduled job of the application.
type JobManager struct {
	cashSessionWatchJob *CashSessionWatchJob
}

func NewJobManager(
	staleSessions StaleCashSessionsFinder,
	cashSessionWatchSchedule string,
	cashSessionMaxOpen time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cashSessionWatchJob: NewCashSessionWatchJob(staleSessions, cashSessionWatchSchedule, cashSessionMaxOpen, nil, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cashSessionWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start cash session watch job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.cashSessionWatchJob.Stop()
}
