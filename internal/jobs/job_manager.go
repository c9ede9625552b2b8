package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/thtta/farmlend/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	retentionPurgeJob *RetentionPurgeJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	purgeHandler commands.PurgeRemovedRecordsCommandHandler,
	purgeSchedule string,
	purgeRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		retentionPurgeJob: NewRetentionPurgeJob(purgeHandler, purgeSchedule, purgeRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.retentionPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start retention purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retentionPurgeJob.Stop()
}
