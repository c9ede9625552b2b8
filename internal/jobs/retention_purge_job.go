package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/thtta/farmlend/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetentionPurgeJob hard-removes rows soft-deleted before the retention
// window on a cron schedule. Orders are purged first inside the handler so
// the schema's cascades clear edge rows and line items along the way.
type RetentionPurgeJob struct {
	handler   commands.PurgeRemovedRecordsCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRetentionPurgeJob creates the purge job. The schedule is a standard
// five-field cron expression; retention is how long soft-deleted rows are
// kept before the purge may remove them.
func NewRetentionPurgeJob(
	handler commands.PurgeRemovedRecordsCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *RetentionPurgeJob {
	return &RetentionPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "retention_purge_job"),
	}
}

// Start schedules the purge job.
func (j *RetentionPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeRemovedRecordsCommand(time.Now().Add(-j.retention))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Retention purge command rejected", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Retention purge failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Retention purge removed expired rows", "rows", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *RetentionPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention purge job stopped")
}
