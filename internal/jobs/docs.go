// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job today is RetentionPurgeJob, which periodically removes rows
// that were soft-deleted longer ago than the configured retention window.
// Normal deletion in the API is always soft; without the purge, deleted rows
// would accumulate forever.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, schedule, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
