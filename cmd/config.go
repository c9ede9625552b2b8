package cmd

// Config carries the environment-driven settings of the service. Values come
// from .env via godotenv; see cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PurgeSchedule is a five-field cron expression for the retention purge.
	PurgeSchedule string
	// PurgeRetentionDays is how long soft-deleted rows are kept before the
	// purge may remove them.
	PurgeRetentionDays int
}
