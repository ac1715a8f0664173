package config

import "time"

const (
	// DefaultDatabasePath is the default path for the catalog SQLite database.
	DefaultDatabasePath = "./library.db"

	// DefaultIntegritySweepSchedule runs the integrity sweep daily at 03:00.
	DefaultIntegritySweepSchedule = "0 3 * * *"

	defaultSessionLifetime     = 24 * time.Hour
	defaultTaskReleaseAfter    = 15 * time.Minute
	defaultTaskCleanupInterval = time.Hour
)
