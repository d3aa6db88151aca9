// Package jobs provides scheduled background tasks for the logistics platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the route selection core.
//
// # Available Jobs
//
// 1. HoldExpiryJob - Runs every minute to release expired hub slot reservations
// and inventory holds, crediting their units back to the capacity and stock
// counters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseExpiredHoldsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry sweep uses the standard five-field cron expression "* * * * *"
// and runs once a minute. Expiry timestamps are advisory with a 24h/48h
// grain, so minute-level sweep latency is more than sufficient.
//
// # Error Handling
//
// - A failed sweep is logged and retried on the next tick; each sweep is
// one transaction, so a failure releases nothing and the next tick starts
// from a clean slate
// - Failed job starts will stop any already running jobs
package jobs
