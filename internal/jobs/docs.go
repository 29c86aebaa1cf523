// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. StuckOrderSweepJob - Runs every minute to re-drive orders left in
// PROCESSING longer than the staleness threshold. This covers partially
// assigned orders waiting for another pass as well as orders abandoned by
// a consumer crash mid-pipeline.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, processHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Per-order processing failures are logged and do not stop the sweep; the
// remaining stuck orders are still attempted in the same run.
package jobs
