// Package jobs provides scheduled background tasks for the coffeeshop service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting for the order service.
//
// # Available Jobs
//
// 1. AbandonedOrdersJob - Runs every minute to flag pending orders that were never paid for
// 2. BoardReportJob - Runs every 30 seconds to log how many orders sit paid, preparing and ready
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(abandonedOrdersHandler, baristaBoardHandler, abandonedAfter, clk, logger)
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
// The abandoned order check uses "0 * * * * *" (top of every minute) and the
// board report uses "*/30 * * * * *" (every thirty seconds).
//
// # Error Handling
//
// - Both jobs only read the store; every order mutation happens in request handling
// - Query failures are logged and the next run retries from scratch
// - Failed job starts will stop any already running jobs
package jobs
