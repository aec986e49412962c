// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to expire booking requests whose
// acceptance window lapsed without a chef decision.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOverdueHandler, logger)
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
// The sweep uses the cron expression "0 * * * * *", once a minute at the top
// of the minute. Each run derives overdueness from the stored deadlines, so
// runs are idempotent and safe after downtime.
//
// # Error Handling
//
// Orders that lose the conditional update to a concurrent chef decision or
// customer declaration are skipped inside the handler; only infrastructure
// failures surface here and are logged.
package jobs
