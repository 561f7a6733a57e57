// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields with seconds first.
//
// # Available Jobs
//
// 1. FleetReportJob - logs the dashboard KPIs, fleet utilization and on-time rate on a
// configurable schedule (FLEET_REPORT_SCHEDULE)
// 2. SessionSweepJob - runs every minute to drop assignment sessions idle for longer than
// the session TTL when they are kept in memory
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewFleetReportJob(dashboardHandler, "0 */15 * * * *", logger),
//		jobs.NewSessionSweepJob(sessions, 30*time.Minute, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep their schedule. A job that fails to start stops the ones
// already running.
package jobs
