// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CashSessionWatchJob warns about cash register sessions that have been open longer
// than the configured limit, usually a shift nobody closed.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(staleSessionsHandler, cfg.CashSessionWatchSchedule, cfg.CashSessionMaxOpen, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules are six-field cron expressions (seconds first), e.g. "0 */15 * * * *".
package jobs
