// Package jobs provides scheduled background tasks for the haulage system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(expiringDocumentsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DocumentExpiryJob runs daily at 06:00 and logs a warning for every driver
// or vehicle document expiring within the next 30 days, so the fleet team can
// renew paperwork before the compliance gate starts rejecting assignments.
package jobs
