// Package jobs runs the scheduled background work of the service on
// github.com/robfig/cron/v3 with six-field (seconds) schedules.
//
// SessionEvictionJob ends order sessions with no activity for longer than the
// configured idle TTL. It runs every minute by default:
//
//	jobManager := jobs.NewJobManager(evictHandler, "0 * * * * *", 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Errors are logged and the job keeps its schedule.
package jobs
