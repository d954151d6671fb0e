// Package jobs provides scheduled background tasks for the hiring backend.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// DatabaseHealthJob probes the database (every 30 seconds by default,
// DB_HEALTH_CRON overrides it) and logs when availability changes. It is only
// scheduled when the SQL store is enabled.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(healthJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
