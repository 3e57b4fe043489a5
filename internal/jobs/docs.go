// Package jobs provides scheduled background tasks for the delivery back-office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Specs have six fields, the first one being seconds.
//
// # Available Jobs
//
// 1. DailyReportJob - Writes the spreadsheet of the day's deliveries (default 23:00 in APP_TIMEZONE)
// 2. ContactCacheWarmupJob - Refills the contact cache every five minutes when Redis is configured
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dailyReportJob, warmupJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Job runs log failures and wait for the next tick, nothing is retried
// - Failed job starts will stop any already running jobs
package jobs
