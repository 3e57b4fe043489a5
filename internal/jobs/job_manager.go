package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyReportJob        *DailyReportJob
	contactCacheWarmupJob *ContactCacheWarmupJob
}

// NewJobManager takes the jobs to run. A nil warmup job is skipped, which is
// the case when no contact cache is configured.
func NewJobManager(dailyReportJob *DailyReportJob, contactCacheWarmupJob *ContactCacheWarmupJob) *JobManager {
	return &JobManager{
		dailyReportJob:        dailyReportJob,
		contactCacheWarmupJob: contactCacheWarmupJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}

	if jm.contactCacheWarmupJob != nil {
		if err := jm.contactCacheWarmupJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.dailyReportJob.Stop()
			return fmt.Errorf("failed to start contact cache warmup job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.contactCacheWarmupJob != nil {
		jm.contactCacheWarmupJob.Stop()
	}
	jm.dailyReportJob.Stop()
}
