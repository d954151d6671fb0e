package jobs

import (
	"fmt"
)

// ScheduledJob is a background job driven by its own cron scheduler.
type ScheduledJob interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []ScheduledJob
	started []ScheduledJob
}

// NewJobManager creates a manager for jobs. Nil entries are skipped so that
// optional jobs can be passed unconditionally.
func NewJobManager(jobs ...ScheduledJob) *JobManager {
	jm := &JobManager{}
	for _, j := range jobs {
		if j != nil {
			jm.jobs = append(jm.jobs, j)
		}
	}
	return jm
}

// StartAll starts all scheduled jobs in order.
// If one fails, the ones already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
