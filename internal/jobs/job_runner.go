package jobs

import (
	"database/sql"

	"aris-backend/internal/config"
	"aris-backend/internal/logger"
	"aris-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs work directly on the
// database across all tenants; stored rental statuses are a cache and the
// nightly passes keep them aligned with the calendar.
type JobRunner struct {
	db       *sql.DB
	emailSvc service.EmailService
	config   *config.Config
}

func NewJobRunner(db *sql.DB, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueRentals()
	jr.MarkDueSoonRentals()
	jr.SendOverdueReminders()
}
