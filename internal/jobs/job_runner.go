package jobs

import (
	"carservice-backend/internal/config"
	"carservice-backend/internal/logger"
	"carservice-backend/internal/repository/postgres"
	"carservice-backend/internal/service"
)

// Runner coordinates the scheduled maintenance jobs.
type Runner struct {
	store       *postgres.Store
	activitySvc service.ActivityService
	config      *config.Config
}

func NewRunner(store *postgres.Store, activitySvc service.ActivityService, cfg *config.Config) *Runner {
	return &Runner{
		store:       store,
		activitySvc: activitySvc,
		config:      cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (r *Runner) Config() *config.Config {
	return r.config
}

// runWithRecovery wraps job execution with panic recovery
func (r *Runner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Job panicked", "job", jobName, "panic", rec)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
