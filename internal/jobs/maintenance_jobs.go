package jobs

import (
	"context"
	"time"

	"carservice-backend/internal/logger"
)

// ReportStaleOpenJobs logs every job that has been open longer than the
// configured threshold, giving the shop a daily view of vehicles stuck in
// service.
func (r *Runner) ReportStaleOpenJobs() {
	r.runWithRecovery("ReportStaleOpenJobs", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -r.config.Scheduler.StaleOpenJobDays)

		stale, err := r.store.JobRepository.FindOpenSince(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale open jobs", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Info("No stale open jobs")
			return
		}

		for _, job := range stale {
			logger.Warn("Job open past threshold",
				"job_id", job.ID,
				"reg_no", job.RegNo,
				"garage_id", job.GarageID,
				"date_in", job.DateIn,
				"open_days", int(time.Since(job.DateIn).Hours()/24))
		}
		logger.Info("Stale open job report finished", "count", len(stale), "threshold_days", r.config.Scheduler.StaleOpenJobDays)
	})
}

// PurgeActivityLog removes audit entries older than the retention window.
func (r *Runner) PurgeActivityLog() {
	r.runWithRecovery("PurgeActivityLog", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -r.config.Audit.RetentionDays)

		deleted, err := r.activitySvc.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge activity log", "error", err)
			return
		}
		logger.Info("Activity log purged", "deleted", deleted, "retention_days", r.config.Audit.RetentionDays)
	})
}

// RunAll runs every maintenance job once, for manual execution.
func (r *Runner) RunAll() {
	r.ReportStaleOpenJobs()
	r.PurgeActivityLog()
}
