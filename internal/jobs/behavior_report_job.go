package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// BehaviorReportJob periodically reports the size of the behavioral event log.
// The log is append-only, so the reported count only ever grows.
type BehaviorReportJob struct {
	recommender *services.Recommender
	cron        *cron.Cron
	schedule    string
	logger      *slog.Logger
}

// NewBehaviorReportJob creates a job that reports event log stats on the given
// cron schedule.
func NewBehaviorReportJob(recommender *services.Recommender, schedule string, logger *slog.Logger) *BehaviorReportJob {
	return &BehaviorReportJob{
		recommender: recommender,
		cron:        cron.New(cron.WithSeconds()),
		schedule:    schedule,
		logger:      logger.With("component", "behavior_report_job"),
	}
}

// Start begins the behavior report job.
func (j *BehaviorReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		events := j.recommender.Events()

		logins := 0
		for _, e := range events {
			if e.Type() == services.EventLogin {
				logins++
			}
		}

		j.logger.InfoContext(ctx, "Behavior report", "events", len(events), "logins", logins)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Behavior report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the behavior report job.
func (j *BehaviorReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Behavior report job stopped")
}
