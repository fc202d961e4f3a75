package jobs

import (
	"fmt"
	"log/slog"

	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	behaviorReportJob *BehaviorReportJob
	gatewayHealthJob  *GatewayHealthJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	recommender *services.Recommender,
	provider payment.Provider,
	reportSchedule string,
	healthSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		behaviorReportJob: NewBehaviorReportJob(recommender, reportSchedule, logger),
		gatewayHealthJob:  NewGatewayHealthJob(provider, healthSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.gatewayHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start gateway health job: %w", err)
	}

	if err := jm.behaviorReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.gatewayHealthJob.Stop()
		return fmt.Errorf("failed to start behavior report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.behaviorReportJob.Stop()
	jm.gatewayHealthJob.Stop()
}
