package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/payment"

	"github.com/robfig/cron/v3"
)

// gatewayProbeTimeout bounds a single reachability check.
const gatewayProbeTimeout = 5 * time.Second

// GatewayHealthJob periodically probes the payment provider boundary so an
// unreachable gateway shows up in the logs before a diner hits it at checkout.
type GatewayHealthJob struct {
	provider payment.Provider
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewGatewayHealthJob creates a job that probes the provider on the given cron
// schedule.
func NewGatewayHealthJob(provider payment.Provider, schedule string, logger *slog.Logger) *GatewayHealthJob {
	return &GatewayHealthJob{
		provider: provider,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "gateway_health_job"),
	}
}

// Start begins the gateway health job.
func (j *GatewayHealthJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayProbeTimeout)
		defer cancel()

		if err := j.provider.TestConnection(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment gateway unreachable", "error", err)
			return
		}

		j.logger.DebugContext(ctx, "Payment gateway reachable")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Gateway health job started", "schedule", j.schedule)
	return nil
}

// Stop stops the gateway health job.
func (j *GatewayHealthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Gateway health job stopped")
}
