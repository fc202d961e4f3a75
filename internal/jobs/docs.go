// Package jobs provides scheduled background tasks for the service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed through
// JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recommender, provider, reportSchedule, healthSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. BehaviorReportJob - periodically logs the size of the behavioral event log
// 2. GatewayHealthJob - periodically probes the payment provider boundary
//
// Schedules are six-field cron expressions with a seconds column, taken from
// configuration. A failed job start stops any already running jobs.
package jobs
