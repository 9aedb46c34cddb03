// Package jobs provides scheduled background tasks for the food delivery backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with seconds.
//
// # Available Jobs
//
// 1. OrderDispatchJob - assigns the oldest confirmed order without courier to the
// best rated free courier covering its district. Disabled unless DISPATCH_ENABLED is set.
// 2. HealthProbeJob - checks the database and flips the gRPC health serving status.
//
// # Usage
//
//	dispatch := jobs.NewOrderDispatchJob(dispatchHandler, "*/5 * * * * *", log)
//	probe := jobs.NewHealthProbeJob(grpcHealth, "*/10 * * * * *", 2*time.Second, log, dbChecker)
//
//	jobManager := jobs.NewJobManager(dispatch, probe)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The dispatch job ignores the idle cases (no waiting order, no free courier)
// - The probe job logs only status changes
// - Failed job starts stop any already running jobs
package jobs
