package jobs

import (
	"context"
	"time"

	"fooddelivery/internal/pkg/health"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReportApplier receives every probe result.
type ReportApplier interface {
	Apply(report health.Report)
}

// HealthProbeJob runs the component checks and pushes the result to the gRPC
// health service.
type HealthProbeJob struct {
	checkers []health.Checker
	applier  ReportApplier
	timeout  time.Duration
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
	healthy  *bool
}

func NewHealthProbeJob(
	applier ReportApplier,
	schedule string,
	timeout time.Duration,
	logger *zap.Logger,
	checkers ...health.Checker,
) *HealthProbeJob {
	return &HealthProbeJob{
		checkers: checkers,
		applier:  applier,
		timeout:  timeout,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "health_probe_job")),
	}
}

// Start probes once right away so the serving status is known before the
// first tick.
func (j *HealthProbeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.RunOnce(context.Background())
	j.cron.Start()
	j.logger.Info("health probe job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce checks every component and logs only status changes.
func (j *HealthProbeJob) RunOnce(ctx context.Context) health.Report {
	report := health.Run(ctx, j.timeout, j.checkers...)
	j.applier.Apply(report)

	healthy := report.Healthy()
	if j.healthy == nil || *j.healthy != healthy {
		fields := []zap.Field{zap.String("status", report.Status)}
		for _, c := range report.Components {
			if c.Error != "" {
				fields = append(fields, zap.String(c.Name, c.Error))
			}
		}
		if healthy {
			j.logger.Info("health status changed", fields...)
		} else {
			j.logger.Warn("health status changed", fields...)
		}
	}
	j.healthy = &healthy
	return report
}

func (j *HealthProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("health probe job stopped")
}
