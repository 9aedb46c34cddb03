package jobs

import (
	"context"
	"errors"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type orderDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchOrderCommand) error
}

// OrderDispatchJob hands confirmed orders without courier to free couriers
// covering the delivery district.
type OrderDispatchJob struct {
	handler  orderDispatcher
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewOrderDispatchJob(handler orderDispatcher, schedule string, logger *zap.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "order_dispatch_job")),
	}
}

func (j *OrderDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order dispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce dispatches at most one order. An empty queue or no free courier is
// the normal idle state and is not logged as a failure.
func (j *OrderDispatchJob) RunOnce(ctx context.Context) {
	err := j.handler.Handle(ctx, commands.NewDispatchOrderCommand())
	switch {
	case err == nil:
		return
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreeCouriersFound):
		j.logger.Debug("nothing to dispatch", zap.Error(err))
	default:
		j.logger.Error("order dispatch failed", zap.Error(err))
	}
}

func (j *OrderDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order dispatch job stopped")
}
