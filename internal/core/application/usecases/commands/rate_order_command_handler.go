package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// RateOrderCommandHandler stores the rating and re-aggregates the courier's
// mean over all of their delivered and rated orders. The courier's delivery
// count grows only on the first rating of an order.
type RateOrderCommandHandler struct {
	uowFactory UoWFactory
	aggregator services.RatingAggregator
}

func NewRateOrderCommandHandler(uowFactory UoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
	}
}

func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return fmt.Errorf("rate order: %w", err)
	}

	first, err := o.Rate(cmd.Score(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("rate order: %w", err)
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.CourierID() != nil {
		if err = h.recalculateCourier(ctx, uow, o, first); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h RateOrderCommandHandler) recalculateCourier(ctx context.Context, uow UoW, rated *order.Order, first bool) error {
	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, *rated.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetRatedByCourier(ctx, c.ID())
	if err != nil {
		return fmt.Errorf("aggregate courier rating: %w", err)
	}
	orders = withOrder(orders, rated)

	average, _ := h.aggregator.Average(c.ID(), orders)
	if err = c.RecordRating(average, first); err != nil {
		return err
	}
	return courierRepo.Update(ctx, c)
}

// withOrder replaces the stored copy of o in orders, or appends o.
func withOrder(orders []*order.Order, o *order.Order) []*order.Order {
	for i, existing := range orders {
		if existing.IsEqual(o) {
			orders[i] = o
			return orders
		}
	}
	return append(orders, o)
}
