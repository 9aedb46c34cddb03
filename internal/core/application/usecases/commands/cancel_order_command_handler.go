package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order that was not delivered and frees
// the courier when this order is their current one. A courier that no longer
// exists is skipped.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	if err = o.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if courierID := o.CourierID(); courierID != nil {
		c, err := courierRepo.Get(ctx, *courierID)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		case c.ReleaseOrder(o.ID()):
			if err = courierRepo.Update(ctx, c); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
