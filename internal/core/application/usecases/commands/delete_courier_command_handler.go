package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// DeleteCourierCommandHandler refuses to delete a courier that still has
// confirmed, preparing or en route orders.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	if _, err := courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	active, err := uow.OrderRepository().CountActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}
	if active > 0 {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("courier %s has %d active orders", cmd.CourierID(), active))
	}

	if err = courierRepo.Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
