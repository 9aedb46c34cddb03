package commands

import (
	"context"
	"fmt"
	"time"
)

// ChangeOrderStatusCommandHandler allows any transition except delivering an
// order without courier. The courier is not released on any status.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
		return fmt.Errorf("change order status: %w", err)
	}

	if err = o.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return fmt.Errorf("change order status: %w", err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
