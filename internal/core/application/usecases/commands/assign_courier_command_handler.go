package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/services"
)

// AssignCourierCommandHandler links an order and a courier. Both writes happen
// in one transaction.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle looks the courier up before the order. An unavailable courier fails
// with PreconditionFailed.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}

	if err = h.dispatcher.Assign(o, c, time.Now().UTC()); err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
