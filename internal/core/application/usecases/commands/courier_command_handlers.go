package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierCommandsHandler handles the courier self-service commands.
type CourierCommandsHandler struct {
	uowFactory CourierUoWFactory
}

func NewCourierCommandsHandler(uowFactory CourierUoWFactory) CourierCommandsHandler {
	return CourierCommandsHandler{uowFactory: uowFactory}
}

func (h CourierCommandsHandler) HandleUpdate(ctx context.Context, cmd UpdateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CourierID(), func(c *courier.Courier) error {
		if err := c.UpdateProfile(cmd.Profile()); err != nil {
			return err
		}
		if p := cmd.Password(); p != nil {
			c.ChangePassword(*p)
		}
		if active := cmd.Active(); active != nil {
			c.SetActive(*active)
		}
		return nil
	})
}

// HandleSetAvailability fails with PreconditionFailed when going offline with
// an order in hand.
func (h CourierCommandsHandler) HandleSetAvailability(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CourierID(), func(c *courier.Courier) error {
		return c.SetAvailability(cmd.Available())
	})
}

func (h CourierCommandsHandler) HandleUpdateLocation(ctx context.Context, cmd UpdateCourierLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CourierID(), func(c *courier.Courier) error {
		return c.UpdateLocation(cmd.Point(), time.Now().UTC())
	})
}

func (h CourierCommandsHandler) HandleUpdateZones(ctx context.Context, cmd UpdateCourierZonesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CourierID(), func(c *courier.Courier) error {
		return c.SetZones(cmd.Zones())
	})
}

func (h CourierCommandsHandler) mutate(
	ctx context.Context,
	courierID kernel.UUID,
	apply func(*courier.Courier) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()
	c, err := repo.Get(ctx, courierID)
	if err != nil {
		return err
	}

	if err = apply(c); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
