package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AddressCommandsHandler runs the address commands through the customer
// aggregate, which keeps a single default address.
type AddressCommandsHandler struct {
	uowFactory CustomerUoWFactory
}

func NewAddressCommandsHandler(uowFactory CustomerUoWFactory) AddressCommandsHandler {
	return AddressCommandsHandler{uowFactory: uowFactory}
}

func (h AddressCommandsHandler) HandleAdd(ctx context.Context, cmd AddAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CustomerID(), func(c *customer.Customer) error {
		a := cmd.Address()
		_, err := c.AddAddress(a.ID, a.Details, a.IsDefault)
		return err
	})
}

func (h AddressCommandsHandler) HandleUpdate(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CustomerID(), func(c *customer.Customer) error {
		return c.UpdateAddress(cmd.AddressID(), cmd.Details(), cmd.IsDefault())
	})
}

func (h AddressCommandsHandler) HandleRemove(ctx context.Context, cmd RemoveAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.CustomerID(), func(c *customer.Customer) error {
		return c.RemoveAddress(cmd.AddressID())
	})
}

func (h AddressCommandsHandler) mutate(
	ctx context.Context,
	customerID kernel.UUID,
	apply func(*customer.Customer) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, customerID)
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
