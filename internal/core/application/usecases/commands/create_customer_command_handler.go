package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler registers a customer. A duplicate email is
// rejected by the repository.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Contact(), cmd.Password(), time.Now().UTC())
	if err != nil {
		return err
	}
	for _, a := range cmd.Addresses() {
		if _, err = c.AddAddress(a.ID, a.Details, a.IsDefault); err != nil {
			return fmt.Errorf("address: %w", err)
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
