package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces the contact data. Password and active flag
// change only when set.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	contact    customer.Contact
	password   *kernel.PasswordHash
	active     *bool

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	contact customer.Contact,
	password *kernel.PasswordHash,
	active *bool,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	return UpdateCustomerCommand{
		customerID: customerID,
		contact:    contact,
		password:   password,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c UpdateCustomerCommand) Password() *kernel.PasswordHash {
	return c.password
}

func (c UpdateCustomerCommand) Active() *bool {
	return c.active
}
