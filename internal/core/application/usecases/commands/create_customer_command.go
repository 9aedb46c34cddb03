package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// NewAddress is an address supplied together with a new customer.
type NewAddress struct {
	ID        kernel.UUID
	Details   customer.AddressDetails
	IsDefault bool
}

type CreateCustomerCommand struct {
	customerID kernel.UUID
	contact    customer.Contact
	password   kernel.PasswordHash
	addresses  []NewAddress

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	customerID kernel.UUID,
	contact customer.Contact,
	password kernel.PasswordHash,
	addresses []NewAddress,
) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{
		customerID: customerID,
		contact:    contact,
		password:   password,
		addresses:  addresses,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c CreateCustomerCommand) Password() kernel.PasswordHash {
	return c.password
}

func (c CreateCustomerCommand) Addresses() []NewAddress {
	return c.addresses
}
