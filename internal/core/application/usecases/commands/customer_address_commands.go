package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddressCommandIsNotConstructed = errors.New(
	"address commands must be created via their constructors",
)

// AddAddressCommand appends an address to a customer.
type AddAddressCommand struct {
	customerID kernel.UUID
	address    NewAddress

	guard guard.ConstructorGuard
}

func NewAddAddressCommand(customerID kernel.UUID, address NewAddress) (AddAddressCommand, error) {
	if err := errors.Join(customerID.Validate(), address.ID.Validate()); err != nil {
		return AddAddressCommand{}, err
	}
	return AddAddressCommand{customerID: customerID, address: address, guard: guard.NewConstructorGuard()}, nil
}

func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddressCommandIsNotConstructed)
}

func (c AddAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddAddressCommand) Address() NewAddress {
	return c.address
}

// UpdateAddressCommand replaces an address. A nil isDefault keeps the flag.
type UpdateAddressCommand struct {
	customerID kernel.UUID
	addressID  kernel.UUID
	details    customer.AddressDetails
	isDefault  *bool

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(
	customerID, addressID kernel.UUID,
	details customer.AddressDetails,
	isDefault *bool,
) (UpdateAddressCommand, error) {
	if err := errors.Join(customerID.Validate(), addressID.Validate()); err != nil {
		return UpdateAddressCommand{}, err
	}
	return UpdateAddressCommand{
		customerID: customerID,
		addressID:  addressID,
		details:    details,
		isDefault:  isDefault,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c UpdateAddressCommand) Details() customer.AddressDetails {
	return c.details
}

func (c UpdateAddressCommand) IsDefault() *bool {
	return c.isDefault
}

type RemoveAddressCommand struct {
	customerID kernel.UUID
	addressID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveAddressCommand(customerID, addressID kernel.UUID) (RemoveAddressCommand, error) {
	if err := errors.Join(customerID.Validate(), addressID.Validate()); err != nil {
		return RemoveAddressCommand{}, err
	}
	return RemoveAddressCommand{customerID: customerID, addressID: addressID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddressCommandIsNotConstructed)
}

func (c RemoveAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RemoveAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}
