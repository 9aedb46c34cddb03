package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/guard"
)

var ErrProductCommandIsNotConstructed = errors.New(
	"product commands must be created via their constructors",
)

// UpdateProductCommand replaces the descriptive fields of a product.
type UpdateProductCommand struct {
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, details product.Details) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{productID: productID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}

type DeleteProductCommand struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SetProductAvailabilityCommand switches a product on or off. A nil value toggles it.
type SetProductAvailabilityCommand struct {
	productID kernel.UUID
	available *bool

	guard guard.ConstructorGuard
}

func NewSetProductAvailabilityCommand(productID kernel.UUID, available *bool) (SetProductAvailabilityCommand, error) {
	if err := productID.Validate(); err != nil {
		return SetProductAvailabilityCommand{}, err
	}
	return SetProductAvailabilityCommand{productID: productID, available: available, guard: guard.NewConstructorGuard()}, nil
}

func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

func (c SetProductAvailabilityCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetProductAvailabilityCommand) Available() *bool {
	return c.available
}

type SetProductFeaturedCommand struct {
	productID kernel.UUID
	featured  bool

	guard guard.ConstructorGuard
}

func NewSetProductFeaturedCommand(productID kernel.UUID, featured bool) (SetProductFeaturedCommand, error) {
	if err := productID.Validate(); err != nil {
		return SetProductFeaturedCommand{}, err
	}
	return SetProductFeaturedCommand{productID: productID, featured: featured, guard: guard.NewConstructorGuard()}, nil
}

func (c SetProductFeaturedCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

func (c SetProductFeaturedCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetProductFeaturedCommand) Featured() bool {
	return c.featured
}
