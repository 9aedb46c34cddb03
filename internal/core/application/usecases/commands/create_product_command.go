package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds an available product to the catalog.
type CreateProductCommand struct {
	productID kernel.UUID
	details   product.Details
	featured  bool

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, details product.Details, featured bool) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		productID: productID,
		details:   details,
		featured:  featured,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}

func (c CreateProductCommand) Featured() bool {
	return c.featured
}
