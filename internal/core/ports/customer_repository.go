package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository persists customers together with their addresses.
type CustomerRepository interface {
	Add(ctx context.Context, customer *customer.Customer) error

	// Update replaces the stored addresses with the aggregate's current ones.
	Update(ctx context.Context, customer *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
