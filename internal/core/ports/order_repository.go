package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates with their line items.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns an ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetRatedByCourier returns the delivered orders of the courier that carry a rating.
	GetRatedByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// CountActiveByCourier counts the courier's confirmed, preparing and en route orders.
	CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int64, error)

	// GetFirstConfirmedUnassigned returns the oldest confirmed order without a
	// courier, or an ObjectNotFoundError.
	GetFirstConfirmedUnassigned(ctx context.Context) (*order.Order, error)
}
