// Package ports defines the contracts between the domain and the adapters:
// repositories, the unit of work binding them to one transaction, and the
// order event publisher.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository persists courier aggregates.
type CourierRepository interface {
	Add(ctx context.Context, courier *courier.Courier) error

	Update(ctx context.Context, courier *courier.Courier) error

	// Get returns an ObjectNotFoundError when no courier has the id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllFree returns available, active couriers without a current order,
	// highest rating first.
	//
	// Example:
	//   free, err := repo.GetAllFree(ctx)
	//   if err != nil {
	//       return fmt.Errorf("get free couriers: %w", err)
	//   }
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)
}
