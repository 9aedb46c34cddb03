package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// use the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the events of the
	// tracked orders.
	Commit(ctx context.Context) error

	// Rollback is a no-op when the transaction is already finished.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository

	CustomerRepository() CustomerRepository

	CourierRepository() CourierRepository

	OrderRepository() OrderRepository
}
