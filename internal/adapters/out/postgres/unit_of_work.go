// Package postgres provides the GORM implementation of the Unit of Work pattern,
// the connection bootstrap and the embedded schema migrations.
//
// A unit of work opens one transaction; every repository obtained from it
// runs inside that transaction. Orders written through the unit of work are
// tracked and their domain events are handed to the publisher once the
// transaction has committed.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork instance.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
}

// NewGormUnitOfWorkFactory creates a factory. A nil publisher drops events.
//
// Example:
//
//	sqlDB, gormDB, err := postgres.Connect(ctx, cfg.DSN())
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(gormDB, publisher)
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.OrderEventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, publisher: publisher}
}

// Create produces a new UnitOfWork with its own transaction state and tracked orders.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
	}
}

// GormUnitOfWork coordinates one database transaction and the orders it touched.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	tracked   []*order.Order
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and then publishes the domain events of
// every tracked order. Publishing failures are logged, never returned: the
// state change is already durable.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = nil
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction. It is a no-op once the transaction has
// been committed or rolled back, so handlers can always defer it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.tracked = nil
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

// OrderRepository returns a repository that reports every written order back
// to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackOrder registers an order written in this unit of work. The same
// aggregate is tracked once however often it is saved.
func (uow *GormUnitOfWork) TrackOrder(aggregate *order.Order) {
	for _, o := range uow.tracked {
		if o == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = nil

	for _, o := range tracked {
		events := o.DomainEvents()
		o.ClearDomainEvents()
		if uow.publisher == nil {
			continue
		}
		for _, event := range events {
			if err := uow.publisher.Publish(ctx, event); err != nil {
				logger.FromCtx(ctx).Warn("order event not published",
					zap.String("event", string(event.Type)),
					zap.String("order_id", event.OrderID.String()),
					zap.Error(err),
				)
			}
		}
	}
}
