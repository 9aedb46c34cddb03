package cmd

import (
	"database/sql"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/health"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthProbeTimeout = 2 * time.Second

type CompositionRoot struct {
	cfg        Config
	sqlDB      *sql.DB
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires use cases on top of one connection pool. Order
// events go to publisher after each committed transaction; nil drops them.
func NewCompositionRoot(cfg Config, sqlDB *sql.DB, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		sqlDB:      sqlDB,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCustomer: commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()),
		DeleteCustomer: commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()),
		Addresses:      commands.NewAddressCommandsHandler(c.customerUoWFactory()),

		CreateProduct: commands.NewCreateProductCommandHandler(c.productUoWFactory()),
		Products:      commands.NewProductCommandsHandler(c.productUoWFactory()),

		CreateOrder:       commands.NewCreateOrderCommandHandler(c.uow()),
		UpdateOrder:       commands.NewUpdateOrderCommandHandler(c.uow()),
		ChangeOrderStatus: commands.NewChangeOrderStatusCommandHandler(c.uow()),
		AssignCourier:     commands.NewAssignCourierCommandHandler(c.uow()),
		RateOrder:         commands.NewRateOrderCommandHandler(c.uow()),
		CancelOrder:       commands.NewCancelOrderCommandHandler(c.uow()),

		CreateCourier: commands.NewCreateCourierCommandHandler(c.courierUoWFactory()),
		DeleteCourier: commands.NewDeleteCourierCommandHandler(c.courierUoWFactory()),
		Couriers:      commands.NewCourierCommandsHandler(c.courierUoWFactory()),

		GetCustomer:        queries.NewGetCustomerQueryHandler(c.gormDB),
		GetCustomerByEmail: queries.NewGetCustomerByEmailQueryHandler(c.gormDB),
		ListCustomers:      queries.NewListCustomersQueryHandler(c.gormDB),
		GetProduct:         queries.NewGetProductQueryHandler(c.gormDB),
		ListProducts:       queries.NewListProductsQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetCourier:         queries.NewGetCourierQueryHandler(c.gormDB),
		ListCouriers:       queries.NewListCouriersQueryHandler(c.gormDB),
		AvailableCouriers:  queries.NewListAvailableCouriersQueryHandler(c.gormDB),
		CourierStats:       queries.NewGetCourierStatsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) HealthCheckers() []health.Checker {
	return []health.Checker{postgres.NewPingChecker(c.sqlDB)}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.HealthCheckers()...)
}

// CreateJobManager returns the background jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager(applier jobs.ReportApplier, logger *zap.Logger) *jobs.JobManager {
	list := []jobs.Job{
		jobs.NewHealthProbeJob(applier, c.cfg.HealthProbeSchedule, healthProbeTimeout, logger, c.HealthCheckers()...),
	}
	if c.cfg.DispatchEnabled {
		list = append(list, jobs.NewOrderDispatchJob(c.CreateDispatchOrderCommandHandler(), c.cfg.DispatchSchedule, logger))
	}
	return jobs.NewJobManager(list...)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
