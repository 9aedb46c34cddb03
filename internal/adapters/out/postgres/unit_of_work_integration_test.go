package postgres_test

import (
	"context"
	"errors"
	"testing"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db        *pgtest.Database
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

// SetupTest truncates all tables and installs a fresh publisher mock.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate(context.Background()))
	suite.publisher = &MockEventPublisher{}
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db.Gorm, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.db.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CourierRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "Commit without an open transaction should fail")
	suite.Require().NoError(uow.Rollback(ctx), "Rollback after commit is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_MultiRepositoryTransaction commits an order and the customer
// touch together and publishes the creation event afterwards.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	customer := pgtest.Customer(suite.T())
	suite.Require().NoError(suite.factory.Create().CustomerRepository().Add(ctx, customer))

	o := pgtest.Order(suite.T(), customer.ID(), pgtest.Now)
	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e order.Event) bool {
		return e.Type == order.EventCreated && e.OrderID.IsEqual(o.ID())
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	customer.TouchLastOrder(pgtest.Now)
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, customer))
	suite.Require().NoError(uow.Commit(ctx))

	storedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(storedOrder.IsEqual(o))
	storedCustomer, err := suite.factory.Create().CustomerRepository().Get(ctx, customer.ID())
	suite.Require().NoError(err)
	suite.NotNil(storedCustomer.LastOrderAt())

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(o.DomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	courier := pgtest.Courier(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, courier))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.factory.Create().CourierRepository().Get(ctx, courier.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

// TestUnitOfWork_PublishFailureDoesNotFailCommit keeps the committed state
// when the broker rejects the event.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

// TestUnitOfWork_OrderTrackedOnce publishes every event of an order saved twice exactly once.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderTrackedOnce() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.ChangeStatus(order.Confirmed, pgtest.Now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertNumberOfCalls(suite.T(), "Publish", 2)
	calls := suite.publisher.Calls
	suite.Equal(order.EventCreated, calls[0].Arguments.Get(1).(order.Event).Type)
	suite.Equal(order.EventStatusChanged, calls[1].Arguments.Get(1).(order.Event).Type)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	p := pgtest.Product(suite.T(), product.Desserts, "9.90")

	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(ctx, p))

	got, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.Name(), got.Name())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
