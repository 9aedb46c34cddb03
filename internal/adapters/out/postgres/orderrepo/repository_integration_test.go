package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackOrder(aggregate *order.Order) {
	m.Called(aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	tracker    *MockAggregateTracker
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate(context.Background()))
	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackOrder", mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db.Gorm, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.db.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.tracker.AssertCalled(suite.T(), "TrackOrder", o)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.True(got.CustomerID().IsEqual(o.CustomerID()))
	suite.Equal(order.Pending, got.Status())
	suite.Equal(order.PaymentCard, got.PaymentMethod())
	suite.Equal(o.DeliveryAddress(), got.DeliveryAddress())
	suite.Equal("Tocar el timbre", got.Notes())
	suite.Require().Len(got.Items(), 2)
	suite.Equal("Ceviche", got.Items()[0].Name())
	suite.Equal("sin aji", got.Items()[0].Notes())
	suite.Equal(2, got.Items()[0].Quantity())
	suite.True(got.Items()[0].Subtotal().IsEqual(pgtest.Money(suite.T(), "25.00")))
	suite.True(got.Subtotal().IsEqual(pgtest.Money(suite.T(), "30.00")))
	suite.True(got.ShippingCost().IsEqual(pgtest.Money(suite.T(), "5.00")))
	suite.True(got.Total().IsEqual(pgtest.Money(suite.T(), "35.00")))
	suite.Nil(got.CourierID())
	suite.Nil(got.Rating())
	suite.Empty(got.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleFieldsArePersisted() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	courierID := kernel.NewUUID()
	deliveredAt := pgtest.Now.Add(40 * time.Minute)
	suite.Require().NoError(o.ChangeStatus(order.Confirmed, pgtest.Now))
	suite.Require().NoError(o.AssignCourier(courierID, pgtest.Now))
	suite.Require().NoError(o.ChangeStatus(order.Delivered, deliveredAt))
	_, err := o.Rate(5, "Excelente", deliveredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Require().NotNil(got.CourierID())
	suite.True(got.CourierID().IsEqual(courierID))
	suite.Require().NotNil(got.DeliveredAt())
	suite.True(got.DeliveredAt().Equal(deliveredAt))
	suite.Require().NotNil(got.Rating())
	suite.Equal(5, got.Rating().Score())
	suite.Equal("Excelente", got.Rating().Comment())
	suite.Len(got.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ChargesRecomputeTotal() {
	ctx := context.Background()
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	discount := pgtest.Money(suite.T(), "7.50")
	suite.Require().NoError(o.Edit(order.Changes{Charges: order.Charges{Discount: &discount}}, pgtest.Now))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.Discount().IsEqual(discount))
	suite.True(got.Total().IsEqual(pgtest.Money(suite.T(), "27.50")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)

	err := suite.repository.Update(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetRatedByCourier_ReturnsOnlyRatedDeliveries() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	rated := pgtest.DeliveredOrder(suite.T(), customerID, courierID, pgtest.Now, 4)
	unrated := pgtest.DeliveredOrder(suite.T(), customerID, courierID, pgtest.Now, 0)
	otherCourier := pgtest.DeliveredOrder(suite.T(), customerID, kernel.NewUUID(), pgtest.Now, 5)
	for _, o := range []*order.Order{rated, unrated, otherCourier} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetRatedByCourier(ctx, courierID)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].IsEqual(rated))
	suite.Equal(4, orders[0].Rating().Score())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByCourier() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	statuses := []order.Status{order.Confirmed, order.Preparing, order.EnRoute, order.Delivered, order.Cancelled}
	for _, status := range statuses {
		o := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
		suite.Require().NoError(o.AssignCourier(courierID, pgtest.Now))
		suite.Require().NoError(o.ChangeStatus(status, pgtest.Now))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	count, err := suite.repository.CountActiveByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	count, err = suite.repository.CountActiveByCourier(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstConfirmedUnassigned_ReturnsOldest() {
	ctx := context.Background()

	newer := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)
	suite.Require().NoError(newer.ChangeStatus(order.Confirmed, pgtest.Now))
	older := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now.Add(-time.Hour))
	suite.Require().NoError(older.ChangeStatus(order.Confirmed, pgtest.Now))
	assigned := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now.Add(-2*time.Hour))
	suite.Require().NoError(assigned.ChangeStatus(order.Confirmed, pgtest.Now))
	suite.Require().NoError(assigned.AssignCourier(kernel.NewUUID(), pgtest.Now))
	pending := pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now.Add(-3*time.Hour))

	for _, o := range []*order.Order{newer, older, assigned, pending} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.GetFirstConfirmedUnassigned(ctx)

	suite.Require().NoError(err)
	suite.True(got.IsEqual(older))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstConfirmedUnassigned_NoneWaiting_ReturnsNotFound() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, pgtest.Order(suite.T(), kernel.NewUUID(), pgtest.Now)))

	_, err := suite.repository.GetFirstConfirmedUnassigned(ctx)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Gorm.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
