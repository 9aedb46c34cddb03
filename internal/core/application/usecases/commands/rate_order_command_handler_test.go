package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredBy(t *testing.T, c *courier.Courier, score int) *order.Order {
	t.Helper()
	o := testOrder(t, order.Pending)
	require.NoError(t, o.AssignCourier(c.ID(), fixedNow))
	require.NoError(t, o.ChangeStatus(order.Delivered, fixedNow))
	if score > 0 {
		_, err := o.Rate(score, "", fixedNow)
		require.NoError(t, err)
	}
	return o
}

func TestRateOrderCommandHandler_Handle_ReaggregatesCourier(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	c := testCourier(t)
	previous := deliveredBy(t, c, 3)
	target := deliveredBy(t, c, 0)

	cmd, err := commands.NewRateOrderCommand(target.ID(), 5, "excelente")
	require.NoError(t, err)

	r.expectTx(ctx, true)
	r.orders.On("Get", ctx, target.ID()).Return(target, nil).Once()
	r.orders.On("Update", ctx, target).Return(nil).Once()
	r.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	r.orders.On("GetRatedByCourier", ctx, c.ID()).Return([]*order.Order{previous}, nil).Once()
	r.couriers.On("Update", ctx, c).Return(nil).Once()

	require.NoError(t, commands.NewRateOrderCommandHandler(r.factory()).Handle(ctx, cmd))

	r.assertExpectations(t)
	require.NotNil(t, target.Rating())
	assert.Equal(t, 5, target.Rating().Score())
	assert.InDelta(t, 4.0, c.Rating(), 1e-9)
	assert.Equal(t, 1, c.TotalDeliveries())
}

func TestRateOrderCommandHandler_Handle_RerateDoesNotCountDeliveryTwice(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	c := testCourier(t)
	o := deliveredBy(t, c, 2)

	cmd, err := commands.NewRateOrderCommand(o.ID(), 4, "")
	require.NoError(t, err)

	r.expectTx(ctx, true)
	r.orders.On("Get", ctx, o.ID()).Return(o, nil)
	r.orders.On("Update", ctx, o).Return(nil)
	r.couriers.On("Get", ctx, c.ID()).Return(c, nil)
	r.orders.On("GetRatedByCourier", ctx, c.ID()).Return([]*order.Order{o}, nil)
	r.couriers.On("Update", ctx, c).Return(nil)

	require.NoError(t, commands.NewRateOrderCommandHandler(r.factory()).Handle(ctx, cmd))

	assert.InDelta(t, 4.0, c.Rating(), 1e-9)
	assert.Zero(t, c.TotalDeliveries())
}

func TestRateOrderCommandHandler_Handle_Failures(t *testing.T) {
	ctx := t.Context()

	t.Run("order not delivered", func(t *testing.T) {
		r := newRepos()
		o := testOrder(t, order.EnRoute)
		cmd, err := commands.NewRateOrderCommand(o.ID(), 5, "")
		require.NoError(t, err)

		r.expectTx(ctx, false)
		r.orders.On("Get", ctx, o.ID()).Return(o, nil)

		err = commands.NewRateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	for _, score := range []int{0, 6} {
		t.Run("score out of range", func(t *testing.T) {
			r := newRepos()
			o := testOrder(t, order.Delivered)
			cmd, err := commands.NewRateOrderCommand(o.ID(), score, "")
			require.NoError(t, err)

			r.expectTx(ctx, false)
			r.orders.On("Get", ctx, o.ID()).Return(o, nil)

			err = commands.NewRateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, o.Rating())
		})
	}
}
