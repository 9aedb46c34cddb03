package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, courierID kernel.UUID, score int) *order.Order {
	t.Helper()
	o := newOrder(t, "Miraflores")
	require.NoError(t, o.AssignCourier(courierID, now))
	require.NoError(t, o.ChangeStatus(order.Delivered, now))
	if score > 0 {
		_, err := o.Rate(score, "", now)
		require.NoError(t, err)
	}
	return o
}

func TestRatingAggregator_Average(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	courierID := kernel.NewUUID()

	t.Run("mean over rated deliveries", func(t *testing.T) {
		orders := []*order.Order{
			deliveredOrder(t, courierID, 5),
			deliveredOrder(t, courierID, 4),
			deliveredOrder(t, courierID, 0),
			deliveredOrder(t, kernel.NewUUID(), 1),
		}

		avg, ok := aggregator.Average(courierID, orders)

		assert.True(t, ok)
		assert.InDelta(t, 4.5, avg, 1e-9)
	})

	t.Run("no rated orders", func(t *testing.T) {
		avg, ok := aggregator.Average(courierID, []*order.Order{deliveredOrder(t, courierID, 0)})

		assert.False(t, ok)
		assert.Zero(t, avg)
	})
}
