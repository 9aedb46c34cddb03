package queries_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.True(t, query.OrderID().IsEqual(id))
	assert.NoError(t, query.Validate())

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	assert.Error(t, err)
}

func TestNewListOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	status := order.Unknown

	_, err := queries.NewListOrdersQuery(queries.OrdersFilter{Status: &status})

	assert.Error(t, err)
}

func TestNewListProductsQuery(t *testing.T) {
	t.Run("trims_search", func(t *testing.T) {
		query, err := queries.NewListProductsQuery(queries.ProductsFilter{Search: "  lomo  "})
		require.NoError(t, err)
		assert.Equal(t, "lomo", query.Filter().Search)
	})

	t.Run("negative_limit", func(t *testing.T) {
		_, err := queries.NewListProductsQuery(queries.ProductsFilter{Limit: -1})
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown_category", func(t *testing.T) {
		category := product.Category("pizzas")
		_, err := queries.NewListProductsQuery(queries.ProductsFilter{Category: &category})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetCustomerByEmailQuery_NormalizesAddress(t *testing.T) {
	query, err := queries.NewGetCustomerByEmailQuery(" Lucia@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "lucia@example.com", query.Email().String())

	_, err = queries.NewGetCustomerByEmailQuery("not-an-email")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListAvailableCouriersQuery_NormalizesZones(t *testing.T) {
	query, err := queries.NewListAvailableCouriersQuery([]string{" Miraflores", "", "BARRANCO "})

	require.NoError(t, err)
	assert.Equal(t, []string{"miraflores", "barranco"}, query.Zones())
}

func TestQueryHandlers_RejectZeroValueQueries(t *testing.T) {
	ctx := context.Background()

	_, err := queries.NewGetOrderQueryHandler(nil).Handle(ctx, queries.GetOrderQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.NewListProductsQueryHandler(nil).Handle(ctx, queries.ListProductsQuery{})
	assert.ErrorIs(t, err, queries.ErrListProductsQueryIsNotConstructed)

	_, err = queries.NewGetCourierStatsQueryHandler(nil).Handle(ctx, queries.GetCourierStatsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetCourierStatsQueryIsNotConstructed)
}
