package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("snapshots name and price", func(t *testing.T) {
		ceviche := newProduct(t, "Ceviche", 10, true)
		chicha := newProduct(t, "Chicha morada", 4, true)

		items, err := pricer.Price([]services.LineRequest{
			{ProductID: ceviche.ID(), Quantity: 2},
			{ProductID: chicha.ID(), Quantity: 3, Notes: "helada"},
		}, []*product.Product{ceviche, chicha})
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, "Ceviche", items[0].Name())
		assert.Equal(t, "20.00", items[0].Subtotal().String())
		assert.Equal(t, "12.00", items[1].Subtotal().String())
		assert.Equal(t, "helada", items[1].Notes())
	})

	t.Run("unavailable product", func(t *testing.T) {
		soldOut := newProduct(t, "Causa", 8, false)

		items, err := pricer.Price([]services.LineRequest{{ProductID: soldOut.ID(), Quantity: 1}},
			[]*product.Product{soldOut})

		assert.ErrorIs(t, err, errs.ErrObjectIsUnavailable)
		assert.Contains(t, err.Error(), "Causa")
		assert.Nil(t, items)
	})

	t.Run("quantity below one", func(t *testing.T) {
		p := newProduct(t, "Causa", 8, true)

		_, err := pricer.Price([]services.LineRequest{{ProductID: p.ID(), Quantity: 0}}, []*product.Product{p})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := pricer.Price(nil, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("mismatched product", func(t *testing.T) {
		a := newProduct(t, "A", 1, true)
		b := newProduct(t, "B", 1, true)

		_, err := pricer.Price([]services.LineRequest{{ProductID: a.ID(), Quantity: 1}}, []*product.Product{b})

		assert.Error(t, err)
	})
}
