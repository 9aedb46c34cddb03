package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProduct(t *testing.T, name string, price int64, available bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:        name,
		Description: name + " de la casa",
		Price:       kernel.RestoreMoney(decimal.NewFromInt(price)),
		Category:    product.MainCourse,
	}, now)
	require.NoError(t, err)
	p.SetAvailable(available, now)
	return p
}

func newOrder(t *testing.T, district string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Ceviche", kernel.RestoreMoney(decimal.NewFromInt(10)), 2, "")
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("Av. Grau", "120", district, "Lima", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item},
		order.Details{Address: address}, now)
	require.NoError(t, err)
	return o
}

func newCourier(t *testing.T, rating float64, zones ...string) *courier.Courier {
	t.Helper()
	email, err := kernel.NewEmail("rider@example.com")
	require.NoError(t, err)
	c, err := courier.RestoreCourier(kernel.NewUUID(), courier.Profile{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     email,
		Phone:     "999888777",
		Document:  courier.Document{Type: courier.DocumentDNI, Number: kernel.NewUUID().String()[:8]},
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Vehicle:   courier.Vehicle{Type: courier.VehicleBicycle},
	}, kernel.PasswordHash{}, courier.State{
		Zones:        zones,
		Available:    true,
		Active:       true,
		Rating:       rating,
		RegisteredAt: now,
	})
	require.NoError(t, err)
	return c
}
