package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testProduct(t *testing.T, price int64, available bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:        "Ceviche clasico",
		Description: "Pescado del dia",
		Price:       kernel.RestoreMoney(decimal.NewFromInt(price)),
		Category:    product.Starters,
	}, fixedNow)
	require.NoError(t, err)
	p.SetAvailable(available, fixedNow)
	return p
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail("carla@example.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
		FirstName: "Carla",
		LastName:  "Rojas",
		Email:     email,
		Phone:     "955443322",
	}, kernel.PasswordHash{}, fixedNow)
	require.NoError(t, err)
	return c
}

func testProfile(t *testing.T) courier.Profile {
	t.Helper()
	email, err := kernel.NewEmail("jorge@example.com")
	require.NoError(t, err)
	return courier.Profile{
		FirstName: "Jorge",
		LastName:  "Paredes",
		Email:     email,
		Phone:     "944332211",
		Document:  courier.Document{Type: courier.DocumentCE, Number: "001122334"},
		BirthDate: time.Date(1992, 5, 20, 0, 0, 0, 0, time.UTC),
		Vehicle:   courier.Vehicle{Type: courier.VehicleMotorcycle, Plate: "XYZ-987"},
	}
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), testProfile(t), kernel.PasswordHash{}, []string{"Miraflores"}, fixedNow)
	require.NoError(t, err)
	return c
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	a, err := order.NewDeliveryAddress("Calle Berlin", "210", "Miraflores", "", "")
	require.NoError(t, err)
	return a
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Ceviche", kernel.RestoreMoney(decimal.NewFromInt(10)), 2, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item},
		order.Details{Address: testAddress(t)}, fixedNow)
	require.NoError(t, err)
	if status != order.Pending {
		if status == order.Delivered {
			require.NoError(t, o.AssignCourier(kernel.NewUUID(), fixedNow))
		}
		require.NoError(t, o.ChangeStatus(status, fixedNow))
	}
	return o
}
