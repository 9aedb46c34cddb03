package pgtest

import (
	"fmt"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Now is a timestamp that survives a Postgres round trip unchanged.
var Now = time.Date(2025, 6, 2, 13, 30, 0, 0, time.UTC)

// PasswordHash is a stored hash placeholder; nothing compares against it.
func PasswordHash(t testing.TB) kernel.PasswordHash {
	t.Helper()
	hash, err := kernel.RestorePasswordHash("$2a$04$fixturefixturefixturefixtureOu")
	require.NoError(t, err)
	return hash
}

func Money(t testing.TB, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount))
	require.NoError(t, err)
	return m
}

// Product builds a product with a unique name.
func Product(t testing.TB, category product.Category, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:        "Plato " + uuid.NewString()[:8],
		Description: "Receta de la casa",
		Price:       Money(t, price),
		Category:    category,
		Ingredients: []string{"pescado", "limon"},
		Tags:        []string{"marino"},
	}, Now)
	require.NoError(t, err)
	return p
}

// Customer builds a customer with a unique email.
func Customer(t testing.TB) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail(fmt.Sprintf("cliente-%s@example.com", uuid.NewString()[:8]))
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
		FirstName: "Lucia",
		LastName:  "Quispe",
		Email:     email,
		Phone:     "987654321",
	}, PasswordHash(t), Now)
	require.NoError(t, err)
	return c
}

// Courier builds a courier with unique email and document covering the zones.
func Courier(t testing.TB, zones ...string) *courier.Courier {
	t.Helper()
	if len(zones) == 0 {
		zones = []string{"Miraflores"}
	}
	suffix := uuid.NewString()[:8]
	email, err := kernel.NewEmail(fmt.Sprintf("repartidor-%s@example.com", suffix))
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), courier.Profile{
		FirstName: "Miguel",
		LastName:  "Torres",
		Email:     email,
		Phone:     "912345678",
		Document:  courier.Document{Type: courier.DocumentDNI, Number: suffix},
		BirthDate: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		Vehicle:   courier.Vehicle{Type: courier.VehicleMotorcycle, Plate: "ABC-123", Model: "Honda"},
	}, PasswordHash(t), zones, Now)
	require.NoError(t, err)
	return c
}

func Address(t testing.TB, district string) order.DeliveryAddress {
	t.Helper()
	a, err := order.NewDeliveryAddress("Av. Larco", "345", district, "", "Frente al parque")
	require.NoError(t, err)
	return a
}

// Order builds a pending order of two items totalling 30.00 before charges.
func Order(t testing.TB, customerID kernel.UUID, orderedAt time.Time) *order.Order {
	t.Helper()
	first, err := order.NewLineItem(kernel.NewUUID(), "Ceviche", Money(t, "12.50"), 2, "sin aji")
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Chicha morada", Money(t, "5.00"), 1, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{first, second}, order.Details{
		Address: Address(t, "Miraflores"),
		Payment: order.PaymentCard,
		Notes:   "Tocar el timbre",
	}, orderedAt)
	require.NoError(t, err)
	return o
}

// DeliveredOrder builds an order delivered by the courier, rated with score
// when score is positive.
func DeliveredOrder(t testing.TB, customerID, courierID kernel.UUID, deliveredAt time.Time, score int) *order.Order {
	t.Helper()
	o := Order(t, customerID, deliveredAt.Add(-time.Hour))
	require.NoError(t, o.ChangeStatus(order.Confirmed, deliveredAt))
	require.NoError(t, o.AssignCourier(courierID, deliveredAt))
	require.NoError(t, o.ChangeStatus(order.Delivered, deliveredAt))
	if score > 0 {
		_, err := o.Rate(score, "Todo bien", deliveredAt)
		require.NoError(t, err)
	}
	return o
}
