package customer_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	email, err := kernel.NewEmail("rosa.quispe@example.com")
	require.NoError(t, err)
	password, err := kernel.RestorePasswordHash("$2a$10$abcdefghijklmnopqrstuv")
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
		FirstName: "Rosa",
		LastName:  "Quispe",
		Email:     email,
		Phone:     "987654321",
	}, password, time.Now())
	require.NoError(t, err)
	return c
}

func address(street string) customer.AddressDetails {
	return customer.AddressDetails{Street: street, Number: "123", District: "Miraflores"}
}

func defaultCount(c *customer.Customer) int {
	n := 0
	for _, a := range c.Addresses() {
		if a.IsDefault() {
			n++
		}
	}
	return n
}

func TestNewCustomer(t *testing.T) {
	t.Run("starts active without addresses", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsActive())
		assert.Empty(t, c.Addresses())
		assert.Nil(t, c.LastOrderAt())
		assert.Nil(t, c.DefaultAddress())
	})

	t.Run("requires contact fields", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{}, kernel.PasswordHash{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"firstName", "lastName", "email", "phone"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestCustomer_AddAddress(t *testing.T) {
	t.Run("defaults the city", func(t *testing.T) {
		c := newCustomer(t)

		a, err := c.AddAddress(kernel.NewUUID(), address("Av. Larco"), false)

		require.NoError(t, err)
		assert.Equal(t, customer.DefaultCity, a.Details().City)
	})

	t.Run("new default unsets the previous one", func(t *testing.T) {
		c := newCustomer(t)
		first, err := c.AddAddress(kernel.NewUUID(), address("Av. Larco"), true)
		require.NoError(t, err)

		second, err := c.AddAddress(kernel.NewUUID(), address("Jr. Ucayali"), true)
		require.NoError(t, err)

		assert.False(t, first.IsDefault())
		assert.True(t, second.IsDefault())
		assert.Equal(t, 1, defaultCount(c))
		assert.True(t, c.DefaultAddress().ID().IsEqual(second.ID()))
	})

	t.Run("rejects incomplete addresses", func(t *testing.T) {
		c := newCustomer(t)

		_, err := c.AddAddress(kernel.NewUUID(), customer.AddressDetails{Street: "Av. Larco"}, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, c.Addresses())
	})
}

func TestCustomer_UpdateAddress(t *testing.T) {
	c := newCustomer(t)
	first, _ := c.AddAddress(kernel.NewUUID(), address("Av. Larco"), true)
	second, _ := c.AddAddress(kernel.NewUUID(), address("Jr. Ucayali"), false)

	t.Run("promoting an address keeps a single default", func(t *testing.T) {
		makeDefault := true

		require.NoError(t, c.UpdateAddress(second.ID(), address("Jr. Ucayali 2"), &makeDefault))

		assert.True(t, second.IsDefault())
		assert.False(t, first.IsDefault())
		assert.Equal(t, "Jr. Ucayali 2", second.Details().Street)
		assert.Equal(t, 1, defaultCount(c))
	})

	t.Run("nil flag keeps the current default", func(t *testing.T) {
		require.NoError(t, c.UpdateAddress(second.ID(), address("Jr. Ucayali 3"), nil))

		assert.True(t, second.IsDefault())
	})

	t.Run("unknown address is not found", func(t *testing.T) {
		err := c.UpdateAddress(kernel.NewUUID(), address("x"), nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCustomer_RemoveAddress(t *testing.T) {
	c := newCustomer(t)
	first, _ := c.AddAddress(kernel.NewUUID(), address("Av. Larco"), true)
	second, _ := c.AddAddress(kernel.NewUUID(), address("Jr. Ucayali"), false)

	require.NoError(t, c.RemoveAddress(first.ID()))

	require.Len(t, c.Addresses(), 1)
	assert.True(t, c.Addresses()[0].ID().IsEqual(second.ID()))
	assert.Nil(t, c.DefaultAddress())
	require.ErrorIs(t, c.RemoveAddress(first.ID()), errs.ErrObjectNotFound)
}

func TestCustomer_TouchLastOrder(t *testing.T) {
	c := newCustomer(t)
	at := time.Date(2025, 5, 4, 20, 15, 0, 0, time.UTC)

	c.TouchLastOrder(at)

	require.NotNil(t, c.LastOrderAt())
	assert.Equal(t, at, *c.LastOrderAt())
}
