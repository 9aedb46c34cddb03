package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addressDetails(street string) customer.AddressDetails {
	return customer.AddressDetails{Street: street, Number: "12", District: "Surquillo"}
}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	contact := testCustomer(t).Contact()

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), contact, kernel.PasswordHash{}, []commands.NewAddress{
		{ID: kernel.NewUUID(), Details: addressDetails("Jr. Union"), IsDefault: true},
		{ID: kernel.NewUUID(), Details: addressDetails("Av. Arequipa"), IsDefault: true},
	})
	require.NoError(t, err)

	var saved *customer.Customer
	r.expectTx(ctx, true)
	r.customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*customer.Customer) }).
		Return(nil).Once()

	require.NoError(t, commands.NewCreateCustomerCommandHandler(r.customerFactory()).Handle(ctx, cmd))

	r.assertExpectations(t)
	require.NotNil(t, saved)
	require.Len(t, saved.Addresses(), 2)
	require.NotNil(t, saved.DefaultAddress())
	assert.Equal(t, "Av. Arequipa", saved.DefaultAddress().Details().Street)
}

func TestCreateCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	r := newRepos()

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), testCustomer(t).Contact(), kernel.PasswordHash{}, nil)
	require.NoError(t, err)

	r.expectTx(ctx, false)
	r.customers.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("email"))

	err = commands.NewCreateCustomerCommandHandler(r.customerFactory()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddressCommandsHandler(t *testing.T) {
	ctx := t.Context()

	t.Run("add default unsets the previous one", func(t *testing.T) {
		r := newRepos()
		c := testCustomer(t)
		first, err := c.AddAddress(kernel.NewUUID(), addressDetails("Jr. Union"), true)
		require.NoError(t, err)

		cmd, err := commands.NewAddAddressCommand(c.ID(), commands.NewAddress{
			ID: kernel.NewUUID(), Details: addressDetails("Av. Benavides"), IsDefault: true,
		})
		require.NoError(t, err)

		r.expectTx(ctx, true)
		r.customers.On("Get", ctx, c.ID()).Return(c, nil)
		r.customers.On("Update", ctx, c).Return(nil).Once()

		require.NoError(t, commands.NewAddressCommandsHandler(r.customerFactory()).HandleAdd(ctx, cmd))

		r.assertExpectations(t)
		assert.False(t, first.IsDefault())
		assert.Equal(t, "Av. Benavides", c.DefaultAddress().Details().Street)
	})

	t.Run("update unknown address", func(t *testing.T) {
		r := newRepos()
		c := testCustomer(t)
		cmd, err := commands.NewUpdateAddressCommand(c.ID(), kernel.NewUUID(), addressDetails("x"), nil)
		require.NoError(t, err)

		r.expectTx(ctx, false)
		r.customers.On("Get", ctx, c.ID()).Return(c, nil)

		err = commands.NewAddressCommandsHandler(r.customerFactory()).HandleUpdate(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		r.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("remove address", func(t *testing.T) {
		r := newRepos()
		c := testCustomer(t)
		a, err := c.AddAddress(kernel.NewUUID(), addressDetails("Jr. Union"), false)
		require.NoError(t, err)
		cmd, err := commands.NewRemoveAddressCommand(c.ID(), a.ID())
		require.NoError(t, err)

		r.expectTx(ctx, true)
		r.customers.On("Get", ctx, c.ID()).Return(c, nil)
		r.customers.On("Update", ctx, c).Return(nil)

		require.NoError(t, commands.NewAddressCommandsHandler(r.customerFactory()).HandleRemove(ctx, cmd))
		assert.Empty(t, c.Addresses())
	})
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	c := testCustomer(t)
	contact := c.Contact()
	contact.Phone = "900000001"
	inactive := false

	cmd, err := commands.NewUpdateCustomerCommand(c.ID(), contact, nil, &inactive)
	require.NoError(t, err)

	r.expectTx(ctx, true)
	r.customers.On("Get", ctx, c.ID()).Return(c, nil)
	r.customers.On("Update", ctx, c).Return(nil)

	require.NoError(t, commands.NewUpdateCustomerCommandHandler(r.customerFactory()).Handle(ctx, cmd))

	assert.Equal(t, "900000001", c.Contact().Phone)
	assert.False(t, c.IsActive())
}

func TestDeleteCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteCustomerCommand(id)
	require.NoError(t, err)

	r.expectTx(ctx, false)
	r.customers.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("customerId", id.String()))

	err = commands.NewDeleteCustomerCommandHandler(r.customerFactory()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
