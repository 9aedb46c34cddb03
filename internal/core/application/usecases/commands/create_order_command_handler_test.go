package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	cust := testCustomer(t)
	p := testProduct(t, 10, true)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}},
		order.Details{Address: testAddress(t)}, nil)
	require.NoError(t, err)

	var saved *order.Order
	r.expectTx(ctx, true)
	r.customers.On("Get", ctx, cust.ID()).Return(cust, nil).Once()
	r.products.On("Get", ctx, p.ID()).Return(p, nil).Once()
	r.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	r.customers.On("Update", ctx, cust).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(r.factory())
	require.NoError(t, handler.Handle(ctx, cmd))

	r.assertExpectations(t)
	require.NotNil(t, saved)
	assert.Equal(t, cmd.OrderID(), saved.ID())
	assert.Equal(t, order.Pending, saved.Status())
	assert.Equal(t, "20.00", saved.Subtotal().String())
	assert.Equal(t, "25.00", saved.Total().String())
	assert.NotNil(t, cust.LastOrderAt())
}

func TestCreateOrderCommandHandler_Handle_StatusOverride(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	cust := testCustomer(t)
	p := testProduct(t, 10, true)
	confirmed := order.Confirmed

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]services.LineRequest{{ProductID: p.ID(), Quantity: 1}},
		order.Details{Address: testAddress(t)}, &confirmed)
	require.NoError(t, err)

	r.expectTx(ctx, true)
	r.customers.On("Get", ctx, cust.ID()).Return(cust, nil)
	r.products.On("Get", ctx, p.ID()).Return(p, nil)
	r.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.Confirmed
	})).Return(nil).Once()
	r.customers.On("Update", ctx, cust).Return(nil)

	require.NoError(t, commands.NewCreateOrderCommandHandler(r.factory()).Handle(ctx, cmd))
	r.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID,
		[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}},
		order.Details{Address: testAddress(t)}, nil)
	require.NoError(t, err)

	r.expectTx(ctx, false)
	r.customers.On("Get", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("customerId", customerID.String())).Once()

	err = commands.NewCreateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	cust := testCustomer(t)
	known := testProduct(t, 10, true)
	missing := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]services.LineRequest{{ProductID: known.ID(), Quantity: 1}, {ProductID: missing, Quantity: 1}},
		order.Details{Address: testAddress(t)}, nil)
	require.NoError(t, err)

	r.expectTx(ctx, false)
	r.customers.On("Get", ctx, cust.ID()).Return(cust, nil)
	r.products.On("Get", ctx, known.ID()).Return(known, nil)
	r.products.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("productId", missing.String()))

	err = commands.NewCreateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Nil(t, cust.LastOrderAt())
}

func TestCreateOrderCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	cust := testCustomer(t)
	p := testProduct(t, 10, false)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(),
		[]services.LineRequest{{ProductID: p.ID(), Quantity: 1}},
		order.Details{Address: testAddress(t)}, nil)
	require.NoError(t, err)

	r.expectTx(ctx, false)
	r.customers.On("Get", ctx, cust.ID()).Return(cust, nil)
	r.products.On("Get", ctx, p.ID()).Return(p, nil)

	err = commands.NewCreateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectIsUnavailable)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}},
		order.Details{Address: testAddress(t)}, nil)
	require.NoError(t, err)

	r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err = commands.NewCreateOrderCommandHandler(r.factory()).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)

	err := commands.NewCreateOrderCommandHandler(factory).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, order.Details{}, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		unknown := order.Unknown
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}}, order.Details{}, &unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires customer", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{},
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}}, order.Details{}, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
