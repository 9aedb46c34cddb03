package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// GetOrderQuery loads one order with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrdersFilter narrows ListOrdersQuery. Nil fields do not filter.
type OrdersFilter struct {
	CustomerID *kernel.UUID
	CourierID  *kernel.UUID
	Status     *order.Status
}

// ListOrdersQuery lists orders newest first.
//
// Example:
//
//	status := order.EnRoute
//	query, err := NewListOrdersQuery(OrdersFilter{Status: &status})
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter OrdersFilter
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(filter OrdersFilter) (ListOrdersQuery, error) {
	var problems []error
	if filter.CustomerID != nil {
		problems = append(problems, filter.CustomerID.Validate())
	}
	if filter.CourierID != nil {
		problems = append(problems, filter.CourierID.Validate())
	}
	if filter.Status != nil {
		problems = append(problems, filter.Status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Filter() OrdersFilter {
	return q.filter
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
