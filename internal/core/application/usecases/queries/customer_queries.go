package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrGetCustomerByEmailQueryIsNotConstructed = errors.New(
		"GetCustomerByEmailQuery must be created via NewGetCustomerByEmailQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

type GetCustomerQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// GetCustomerByEmailQuery looks a customer up by the normalized address.
type GetCustomerByEmailQuery struct {
	email kernel.Email
	guard guard.ConstructorGuard
}

func NewGetCustomerByEmailQuery(rawEmail string) (GetCustomerByEmailQuery, error) {
	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return GetCustomerByEmailQuery{}, err
	}
	return GetCustomerByEmailQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerByEmailQuery) Email() kernel.Email {
	return q.email
}

func (q GetCustomerByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByEmailQueryIsNotConstructed)
}

type ListCustomersQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListCustomersQuery(activeOnly bool) (ListCustomersQuery, error) {
	return ListCustomersQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomersQuery) ActiveOnly() bool {
	return q.activeOnly
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}
