package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

const DefaultCity = "Lima"

// DeliveryAddress is copied into the order, so later edits of the customer's
// address book do not affect it.
type DeliveryAddress struct {
	street    string
	number    string
	district  string
	city      string
	reference string
}

func NewDeliveryAddress(street, number, district, city, reference string) (DeliveryAddress, error) {
	a := DeliveryAddress{
		street:    strings.TrimSpace(street),
		number:    strings.TrimSpace(number),
		district:  strings.TrimSpace(district),
		city:      strings.TrimSpace(city),
		reference: strings.TrimSpace(reference),
	}
	if a.city == "" {
		a.city = DefaultCity
	}

	var problems []error
	if a.street == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryAddress.street"))
	}
	if a.number == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryAddress.number"))
	}
	if a.district == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryAddress.district"))
	}
	if err := errors.Join(problems...); err != nil {
		return DeliveryAddress{}, err
	}
	return a, nil
}

func (a DeliveryAddress) Street() string {
	return a.street
}

func (a DeliveryAddress) Number() string {
	return a.number
}

func (a DeliveryAddress) District() string {
	return a.district
}

func (a DeliveryAddress) City() string {
	return a.city
}

func (a DeliveryAddress) Reference() string {
	return a.reference
}

func (a DeliveryAddress) IsZero() bool {
	return a.street == "" && a.district == ""
}
