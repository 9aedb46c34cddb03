package customer

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DefaultCity is used when an address omits the city.
const DefaultCity = "Lima"

// AddressDetails are the editable fields of an address.
type AddressDetails struct {
	Street    string
	Number    string
	District  string
	City      string
	Reference string
}

func (d AddressDetails) normalize() (AddressDetails, error) {
	d.Street = strings.TrimSpace(d.Street)
	d.Number = strings.TrimSpace(d.Number)
	d.District = strings.TrimSpace(d.District)
	d.City = strings.TrimSpace(d.City)
	d.Reference = strings.TrimSpace(d.Reference)
	if d.City == "" {
		d.City = DefaultCity
	}

	var problems []error
	if d.Street == "" {
		problems = append(problems, errs.NewValueIsRequiredError("street"))
	}
	if d.Number == "" {
		problems = append(problems, errs.NewValueIsRequiredError("number"))
	}
	if d.District == "" {
		problems = append(problems, errs.NewValueIsRequiredError("district"))
	}
	return d, errors.Join(problems...)
}

// Address is an entity owned by Customer and addressed by a locally unique id.
type Address struct {
	id        kernel.UUID
	details   AddressDetails
	isDefault bool
}

// RestoreAddress rebuilds an address loaded together with its customer.
func RestoreAddress(id kernel.UUID, details AddressDetails, isDefault bool) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Address{id: id, details: normalized, isDefault: isDefault}, nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) Details() AddressDetails {
	return a.details
}

func (a *Address) IsDefault() bool {
	return a.isDefault
}
