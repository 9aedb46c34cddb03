// Package customerrepo persists customers and their owned addresses.
package customerrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row layout of the customers table.
type CustomerDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	FirstName    string       `gorm:"type:varchar(100);not null"`
	LastName     string       `gorm:"type:varchar(100);not null"`
	Email        string       `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string       `gorm:"type:varchar(32);not null"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	RegisteredAt time.Time    `gorm:"not null"`
	Active       bool         `gorm:"not null"`
	LastOrderAt  *time.Time
	Addresses    []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO keeps the customer's address list order in Position.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Number     string    `gorm:"type:varchar(32);not null"`
	District   string    `gorm:"type:varchar(100);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	Reference  string    `gorm:"type:text;not null"`
	IsDefault  bool      `gorm:"not null"`
}

func (AddressDTO) TableName() string {
	return "customer_addresses"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	customerID := c.ID().Bytes()
	contact := c.Contact()

	addresses := make([]AddressDTO, 0, len(c.Addresses()))
	for i, a := range c.Addresses() {
		d := a.Details()
		addresses = append(addresses, AddressDTO{
			ID:         a.ID().Bytes(),
			CustomerID: customerID,
			Position:   i,
			Street:     d.Street,
			Number:     d.Number,
			District:   d.District,
			City:       d.City,
			Reference:  d.Reference,
			IsDefault:  a.IsDefault(),
		})
	}

	return CustomerDTO{
		ID:           customerID,
		FirstName:    contact.FirstName,
		LastName:     contact.LastName,
		Email:        contact.Email.String(),
		Phone:        contact.Phone,
		PasswordHash: c.Password().Hash(),
		RegisteredAt: c.RegisteredAt(),
		Active:       c.IsActive(),
		LastOrderAt:  c.LastOrderAt(),
		Addresses:    addresses,
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	password, err := kernel.RestorePasswordHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	addresses := make([]*customer.Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addressID, idErr := kernel.UUIDFromBytes(a.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		address, addrErr := customer.RestoreAddress(addressID, customer.AddressDetails{
			Street:    a.Street,
			Number:    a.Number,
			District:  a.District,
			City:      a.City,
			Reference: a.Reference,
		}, a.IsDefault)
		if addrErr != nil {
			return nil, addrErr
		}
		addresses = append(addresses, address)
	}

	contact := customer.Contact{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     email,
		Phone:     dto.Phone,
	}

	return customer.RestoreCustomer(id, contact, password, addresses, dto.RegisteredAt, dto.Active, dto.LastOrderAt)
}
