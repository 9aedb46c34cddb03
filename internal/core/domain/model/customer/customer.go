package customer

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Contact holds the editable personal data of a customer.
type Contact struct {
	FirstName string
	LastName  string
	Email     kernel.Email
	Phone     string
}

func (c Contact) normalize() (Contact, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Phone = strings.TrimSpace(c.Phone)

	var problems []error
	if c.FirstName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("firstName"))
	}
	if c.LastName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("lastName"))
	}
	if c.Email.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if c.Phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	return c, errors.Join(problems...)
}

// Customer places orders. LastOrderAt is refreshed after each created order.
type Customer struct {
	id           kernel.UUID
	contact      Contact
	password     kernel.PasswordHash
	addresses    []*Address
	registeredAt time.Time
	active       bool
	lastOrderAt  *time.Time
	guard        guard.ConstructorGuard
}

// NewCustomer registers an active customer without addresses.
func NewCustomer(id kernel.UUID, contact Contact, password kernel.PasswordHash, now time.Time) (*Customer, error) {
	c := &Customer{
		password:     password,
		registeredAt: now,
		active:       true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setContact(contact)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rebuilds a customer with its addresses from storage.
func RestoreCustomer(
	id kernel.UUID,
	contact Contact,
	password kernel.PasswordHash,
	addresses []*Address,
	registeredAt time.Time,
	active bool,
	lastOrderAt *time.Time,
) (*Customer, error) {
	c := &Customer{
		password:     password,
		addresses:    addresses,
		registeredAt: registeredAt,
		active:       active,
		lastOrderAt:  lastOrderAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setContact(contact)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Contact() Contact {
	return c.contact
}

func (c *Customer) Password() kernel.PasswordHash {
	return c.password
}

func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *Customer) IsActive() bool {
	return c.active
}

func (c *Customer) LastOrderAt() *time.Time {
	return c.lastOrderAt
}

// Addresses returns the addresses in insertion order.
func (c *Customer) Addresses() []*Address {
	out := make([]*Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// DefaultAddress returns nil when no address is flagged as default.
func (c *Customer) DefaultAddress() *Address {
	for _, a := range c.addresses {
		if a.isDefault {
			return a
		}
	}
	return nil
}

func (c *Customer) UpdateContact(contact Contact) error {
	return c.setContact(contact)
}

func (c *Customer) ChangePassword(password kernel.PasswordHash) {
	c.password = password
}

func (c *Customer) SetActive(active bool) {
	c.active = active
}

// TouchLastOrder records when the customer last placed an order.
func (c *Customer) TouchLastOrder(at time.Time) {
	c.lastOrderAt = &at
}

// AddAddress appends a new address. Flagging it as default clears the flag on
// every other address.
func (c *Customer) AddAddress(id kernel.UUID, details AddressDetails, isDefault bool) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}

	address := &Address{id: id, details: normalized}
	c.addresses = append(c.addresses, address)
	if isDefault {
		c.makeDefault(address)
	}
	return address, nil
}

// UpdateAddress replaces the fields of an existing address. A nil isDefault
// keeps the current flag.
func (c *Customer) UpdateAddress(id kernel.UUID, details AddressDetails, isDefault *bool) error {
	address, err := c.findAddress(id)
	if err != nil {
		return err
	}
	normalized, err := details.normalize()
	if err != nil {
		return err
	}

	address.details = normalized
	if isDefault != nil {
		if *isDefault {
			c.makeDefault(address)
		} else {
			address.isDefault = false
		}
	}
	return nil
}

// RemoveAddress deletes an address. Removing the default leaves the customer without one.
func (c *Customer) RemoveAddress(id kernel.UUID) error {
	for i, a := range c.addresses {
		if a.id.IsEqual(id) {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("addressId", id.String())
}

func (c *Customer) findAddress(id kernel.UUID) (*Address, error) {
	for _, a := range c.addresses {
		if a.id.IsEqual(id) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("addressId", id.String())
}

func (c *Customer) makeDefault(target *Address) {
	for _, a := range c.addresses {
		a.isDefault = a == target
	}
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setContact(contact Contact) error {
	normalized, err := contact.normalize()
	if err != nil {
		return err
	}
	c.contact = normalized
	return nil
}
