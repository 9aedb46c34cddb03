package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const cancelledNotePrefix = "[Cancelled] "

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// DefaultShippingCost applies when the caller does not set one.
	DefaultShippingCost = kernel.RestoreMoney(decimal.NewFromInt(5))
)

// Charges are the caller supplied amounts on top of the line items. A nil
// field keeps the current amount, or the default on creation.
type Charges struct {
	Shipping *kernel.Money
	Discount *kernel.Money
}

// Details are the caller supplied fields of a new order.
type Details struct {
	Address          DeliveryAddress
	Payment          PaymentMethod
	Charges          Charges
	Notes            string
	EstimatedMinutes *int
}

// Changes lists the editable non-lifecycle fields. Nil fields are left as they are.
type Changes struct {
	Notes            *string
	EstimatedMinutes *int
	DeliveryAddress  *DeliveryAddress
	PaymentMethod    *PaymentMethod
	Charges          Charges
}

// State is the persisted lifecycle part of an order.
type State struct {
	Status           Status
	OrderedAt        time.Time
	DeliveredAt      *time.Time
	CourierID        *kernel.UUID
	Shipping         kernel.Money
	Discount         kernel.Money
	Notes            string
	EstimatedMinutes *int
	Rating           *Rating
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	items            []LineItem
	status           Status
	orderedAt        time.Time
	deliveredAt      *time.Time
	address          DeliveryAddress
	payment          PaymentMethod
	courierID        *kernel.UUID
	subtotal         kernel.Money
	shipping         kernel.Money
	discount         kernel.Money
	total            kernel.Money
	notes            string
	estimatedMinutes *int
	rating           *Rating
	createdAt        time.Time
	updatedAt        time.Time
	events           []Event
	guard            guard.ConstructorGuard
}

// NewOrder creates a pending order from priced line items.
func NewOrder(
	id, customerID kernel.UUID,
	items []LineItem,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		orderedAt: now,
		shipping:  DefaultShippingCost,
		discount:  kernel.ZeroMoney(),
		notes:     strings.TrimSpace(details.Notes),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	var minutesErr error
	if details.EstimatedMinutes != nil {
		minutesErr = o.setEstimatedMinutes(*details.EstimatedMinutes)
	}
	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(details.Address),
		o.setPayment(details.Payment),
		o.setCharges(details.Charges),
		minutesErr,
	); err != nil {
		return nil, err
	}

	o.recalculate()
	o.raise(EventCreated, now)
	return o, nil
}

// RestoreOrder rebuilds an order from storage. Totals are recomputed from the items.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []LineItem,
	address DeliveryAddress,
	payment PaymentMethod,
	state State,
) (*Order, error) {
	o := &Order{
		status:           state.Status,
		orderedAt:        state.OrderedAt,
		deliveredAt:      state.DeliveredAt,
		courierID:        state.CourierID,
		shipping:         state.Shipping,
		discount:         state.Discount,
		notes:            state.Notes,
		estimatedMinutes: state.EstimatedMinutes,
		rating:           state.Rating,
		createdAt:        state.CreatedAt,
		updatedAt:        state.UpdatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPayment(payment),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.recalculate()
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.address
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// CourierID returns nil until a courier is assigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) ShippingCost() kernel.Money {
	return o.shipping
}

func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Total may be negative when the discount exceeds subtotal plus shipping.
func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) EstimatedMinutes() *int {
	return o.estimatedMinutes
}

func (o *Order) Rating() *Rating {
	return o.rating
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsAssignedTo reports whether courierID is the assigned courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// Edit applies the non-nil changes atomically and recomputes the totals.
// Line items and lifecycle fields cannot be changed here.
func (o *Order) Edit(changes Changes, now time.Time) error {
	next := *o

	var problems []error
	if changes.Notes != nil {
		next.notes = strings.TrimSpace(*changes.Notes)
	}
	if changes.EstimatedMinutes != nil {
		problems = append(problems, next.setEstimatedMinutes(*changes.EstimatedMinutes))
	}
	if changes.DeliveryAddress != nil {
		problems = append(problems, next.setAddress(*changes.DeliveryAddress))
	}
	if changes.PaymentMethod != nil {
		problems = append(problems, next.setPayment(*changes.PaymentMethod))
	}
	problems = append(problems, next.setCharges(changes.Charges))
	if err := errors.Join(problems...); err != nil {
		return err
	}

	next.recalculate()
	next.updatedAt = now
	*o = next
	o.raise(EventUpdated, now)
	return nil
}

// ChangeStatus sets any recognized status. Delivered needs an assigned courier
// and stamps the delivery time. Setting cancelled here does not touch notes or
// the courier; Cancel does.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == Delivered {
		if o.courierID == nil {
			return errs.NewPreconditionFailedError(
				fmt.Sprintf("order %s cannot be delivered without a courier", o.id))
		}
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}

	o.status = target
	o.updatedAt = now
	o.raise(EventStatusChanged, now)
	return nil
}

// AssignCourier sets the courier. Confirmed and preparing orders advance to en route.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	o.courierID = courierID.Ptr()
	if o.status.AdvancesOnAssignment() {
		o.status = EnRoute
	}
	o.updatedAt = now
	o.raise(EventCourierAssigned, now)
	return nil
}

// Rate stores the rating of a delivered order, replacing any previous one.
// It reports whether this is the first rating of the order.
func (o *Order) Rate(score int, comment string, now time.Time) (bool, error) {
	if o.status != Delivered {
		return false, errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s is %s, only delivered orders can be rated", o.id, o.status))
	}
	rating, err := NewRating(score, comment, now)
	if err != nil {
		return false, err
	}

	first := o.rating == nil
	o.rating = &rating
	o.updatedAt = now
	o.raise(EventRated, now)
	return first, nil
}

// Cancel moves the order to cancelled and appends the reason to the notes.
// Releasing the courier is up to the caller.
func (o *Order) Cancel(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if o.status == Delivered {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s is already delivered", o.id))
	}

	note := cancelledNotePrefix + reason
	if o.notes != "" {
		note = o.notes + "\n" + note
	}
	o.notes = note
	o.status = Cancelled
	o.updatedAt = now
	o.raise(EventCancelled, now)
	return nil
}

func (o *Order) recalculate() {
	subtotal := kernel.ZeroMoney()
	for _, li := range o.items {
		subtotal = subtotal.Add(li.Subtotal())
	}
	o.subtotal = subtotal
	o.total = subtotal.Add(o.shipping).Sub(o.discount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address DeliveryAddress) error {
	if address.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.address = address
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if payment == "" {
		payment = PaymentCash
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setCharges(charges Charges) error {
	var problems []error
	if charges.Shipping != nil {
		if charges.Shipping.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"shippingCost", fmt.Errorf("%s is negative", charges.Shipping)))
		} else {
			o.shipping = *charges.Shipping
		}
	}
	if charges.Discount != nil {
		if charges.Discount.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"discount", fmt.Errorf("%s is negative", charges.Discount)))
		} else {
			o.discount = *charges.Discount
		}
	}
	return errors.Join(problems...)
}

func (o *Order) setEstimatedMinutes(minutes int) error {
	if minutes < 1 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes", fmt.Errorf("%d is less than 1", minutes))
	}
	m := minutes
	o.estimatedMinutes = &m
	return nil
}
