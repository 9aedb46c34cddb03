package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventCreated         EventType = "order.created"
	EventStatusChanged   EventType = "order.status_changed"
	EventCourierAssigned EventType = "order.courier_assigned"
	EventRated           EventType = "order.rated"
	EventCancelled       EventType = "order.cancelled"
	EventUpdated         EventType = "order.updated"
)

// Event describes a change of an order after it happened.
type Event struct {
	Type       EventType
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	Status     Status
	OccurredAt time.Time
}

func (o *Order) raise(t EventType, at time.Time) {
	var courierID *kernel.UUID
	if o.courierID != nil {
		courierID = o.courierID.Ptr()
	}
	o.events = append(o.events, Event{
		Type:       t,
		OrderID:    o.id,
		CustomerID: o.customerID,
		CourierID:  courierID,
		Status:     o.status,
		OccurredAt: at,
	})
}

// DomainEvents returns the events recorded since the order was loaded.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}
