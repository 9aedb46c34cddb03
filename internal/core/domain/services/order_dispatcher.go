package services

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned by Dispatch when no courier can take the order.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher links orders and couriers.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	picked, err := dispatcher.Dispatch(o, couriers, time.Now())
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // leave the order for the next run
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Assign hands the order to the courier. The courier is checked first, so a
// refused courier leaves the order unchanged.
func (OrderDispatcher) Assign(o *order.Order, c *courier.Courier, now time.Time) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}
	if err := c.AssignOrder(o.ID()); err != nil {
		return err
	}
	return o.AssignCourier(c.ID(), now)
}

// Dispatch picks the highest rated free courier whose zones cover the delivery
// district and assigns the order to them. Ties go to the earlier courier.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier, now time.Time) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var best *courier.Courier
	district := o.DeliveryAddress().District()
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsFree() || !c.CoversZone(district) {
			continue
		}
		if best == nil || c.Rating() > best.Rating() {
			best = c
		}
	}
	if best == nil {
		return nil, ErrCourierNotFound
	}

	if err := d.Assign(o, best, now); err != nil {
		return nil, err
	}
	return best, nil
}
