package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events to the outside world. It is called
// after the transaction that produced the events has committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
