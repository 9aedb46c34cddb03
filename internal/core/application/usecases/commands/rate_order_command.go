package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand attaches a customer rating to a delivered order. The score
// range is checked by the order, after its status.
type RateOrderCommand struct {
	orderID kernel.UUID
	score   int
	comment string

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(orderID kernel.UUID, score int, comment string) (RateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RateOrderCommand{}, err
	}
	return RateOrderCommand{
		orderID: orderID,
		score:   score,
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RateOrderCommand) Score() int {
	return c.score
}

func (c RateOrderCommand) Comment() string {
	return c.comment
}
