package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// RatingAggregator computes a courier's rating from scratch on every call.
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Average is the arithmetic mean of the scores of the delivered and rated
// orders assigned to courierID. It returns 0 and false when there are none.
func (RatingAggregator) Average(courierID kernel.UUID, orders []*order.Order) (float64, bool) {
	var (
		sum   int
		count int
	)
	for _, o := range orders {
		if o.Status() != order.Delivered || o.Rating() == nil || !o.IsAssignedTo(courierID) {
			continue
		}
		sum += o.Rating().Score()
		count++
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}
