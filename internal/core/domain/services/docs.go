// Package services holds domain logic that spans several aggregates:
//   - OrderPricer snapshots catalog products into order line items
//   - OrderDispatcher assigns couriers to orders, by hand or automatically
//   - RatingAggregator recomputes a courier's mean rating from rated orders
//
// The services are stateless and perform no I/O; use cases load and persist
// the aggregates around them.
package services
