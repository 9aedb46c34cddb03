// Package kernel holds the value objects shared by every aggregate of the food
// delivery domain:
//   - UUID: identifiers of aggregates and owned entities
//   - Money: decimal amounts for prices, charges and totals
//   - GeoPoint: a courier's last reported coordinates
//   - Email and PasswordHash: account credentials of customers and couriers
//
// Value objects are immutable and validate their invariants on construction.
package kernel
