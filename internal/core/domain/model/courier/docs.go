// Package courier provides the courier aggregate of the food delivery domain.
//
// A courier declares the coverage zones they serve, toggles their availability,
// reports their location and holds at most one current order. The aggregate
// enforces these rules:
//   - coverage zones are never empty
//   - a courier holding a current order cannot become unavailable
//   - only an available courier can be assigned an order
//   - the running rating stays within [0, 5]
//
// Rules that need other aggregates, such as the deletion guard over active
// orders, live in the use cases.
package courier
