// Package order implements the Order aggregate, the core of the delivery
// lifecycle.
//
// An order is created from priced line items and a delivery address snapshot.
// Its monetary fields always satisfy:
//
//	subtotal = sum of line subtotals
//	total    = subtotal + shipping - discount
//
// and both are recomputed whenever line items or charges change. Line items
// are immutable snapshots of the catalog at creation time.
//
// Status transitions are deliberately loose: any status may be set, with two
// exceptions. Delivered requires an assigned courier, and a delivered order
// cannot be cancelled. Assigning a courier to a confirmed or preparing order
// advances it to en route. Only delivered orders can be rated.
//
// Every lifecycle mutation records an Event; the unit of work publishes them
// once the surrounding transaction commits.
package order
