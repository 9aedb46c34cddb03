// Package product contains the catalog aggregate. Orders reference products only
// at creation time: name and price are copied into the order's line items, so
// later catalog edits never change historical orders.
package product
