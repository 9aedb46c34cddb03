package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"
)

// LineRequest is one requested line of a new order.
type LineRequest struct {
	ProductID kernel.UUID
	Quantity  int
	Notes     string
}

// OrderPricer turns requested lines into priced line items.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price snapshots name and price of products[i] into line i. The first failing
// line aborts pricing, so a caller never sees a partial result.
func (OrderPricer) Price(requests []LineRequest, products []*product.Product) ([]order.LineItem, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if len(requests) != len(products) {
		return nil, fmt.Errorf("price order: %d lines but %d products", len(requests), len(products))
	}

	items := make([]order.LineItem, 0, len(requests))
	for i, req := range requests {
		item, err := priceLine(req, products[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func priceLine(req LineRequest, p *product.Product) (order.LineItem, error) {
	if err := p.Validate(); err != nil {
		return order.LineItem{}, err
	}
	if !p.ID().IsEqual(req.ProductID) {
		return order.LineItem{}, fmt.Errorf("product %s does not match requested %s", p.ID(), req.ProductID)
	}
	if !p.IsAvailable() {
		return order.LineItem{}, errs.NewObjectIsUnavailableError("product", p.Name())
	}
	return order.NewLineItem(p.ID(), p.Name(), p.Price(), req.Quantity, req.Notes)
}
