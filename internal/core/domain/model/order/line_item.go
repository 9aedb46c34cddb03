package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// LineItem is a snapshot of a catalog product taken when the order was placed.
type LineItem struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	notes     string
	subtotal  kernel.Money
}

func NewLineItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int, notes string) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item.name")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}

	return LineItem{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		notes:     strings.TrimSpace(notes),
		subtotal:  unitPrice.Mul(quantity),
	}, nil
}

func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

func (li LineItem) Name() string {
	return li.name
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) Notes() string {
	return li.notes
}

// Subtotal is unit price times quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}
