package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/services"
)

// CreateOrderCommandHandler prices the requested lines against the live
// catalog, stores the order and stamps the customer's last order time.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle fails with NotFound for an unknown customer or product and with
// Unavailable for a product that is switched off. Nothing is written then.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	customer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	products := make([]*product.Product, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		products = append(products, p)
	}

	items, err := h.pricer.Price(cmd.Lines(), products)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	now := time.Now().UTC()
	o, err := order.NewOrder(cmd.OrderID(), customer.ID(), items, cmd.Details(), now)
	if err != nil {
		return err
	}
	if status := cmd.Status(); status != nil && *status != order.Pending {
		if err = o.ChangeStatus(*status, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	customer.TouchLastOrder(now)
	if err = customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("touch customer last order: %w", err)
	}

	return uow.Commit(ctx)
}
