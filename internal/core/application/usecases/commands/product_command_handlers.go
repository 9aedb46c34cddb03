package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// ProductCommandsHandler handles the catalog maintenance commands.
type ProductCommandsHandler struct {
	uowFactory ProductUoWFactory
}

func NewProductCommandsHandler(uowFactory ProductUoWFactory) ProductCommandsHandler {
	return ProductCommandsHandler{uowFactory: uowFactory}
}

func (h ProductCommandsHandler) HandleUpdate(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.ProductID(), func(p *product.Product, now time.Time) error {
		return p.Update(cmd.Details(), now)
	})
}

// HandleSetAvailability returns the resulting availability.
func (h ProductCommandsHandler) HandleSetAvailability(ctx context.Context, cmd SetProductAvailabilityCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	var result bool
	err := h.mutate(ctx, cmd.ProductID(), func(p *product.Product, now time.Time) error {
		result = !p.IsAvailable()
		if v := cmd.Available(); v != nil {
			result = *v
		}
		p.SetAvailable(result, now)
		return nil
	})
	return result, err
}

func (h ProductCommandsHandler) HandleSetFeatured(ctx context.Context, cmd SetProductFeaturedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.ProductID(), func(p *product.Product, now time.Time) error {
		p.SetFeatured(cmd.Featured(), now)
		return nil
	})
}

// HandleDelete removes the product. Orders keep their line item snapshots.
func (h ProductCommandsHandler) HandleDelete(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ProductCommandsHandler) mutate(
	ctx context.Context,
	productID kernel.UUID,
	apply func(*product.Product, time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, productID)
	if err != nil {
		return err
	}

	if err = apply(p, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
