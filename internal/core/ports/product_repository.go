package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

type ProductRepository interface {
	Add(ctx context.Context, product *product.Product) error

	Update(ctx context.Context, product *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
